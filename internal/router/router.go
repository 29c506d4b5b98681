package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/GregMSThompson/bank-registry/internal/handlers"
	"github.com/GregMSThompson/bank-registry/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	lm := middleware.NewLoggerMiddleware(deps.Log)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(lm.LoggerMiddleware)
	r.Use(lm.AccessLog)
	r.Use(chimiddleware.Recoverer)

	bh := handlers.NewBankHandlers(deps)
	hh := handlers.NewHealthHandlers(deps)

	r.Get("/healthz", hh.Health)
	r.Mount("/api/banks", bh.BankRoutes())
	return r
}
