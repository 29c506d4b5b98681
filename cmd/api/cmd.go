package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/GregMSThompson/bank-registry/internal/bootstrap"
	"github.com/GregMSThompson/bank-registry/internal/config"
	"github.com/GregMSThompson/bank-registry/internal/handlers"
	"github.com/GregMSThompson/bank-registry/internal/models"
	"github.com/GregMSThompson/bank-registry/internal/response"
	"github.com/GregMSThompson/bank-registry/internal/router"
	"github.com/GregMSThompson/bank-registry/internal/services"
	"github.com/GregMSThompson/bank-registry/internal/store"
)

type bankStore interface {
	List(ctx context.Context) ([]*models.Bank, error)
	Get(ctx context.Context, accountNumber string) (*models.Bank, error)
	Create(ctx context.Context, bank *models.Bank) (*models.Bank, error)
	Update(ctx context.Context, bank *models.Bank) (*models.Bank, error)
	Delete(ctx context.Context, accountNumber string) error
}

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func newBankStore(ctx context.Context, cfg *config.Config, bs *bootstrap.Bootstrap) (bankStore, error) {
	switch cfg.StoreBackend {
	case config.BackendFirestore:
		return store.NewBankStore(bs.Firestore), nil
	case config.BackendPostgres:
		pg := store.NewPostgresBankStore(bs.Postgres)
		if err := pg.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		return pg, nil
	case config.BackendRedis:
		return store.NewRedisBankStore(bs.Redis, cfg.RedisPrefix), nil
	default:
		var seed []models.Bank
		if cfg.SeedBanks {
			seed = store.DefaultBanks()
		}
		return store.NewMemoryBankStore(seed...), nil
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(ctx, cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// stores
	bstore, err := newBankStore(ctx, cfg, bs)
	exitOnError("store setup failed", err, bs.Log)

	// services
	bserv := services.NewBankService(bstore)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.BankSvc = bserv

	// router
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router.NewRouter(deps),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			bs.Log.Error("server shutdown failed", "error", err)
		}
	}()

	bs.Log.Info("server listening", "addr", srv.Addr, "store_backend", string(cfg.StoreBackend))
	err = srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}
	exitOnError("server start failed", err, bs.Log)
}
