package handlers

import (
	"log/slog"

	"github.com/GregMSThompson/bank-registry/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	BankSvc         BankService
}
