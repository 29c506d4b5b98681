package services

import (
	"context"

	"github.com/GregMSThompson/bank-registry/internal/models"
	"github.com/GregMSThompson/bank-registry/pkg/logger"
)

type bankBSStore interface {
	List(ctx context.Context) ([]*models.Bank, error)
	Get(ctx context.Context, accountNumber string) (*models.Bank, error)
	Create(ctx context.Context, bank *models.Bank) (*models.Bank, error)
	Update(ctx context.Context, bank *models.Bank) (*models.Bank, error)
	Delete(ctx context.Context, accountNumber string) error
}

type bankService struct {
	banks bankBSStore
}

func NewBankService(banks bankBSStore) *bankService {
	return &bankService{banks: banks}
}

func (s *bankService) GetBanks(ctx context.Context) ([]*models.Bank, error) {
	return s.banks.List(ctx)
}

func (s *bankService) GetBank(ctx context.Context, accountNumber string) (*models.Bank, error) {
	return s.banks.Get(ctx, accountNumber)
}

func (s *bankService) AddBank(ctx context.Context, bank *models.Bank) (*models.Bank, error) {
	created, err := s.banks.Create(ctx, bank)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("bank created", "account_number", created.AccountNumber)
	return created, nil
}

func (s *bankService) UpdateBank(ctx context.Context, bank *models.Bank) (*models.Bank, error) {
	updated, err := s.banks.Update(ctx, bank)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("bank updated", "account_number", updated.AccountNumber)
	return updated, nil
}

func (s *bankService) DeleteBank(ctx context.Context, accountNumber string) error {
	if err := s.banks.Delete(ctx, accountNumber); err != nil {
		return err
	}

	logger.FromContext(ctx).Info("bank deleted", "account_number", accountNumber)
	return nil
}
