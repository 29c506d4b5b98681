package store

import (
	"context"
	"sync"

	"github.com/GregMSThompson/bank-registry/internal/errs"
	"github.com/GregMSThompson/bank-registry/internal/models"
)

// memoryBankStore keeps banks in insertion order. index maps an account
// number to its position in banks and is rebuilt on delete.
type memoryBankStore struct {
	mu    sync.RWMutex
	banks []models.Bank
	index map[string]int
}

func NewMemoryBankStore(seed ...models.Bank) *memoryBankStore {
	s := &memoryBankStore{
		banks: make([]models.Bank, 0, len(seed)),
		index: make(map[string]int, len(seed)),
	}
	for _, b := range seed {
		if _, ok := s.index[b.AccountNumber]; ok {
			continue
		}
		s.index[b.AccountNumber] = len(s.banks)
		s.banks = append(s.banks, b)
	}
	return s
}

func (s *memoryBankStore) List(_ context.Context) ([]*models.Bank, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	banks := make([]*models.Bank, 0, len(s.banks))
	for i := range s.banks {
		banks = append(banks, s.banks[i].Copy())
	}
	return banks, nil
}

func (s *memoryBankStore) Get(_ context.Context, accountNumber string) (*models.Bank, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[accountNumber]
	if !ok {
		return nil, errs.BankNotFound(accountNumber)
	}
	return s.banks[i].Copy(), nil
}

func (s *memoryBankStore) Create(_ context.Context, bank *models.Bank) (*models.Bank, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[bank.AccountNumber]; ok {
		return nil, errs.BankAlreadyExists(bank.AccountNumber)
	}
	s.index[bank.AccountNumber] = len(s.banks)
	s.banks = append(s.banks, *bank)
	return bank.Copy(), nil
}

// Update replaces the stored value in place; the bank keeps its position.
func (s *memoryBankStore) Update(_ context.Context, bank *models.Bank) (*models.Bank, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[bank.AccountNumber]
	if !ok {
		return nil, errs.BankNotFound(bank.AccountNumber)
	}
	s.banks[i] = *bank
	return bank.Copy(), nil
}

func (s *memoryBankStore) Delete(_ context.Context, accountNumber string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[accountNumber]
	if !ok {
		return errs.BankNotFound(accountNumber)
	}
	s.banks = append(s.banks[:i], s.banks[i+1:]...)
	delete(s.index, accountNumber)
	for j := i; j < len(s.banks); j++ {
		s.index[s.banks[j].AccountNumber] = j
	}
	return nil
}
