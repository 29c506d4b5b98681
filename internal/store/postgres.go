package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/GregMSThompson/bank-registry/internal/errs"
	"github.com/GregMSThompson/bank-registry/internal/models"
)

// seq is assigned on insert and left alone by updates, so ordering by it
// yields insertion order.
const bankSchema = `
CREATE TABLE IF NOT EXISTS banks (
	seq             BIGSERIAL        NOT NULL,
	account_number  TEXT             PRIMARY KEY,
	trust           DOUBLE PRECISION NOT NULL,
	transaction_fee INTEGER          NOT NULL
)`

type postgresBankStore struct {
	pool *pgxpool.Pool
}

func NewPostgresBankStore(pool *pgxpool.Pool) *postgresBankStore {
	return &postgresBankStore{pool: pool}
}

// EnsureSchema creates the banks table when it is missing.
func (s *postgresBankStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, bankSchema); err != nil {
		return errs.NewDatabaseError("create banks table", err)
	}
	return nil
}

func (s *postgresBankStore) List(ctx context.Context) ([]*models.Bank, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT account_number, trust, transaction_fee
		FROM banks
		ORDER BY seq`)
	if err != nil {
		return nil, errs.NewDatabaseError("list banks", err)
	}
	defer rows.Close()

	banks := make([]*models.Bank, 0)
	for rows.Next() {
		var b models.Bank
		if err := rows.Scan(&b.AccountNumber, &b.Trust, &b.TransactionFee); err != nil {
			return nil, errs.NewDatabaseError("scan bank", err)
		}
		banks = append(banks, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.NewDatabaseError("list banks", err)
	}
	return banks, nil
}

func (s *postgresBankStore) Get(ctx context.Context, accountNumber string) (*models.Bank, error) {
	var b models.Bank
	err := s.pool.QueryRow(ctx, `
		SELECT account_number, trust, transaction_fee
		FROM banks
		WHERE account_number = $1`, accountNumber).
		Scan(&b.AccountNumber, &b.Trust, &b.TransactionFee)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errs.BankNotFound(accountNumber)
	}
	if err != nil {
		return nil, errs.NewDatabaseError("get bank", err)
	}
	return &b, nil
}

func (s *postgresBankStore) Create(ctx context.Context, bank *models.Bank) (*models.Bank, error) {
	tag, err := s.pool.Exec(ctx, `
		INSERT INTO banks (account_number, trust, transaction_fee)
		VALUES ($1, $2, $3)
		ON CONFLICT (account_number) DO NOTHING`,
		bank.AccountNumber, bank.Trust, bank.TransactionFee)
	if err != nil {
		return nil, errs.NewDatabaseError("create bank", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, errs.BankAlreadyExists(bank.AccountNumber)
	}
	return bank.Copy(), nil
}

func (s *postgresBankStore) Update(ctx context.Context, bank *models.Bank) (*models.Bank, error) {
	tag, err := s.pool.Exec(ctx, `
		UPDATE banks
		SET trust = $2, transaction_fee = $3
		WHERE account_number = $1`,
		bank.AccountNumber, bank.Trust, bank.TransactionFee)
	if err != nil {
		return nil, errs.NewDatabaseError("update bank", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, errs.BankNotFound(bank.AccountNumber)
	}
	return bank.Copy(), nil
}

func (s *postgresBankStore) Delete(ctx context.Context, accountNumber string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM banks WHERE account_number = $1`, accountNumber)
	if err != nil {
		return errs.NewDatabaseError("delete bank", err)
	}
	if tag.RowsAffected() == 0 {
		return errs.BankNotFound(accountNumber)
	}
	return nil
}
