package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/GregMSThompson/bank-registry/internal/errs"
	"github.com/GregMSThompson/bank-registry/internal/models"
)

const redisMaxRetries = 5

// redisBankStore keeps each bank as JSON in a hash keyed by account number
// and the insertion order in a companion list. Mutations touch both keys
// inside a WATCH/MULTI transaction.
type redisBankStore struct {
	client   *redis.Client
	hashKey  string
	orderKey string
}

func NewRedisBankStore(client *redis.Client, prefix string) *redisBankStore {
	if prefix == "" {
		prefix = "bank-registry"
	}
	return &redisBankStore{
		client:   client,
		hashKey:  prefix + ":banks",
		orderKey: prefix + ":banks:order",
	}
}

func (s *redisBankStore) List(ctx context.Context) ([]*models.Bank, error) {
	var (
		order *redis.StringSliceCmd
		all   *redis.MapStringStringCmd
	)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		order = pipe.LRange(ctx, s.orderKey, 0, -1)
		all = pipe.HGetAll(ctx, s.hashKey)
		return nil
	})
	if err != nil {
		return nil, errs.NewDatabaseError("list banks", err)
	}

	values := all.Val()
	banks := make([]*models.Bank, 0, len(values))
	for _, accountNumber := range order.Val() {
		raw, ok := values[accountNumber]
		if !ok {
			continue
		}
		b, err := decodeBank(raw)
		if err != nil {
			return nil, err
		}
		banks = append(banks, b)
	}
	return banks, nil
}

func (s *redisBankStore) Get(ctx context.Context, accountNumber string) (*models.Bank, error) {
	raw, err := s.client.HGet(ctx, s.hashKey, accountNumber).Result()
	if errors.Is(err, redis.Nil) {
		return nil, errs.BankNotFound(accountNumber)
	}
	if err != nil {
		return nil, errs.NewDatabaseError("get bank", err)
	}
	return decodeBank(raw)
}

func (s *redisBankStore) Create(ctx context.Context, bank *models.Bank) (*models.Bank, error) {
	raw, err := json.Marshal(bank)
	if err != nil {
		return nil, errs.NewDatabaseError("encode bank", err)
	}

	err = s.watch(ctx, "create bank", func(tx *redis.Tx) error {
		exists, err := tx.HExists(ctx, s.hashKey, bank.AccountNumber).Result()
		if err != nil {
			return err
		}
		if exists {
			return errs.BankAlreadyExists(bank.AccountNumber)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, s.hashKey, bank.AccountNumber, raw)
			pipe.RPush(ctx, s.orderKey, bank.AccountNumber)
			return nil
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return bank.Copy(), nil
}

// Update overwrites the hash entry only; the order list is untouched.
func (s *redisBankStore) Update(ctx context.Context, bank *models.Bank) (*models.Bank, error) {
	raw, err := json.Marshal(bank)
	if err != nil {
		return nil, errs.NewDatabaseError("encode bank", err)
	}

	err = s.watch(ctx, "update bank", func(tx *redis.Tx) error {
		exists, err := tx.HExists(ctx, s.hashKey, bank.AccountNumber).Result()
		if err != nil {
			return err
		}
		if !exists {
			return errs.BankNotFound(bank.AccountNumber)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, s.hashKey, bank.AccountNumber, raw)
			return nil
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return bank.Copy(), nil
}

func (s *redisBankStore) Delete(ctx context.Context, accountNumber string) error {
	return s.watch(ctx, "delete bank", func(tx *redis.Tx) error {
		exists, err := tx.HExists(ctx, s.hashKey, accountNumber).Result()
		if err != nil {
			return err
		}
		if !exists {
			return errs.BankNotFound(accountNumber)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HDel(ctx, s.hashKey, accountNumber)
			pipe.LRem(ctx, s.orderKey, 1, accountNumber)
			return nil
		})
		return err
	})
}

// watch runs fn under WATCH on both keys, retrying when another client
// changed them first. Domain errors from fn pass through unchanged.
func (s *redisBankStore) watch(ctx context.Context, op string, fn func(tx *redis.Tx) error) error {
	for range redisMaxRetries {
		err := s.client.Watch(ctx, fn, s.hashKey, s.orderKey)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err == nil || isDomainError(err) {
			return err
		}
		return errs.NewDatabaseError(op, err)
	}
	return errs.NewDatabaseError(op, fmt.Errorf("transaction aborted after %d retries", redisMaxRetries))
}

func isDomainError(err error) bool {
	var (
		nf *errs.NotFoundError
		ae *errs.AlreadyExistsError
	)
	return errors.As(err, &nf) || errors.As(err, &ae)
}

func decodeBank(raw string) (*models.Bank, error) {
	var b models.Bank
	if err := json.Unmarshal([]byte(raw), &b); err != nil {
		return nil, errs.NewDatabaseError("decode bank", err)
	}
	return &b, nil
}
