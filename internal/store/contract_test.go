package store

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/GregMSThompson/bank-registry/internal/errs"
	"github.com/GregMSThompson/bank-registry/internal/models"
)

type bankStoreUnderTest interface {
	List(ctx context.Context) ([]*models.Bank, error)
	Get(ctx context.Context, accountNumber string) (*models.Bank, error)
	Create(ctx context.Context, bank *models.Bank) (*models.Bank, error)
	Update(ctx context.Context, bank *models.Bank) (*models.Bank, error)
	Delete(ctx context.Context, accountNumber string) error
}

// runBankStoreContract checks the behavior every backend must share.
// newStore must return an empty store.
func runBankStoreContract(t *testing.T, newStore func(t *testing.T) bankStoreUnderTest) {
	ctx := context.Background()

	t.Run("empty store lists nothing then one created bank", func(t *testing.T) {
		s := newStore(t)

		banks, err := s.List(ctx)
		if err != nil {
			t.Fatalf("List returned error: %v", err)
		}
		if len(banks) != 0 {
			t.Fatalf("expected empty store, got %d banks", len(banks))
		}

		want := &models.Bank{AccountNumber: "acc123", Trust: 31.4, TransactionFee: 12}
		got, err := s.Create(ctx, want)
		if err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("Create = %#v, want %#v", got, want)
		}

		banks, err = s.List(ctx)
		if err != nil {
			t.Fatalf("List returned error: %v", err)
		}
		if len(banks) != 1 || !reflect.DeepEqual(banks[0], want) {
			t.Fatalf("List = %#v, want exactly %#v", banks, want)
		}
	})

	t.Run("seeded bank lifecycle", func(t *testing.T) {
		s := newStore(t)
		mustCreate(t, s, models.Bank{AccountNumber: "1234", Trust: 1.0, TransactionFee: 11})

		got, err := s.Get(ctx, "1234")
		if err != nil {
			t.Fatalf("Get returned error: %v", err)
		}
		if *got != (models.Bank{AccountNumber: "1234", Trust: 1.0, TransactionFee: 11}) {
			t.Fatalf("Get = %#v", got)
		}

		_, err = s.Create(ctx, &models.Bank{AccountNumber: "1234", Trust: 9.9, TransactionFee: 1})
		assertAlreadyExists(t, err)

		updated := &models.Bank{AccountNumber: "1234", Trust: 2.0, TransactionFee: 8}
		got, err = s.Update(ctx, updated)
		if err != nil {
			t.Fatalf("Update returned error: %v", err)
		}
		if !reflect.DeepEqual(got, updated) {
			t.Fatalf("Update = %#v, want %#v", got, updated)
		}
		got, err = s.Get(ctx, "1234")
		if err != nil {
			t.Fatalf("Get returned error: %v", err)
		}
		if !reflect.DeepEqual(got, updated) {
			t.Fatalf("Get after update = %#v, want %#v", got, updated)
		}

		if err := s.Delete(ctx, "1234"); err != nil {
			t.Fatalf("Delete returned error: %v", err)
		}
		_, err = s.Get(ctx, "1234")
		assertNotFound(t, err)
	})

	t.Run("conflicting create leaves store unchanged", func(t *testing.T) {
		s := newStore(t)
		original := models.Bank{AccountNumber: "2245", Trust: 1.0, TransactionFee: 0}
		mustCreate(t, s, original)

		_, err := s.Create(ctx, &models.Bank{AccountNumber: "2245", Trust: 7.0, TransactionFee: 3})
		assertAlreadyExists(t, err)

		banks := mustList(t, s)
		if len(banks) != 1 || *banks[0] != original {
			t.Fatalf("store changed after conflict: %#v", banks)
		}
	})

	t.Run("missing account number", func(t *testing.T) {
		s := newStore(t)
		mustCreate(t, s, models.Bank{AccountNumber: "1234", Trust: 1.0, TransactionFee: 11})

		_, err := s.Get(ctx, "does_not_exist")
		assertNotFound(t, err)

		_, err = s.Update(ctx, &models.Bank{AccountNumber: "does_not_exist", Trust: 10.1, TransactionFee: 1})
		assertNotFound(t, err)

		assertNotFound(t, s.Delete(ctx, "does_not_exist"))

		banks := mustList(t, s)
		if len(banks) != 1 || banks[0].AccountNumber != "1234" {
			t.Fatalf("store changed after missing-key operations: %#v", banks)
		}
	})

	t.Run("lookup is case sensitive", func(t *testing.T) {
		s := newStore(t)
		mustCreate(t, s, models.Bank{AccountNumber: "abc", Trust: 1.0, TransactionFee: 1})

		_, err := s.Get(ctx, "ABC")
		assertNotFound(t, err)
	})

	t.Run("update is idempotent and keeps position", func(t *testing.T) {
		s := newStore(t)
		mustCreate(t, s, models.Bank{AccountNumber: "a", Trust: 1, TransactionFee: 1})
		mustCreate(t, s, models.Bank{AccountNumber: "b", Trust: 2, TransactionFee: 2})
		mustCreate(t, s, models.Bank{AccountNumber: "c", Trust: 3, TransactionFee: 3})

		updated := &models.Bank{AccountNumber: "a", Trust: 4.5, TransactionFee: 9}
		if _, err := s.Update(ctx, updated); err != nil {
			t.Fatalf("first Update returned error: %v", err)
		}
		once := mustList(t, s)
		if _, err := s.Update(ctx, updated); err != nil {
			t.Fatalf("second Update returned error: %v", err)
		}
		twice := mustList(t, s)

		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("repeated update changed state: %#v vs %#v", once, twice)
		}
		if got := accountNumbers(twice); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
			t.Fatalf("order after update = %v", got)
		}
		if *twice[0] != *updated {
			t.Fatalf("updated value = %#v, want %#v", twice[0], updated)
		}
	})

	t.Run("delete removes exactly one and keeps order", func(t *testing.T) {
		s := newStore(t)
		mustCreate(t, s, models.Bank{AccountNumber: "a", Trust: 1, TransactionFee: 1})
		mustCreate(t, s, models.Bank{AccountNumber: "b", Trust: 2, TransactionFee: 2})
		mustCreate(t, s, models.Bank{AccountNumber: "c", Trust: 3, TransactionFee: 3})

		if err := s.Delete(ctx, "b"); err != nil {
			t.Fatalf("Delete returned error: %v", err)
		}
		banks := mustList(t, s)
		if got := accountNumbers(banks); !reflect.DeepEqual(got, []string{"a", "c"}) {
			t.Fatalf("List after delete = %v", got)
		}

		mustCreate(t, s, models.Bank{AccountNumber: "b", Trust: 5, TransactionFee: 5})
		if got := accountNumbers(mustList(t, s)); !reflect.DeepEqual(got, []string{"a", "c", "b"}) {
			t.Fatalf("recreated bank should be appended, got %v", got)
		}
	})
}

func mustCreate(t *testing.T, s bankStoreUnderTest, b models.Bank) {
	t.Helper()
	if _, err := s.Create(context.Background(), &b); err != nil {
		t.Fatalf("Create(%s) returned error: %v", b.AccountNumber, err)
	}
}

func mustList(t *testing.T, s bankStoreUnderTest) []*models.Bank {
	t.Helper()
	banks, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	return banks
}

func accountNumbers(banks []*models.Bank) []string {
	out := make([]string, 0, len(banks))
	for _, b := range banks {
		out = append(out, b.AccountNumber)
	}
	return out
}

func assertNotFound(t *testing.T, err error) {
	t.Helper()
	var nf *errs.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func assertAlreadyExists(t *testing.T, err error) {
	t.Helper()
	var ae *errs.AlreadyExistsError
	if !errors.As(err, &ae) {
		t.Fatalf("expected AlreadyExistsError, got %v", err)
	}
}
