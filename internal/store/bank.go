package store

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/GregMSThompson/bank-registry/internal/errs"
	"github.com/GregMSThompson/bank-registry/internal/models"
)

// bankDoc is the Firestore shape of a bank. CreatedAt is set by the server
// on create and never rewritten, so it orders List by insertion.
type bankDoc struct {
	AccountNumber  string    `firestore:"accountNumber"`
	Trust          float64   `firestore:"trust"`
	TransactionFee int       `firestore:"transactionFee"`
	CreatedAt      time.Time `firestore:"createdAt,serverTimestamp"`
}

func (d *bankDoc) toModel() *models.Bank {
	return &models.Bank{
		AccountNumber:  d.AccountNumber,
		Trust:          d.Trust,
		TransactionFee: d.TransactionFee,
	}
}

type bankStore struct {
	client *firestore.Client
}

func NewBankStore(client *firestore.Client) *bankStore {
	return &bankStore{client: client}
}

func (s *bankStore) collection() *firestore.CollectionRef {
	return s.client.Collection("banks")
}

func (s *bankStore) List(ctx context.Context) ([]*models.Bank, error) {
	docs, err := s.collection().OrderBy("createdAt", firestore.Asc).Documents(ctx).GetAll()
	if err != nil {
		return nil, errs.NewDatabaseError("list banks", err)
	}
	banks := make([]*models.Bank, 0, len(docs))
	for _, d := range docs {
		var b bankDoc
		if err := d.DataTo(&b); err != nil {
			return nil, errs.NewDatabaseError("decode bank", err)
		}
		banks = append(banks, b.toModel())
	}
	return banks, nil
}

func (s *bankStore) Get(ctx context.Context, accountNumber string) (*models.Bank, error) {
	doc, err := s.collection().Doc(accountNumber).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, errs.BankNotFound(accountNumber)
	}
	if err != nil {
		return nil, errs.NewDatabaseError("get bank", err)
	}
	var b bankDoc
	if err := doc.DataTo(&b); err != nil {
		return nil, errs.NewDatabaseError("decode bank", err)
	}
	return b.toModel(), nil
}

func (s *bankStore) Create(ctx context.Context, bank *models.Bank) (*models.Bank, error) {
	_, err := s.collection().Doc(bank.AccountNumber).Create(ctx, &bankDoc{
		AccountNumber:  bank.AccountNumber,
		Trust:          bank.Trust,
		TransactionFee: bank.TransactionFee,
	})
	if status.Code(err) == codes.AlreadyExists {
		return nil, errs.BankAlreadyExists(bank.AccountNumber)
	}
	if err != nil {
		return nil, errs.NewDatabaseError("create bank", err)
	}
	return bank.Copy(), nil
}

// Update only touches the value fields so createdAt, and with it the
// bank's position in List, survives the replacement.
func (s *bankStore) Update(ctx context.Context, bank *models.Bank) (*models.Bank, error) {
	ref := s.collection().Doc(bank.AccountNumber)
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(ref); err != nil {
			if status.Code(err) == codes.NotFound {
				return errs.BankNotFound(bank.AccountNumber)
			}
			return err
		}
		return tx.Update(ref, []firestore.Update{
			{Path: "trust", Value: bank.Trust},
			{Path: "transactionFee", Value: bank.TransactionFee},
		})
	})

	var nf *errs.NotFoundError
	if errors.As(err, &nf) {
		return nil, nf
	}
	if err != nil {
		return nil, errs.NewDatabaseError("update bank", err)
	}
	return bank.Copy(), nil
}

func (s *bankStore) Delete(ctx context.Context, accountNumber string) error {
	_, err := s.collection().Doc(accountNumber).Delete(ctx, firestore.Exists)
	if status.Code(err) == codes.NotFound {
		return errs.BankNotFound(accountNumber)
	}
	if err != nil {
		return errs.NewDatabaseError("delete bank", err)
	}
	return nil
}
