package models

// Bank is keyed by AccountNumber, which never changes once stored.
type Bank struct {
	AccountNumber  string  `firestore:"accountNumber" json:"accountNumber"`
	Trust          float64 `firestore:"trust" json:"trust"`
	TransactionFee int     `firestore:"transactionFee" json:"transactionFee"`
}

// Copy returns a detached copy so callers never alias store-owned values.
func (b *Bank) Copy() *Bank {
	c := *b
	return &c
}
