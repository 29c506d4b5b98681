package store

import "github.com/GregMSThompson/bank-registry/internal/models"

// DefaultBanks is the fixture the memory backend starts with unless seeding is disabled.
func DefaultBanks() []models.Bank {
	return []models.Bank{
		{AccountNumber: "1234", Trust: 1.0, TransactionFee: 11},
		{AccountNumber: "2245", Trust: 1.0, TransactionFee: 0},
		{AccountNumber: "2266", Trust: 5.0, TransactionFee: 14},
	}
}
