package domain

import (
	"time"

	"github.com/google/uuid"
)

// Transaction is a ledger entry as reported by the remote service.
// Amount is signed: negative is a debit, positive a credit.
type Transaction struct {
	LedgerEntryID string    `json:"ledgerEntryId"`
	TransactionID string    `json:"transactionId"`
	Amount        int64     `json:"amount"`
	CreatedAt     time.Time `json:"createdAt"`
}

type DepositRequest struct {
	AccountID      string `json:"accountId"`
	Amount         int64  `json:"amount"`
	IdempotencyKey string `json:"idempotencyKey"`
}

type WithdrawRequest struct {
	AccountID      string `json:"accountId"`
	Amount         int64  `json:"amount"`
	IdempotencyKey string `json:"idempotencyKey"`
}

type TransferRequest struct {
	FromAccountID  string `json:"fromAccountId"`
	ToAccountID    string `json:"toAccountId"`
	Amount         int64  `json:"amount"`
	IdempotencyKey string `json:"idempotencyKey"`
}

// NewIdempotencyKey returns a fresh random v4 UUID. Every mutating request
// gets its own key: two intentional submissions of the same operation are
// two distinct effects, only transport retries of one submission deduplicate.
func NewIdempotencyKey() string {
	return uuid.NewString()
}
