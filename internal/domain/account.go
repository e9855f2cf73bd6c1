package domain

import (
	"time"
)

// AccountStatus is set and owned by the remote service; this client only reads it.
type AccountStatus string

const (
	AccountActive AccountStatus = "ACTIVE"
	AccountClosed AccountStatus = "CLOSED"
)

type Account struct {
	AccountID string        `json:"accountId"`
	Status    AccountStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}

// Balance is fetched separately from the account record and cached only
// transiently for display. It is stale the moment it arrives.
type Balance struct {
	AccountID string `json:"accountId"`
	Balance   int64  `json:"balance"`
}

// TruncateID shortens an opaque account id for display.
func TruncateID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8] + "..."
}
