// Package validate holds the pure precondition checks that run before any
// money-movement request is sent. A rejection here never reaches the network.
package validate

import (
	"ledger-console/internal/errors"
)

// Deposit checks the preconditions for depositing cents into accountID.
func Deposit(accountID string, cents int64) *errors.AppError {
	if accountID == "" {
		return errors.ErrNoAccountSelected
	}
	if cents <= 0 {
		return errors.ErrNonPositiveAmount
	}
	return nil
}

// Withdraw shares the deposit preconditions.
func Withdraw(accountID string, cents int64) *errors.AppError {
	return Deposit(accountID, cents)
}

// Transfer checks that both accounts are selected, distinct, and that the
// amount is a positive number of minor units.
func Transfer(fromID, toID string, cents int64) *errors.AppError {
	if fromID == "" || toID == "" {
		return errors.ErrBothAccountsRequired
	}
	if fromID == toID {
		return errors.ErrSameAccountTransfer
	}
	if cents <= 0 {
		return errors.ErrNonPositiveAmount
	}
	return nil
}
