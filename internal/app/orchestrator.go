// Package app contains the operation workflows: validate the user's input,
// build an idempotent request, submit it, then settle by notifying the user
// and refreshing the local account view.
package app

import (
	"context"
	"log/slog"

	"ledger-console/internal/api"
	"ledger-console/internal/domain"
	"ledger-console/internal/errors"
	"ledger-console/internal/notify"
	"ledger-console/internal/state"
	"ledger-console/internal/validate"
)

// Operation identifies which input form an operation came from, for the
// presentation layer's form-clear signal.
type Operation string

const (
	OpDeposit  Operation = "deposit"
	OpWithdraw Operation = "withdraw"
	OpTransfer Operation = "transfer"
)

type Orchestrator struct {
	client   *api.Client
	store    *state.Store
	notifier *notify.Notifier
	logger   *slog.Logger

	clearForm func(Operation)
}

func New(client *api.Client, store *state.Store, notifier *notify.Notifier, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{
		client:   client,
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

// OnFormClear registers the presentation layer's hook for resetting an
// operation's input form after a successful submission.
func (o *Orchestrator) OnFormClear(fn func(Operation)) {
	o.clearForm = fn
}

// RefreshAccounts fetches the full account list and replaces the stored
// sequence atomically. Results that lost the race to a newer refresh are
// dropped by the store.
func (o *Orchestrator) RefreshAccounts(ctx context.Context) error {
	token := o.store.BeginRefresh()

	accounts, err := o.client.ListAccounts(ctx)
	if err != nil {
		o.logger.Warn("failed to load accounts", "error", err)
		o.notifier.Push("Failed to load accounts", notify.Error)
		return err
	}

	if !o.store.ApplyAccounts(token, accounts) {
		o.logger.Debug("dropped stale account list", "token", token)
	}
	return nil
}

// CreateAccount asks the remote service for a new account and refreshes the
// local view on success.
func (o *Orchestrator) CreateAccount(ctx context.Context) error {
	account, err := o.client.CreateAccount(ctx)
	if err != nil {
		o.notifier.Push("Failed to create account: "+errors.MessageOf(err), notify.Error)
		return err
	}

	o.logger.Info("account created", "account_id", account.AccountID)
	o.notifier.Push("Account created successfully: "+domain.TruncateID(account.AccountID), notify.Success)
	return o.RefreshAccounts(ctx)
}

// AccountBalance fetches one account's current balance. Balance display is
// best-effort: failures degrade to zero instead of propagating, the remote
// service stays authoritative for any actual movement.
func (o *Orchestrator) AccountBalance(ctx context.Context, accountID string) int64 {
	balance, err := o.client.Balance(ctx, accountID)
	if err != nil {
		o.logger.Warn("failed to get balance", "account_id", accountID, "error", err)
		return 0
	}
	return balance
}

// AccountTransactions fetches one account's transaction history.
func (o *Orchestrator) AccountTransactions(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	return o.client.Transactions(ctx, accountID)
}

// SelectView switches the active view; the dashboard view is the only one
// eligible for periodic refresh.
func (o *Orchestrator) SelectView(v state.View) {
	o.store.SelectView(v)
}

// SelectAccount records the account the user is acting on.
func (o *Orchestrator) SelectAccount(accountID string) {
	o.store.SelectAccount(accountID)
}

// SubmitDeposit runs the deposit workflow for a user-entered amount in major
// units ("12.34"). Validation failures never reach the network.
func (o *Orchestrator) SubmitDeposit(ctx context.Context, accountID, amount string) error {
	cents, err := domain.ParseMajorUnits(amount)
	if err != nil {
		o.notifier.Push(errors.MessageOf(err), notify.Error)
		return err
	}
	if verr := validate.Deposit(accountID, cents); verr != nil {
		o.notifier.Push(verr.Message, notify.Error)
		return verr
	}

	req := domain.DepositRequest{
		AccountID:      accountID,
		Amount:         cents,
		IdempotencyKey: domain.NewIdempotencyKey(),
	}
	if err := o.client.Deposit(ctx, req); err != nil {
		o.notifier.Push("Deposit failed: "+errors.MessageOf(err), notify.Error)
		return err
	}

	o.settle(OpDeposit, "Successfully deposited "+domain.FormatCents(cents))
	return nil
}

// SubmitWithdraw runs the withdrawal workflow.
func (o *Orchestrator) SubmitWithdraw(ctx context.Context, accountID, amount string) error {
	cents, err := domain.ParseMajorUnits(amount)
	if err != nil {
		o.notifier.Push(errors.MessageOf(err), notify.Error)
		return err
	}
	if verr := validate.Withdraw(accountID, cents); verr != nil {
		o.notifier.Push(verr.Message, notify.Error)
		return verr
	}

	req := domain.WithdrawRequest{
		AccountID:      accountID,
		Amount:         cents,
		IdempotencyKey: domain.NewIdempotencyKey(),
	}
	if err := o.client.Withdraw(ctx, req); err != nil {
		o.notifier.Push("Withdrawal failed: "+errors.MessageOf(err), notify.Error)
		return err
	}

	o.settle(OpWithdraw, "Successfully withdrew "+domain.FormatCents(cents))
	return nil
}

// SubmitTransfer runs the transfer workflow between two distinct accounts.
func (o *Orchestrator) SubmitTransfer(ctx context.Context, fromID, toID, amount string) error {
	cents, err := domain.ParseMajorUnits(amount)
	if err != nil {
		o.notifier.Push(errors.MessageOf(err), notify.Error)
		return err
	}
	if verr := validate.Transfer(fromID, toID, cents); verr != nil {
		o.notifier.Push(verr.Message, notify.Error)
		return verr
	}

	req := domain.TransferRequest{
		FromAccountID:  fromID,
		ToAccountID:    toID,
		Amount:         cents,
		IdempotencyKey: domain.NewIdempotencyKey(),
	}
	if err := o.client.Transfer(ctx, req); err != nil {
		o.notifier.Push("Transfer failed: "+errors.MessageOf(err), notify.Error)
		return err
	}

	o.settle(OpTransfer, "Successfully transferred "+domain.FormatCents(cents))
	return nil
}

// settle handles the success side of SETTLED: the user sees the success
// message immediately while the account list refreshes in the background.
func (o *Orchestrator) settle(op Operation, message string) {
	o.notifier.Push(message, notify.Success)

	if o.clearForm != nil {
		o.clearForm(op)
	}

	go func() {
		_ = o.RefreshAccounts(context.Background())
	}()
}
