package ledger

import (
	"context"

	"github.com/ashish6109/ludo-backend/internal/domain"

	"github.com/sirupsen/logrus" // Logging library
)

// Store applies one signed balance change as a single atomic unit: the
// conditional balance update and the appended Transaction row either both
// happen or neither does. A debit that would take the balance negative must
// fail with domain.ErrInsufficientBalance without writing anything, even
// under concurrent calls for the same user.
type Store interface {
	Apply(ctx context.Context, userID uint, delta int64, kind string) (int64, error)
}

// Ledger owns the write path to wallet balances. No other component mutates
// a balance or appends to the transaction log.
type Ledger struct {
	store       Store
	minWithdraw int64
}

// New creates a ledger over the given store with the configured withdrawal minimum
func New(store Store, minWithdraw int64) *Ledger {
	return &Ledger{store: store, minWithdraw: minWithdraw}
}

// MinWithdraw returns the smallest accepted withdrawal amount
func (l *Ledger) MinWithdraw() int64 {
	return l.minWithdraw
}

// Deposit credits amount to the user's wallet and returns the new balance.
// Amount must be positive; there is no upper bound.
func (l *Ledger) Deposit(ctx context.Context, userID uint, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, domain.ErrInvalidAmount
	}
	balance, err := l.store.Apply(ctx, userID, amount, domain.KindDeposit)
	l.logMutation(userID, amount, domain.KindDeposit, balance, err)
	return balance, err
}

// Withdraw debits amount from the user's wallet and returns the new balance.
// Amount must be at least the configured minimum and not exceed the balance.
func (l *Ledger) Withdraw(ctx context.Context, userID uint, amount int64) (int64, error) {
	if amount < l.minWithdraw {
		return 0, domain.ErrBelowMinimum
	}
	balance, err := l.store.Apply(ctx, userID, -amount, domain.KindWithdraw)
	l.logMutation(userID, -amount, domain.KindWithdraw, balance, err)
	return balance, err
}

// Adjust applies a signed game-outcome delta and returns the new balance
func (l *Ledger) Adjust(ctx context.Context, userID uint, delta int64) (int64, error) {
	balance, err := l.store.Apply(ctx, userID, delta, domain.KindGameAdjust)
	l.logMutation(userID, delta, domain.KindGameAdjust, balance, err)
	return balance, err
}

// logMutation records every attempted balance change with structured fields
func (l *Ledger) logMutation(userID uint, delta int64, kind string, balance int64, err error) {
	fields := logrus.Fields{
		"user_id": userID,
		"amount":  delta,
		"type":    kind,
	}
	if err != nil {
		fields["error"] = err.Error()
		logrus.WithFields(fields).Warn("Ledger mutation rejected")
		return
	}
	fields["balance"] = balance
	logrus.WithFields(fields).Info("Ledger mutation applied")
}
