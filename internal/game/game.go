package game

import (
	"context"

	"github.com/ashish6109/ludo-backend/internal/domain"
)

// Outcome labels
const (
	ResultWin  = "win"
	ResultLose = "lose"
)

// Placeholder threshold rule: below winThreshold the player wins, otherwise
// loses, always by outcomeDelta. Not real game logic.
const (
	winThreshold = 300
	outcomeDelta = 50
)

// UserFinder resolves the player's current wallet state.
type UserFinder interface {
	UserByID(ctx context.Context, id uint) (*domain.User, error)
}

// BalanceAdjuster applies the outcome delta through the ledger.
type BalanceAdjuster interface {
	Adjust(ctx context.Context, userID uint, delta int64) (int64, error)
}

// Evaluator produces a win/lose result from the current balance and settles
// it through the ledger.
type Evaluator struct {
	users  UserFinder
	ledger BalanceAdjuster
}

// NewEvaluator creates a game outcome evaluator
func NewEvaluator(users UserFinder, ledger BalanceAdjuster) *Evaluator {
	return &Evaluator{users: users, ledger: ledger}
}

// Play evaluates one round for the user and returns the result label and the
// new balance. Fails with domain.ErrNoBalance on an empty wallet.
func (e *Evaluator) Play(ctx context.Context, userID uint) (string, int64, error) {
	user, err := e.users.UserByID(ctx, userID)
	if err != nil {
		return "", 0, err
	}
	if user.Wallet <= 0 {
		return "", 0, domain.ErrNoBalance
	}
	result := ResultLose
	delta := int64(-outcomeDelta)
	if user.Wallet < winThreshold {
		result = ResultWin
		delta = outcomeDelta
	}
	balance, err := e.ledger.Adjust(ctx, userID, delta)
	if err != nil {
		return "", 0, err
	}
	return result, balance, nil
}
