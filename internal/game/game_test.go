package game

import (
	"context"
	"testing"

	"github.com/ashish6109/ludo-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend stands in for both the user lookup and the ledger.
type fakeBackend struct {
	wallet  int64
	adjusts []int64
}

func (b *fakeBackend) UserByID(ctx context.Context, id uint) (*domain.User, error) {
	return &domain.User{ID: id, Email: "player@example.com", Wallet: b.wallet}, nil
}

func (b *fakeBackend) Adjust(ctx context.Context, userID uint, delta int64) (int64, error) {
	b.wallet += delta
	b.adjusts = append(b.adjusts, delta)
	return b.wallet, nil
}

func TestPlayOutcomes(t *testing.T) {
	cases := []struct {
		name        string
		balance     int64
		wantResult  string
		wantBalance int64
	}{
		{"low balance wins", 100, ResultWin, 150},
		{"high balance loses", 400, ResultLose, 350},
		{"boundary balance loses", 300, ResultLose, 250},
		{"just below boundary wins", 299, ResultWin, 349},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			backend := &fakeBackend{wallet: tc.balance}
			eval := NewEvaluator(backend, backend)

			result, balance, err := eval.Play(context.Background(), 1)
			require.NoError(t, err)
			assert.Equal(t, tc.wantResult, result)
			assert.Equal(t, tc.wantBalance, balance)
			assert.Len(t, backend.adjusts, 1)
		})
	}
}

func TestPlayEmptyWallet(t *testing.T) {
	backend := &fakeBackend{wallet: 0}
	eval := NewEvaluator(backend, backend)

	_, _, err := eval.Play(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrNoBalance)
	assert.Empty(t, backend.adjusts, "no ledger adjustment on an empty wallet")
}
