package ledger

import (
	"context"
	"sync"
	"testing"

	"github.com/ashish6109/ludo-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore honours the Store contract in memory: the balance check and the
// write happen under one lock, and a rejected debit appends nothing.
type fakeStore struct {
	mu       sync.Mutex
	balances map[uint]int64
	entries  []domain.Transaction
}

func newFakeStore() *fakeStore {
	return &fakeStore{balances: make(map[uint]int64)}
}

func (s *fakeStore) Apply(ctx context.Context, userID uint, delta int64, kind string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	balance, ok := s.balances[userID]
	if !ok {
		return 0, domain.ErrUserNotFound
	}
	if balance+delta < 0 {
		return 0, domain.ErrInsufficientBalance
	}
	s.balances[userID] = balance + delta
	s.entries = append(s.entries, domain.Transaction{
		UserID: userID,
		Amount: delta,
		Kind:   kind,
		Status: domain.StatusSuccess,
	})
	return balance + delta, nil
}

func (s *fakeStore) entriesFor(userID uint) []domain.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Transaction
	for _, e := range s.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out
}

func TestDeposit(t *testing.T) {
	store := newFakeStore()
	store.balances[1] = 0
	lgr := New(store, 500)

	balance, err := lgr.Deposit(context.Background(), 1, 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), balance)

	entries := store.entriesFor(1)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.KindDeposit, entries[0].Kind)
	assert.Equal(t, domain.StatusSuccess, entries[0].Status)
	assert.Equal(t, int64(1000), entries[0].Amount)
}

func TestDepositRejectsNonPositiveAmount(t *testing.T) {
	store := newFakeStore()
	store.balances[1] = 100
	lgr := New(store, 500)

	for _, amount := range []int64{0, -50} {
		_, err := lgr.Deposit(context.Background(), 1, amount)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	}
	assert.Empty(t, store.entriesFor(1))
	assert.Equal(t, int64(100), store.balances[1])
}

func TestDepositUnknownUser(t *testing.T) {
	lgr := New(newFakeStore(), 500)

	_, err := lgr.Deposit(context.Background(), 99, 100)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestWithdraw(t *testing.T) {
	store := newFakeStore()
	store.balances[1] = 2000
	lgr := New(store, 500)

	balance, err := lgr.Withdraw(context.Background(), 1, 700)
	require.NoError(t, err)
	assert.Equal(t, int64(1300), balance)

	entries := store.entriesFor(1)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.KindWithdraw, entries[0].Kind)
	assert.Equal(t, int64(-700), entries[0].Amount)
}

func TestWithdrawBelowMinimum(t *testing.T) {
	store := newFakeStore()
	store.balances[1] = 2000
	lgr := New(store, 500)

	_, err := lgr.Withdraw(context.Background(), 1, 499)
	assert.ErrorIs(t, err, domain.ErrBelowMinimum)
	assert.Equal(t, int64(2000), store.balances[1])
	assert.Empty(t, store.entriesFor(1))
}

func TestWithdrawInsufficientBalance(t *testing.T) {
	store := newFakeStore()
	store.balances[1] = 600
	lgr := New(store, 500)

	_, err := lgr.Withdraw(context.Background(), 1, 601)
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	assert.Equal(t, int64(600), store.balances[1])
	assert.Empty(t, store.entriesFor(1))
}

// Exact boundary: the whole balance can be withdrawn when it meets the minimum.
func TestWithdrawWholeBalance(t *testing.T) {
	store := newFakeStore()
	store.balances[1] = 500
	lgr := New(store, 500)

	balance, err := lgr.Withdraw(context.Background(), 1, 500)
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)
}

func TestAdjustSignedDelta(t *testing.T) {
	store := newFakeStore()
	store.balances[1] = 100
	lgr := New(store, 500)
	ctx := context.Background()

	balance, err := lgr.Adjust(ctx, 1, 50)
	require.NoError(t, err)
	assert.Equal(t, int64(150), balance)

	balance, err = lgr.Adjust(ctx, 1, -50)
	require.NoError(t, err)
	assert.Equal(t, int64(100), balance)

	entries := store.entriesFor(1)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, domain.KindGameAdjust, e.Kind)
	}
}

// Two concurrent withdrawals of the whole balance must not both pass the
// balance check: exactly one succeeds and the balance never goes negative.
func TestConcurrentWithdrawals(t *testing.T) {
	store := newFakeStore()
	store.balances[1] = 500
	lgr := New(store, 500)

	const attempts = 8
	errs := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := lgr.Withdraw(context.Background(), 1, 500)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	successes, rejections := 0, 0
	for err := range errs {
		if err == nil {
			successes++
			continue
		}
		require.ErrorIs(t, err, domain.ErrInsufficientBalance)
		rejections++
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, rejections)
	assert.Equal(t, int64(0), store.balances[1])
	assert.Len(t, store.entriesFor(1), 1)
}
