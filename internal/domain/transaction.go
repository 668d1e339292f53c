package domain

// Transaction kinds
const (
	KindDeposit    = "deposit"     // Credit from the payment provider
	KindWithdraw   = "withdraw"    // Debit requested by the user
	KindGameAdjust = "game-adjust" // Credit or debit from a game outcome
)

// Transaction statuses
const (
	StatusPending = "pending"
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// Transaction is one append-only ledger entry. Every successful balance
// mutation has exactly one matching row; rows are never updated or deleted.
type Transaction struct {
	ID        uint   `gorm:"primaryKey"`           // Primary key
	UserID    uint   `gorm:"index;not null"`       // Owning user
	Amount    int64  // Signed amount, negative for debits
	Kind      string `gorm:"not null"`             // deposit, withdraw or game-adjust
	Status    string `gorm:"not null"`             // pending, success or failed
	CreatedAt int64  `gorm:"autoCreateTime:milli"` // Timestamp of creation in milliseconds
}
