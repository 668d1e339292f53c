package repository

import (
	"context"
	"errors"

	"github.com/ashish6109/ludo-backend/internal/domain"

	"gorm.io/gorm" // GORM ORM library
)

// Repository is the GORM-backed store for users and the transaction log.
// It implements auth.CredentialStore, ledger.Store and the read interfaces
// used by the API handlers.
type Repository struct {
	db *gorm.DB
}

// New creates a repository over an open GORM handle. The handle must be
// opened with TranslateError so duplicate-key violations surface as
// gorm.ErrDuplicatedKey.
func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateUser inserts a new user with a zero wallet balance. The unique index
// on email makes the membership check and the insert one logical operation.
func (r *Repository) CreateUser(ctx context.Context, email, passwordHash string) (uint, error) {
	user := domain.User{Email: email, Password: passwordHash}
	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, domain.ErrUserExists
		}
		return 0, err
	}
	return user.ID, nil
}

// UserByEmail fetches a user by exact email match
func (r *Repository) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UserByID fetches a user by primary key
func (r *Repository) UserByID(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Apply executes one signed balance change atomically. The balance predicate
// is part of the UPDATE itself, so two concurrent debits for the same user
// cannot both pass the check and overdraw the wallet: the row is changed only
// where wallet + delta stays non-negative, and a zero row count means the
// condition (or the user) was missing. The ledger row is appended in the same
// database transaction, so balance change and audit entry commit together or
// not at all.
func (r *Repository) Apply(ctx context.Context, userID uint, delta int64, kind string) (int64, error) {
	var newBalance int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.User{}).
			Where("id = ? AND wallet + ? >= 0", userID, delta).
			Update("wallet", gorm.Expr("wallet + ?", delta))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Distinguish a missing user from an insufficient balance
			var count int64
			if err := tx.Model(&domain.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return domain.ErrUserNotFound
			}
			return domain.ErrInsufficientBalance
		}
		entry := domain.Transaction{
			UserID: userID,
			Amount: delta,
			Kind:   kind,
			Status: domain.StatusSuccess,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		var user domain.User
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}
		newBalance = user.Wallet
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newBalance, nil
}

// TransactionsByUser returns one page of the user's ledger entries, newest
// first, along with the total count for pagination.
func (r *Repository) TransactionsByUser(ctx context.Context, userID uint, offset, limit int) ([]domain.Transaction, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Transaction{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var transactions []domain.Transaction
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, 0, err
	}
	return transactions, total, nil
}
