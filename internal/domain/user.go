package domain

// User Model
type User struct {
	ID       uint   `gorm:"primaryKey"`         // Primary key
	Email    string `gorm:"unique;not null"`    // Unique email, stored case-sensitive
	Password string `gorm:"not null"`           // Bcrypt password hash
	Wallet   int64  `gorm:"not null;default:0"` // Balance in whole currency units
}
