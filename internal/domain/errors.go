package domain

import "errors"

// Sentinel errors shared by the services and mapped to HTTP responses at the
// handler boundary with errors.Is.
var (
	// ErrUserExists is returned when signing up with an email that is already registered
	ErrUserExists = errors.New("user already exists")

	// ErrUserNotFound is returned when no user matches the given email or id
	ErrUserNotFound = errors.New("user not found")

	// ErrWrongPassword is returned when login credentials do not match the stored hash
	ErrWrongPassword = errors.New("wrong password")

	// ErrInvalidInput is returned for missing or malformed signup inputs
	ErrInvalidInput = errors.New("invalid inputs")

	// ErrInvalidAmount is returned when a deposit amount is zero or negative
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrBelowMinimum is returned when a withdrawal is under the configured minimum
	ErrBelowMinimum = errors.New("withdraw amount below minimum")

	// ErrInsufficientBalance is returned when a debit would take the balance negative
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrNoBalance is returned when playing with an empty wallet
	ErrNoBalance = errors.New("no balance")
)
