package auth

import (
	"context"
	"regexp" // Regular expressions for input validation

	"github.com/ashish6109/ludo-backend/internal/domain"
	"github.com/ashish6109/ludo-backend/internal/token"

	"golang.org/x/crypto/bcrypt" // Password hashing
)

// emailPattern is a loose shape check, not full RFC validation.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// CredentialStore persists user identity and password hash. The store never
// sees a plaintext password.
type CredentialStore interface {
	CreateUser(ctx context.Context, email, passwordHash string) (uint, error)
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Service handles signup and login. It is the only component that touches
// plaintext passwords, and only long enough to hash or compare them.
type Service struct {
	store  CredentialStore
	tokens *token.Service
}

// NewService creates an auth service over the given store and token signer
func NewService(store CredentialStore, tokens *token.Service) *Service {
	return &Service{store: store, tokens: tokens}
}

// isValidEmail checks the email has a plausible address shape
func isValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// isValidPassword checks the password length is between 8 and 72 characters
func isValidPassword(password string) bool {
	// 72 is the bcrypt input limit
	return len(password) >= 8 && len(password) <= 72
}

// Signup validates inputs, hashes the password and creates the user with a
// zero wallet balance. Emails are kept case-sensitive; the store's unique
// index makes the duplicate check and the insert one logical operation.
func (s *Service) Signup(ctx context.Context, email, password string) error {
	if !isValidEmail(email) || !isValidPassword(password) {
		return domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = s.store.CreateUser(ctx, email, string(hash))
	return err
}

// Login checks the credentials and returns a signed bearer token
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.store.UserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", domain.ErrWrongPassword
	}
	return s.tokens.Issue(user.ID)
}
