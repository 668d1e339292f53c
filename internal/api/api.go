package api

import (
	"context"
	"net/http"

	"github.com/ashish6109/ludo-backend/internal/domain"

	"github.com/gin-gonic/gin" // Gin web framework
)

// UserStore is the read-only user lookup the handlers need. All writes go
// through the ledger.
type UserStore interface {
	UserByID(ctx context.Context, id uint) (*domain.User, error)
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// TransactionStore serves the paginated ledger history.
type TransactionStore interface {
	TransactionsByUser(ctx context.Context, userID uint, offset, limit int) ([]domain.Transaction, int64, error)
}

// currentUserID reads the user ID the JWT middleware stored in the context.
// A missing value means the route was wired without the middleware.
func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	userID, ok := v.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}
