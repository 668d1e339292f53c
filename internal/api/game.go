package api

import (
	"errors"
	"net/http" // HTTP status codes

	"github.com/ashish6109/ludo-backend/internal/cache"
	"github.com/ashish6109/ludo-backend/internal/domain"
	"github.com/ashish6109/ludo-backend/internal/game"

	"github.com/gin-gonic/gin" // Gin web framework
)

// PlayHandler evaluates one game round for the authenticated user
func PlayHandler(eval *game.Evaluator, cch *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		result, balance, err := eval.Play(c.Request.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrNoBalance):
				c.JSON(http.StatusBadRequest, gin.H{"error": "No balance, deposit first"})
			case errors.Is(err, domain.ErrUserNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Play failed"})
			}
			return
		}
		cch.InvalidateUser(c.Request.Context(), userID)
		c.JSON(http.StatusOK, gin.H{"result": result, "wallet": balance})
	}
}
