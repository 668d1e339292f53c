package api

import (
	"errors"
	"net/http" // HTTP status codes

	"github.com/ashish6109/ludo-backend/internal/auth"
	"github.com/ashish6109/ludo-backend/internal/domain"

	"github.com/gin-gonic/gin" // Gin web framework
)

// SignupRequest is the body for POST /signup
type SignupRequest struct {
	Email    string `json:"email" binding:"required"`    // Email must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// LoginRequest is the body for POST /login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignupHandler registers a new user with an empty wallet
func SignupHandler(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid inputs"})
			return
		}
		if err := svc.Signup(c.Request.Context(), req.Email, req.Password); err != nil {
			switch {
			case errors.Is(err, domain.ErrInvalidInput):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid inputs"})
			case errors.Is(err, domain.ErrUserExists):
				c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Signup failed"})
			}
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true})
	}
}

// LoginHandler authenticates a user and returns a bearer token
func LoginHandler(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid inputs"})
			return
		}
		tokenStr, err := svc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrUserNotFound):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			case errors.Is(err, domain.ErrWrongPassword):
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Wrong password"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "token": tokenStr})
	}
}
