package api

import (
	"errors"
	"fmt"
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"github.com/ashish6109/ludo-backend/internal/cache"
	"github.com/ashish6109/ludo-backend/internal/domain"
	"github.com/ashish6109/ludo-backend/internal/ledger"

	"github.com/gin-gonic/gin" // Gin web framework
)

// walletView is the cached shape of GET /wallet
type walletView struct {
	Email  string `json:"email"`
	Wallet int64  `json:"wallet"`
}

// WalletHandler returns the authenticated user's email and balance
func WalletHandler(users UserStore, cch *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		ctx := c.Request.Context()
		cacheKey := cache.WalletKey(userID)
		var view walletView
		if found, err := cch.Get(ctx, cacheKey, &view); err == nil && found {
			c.JSON(http.StatusOK, view)
			return
		}
		user, err := users.UserByID(ctx, userID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wallet"})
			return
		}
		view = walletView{Email: user.Email, Wallet: user.Wallet}
		_ = cch.Set(ctx, cacheKey, view)
		c.JSON(http.StatusOK, view)
	}
}

// WithdrawRequest is the body for POST /withdraw
type WithdrawRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"` // Withdrawal amount
}

// WithdrawHandler debits the authenticated user's wallet through the ledger
func WithdrawHandler(lgr *ledger.Ledger, cch *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		var req WithdrawRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid inputs"})
			return
		}
		balance, err := lgr.Withdraw(c.Request.Context(), userID, req.Amount)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrBelowMinimum):
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Minimum withdraw %d", lgr.MinWithdraw())})
			case errors.Is(err, domain.ErrInsufficientBalance):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient balance"})
			case errors.Is(err, domain.ErrUserNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Withdraw failed"})
			}
			return
		}
		cch.InvalidateUser(c.Request.Context(), userID)
		c.JSON(http.StatusOK, gin.H{"success": true, "wallet": balance})
	}
}

// TransactionHistoryHandler returns one page of the user's ledger entries
func TransactionHistoryHandler(txs TransactionStore, cch *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		page := 1      // Default page
		pageSize := 20 // Default page size
		if p := c.Query("page"); p != "" {
			if v, err := strconv.Atoi(p); err == nil && v > 0 {
				page = v
			}
		}
		if ps := c.Query("page_size"); ps != "" {
			if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
				pageSize = v
			}
		}
		ctx := c.Request.Context()
		cacheKey := cache.HistoryKey(userID, page, pageSize)
		var cached struct {
			Transactions []domain.Transaction `json:"transactions"`
			Page         int                  `json:"page"`
			PageSize     int                  `json:"page_size"`
			Total        int64                `json:"total"`
			TotalPages   int                  `json:"total_pages"`
		}
		if found, err := cch.Get(ctx, cacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, cached)
			return
		}
		offset := (page - 1) * pageSize
		transactions, total, err := txs.TransactionsByUser(ctx, userID, offset, pageSize)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
			return
		}
		cached.Transactions = transactions
		cached.Page = page
		cached.PageSize = pageSize
		cached.Total = total
		cached.TotalPages = (int(total) + pageSize - 1) / pageSize
		_ = cch.Set(ctx, cacheKey, cached)
		c.JSON(http.StatusOK, cached)
	}
}
