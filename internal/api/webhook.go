package api

import (
	"net/http" // HTTP status codes

	"github.com/ashish6109/ludo-backend/internal/cache"
	"github.com/ashish6109/ludo-backend/internal/ledger"

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// webhookAck is the only body the payment provider ever sees. Returning an
// error would make the provider retry the callback indefinitely.
const webhookAck = "WEBHOOK_OK"

// statusPaid is the provider's marker for a settled payment.
const statusPaid = "paid"

// WebhookRequest is the payment provider's callback body
type WebhookRequest struct {
	Email  string `json:"email"`  // Paying user's email
	Amount int64  `json:"amount"` // Settled amount in currency units
	Status string `json:"status"` // Provider payment status
}

// WebhookHandler ingests the provider's deposit callback. Unknown users and
// unpaid statuses are logged and discarded; the provider is acknowledged in
// every case.
func WebhookHandler(users UserStore, lgr *ledger.Ledger, cch *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req WebhookRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logrus.WithField("error", err.Error()).Warn("Webhook with malformed body discarded")
			c.String(http.StatusOK, webhookAck)
			return
		}
		if req.Status != statusPaid {
			logrus.WithFields(logrus.Fields{
				"email":  req.Email,
				"status": req.Status,
			}).Info("Webhook with non-paid status discarded")
			c.String(http.StatusOK, webhookAck)
			return
		}
		ctx := c.Request.Context()
		user, err := users.UserByEmail(ctx, req.Email)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"email": req.Email,
				"error": err.Error(),
			}).Warn("Webhook for unknown user discarded")
			c.String(http.StatusOK, webhookAck)
			return
		}
		if _, err := lgr.Deposit(ctx, user.ID, req.Amount); err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": user.ID,
				"amount":  req.Amount,
				"error":   err.Error(),
			}).Error("Webhook deposit failed")
			c.String(http.StatusOK, webhookAck)
			return
		}
		cch.InvalidateUser(ctx, user.ID)
		c.String(http.StatusOK, webhookAck)
	}
}
