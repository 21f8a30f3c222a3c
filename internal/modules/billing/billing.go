// Package billing holds the manual payment-verification stub. Submissions are
// recorded for later review; nothing is actually verified or unlocked here.
package billing

import (
	"github.com/gin-gonic/gin"
	"github.com/studypal/core/internal/middleware"
	"github.com/studypal/core/internal/models"
	"github.com/studypal/core/internal/pkg/response"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Handler struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewHandler(db *gorm.DB, log *zap.Logger) *Handler {
	return &Handler{db: db, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/subscribe", authMW, h.subscribe)
}

type subscribeDTO struct {
	TransactionID string `json:"transactionId" binding:"required"`
}

// POST /api/subscribe  [auth]
func (h *Handler) subscribe(c *gin.Context) {
	var dto subscribeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Transaction ID required")
		return
	}

	userID := middleware.CurrentUserID(c)

	var user models.UserModel
	if err := h.db.First(&user, userID).Error; err != nil {
		h.log.Error("subscribe: user lookup failed", zap.Uint("user_id", userID), zap.Error(err))
		response.InternalError(c)
		return
	}
	if user.PaymentTransactionIDs == "" {
		user.PaymentTransactionIDs = dto.TransactionID
	} else {
		user.PaymentTransactionIDs += "," + dto.TransactionID
	}
	if err := h.db.Model(&user).Update("payment_transaction_ids", user.PaymentTransactionIDs).Error; err != nil {
		h.log.Error("subscribe: record transaction failed", zap.Uint("user_id", userID), zap.Error(err))
		response.InternalError(c)
		return
	}

	h.log.Info("payment verification requested",
		zap.Uint("user_id", userID),
		zap.String("transaction_id", dto.TransactionID),
	)
	response.OK(c, gin.H{"message": "Payment submitted for verification. Premium will be unlocked shortly."})
}
