package handlers

import (
	"net/http"

	"dentalcare/models"
	"dentalcare/services/payment"
	"dentalcare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	Gateway payment.Gateway
	Logger  *zap.Logger
}

func NewPaymentHandler(gw payment.Gateway, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Gateway: gw, Logger: logger}
}

// CreatePaymentIntentHandler handles POST /create-payment-intent.
func (h *PaymentHandler) CreatePaymentIntentHandler(c *gin.Context) {
	var req models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payment request", err.Error())
		return
	}

	intent, err := h.Gateway.CreatePaymentIntent(c.Request.Context(), req.Price)
	if err != nil {
		respondError(c, h.Logger, "Failed to create payment intent", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": intent.ClientSecret})
}
