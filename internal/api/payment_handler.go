package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"careconnect-backend-go/internal/core"
	"careconnect-backend-go/internal/middleware"
	"careconnect-backend-go/internal/models"
)

// PaymentHandler serves the payment-intent bridge.
type PaymentHandler struct {
	paymentService core.PaymentService
	logger         *zap.Logger
}

// NewPaymentHandler creates a PaymentHandler.
func NewPaymentHandler(ps core.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{paymentService: ps, logger: logger}
}

// CreateIntent handles POST /payments/create-intent. The response carries
// the client-side confirmation secret; nothing is stored locally.
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	var req models.CreateIntentRequest
	if !bindJSON(c, &req) {
		return
	}

	intent, err := h.paymentService.CreateIntent(c.Request.Context(), identity, req.Amount)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, intent)
}
