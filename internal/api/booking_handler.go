package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"careconnect-backend-go/internal/core"
	"careconnect-backend-go/internal/middleware"
	"careconnect-backend-go/internal/models"
)

// BookingHandler serves the user booking flow and the admin order panel.
type BookingHandler struct {
	bookingService core.BookingService
	logger         *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(bs core.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{bookingService: bs, logger: logger}
}

// Create handles POST /bookings.
func (h *BookingHandler) Create(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	var req models.CreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), identity, req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// ListMine handles GET /bookings/me.
func (h *BookingHandler) ListMine(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	bookings, err := h.bookingService.ListMine(c.Request.Context(), identity)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// AdminList handles GET /admin/bookings; newest first, enriched with the
// owner's name and email.
func (h *BookingHandler) AdminList(c *gin.Context) {
	bookings, err := h.bookingService.AdminList(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// UpdateStatus handles PUT /admin/bookings/:id/status.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	var req models.UpdateBookingStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	booking, err := h.bookingService.UpdateStatus(c.Request.Context(), identity, c.Param("id"), req.Status)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// Delete handles DELETE /admin/bookings/:id.
func (h *BookingHandler) Delete(c *gin.Context) {
	if err := h.bookingService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "booking deleted"})
}
