package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"careconnect-backend-go/internal/core"
	"careconnect-backend-go/internal/models"
)

// TestimonialHandler serves public testimonials and their admin CRUD.
type TestimonialHandler struct {
	testimonialService core.TestimonialService
	logger             *zap.Logger
}

// NewTestimonialHandler creates a TestimonialHandler.
func NewTestimonialHandler(ts core.TestimonialService, logger *zap.Logger) *TestimonialHandler {
	return &TestimonialHandler{testimonialService: ts, logger: logger}
}

// PublicList handles GET /testimonials; hidden entries are excluded.
func (h *TestimonialHandler) PublicList(c *gin.Context) {
	testimonials, err := h.testimonialService.PublicList(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, testimonials)
}

// AdminList handles GET /admin/testimonials, hidden entries included.
func (h *TestimonialHandler) AdminList(c *gin.Context) {
	testimonials, err := h.testimonialService.AdminList(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, testimonials)
}

// Create handles POST /admin/testimonials.
func (h *TestimonialHandler) Create(c *gin.Context) {
	var req models.CreateTestimonialRequest
	if !bindJSON(c, &req) {
		return
	}

	t, err := h.testimonialService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// Update handles PUT /admin/testimonials/:id.
func (h *TestimonialHandler) Update(c *gin.Context) {
	var req models.UpdateTestimonialRequest
	if !bindJSON(c, &req) {
		return
	}

	t, err := h.testimonialService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// Delete handles DELETE /admin/testimonials/:id.
func (h *TestimonialHandler) Delete(c *gin.Context) {
	if err := h.testimonialService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "testimonial deleted"})
}
