package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"careconnect-backend-go/internal/core"
	"careconnect-backend-go/internal/models"
)

// ContentHandler serves the public content blocks and their admin editors.
type ContentHandler struct {
	contentService core.ContentService
	logger         *zap.Logger
}

// NewContentHandler creates a ContentHandler.
func NewContentHandler(cs core.ContentService, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{contentService: cs, logger: logger}
}

// GetAbout handles GET /content/about.
func (h *ContentHandler) GetAbout(c *gin.Context) {
	about, err := h.contentService.GetAbout(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, about)
}

// UpdateAbout handles PUT /admin/content/about.
func (h *ContentHandler) UpdateAbout(c *gin.Context) {
	var req models.UpdateAboutRequest
	if !bindJSON(c, &req) {
		return
	}

	about, err := h.contentService.UpdateAbout(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, about)
}

// GetFooter handles GET /content/footer.
func (h *ContentHandler) GetFooter(c *gin.Context) {
	footer, err := h.contentService.GetFooter(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, footer)
}

// UpdateFooter handles PUT /admin/content/footer.
func (h *ContentHandler) UpdateFooter(c *gin.Context) {
	var req models.UpdateFooterRequest
	if !bindJSON(c, &req) {
		return
	}

	footer, err := h.contentService.UpdateFooter(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, footer)
}

// ListSlides handles GET /content/slides, ordered by the order field.
func (h *ContentHandler) ListSlides(c *gin.Context) {
	slides, err := h.contentService.ListSlides(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, slides)
}

// CreateSlide handles POST /admin/content/slides.
func (h *ContentHandler) CreateSlide(c *gin.Context) {
	var req models.CreateSlideRequest
	if !bindJSON(c, &req) {
		return
	}

	slide, err := h.contentService.CreateSlide(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, slide)
}

// UpdateSlide handles PUT /admin/content/slides/:id.
func (h *ContentHandler) UpdateSlide(c *gin.Context) {
	var req models.UpdateSlideRequest
	if !bindJSON(c, &req) {
		return
	}

	slide, err := h.contentService.UpdateSlide(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, slide)
}

// DeleteSlide handles DELETE /admin/content/slides/:id.
func (h *ContentHandler) DeleteSlide(c *gin.Context) {
	if err := h.contentService.DeleteSlide(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "slide deleted"})
}
