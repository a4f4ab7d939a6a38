package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"careconnect-backend-go/internal/core"
	"careconnect-backend-go/internal/models"
)

// CatalogHandler serves the public catalog and the admin service CRUD.
type CatalogHandler struct {
	catalogService core.CatalogService
	logger         *zap.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(cs core.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{catalogService: cs, logger: logger}
}

// PublicList handles GET /services. Inactive services are excluded.
func (h *CatalogHandler) PublicList(c *gin.Context) {
	services, err := h.catalogService.PublicList(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// PublicGet handles GET /services/:id.
func (h *CatalogHandler) PublicGet(c *gin.Context) {
	svc, err := h.catalogService.PublicGet(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// AdminList handles GET /admin/services and includes inactive services.
func (h *CatalogHandler) AdminList(c *gin.Context) {
	services, err := h.catalogService.AdminList(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// Create handles POST /admin/services.
func (h *CatalogHandler) Create(c *gin.Context) {
	var req models.CreateServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	svc, err := h.catalogService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// Update handles PUT /admin/services/:id.
func (h *CatalogHandler) Update(c *gin.Context) {
	var req models.UpdateServiceRequest
	if !bindJSON(c, &req) {
		return
	}

	svc, err := h.catalogService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// Delete handles DELETE /admin/services/:id.
func (h *CatalogHandler) Delete(c *gin.Context) {
	if err := h.catalogService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "service deleted"})
}
