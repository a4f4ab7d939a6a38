package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"careconnect-backend-go/internal/core"
)

// ActivityHandler serves the admin activity log view.
type ActivityHandler struct {
	activityService core.ActivityService
	logger          *zap.Logger
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(as core.ActivityService, logger *zap.Logger) *ActivityHandler {
	return &ActivityHandler{activityService: as, logger: logger}
}

// List handles GET /admin/activity-logs?limit=n, newest first.
func (h *ActivityHandler) List(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:  "validation failed",
				Fields: map[string]string{"limit": "must be a non-negative integer"},
			})
			return
		}
		limit = parsed
	}

	entries, err := h.activityService.List(c.Request.Context(), limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
