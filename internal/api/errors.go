package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"careconnect-backend-go/internal/core"
	"careconnect-backend-go/internal/db"
)

// respondError maps service errors onto the HTTP failure taxonomy:
// validation -> 400 with a field map, forbidden -> 403 with the reason,
// not found -> 404, everything else -> generic 500 with the detail logged
// server-side only.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	var vErr *core.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Fields: vErr.Fields})
	case errors.Is(err, core.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, db.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "resource not found"})
	default:
		logger.Error("request failed",
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
