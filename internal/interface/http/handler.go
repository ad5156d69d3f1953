package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/leetstats/internal/domain/profilestats"
	apperrors "github.com/yanqian/leetstats/pkg/errors"
	"github.com/yanqian/leetstats/pkg/util"
)

// Handler wires the HTTP transport to the aggregation domain.
type Handler struct {
	statsSvc profilestats.Service
	logger   *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(statsSvc profilestats.Service, logger *slog.Logger) *Handler {
	return &Handler{
		statsSvc: statsSvc,
		logger:   logger.With("component", "http.handler"),
	}
}

// Health is the liveness probe; it never touches the aggregation pipeline.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": util.Now().Format(time.RFC3339),
	})
}

// UserProfile runs the aggregation pipeline for one username.
func (h *Handler) UserProfile(c *gin.Context) {
	username := c.Param("username")

	report, err := h.statsSvc.ProfileReport(c.Request.Context(), username)
	if err != nil {
		status := http.StatusInternalServerError
		code := "internal_error"
		switch apperrors.Code(err) {
		case "invalid_input":
			status = http.StatusBadRequest
			code = "invalid_request"
		case "not_found":
			status = http.StatusNotFound
			code = "not_found"
		case "upstream_error":
			status = http.StatusBadGateway
			code = "upstream_error"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, report)
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
