package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/matiasleandrokruk/exprmcp/internal/infra/backend"
)

// HealthHandler probes the backend by running a tool listing through it.
type HealthHandler struct {
	backend Backend
	logger  *zap.Logger
}

func NewHealthHandler(b Backend, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{backend: b, logger: logger}
}

// Check reports healthy with the available tool count, or 503 with the
// backend error when the listing fails.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	result, err := h.backend.Call(r.Context(), backend.MethodListTools, nil)
	if err != nil {
		h.logger.Warn("health check failed", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":          "healthy",
		"backend":         "accessible",
		"tools_available": toolCount(result),
	})
}
