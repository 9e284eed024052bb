package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// MCPHandler serves the generic JSON-RPC style request endpoint.
type MCPHandler struct {
	backend Backend
	logger  *zap.Logger
}

func NewMCPHandler(b Backend, logger *zap.Logger) *MCPHandler {
	return &MCPHandler{backend: b, logger: logger}
}

type mcpRequest struct {
	Method string         `json:"method"`
	Params map[string]any `json:"params"`
}

// Request dispatches a {method, params} envelope to the backend invoker.
func (h *MCPHandler) Request(w http.ResponseWriter, r *http.Request) {
	var req mcpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.backend.Call(r.Context(), req.Method, req.Params)
	if err != nil {
		h.logger.Error("mcp request failed", zap.String("method", req.Method), zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}
