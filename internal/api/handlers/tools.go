package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/matiasleandrokruk/exprmcp/internal/infra/backend"
)

// ToolsHandler serves the tool listing, schema lookup, and call endpoints.
type ToolsHandler struct {
	backend Backend
	logger  *zap.Logger
}

func NewToolsHandler(b Backend, logger *zap.Logger) *ToolsHandler {
	return &ToolsHandler{backend: b, logger: logger}
}

// List returns the backend's tool listing (scraped or fallback).
func (h *ToolsHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.backend.Call(r.Context(), backend.MethodListTools, nil)
	if err != nil {
		h.logger.Error("list tools failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Schema returns the catalog descriptor for the named tool.
func (h *ToolsHandler) Schema(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	result, err := h.backend.Call(r.Context(), backend.MethodGetSchema, map[string]any{"name": name})
	if err != nil {
		h.logger.Error("get schema failed", zap.String("tool", name), zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Call executes the named tool. The request body is a JSON object of
// arguments; the backend is invoked without them (it accepts no input), so
// they only travel as far as validation here.
func (h *ToolsHandler) Call(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var args map[string]any
	if err := json.NewDecoder(r.Body).Decode(&args); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.backend.Call(r.Context(), backend.MethodCallTool, map[string]any{
		"name":      name,
		"arguments": args,
	})
	if err != nil {
		h.logger.Error("tool call failed", zap.String("tool", name), zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}
