package handlers

import (
	"net/http"

	"github.com/matiasleandrokruk/exprmcp/internal/version"
)

// RootHandler serves the server metadata endpoint.
type RootHandler struct{}

func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

// Metadata returns server identity and the endpoint map.
func (h *RootHandler) Metadata(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"name":        "ExprPredictor MCP Server",
		"version":     version.Version,
		"description": "HTTP bridge for ExprPredictor MCP tools",
		"endpoints": map[string]string{
			"tools":  "/tools/list",
			"call":   "/tools/call/{tool_name}",
			"schema": "/tools/schema/{tool_name}",
			"health": "/health",
		},
	})
}
