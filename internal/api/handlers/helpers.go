// Handler helper functions shared across the HTTP surface.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Backend is the invoker surface the handlers depend on. Kept narrow so
// tests can substitute fakes.
type Backend interface {
	Call(ctx context.Context, method string, params map[string]any) (any, error)
}

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error":"failed to encode response"}`, http.StatusInternalServerError)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// toolCount counts the entries under a listing's "tools" key. Scraped
// listings parse to []any; the static fallback carries typed descriptors.
func toolCount(result any) int {
	m, ok := result.(map[string]any)
	if !ok {
		return 0
	}
	switch tools := m["tools"].(type) {
	case []any:
		return len(tools)
	case []mcp.Tool:
		return len(tools)
	}
	return 0
}
