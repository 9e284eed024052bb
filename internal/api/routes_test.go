// End-to-end tests: real router, real invoker, fake backend executable.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/matiasleandrokruk/exprmcp/internal/infra/backend"
	"github.com/matiasleandrokruk/exprmcp/internal/infra/config"
)

// listingScript prints banner text around a six-entry tool listing, the way
// mcp_demo interleaves human-readable output with a single JSON block.
const listingScript = `echo "ExprPredictor MCP Demo"
echo "Registered tools:"
echo "{"
echo '  "tools": [{"name": "expr_predictor_obj_func"}, {"name": "expr_par_get_free_pars"}, {"name": "expr_predictor_train"}, {"name": "expr_predictor_predict"}, {"name": "expr_par_load"}, {"name": "expr_func_predict_expr"}]'
echo "}"
echo "Done."`

func newTestRouter(t *testing.T, scriptBody string) http.Handler {
	t.Helper()

	t.Setenv(config.EnvExecutablePath, "")
	t.Setenv(config.EnvWorkingDir, "")

	dir := t.TempDir()
	scriptPath := filepath.Join(dir, "mcp_demo.sh")
	if err := os.WriteFile(scriptPath, []byte("#!/bin/sh\n"+scriptBody+"\n"), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}

	cfgContent := fmt.Sprintf("mcp:\n  executable_path: mcp_demo.sh\n  working_directory: %q\n  timeout: 10\n", dir)
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte(cfgContent), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	inv, err := backend.New(config.Load(cfgPath), zap.NewNop())
	if err != nil {
		t.Fatalf("backend.New() error = %v", err)
	}
	return NewRouter(inv, zap.NewNop())
}

func TestHealth_HealthyWithSixTools(t *testing.T) {
	router := newTestRouter(t, listingScript)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", rr.Code, rr.Body.String())
	}

	var resp map[string]any
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["status"] != "healthy" || resp["backend"] != "accessible" {
		t.Errorf("resp = %#v, want healthy/accessible", resp)
	}
	if resp["tools_available"] != float64(6) {
		t.Errorf("tools_available = %v, want 6", resp["tools_available"])
	}
}

func TestSchemaEndpoint_ExprParLoad(t *testing.T) {
	router := newTestRouter(t, listingScript)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/tools/schema/expr_par_load", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", rr.Code, rr.Body.String())
	}

	var resp map[string]any
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["name"] != "expr_par_load" {
		t.Errorf("name = %v, want expr_par_load", resp["name"])
	}
	schema, ok := resp["inputSchema"].(map[string]any)
	if !ok {
		t.Fatalf("inputSchema = %#v, want object", resp["inputSchema"])
	}
	required, ok := schema["required"].([]any)
	if !ok {
		t.Fatalf("required = %#v, want array", schema["required"])
	}
	want := []any{"filename", "coopMat", "repIndicators"}
	if len(required) != len(want) {
		t.Fatalf("required = %v, want %v", required, want)
	}
	for i := range want {
		if required[i] != want[i] {
			t.Errorf("required[%d] = %v, want %v", i, required[i], want[i])
		}
	}
}

func TestCallEndpoint_UnknownToolIs500(t *testing.T) {
	router := newTestRouter(t, listingScript)

	req := httptest.NewRequest(http.MethodPost, "/tools/call/unknown_tool_xyz", strings.NewReader("{}"))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500, body=%s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), "Unknown tool") {
		t.Errorf("body = %s, want Unknown tool message", rr.Body.String())
	}
}

func TestCallEndpoint_KnownToolScrapesResult(t *testing.T) {
	router := newTestRouter(t, `echo "executing..."
echo "{"
echo '  "success": true, "result": {"objective": 0.042}'
echo "}"`)

	req := httptest.NewRequest(http.MethodPost, "/tools/call/expr_predictor_obj_func",
		strings.NewReader(`{"parameters": {"maxBindingWts": [1.0]}}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", rr.Code, rr.Body.String())
	}

	var resp map[string]any
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if success, _ := resp["success"].(bool); !success {
		t.Errorf("resp = %#v, want success true", resp)
	}
}

func TestListEndpoint_FallbackWhenNoJSON(t *testing.T) {
	router := newTestRouter(t, `echo "plain text only"`)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/tools/list", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var resp map[string]any
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	tools, ok := resp["tools"].([]any)
	if !ok || len(tools) != 6 {
		t.Fatalf("tools = %#v, want six-entry fallback", resp["tools"])
	}
}

func TestMCPRequestEndpoint_ListDispatch(t *testing.T) {
	router := newTestRouter(t, listingScript)

	req := httptest.NewRequest(http.MethodPost, "/mcp/request",
		strings.NewReader(`{"method": "tools/list", "params": null}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), "expr_par_load") {
		t.Errorf("body = %s, want scraped listing", rr.Body.String())
	}
}

func TestRootEndpoint_Metadata(t *testing.T) {
	router := newTestRouter(t, listingScript)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "ExprPredictor MCP Server") {
		t.Errorf("body = %s, want server name", rr.Body.String())
	}
}
