package main

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_Version(t *testing.T) {
	var out strings.Builder
	code := run([]string{"-version"}, &out)

	if code != 0 {
		t.Fatalf("run(-version) = %d, want 0", code)
	}
	if !strings.Contains(out.String(), "exprmcp version") {
		t.Errorf("output = %q, want version string", out.String())
	}
}

func TestRun_Help(t *testing.T) {
	var out strings.Builder
	code := run([]string{"-help"}, &out)

	if code != 0 {
		t.Fatalf("run(-help) = %d, want 0", code)
	}
	if !strings.Contains(out.String(), "Usage:") {
		t.Errorf("output = %q, want usage text", out.String())
	}
	if !strings.Contains(out.String(), "MCP_EXECUTABLE_PATH") {
		t.Errorf("output = %q, want env override docs", out.String())
	}
}

func TestRun_UnknownFlag(t *testing.T) {
	var out strings.Builder
	code := run([]string{"-bogus"}, &out)

	if code != 2 {
		t.Fatalf("run(-bogus) = %d, want 2", code)
	}
}

func TestRun_ServeFailsFastWithoutBackend(t *testing.T) {
	// Default config points at ./mcp_demo, which does not exist in a temp
	// working directory; backend construction must fail before listening.
	t.Setenv("MCP_SERVER_HOST", "")
	t.Setenv("MCP_SERVER_PORT", "")
	t.Setenv("MCP_EXECUTABLE_PATH", "")
	t.Setenv("MCP_WORKING_DIR", t.TempDir())

	var out strings.Builder
	code := run([]string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}, &out)

	if code != 1 {
		t.Fatalf("run() = %d, want 1 when the backend executable is missing", code)
	}
}
