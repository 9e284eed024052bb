// Package backend invokes the external mcp_demo executable and reshapes its
// console output into structured results. The executable takes no arguments
// and no stdin: every logical operation spawns it identically, and the
// response is recovered by scanning whatever it prints.
package backend

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/matiasleandrokruk/exprmcp/internal/domain/tool"
	"github.com/matiasleandrokruk/exprmcp/internal/infra/config"
)

// Methods accepted by Call.
const (
	MethodListTools = "tools/list"
	MethodGetSchema = "tools/get_schema"
	MethodCallTool  = "tools/call"
)

// ErrTimeout is returned when the subprocess exceeds the configured timeout.
var ErrTimeout = errors.New("backend timeout")

// DefaultTimeout bounds an invocation when the configuration provides none.
const DefaultTimeout = 30 * time.Second

// Invoker runs the backend executable. Immutable after New, so concurrent
// calls need no locking; each call spawns an independent subprocess with no
// pooling or admission control.
type Invoker struct {
	executablePath string
	workingDir     string
	timeout        time.Duration
	logger         *zap.Logger
}

// New resolves the executable path from configuration and verifies it
// exists. A relative executable path is resolved against the working
// directory. The file's content is never inspected.
func New(cfg *config.Config, logger *zap.Logger) (*Invoker, error) {
	workDir, err := filepath.Abs(cfg.GetString("mcp.working_directory", "."))
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	execPath := cfg.GetString("mcp.executable_path", "./mcp_demo")
	if !filepath.IsAbs(execPath) {
		execPath = filepath.Join(workDir, execPath)
	}

	if _, err := os.Stat(execPath); err != nil {
		return nil, fmt.Errorf("mcp executable not found: %s", execPath)
	}

	return &Invoker{
		executablePath: execPath,
		workingDir:     workDir,
		timeout:        cfg.GetDuration("mcp.timeout", DefaultTimeout),
		logger:         logger,
	}, nil
}

// Call performs one logical backend operation. The backend receives no
// indication of which tool or arguments were requested; params only steer
// validation and response shaping on this side.
func (inv *Invoker) Call(ctx context.Context, method string, params map[string]any) (any, error) {
	switch method {
	case MethodListTools:
		return inv.listTools(ctx)
	case MethodGetSchema:
		name, _ := params["name"].(string)
		return inv.getSchema(name)
	case MethodCallTool:
		name, _ := params["name"].(string)
		return inv.executeTool(ctx, name)
	default:
		return nil, fmt.Errorf("Unknown method: %s", method)
	}
}

// listTools invokes the executable and scrapes a tool listing out of its
// output, falling back to the static catalog when none is found.
func (inv *Invoker) listTools(ctx context.Context) (any, error) {
	output, err := inv.invoke(ctx)
	if err != nil {
		return nil, err
	}
	return extract(output, listingResponse), nil
}

// getSchema answers from the static catalog; the backend is not consulted.
func (inv *Invoker) getSchema(name string) (any, error) {
	if name == "" {
		return nil, errors.New("Tool name is required")
	}
	return tool.Schema(name)
}

// executeTool validates the name against the catalog, then invokes the
// executable and scrapes a call result. The caller's arguments never reach
// the backend.
func (inv *Invoker) executeTool(ctx context.Context, name string) (any, error) {
	if name == "" {
		return nil, errors.New("Tool name is required")
	}
	if !tool.Known(name) {
		return nil, fmt.Errorf("%w: %s", tool.ErrUnknownTool, name)
	}

	output, err := inv.invoke(ctx)
	if err != nil {
		return nil, err
	}
	return extract(output, callResponse), nil
}

// invoke runs the executable once with no arguments and returns its stdout.
// The timeout is measured from process start; on expiry the process is
// killed. A non-zero exit surfaces captured stderr, or a placeholder when
// stderr is empty.
func (inv *Invoker) invoke(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, inv.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, inv.executablePath)
	cmd.Dir = inv.workingDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		inv.logger.Warn("backend invocation timed out",
			zap.Duration("timeout", inv.timeout))
		return "", fmt.Errorf("%w after %s", ErrTimeout, inv.timeout)
	}
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = "unknown error"
		}
		return "", fmt.Errorf("backend failed: %s", msg)
	}

	inv.logger.Debug("backend invocation finished",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("stdout_bytes", stdout.Len()))
	return stdout.String(), nil
}
