// exprmcp - HTTP bridge for ExprPredictor MCP tools.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/matiasleandrokruk/exprmcp/internal/infra/backend"
	"github.com/matiasleandrokruk/exprmcp/internal/infra/config"
	"github.com/matiasleandrokruk/exprmcp/internal/server"
	"github.com/matiasleandrokruk/exprmcp/internal/version"
)

const shutdownGrace = 10 * time.Second

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	fs := flag.NewFlagSet("exprmcp", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	configPath := fs.String("config", config.DefaultPath, "Path to configuration file")
	showVersion := fs.Bool("version", false, "Show version information")
	showHelp := fs.Bool("help", false, "Show help")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintln(out, version.String()) //nolint:errcheck
		return 0
	}

	if *showHelp {
		printHelp(out)
		return 0
	}

	return serve(*configPath, out)
}

func serve(configPath string, out io.Writer) int {
	cfg := config.Load(configPath)

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(out, "logger setup failed: %v\n", err) //nolint:errcheck
		return 1
	}
	defer logger.Sync() //nolint:errcheck

	inv, err := backend.New(cfg, logger)
	if err != nil {
		logger.Error("backend setup failed", zap.Error(err))
		return 1
	}

	srvCfg := server.DefaultConfig()
	srvCfg.Host = cfg.GetString("server.host", srvCfg.Host)
	srvCfg.Port = cfg.GetInt("server.port", srvCfg.Port)
	srv := server.New(inv, srvCfg, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", zap.Error(err))
			return 1
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown error", zap.Error(err))
			return 1
		}
	}
	return 0
}

// newLogger builds the process logger from the logging.level key, switching
// to the development encoder when server.debug is set.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if cfg.GetBool("server.debug", false) {
		zapCfg = zap.NewDevelopmentConfig()
	}
	if level, err := zapcore.ParseLevel(cfg.GetString("logging.level", "info")); err == nil {
		zapCfg.Level = zap.NewAtomicLevelAt(level)
	}
	return zapCfg.Build()
}

func printHelp(out io.Writer) {
	helpText := `exprmcp - HTTP bridge for ExprPredictor MCP tools

Usage:
  exprmcp [options]

Options:
  --config PATH  Path to configuration file (default: config.yaml)
  --version      Show version information
  --help         Show this help message

Environment overrides (take precedence over the configuration file):
  MCP_SERVER_HOST      Listen host
  MCP_SERVER_PORT      Listen port
  MCP_EXECUTABLE_PATH  Backend executable path
  MCP_WORKING_DIR      Backend working directory`
	fmt.Fprintln(out, helpText) //nolint:errcheck
}
