// Package config loads the bridge configuration from a YAML file and applies
// environment variable overrides. Loading never fails: a missing or
// unparseable file degrades to the documented defaults so the binary always
// starts. The merged tree is immutable after Load.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks when no path is given.
const DefaultPath = "config.yaml"

// Environment variables that override file-provided values. Env wins.
const (
	EnvServerHost     = "MCP_SERVER_HOST"
	EnvServerPort     = "MCP_SERVER_PORT"
	EnvExecutablePath = "MCP_EXECUTABLE_PATH"
	EnvWorkingDir     = "MCP_WORKING_DIR"
)

// Config is the merged configuration tree.
type Config struct {
	tree map[string]any
}

// Load reads the YAML file at path. A missing file or parse error yields the
// full default configuration, never a partial merge. Environment overrides
// are applied last, after the file.
func Load(path string) *Config {
	if path == "" {
		path = DefaultPath
	}

	tree := defaultTree()
	if data, err := os.ReadFile(path); err == nil {
		var parsed map[string]any
		if yaml.Unmarshal(data, &parsed) == nil && parsed != nil {
			tree = parsed
		}
	}

	cfg := &Config{tree: tree}
	cfg.applyEnvOverrides()
	return cfg
}

// defaultTree is the configuration used when no file can be read.
func defaultTree() map[string]any {
	return map[string]any{
		"server": map[string]any{
			"host":  "0.0.0.0",
			"port":  8080,
			"debug": false,
		},
		"mcp": map[string]any{
			"executable_path":   "./mcp_demo",
			"working_directory": ".",
			"timeout":           30,
		},
		"logging": map[string]any{
			"level": "info",
		},
		"tools": map[string]any{
			"discovery_enabled": true,
		},
	}
}

func (c *Config) applyEnvOverrides() {
	if host := os.Getenv(EnvServerHost); host != "" {
		c.set("server", "host", host)
	}
	if port := os.Getenv(EnvServerPort); port != "" {
		// Unparseable port values are ignored; the file or default value stands.
		if n, err := strconv.Atoi(port); err == nil {
			c.set("server", "port", n)
		}
	}
	if execPath := os.Getenv(EnvExecutablePath); execPath != "" {
		c.set("mcp", "executable_path", execPath)
	}
	if workDir := os.Getenv(EnvWorkingDir); workDir != "" {
		c.set("mcp", "working_directory", workDir)
	}
}

// set writes a value into a section, creating the section when the file did
// not provide one.
func (c *Config) set(section, key string, value any) {
	m, ok := c.tree[section].(map[string]any)
	if !ok {
		m = make(map[string]any)
		c.tree[section] = m
	}
	m[key] = value
}

// Get resolves a dotted key path against the merged configuration. It returns
// def when any path segment is absent or an intermediate value is not a
// nested mapping.
func (c *Config) Get(key string, def any) any {
	current := any(c.tree)
	for _, part := range strings.Split(key, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return def
		}
		value, ok := m[part]
		if !ok {
			return def
		}
		current = value
	}
	return current
}

// GetString returns the string at key, or def when absent or not a string.
func (c *Config) GetString(key, def string) string {
	if s, ok := c.Get(key, def).(string); ok {
		return s
	}
	return def
}

// GetInt returns the integer at key, or def when absent or not an integer.
func (c *Config) GetInt(key string, def int) int {
	if n, ok := c.Get(key, def).(int); ok {
		return n
	}
	return def
}

// GetBool returns the boolean at key, or def when absent or not a boolean.
func (c *Config) GetBool(key string, def bool) bool {
	if b, ok := c.Get(key, def).(bool); ok {
		return b
	}
	return def
}

// GetDuration reads an integer number of seconds at key and returns it as a
// time.Duration, or def when absent or not an integer.
func (c *Config) GetDuration(key string, def time.Duration) time.Duration {
	if n, ok := c.Get(key, 0).(int); ok && n > 0 {
		return time.Duration(n) * time.Second
	}
	return def
}
