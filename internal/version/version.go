// Package version provides version information for the binary.
package version

import "fmt"

// Version is the current version of the bridge.
// Overridable at build time using -ldflags.
var Version = "1.0.0"

// BuildTime is when the binary was built.
// Overridable at build time using -ldflags.
var BuildTime = "unknown"

// String returns the formatted version information.
func String() string {
	return fmt.Sprintf("exprmcp version %s (built %s)", Version, BuildTime)
}
