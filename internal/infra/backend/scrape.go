package backend

import (
	"encoding/json"
	"strings"

	"github.com/matiasleandrokruk/exprmcp/internal/domain/tool"
)

// responseKind selects the shape predicate applied to candidate JSON blocks.
type responseKind int

const (
	listingResponse responseKind = iota
	callResponse
)

// extract scans mixed console output for the first JSON object matching the
// requested shape and returns it parsed. Best-effort by construction: output
// that never yields a qualifying block degrades to a fixed fallback, which
// can mask genuine backend output that doesn't match the expected shape.
//
// A candidate starts at a line whose trimmed form opens with a brace and
// ends at a line whose trimmed form closes with one, provided the
// accumulated text parses as JSON. Any brace-opening line restarts the
// candidate, so the backend must not open nested objects at the start of a
// line.
func extract(output string, kind responseKind) map[string]any {
	var block []string
	inBlock := false

	for _, line := range strings.Split(output, "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "{") {
			inBlock = true
			block = []string{line}
			continue
		}
		if !inBlock {
			continue
		}

		block = append(block, line)
		if !strings.HasSuffix(trimmed, "}") {
			continue
		}

		var parsed map[string]any
		if err := json.Unmarshal([]byte(strings.Join(block, "\n")), &parsed); err != nil {
			// Closing brace of an inner value; keep accumulating.
			continue
		}
		if matchesKind(parsed, kind) {
			return parsed
		}

		// Wrong shape for this request: discard and resume scanning at the
		// next brace-opening line.
		inBlock = false
		block = nil
	}

	return fallbackFor(kind)
}

// matchesKind applies the shape predicate: listings carry a "tools" key,
// call results carry "success" or "error".
func matchesKind(parsed map[string]any, kind responseKind) bool {
	switch kind {
	case listingResponse:
		_, ok := parsed["tools"]
		return ok
	case callResponse:
		if _, ok := parsed["success"]; ok {
			return true
		}
		_, ok := parsed["error"]
		return ok
	}
	return false
}

// fallbackFor returns the fixed response used when no qualifying block was
// found anywhere in the output.
func fallbackFor(kind responseKind) map[string]any {
	if kind == listingResponse {
		return map[string]any{"tools": tool.Fallback()}
	}
	return map[string]any{
		"success": false,
		"error":   "Could not parse backend response",
	}
}
