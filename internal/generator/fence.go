package generator

import "strings"

// stripOuterFence removes a code fence wrapping the whole response.
// Fences inside the document are left alone.
func stripOuterFence(s string) string {
	trimmed := strings.TrimSpace(s)
	lines := strings.Split(trimmed, "\n")
	if len(lines) < 2 {
		return trimmed
	}

	first := strings.TrimSpace(lines[0])
	last := strings.TrimSpace(lines[len(lines)-1])
	if !strings.HasPrefix(first, "```") || last != "```" {
		return trimmed
	}
	switch strings.ToLower(strings.TrimPrefix(first, "```")) {
	case "", "markdown", "md":
	default:
		return trimmed
	}

	return strings.TrimSpace(strings.Join(lines[1:len(lines)-1], "\n"))
}
