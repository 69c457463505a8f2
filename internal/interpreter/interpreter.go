// ABOUTME: Heuristic address interpreter for free-text route requests
// ABOUTME: Ordered regex patterns, then separator split, then word split
package interpreter

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrUnparseable is returned when no pattern, separator, or word split
// can extract an origin/destination pair from the input.
var ErrUnparseable = errors.New("unparseable navigation input")

// Route is a parsed origin/destination pair. Both fields are trimmed
// and non-empty when returned from Parse.
type Route struct {
	Origin      string
	Destination string
}

// The trial order is a precedence policy: longer syntactic cues must
// win over naive splitting, because overlapping patterns can read the
// same input differently. Do not reorder.
var patterns = []*regexp.Regexp{
	regexp.MustCompile(`从\s*(.+?)\s*到\s*(.+)`),
	regexp.MustCompile(`(.+?)\s*到\s*(.+)`),
	regexp.MustCompile(`导航\s*从\s*(.+?)\s*到\s*(.+)`),
	regexp.MustCompile(`去\s*(.+?)\s*从\s*(.+)`), // destination first
	regexp.MustCompile(`从\s*(.+?)\s*去\s*(.+)`),
	regexp.MustCompile(`(.+?)\s*至\s*(.+)`),
	regexp.MustCompile(`从\s*(.+?)\s*至\s*(.+)`),
}

// reversedPattern marks the one pattern whose first capture is the
// destination ("去 Y 从 X").
const reversedPattern = 3

// Separators tried after the patterns, first occurrence only.
var separators = []string{"到", "至", "->", "→"}

// Parse extracts an origin and destination from free text.
func Parse(text string) (Route, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Route{}, fmt.Errorf("parse %q: %w", text, ErrUnparseable)
	}

	for i, re := range patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		origin := strings.TrimSpace(m[1])
		destination := strings.TrimSpace(m[2])
		if i == reversedPattern {
			origin, destination = destination, origin
		}
		if origin == "" || destination == "" {
			continue
		}
		return Route{Origin: origin, Destination: destination}, nil
	}

	for _, sep := range separators {
		if !strings.Contains(text, sep) {
			continue
		}
		parts := strings.SplitN(text, sep, 2)
		origin := strings.TrimSpace(parts[0])
		destination := strings.TrimSpace(parts[1])
		if origin != "" && destination != "" {
			return Route{Origin: origin, Destination: destination}, nil
		}
	}

	if words := strings.Fields(text); len(words) == 2 {
		return Route{Origin: words[0], Destination: words[1]}, nil
	}

	return Route{}, fmt.Errorf("parse %q: %w", text, ErrUnparseable)
}
