package tides

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	tagPattern = regexp.MustCompile(`<[^>]+>`)

	// A listing reads "HH:MM - High Tide (7.42m)". The parentheses around the
	// height sometimes arrive as their numeric character references instead
	// of literal characters, so both spellings are accepted.
	linePattern = regexp.MustCompile(`(\d{2}:\d{2})\s+-\s+(High|Low)\s+Tide\s+(?:&#x28;|\()([\d.]+)m(?:&#x29;|\))`)
)

// Line is one tide listing scanned out of raw text. Clock is the unparsed
// HH:MM wall clock; Height is in metres.
type Line struct {
	Clock  string
	Type   Type
	Height float64
}

// StripTags replaces markup tags with line breaks so that the listings they
// used to separate still land on their own lines.
func StripTags(s string) string {
	return tagPattern.ReplaceAllString(s, "\n")
}

// ScanLine looks for a tide listing in one line of text. ok is false when the
// line holds no listing, which is expected: feed descriptions interleave tide
// lines with links and other prose. A line that matches but carries a height
// that will not parse is an error, and the caller should drop it.
func ScanLine(s string) (line Line, ok bool, err error) {
	m := linePattern.FindStringSubmatch(s)
	if m == nil {
		return Line{}, false, nil
	}
	height, err := ParseHeight(m[3])
	if err != nil {
		return Line{}, false, err
	}
	return Line{Clock: m[1], Type: Type(m[2]), Height: height}, true, nil
}

// ParseHeight parses a tide height in metres, accepting an optional trailing
// unit ("7.42m" or "7.42"). Heights must be finite and non-negative; the
// result is rounded to 2 decimals.
func ParseHeight(s string) (float64, error) {
	raw := strings.TrimSuffix(strings.TrimSpace(s), "m")
	h, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("tide height %q is not a number: %w", s, err)
	}
	if math.IsNaN(h) || math.IsInf(h, 0) || h < 0 {
		return 0, fmt.Errorf("tide height %q out of range", s)
	}
	return math.Round(h*100) / 100, nil
}
