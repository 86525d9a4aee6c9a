package entities

import (
	"strconv"
	"strings"
)

// Highlight represents one flagged text span as currently rendered by
// the overlay. It is rebuilt from live DOM state on every extraction
// and never cached: the field's text and the span's screen position
// can both change between queries.
type Highlight struct {
	IssueID      string  `json:"issue_id"`      // encoded "<start>:<end>" identifier
	Start        int     `json:"start"`         // character offset into the field's current text
	End          int     `json:"end"`           // exclusive end offset
	OriginalText string  `json:"original_text"` // current field text sliced at [start, end)
	CenterX      float64 `json:"center_x"`      // viewport-space center of the span's box
	CenterY      float64 `json:"center_y"`
}

// ParseIssueID parses an encoded "<start>:<end>" issue identifier into
// offsets. Malformed identifiers yield (-1, -1) rather than an error:
// a node observed mid-update may transiently carry a stale or partial
// identifier, and callers must tolerate that instead of crashing.
func ParseIssueID(id string) (start, end int) {
	parts := strings.SplitN(id, ":", 2)
	if len(parts) != 2 {
		return -1, -1
	}
	s, err := strconv.Atoi(parts[0])
	if err != nil || s < 0 {
		return -1, -1
	}
	e, err := strconv.Atoi(parts[1])
	if err != nil || e < s {
		return -1, -1
	}
	return s, e
}

// SliceText returns the substring of text at [start, end) in runes,
// silently clamping offsets that exceed the current text length. The
// field may have been edited since the overlay last rendered.
func SliceText(text string, start, end int) string {
	if start < 0 || end < 0 {
		return ""
	}
	runes := []rune(text)
	if start > len(runes) {
		start = len(runes)
	}
	if end > len(runes) {
		end = len(runes)
	}
	if start >= end {
		return ""
	}
	return string(runes[start:end])
}
