package entities

import "time"

// LogEntry represents one record of the extension's append-only
// diagnostic log, as persisted in its storage area.
type LogEntry struct {
	Time    time.Time `json:"time"`
	Session string    `json:"session"`
	Context string    `json:"context"` // originating component, e.g. "highlighter", "worker"
	Level   string    `json:"level"`   // debug, info, warn, error
	Message string    `json:"message"`
}

// LogFilter selects a subset of diagnostic log entries. Zero values
// mean "no constraint" for that dimension.
type LogFilter struct {
	Since    time.Time
	Until    time.Time
	Session  string
	Context  string
	MinLevel string
}

var levelRank = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
}

// Matches reports whether the entry passes every constraint of the
// filter.
func (f LogFilter) Matches(e LogEntry) bool {
	if !f.Since.IsZero() && e.Time.Before(f.Since) {
		return false
	}
	if !f.Until.IsZero() && e.Time.After(f.Until) {
		return false
	}
	if f.Session != "" && e.Session != f.Session {
		return false
	}
	if f.Context != "" && e.Context != f.Context {
		return false
	}
	if f.MinLevel != "" {
		min, ok := levelRank[f.MinLevel]
		if ok && levelRank[e.Level] < min {
			return false
		}
	}
	return true
}
