package report

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/sagarmandavkar-UX/proofly-sub001/domain/entities"
)

// Filter returns the entries matching the filter, preserving order.
func Filter(entries []entities.LogEntry, f entities.LogFilter) []entities.LogEntry {
	matched := make([]entities.LogEntry, 0, len(entries))
	for _, e := range entries {
		if f.Matches(e) {
			matched = append(matched, e)
		}
	}
	return matched
}

// Write writes a human-readable report of the entries, grouped by
// originating context. Contexts are ordered alphabetically; entries
// within a context keep chronological order.
func Write(w io.Writer, entries []entities.LogEntry) error {
	groups := make(map[string][]entities.LogEntry)
	for _, e := range entries {
		groups[e.Context] = append(groups[e.Context], e)
	}

	contexts := make([]string, 0, len(groups))
	for name := range groups {
		contexts = append(contexts, name)
	}
	sort.Strings(contexts)

	if _, err := fmt.Fprintf(w, "Diagnostic log report: %d entries, %d contexts\n", len(entries), len(contexts)); err != nil {
		return err
	}

	for _, name := range contexts {
		group := groups[name]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Time.Before(group[j].Time)
		})

		if _, err := fmt.Fprintf(w, "\n[%s] %d entries\n", name, len(group)); err != nil {
			return err
		}
		for _, e := range group {
			if _, err := fmt.Fprintf(w, "  %s %-5s %s\n", e.Time.Format("2006-01-02 15:04:05.000"), e.Level, e.Message); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteFile filters the entries and writes the grouped report to a
// file.
func WriteFile(path string, entries []entities.LogEntry, f entities.LogFilter) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	if err := Write(file, Filter(entries, f)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
