package inspector

import (
	"context"
	"fmt"

	"github.com/sagarmandavkar-UX/proofly-sub001/domain/entities"
)

// ExtractHighlights reconstructs the logical set of flagged spans
// currently rendered for a field, in DOM traversal order of the
// highlight nodes inside the resolved host.
//
// An empty slice is returned both when no host resolves (overlay not
// mounted yet) and when the host holds zero spans (mounted, nothing
// flagged); callers that need the distinction use HasHost. The
// original text of each span is re-sliced from the field's *current*
// value rather than read from the node, because the node's rendered
// text can lag edits. A single extraction is best-effort consistent,
// not transactional: the text and the span list are read in one
// round trip but the page can mutate between queries.
func (e *Engine) ExtractHighlights(ctx context.Context, fieldID string) ([]entities.Highlight, error) {
	result, err := e.page.Evaluate(ctx, extractHighlightsScript, map[string]interface{}{
		"fieldId":   fieldID,
		"tolerance": e.tolerance,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to extract highlights for field %q: %w", fieldID, err)
	}

	m := asMap(result)
	if m == nil {
		return []entities.Highlight{}, nil
	}

	text := getString(m, "text")
	textLen := len([]rune(text))
	spans := asSlice(m["spans"])
	highlights := make([]entities.Highlight, 0, len(spans))
	for _, raw := range spans {
		span := asMap(raw)
		if span == nil {
			continue
		}

		id := getString(span, "id")
		start, end := entities.ParseIssueID(id)
		if start >= 0 {
			// The field may have shrunk since the overlay rendered;
			// clamp silently rather than reject the span.
			if start > textLen {
				start = textLen
			}
			if end > textLen {
				end = textLen
			}
		} else {
			// A node observed mid-update can carry a malformed
			// identifier; keep the entity with sentinel offsets so the
			// caller sees the span without the extraction crashing.
			if e.logger != nil {
				e.logger.Debugf("field %s: unparsable issue id %q, keeping sentinel offsets", fieldID, id)
			}
		}

		rect := entities.Rect{
			Left:   getFloat(span, "left"),
			Top:    getFloat(span, "top"),
			Width:  getFloat(span, "width"),
			Height: getFloat(span, "height"),
		}

		highlights = append(highlights, entities.Highlight{
			IssueID:      id,
			Start:        start,
			End:          end,
			OriginalText: entities.SliceText(text, start, end),
			CenterX:      rect.CenterX(),
			CenterY:      rect.CenterY(),
		})
	}

	return highlights, nil
}
