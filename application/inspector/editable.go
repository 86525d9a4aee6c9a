package inspector

import (
	"context"
	"fmt"
)

// CountEditableHighlights counts the live highlight ranges flagged
// inside one contenteditable field. This path uses the page-wide
// custom highlight registry rather than an overlay, so the
// per-category range sets span every field on the page and must be
// filtered down by containment: a range counts only when its common
// ancestor element lies within the target field's subtree.
//
// Unlike the overlay path there is no "not yet mounted" state to
// degrade to, so a missing registry or a missing field is a hard
// error. The registry being absent aborts any surrounding poll via
// ErrCapabilityMissing.
func (e *Engine) CountEditableHighlights(ctx context.Context, fieldID string) (int, error) {
	result, err := e.page.Evaluate(ctx, countEditableScript, map[string]interface{}{
		"fieldId":    fieldID,
		"categories": e.categories,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count editable highlights for field %q: %w", fieldID, err)
	}

	m := asMap(result)
	if m == nil {
		return 0, fmt.Errorf("unexpected result counting editable highlights for field %q", fieldID)
	}
	if !getBool(m, "supported") {
		return 0, fmt.Errorf("field %q: %w", fieldID, ErrCapabilityMissing)
	}
	if !getBool(m, "fieldFound") {
		return 0, fmt.Errorf("contenteditable field %q not found", fieldID)
	}

	return getInt(m, "count"), nil
}
