package inspector

import (
	"context"
	"fmt"

	"github.com/sagarmandavkar-UX/proofly-sub001/domain/entities"
)

// ActivateOptions tunes how a highlight is activated.
type ActivateOptions struct {
	DoubleClick bool
}

// ActivateHighlight drives a user-level activation of one flagged
// span. Two delivery layers run together, not as alternatives:
//
// Native pointer input (move + click at the span's center) exercises
// the browser's real hit-testing and composed-event propagation
// across the isolation boundary, but under deep nesting it is not
// guaranteed to land on a sub-pixel target inside the shadow root.
// So a directly constructed mouse event is additionally dispatched at
// the span itself, re-resolved by issue id at dispatch time: the node
// observed during extraction may have been replaced by a re-render
// since, so a held reference would be stale. If the span no
// longer exists (already fixed), the targeted dispatch is a silent
// no-op; the native input has already happened unconditionally.
func (e *Engine) ActivateHighlight(ctx context.Context, fieldID string, h entities.Highlight, opts ActivateOptions) error {
	if err := e.page.MouseMove(ctx, h.CenterX, h.CenterY); err != nil {
		return fmt.Errorf("failed to move pointer to highlight %s of field %q: %w", h.IssueID, fieldID, err)
	}

	eventType := "click"
	if opts.DoubleClick {
		eventType = "dblclick"
		if err := e.page.MouseDblClick(ctx, h.CenterX, h.CenterY); err != nil {
			return fmt.Errorf("failed to double-click highlight %s of field %q: %w", h.IssueID, fieldID, err)
		}
	} else {
		if err := e.page.MouseClick(ctx, h.CenterX, h.CenterY); err != nil {
			return fmt.Errorf("failed to click highlight %s of field %q: %w", h.IssueID, fieldID, err)
		}
	}

	result, err := e.page.Evaluate(ctx, dispatchEventScript, map[string]interface{}{
		"fieldId":   fieldID,
		"tolerance": e.tolerance,
		"issueId":   h.IssueID,
		"type":      eventType,
		"x":         h.CenterX,
		"y":         h.CenterY,
	})
	if err != nil {
		return fmt.Errorf("failed to dispatch %s at highlight %s of field %q: %w", eventType, h.IssueID, fieldID, err)
	}

	if dispatched, _ := result.(bool); !dispatched && e.logger != nil {
		e.logger.Debugf("field %s: highlight %s gone before targeted dispatch, native input only", fieldID, h.IssueID)
	}

	return nil
}
