package browser

import (
	"context"
	"fmt"

	"github.com/sagarmandavkar-UX/proofly-sub001/domain/entities"
)

// The extension dispatches proofly:status CustomEvents on the window
// for every proofreading pass. There is no way to subscribe from the
// harness side after the fact, so an init script buffers them into a
// page global and the harness drains the buffer on demand.

const controlEventBufferScript = `
	(() => {
		window.__prooflyCtl = [];
		window.addEventListener('proofly:status', (ev) => {
			const d = ev.detail || {};
			window.__prooflyCtl.push({
				status: d.status || '',
				reason: d.reason || '',
				textLength: d.textLength || 0,
				elementKind: d.elementKind || ''
			});
		});
	})();
`

const drainControlEventsScript = `
	() => {
		const buffered = window.__prooflyCtl || [];
		window.__prooflyCtl = [];
		return buffered;
	}
`

const setFieldTextScript = `
	(arg) => {
		const field = document.getElementById(arg.fieldId);
		if (!field) return false;
		if (field.isContentEditable) {
			field.textContent = arg.text;
		} else {
			field.value = arg.text;
		}
		field.dispatchEvent(new InputEvent('input', { bubbles: true, composed: true }));
		return true;
	}
`

// DrainControlEvents returns and clears the control events buffered
// since the last call, in dispatch order.
func (c *Controller) DrainControlEvents(ctx context.Context) ([]entities.ControlEvent, error) {
	result, err := c.page.Evaluate(drainControlEventsScript)
	if err != nil {
		return nil, fmt.Errorf("failed to drain control events: %w", err)
	}

	raw, _ := result.([]interface{})
	events := make([]entities.ControlEvent, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		status, _ := m["status"].(string)
		reason, _ := m["reason"].(string)
		kind, _ := m["elementKind"].(string)
		length := 0
		if n, ok := m["textLength"].(float64); ok {
			length = int(n)
		}
		events = append(events, entities.ControlEvent{
			Status:      entities.ControlEventStatus(status),
			Reason:      reason,
			TextLength:  length,
			ElementKind: kind,
		})
	}
	return events, nil
}
