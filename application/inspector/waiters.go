package inspector

import (
	"context"
	"fmt"
	"time"

	"github.com/sagarmandavkar-UX/proofly-sub001/domain/entities"
)

// Bounded waits built on PollUntil. Two sampling strategies share the
// one poller shape: the overlay extraction path and the
// contenteditable registry path.

// WaitForHighlightCount waits until the overlay renders a highlight
// count accepted by ok (e.g. exact, minimum, or zero).
func (e *Engine) WaitForHighlightCount(ctx context.Context, fieldID string, ok func(int) bool, timeout time.Duration) ([]entities.Highlight, error) {
	subject := fmt.Sprintf("highlight count on field %q", fieldID)
	return PollUntil(ctx, subject, timeout, e.pollInterval,
		func(ctx context.Context) ([]entities.Highlight, error) {
			return e.ExtractHighlights(ctx, fieldID)
		},
		func(hs []entities.Highlight) bool { return ok(len(hs)) })
}

// WaitForHighlights waits until at least one highlight is rendered.
func (e *Engine) WaitForHighlights(ctx context.Context, fieldID string, timeout time.Duration) ([]entities.Highlight, error) {
	return e.WaitForHighlightCount(ctx, fieldID, func(n int) bool { return n > 0 }, timeout)
}

// WaitForNoHighlights waits until the overlay renders zero highlights.
func (e *Engine) WaitForNoHighlights(ctx context.Context, fieldID string, timeout time.Duration) error {
	_, err := e.WaitForHighlightCount(ctx, fieldID, func(n int) bool { return n == 0 }, timeout)
	return err
}

// WaitForHost waits until an overlay host resolves for the field.
func (e *Engine) WaitForHost(ctx context.Context, fieldID string, timeout time.Duration) (*entities.HostRef, error) {
	subject := fmt.Sprintf("overlay host on field %q", fieldID)
	return PollUntil(ctx, subject, timeout, e.pollInterval,
		func(ctx context.Context) (*entities.HostRef, error) {
			return e.ResolveHost(ctx, fieldID)
		},
		func(ref *entities.HostRef) bool { return ref != nil })
}

// WaitForHostGone waits until no overlay host resolves for the field.
func (e *Engine) WaitForHostGone(ctx context.Context, fieldID string, timeout time.Duration) error {
	subject := fmt.Sprintf("overlay host removal on field %q", fieldID)
	_, err := PollUntil(ctx, subject, timeout, e.pollInterval,
		func(ctx context.Context) (bool, error) {
			return e.HasHost(ctx, fieldID)
		},
		func(present bool) bool { return !present })
	return err
}

// WaitForEditableHighlightCount waits until the contenteditable path
// reports a range count accepted by ok. Capability absence aborts the
// wait immediately instead of burning the timeout.
func (e *Engine) WaitForEditableHighlightCount(ctx context.Context, fieldID string, ok func(int) bool, timeout time.Duration) (int, error) {
	subject := fmt.Sprintf("editable highlight count on field %q", fieldID)
	return PollUntil(ctx, subject, timeout, e.pollInterval,
		func(ctx context.Context) (int, error) {
			return e.CountEditableHighlights(ctx, fieldID)
		},
		ok)
}
