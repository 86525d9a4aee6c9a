package interfaces

import (
	"context"

	"github.com/sagarmandavkar-UX/proofly-sub001/domain/entities"
)

// Session defines the full browser session surface used by scenario
// drivers: the inspection primitives plus navigation, field setup and
// the control-event buffer.
type Session interface {
	Inspector

	// Navigate navigates the session's page to a URL
	Navigate(ctx context.Context, url string) error

	// SetFieldText assigns text to a field by direct value assignment
	// and dispatches a synthetic input event so the extension notices
	SetFieldText(ctx context.Context, fieldID string, text string) error

	// DrainControlEvents returns and clears the buffered proofreading
	// lifecycle events dispatched by the extension since the last call
	DrainControlEvents(ctx context.Context) ([]entities.ControlEvent, error)

	// Screenshot takes a screenshot of the current page
	Screenshot(ctx context.Context, path string) error

	// Close closes the browser session
	Close() error
}
