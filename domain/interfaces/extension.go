package interfaces

import (
	"context"

	"github.com/sagarmandavkar-UX/proofly-sub001/domain/entities"
)

// ExtensionControl defines the privileged control surface reached
// through the extension's own background context, outside the page.
type ExtensionControl interface {
	// BadgeCount reads the per-tab issue-count indicator for the
	// active tab. Returns 0 when no badge text is set.
	BadgeCount(ctx context.Context) (int, error)

	// FetchLog reads the extension's append-only diagnostic log from
	// its persisted storage area.
	FetchLog(ctx context.Context) ([]entities.LogEntry, error)
}
