package scenario

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sagarmandavkar-UX/proofly-sub001/application/inspector"
)

// FixOptions tunes a fix-until-clean run.
type FixOptions struct {
	DoubleClick   bool
	MaxIterations int           // hard bound on activation attempts
	SettleTimeout time.Duration // wait budget per activation for the count to drop
}

// Driver repeatedly activates highlights until a field is clean.
type Driver struct {
	engine *inspector.Engine
	logger *logrus.Logger
}

// NewDriver - creates a fix-loop driver over a synchronization engine
func NewDriver(engine *inspector.Engine, logger *logrus.Logger) *Driver {
	return &Driver{engine: engine, logger: logger}
}

// FixAll activates the first available highlight and waits for the
// rendered count to drop, repeating until the field extracts empty.
// Each successful activation must decrease the count by at least one,
// so the loop terminates in at most the initial count of iterations;
// an activation after which the count never drops is reported as an
// error rather than retried forever. Returns the number of highlights
// fixed.
func (d *Driver) FixAll(ctx context.Context, fieldID string, opts FixOptions) (int, error) {
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = 25
	}
	if opts.SettleTimeout <= 0 {
		opts.SettleTimeout = 10 * time.Second
	}

	fixed := 0
	for iteration := 0; iteration < opts.MaxIterations; iteration++ {
		select {
		case <-ctx.Done():
			return fixed, fmt.Errorf("fix loop canceled: %w", ctx.Err())
		default:
		}

		highlights, err := d.engine.ExtractHighlights(ctx, fieldID)
		if err != nil {
			return fixed, err
		}
		if len(highlights) == 0 {
			return fixed, nil
		}

		h := highlights[0]
		d.logger.Infof("Activating highlight %s (%q) on field %s, %d remaining", h.IssueID, h.OriginalText, fieldID, len(highlights))

		if err := d.engine.ActivateHighlight(ctx, fieldID, h, inspector.ActivateOptions{DoubleClick: opts.DoubleClick}); err != nil {
			return fixed, err
		}

		remaining := len(highlights)
		if _, err := d.engine.WaitForHighlightCount(ctx, fieldID, func(n int) bool { return n < remaining }, opts.SettleTimeout); err != nil {
			return fixed, fmt.Errorf("no progress on field %q after activating highlight %s: %w", fieldID, h.IssueID, err)
		}
		fixed++
	}

	return fixed, fmt.Errorf("field %q still flagged after %d activations", fieldID, opts.MaxIterations)
}
