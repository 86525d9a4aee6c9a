package interfaces

import "context"

// Inspector defines the surface the synchronization engine needs from
// a live page: script evaluation against the current document and
// native pointer input. Coordinates are viewport-space CSS pixels.
type Inspector interface {
	// Evaluate runs a script expression in the page and returns its
	// JSON-serializable result. arg is exposed to the expression as
	// its single parameter; pass nil when the script takes none.
	Evaluate(ctx context.Context, script string, arg interface{}) (interface{}, error)

	// MouseMove moves the native pointer to the given point.
	MouseMove(ctx context.Context, x, y float64) error

	// MouseClick performs a native single click at the given point.
	MouseClick(ctx context.Context, x, y float64) error

	// MouseDblClick performs a native double click at the given point.
	MouseDblClick(ctx context.Context, x, y float64) error
}
