package inspector

import (
	"context"
	"fmt"

	"github.com/sagarmandavkar-UX/proofly-sub001/domain/entities"
)

// ResolveHost finds the overlay host whose bounding box coincides
// with the field's, within the engine's tolerance. Returns nil (not
// an error) when the field does not exist, is not renderable, or no
// host matches; "no host yet" is a normal transient state while the
// overlay mounts. Hosts appear and disappear as fields gain and lose
// decoration and the field itself can move between calls, so nothing
// is cached; every call is a fresh DOM query.
//
// If several hosts overlap within tolerance the first in document
// order wins. Current usage has one overlay per field, so the
// ambiguity is accepted rather than tie-broken.
func (e *Engine) ResolveHost(ctx context.Context, fieldID string) (*entities.HostRef, error) {
	result, err := e.page.Evaluate(ctx, resolveHostScript, map[string]interface{}{
		"fieldId":   fieldID,
		"tolerance": e.tolerance,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve overlay host for field %q: %w", fieldID, err)
	}

	m := asMap(result)
	if m == nil {
		return nil, nil
	}

	return &entities.HostRef{
		FieldID: fieldID,
		Rect: entities.Rect{
			Left:   getFloat(m, "left"),
			Top:    getFloat(m, "top"),
			Width:  getFloat(m, "width"),
			Height: getFloat(m, "height"),
		},
	}, nil
}

// HasHost reports whether an overlay host currently coincides with
// the field. Cheaper than ResolveHost; used by presence and absence
// assertions that do not need highlight data.
func (e *Engine) HasHost(ctx context.Context, fieldID string) (bool, error) {
	result, err := e.page.Evaluate(ctx, hasHostScript, map[string]interface{}{
		"fieldId":   fieldID,
		"tolerance": e.tolerance,
	})
	if err != nil {
		return false, fmt.Errorf("failed to check overlay host for field %q: %w", fieldID, err)
	}

	present, _ := result.(bool)
	return present, nil
}
