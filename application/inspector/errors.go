package inspector

import (
	"errors"
	"fmt"
	"time"
)

// ErrCapabilityMissing indicates the host environment lacks a
// capability a query depends on (the custom highlight registry for
// the contenteditable path). Unlike ordinary sampling failures this
// is not a transient state, so pollers abort on it immediately.
var ErrCapabilityMissing = errors.New("highlight capability not available in this environment")

// TimeoutError is returned when a bounded wait's predicate never
// became true before the deadline. Subject names what was being
// waited on so the failure is attributable without a stack trace.
type TimeoutError struct {
	Subject string
	Timeout time.Duration
	LastErr error
}

func (e *TimeoutError) Error() string {
	if e.LastErr != nil {
		return fmt.Sprintf("timed out after %s waiting for %s (last sample error: %v)", e.Timeout, e.Subject, e.LastErr)
	}
	return fmt.Sprintf("timed out after %s waiting for %s", e.Timeout, e.Subject)
}

func (e *TimeoutError) Unwrap() error {
	return e.LastErr
}
