package entities

// ControlEventStatus describes the outcome of one proofreading pass.
type ControlEventStatus string

const (
	ControlStatusStarted  ControlEventStatus = "started"
	ControlStatusIgnored  ControlEventStatus = "ignored"
	ControlStatusComplete ControlEventStatus = "complete"
)

// ControlEvent represents a lifecycle notification dispatched by the
// extension on the global scope, describing why or whether a
// proofreading pass ran on a given target.
type ControlEvent struct {
	Status      ControlEventStatus `json:"status"`
	Reason      string             `json:"reason,omitempty"`
	TextLength  int                `json:"text_length"`
	ElementKind string             `json:"element_kind"`
}
