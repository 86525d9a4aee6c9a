package entities

// Rect represents an element's bounding rectangle in viewport
// coordinates.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() float64 {
	return r.Left + r.Width/2
}

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() float64 {
	return r.Top + r.Height/2
}

// HostRef represents a resolved association between a field and the
// overlay host covering it. The association is positional, not
// structural, and is recomputed on every query.
type HostRef struct {
	FieldID string `json:"field_id"`
	Rect    Rect   `json:"rect"`
}

// FieldKind classifies the kinds of input surfaces the overlay
// decorates.
type FieldKind string

const (
	FieldKindInput           FieldKind = "input"
	FieldKindTextarea        FieldKind = "textarea"
	FieldKindContentEditable FieldKind = "contenteditable"
)
