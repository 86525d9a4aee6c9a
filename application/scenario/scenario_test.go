package scenario

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sagarmandavkar-UX/proofly-sub001/application/inspector"
	"github.com/sagarmandavkar-UX/proofly-sub001/domain/entities"
)

// Shared fakes for the scenario tests: a scripted session honoring
// the engine's in-page contract, and a canned extension control
// surface.

type fakeSpan struct {
	id   string
	rect entities.Rect
}

type fakeField struct {
	present       bool
	rect          entities.Rect
	hostPresent   bool
	hostOffset    float64
	text          string
	spans         []fakeSpan
	editableCount int
	editable      bool
}

type fakeSession struct {
	fields           map[string]*fakeField
	events           []entities.ControlEvent
	removeOnDispatch bool
	onSetText        func(fieldID, text string)

	moves      int
	clicks     int
	dblclicks  int
	setCalls   []string
	navigated  []string
	closed     bool
	screenshot []string
}

func newFakeSession() *fakeSession {
	return &fakeSession{fields: map[string]*fakeField{}}
}

func (f *fakeSession) addField(id string) *fakeField {
	field := &fakeField{
		present:     true,
		rect:        entities.Rect{Left: 50, Top: 60, Width: 300, Height: 30},
		hostPresent: true,
	}
	f.fields[id] = field
	return field
}

func (f *fakeSession) hostMatches(field *fakeField, tolerance float64) bool {
	if field == nil || !field.present || !field.hostPresent {
		return false
	}
	return math.Abs(field.hostOffset) <= tolerance
}

func (f *fakeSession) Evaluate(ctx context.Context, script string, arg interface{}) (interface{}, error) {
	args, _ := arg.(map[string]interface{})
	fieldID, _ := args["fieldId"].(string)
	tolerance, _ := args["tolerance"].(float64)
	field := f.fields[fieldID]

	switch {
	case strings.Contains(script, "findHost(field, arg.tolerance) !== null"):
		return f.hostMatches(field, tolerance), nil

	case strings.Contains(script, "{ left: hr.left"):
		if !f.hostMatches(field, tolerance) {
			return nil, nil
		}
		return map[string]interface{}{
			"left":  field.rect.Left + field.hostOffset,
			"top":   field.rect.Top + field.hostOffset,
			"width": field.rect.Width, "height": field.rect.Height,
		}, nil

	case strings.Contains(script, "spans.push"):
		if !f.hostMatches(field, tolerance) {
			return nil, nil
		}
		spans := []interface{}{}
		for _, s := range field.spans {
			spans = append(spans, map[string]interface{}{
				"id": s.id, "left": s.rect.Left, "top": s.rect.Top, "width": s.rect.Width, "height": s.rect.Height,
			})
		}
		return map[string]interface{}{"text": field.text, "spans": spans}, nil

	case strings.Contains(script, "new MouseEvent"):
		issueID, _ := args["issueId"].(string)
		if !f.hostMatches(field, tolerance) {
			return false, nil
		}
		for i, s := range field.spans {
			if s.id == issueID {
				if f.removeOnDispatch {
					field.spans = append(field.spans[:i], field.spans[i+1:]...)
				}
				return true, nil
			}
		}
		return false, nil

	case strings.Contains(script, "CSS.highlights"):
		if field == nil || !field.editable {
			return map[string]interface{}{"supported": true, "fieldFound": false, "count": float64(0)}, nil
		}
		return map[string]interface{}{"supported": true, "fieldFound": true, "count": float64(field.editableCount)}, nil
	}

	return nil, fmt.Errorf("unrecognized script")
}

func (f *fakeSession) MouseMove(ctx context.Context, x, y float64) error {
	f.moves++
	return nil
}

func (f *fakeSession) MouseClick(ctx context.Context, x, y float64) error {
	f.clicks++
	return nil
}

func (f *fakeSession) MouseDblClick(ctx context.Context, x, y float64) error {
	f.dblclicks++
	return nil
}

func (f *fakeSession) Navigate(ctx context.Context, url string) error {
	f.navigated = append(f.navigated, url)
	return nil
}

func (f *fakeSession) SetFieldText(ctx context.Context, fieldID string, text string) error {
	field := f.fields[fieldID]
	if field == nil || !field.present {
		return fmt.Errorf("field %q not found", fieldID)
	}
	field.text = text
	f.setCalls = append(f.setCalls, fieldID)
	if f.onSetText != nil {
		f.onSetText(fieldID, text)
	}
	return nil
}

func (f *fakeSession) DrainControlEvents(ctx context.Context) ([]entities.ControlEvent, error) {
	drained := f.events
	f.events = nil
	return drained, nil
}

func (f *fakeSession) Screenshot(ctx context.Context, path string) error {
	f.screenshot = append(f.screenshot, path)
	return nil
}

func (f *fakeSession) Close() error {
	f.closed = true
	return nil
}

type fakeControl struct {
	badge    int
	badgeErr error
	log      []entities.LogEntry
}

func (f *fakeControl) BadgeCount(ctx context.Context) (int, error) {
	return f.badge, f.badgeErr
}

func (f *fakeControl) FetchLog(ctx context.Context) ([]entities.LogEntry, error) {
	return f.log, nil
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func newTestEngine(session *fakeSession) *inspector.Engine {
	return inspector.NewEngine(session, quietLogger(), inspector.Config{PollInterval: time.Millisecond})
}
