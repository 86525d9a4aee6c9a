package scenario

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sagarmandavkar-UX/proofly-sub001/domain/entities"
)

func newTestSuite(session *fakeSession, control *fakeControl) *Suite {
	suite := NewSuite(session, newTestEngine(session), control, quietLogger())
	suite.SetTimeouts(200*time.Millisecond, 30*time.Millisecond)
	return suite
}

func TestMisspelledInputScenario(t *testing.T) {
	session := newFakeSession()
	session.addField(FieldPlainInput)
	// Highlights render only after text lands, like the real overlay.
	session.onSetText = func(fieldID, text string) {
		if fieldID != FieldPlainInput {
			return
		}
		field := session.fields[fieldID]
		field.spans = []fakeSpan{
			{id: "0:3", rect: entities.Rect{Left: 50, Top: 60, Width: 24, Height: 16}},
			{id: "11:14", rect: entities.Rect{Left: 140, Top: 60, Width: 24, Height: 16}},
		}
	}
	control := &fakeControl{badge: 2}

	if err := newTestSuite(session, control).MisspelledInput(context.Background()); err != nil {
		t.Fatalf("scenario failed: %v", err)
	}
	if len(session.setCalls) != 1 || session.setCalls[0] != FieldPlainInput {
		t.Errorf("expected one SetFieldText on %s, got %v", FieldPlainInput, session.setCalls)
	}
}

func TestMisspelledInputBadgeMismatch(t *testing.T) {
	session := newFakeSession()
	session.addField(FieldPlainInput)
	session.onSetText = func(fieldID, text string) {
		session.fields[fieldID].spans = []fakeSpan{{id: "0:3", rect: entities.Rect{Left: 50, Top: 60, Width: 24, Height: 16}}}
	}
	control := &fakeControl{badge: 5}

	err := newTestSuite(session, control).MisspelledInput(context.Background())
	if err == nil {
		t.Fatal("expected badge mismatch error")
	}
	if !strings.Contains(err.Error(), "badge") {
		t.Errorf("error should mention the badge, got %q", err.Error())
	}
}

func TestEmailIgnoredScenario(t *testing.T) {
	session := newFakeSession()
	email := session.addField(FieldEmail)
	email.hostPresent = false
	session.onSetText = func(fieldID, text string) {
		session.events = append(session.events, entities.ControlEvent{
			Status:      entities.ControlStatusIgnored,
			Reason:      "unsupported input type: email",
			TextLength:  len(text),
			ElementKind: "input",
		})
	}

	if err := newTestSuite(session, &fakeControl{}).EmailIgnored(context.Background()); err != nil {
		t.Fatalf("scenario failed: %v", err)
	}
}

func TestEmailIgnoredFailsWhenHostAppears(t *testing.T) {
	session := newFakeSession()
	session.addField(FieldEmail) // host present: the extension wrongly decorated it

	err := newTestSuite(session, &fakeControl{}).EmailIgnored(context.Background())
	if err == nil {
		t.Fatal("expected failure when a host resolves for an email field")
	}
}

func TestToleranceBoundaryScenario(t *testing.T) {
	session := newFakeSession()
	near := session.addField(FieldToleranceNear)
	near.hostOffset = 3
	far := session.addField(FieldToleranceFar)
	far.hostOffset = 10

	if err := newTestSuite(session, &fakeControl{}).ToleranceBoundary(context.Background()); err != nil {
		t.Fatalf("scenario failed: %v", err)
	}
}

func TestToleranceBoundaryFailsOnLooseMatch(t *testing.T) {
	session := newFakeSession()
	near := session.addField(FieldToleranceNear)
	near.hostOffset = 3
	far := session.addField(FieldToleranceFar)
	far.hostOffset = 4 // inside tolerance: the fixture contract is broken

	err := newTestSuite(session, &fakeControl{}).ToleranceBoundary(context.Background())
	if err == nil {
		t.Fatal("expected failure when the far host resolves")
	}
}

func TestFixUntilCleanScenario(t *testing.T) {
	session := newFakeSession()
	session.removeOnDispatch = true
	session.addField(FieldPlainInput)
	session.onSetText = func(fieldID, text string) {
		field := session.fields[fieldID]
		field.spans = []fakeSpan{
			{id: "0:3", rect: entities.Rect{Left: 50, Top: 60, Width: 24, Height: 16}},
			{id: "7:10", rect: entities.Rect{Left: 110, Top: 60, Width: 24, Height: 16}},
			{id: "11:14", rect: entities.Rect{Left: 140, Top: 60, Width: 24, Height: 16}},
		}
	}

	if err := newTestSuite(session, &fakeControl{}).FixUntilClean(context.Background()); err != nil {
		t.Fatalf("scenario failed: %v", err)
	}
	if session.clicks != 3 {
		t.Errorf("native clicks = %d, want 3", session.clicks)
	}
}

func TestEditableCategoriesScenario(t *testing.T) {
	session := newFakeSession()
	main := session.addField(FieldEditable)
	main.editable = true
	main.editableCount = 2
	other := session.addField(FieldEditableOther)
	other.editable = true
	other.editableCount = 1

	if err := newTestSuite(session, &fakeControl{}).EditableCategories(context.Background()); err != nil {
		t.Fatalf("scenario failed: %v", err)
	}
}

func TestSuiteRunCollectsFailures(t *testing.T) {
	session := newFakeSession()
	near := session.addField(FieldToleranceNear)
	near.hostOffset = 3
	far := session.addField(FieldToleranceFar)
	far.hostOffset = 10
	session.addField(FieldEmail).hostPresent = false

	suite := newTestSuite(session, &fakeControl{})

	// email-ignored fails (no ignored event buffered) but
	// tolerance-boundary still runs and passes.
	err := suite.Run(context.Background(), []string{"email-ignored", "tolerance-boundary"})
	if err == nil {
		t.Fatal("expected first failure to be reported")
	}
	if !strings.Contains(err.Error(), "email-ignored") {
		t.Errorf("error should name the failing scenario, got %q", err.Error())
	}
}

func TestSuiteRunSelection(t *testing.T) {
	session := newFakeSession()
	near := session.addField(FieldToleranceNear)
	near.hostOffset = 3
	far := session.addField(FieldToleranceFar)
	far.hostOffset = 10

	suite := newTestSuite(session, &fakeControl{})
	if err := suite.Run(context.Background(), []string{"tolerance-boundary"}); err != nil {
		t.Fatalf("selected scenario failed: %v", err)
	}
	if len(session.setCalls) != 0 {
		t.Error("unselected scenarios must not run")
	}
}

func TestSuiteSessionID(t *testing.T) {
	session := newFakeSession()
	suite := newTestSuite(session, &fakeControl{})
	if suite.SessionID() == "" {
		t.Error("expected a non-empty session id")
	}
	if suite.SessionID() != suite.SessionID() {
		t.Error("session id must be stable for the run")
	}
}
