package extension

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"

	"github.com/sagarmandavkar-UX/proofly-sub001/domain/entities"
)

const logStorageKey = "prooflyLog"

// Control reaches the extension's privileged surfaces through its
// background service worker: the per-tab badge indicator and the
// persisted diagnostic log. Both live outside the page, so the page
// session cannot read them.
type Control struct {
	context playwright.BrowserContext
	logger  *logrus.Logger
}

// NewControl - creates a control surface over a running browser context
func NewControl(browserContext playwright.BrowserContext, logger *logrus.Logger) *Control {
	return &Control{context: browserContext, logger: logger}
}

// worker finds the extension's background service worker, waiting
// briefly for it to register after launch.
func (c *Control) worker(ctx context.Context) (playwright.Worker, error) {
	deadline := time.Now().Add(5 * time.Second)
	for {
		for _, w := range c.context.ServiceWorkers() {
			if strings.HasPrefix(w.URL(), "chrome-extension://") {
				return w, nil
			}
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("extension service worker not available")
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(200 * time.Millisecond):
		}
	}
}

// BadgeCount reads the issue-count badge for the active tab. Empty
// badge text means zero.
func (c *Control) BadgeCount(ctx context.Context) (int, error) {
	w, err := c.worker(ctx)
	if err != nil {
		return 0, err
	}

	result, err := w.Evaluate(`async () => {
		const tabs = await chrome.tabs.query({ active: true, lastFocusedWindow: true });
		if (!tabs.length) return '';
		return await chrome.action.getBadgeText({ tabId: tabs[0].id });
	}`)
	if err != nil {
		return 0, fmt.Errorf("failed to read badge text: %w", err)
	}

	text, _ := result.(string)
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, nil
	}
	count, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("badge text %q is not a count: %w", text, err)
	}
	return count, nil
}

// FetchLog reads the extension's append-only diagnostic log from its
// local storage area, oldest entry first.
func (c *Control) FetchLog(ctx context.Context) ([]entities.LogEntry, error) {
	w, err := c.worker(ctx)
	if err != nil {
		return nil, err
	}

	result, err := w.Evaluate(fmt.Sprintf(`async () => {
		const stored = await chrome.storage.local.get('%s');
		return stored['%s'] || [];
	}`, logStorageKey, logStorageKey))
	if err != nil {
		return nil, fmt.Errorf("failed to read diagnostic log: %w", err)
	}

	raw, _ := result.([]interface{})
	entries := make([]entities.LogEntry, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		ts, _ := m["ts"].(float64)
		session, _ := m["session"].(string)
		logCtx, _ := m["context"].(string)
		level, _ := m["level"].(string)
		message, _ := m["message"].(string)
		entries = append(entries, entities.LogEntry{
			Time:    time.UnixMilli(int64(ts)),
			Session: session,
			Context: logCtx,
			Level:   level,
			Message: message,
		})
	}
	return entries, nil
}
