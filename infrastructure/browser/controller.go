package browser

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"
)

const profileDir = ".proofly_harness"

// Options configures a verification session launch.
type Options struct {
	ExtensionPath string // path to the unpacked extension under test
	FixtureURL    string // page of decorated fields to navigate to
	Headless      bool   // extensions require a headful profile on older channels
	UserDataDir   string // defaults to ~/.proofly_harness/chrome_profile
}

// Controller owns one Chromium session with the extension loaded and
// implements the session surface the engine and scenarios consume.
type Controller struct {
	pw      *playwright.Playwright
	context playwright.BrowserContext
	page    playwright.Page
	logger  *logrus.Logger
}

// NewController - launches a persistent Chromium context with the
// extension under test loaded
func NewController(logger *logrus.Logger, opts Options) (*Controller, error) {
	if opts.ExtensionPath == "" {
		return nil, fmt.Errorf("extension path is required")
	}
	absExt, err := filepath.Abs(opts.ExtensionPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve extension path: %w", err)
	}
	if _, err := os.Stat(absExt); err != nil {
		return nil, fmt.Errorf("extension not found at %s: %w", absExt, err)
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	userDataDir := opts.UserDataDir
	if userDataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = "."
		}
		userDataDir = filepath.Join(homeDir, profileDir, "chrome_profile")
	}
	if err := os.MkdirAll(userDataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create profile directory: %w", err)
	}

	// Extensions only load in a persistent context.
	browserContext, err := pw.Chromium.LaunchPersistentContext(userDataDir, playwright.BrowserTypeLaunchPersistentContextOptions{
		Headless: playwright.Bool(opts.Headless),
		Viewport: &playwright.Size{
			Width:  1280,
			Height: 720,
		},
		Args: []string{
			fmt.Sprintf("--disable-extensions-except=%s", absExt),
			fmt.Sprintf("--load-extension=%s", absExt),
			"--disable-blink-features=AutomationControlled",
			"--disable-dev-shm-usage",
			"--no-sandbox",
			"--disable-infobars",
			"--disable-notifications",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	var page playwright.Page
	if pages := browserContext.Pages(); len(pages) > 0 {
		page = pages[0]
	} else {
		page, err = browserContext.NewPage()
		if err != nil {
			return nil, fmt.Errorf("failed to create page: %w", err)
		}
	}

	// Buffer extension lifecycle events before any page script runs.
	if err := page.AddInitScript(playwright.Script{Content: playwright.String(controlEventBufferScript)}); err != nil {
		return nil, fmt.Errorf("failed to install control-event buffer: %w", err)
	}

	page.OnDialog(func(dialog playwright.Dialog) {
		dialog.Accept()
	})

	controller := &Controller{
		pw:      pw,
		context: browserContext,
		page:    page,
		logger:  logger,
	}

	if opts.FixtureURL != "" {
		if err := controller.Navigate(context.Background(), opts.FixtureURL); err != nil {
			controller.Close()
			return nil, err
		}
	}

	return controller, nil
}

// Navigate - navigates the session page to the specified URL
func (c *Controller) Navigate(ctx context.Context, url string) error {
	c.logger.Infof("Navigating to: %s", url)
	_, err := c.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
		Timeout:   playwright.Float(30000),
	})
	return err
}

// Evaluate - runs a script expression in the page
func (c *Controller) Evaluate(ctx context.Context, script string, arg interface{}) (interface{}, error) {
	if arg == nil {
		return c.page.Evaluate(script)
	}
	return c.page.Evaluate(script, arg)
}

// MouseMove - moves the native pointer to viewport coordinates
func (c *Controller) MouseMove(ctx context.Context, x, y float64) error {
	return c.page.Mouse().Move(x, y)
}

// MouseClick - performs a native single click
func (c *Controller) MouseClick(ctx context.Context, x, y float64) error {
	return c.page.Mouse().Click(x, y)
}

// MouseDblClick - performs a native double click
func (c *Controller) MouseDblClick(ctx context.Context, x, y float64) error {
	return c.page.Mouse().Dblclick(x, y)
}

// SetFieldText assigns text to a field by direct value assignment and
// dispatches a composed input event, which is what triggers the
// extension's proofreading pass.
func (c *Controller) SetFieldText(ctx context.Context, fieldID string, text string) error {
	result, err := c.page.Evaluate(setFieldTextScript, map[string]interface{}{
		"fieldId": fieldID,
		"text":    text,
	})
	if err != nil {
		return fmt.Errorf("failed to set text on field %q: %w", fieldID, err)
	}
	if ok, _ := result.(bool); !ok {
		return fmt.Errorf("field %q not found", fieldID)
	}
	return nil
}

// Screenshot - takes a screenshot of the current page
func (c *Controller) Screenshot(ctx context.Context, path string) error {
	_, err := c.page.Screenshot(playwright.PageScreenshotOptions{
		Path: playwright.String(path),
	})
	return err
}

// BrowserContext exposes the underlying context for privileged
// consumers (the extension control surface).
func (c *Controller) BrowserContext() playwright.BrowserContext {
	return c.context
}

// Close - closes the browser session
func (c *Controller) Close() error {
	var closeErr error

	if c.context != nil {
		if err := c.context.Close(); err != nil && !isClosedErr(err) {
			closeErr = fmt.Errorf("failed to close context: %w", err)
		}
		c.context = nil
	}

	if c.pw != nil {
		if err := c.pw.Stop(); err != nil && !isClosedErr(err) {
			if closeErr != nil {
				closeErr = fmt.Errorf("%v; failed to stop playwright: %w", closeErr, err)
			} else {
				closeErr = fmt.Errorf("failed to stop playwright: %w", err)
			}
		}
		c.pw = nil
	}

	return closeErr
}

// isClosedErr - reports whether the error is a benign already-closed error
func isClosedErr(err error) bool {
	s := err.Error()
	return strings.Contains(s, "closed") || strings.Contains(s, "target closed")
}
