package terminal

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/sagarmandavkar-UX/proofly-sub001/application/inspector"
	"github.com/sagarmandavkar-UX/proofly-sub001/application/scenario"
	"github.com/sagarmandavkar-UX/proofly-sub001/domain/entities"
	"github.com/sagarmandavkar-UX/proofly-sub001/infrastructure/browser"
	"github.com/sagarmandavkar-UX/proofly-sub001/infrastructure/extension"
	"github.com/sagarmandavkar-UX/proofly-sub001/infrastructure/report"
)

// Runner wires a live verification session and runs the scenario
// suite against it from the command line.
type Runner struct {
	config     *Config
	logger     *logrus.Logger
	controller *browser.Controller
	suite      *scenario.Suite
	control    *extension.Control
}

// NewRunner - initializes configuration, logging and the browser session
func NewRunner() (*Runner, error) {
	if err := godotenv.Load(); err != nil {
		// .env file is optional
		fmt.Println("Warning: .env file not found, using environment variables")
	}

	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	configPath := os.Getenv("PROOFLY_CONFIG")
	if configPath == "" {
		configPath = "harness.yaml"
	}
	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	controller, err := browser.NewController(logger, browser.Options{
		ExtensionPath: config.ExtensionPath,
		FixtureURL:    config.FixtureURL,
		Headless:      config.Headless,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize browser session: %w", err)
	}

	engine := inspector.NewEngine(controller, logger, inspector.Config{
		Tolerance:    config.Tolerance,
		Categories:   config.Categories,
		PollInterval: time.Duration(config.PollInterval),
	})

	control := extension.NewControl(controller.BrowserContext(), logger)
	suite := scenario.NewSuite(controller, engine, control, logger)

	return &Runner{
		config:     config,
		logger:     logger,
		controller: controller,
		suite:      suite,
		control:    control,
	}, nil
}

// Run executes the selected scenarios (all when names is empty) and
// writes the grouped diagnostic log report for the run.
func (r *Runner) Run(names []string) error {
	defer r.controller.Close()

	ctx := context.Background()
	started := time.Now()

	runErr := r.suite.Run(ctx, names)

	if err := r.writeReport(ctx, started); err != nil {
		r.logger.Warnf("Failed to write diagnostic report: %v", err)
	}

	if runErr != nil {
		return runErr
	}
	r.logger.Info("All scenarios passed")
	return nil
}

// writeReport fetches the extension's diagnostic log and writes the
// entries from this run, grouped by context.
func (r *Runner) writeReport(ctx context.Context, since time.Time) error {
	entries, err := r.control.FetchLog(ctx)
	if err != nil {
		return err
	}

	path := r.config.ReportPath
	if err := report.WriteFile(path, entries, entities.LogFilter{Since: since}); err != nil {
		return err
	}
	r.logger.Infof("Diagnostic report written to %s (session %s)", path, r.suite.SessionID())
	return nil
}

// Close - closes the underlying browser session
func (r *Runner) Close() error {
	return r.controller.Close()
}
