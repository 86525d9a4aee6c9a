package inspector

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sagarmandavkar-UX/proofly-sub001/domain/interfaces"
)

// DefaultTolerance is the pixel slop allowed when matching an overlay
// host's rectangle against its field's. Sub-pixel layout jitter makes
// exact equality unreliable.
const DefaultTolerance = 5.0

// DefaultCategories is the fixed set of issue-category names the
// extension registers in the page-wide custom highlight registry.
var DefaultCategories = []string{"spelling", "grammar", "punctuation", "style"}

// Config tunes the engine. Zero values fall back to defaults.
type Config struct {
	Tolerance    float64       // spatial match tolerance in CSS pixels
	Categories   []string      // contenteditable highlight categories
	PollInterval time.Duration // lower bound between poll iterations
}

// Engine is the asynchronous UI-state synchronization and highlight
// correlation engine. It re-associates overlay instances with the
// fields they decorate, reconstructs flagged spans from live DOM
// state, and drives coordinate-accurate synthetic interactions across
// the overlay's isolation boundary. It holds no references to page
// nodes between calls; every query re-resolves from scratch.
type Engine struct {
	page         interfaces.Inspector
	logger       *logrus.Logger
	tolerance    float64
	categories   []string
	pollInterval time.Duration
}

// NewEngine - creates a new synchronization engine over a live page
func NewEngine(page interfaces.Inspector, logger *logrus.Logger, cfg Config) *Engine {
	if cfg.Tolerance <= 0 {
		cfg.Tolerance = DefaultTolerance
	}
	if len(cfg.Categories) == 0 {
		cfg.Categories = DefaultCategories
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 250 * time.Millisecond
	}
	return &Engine{
		page:         page,
		logger:       logger,
		tolerance:    cfg.Tolerance,
		categories:   cfg.Categories,
		pollInterval: cfg.PollInterval,
	}
}
