package terminal

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration for yaml values like "10s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Config holds the harness configuration, read from harness.yaml with
// environment-variable overrides for deployment-specific paths.
type Config struct {
	ExtensionPath string   `yaml:"extension_path"`
	FixtureURL    string   `yaml:"fixture_url"`
	Headless      bool     `yaml:"headless"`
	Tolerance     float64  `yaml:"tolerance"`
	Categories    []string `yaml:"categories"`
	PollInterval  Duration `yaml:"poll_interval"`
	ReportPath    string   `yaml:"report_path"`
}

// LoadConfig reads the yaml config at path. A missing file is not an
// error; environment variables can carry the required settings alone.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if v := os.Getenv("PROOFLY_EXTENSION_PATH"); v != "" {
		cfg.ExtensionPath = v
	}
	if v := os.Getenv("PROOFLY_FIXTURE_URL"); v != "" {
		cfg.FixtureURL = v
	}
	if v := os.Getenv("PROOFLY_REPORT_PATH"); v != "" {
		cfg.ReportPath = v
	}

	if cfg.ReportPath == "" {
		cfg.ReportPath = "proofly_report.txt"
	}
	return cfg, nil
}
