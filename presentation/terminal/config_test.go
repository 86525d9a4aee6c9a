package terminal

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "harness.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
extension_path: ./dist/extension
fixture_url: http://localhost:8080/fixture.html
headless: true
tolerance: 4
categories: [spelling, grammar]
poll_interval: 250ms
report_path: out/report.txt
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ExtensionPath != "./dist/extension" {
		t.Errorf("ExtensionPath = %q", cfg.ExtensionPath)
	}
	if cfg.FixtureURL != "http://localhost:8080/fixture.html" {
		t.Errorf("FixtureURL = %q", cfg.FixtureURL)
	}
	if !cfg.Headless {
		t.Error("Headless should be true")
	}
	if cfg.Tolerance != 4 {
		t.Errorf("Tolerance = %f", cfg.Tolerance)
	}
	if len(cfg.Categories) != 2 {
		t.Errorf("Categories = %v", cfg.Categories)
	}
	if time.Duration(cfg.PollInterval) != 250*time.Millisecond {
		t.Errorf("PollInterval = %v", time.Duration(cfg.PollInterval))
	}
	if cfg.ReportPath != "out/report.txt" {
		t.Errorf("ReportPath = %q", cfg.ReportPath)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing config file should not be an error: %v", err)
	}
	if cfg.ReportPath != "proofly_report.txt" {
		t.Errorf("default ReportPath = %q", cfg.ReportPath)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
extension_path: ./from-yaml
fixture_url: http://yaml.example/
`)

	t.Setenv("PROOFLY_EXTENSION_PATH", "/opt/extension")
	t.Setenv("PROOFLY_FIXTURE_URL", "http://env.example/")
	t.Setenv("PROOFLY_REPORT_PATH", "/tmp/report.txt")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ExtensionPath != "/opt/extension" {
		t.Errorf("env override lost: ExtensionPath = %q", cfg.ExtensionPath)
	}
	if cfg.FixtureURL != "http://env.example/" {
		t.Errorf("env override lost: FixtureURL = %q", cfg.FixtureURL)
	}
	if cfg.ReportPath != "/tmp/report.txt" {
		t.Errorf("env override lost: ReportPath = %q", cfg.ReportPath)
	}
}

func TestLoadConfigBadDuration(t *testing.T) {
	path := writeConfig(t, "poll_interval: soon\n")
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for unparsable duration")
	}
}

func TestLoadConfigBadYaml(t *testing.T) {
	path := writeConfig(t, ":\n\t-bad")
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}
