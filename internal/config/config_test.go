package config

import (
	"testing"
	"time"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.CatalogID != "home" {
		t.Fatalf("expected default catalog home, got %q", cfg.App.CatalogID)
	}
	if cfg.App.APIBase != "" {
		t.Fatalf("expected empty api base by default, got %q", cfg.App.APIBase)
	}
	if !cfg.App.ShowFooter {
		t.Fatalf("expected footer enabled by default")
	}
	if cfg.App.Width != 0 || cfg.App.Height != 0 || cfg.App.FPS != 0 {
		t.Fatalf("expected zero dimensions and fps by default")
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	environ := []string{
		"MARQUEE_CATALOG=env-catalog",
		"MARQUEE_WIDTH=100",
		"MARQUEE_FPS=12",
	}
	cfg, err := LoadArgs([]string{"--catalog", "flag-catalog", "--width", "64"}, environ)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.CatalogID != "flag-catalog" {
		t.Fatalf("expected flag to win, got %q", cfg.App.CatalogID)
	}
	if cfg.App.Width != 64 {
		t.Fatalf("expected width 64, got %d", cfg.App.Width)
	}
	if cfg.App.FPS != 12 {
		t.Fatalf("expected fps from environment, got %d", cfg.App.FPS)
	}
}

func TestLoadArgsParsesTimeout(t *testing.T) {
	cfg, err := LoadArgs([]string{"--timeout", "5s"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Timeout != 5*time.Second {
		t.Fatalf("expected 5s timeout, got %s", cfg.App.Timeout)
	}
}

func TestLoadArgsRejectsNegativeDimensions(t *testing.T) {
	if _, err := LoadArgs([]string{"--width", "-1"}, nil); err == nil {
		t.Fatalf("expected error for negative width")
	}
	if _, err := LoadArgs([]string{"--height", "-2"}, nil); err == nil {
		t.Fatalf("expected error for negative height")
	}
	if _, err := LoadArgs([]string{"--fps", "-3"}, nil); err == nil {
		t.Fatalf("expected error for negative fps")
	}
}

func TestLoadArgsRejectsEmptyCatalog(t *testing.T) {
	if _, err := LoadArgs([]string{"--catalog", "  "}, nil); err == nil {
		t.Fatalf("expected error for blank catalog")
	}
}

func TestLoadArgsRecordsFlagsAndArgs(t *testing.T) {
	args := []string{"--trace", "--log-file", "out.log"}
	cfg, err := LoadArgs(args, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "out.log" {
		t.Fatalf("expected logging config from flags, got %#v", cfg.Logging)
	}
	if cfg.Flags["trace"] != "true" || cfg.Flags["logFile"] != "out.log" {
		t.Fatalf("unexpected flag capture: %#v", cfg.Flags)
	}
	if len(cfg.Args) != len(args) {
		t.Fatalf("expected args recorded, got %#v", cfg.Args)
	}
}
