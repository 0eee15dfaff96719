package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadConfigExplicit(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "custom.toml", "base = \"#ff0000\"\nbackend = \"scss\"\n")

	cfg, err := loadConfig(path, "")
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Base != "#ff0000" || cfg.Backend != "scss" {
		t.Errorf("config = %+v", cfg)
	}
}

func TestLoadConfigExplicitMissingFails(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"), ""); err == nil {
		t.Error("loadConfig() succeeded for missing explicit path, want error")
	}
}

func TestLoadConfigNextToInput(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "lvc.toml", "output = \"theme.css\"\n")
	input := writeFile(t, dir, "theme.lvc", "a: red; >>> x")

	cfg, err := loadConfig("", input)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Output != "theme.css" {
		t.Errorf("config = %+v, want output theme.css", cfg)
	}
}

func TestLoadConfigAbsentIsEmpty(t *testing.T) {
	input := writeFile(t, t.TempDir(), "theme.lvc", "a: red; >>> x")

	cfg, err := loadConfig("", input)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg != (config{}) {
		t.Errorf("config = %+v, want zero value", cfg)
	}
}

func TestLoadConfigBadTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.toml", "base = [broken\n")

	if _, err := loadConfig(path, ""); err == nil {
		t.Error("loadConfig() succeeded on invalid TOML, want error")
	}
}
