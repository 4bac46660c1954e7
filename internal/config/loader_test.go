package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded defaults differ from Default():\n%+v\n%+v", cfg, Default())
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "custom.yaml", `
theme:
  hidden: "#"
keys:
  flag: [m]
`)

	cfg, skipped, err := Load(path)
	if err != nil || len(skipped) != 0 {
		t.Fatalf("Load failed: %v (skipped %v)", err, skipped)
	}

	if cfg.Theme.Hidden != "#" {
		t.Errorf("Theme.Hidden = %q, expected %q", cfg.Theme.Hidden, "#")
	}
	if cfg.Theme.Mine != "*" {
		t.Errorf("unset Theme.Mine = %q, expected default %q", cfg.Theme.Mine, "*")
	}
	if !reflect.DeepEqual(cfg.Keys.Flag, []string{"m"}) {
		t.Errorf("Keys.Flag = %v, expected [m]", cfg.Keys.Flag)
	}
	if !reflect.DeepEqual(cfg.Keys.Reveal, Default().Keys.Reveal) {
		t.Errorf("unset Keys.Reveal = %v, expected default", cfg.Keys.Reveal)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load of a missing custom path should fail")
	}

	bad := writeConfig(t, dir, "bad.yaml", "theme: [not, a, map")
	if _, _, err := Load(bad); err == nil {
		t.Error("Load of malformed YAML should fail")
	}

	invalid := writeConfig(t, dir, "invalid.yaml", "theme:\n  mine: \"**\"\n")
	if _, _, err := Load(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load of invalid config error = %v, expected ErrInvalid", err)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeConfig(t, home, filepath.Join(".minesweeper", "config.yaml"), "theme:\n  flag: F\n")

	cfg, skipped, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(skipped) != 0 {
		t.Errorf("valid user config reported as skipped: %v", skipped)
	}
	if cfg.Theme.Flag != "F" {
		t.Errorf("Theme.Flag = %q, expected user config value %q", cfg.Theme.Flag, "F")
	}
}

func TestLoadFallsBackOnInvalidUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeConfig(t, home, filepath.Join(".minesweeper", "config.yaml"), "theme:\n  flag: \"\"\n")

	cfg, skipped, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Theme.Flag != "!" {
		t.Errorf("Theme.Flag = %q, expected default after invalid user config", cfg.Theme.Flag)
	}
	if len(skipped) != 1 || !errors.Is(skipped[0], ErrInvalid) {
		t.Fatalf("skipped = %v, expected one ErrInvalid", skipped)
	}
	if !strings.Contains(skipped[0].Error(), "config.yaml") {
		t.Errorf("skip reason should name the file, got %q", skipped[0])
	}
}

func TestLoadWithoutFilesReportsNothing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, skipped, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(skipped) != 0 {
		t.Errorf("missing files should not be reported, got %v", skipped)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Load without files = %+v, expected defaults", cfg)
	}
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/player")

	tests := []struct {
		in, want string
	}{
		{"~/.minesweeper/results.db", filepath.Join("/home/player", ".minesweeper", "results.db")},
		{"/abs/path", "/abs/path"},
		{"relative/path", "relative/path"},
		{"", ""},
	}

	for _, tt := range tests {
		got, err := ExpandHome(tt.in)
		if err != nil {
			t.Fatalf("ExpandHome(%q) failed: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ExpandHome(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty glyph", func(c *Config) { c.Theme.Hidden = "" }},
		{"multi-rune glyph", func(c *Config) { c.Theme.Flag = "!!" }},
		{"unknown color", func(c *Config) { c.Theme.MineColor = "chartreuse" }},
		{"short number colors", func(c *Config) { c.Theme.NumberColors = c.Theme.NumberColors[:8] }},
		{"unknown number color", func(c *Config) { c.Theme.NumberColors[3] = "puce" }},
		{"empty binding", func(c *Config) { c.Keys.Reveal = nil }},
		{"key bound twice", func(c *Config) { c.Keys.Flag = []string{"q"} }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestValidateAcceptsUnicodeGlyph(t *testing.T) {
	cfg := Default()
	cfg.Theme.Mine = "✹"
	if err := cfg.Validate(); err != nil {
		t.Errorf("single multi-byte glyph should be valid, got %v", err)
	}
}

func TestColor(t *testing.T) {
	if Color("cyan") != core.ColorCyan {
		t.Error("Color(cyan) should resolve to core.ColorCyan")
	}
	if Color("nope") != core.ColorDefault {
		t.Error("unknown color should resolve to the default color")
	}
}
