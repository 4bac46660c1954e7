package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// NumberColorCount is the number of adjacent-mine counts (0-8).
const NumberColorCount = 9

// Load loads the configuration.
// Search order: customPath -> ~/.minesweeper/config.yaml -> ./configs/minesweeper.yaml -> embedded default
//
// Files are applied on top of the defaults, so a file only needs the keys it
// changes. An unreadable or invalid customPath is an error. A fallback file
// that exists but cannot be used is skipped; the reason is returned in
// the second result so callers can warn about it.
func Load(customPath string) (Config, []error, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, nil, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, nil, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil, nil
	}

	var skipped []error
	for _, path := range []string{UserConfigPath(), filepath.Join("configs", "minesweeper.yaml")} {
		if path == "" {
			continue
		}
		cfg, err := loadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			skipped = append(skipped, err)
			continue
		}
		return cfg, skipped, nil
	}

	// Use embedded default YAML
	if cfg, err := Parse(defaultYAML); err == nil {
		return cfg, skipped, nil
	}
	return Default(), skipped, nil // Fallback to hardcoded if embed fails
}

// loadFile reads and parses one config file.
func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks glyphs, colors and key bindings.
func (c Config) Validate() error {
	glyphs := []struct{ name, value string }{
		{"hidden", c.Theme.Hidden},
		{"flag", c.Theme.Flag},
		{"mine", c.Theme.Mine},
	}
	for _, g := range glyphs {
		if utf8.RuneCountInString(g.value) != 1 {
			return fmt.Errorf("%w: theme.%s must be a single character, got %q", ErrInvalid, g.name, g.value)
		}
	}

	colors := []struct{ name, value string }{
		{"flag_color", c.Theme.FlagColor},
		{"mine_color", c.Theme.MineColor},
		{"win_color", c.Theme.WinColor},
		{"lose_color", c.Theme.LoseColor},
	}
	for _, col := range colors {
		if _, ok := core.ParseColor(col.value); !ok {
			return fmt.Errorf("%w: theme.%s: unknown color %q", ErrInvalid, col.name, col.value)
		}
	}

	if len(c.Theme.NumberColors) != NumberColorCount {
		return fmt.Errorf("%w: theme.number_colors needs %d entries, got %d",
			ErrInvalid, NumberColorCount, len(c.Theme.NumberColors))
	}
	for i, name := range c.Theme.NumberColors {
		if _, ok := core.ParseColor(name); !ok {
			return fmt.Errorf("%w: theme.number_colors[%d]: unknown color %q", ErrInvalid, i, name)
		}
	}

	owner := make(map[string]string)
	for _, b := range c.Keys.bindings() {
		if len(b.keys) == 0 {
			return fmt.Errorf("%w: keys.%s has no keys", ErrInvalid, b.name)
		}
		for _, k := range b.keys {
			if prev, taken := owner[k]; taken && prev != b.name {
				return fmt.Errorf("%w: key %q bound to both %s and %s", ErrInvalid, k, prev, b.name)
			}
			owner[k] = b.name
		}
	}
	return nil
}

// Color resolves a validated color name. Unknown names map to the default color.
func Color(name string) core.Color {
	c, _ := core.ParseColor(name)
	return c
}
