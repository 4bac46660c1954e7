// Package config provides YAML-based configuration loading for the display
// theme and key bindings.
package config

// Config is the full user configuration.
type Config struct {
	Theme Theme `yaml:"theme"`
	Keys  Keys  `yaml:"keys"`
}

// Theme controls how cells and messages are drawn.
type Theme struct {
	Hidden string `yaml:"hidden"` // Glyph for unrevealed cells
	Flag   string `yaml:"flag"`   // Glyph for flagged cells
	Mine   string `yaml:"mine"`   // Glyph for mines

	FlagColor string `yaml:"flag_color"`
	MineColor string `yaml:"mine_color"`
	WinColor  string `yaml:"win_color"`
	LoseColor string `yaml:"lose_color"`

	// NumberColors is indexed by adjacent mine count and must have 9 entries.
	NumberColors []string `yaml:"number_colors"`
}

// Keys maps each action to the key names that trigger it.
// Names follow Bubble Tea's KeyMsg.String() ("up", "ctrl+c", " ").
type Keys struct {
	Up      []string `yaml:"up"`
	Down    []string `yaml:"down"`
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Reveal  []string `yaml:"reveal"`
	Flag    []string `yaml:"flag"`
	Restart []string `yaml:"restart"`
	Help    []string `yaml:"help"`
	Quit    []string `yaml:"quit"`
}

// bindings returns each action's keys keyed by action name.
func (k Keys) bindings() []struct {
	name string
	keys []string
} {
	return []struct {
		name string
		keys []string
	}{
		{"up", k.Up},
		{"down", k.Down},
		{"left", k.Left},
		{"right", k.Right},
		{"reveal", k.Reveal},
		{"flag", k.Flag},
		{"restart", k.Restart},
		{"help", k.Help},
		{"quit", k.Quit},
	}
}
