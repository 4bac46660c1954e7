package config

import (
	_ "embed"
)

//go:embed defaults/minesweeper.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It mirrors the embedded YAML
// and is used when that cannot be parsed.
func Default() Config {
	return Config{
		Theme: Theme{
			Hidden:    ".",
			Flag:      "!",
			Mine:      "*",
			FlagColor: "red",
			MineColor: "bright_red",
			WinColor:  "green",
			LoseColor: "red",
			NumberColors: []string{
				"blue", "green", "yellow", "magenta", "red",
				"red", "green", "cyan", "magenta",
			},
		},
		Keys: Keys{
			Up:      []string{"up", "w"},
			Down:    []string{"down", "s"},
			Left:    []string{"left", "a"},
			Right:   []string{"right", "d"},
			Reveal:  []string{" ", "enter"},
			Flag:    []string{"h", "f"},
			Restart: []string{"r"},
			Help:    []string{"?"},
			Quit:    []string{"q", "ctrl+c"},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
