package minesweeper

import (
	"unicode/utf8"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
	"github.com/vovakirdan/tui-minesweeper/internal/core"
)

// Theme is a config.Theme resolved to runes and colors.
type Theme struct {
	Hidden rune
	Flag   rune
	Mine   rune

	FlagColor core.Color
	MineColor core.Color
	WinColor  core.Color
	LoseColor core.Color

	Numbers [config.NumberColorCount]core.Color
}

// NewTheme resolves a theme. Invalid entries fall back to the defaults, so
// an unvalidated config still renders.
func NewTheme(t config.Theme) Theme {
	def := config.Default().Theme

	out := Theme{
		Hidden:    glyph(t.Hidden, def.Hidden),
		Flag:      glyph(t.Flag, def.Flag),
		Mine:      glyph(t.Mine, def.Mine),
		FlagColor: color(t.FlagColor, def.FlagColor),
		MineColor: color(t.MineColor, def.MineColor),
		WinColor:  color(t.WinColor, def.WinColor),
		LoseColor: color(t.LoseColor, def.LoseColor),
	}
	for i := range out.Numbers {
		name := def.NumberColors[i]
		if i < len(t.NumberColors) {
			name = t.NumberColors[i]
		}
		out.Numbers[i] = color(name, def.NumberColors[i])
	}
	return out
}

func glyph(s, fallback string) rune {
	if utf8.RuneCountInString(s) != 1 {
		s = fallback
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

func color(name, fallback string) core.Color {
	if c, ok := core.ParseColor(name); ok {
		return c
	}
	return config.Color(fallback)
}
