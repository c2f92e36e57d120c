package exporter

import (
	"fmt"

	"github.com/badele/textstyle/internal/types"
)

// TermionReset clears every color and effect at once.
const TermionReset = "\x1b[m"

// termion writes named colors through the 256-color palette, dark hues
// at indexes 0-7 and light hues at 8-15.
var termionAnsiFg = [2][8]string{
	types.Dark: {
		types.Black:   "\x1b[38;5;0m",
		types.Red:     "\x1b[38;5;1m",
		types.Green:   "\x1b[38;5;2m",
		types.Yellow:  "\x1b[38;5;3m",
		types.Blue:    "\x1b[38;5;4m",
		types.Magenta: "\x1b[38;5;5m",
		types.Cyan:    "\x1b[38;5;6m",
		types.White:   "\x1b[38;5;7m",
	},
	types.Light: {
		types.Black:   "\x1b[38;5;8m",
		types.Red:     "\x1b[38;5;9m",
		types.Green:   "\x1b[38;5;10m",
		types.Yellow:  "\x1b[38;5;11m",
		types.Blue:    "\x1b[38;5;12m",
		types.Magenta: "\x1b[38;5;13m",
		types.Cyan:    "\x1b[38;5;14m",
		types.White:   "\x1b[38;5;15m",
	},
}

var termionAnsiBg = [2][8]string{
	types.Dark: {
		types.Black:   "\x1b[48;5;0m",
		types.Red:     "\x1b[48;5;1m",
		types.Green:   "\x1b[48;5;2m",
		types.Yellow:  "\x1b[48;5;3m",
		types.Blue:    "\x1b[48;5;4m",
		types.Magenta: "\x1b[48;5;5m",
		types.Cyan:    "\x1b[48;5;6m",
		types.White:   "\x1b[48;5;7m",
	},
	types.Light: {
		types.Black:   "\x1b[48;5;8m",
		types.Red:     "\x1b[48;5;9m",
		types.Green:   "\x1b[48;5;10m",
		types.Yellow:  "\x1b[48;5;11m",
		types.Blue:    "\x1b[48;5;12m",
		types.Magenta: "\x1b[48;5;13m",
		types.Cyan:    "\x1b[48;5;14m",
		types.White:   "\x1b[48;5;15m",
	},
}

var termionEffects = [...]string{
	types.Bold:      "\x1b[1m",
	types.Italic:    "\x1b[3m",
	types.Underline: "\x1b[4m",
}

// FgSequence returns the sequence that switches the foreground to c.
// An unset color yields an empty string.
func FgSequence(c types.Color) string {
	switch c.Kind {
	case types.ColorANSI:
		return termionAnsiFg[c.Mode][c.Ansi]
	case types.ColorRGB:
		return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
	}
	return ""
}

// BgSequence returns the sequence that switches the background to c.
// An unset color yields an empty string.
func BgSequence(c types.Color) string {
	switch c.Kind {
	case types.ColorANSI:
		return termionAnsiBg[c.Mode][c.Ansi]
	case types.ColorRGB:
		return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", c.R, c.G, c.B)
	}
	return ""
}

// EffectSequence returns the sequence that enables e.
func EffectSequence(e types.Effect) string {
	if int(e) < len(termionEffects) {
		return termionEffects[e]
	}
	return ""
}

// ansiPaletteIndex is the 256-color palette slot termion uses for a named color.
func ansiPaletteIndex(c types.Color) int {
	index := int(c.Ansi)
	if c.Mode == types.Light {
		index += 8
	}
	return index
}
