package exporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/badele/textstyle/internal/types"
)

// ExportSequencesToTable prints every termion sequence known to the mapper:
// the 32 named colors, the effects and the reset.
func ExportSequencesToTable(writer io.Writer) error {
	fmt.Fprintln(writer, "┌────────┬──────────────────┬──────────────────────┐")
	fmt.Fprintf(writer, "│ %-6s │ %-16s │ %-20s │\n", "Role", "Attribute", "Sequence")
	fmt.Fprintln(writer, "├────────┼──────────────────┼──────────────────────┤")

	row := func(role, attribute, seq string) error {
		_, err := fmt.Fprintf(writer, "│ %-6s │ %-16s │ %-20s │\n", role, attribute, truncate(seq, 20))
		return err
	}

	for _, mode := range types.AnsiModes {
		for _, hue := range types.AnsiColors {
			c := types.ANSI(hue, mode)
			if err := row("fg", c.String(), FgSequence(c)); err != nil {
				return err
			}
			if err := row("bg", c.String(), BgSequence(c)); err != nil {
				return err
			}
		}
	}

	for _, effect := range types.AllEffects {
		if err := row("effect", effect.String(), EffectSequence(effect)); err != nil {
			return err
		}
	}

	if err := row("reset", "all", TermionReset); err != nil {
		return err
	}

	_, err := fmt.Fprintln(writer, "└────────┴──────────────────┴──────────────────────┘")
	return err
}

// ExportCellsToTable prints the first width cells of row y of screen, one
// line per cell, with the decoded tcell style.
func ExportCellsToTable(screen tcell.Screen, y, width int, writer io.Writer) error {
	fmt.Fprintln(writer, "┌────────┬────────┬──────────────┬──────────────┬──────────────────────────┐")
	fmt.Fprintf(writer, "│ %-6s │ %-6s │ %-12s │ %-12s │ %-24s │\n", "Col", "Rune", "Fg", "Bg", "Attributes")
	fmt.Fprintln(writer, "├────────┼────────┼──────────────┼──────────────┼──────────────────────────┤")

	for x := 0; x < width; x++ {
		r, _, style, _ := screen.GetContent(x, y)
		fg, bg, attrs := style.Decompose()

		_, err := fmt.Fprintf(writer, "│ %-6d │ %-6s │ %-12s │ %-12s │ %-24s │\n",
			x, truncate(string(r), 6), formatTcellColor(fg), formatTcellColor(bg), formatAttrs(attrs))
		if err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(writer, "└────────┴────────┴──────────────┴──────────────┴──────────────────────────┘")
	return err
}

func formatTcellColor(c tcell.Color) string {
	switch {
	case c == tcell.ColorDefault:
		return "default"
	case c.IsRGB():
		return fmt.Sprintf("#%06x", c.Hex())
	default:
		return fmt.Sprintf("palette:%d", int(c-tcell.ColorValid))
	}
}

func formatAttrs(attrs tcell.AttrMask) string {
	var names []string
	if attrs&tcell.AttrBold != 0 {
		names = append(names, "bold")
	}
	if attrs&tcell.AttrItalic != 0 {
		names = append(names, "italic")
	}
	if attrs&tcell.AttrUnderline != 0 {
		names = append(names, "underline")
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ",")
}

func truncate(s string, maxLen int) string {
	s = fmt.Sprintf("%q", s)

	// Remove quote added by %q
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	if len(s) > maxLen {
		return s[:maxLen-3] + "..."
	}
	return s
}
