package exporter

import (
	"github.com/gdamore/tcell/v2"

	"github.com/badele/textstyle/internal/types"
)

// TcellColor converts c to a tcell color. Named colors use the same palette
// slots as the termion output so both backends agree.
func TcellColor(c types.Color) tcell.Color {
	switch c.Kind {
	case types.ColorANSI:
		return tcell.PaletteColor(ansiPaletteIndex(c))
	case types.ColorRGB:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return tcell.ColorDefault
}

// TcellStyle converts s to a tcell style; nil maps to tcell.StyleDefault.
func TcellStyle(s *types.Style) tcell.Style {
	style := tcell.StyleDefault
	if s == nil {
		return style
	}

	if s.Fg.IsSet() {
		style = style.Foreground(TcellColor(s.Fg))
	}
	if s.Bg.IsSet() {
		style = style.Background(TcellColor(s.Bg))
	}

	for effect := range s.Effects.All() {
		switch effect {
		case types.Bold:
			style = style.Bold(true)
		case types.Italic:
			style = style.Italic(true)
		case types.Underline:
			style = style.Underline(true)
		}
	}

	return style
}

// PaintTcell draws texts on screen starting at (x, y), one cell per rune.
// Runes past the right edge are dropped. It returns the column following the
// last painted cell.
func PaintTcell(screen tcell.Screen, x, y int, texts []types.StyledText) int {
	width, height := screen.Size()
	if y < 0 || y >= height {
		return x
	}

	for _, text := range texts {
		style := TcellStyle(text.Style)
		for _, r := range text.Text {
			if x >= width {
				return x
			}
			if x >= 0 {
				screen.SetContent(x, y, r, nil, style)
			}
			x++
		}
	}

	return x
}
