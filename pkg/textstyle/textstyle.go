// Package textstyle provides a public API for rendering styled text with
// the escape sequences of the termion terminal library.
//
// This package provides:
//   - Style value types (colors, effects, styled strings)
//   - Rendering of one or many styled strings to any io.Writer
//   - A tcell backend painting the same model on a tcell.Screen
//   - Span document decoding (YAML, TOML, JSON)
//
// Formatting is always cleared with one universal reset sequence after each
// formatted string, never with per-effect "off" sequences, since some
// terminals do not support those.
//
// Example usage:
//
//	import "github.com/badele/textstyle/pkg/textstyle"
//
//	texts := []textstyle.StyledText{
//		textstyle.Plain("test").Bold(),
//		textstyle.Plain(" "),
//		textstyle.Plain("test2").Italic(),
//	}
//	if err := textstyle.RenderAll(os.Stdout, texts); err != nil {
//		log.Fatal(err)
//	}
package textstyle

import (
	"io"
	"iter"

	"github.com/gdamore/tcell/v2"

	"github.com/badele/textstyle/internal/exporter"
	"github.com/badele/textstyle/internal/importer/document"
	"github.com/badele/textstyle/internal/types"
)

// Type aliases for public API
type (
	// Color is an unset, named (ANSI) or truecolor (RGB) color
	Color = types.Color

	// ColorKind tells which variant a Color holds
	ColorKind = types.ColorKind

	// AnsiColor is one of the 8 named hues
	AnsiColor = types.AnsiColor

	// AnsiMode is the dark or light variant of a hue
	AnsiMode = types.AnsiMode

	// Effect is a text decoration
	Effect = types.Effect

	// Effects is a set of effects, iterated as Bold, Italic, Underline
	Effects = types.Effects

	// Style bundles the optional colors and the effects
	Style = types.Style

	// StyledText is a string with an optional style
	StyledText = types.StyledText

	// Termion is a styled text whose String method returns termion output
	Termion = exporter.Termion

	// Format is a span document format
	Format = document.Format
)

// Color kind constants
const (
	ColorUnset = types.ColorUnset
	ColorANSI  = types.ColorANSI
	ColorRGB   = types.ColorRGB
)

// Hues
const (
	Black   = types.Black
	Red     = types.Red
	Green   = types.Green
	Yellow  = types.Yellow
	Blue    = types.Blue
	Magenta = types.Magenta
	Cyan    = types.Cyan
	White   = types.White
)

// Modes
const (
	Dark  = types.Dark
	Light = types.Light
)

// Effects
const (
	Bold      = types.Bold
	Italic    = types.Italic
	Underline = types.Underline
)

// Document formats
const (
	FormatYAML = document.FormatYAML
	FormatTOML = document.FormatTOML
	FormatJSON = document.FormatJSON
)

// Reset is the sequence written after every formatted string.
const Reset = exporter.TermionReset

// Errors
var (
	ErrUnsupportedEncoding = exporter.ErrUnsupportedEncoding
	ErrUnknownFormat       = document.ErrUnknownFormat
	ErrUnknownColor        = document.ErrUnknownColor
	ErrUnknownEffect       = document.ErrUnknownEffect
)

// ANSI returns a named color.
func ANSI(c AnsiColor, mode AnsiMode) Color {
	return types.ANSI(c, mode)
}

// RGB returns a truecolor value.
func RGB(r, g, b uint8) Color {
	return types.RGB(r, g, b)
}

// NewEffects builds an effect set.
func NewEffects(effects ...Effect) Effects {
	return types.NewEffects(effects...)
}

// Plain returns an unstyled string.
func Plain(s string) StyledText {
	return types.Plain(s)
}

// Styled returns s with the given style.
func Styled(s string, style Style) StyledText {
	return types.Styled(s, style)
}

// NewTermion wraps s for termion output, e.g. fmt.Println(textstyle.NewTermion(s)).
func NewTermion(s StyledText) Termion {
	return exporter.NewTermion(s)
}

// Render writes one styled string to w and returns the writer's error, if any.
func Render(w io.Writer, s StyledText) error {
	return exporter.RenderTermion(w, s)
}

// RenderAll writes texts to w in order and stops at the first write error.
// Texts written before the error are not retracted.
func RenderAll(w io.Writer, texts []StyledText) error {
	return exporter.RenderTermionAll(w, texts)
}

// RenderSeq is RenderAll for any single-use sequence.
func RenderSeq(w io.Writer, seq iter.Seq[StyledText]) error {
	return exporter.RenderTermionSeq(w, seq)
}

// Sequence accessors of the termion mapping.
func FgSequence(c Color) string      { return exporter.FgSequence(c) }
func BgSequence(c Color) string      { return exporter.BgSequence(c) }
func EffectSequence(e Effect) string { return exporter.EffectSequence(e) }

// NewEncodingWriter converts output to "utf8", "cp437", "cp850" or "iso-8859-1".
func NewEncodingWriter(w io.Writer, name string) (io.WriteCloser, error) {
	return exporter.NewEncodingWriter(w, name)
}

// TcellStyle converts a style for use with tcell; nil gives tcell.StyleDefault.
func TcellStyle(s *Style) tcell.Style {
	return exporter.TcellStyle(s)
}

// PaintTcell draws texts on a tcell screen from (x, y) and returns the next column.
func PaintTcell(screen tcell.Screen, x, y int, texts []StyledText) int {
	return exporter.PaintTcell(screen, x, y, texts)
}

// Decode parses a span document.
func Decode(data []byte, format Format) ([]StyledText, error) {
	return document.Decode(data, format)
}

// ParseColor parses "red", "light-red" or "#rrggbb".
func ParseColor(value string) (Color, error) {
	return document.ParseColor(value)
}
