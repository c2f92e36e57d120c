package types

import (
	"fmt"
	"iter"
	"strings"
)

/////////////////////////////////////////////////////////////////////////////
// COLOR
/////////////////////////////////////////////////////////////////////////////

type ColorKind int

const (
	ColorUnset ColorKind = iota // no color
	ColorANSI                   // named hue with a dark/light mode
	ColorRGB                    // 24-bit truecolor
)

func (k ColorKind) String() string {
	switch k {
	case ColorUnset:
		return "unset"
	case ColorANSI:
		return "ansi"
	case ColorRGB:
		return "rgb"
	default:
		return fmt.Sprintf("ColorKind(%d)", k)
	}
}

// AnsiColor is one of the 8 named terminal hues.
type AnsiColor uint8

const (
	Black AnsiColor = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// AnsiColors lists every hue in palette order.
var AnsiColors = [...]AnsiColor{Black, Red, Green, Yellow, Blue, Magenta, Cyan, White}

var ansiColorNames = [...]string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

func (c AnsiColor) String() string {
	if int(c) < len(ansiColorNames) {
		return ansiColorNames[c]
	}
	return fmt.Sprintf("AnsiColor(%d)", c)
}

// AnsiMode selects the intensity of a named hue.
type AnsiMode uint8

const (
	Dark AnsiMode = iota
	Light
)

// AnsiModes lists both modes, Dark first.
var AnsiModes = [...]AnsiMode{Dark, Light}

func (m AnsiMode) String() string {
	switch m {
	case Dark:
		return "dark"
	case Light:
		return "light"
	default:
		return fmt.Sprintf("AnsiMode(%d)", m)
	}
}

// Color is a tagged value: Kind says which of the other fields are meaningful.
// The zero value is an unset color.
type Color struct {
	Kind    ColorKind
	Ansi    AnsiColor
	Mode    AnsiMode
	R, G, B uint8
}

// ANSI returns a named color.
func ANSI(c AnsiColor, mode AnsiMode) Color {
	return Color{Kind: ColorANSI, Ansi: c, Mode: mode}
}

// RGB returns a truecolor value.
func RGB(r, g, b uint8) Color {
	return Color{Kind: ColorRGB, R: r, G: g, B: b}
}

func (c Color) IsSet() bool {
	return c.Kind != ColorUnset
}

func (c Color) String() string {
	switch c.Kind {
	case ColorUnset:
		return "unset"
	case ColorANSI:
		if c.Mode == Light {
			return "light-" + c.Ansi.String()
		}
		return c.Ansi.String()
	case ColorRGB:
		return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
	}
	return "unknown"
}

/////////////////////////////////////////////////////////////////////////////
// EFFECTS
/////////////////////////////////////////////////////////////////////////////

type Effect uint8

const (
	Bold Effect = iota
	Italic
	Underline
)

// AllEffects is the fixed emission order.
var AllEffects = [...]Effect{Bold, Italic, Underline}

func (e Effect) String() string {
	switch e {
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Underline:
		return "underline"
	default:
		return fmt.Sprintf("Effect(%d)", e)
	}
}

// Effects is a set of Effect values stored as a bit mask.
type Effects uint8

// NewEffects builds a set from the given effects; duplicates are ignored.
func NewEffects(effects ...Effect) Effects {
	var set Effects
	for _, e := range effects {
		set = set.With(e)
	}
	return set
}

func (s Effects) With(e Effect) Effects {
	return s | 1<<e
}

func (s Effects) Without(e Effect) Effects {
	return s &^ (1 << e)
}

func (s Effects) Has(e Effect) bool {
	return s&(1<<e) != 0
}

func (s Effects) IsEmpty() bool {
	return s == 0
}

func (s Effects) Len() int {
	n := 0
	for _, e := range AllEffects {
		if s.Has(e) {
			n++
		}
	}
	return n
}

// All yields the effects in the set, always in Bold, Italic, Underline order.
func (s Effects) All() iter.Seq[Effect] {
	return func(yield func(Effect) bool) {
		for _, e := range AllEffects {
			if s.Has(e) && !yield(e) {
				return
			}
		}
	}
}

// List returns the effects in the same order as All.
func (s Effects) List() []Effect {
	list := make([]Effect, 0, len(AllEffects))
	for e := range s.All() {
		list = append(list, e)
	}
	return list
}

func (s Effects) String() string {
	var parts []string
	for e := range s.All() {
		parts = append(parts, e.String())
	}
	return "[" + strings.Join(parts, ",") + "]"
}

/////////////////////////////////////////////////////////////////////////////
// STYLE
/////////////////////////////////////////////////////////////////////////////

type Style struct {
	Fg      Color
	Bg      Color
	Effects Effects
}

// IsPlain reports whether the style carries no formatting at all.
func (s Style) IsPlain() bool {
	return !s.Fg.IsSet() && !s.Bg.IsSet() && s.Effects.IsEmpty()
}

func (s Style) WithFg(c Color) Style {
	s.Fg = c
	return s
}

func (s Style) WithBg(c Color) Style {
	s.Bg = c
	return s
}

func (s Style) WithEffect(e Effect) Style {
	s.Effects = s.Effects.With(e)
	return s
}

func (s Style) Bold() Style      { return s.WithEffect(Bold) }
func (s Style) Italic() Style    { return s.WithEffect(Italic) }
func (s Style) Underline() Style { return s.WithEffect(Underline) }

func (s Style) String() string {
	return fmt.Sprintf("fg:%s, bg:%s, effects:%s", s.Fg, s.Bg, s.Effects)
}

/////////////////////////////////////////////////////////////////////////////
// STYLED TEXT
/////////////////////////////////////////////////////////////////////////////

// StyledText is a string with an optional style. A nil Style renders as plain text.
type StyledText struct {
	Text  string
	Style *Style
}

func Plain(s string) StyledText {
	return StyledText{Text: s}
}

func Styled(s string, style Style) StyledText {
	return StyledText{Text: s, Style: &style}
}

// style returns a copy of the current style, or the zero style when none is set.
func (t StyledText) style() Style {
	if t.Style == nil {
		return Style{}
	}
	return *t.Style
}

func (t StyledText) WithStyle(style Style) StyledText {
	t.Style = &style
	return t
}

func (t StyledText) WithFg(c Color) StyledText {
	return t.WithStyle(t.style().WithFg(c))
}

func (t StyledText) WithBg(c Color) StyledText {
	return t.WithStyle(t.style().WithBg(c))
}

func (t StyledText) WithEffect(e Effect) StyledText {
	return t.WithStyle(t.style().WithEffect(e))
}

func (t StyledText) Bold() StyledText      { return t.WithEffect(Bold) }
func (t StyledText) Italic() StyledText    { return t.WithEffect(Italic) }
func (t StyledText) Underline() StyledText { return t.WithEffect(Underline) }

// IsFormatted reports whether rendering the text would emit any control sequence.
func (t StyledText) IsFormatted() bool {
	return t.Style != nil && !t.Style.IsPlain()
}
