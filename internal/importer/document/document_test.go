package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/badele/textstyle/internal/types"
)

var expectedSpans = []types.StyledText{
	types.Plain("hello").WithFg(types.ANSI(types.Red, types.Dark)).Bold().Underline(),
	types.Plain(" "),
	types.Plain("world").WithBg(types.RGB(0x10, 0x20, 0x30)).WithFg(types.ANSI(types.Cyan, types.Light)),
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
	}{
		{"yaml", FormatYAML, `
spans:
  - text: hello
    fg: red
    effects: [bold, underline]
  - text: " "
  - text: world
    fg: light-cyan
    bg: "#102030"
`},
		{"toml", FormatTOML, `
[[spans]]
text = "hello"
fg = "red"
effects = ["bold", "underline"]

[[spans]]
text = " "

[[spans]]
text = "world"
fg = "light-cyan"
bg = "#102030"
`},
		{"json", FormatJSON, `{"spans": [
  {"text": "hello", "fg": "red", "effects": ["bold", "underline"]},
  {"text": " "},
  {"text": "world", "fg": "light-cyan", "bg": "#102030"}
]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			texts, err := Decode([]byte(tt.input), tt.format)
			require.NoError(t, err)
			assert.Equal(t, expectedSpans, texts)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name     string
		format   Format
		input    string
		expected error
	}{
		{"bad color", FormatJSON, `{"spans": [{"text": "a"}, {"text": "b", "fg": "pink"}]}`, ErrUnknownColor},
		{"bad bg", FormatYAML, "spans:\n  - text: a\n    bg: '#xyz'\n", ErrUnknownColor},
		{"bad effect", FormatYAML, "spans:\n  - text: a\n    effects: [blink]\n", ErrUnknownEffect},
		{"bad format", Format(42), `{}`, ErrUnknownFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.input), tt.format)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestDecodeErrorNamesSpan(t *testing.T) {
	_, err := Decode([]byte(`{"spans": [{"text": "a"}, {"text": "b", "fg": "pink"}]}`), FormatJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "span 1")
	assert.Contains(t, err.Error(), "pink")
}

func TestDecodeSyntaxError(t *testing.T) {
	_, err := Decode([]byte(`{"spans": [`), FormatJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json document")
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input    string
		expected types.Color
	}{
		{"black", types.ANSI(types.Black, types.Dark)},
		{"Yellow", types.ANSI(types.Yellow, types.Dark)},
		{"light-blue", types.ANSI(types.Blue, types.Light)},
		{"bright-magenta", types.ANSI(types.Magenta, types.Light)},
		{"lightwhite", types.ANSI(types.White, types.Light)},
		{"#ff8800", types.RGB(255, 136, 0)},
		{"#FFF", types.RGB(255, 255, 255)},
		{" green ", types.ANSI(types.Green, types.Dark)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := ParseColor(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c)
		})
	}
}

func TestParseColorEveryHue(t *testing.T) {
	for _, hue := range types.AnsiColors {
		for _, mode := range types.AnsiModes {
			want := types.ANSI(hue, mode)
			c, err := ParseColor(want.String())
			require.NoError(t, err)
			assert.Equal(t, want, c)
		}
	}
}

func TestParseEffect(t *testing.T) {
	for _, e := range types.AllEffects {
		got, err := ParseEffect(e.String())
		require.NoError(t, err)
		assert.Equal(t, e, got)
	}

	_, err := ParseEffect("strike")
	assert.ErrorIs(t, err, ErrUnknownEffect)
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
	}{
		{"spans.yaml", FormatYAML},
		{"dir/spans.yml", FormatYAML},
		{"spans.TOML", FormatTOML},
		{"spans.json", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			f, err := FormatFromPath(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, f)
		})
	}

	_, err := FormatFromPath("spans")
	assert.ErrorIs(t, err, ErrUnknownFormat)
	_, err = FormatFromPath("spans.txt")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
