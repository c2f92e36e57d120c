// Package document decodes span documents (YAML, TOML or JSON lists of
// styled text) into the styled text model.
package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/badele/textstyle/internal/types"
)

var (
	ErrUnknownFormat = errors.New("unknown document format")
	ErrUnknownColor  = errors.New("unknown color")
	ErrUnknownEffect = errors.New("unknown effect")
)

type Format int

const (
	FormatYAML Format = iota
	FormatTOML
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	case FormatJSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", f)
	}
}

// ParseFormat accepts the names printed by Format.String, plus "yml".
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "json":
		return FormatJSON, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, name)
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return 0, fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// Span is one entry of a document, as written by users.
type Span struct {
	Text    string   `yaml:"text" toml:"text" json:"text"`
	Fg      string   `yaml:"fg,omitempty" toml:"fg,omitempty" json:"fg,omitempty"`
	Bg      string   `yaml:"bg,omitempty" toml:"bg,omitempty" json:"bg,omitempty"`
	Effects []string `yaml:"effects,omitempty" toml:"effects,omitempty" json:"effects,omitempty"`
}

type Document struct {
	Spans []Span `yaml:"spans" toml:"spans" json:"spans"`
}

// Decode parses data in the given format and converts every span.
func Decode(data []byte, format Format) ([]types.StyledText, error) {
	var doc Document

	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding %s document: %w", format, err)
	}

	return doc.StyledTexts()
}

// StyledTexts converts the spans in order.
func (d Document) StyledTexts() ([]types.StyledText, error) {
	texts := make([]types.StyledText, 0, len(d.Spans))
	for i, span := range d.Spans {
		text, err := span.StyledText()
		if err != nil {
			return nil, fmt.Errorf("span %d: %w", i, err)
		}
		texts = append(texts, text)
	}
	return texts, nil
}

// StyledText converts the span. A span without colors or effects has no style.
func (s Span) StyledText() (types.StyledText, error) {
	var style types.Style

	if s.Fg != "" {
		c, err := ParseColor(s.Fg)
		if err != nil {
			return types.StyledText{}, fmt.Errorf("fg: %w", err)
		}
		style.Fg = c
	}

	if s.Bg != "" {
		c, err := ParseColor(s.Bg)
		if err != nil {
			return types.StyledText{}, fmt.Errorf("bg: %w", err)
		}
		style.Bg = c
	}

	for _, name := range s.Effects {
		e, err := ParseEffect(name)
		if err != nil {
			return types.StyledText{}, err
		}
		style.Effects = style.Effects.With(e)
	}

	if style.IsPlain() {
		return types.Plain(s.Text), nil
	}
	return types.Styled(s.Text, style), nil
}

// ParseColor accepts a hue name ("red"), a light hue ("light-red",
// "bright-red", "lightred") or a hex color ("#ff8800", "#f80").
func ParseColor(value string) (types.Color, error) {
	name := strings.ToLower(strings.TrimSpace(value))

	if strings.HasPrefix(name, "#") {
		c, err := colorful.Hex(name)
		if err != nil {
			return types.Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, value)
		}
		r, g, b := c.RGB255()
		return types.RGB(r, g, b), nil
	}

	mode := types.Dark
	for _, prefix := range []string{"light-", "bright-", "light", "bright"} {
		if rest, ok := strings.CutPrefix(name, prefix); ok {
			mode = types.Light
			name = rest
			break
		}
	}

	for _, hue := range types.AnsiColors {
		if hue.String() == name {
			return types.ANSI(hue, mode), nil
		}
	}

	return types.Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, value)
}

func ParseEffect(value string) (types.Effect, error) {
	name := strings.ToLower(strings.TrimSpace(value))
	for _, e := range types.AllEffects {
		if e.String() == name {
			return e, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEffect, value)
}
