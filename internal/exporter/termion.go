package exporter

import (
	"fmt"
	"io"
	"iter"
	"slices"

	"github.com/badele/textstyle/internal/types"
)

// AppendTermion appends the termion rendering of s to dst.
//
// Formatting is always cleared with TermionReset instead of the per-effect
// "off" sequences, which some terminals do not honor.
func AppendTermion(dst []byte, s types.StyledText) []byte {
	if s.Style != nil {
		if s.Style.Fg.IsSet() {
			dst = append(dst, FgSequence(s.Style.Fg)...)
		}
		if s.Style.Bg.IsSet() {
			dst = append(dst, BgSequence(s.Style.Bg)...)
		}
		for effect := range s.Style.Effects.All() {
			dst = append(dst, EffectSequence(effect)...)
		}
	}

	dst = append(dst, s.Text...)

	if s.IsFormatted() {
		dst = append(dst, TermionReset...)
	}

	return dst
}

// Termion is a styled text prepared for termion output.
// Its String method returns the formatted string.
type Termion struct {
	text types.StyledText
}

func NewTermion(s types.StyledText) Termion {
	return Termion{text: s}
}

func (t Termion) String() string {
	return string(AppendTermion(nil, t.text))
}

// WriteTo writes the rendered text to w in a single call.
func (t Termion) WriteTo(w io.Writer) (int64, error) {
	buf := AppendTermion(nil, t.text)
	n, err := w.Write(buf)
	if err == nil && n < len(buf) {
		err = io.ErrShortWrite
	}
	return int64(n), err
}

// RenderTermion writes one styled text to w.
func RenderTermion(w io.Writer, s types.StyledText) error {
	_, err := NewTermion(s).WriteTo(w)
	return err
}

// RenderTermionAll writes texts to w in order. It stops at the first write
// error; texts before the failing one remain written.
func RenderTermionAll(w io.Writer, texts []types.StyledText) error {
	return RenderTermionSeq(w, slices.Values(texts))
}

// RenderTermionSeq is RenderTermionAll for an arbitrary sequence. The
// sequence is consumed once and each item is written as soon as it is rendered.
func RenderTermionSeq(w io.Writer, seq iter.Seq[types.StyledText]) error {
	var buf []byte
	index := 0
	for s := range seq {
		buf = AppendTermion(buf[:0], s)
		n, err := w.Write(buf)
		if err == nil && n < len(buf) {
			err = io.ErrShortWrite
		}
		if err != nil {
			return fmt.Errorf("error rendering text %d: %w", index, err)
		}
		index++
	}
	return nil
}
