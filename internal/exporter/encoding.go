package exporter

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var ErrUnsupportedEncoding = errors.New("unsupported encoding")

// Encodings lists the accepted output encoding names.
var Encodings = []string{"utf8", "cp437", "cp850", "iso-8859-1"}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// NewEncodingWriter returns a writer that converts UTF-8 input to the named
// encoding before passing it to w. Runes the target charmap cannot represent
// are replaced. Close flushes buffered output; it does not close w.
func NewEncodingWriter(w io.Writer, name string) (io.WriteCloser, error) {
	var encoder *encoding.Encoder

	switch name {
	case "utf8", "":
		return nopWriteCloser{w}, nil
	case "cp437":
		encoder = charmap.CodePage437.NewEncoder()
	case "cp850":
		encoder = charmap.CodePage850.NewEncoder()
	case "iso-8859-1":
		encoder = charmap.ISO8859_1.NewEncoder()
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEncoding, name)
	}

	return transform.NewWriter(w, encoding.ReplaceUnsupported(encoder)), nil
}
