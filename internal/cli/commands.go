package cli

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/badele/textstyle/internal/exporter"
	"github.com/badele/textstyle/internal/importer/document"
	"github.com/badele/textstyle/internal/types"
)

/////////////////////////////////////////////////////////////////////////////
// INPUT
/////////////////////////////////////////////////////////////////////////////

type InputFlags struct {
	File   string `arg:"" optional:"" help:"Span document to read (stdin when omitted or \"-\")."`
	Format string `enum:"auto,yaml,toml,json" default:"auto" env:"TEXTSTYLE_FORMAT" help:"Document format; auto uses the file extension, yaml for stdin."`
}

func (f *InputFlags) fromStdin() bool {
	return f.File == "" || f.File == "-"
}

func (f *InputFlags) format() (document.Format, error) {
	if f.Format != "auto" {
		return document.ParseFormat(f.Format)
	}
	if f.fromStdin() {
		return document.FormatYAML, nil
	}
	return document.FormatFromPath(f.File)
}

// load reads and decodes the input document.
func (f *InputFlags) load(ctx *Context) ([]types.StyledText, error) {
	logger := componentLogger(ctx.Logger, "input")

	format, err := f.format()
	if err != nil {
		return nil, err
	}

	var data []byte
	if f.fromStdin() {
		data, err = io.ReadAll(ctx.Stdin)
		if err != nil {
			return nil, fmt.Errorf("error reading from stdin: %w", err)
		}
	} else {
		data, err = os.ReadFile(f.File)
		if err != nil {
			return nil, fmt.Errorf("error reading file: %w", err)
		}
	}

	texts, err := document.Decode(data, format)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("file", f.File).
		Stringer("format", format).
		Int("bytes", len(data)).
		Int("spans", len(texts)).
		Msg("Document loaded")

	return texts, nil
}

/////////////////////////////////////////////////////////////////////////////
// RENDER
/////////////////////////////////////////////////////////////////////////////

type RenderCmd struct {
	InputFlags `embed:""`

	Encoding string `short:"e" enum:"utf8,cp437,cp850,iso-8859-1" default:"utf8" env:"TEXTSTYLE_ENCODING" help:"Output character encoding."`
	Newline  bool   `short:"n" env:"TEXTSTYLE_NEWLINE" help:"Append a newline after the rendered text."`
}

func (c *RenderCmd) Run(ctx *Context) error {
	logger := componentLogger(ctx.Logger, "render")

	texts, err := c.load(ctx)
	if err != nil {
		return err
	}

	w, err := exporter.NewEncodingWriter(ctx.Stdout, c.Encoding)
	if err != nil {
		return err
	}

	if err := exporter.RenderTermionAll(w, texts); err != nil {
		w.Close()
		return fmt.Errorf("error writing output: %w", err)
	}

	if c.Newline {
		if _, err := io.WriteString(w, "\n"); err != nil {
			w.Close()
			return fmt.Errorf("error writing output: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("error flushing output: %w", err)
	}

	logger.Debug().Str("encoding", c.Encoding).Int("spans", len(texts)).Msg("Rendered")
	return nil
}

/////////////////////////////////////////////////////////////////////////////
// CELLS
/////////////////////////////////////////////////////////////////////////////

type CellsCmd struct {
	InputFlags `embed:""`
}

func (c *CellsCmd) Run(ctx *Context) error {
	logger := componentLogger(ctx.Logger, "cells")

	texts, err := c.load(ctx)
	if err != nil {
		return err
	}

	width := 0
	for _, text := range texts {
		width += utf8.RuneCountInString(text.Text)
	}
	if width == 0 {
		logger.Warn().Msg("Document has no text")
		return nil
	}

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		return fmt.Errorf("error initializing screen: %w", err)
	}
	defer screen.Fini()
	screen.SetSize(width, 1)

	painted := exporter.PaintTcell(screen, 0, 0, texts)
	logger.Debug().Int("width", width).Int("painted", painted).Msg("Painted cells")

	return exporter.ExportCellsToTable(screen, 0, painted, ctx.Stdout)
}

/////////////////////////////////////////////////////////////////////////////
// SEQUENCES
/////////////////////////////////////////////////////////////////////////////

type SequencesCmd struct{}

func (c *SequencesCmd) Run(ctx *Context) error {
	return exporter.ExportSequencesToTable(ctx.Stdout)
}
