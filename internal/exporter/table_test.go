package exporter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/badele/textstyle/internal/types"
)

func TestExportSequencesToTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportSequencesToTable(&buf))

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// header (3 lines) + 32 colors + 3 effects + reset + footer
	assert.Len(t, lines, 3+32+3+1+1)

	assert.Contains(t, out, `\x1b[38;5;15m`)
	assert.Contains(t, out, `\x1b[48;5;0m`)
	assert.Contains(t, out, `\x1b[4m`)
	assert.Contains(t, out, `\x1b[m`)
	assert.Contains(t, out, "light-white")
}

func TestExportCellsToTable(t *testing.T) {
	screen := newSimulationScreen(t, 4, 1)
	texts := []types.StyledText{
		types.Plain("a").WithFg(types.ANSI(types.Red, types.Dark)).Bold(),
		types.Plain("b").WithBg(types.RGB(0x12, 0x34, 0x56)),
	}
	width := PaintTcell(screen, 0, 0, texts)

	var buf bytes.Buffer
	require.NoError(t, ExportCellsToTable(screen, 0, width, &buf))

	out := buf.String()
	assert.Contains(t, out, "palette:1")
	assert.Contains(t, out, "bold")
	assert.Contains(t, out, "#123456")
	assert.Len(t, strings.Split(strings.TrimRight(out, "\n"), "\n"), 3+2+1)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, `\x1b[1m`, truncate("\x1b[1m", 20))
	assert.Equal(t, "abcd...", truncate("abcdefghij", 7))
}
