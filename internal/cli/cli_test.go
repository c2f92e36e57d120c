package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
spans:
  - text: "a"
    effects: [bold]
  - text: " "
  - text: "b"
    effects: [italic]
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := Run(args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRenderFromStdin(t *testing.T) {
	out, _, err := run(t, sampleYAML, "render")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[1ma\x1b[m \x1b[3mb\x1b[m", out)
}

func TestRenderIsDefaultCommand(t *testing.T) {
	path := writeFile(t, "spans.yaml", sampleYAML)

	out, _, err := run(t, "", path)
	require.NoError(t, err)
	assert.Equal(t, "\x1b[1ma\x1b[m \x1b[3mb\x1b[m", out)
}

func TestRenderFormats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"toml", "spans.toml", "[[spans]]\ntext = \"x\"\nfg = \"light-red\"\n"},
		{"json", "spans.json", `{"spans": [{"text": "x", "fg": "light-red"}]}`},
		{"yaml", "spans.yml", "spans:\n  - text: x\n    fg: light-red\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			out, _, err := run(t, "", "render", path)
			require.NoError(t, err)
			assert.Equal(t, "\x1b[38;5;9mx\x1b[m", out)
		})
	}
}

func TestRenderExplicitFormatFromStdin(t *testing.T) {
	out, _, err := run(t, `{"spans": [{"text": "plain"}]}`, "render", "--format", "json", "-n")
	require.NoError(t, err)
	assert.Equal(t, "plain\n", out)
}

func TestRenderEncoding(t *testing.T) {
	out, _, err := run(t, "spans:\n  - text: é\n    effects: [underline]\n", "render", "-e", "cp437")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[4m\x82\x1b[m", out)
}

func TestRenderEncodingFromEnv(t *testing.T) {
	t.Setenv("TEXTSTYLE_ENCODING", "iso-8859-1")

	out, _, err := run(t, "spans:\n  - text: é\n", "render")
	require.NoError(t, err)
	assert.Equal(t, "\xe9", out)
}

func TestRenderConfigFile(t *testing.T) {
	config := writeFile(t, "config.json", `{"newline": true}`)

	out, _, err := run(t, "spans:\n  - text: x\n", "--config", config, "render")
	require.NoError(t, err)
	assert.Equal(t, "x\n", out)
}

func TestRenderErrors(t *testing.T) {
	_, _, err := run(t, "spans:\n  - text: x\n    fg: pink\n", "render")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown color")

	_, _, err = run(t, "", "render", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading file")

	_, _, err = run(t, "", "render", "-e", "ebcdic")
	require.Error(t, err)
}

func TestCells(t *testing.T) {
	out, _, err := run(t, "spans:\n  - text: ab\n    fg: red\n    effects: [bold]\n", "cells")
	require.NoError(t, err)
	assert.Contains(t, out, "palette:1")
	assert.Contains(t, out, "bold")
	assert.Equal(t, 2, strings.Count(out, "palette:1"))
}

func TestCellsEmptyDocument(t *testing.T) {
	out, _, err := run(t, "spans: []\n", "cells")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSequences(t *testing.T) {
	out, _, err := run(t, "", "sequences")
	require.NoError(t, err)
	assert.Contains(t, out, `\x1b[38;5;0m`)
	assert.Contains(t, out, `\x1b[48;5;15m`)
}

func TestVerboseLogsToStderr(t *testing.T) {
	_, stderr, err := run(t, sampleYAML, "-vv", "render")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Document loaded")
	assert.Contains(t, stderr, "component=input")
}

func TestLevelForVerbosity(t *testing.T) {
	tests := []struct {
		verbosity int
		expected  zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{7, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, LevelForVerbosity(tt.verbosity))
	}
}
