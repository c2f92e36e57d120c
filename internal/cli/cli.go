// Package cli implements the textstyle command line.
package cli

import (
	"io"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
)

const configPath = "~/.config/textstyle/config.json"

// Context is bound to every command's Run method.
type Context struct {
	Stdin  io.Reader
	Stdout io.Writer
	Logger zerolog.Logger
}

type CLI struct {
	Verbose int             `short:"v" type:"counter" env:"TEXTSTYLE_VERBOSE" help:"Increase log verbosity (-v info, -vv debug, -vvv trace)."`
	Config  kong.ConfigFlag `env:"TEXTSTYLE_CONFIG" help:"Load flag defaults from a JSON file."`

	Render    RenderCmd    `cmd:"" default:"withargs" help:"Render a span document with termion escape sequences."`
	Cells     CellsCmd     `cmd:"" help:"Paint a span document on a tcell screen and list the cells."`
	Sequences SequencesCmd `cmd:"" help:"List the termion sequence of every color and effect."`
}

// NewParser builds the kong parser for cli.
func NewParser(cli *CLI, stdout, stderr io.Writer, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("textstyle"),
		kong.Description("Render styled text documents as termion terminal sequences."),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
		kong.Configuration(kong.JSON, configPath),
	}, options...)

	return kong.New(cli, options...)
}

// Run parses args and executes the selected command.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer, options ...kong.Option) error {
	var cli CLI

	parser, err := NewParser(&cli, stdout, stderr, options...)
	if err != nil {
		return err
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := NewLogger(stderr, cli.Verbose)
	logger.Debug().Str("command", kctx.Command()).Msg("Running command")

	return kctx.Run(&Context{
		Stdin:  stdin,
		Stdout: stdout,
		Logger: logger,
	})
}
