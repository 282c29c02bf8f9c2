package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Debug   bool             `help:"Enable debug logging"`

	Eval      EvalCmd      `cmd:"" help:"Evaluate the best five-card hand"`
	Equity    EquityCmd    `cmd:"" help:"Look up preflop equity for hole cards"`
	Simulate  SimulateCmd  `cmd:"" help:"Play policy-vs-policy hands through the engine"`
	GenEquity GenEquityCmd `cmd:"gen-equity" help:"Regenerate the preflop equity table"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem"),
		kong.Description("No-limit hold'em rules engine and analysis tooling"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(setupLogger(cli.Debug))
	ctx.FatalIfErrorf(err)
}

func setupLogger(debug bool) *log.Logger {
	logger := log.New(os.Stderr)
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
