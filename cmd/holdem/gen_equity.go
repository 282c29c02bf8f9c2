package main

import (
	"runtime"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-engine/internal/equity"
	"github.com/lox/holdem-engine/internal/fileutil"
)

// GenEquityCmd regenerates the static preflop equity table.
type GenEquityCmd struct {
	Iterations int    `help:"Monte Carlo iterations per class" default:"20000"`
	Seed       int64  `help:"Base RNG seed" default:"20608"`
	Workers    int    `help:"Parallel workers (0 = all CPUs)"`
	Output     string `help:"Output file" default:"internal/equity/preflop_gen.go"`
}

func (c *GenEquityCmd) Run(logger *log.Logger) error {
	workers := c.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	logger.Info("generating preflop equity table",
		"iterations", c.Iterations, "seed", c.Seed, "workers", workers)

	table, err := equity.Generate(c.Iterations, c.Seed, workers)
	if err != nil {
		return err
	}

	source := equity.GoSource(table, c.Iterations, c.Seed)
	if err := fileutil.WriteFileAtomic(c.Output, []byte(source), 0o644); err != nil {
		return err
	}

	logger.Info("wrote equity table", "file", c.Output)
	return nil
}
