package main

import (
	"context"
	"fmt"
	"os/signal"
	"sort"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-engine/internal/simulator"
)

// SimulateCmd plays configured policies against each other.
type SimulateCmd struct {
	Config string `help:"HCL simulation config file" default:"simulate.hcl"`
	Hands  int    `help:"Override the number of hands to play"`
	Seed   int64  `help:"Override the simulation seed"`
}

func (c *SimulateCmd) Run(logger *log.Logger) error {
	cfg, err := simulator.LoadConfig(c.Config)
	if err != nil {
		return err
	}
	if c.Hands > 0 {
		cfg.Table.Hands = c.Hands
	}
	if c.Seed != 0 {
		cfg.Table.Seed = c.Seed
	}

	sim, err := simulator.New(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stats, err := sim.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("hands: %d  showdowns: %d  rebuys: %d  max pot: %d  (%.0f hands/s)\n",
		stats.Hands, stats.Showdowns, stats.Rebuys, stats.MaxPot, stats.HandsPerSecond)

	names := make([]string, 0, len(stats.NetChips))
	for name := range stats.NetChips {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		net := stats.NetChips[name]
		bb := float64(net) / float64(cfg.Table.BigBlind) / float64(stats.Hands)
		fmt.Printf("  %-12s %+d chips (%+.3f bb/hand)\n", name, net, bb)
	}
	return nil
}
