package simulator

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the full simulation configuration, loadable from HCL.
type Config struct {
	Table TableSettings `hcl:"table,block"`
	Seats []SeatConfig  `hcl:"seat,block"`
}

// TableSettings controls the game parameters shared by every hand.
type TableSettings struct {
	Hands         int    `hcl:"hands,optional"`
	SmallBlind    int    `hcl:"small_blind,optional"`
	BigBlind      int    `hcl:"big_blind,optional"`
	StartingChips int    `hcl:"starting_chips,optional"`
	Seed          int64  `hcl:"seed,optional"`
	ActionTimeout string `hcl:"action_timeout,optional"`
}

// SeatConfig assigns a decision policy to one seat.
type SeatConfig struct {
	Name   string `hcl:"name,label"`
	Policy string `hcl:"policy"`
	Chips  int    `hcl:"chips,optional"`
}

// DefaultConfig returns a six-seat table of mixed policies.
func DefaultConfig() *Config {
	return &Config{
		Table: TableSettings{
			Hands:         1000,
			SmallBlind:    1,
			BigBlind:      2,
			StartingChips: 200,
			Seed:          1,
			ActionTimeout: "5s",
		},
		Seats: []SeatConfig{
			{Name: "hero", Policy: "equity", Chips: 200},
			{Name: "caller", Policy: "call", Chips: 200},
			{Name: "rock", Policy: "fold", Chips: 200},
			{Name: "gambler", Policy: "rand", Chips: 200},
			{Name: "caller2", Policy: "call", Chips: 200},
			{Name: "gambler2", Policy: "rand", Chips: 200},
		},
	}
}

// LoadConfig loads simulation configuration from an HCL file, falling
// back to defaults when the file does not exist.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if config.Table.Hands == 0 {
		config.Table.Hands = 1000
	}
	if config.Table.SmallBlind == 0 {
		config.Table.SmallBlind = 1
	}
	if config.Table.BigBlind == 0 {
		config.Table.BigBlind = config.Table.SmallBlind * 2
	}
	if config.Table.StartingChips == 0 {
		config.Table.StartingChips = config.Table.BigBlind * 100
	}
	if config.Table.Seed == 0 {
		config.Table.Seed = 1
	}
	if config.Table.ActionTimeout == "" {
		config.Table.ActionTimeout = "5s"
	}
	for i := range config.Seats {
		if config.Seats[i].Chips == 0 {
			config.Seats[i].Chips = config.Table.StartingChips
		}
	}

	return &config, nil
}

// Validate checks the configuration for playability.
func (c *Config) Validate() error {
	if c.Table.Hands <= 0 {
		return fmt.Errorf("hands must be positive, got %d", c.Table.Hands)
	}
	if c.Table.SmallBlind <= 0 {
		return fmt.Errorf("small blind must be positive, got %d", c.Table.SmallBlind)
	}
	if c.Table.BigBlind < c.Table.SmallBlind {
		return fmt.Errorf("big blind %d below small blind %d", c.Table.BigBlind, c.Table.SmallBlind)
	}
	if len(c.Seats) < 2 || len(c.Seats) > 10 {
		return fmt.Errorf("need 2-10 seats, got %d", len(c.Seats))
	}
	if _, err := c.Timeout(); err != nil {
		return err
	}

	seen := make(map[string]bool, len(c.Seats))
	for _, seat := range c.Seats {
		if seat.Name == "" {
			return fmt.Errorf("seat names must not be empty")
		}
		if seen[seat.Name] {
			return fmt.Errorf("duplicate seat name %q", seat.Name)
		}
		seen[seat.Name] = true
		if _, ok := NewPolicy(seat.Policy, nil); !ok {
			return fmt.Errorf("seat %s: unknown policy %q", seat.Name, seat.Policy)
		}
		if seat.Chips < 0 {
			return fmt.Errorf("seat %s: negative chips", seat.Name)
		}
	}
	return nil
}

// Timeout parses the per-decision deadline.
func (c *Config) Timeout() (time.Duration, error) {
	d, err := time.ParseDuration(c.Table.ActionTimeout)
	if err != nil {
		return 0, fmt.Errorf("invalid action_timeout: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("action_timeout must be positive, got %s", d)
	}
	return d, nil
}
