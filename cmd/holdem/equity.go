package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-engine/internal/equity"
	"github.com/lox/holdem-engine/poker"
)

// EquityCmd prints heads-up equity vs a random hand for hole card
// classes or concrete hole cards.
type EquityCmd struct {
	Hands []string `arg:"" help:"Classes like AKs/72o or hole cards like AhKh"`
}

func (c *EquityCmd) Run(logger *log.Logger) error {
	for _, hand := range c.Hands {
		class := hand
		if cards, err := poker.ParseCards(hand); err == nil && len(cards) == 2 {
			class = equity.Classify(cards[0], cards[1])
		}

		value, err := equity.Lookup(class)
		if err != nil {
			return err
		}
		fmt.Printf("%-4s %.2f%%\n", class, value*100)
	}
	return nil
}
