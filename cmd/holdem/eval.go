package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-engine/poker"
)

// EvalCmd evaluates 5-7 cards and reports the best hand.
type EvalCmd struct {
	Cards string `arg:"" help:"Cards in compact notation, e.g. AsKsQsJsTs or 'Ah Kh 7c 7d 2s'"`
}

func (c *EvalCmd) Run(logger *log.Logger) error {
	cards, err := poker.ParseCards(c.Cards)
	if err != nil {
		return err
	}
	if len(cards) < 5 || len(cards) > 7 {
		return fmt.Errorf("need 5-7 cards, got %d", len(cards))
	}

	rank := poker.Evaluate(cards)
	fmt.Printf("%s: %s (rank %d of %d)\n", poker.NewHand(cards...), rank, rank, poker.MaxHandRank)
	return nil
}
