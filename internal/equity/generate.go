package equity

import (
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-engine/internal/randutil"
	"github.com/lox/holdem-engine/poker"
)

// Generate estimates the preflop equity of every class by Monte Carlo:
// each class plays the given number of full-board runouts heads-up
// against a random hand. Classes run in parallel with per-class derived
// seeds, so the result depends only on iterations and seed.
func Generate(iterations int, seed int64, workers int) ([NumClasses]uint16, error) {
	var table [NumClasses]uint16
	if iterations <= 0 {
		return table, fmt.Errorf("equity: iterations must be positive, got %d", iterations)
	}

	if workers <= 0 {
		workers = -1 // no limit
	}
	var g errgroup.Group
	g.SetLimit(workers)
	for idx := range NumClasses {
		g.Go(func() error {
			table[idx] = simulateClass(idx, iterations, seed+int64(idx))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return table, err
	}
	return table, nil
}

// simulateClass plays one class against a random hand and board. Wins
// count double and ties once, keeping the tally integral.
func simulateClass(idx, iterations int, seed int64) uint16 {
	hero := representative(idx)
	heroHand := poker.NewHand(hero[0], hero[1])

	// The 50 cards the hero does not hold.
	pool := make([]poker.Card, 0, 50)
	for suit := range uint8(4) {
		for rank := range uint8(13) {
			if c := poker.NewCard(rank, suit); !heroHand.Contains(c) {
				pool = append(pool, c)
			}
		}
	}

	rng := randutil.New(seed)
	score := 0
	for range iterations {
		// Partial Fisher-Yates: the first 7 cards become the opponent
		// hand and the board.
		for i := 0; i < 7; i++ {
			j := i + rng.IntN(len(pool)-i)
			pool[i], pool[j] = pool[j], pool[i]
		}
		board := poker.NewHand(pool[2:7]...)
		heroRank := poker.EvaluateHand(heroHand | board)
		oppRank := poker.EvaluateHand(poker.NewHand(pool[0], pool[1]) | board)

		switch poker.Compare(heroRank, oppRank) {
		case 1:
			score += 2
		case 0:
			score++
		}
	}

	return uint16((uint64(score)*65535 + uint64(iterations)) / (2 * uint64(iterations)))
}

// representative picks concrete cards for a class. Equity against a
// random hand depends only on ranks and suitedness, so any choice of
// suits works.
func representative(idx int) [2]poker.Card {
	row, col := idx/13, idx%13
	switch {
	case row == col: // pair
		return [2]poker.Card{
			poker.NewCard(gridRank(row), poker.Spades),
			poker.NewCard(gridRank(row), poker.Hearts),
		}
	case row < col: // suited
		return [2]poker.Card{
			poker.NewCard(gridRank(row), poker.Spades),
			poker.NewCard(gridRank(col), poker.Spades),
		}
	default: // offsuit
		return [2]poker.Card{
			poker.NewCard(gridRank(col), poker.Spades),
			poker.NewCard(gridRank(row), poker.Hearts),
		}
	}
}

// GoSource renders a table as a generated Go source file.
func GoSource(table [NumClasses]uint16, iterations int, seed int64) string {
	var sb strings.Builder
	sb.WriteString("// Code generated by gen-equity; DO NOT EDIT.\n")
	fmt.Fprintf(&sb, "// Monte Carlo heads-up equity vs a random hand, %d iterations per class, seed %d.\n\n", iterations, seed)
	sb.WriteString("package equity\n\n")
	sb.WriteString("// preflopEquity holds win probability in 1/65535 units, indexed by\n")
	sb.WriteString("// classIndex.\n")
	sb.WriteString("var preflopEquity = [NumClasses]uint16{\n")
	for row := 0; row < 13; row++ {
		sb.WriteString("\t")
		for col := 0; col < 13; col++ {
			fmt.Fprintf(&sb, "%d, ", table[row*13+col])
		}
		fmt.Fprintf(&sb, "// %s..%s\n", classLabel(row*13), classLabel(row*13+12))
	}
	sb.WriteString("}\n")
	return sb.String()
}
