// Package equity provides preflop hand strength lookups for the 169
// canonical hole card classes, expressed as heads-up win probability
// against a uniformly random hand.
package equity

import (
	"fmt"

	"github.com/lox/holdem-engine/poker"
)

// NumClasses is the number of canonical preflop classes: 13 pairs, 78
// suited and 78 offsuit combinations.
const NumClasses = 169

// tableScale converts the fixed-point table entries to probabilities.
const tableScale = 65535.0

// Classify returns the canonical class label for two hole cards, e.g.
// "AA", "AKs" or "T9o".
func Classify(a, b poker.Card) string {
	hi, lo := a.Rank(), b.Rank()
	if lo > hi {
		hi, lo = lo, hi
	}
	if hi == lo {
		return string(rankChar(hi)) + string(rankChar(lo))
	}
	suffix := "o"
	if a.Suit() == b.Suit() {
		suffix = "s"
	}
	return string(rankChar(hi)) + string(rankChar(lo)) + suffix
}

// Lookup returns the equity for a class label.
func Lookup(class string) (float64, error) {
	idx, err := parseClass(class)
	if err != nil {
		return 0, err
	}
	return float64(preflopEquity[idx]) / tableScale, nil
}

// LookupCards returns the equity for two hole cards. The cards must be
// distinct.
func LookupCards(a, b poker.Card) float64 {
	if a == b {
		panic("equity: identical hole cards")
	}
	return float64(preflopEquity[classIndex(a, b)]) / tableScale
}

// classIndex maps hole cards to the table index. Ranks are laid out on
// a 13x13 grid in descending order (ace first): pairs on the diagonal,
// suited combinations above it, offsuit below.
func classIndex(a, b poker.Card) int {
	hi, lo := descending(a.Rank()), descending(b.Rank())
	if hi > lo {
		hi, lo = lo, hi
	}
	if a.Suit() == b.Suit() {
		return hi*13 + lo
	}
	return lo*13 + hi
}

// descending converts a rank to its grid position (ace 0, deuce 12).
func descending(rank uint8) int {
	return int(poker.Ace - rank)
}

func gridRank(pos int) uint8 {
	return poker.Ace - uint8(pos)
}

func rankChar(rank uint8) byte {
	return "23456789TJQKA"[rank]
}

func parseClass(class string) (int, error) {
	if len(class) < 2 || len(class) > 3 {
		return 0, fmt.Errorf("invalid class %q", class)
	}
	hi, err := parseRank(class[0])
	if err != nil {
		return 0, fmt.Errorf("invalid class %q: %w", class, err)
	}
	lo, err := parseRank(class[1])
	if err != nil {
		return 0, fmt.Errorf("invalid class %q: %w", class, err)
	}
	if lo > hi {
		hi, lo = lo, hi
	}

	if hi == lo {
		if len(class) != 2 {
			return 0, fmt.Errorf("invalid class %q: pairs take no suffix", class)
		}
		return descending(hi)*13 + descending(lo), nil
	}

	if len(class) != 3 {
		return 0, fmt.Errorf("invalid class %q: missing s/o suffix", class)
	}
	switch class[2] {
	case 's', 'S':
		return descending(hi)*13 + descending(lo), nil
	case 'o', 'O':
		return descending(lo)*13 + descending(hi), nil
	default:
		return 0, fmt.Errorf("invalid class %q: suffix must be s or o", class)
	}
}

func parseRank(c byte) (uint8, error) {
	switch c {
	case 'a', 'A':
		return poker.Ace, nil
	case 'k', 'K':
		return poker.King, nil
	case 'q', 'Q':
		return poker.Queen, nil
	case 'j', 'J':
		return poker.Jack, nil
	case 't', 'T':
		return poker.Ten, nil
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return c - '2', nil
	default:
		return 0, fmt.Errorf("unknown rank %q", c)
	}
}

// classLabel is the inverse of parseClass, used by the generator.
func classLabel(idx int) string {
	row, col := idx/13, idx%13
	switch {
	case row == col:
		return string(rankChar(gridRank(row))) + string(rankChar(gridRank(col)))
	case row < col:
		return string(rankChar(gridRank(row))) + string(rankChar(gridRank(col))) + "s"
	default:
		return string(rankChar(gridRank(col))) + string(rankChar(gridRank(row))) + "o"
	}
}
