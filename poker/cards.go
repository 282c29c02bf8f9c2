// Package poker provides the canonical card model and hand evaluation
// primitives shared by the betting engine and the analysis tooling.
package poker

import (
	"fmt"
	"math/bits"
	"strings"
)

// Suit constants (0-3).
const (
	Clubs uint8 = iota
	Diamonds
	Hearts
	Spades
)

// Rank constants (0-12, deuce through ace).
const (
	Two uint8 = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const (
	rankChars = "23456789TJQKA"
	suitChars = "cdhs"
)

// Card is a single playing card encoded as a one-bit uint64.
// The bit position is suit*13 + rank, which lets a set of cards be
// combined into a Hand with a single OR.
type Card uint64

// NewCard creates a card from rank (0-12) and suit (0-3).
func NewCard(rank, suit uint8) Card {
	return Card(1) << (uint64(suit)*13 + uint64(rank))
}

// Rank returns the card's rank (0 = deuce, 12 = ace).
func (c Card) Rank() uint8 {
	return uint8(bits.TrailingZeros64(uint64(c)) % 13)
}

// Suit returns the card's suit (0-3).
func (c Card) Suit() uint8 {
	return uint8(bits.TrailingZeros64(uint64(c)) / 13)
}

// String returns the two-character notation, e.g. "As" or "7d".
func (c Card) String() string {
	if bits.OnesCount64(uint64(c)) != 1 {
		return "??"
	}
	return string(rankChars[c.Rank()]) + string(suitChars[c.Suit()])
}

// Hand is a bitset of up to seven cards.
type Hand uint64

// NewHand combines cards into a hand bitset.
func NewHand(cards ...Card) Hand {
	var h Hand
	for _, c := range cards {
		h |= Hand(c)
	}
	return h
}

// Add returns the hand with the card included.
func (h Hand) Add(c Card) Hand {
	return h | Hand(c)
}

// Contains reports whether the card is present.
func (h Hand) Contains(c Card) bool {
	return h&Hand(c) != 0
}

// CountCards returns the number of cards in the hand.
func (h Hand) CountCards() int {
	return bits.OnesCount64(uint64(h))
}

// SuitMask returns the 13-bit rank mask for a single suit.
func (h Hand) SuitMask(suit uint8) uint16 {
	return uint16((uint64(h) >> (uint64(suit) * 13)) & 0x1FFF)
}

// Cards unpacks the bitset into individual cards, lowest bit first.
func (h Hand) Cards() []Card {
	cards := make([]Card, 0, h.CountCards())
	v := uint64(h)
	for v != 0 {
		bit := v & -v
		cards = append(cards, Card(bit))
		v &^= bit
	}
	return cards
}

// String returns the concatenated card notation, e.g. "2cAs".
func (h Hand) String() string {
	var sb strings.Builder
	for _, c := range h.Cards() {
		sb.WriteString(c.String())
	}
	return sb.String()
}

// ParseCard parses a single two-character card like "As" or "td".
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("invalid card %q: must be two characters", s)
	}
	rank, err := parseRankChar(s[0])
	if err != nil {
		return 0, fmt.Errorf("invalid card %q: %w", s, err)
	}
	suit, err := parseSuitChar(s[1])
	if err != nil {
		return 0, fmt.Errorf("invalid card %q: %w", s, err)
	}
	return NewCard(rank, suit), nil
}

// ParseCards parses concatenated card notation such as "AsKsQsJsTs".
// Spaces are ignored. Duplicate cards are rejected.
func ParseCards(s string) ([]Card, error) {
	s = strings.ReplaceAll(s, " ", "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("invalid card string %q: odd length", s)
	}

	var seen Hand
	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		card, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, err
		}
		if seen.Contains(card) {
			return nil, fmt.Errorf("duplicate card %s in %q", card, s)
		}
		seen = seen.Add(card)
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error. Intended for tests
// and static tables.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

func parseRankChar(c byte) (uint8, error) {
	switch c {
	case 'a', 'A':
		return Ace, nil
	case 'k', 'K':
		return King, nil
	case 'q', 'Q':
		return Queen, nil
	case 'j', 'J':
		return Jack, nil
	case 't', 'T':
		return Ten, nil
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return c - '2', nil
	default:
		return 0, fmt.Errorf("unknown rank %q", c)
	}
}

func parseSuitChar(c byte) (uint8, error) {
	switch c {
	case 'c', 'C':
		return Clubs, nil
	case 'd', 'D':
		return Diamonds, nil
	case 'h', 'H':
		return Hearts, nil
	case 's', 'S':
		return Spades, nil
	default:
		return 0, fmt.Errorf("unknown suit %q", c)
	}
}
