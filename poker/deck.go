package poker

import (
	"errors"
	rand "math/rand/v2"
)

// ErrDeckExhausted is returned when a deal requests more cards than remain.
var ErrDeckExhausted = errors.New("deck exhausted")

// Deck is a shuffled permutation of the 52 distinct cards. Cards are
// dealt from the front; dealt cards are never reinserted.
type Deck struct {
	cards [52]Card
	next  int
	rng   *rand.Rand
}

// NewDeck creates a shuffled deck using the provided RNG. The RNG is
// explicit so that production callers can seed from entropy and tests
// can replay exact permutations.
func NewDeck(rng *rand.Rand) *Deck {
	if rng == nil {
		panic("poker: NewDeck requires an RNG")
	}

	d := &Deck{rng: rng}
	i := 0
	for suit := range uint8(4) {
		for rank := range uint8(13) {
			d.cards[i] = NewCard(rank, suit)
			i++
		}
	}
	d.Shuffle()
	return d
}

// NewOrderedDeck creates a deck with the given card order and no
// shuffling, for deterministic tests. Panics on duplicates or a wrong
// card count; a rigged deck is a programming artifact, not user input.
func NewOrderedDeck(cards []Card) *Deck {
	if len(cards) != 52 {
		panic("poker: ordered deck must contain 52 cards")
	}
	var seen Hand
	d := &Deck{}
	for i, c := range cards {
		if seen.Contains(c) {
			panic("poker: duplicate card in ordered deck")
		}
		seen = seen.Add(c)
		d.cards[i] = c
	}
	return d
}

// Shuffle reshuffles the full deck in place using Fisher-Yates and
// rewinds the deal position.
func (d *Deck) Shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns the next n cards.
func (d *Deck) Deal(n int) ([]Card, error) {
	if d.next+n > len(d.cards) {
		return nil, ErrDeckExhausted
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards, nil
}

// Remaining returns the undealt cards in order without consuming them.
func (d *Deck) Remaining() []Card {
	out := make([]Card, len(d.cards)-d.next)
	copy(out, d.cards[d.next:])
	return out
}

// CardsRemaining returns how many cards are left to deal.
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}
