package engine

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/holdem-engine/poker"
)

// HandOption configures hand creation.
type HandOption func(*handConfig)

type handConfig struct {
	chipCounts []int
	startChips int
	deck       *poker.Deck
	handNum    uint64
	sittingOut map[int]bool
}

// WithUniformChips sets the same starting stack for every seat.
// Default is 1000.
func WithUniformChips(chips int) HandOption {
	return func(c *handConfig) {
		c.startChips = chips
		c.chipCounts = nil
	}
}

// WithChips sets individual stacks per seat. The length must match the
// number of seats.
func WithChips(chips []int) HandOption {
	return func(c *handConfig) {
		c.chipCounts = chips
	}
}

// WithDeck supplies a pre-built deck, overriding the RNG shuffle.
// Intended for deterministic tests.
func WithDeck(deck *poker.Deck) HandOption {
	return func(c *handConfig) {
		c.deck = deck
	}
}

// WithHandNum tags the context with a table-level hand counter.
func WithHandNum(n uint64) HandOption {
	return func(c *handConfig) {
		c.handNum = n
	}
}

// WithSittingOut marks seats that are waiting for the next hand; they
// are dealt no cards and post no blinds.
func WithSittingOut(seats ...int) HandOption {
	return func(c *handConfig) {
		for _, s := range seats {
			c.sittingOut[s] = true
		}
	}
}

// NewHand creates the context for a fresh hand: blinds posted, deck
// shuffled, hole cards dealt, preflop actor set. The RNG is required so
// randomness stays explicit; tests pass a seeded one.
//
// Seat and button validation failures panic: hand setup inputs come
// from the hosting layer, not players, so a bad value is a programming
// error.
func NewHand(rng *rand.Rand, names []string, button, smallBlind, bigBlind int, opts ...HandOption) *GameContext {
	if len(names) < 2 {
		panic("engine: at least 2 seats required")
	}
	if button < 0 || button >= len(names) {
		panic("engine: button out of range")
	}
	if smallBlind <= 0 || bigBlind < smallBlind {
		panic(fmt.Sprintf("engine: invalid blinds %d/%d", smallBlind, bigBlind))
	}

	cfg := &handConfig{
		startChips: 1000,
		sittingOut: make(map[int]bool),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.chipCounts != nil && len(cfg.chipCounts) != len(names) {
		panic("engine: chip counts must match seat count")
	}

	players := make([]Player, len(names))
	for i, name := range names {
		chips := cfg.startChips
		if cfg.chipCounts != nil {
			chips = cfg.chipCounts[i]
		}
		status := StatusActive
		if cfg.sittingOut[i] || chips <= 0 {
			status = StatusSittingOut
		}
		players[i] = Player{Seat: i, Name: name, Chips: chips, Status: status}
	}

	ctx := &GameContext{
		HandNum:       cfg.handNum,
		Phase:         PhasePreflop,
		SmallBlind:    smallBlind,
		BigBlind:      bigBlind,
		Button:        button,
		Players:       players,
		Actor:         NoSeat,
		CurrentBet:    bigBlind,
		MinRaise:      bigBlind,
		LastAggressor: NoSeat,
	}

	if len(ctx.dealtInSeats()) < 2 {
		panic("engine: at least 2 seats with chips required")
	}
	for i := range players {
		ctx.chipTotal += players[i].Chips
	}

	deck := cfg.deck
	if deck == nil {
		if rng == nil {
			panic("engine: rng is required when no deck is supplied")
		}
		deck = poker.NewDeck(rng)
	}

	ctx.assignBlindSeats()
	ctx.postBlind(ctx.SBSeat, smallBlind)
	ctx.postBlind(ctx.BBSeat, bigBlind)
	ctx.dealHoleCards(deck)
	ctx.Deck = deck.Remaining()

	// Preflop entry: heads-up the button acts first; otherwise the seat
	// left of the big blind.
	if ctx.headsUp() {
		ctx.Actor = ctx.nextToAct(ctx.Button)
	} else {
		ctx.Actor = ctx.nextToAct(ctx.seatAfter(ctx.BBSeat))
	}

	// Blinds can put every stack all-in; run the board out immediately
	// rather than waiting for an action that can never come.
	ctx.advance()
	ctx.assertChipInvariants()
	return ctx
}

// headsUp reports whether exactly two seats were dealt in.
func (ctx *GameContext) headsUp() bool {
	return len(ctx.dealtInSeats()) == 2
}

func (ctx *GameContext) dealtInSeats() []int {
	var seats []int
	for i := range ctx.Players {
		if ctx.Players[i].Status != StatusSittingOut && ctx.Players[i].Chips+ctx.Players[i].TotalBet > 0 {
			seats = append(seats, i)
		}
	}
	return seats
}

// nextDealtIn returns the first dealt-in seat clockwise from the given
// seat inclusive.
func (ctx *GameContext) nextDealtIn(from int) int {
	n := len(ctx.Players)
	for i := 0; i < n; i++ {
		seat := (from + i + n) % n
		p := &ctx.Players[seat]
		if p.Status != StatusSittingOut && p.Chips+p.TotalBet > 0 {
			return seat
		}
	}
	return NoSeat
}

// assignBlindSeats places the blinds clockwise from the button,
// skipping sitting-out seats. Heads-up the button posts the small
// blind.
func (ctx *GameContext) assignBlindSeats() {
	if ctx.headsUp() {
		ctx.SBSeat = ctx.nextDealtIn(ctx.Button)
		ctx.BBSeat = ctx.nextDealtIn(ctx.seatAfter(ctx.SBSeat))
	} else {
		ctx.SBSeat = ctx.nextDealtIn(ctx.seatAfter(ctx.Button))
		ctx.BBSeat = ctx.nextDealtIn(ctx.seatAfter(ctx.SBSeat))
	}
}

// postBlind commits a forced bet, capped by the stack. Posting a blind
// does not count as acting: the poster retains their option.
func (ctx *GameContext) postBlind(seat, amount int) {
	p := &ctx.Players[seat]
	posted := min(amount, p.Chips)
	p.Bet = posted
	p.TotalBet = posted
	p.Chips -= posted
	if p.Chips == 0 {
		p.AllIn = true
	}
}

func (ctx *GameContext) dealHoleCards(deck *poker.Deck) {
	for _, seat := range ctx.dealtInSeats() {
		cards, err := deck.Deal(2)
		if err != nil {
			panic("engine: deck exhausted dealing hole cards")
		}
		ctx.Players[seat].HoleCards = cards
	}
}
