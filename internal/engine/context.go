// Package engine implements the No-Limit Hold'em betting state machine.
//
// All state for a hand lives in a GameContext. Operations never mutate
// a context in place: ProcessAction clones the input, applies the
// action and any cascading phase transitions to the clone, and returns
// it. Callers therefore only ever hold immutable snapshots, and two
// calls with the same input context produce identical outputs.
package engine

import (
	"github.com/lox/holdem-engine/poker"
)

// Phase is the stage a hand is in. Phases are strictly ordered and
// never revisited within a hand.
type Phase uint8

const (
	PhasePreflop Phase = iota
	PhaseFlop
	PhaseTurn
	PhaseRiver
	PhaseShowdown
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhasePreflop:
		return "preflop"
	case PhaseFlop:
		return "flop"
	case PhaseTurn:
		return "turn"
	case PhaseRiver:
		return "river"
	case PhaseShowdown:
		return "showdown"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// ActionType enumerates the player actions the engine accepts.
type ActionType uint8

const (
	ActionFold ActionType = iota
	ActionCheck
	ActionCall
	ActionBet
	ActionRaise
	ActionAllIn
	ActionReveal
)

func (a ActionType) String() string {
	switch a {
	case ActionFold:
		return "fold"
	case ActionCheck:
		return "check"
	case ActionCall:
		return "call"
	case ActionBet:
		return "bet"
	case ActionRaise:
		return "raise"
	case ActionAllIn:
		return "allin"
	case ActionReveal:
		return "reveal"
	default:
		return "unknown"
	}
}

// Action is a single player decision. Amount is the total to-level for
// the betting round on bet/raise and is ignored otherwise.
type Action struct {
	Seat   int
	Type   ActionType
	Amount int
}

// PlayerStatus tracks seat occupancy independent of in-hand state.
type PlayerStatus uint8

const (
	StatusActive PlayerStatus = iota
	// StatusDisconnected seats keep their live hand; the external
	// scheduler synthesizes folds for them.
	StatusDisconnected
	StatusLeft
	StatusRemoved
	StatusSittingOut
)

func (s PlayerStatus) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusDisconnected:
		return "disconnected"
	case StatusLeft:
		return "left"
	case StatusRemoved:
		return "removed"
	case StatusSittingOut:
		return "sitting-out"
	default:
		return "unknown"
	}
}

// Player is one seat's state within a hand.
type Player struct {
	Seat      int
	Name      string
	Status    PlayerStatus
	Chips     int
	HoleCards []poker.Card
	Bet       int // committed this betting round
	TotalBet  int // committed this hand
	Folded    bool
	AllIn     bool
	Acted     bool // acted since the last bet or raise this round
	Revealed  bool
}

// InHand reports whether the seat still contends for the pot. Seats
// that left or were removed mid-hand are dead the same way a fold is.
func (p *Player) InHand() bool {
	if p.Folded || len(p.HoleCards) == 0 {
		return false
	}
	return p.Status != StatusLeft && p.Status != StatusRemoved
}

// CanAct reports whether the seat can still make betting decisions.
func (p *Player) CanAct() bool {
	return p.InHand() && !p.AllIn && p.Chips > 0
}

// Pot is a main or side pot with the seats eligible to win it.
type Pot struct {
	Amount   int
	Eligible []int
}

// ActionRecord is one entry in the ordered hand history.
type ActionRecord struct {
	Phase  Phase
	Seat   int
	Type   ActionType
	Amount int
}

// GameContext is the root aggregate for a single hand. The engine owns
// the authoritative context for the hand's duration; callers hold
// snapshots only.
type GameContext struct {
	HandNum    uint64
	Phase      Phase
	SmallBlind int
	BigBlind   int
	Button     int
	SBSeat     int
	BBSeat     int

	Board   []poker.Card
	Players []Player

	// Actor is the seat due to act, or NoSeat when no decision is
	// pending (deal states, showdown, complete).
	Actor int
	// CurrentBet is the highest per-round commitment any seat has made.
	CurrentBet int
	// MinRaise is the smallest legal raise increment, reset to the big
	// blind at the start of each street.
	MinRaise int
	// LastAggressor is the seat that last bet or raised this round, or
	// NoSeat if the round has seen no aggression.
	LastAggressor int

	Pots    []Pot
	History []ActionRecord

	// Payouts is populated when the hand completes, one entry per pot
	// share paid out.
	Payouts []Payout

	// Deck holds the undealt remainder of the shuffled deck, consumed
	// front-first by street deals. Callers must treat it as opaque.
	Deck []poker.Card

	// chipTotal is the sum of all stacks at hand start, checked after
	// every state change.
	chipTotal int
}

// NoSeat marks the absence of a seat reference.
const NoSeat = -1

// clone returns a deep copy. Every mutation path in the engine operates
// on a clone so the caller's snapshot is never aliased.
func (ctx *GameContext) clone() *GameContext {
	out := *ctx

	out.Board = append([]poker.Card(nil), ctx.Board...)
	out.Deck = append([]poker.Card(nil), ctx.Deck...)
	out.History = append([]ActionRecord(nil), ctx.History...)
	out.Payouts = append([]Payout(nil), ctx.Payouts...)

	out.Players = make([]Player, len(ctx.Players))
	for i := range ctx.Players {
		out.Players[i] = ctx.Players[i]
		out.Players[i].HoleCards = append([]poker.Card(nil), ctx.Players[i].HoleCards...)
	}

	if ctx.Pots != nil {
		out.Pots = make([]Pot, len(ctx.Pots))
		for i := range ctx.Pots {
			out.Pots[i] = ctx.Pots[i]
			out.Pots[i].Eligible = append([]int(nil), ctx.Pots[i].Eligible...)
		}
	}

	return &out
}

// NumSeats returns the fixed table size.
func (ctx *GameContext) NumSeats() int {
	return len(ctx.Players)
}

// Contenders returns the seats still contending for the pot, in seat
// order.
func (ctx *GameContext) Contenders() []int {
	var seats []int
	for i := range ctx.Players {
		if ctx.Players[i].InHand() {
			seats = append(seats, i)
		}
	}
	return seats
}

// PotTotal returns the chips settled into pots plus the current round's
// uncollected bets.
func (ctx *GameContext) PotTotal() int {
	total := 0
	for _, pot := range ctx.Pots {
		total += pot.Amount
	}
	for i := range ctx.Players {
		total += ctx.Players[i].Bet
	}
	return total
}

// seatAfter returns the next seat clockwise, wrapping at the table size.
func (ctx *GameContext) seatAfter(seat int) int {
	return (seat + 1) % len(ctx.Players)
}

// nextToAct returns the first seat able to act, scanning clockwise from
// the given seat inclusive, or NoSeat when nobody can.
func (ctx *GameContext) nextToAct(from int) int {
	n := len(ctx.Players)
	for i := 0; i < n; i++ {
		seat := (from + i + n) % n
		if ctx.Players[seat].CanAct() {
			return seat
		}
	}
	return NoSeat
}
