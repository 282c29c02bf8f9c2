package engine

import (
	"errors"

	"github.com/lox/holdem-engine/poker"
)

// Rejection errors are local and recoverable: the input context is
// returned unchanged alongside them and the caller may retry with a
// different action. Internal invariant violations (chip conservation,
// duplicate cards) are programming errors and panic instead.
var (
	// ErrIllegalAction rejects an action outside the legal set for the
	// current state, e.g. checking while facing a bet.
	ErrIllegalAction = errors.New("illegal action")

	// ErrNotPlayersTurn rejects an action from a seat other than the
	// current actor.
	ErrNotPlayersTurn = errors.New("not player's turn")

	// ErrGameComplete rejects any action once the hand is complete.
	ErrGameComplete = errors.New("game already complete")

	// ErrMalformedAction rejects structurally invalid actions: missing
	// or negative amounts on bet/raise, unknown types, bad seats.
	ErrMalformedAction = errors.New("malformed action")

	// ErrDeckExhausted is surfaced when a deal would overrun the deck.
	// It cannot occur with a standard deck and legal table sizes.
	ErrDeckExhausted = poker.ErrDeckExhausted
)
