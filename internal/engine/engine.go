package engine

import (
	"fmt"

	"github.com/lox/holdem-engine/poker"
)

// ProcessAction applies one player action to the hand and returns the
// resulting context. The input context is never modified; on error it
// is returned unchanged so the caller can retry with a legal action.
//
// After the action is applied, any transitions it unlocked run to
// completion: closed betting rounds settle into pots, the next street
// is dealt, all-in run-outs advance without player input, and the hand
// resolves at showdown or when a single contender remains.
func ProcessAction(ctx *GameContext, action Action) (*GameContext, error) {
	if err := validateAction(ctx, action); err != nil {
		return ctx, err
	}

	next := ctx.clone()

	if action.Type == ActionReveal {
		if err := next.applyReveal(action.Seat); err != nil {
			return ctx, err
		}
		next.assertChipInvariants()
		return next, nil
	}

	if action.Seat != next.Actor {
		return ctx, fmt.Errorf("%w: seat %d acted, seat %d to act",
			ErrNotPlayersTurn, action.Seat, next.Actor)
	}
	if err := next.applyAction(action); err != nil {
		return ctx, err
	}

	next.advance()
	next.assertChipInvariants()
	return next, nil
}

// validateAction rejects structurally invalid input before any state is
// touched.
func validateAction(ctx *GameContext, a Action) error {
	if ctx.Phase == PhaseComplete {
		return ErrGameComplete
	}
	if a.Seat < 0 || a.Seat >= len(ctx.Players) {
		return fmt.Errorf("%w: seat %d out of range", ErrMalformedAction, a.Seat)
	}
	if a.Type > ActionReveal {
		return fmt.Errorf("%w: unknown action type %d", ErrMalformedAction, a.Type)
	}
	switch a.Type {
	case ActionBet, ActionRaise:
		if a.Amount <= 0 {
			return fmt.Errorf("%w: %s requires a positive amount", ErrMalformedAction, a.Type)
		}
	default:
		// Amounts on non-sizing actions are discarded, not rejected.
		if a.Amount < 0 {
			return fmt.Errorf("%w: negative amount on %s", ErrMalformedAction, a.Type)
		}
	}
	return nil
}

// applyReveal flips the seat's reveal flag. Revealing is not a turn:
// any unfolded seat may do it at any point during the hand and the
// betting state is untouched.
func (ctx *GameContext) applyReveal(seat int) error {
	p := &ctx.Players[seat]
	if !p.InHand() {
		return fmt.Errorf("%w: seat %d has no live hand to reveal", ErrIllegalAction, seat)
	}
	p.Revealed = true
	ctx.History = append(ctx.History, ActionRecord{
		Phase: ctx.Phase,
		Seat:  seat,
		Type:  ActionReveal,
	})
	return nil
}

// advance drives phase transitions until a betting decision is pending
// or the hand is complete.
func (ctx *GameContext) advance() {
	for ctx.Phase != PhaseComplete {
		if contenders := ctx.Contenders(); len(contenders) == 1 {
			ctx.settleRound()
			ctx.awardUncontested(contenders[0])
			return
		}

		if ctx.Phase == PhaseShowdown {
			ctx.resolveShowdown()
			return
		}

		if !ctx.roundComplete() {
			return
		}
		ctx.settleRound()

		switch ctx.Phase {
		case PhasePreflop:
			ctx.dealBoard(3)
			ctx.Phase = PhaseFlop
		case PhaseFlop:
			ctx.dealBoard(1)
			ctx.Phase = PhaseTurn
		case PhaseTurn:
			ctx.dealBoard(1)
			ctx.Phase = PhaseRiver
		case PhaseRiver:
			ctx.Phase = PhaseShowdown
			continue
		}

		ctx.resetStreet()
		// Postflop entry: first seat able to act clockwise from the
		// button. If everyone left is all-in this yields NoSeat and the
		// vacuous round completion runs the board out.
		ctx.Actor = ctx.nextToAct(ctx.seatAfter(ctx.Button))
	}
}

// dealBoard moves cards from the deck remainder onto the board.
func (ctx *GameContext) dealBoard(n int) {
	if len(ctx.Deck) < n {
		panic("engine: deck exhausted dealing board")
	}
	ctx.Board = append(ctx.Board, ctx.Deck[:n]...)
	ctx.Deck = ctx.Deck[n:]
}

// assertChipInvariants panics if chips were created or destroyed, or if
// any card appears twice across stacks of hole cards, board and deck.
// These can only arise from engine bugs, never from player input.
func (ctx *GameContext) assertChipInvariants() {
	total := ctx.PotTotal()
	for i := range ctx.Players {
		total += ctx.Players[i].Chips
	}
	if total != ctx.chipTotal {
		panic(fmt.Sprintf("engine: chip conservation violated: have %d, want %d", total, ctx.chipTotal))
	}

	var seen poker.Hand
	count := 0
	add := func(cards []poker.Card) {
		for _, c := range cards {
			seen = seen.Add(c)
			count++
		}
	}
	add(ctx.Board)
	add(ctx.Deck)
	for i := range ctx.Players {
		add(ctx.Players[i].HoleCards)
	}
	if seen.CountCards() != count {
		panic("engine: duplicate card in play")
	}
}
