package simulator

import (
	rand "math/rand/v2"

	"github.com/lox/holdem-engine/internal/engine"
	"github.com/lox/holdem-engine/internal/equity"
)

// Policy decides one action for the seat currently due to act.
type Policy interface {
	Act(ctx *engine.GameContext, legal []engine.ActionType) engine.Action
}

// NewPolicy builds a policy by name. Unknown names return false.
func NewPolicy(name string, rng *rand.Rand) (Policy, bool) {
	switch name {
	case "fold":
		return foldPolicy{}, true
	case "call":
		return callPolicy{}, true
	case "rand":
		return &randomPolicy{rng: rng}, true
	case "equity":
		return &equityPolicy{}, true
	default:
		return nil, false
	}
}

// foldPolicy checks when free and folds otherwise.
type foldPolicy struct{}

func (foldPolicy) Act(ctx *engine.GameContext, legal []engine.ActionType) engine.Action {
	if has(legal, engine.ActionCheck) {
		return engine.Action{Seat: ctx.Actor, Type: engine.ActionCheck}
	}
	return engine.Action{Seat: ctx.Actor, Type: engine.ActionFold}
}

// callPolicy always continues at the cheapest price.
type callPolicy struct{}

func (callPolicy) Act(ctx *engine.GameContext, legal []engine.ActionType) engine.Action {
	switch {
	case has(legal, engine.ActionCheck):
		return engine.Action{Seat: ctx.Actor, Type: engine.ActionCheck}
	case has(legal, engine.ActionCall):
		return engine.Action{Seat: ctx.Actor, Type: engine.ActionCall}
	default:
		return engine.Action{Seat: ctx.Actor, Type: engine.ActionAllIn}
	}
}

// randomPolicy picks uniformly among the legal actions, sizing bets at
// the minimum.
type randomPolicy struct {
	rng *rand.Rand
}

func (p *randomPolicy) Act(ctx *engine.GameContext, legal []engine.ActionType) engine.Action {
	t := legal[p.rng.IntN(len(legal))]
	a := engine.Action{Seat: ctx.Actor, Type: t}
	if t == engine.ActionBet || t == engine.ActionRaise {
		a.Amount = ctx.CurrentBet + ctx.MinRaise
	}
	return a
}

// equityPolicy plays preflop from the 169-class table and keeps later
// streets passive: strong holdings raise, playable ones call, the rest
// check or fold.
type equityPolicy struct{}

func (equityPolicy) Act(ctx *engine.GameContext, legal []engine.ActionType) engine.Action {
	seat := ctx.Actor
	hole := ctx.Players[seat].HoleCards

	strength := 0.5
	if ctx.Phase == engine.PhasePreflop && len(hole) == 2 {
		strength = equity.LookupCards(hole[0], hole[1])
	}

	switch {
	case strength >= 0.62 && has(legal, engine.ActionRaise):
		return engine.Action{Seat: seat, Type: engine.ActionRaise, Amount: ctx.CurrentBet + ctx.MinRaise}
	case strength >= 0.62 && has(legal, engine.ActionBet):
		return engine.Action{Seat: seat, Type: engine.ActionBet, Amount: ctx.CurrentBet + ctx.MinRaise}
	case strength >= 0.45 && has(legal, engine.ActionCall):
		return engine.Action{Seat: seat, Type: engine.ActionCall}
	case has(legal, engine.ActionCheck):
		return engine.Action{Seat: seat, Type: engine.ActionCheck}
	case strength >= 0.70:
		// Priced out of a call but far too strong to fold.
		return engine.Action{Seat: seat, Type: engine.ActionAllIn}
	default:
		return engine.Action{Seat: seat, Type: engine.ActionFold}
	}
}

func has(actions []engine.ActionType, want engine.ActionType) bool {
	for _, a := range actions {
		if a == want {
			return true
		}
	}
	return false
}
