package engine

import "fmt"

// LegalActions returns the set of action types the current actor may
// take, or nil when no decision is pending. The contract is identical
// on every street; only the entry actor and blind posting differ at
// preflop, and those are handled at hand setup.
func LegalActions(ctx *GameContext) []ActionType {
	if ctx.Phase >= PhaseShowdown || ctx.Actor == NoSeat {
		return nil
	}

	p := &ctx.Players[ctx.Actor]
	if !p.CanAct() {
		return nil
	}

	actions := []ActionType{ActionFold}
	toCall := ctx.CurrentBet - p.Bet

	if toCall <= 0 {
		actions = append(actions, ActionCheck)
		if p.Chips >= ctx.MinRaise {
			if ctx.CurrentBet == 0 {
				actions = append(actions, ActionBet)
			} else {
				// Preflop with only blinds posted: the big blind's
				// option to raise their own blind.
				actions = append(actions, ActionRaise)
			}
		}
	} else {
		if toCall < p.Chips {
			actions = append(actions, ActionCall)
			if p.Chips >= toCall+ctx.MinRaise {
				actions = append(actions, ActionRaise)
			}
		}
		// Covering the bet exactly leaves no chips behind: that call is
		// an all-in, offered below.
	}

	if p.Chips > 0 {
		actions = append(actions, ActionAllIn)
	}
	return actions
}

// legalFor reports whether the action type is in the current legal set.
func legalFor(ctx *GameContext, t ActionType) bool {
	for _, a := range LegalActions(ctx) {
		if a == t {
			return true
		}
	}
	return false
}

// applyAction validates and applies a betting action to this context
// (which must already be a private clone). On error the context is in
// an undefined state and must be discarded.
func (ctx *GameContext) applyAction(a Action) error {
	p := &ctx.Players[a.Seat]

	if !legalFor(ctx, a.Type) {
		return fmt.Errorf("%w: %s not available to seat %d", ErrIllegalAction, a.Type, a.Seat)
	}

	switch a.Type {
	case ActionFold:
		p.Folded = true

	case ActionCheck:
		// No chips move.

	case ActionCall:
		ctx.commit(p, ctx.CurrentBet-p.Bet)

	case ActionBet, ActionRaise:
		toLevel := a.Amount
		if toLevel < ctx.CurrentBet+ctx.MinRaise {
			return fmt.Errorf("%w: %s to %d below minimum %d",
				ErrIllegalAction, a.Type, toLevel, ctx.CurrentBet+ctx.MinRaise)
		}
		if toLevel-p.Bet > p.Chips {
			return fmt.Errorf("%w: %s to %d exceeds stack", ErrIllegalAction, a.Type, toLevel)
		}
		ctx.raiseTo(p, toLevel)

	case ActionAllIn:
		toLevel := p.Bet + p.Chips
		if toLevel > ctx.CurrentBet {
			// An all-in above the current bet acts as a raise even when
			// the increment is short of a full raise; it reopens the
			// action and the increment becomes the new minimum.
			ctx.raiseTo(p, toLevel)
		} else {
			ctx.commit(p, p.Chips)
		}

	default:
		return fmt.Errorf("%w: %s is not a betting action", ErrMalformedAction, a.Type)
	}

	p.Acted = true
	ctx.History = append(ctx.History, ActionRecord{
		Phase:  ctx.Phase,
		Seat:   a.Seat,
		Type:   a.Type,
		Amount: p.Bet,
	})

	ctx.Actor = ctx.nextToAct(ctx.seatAfter(a.Seat))
	return nil
}

// commit moves chips from the stack into the current round's bet,
// capped by the stack.
func (ctx *GameContext) commit(p *Player, amount int) {
	amount = min(amount, p.Chips)
	p.Chips -= amount
	p.Bet += amount
	p.TotalBet += amount
	if p.Chips == 0 {
		p.AllIn = true
	}
}

// raiseTo lifts the player's round commitment to the given level and
// records the aggression: the raise increment becomes the new minimum
// and everyone else owes a response.
func (ctx *GameContext) raiseTo(p *Player, toLevel int) {
	ctx.commit(p, toLevel-p.Bet)
	ctx.MinRaise = toLevel - ctx.CurrentBet
	ctx.CurrentBet = toLevel
	ctx.LastAggressor = p.Seat

	for i := range ctx.Players {
		ctx.Players[i].Acted = false
	}
}

// roundComplete reports whether the current betting round is closed:
// every seat that can still act has matched the highest bet and has
// acted since the last raise. With at most one such seat the round
// closes as soon as that seat has nothing left to call.
func (ctx *GameContext) roundComplete() bool {
	var active []*Player
	for i := range ctx.Players {
		if ctx.Players[i].CanAct() {
			active = append(active, &ctx.Players[i])
		}
	}

	switch len(active) {
	case 0:
		return true
	case 1:
		// The lone seat able to act cannot be bet into; it owes at most
		// a call of an existing all-in.
		return active[0].Bet == ctx.CurrentBet
	}

	for _, p := range active {
		if p.Bet != ctx.CurrentBet || !p.Acted {
			return false
		}
	}
	return true
}
