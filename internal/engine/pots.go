package engine

import "sort"

// computePots partitions every chip committed this hand into a main
// pot and side pots. It walks the distinct contribution levels in
// ascending order; each level's pot collects the incremental
// contribution of everyone who reached it, with eligibility restricted
// to contenders who reached it. Pots with identical eligibility are
// merged, so without all-ins the result is a single main pot.
//
// The partition reconstructs each player's TotalBet exactly: no chip is
// created, lost or double counted.
func computePots(players []Player) []Pot {
	levelSet := make(map[int]bool)
	for i := range players {
		if players[i].TotalBet > 0 {
			levelSet[players[i].TotalBet] = true
		}
	}
	if len(levelSet) == 0 {
		return nil
	}

	levels := make([]int, 0, len(levelSet))
	for level := range levelSet {
		levels = append(levels, level)
	}
	sort.Ints(levels)

	var pots []Pot
	prev := 0
	for _, level := range levels {
		pot := Pot{}
		for i := range players {
			if contrib := min(players[i].TotalBet, level) - prev; contrib > 0 {
				pot.Amount += contrib
			}
			if players[i].InHand() && players[i].TotalBet >= level {
				pot.Eligible = append(pot.Eligible, players[i].Seat)
			}
		}
		prev = level

		if pot.Amount == 0 {
			continue
		}
		// Same eligible set as the previous pot means no all-in
		// boundary between the levels; fold them together.
		if n := len(pots); n > 0 && equalSeats(pots[n-1].Eligible, pot.Eligible) {
			pots[n-1].Amount += pot.Amount
			continue
		}
		pots = append(pots, pot)
	}

	return mergeDeadPots(pots)
}

// mergeDeadPots folds any pot with no eligible seats (every contributor
// at that level folded) into the nearest pot below it, where the
// remaining contenders can win it.
func mergeDeadPots(pots []Pot) []Pot {
	out := pots[:0]
	var dead int
	for _, pot := range pots {
		if len(pot.Eligible) == 0 {
			dead += pot.Amount
			continue
		}
		out = append(out, pot)
	}
	if dead > 0 && len(out) > 0 {
		out[len(out)-1].Amount += dead
	}
	return out
}

func equalSeats(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// settleRound moves the round's bets into the pot structure. It re-runs
// the full partition from TotalBet so side pots created mid-hand stay
// correctly isolated even when later streets see no further all-ins.
func (ctx *GameContext) settleRound() {
	for i := range ctx.Players {
		ctx.Players[i].Bet = 0
	}
	ctx.Pots = computePots(ctx.Players)
}

// resetStreet clears the per-round betting fields. Every deal point
// shares this one procedure so street resets cannot drift apart.
func (ctx *GameContext) resetStreet() {
	ctx.CurrentBet = 0
	ctx.MinRaise = ctx.BigBlind
	ctx.LastAggressor = NoSeat
	for i := range ctx.Players {
		ctx.Players[i].Bet = 0
		ctx.Players[i].Acted = false
	}
}
