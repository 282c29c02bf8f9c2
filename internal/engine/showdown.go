package engine

import (
	"fmt"

	"github.com/lox/holdem-engine/poker"
)

// Payout records one seat's winnings from one pot at hand completion.
type Payout struct {
	Pot    int // index into the final pot partition
	Seat   int
	Amount int
	// Rank is the winning hand strength. It is only meaningful when
	// Contested is true; uncontested pots pay without evaluation, and
	// zero is itself a valid rank (seven-five high).
	Rank      poker.HandRank
	Contested bool
}

// resolveShowdown evaluates every contender's best hand, distributes
// each pot to the strongest eligible seat(s) and completes the hand.
// Split pots that do not divide evenly hand their odd chips one each to
// the earliest winners clockwise from the button.
func (ctx *GameContext) resolveShowdown() {
	board := poker.NewHand(ctx.Board...)

	ranks := make(map[int]poker.HandRank)
	for _, seat := range ctx.Contenders() {
		p := &ctx.Players[seat]
		ranks[seat] = poker.EvaluateHand(board | poker.NewHand(p.HoleCards...))
		p.Revealed = true
	}

	for potIdx := range ctx.Pots {
		pot := &ctx.Pots[potIdx]

		var best poker.HandRank
		var winners []int
		for _, seat := range ctx.clockwiseFromButton(pot.Eligible) {
			rank, ok := ranks[seat]
			if !ok {
				continue
			}
			switch {
			case len(winners) == 0 || rank > best:
				best = rank
				winners = []int{seat}
			case rank == best:
				winners = append(winners, seat)
			}
		}
		if len(winners) == 0 {
			panic(fmt.Sprintf("engine: pot %d has no live eligible seats", potIdx))
		}

		ctx.payPot(potIdx, winners, best, true)
	}

	ctx.Phase = PhaseComplete
	ctx.Actor = NoSeat
}

// awardUncontested gives every pot to the sole remaining contender
// without any evaluation or card reveal.
func (ctx *GameContext) awardUncontested(seat int) {
	for potIdx := range ctx.Pots {
		ctx.payPot(potIdx, []int{seat}, 0, false)
	}
	ctx.Phase = PhaseComplete
	ctx.Actor = NoSeat
}

// payPot splits a pot among winners ordered clockwise from the button,
// assigning any odd remainder chips one each from the front.
func (ctx *GameContext) payPot(potIdx int, winners []int, rank poker.HandRank, contested bool) {
	pot := &ctx.Pots[potIdx]
	share := pot.Amount / len(winners)
	remainder := pot.Amount % len(winners)
	pot.Amount = 0

	for i, seat := range winners {
		amount := share
		if i < remainder {
			amount++
		}
		if amount == 0 {
			continue
		}
		ctx.Players[seat].Chips += amount
		ctx.Payouts = append(ctx.Payouts, Payout{
			Pot:       potIdx,
			Seat:      seat,
			Amount:    amount,
			Rank:      rank,
			Contested: contested,
		})
	}
}

// clockwiseFromButton orders seats starting at the first seat after the
// button, which makes remainder assignment deterministic.
func (ctx *GameContext) clockwiseFromButton(seats []int) []int {
	n := len(ctx.Players)
	member := make(map[int]bool, len(seats))
	for _, s := range seats {
		member[s] = true
	}

	out := make([]int, 0, len(seats))
	for i := 1; i <= n; i++ {
		seat := (ctx.Button + i) % n
		if member[seat] {
			out = append(out, seat)
		}
	}
	return out
}
