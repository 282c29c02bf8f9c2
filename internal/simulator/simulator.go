// Package simulator plays unattended hands through the game engine,
// driving every seat from a configured decision policy. It exists to
// soak-test the engine and to compare policies over large samples.
package simulator

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/holdem-engine/internal/engine"
	"github.com/lox/holdem-engine/internal/randutil"
)

// Stats aggregates the outcomes of a simulation run.
type Stats struct {
	Hands          int
	Showdowns      int
	TimedOut       int // decisions replaced by a forced check or fold
	Rebuys         int
	MaxPot         int
	NetChips       map[string]int
	HandsPerSecond float64
}

// Simulator plays a fixed number of hands between configured policies.
type Simulator struct {
	config   *Config
	logger   *log.Logger
	clock    quartz.Clock
	timeout  time.Duration
	policies []Policy
}

// Option adjusts simulator construction.
type Option func(*Simulator)

// WithClock substitutes the wall clock, letting tests control decision
// deadlines.
func WithClock(clock quartz.Clock) Option {
	return func(s *Simulator) { s.clock = clock }
}

// WithPolicies overrides the config-derived policies, one per seat.
func WithPolicies(policies ...Policy) Option {
	return func(s *Simulator) { s.policies = policies }
}

// New builds a simulator from a validated configuration.
func New(config *Config, logger *log.Logger, opts ...Option) (*Simulator, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}
	timeout, err := config.Timeout()
	if err != nil {
		return nil, err
	}

	s := &Simulator{
		config:  config,
		logger:  logger.WithPrefix("simulator"),
		clock:   quartz.NewReal(),
		timeout: timeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.policies == nil {
		rng := randutil.New(config.Table.Seed)
		for _, seat := range config.Seats {
			policy, ok := NewPolicy(seat.Policy, rng)
			if !ok {
				return nil, fmt.Errorf("seat %s: unknown policy %q", seat.Name, seat.Policy)
			}
			s.policies = append(s.policies, policy)
		}
	}
	if len(s.policies) != len(config.Seats) {
		return nil, fmt.Errorf("have %d policies for %d seats", len(s.policies), len(config.Seats))
	}
	return s, nil
}

// Run plays the configured number of hands, rotating the button each
// hand and carrying stacks forward. Busted seats rebuy for the starting
// stack so the table never shrinks below playable.
func (s *Simulator) Run(ctx context.Context) (*Stats, error) {
	names := make([]string, len(s.config.Seats))
	chips := make([]int, len(s.config.Seats))
	for i, seat := range s.config.Seats {
		names[i] = seat.Name
		chips[i] = seat.Chips
	}

	stats := &Stats{NetChips: make(map[string]int, len(names))}
	start := time.Now()
	button := 0

	for hand := 0; hand < s.config.Table.Hands; hand++ {
		if err := ctx.Err(); err != nil {
			return stats, fmt.Errorf("simulation interrupted after %d hands: %w", hand, err)
		}

		for i := range chips {
			if chips[i] <= 0 {
				chips[i] = s.config.Table.StartingChips
				stats.Rebuys++
			}
		}

		g := engine.NewHand(
			randutil.New(s.config.Table.Seed+int64(hand)),
			names, button,
			s.config.Table.SmallBlind, s.config.Table.BigBlind,
			engine.WithChips(chips),
			engine.WithHandNum(uint64(hand+1)),
		)

		g, err := s.playHand(ctx, g, stats)
		if err != nil {
			return stats, fmt.Errorf("hand %d: %w", hand+1, err)
		}

		for i := range g.Players {
			chips[i] = g.Players[i].Chips
		}
		s.recordHand(g, stats)
		button = (button + 1) % len(names)
	}

	elapsed := time.Since(start)
	if elapsed > 0 {
		stats.HandsPerSecond = float64(stats.Hands) / elapsed.Seconds()
	}
	for i, name := range names {
		stats.NetChips[name] = chips[i] - s.config.Seats[i].Chips
	}

	s.logger.Info("simulation complete",
		"hands", stats.Hands,
		"showdowns", stats.Showdowns,
		"rebuys", stats.Rebuys,
		"max_pot", stats.MaxPot,
		"hands_per_sec", fmt.Sprintf("%.0f", stats.HandsPerSecond))
	return stats, nil
}

// playHand drives one hand to completion.
func (s *Simulator) playHand(ctx context.Context, g *engine.GameContext, stats *Stats) (*engine.GameContext, error) {
	for g.Phase != engine.PhaseComplete {
		legal := engine.LegalActions(g)
		if legal == nil {
			return g, fmt.Errorf("no legal actions in phase %s with actor %d", g.Phase, g.Actor)
		}

		action := s.decide(ctx, g, legal, stats)
		next, err := engine.ProcessAction(g, action)
		if err != nil {
			// A policy produced an illegal action; substitute the safe
			// line and keep the hand moving.
			s.logger.Warn("policy action rejected",
				"seat", action.Seat, "action", action.Type, "err", err)
			next, err = engine.ProcessAction(g, fallback(g, legal))
			if err != nil {
				return g, err
			}
		}
		g = next
	}
	return g, nil
}

// decide asks the actor's policy for a move, bounded by the action
// deadline so a stuck policy cannot hang the table. The deadline
// abandons the policy goroutine rather than interrupting it: a policy
// that never returns leaks its goroutine for the rest of the run.
func (s *Simulator) decide(ctx context.Context, g *engine.GameContext, legal []engine.ActionType, stats *Stats) engine.Action {
	resultCh := make(chan engine.Action, 1)
	go func() {
		resultCh <- s.policies[g.Actor].Act(g, legal)
	}()

	timedOut := make(chan struct{})
	timer := s.clock.AfterFunc(s.timeout, func() {
		close(timedOut)
	})
	defer timer.Stop()

	select {
	case a := <-resultCh:
		return a
	case <-timedOut:
		stats.TimedOut++
		s.logger.Warn("policy timed out", "seat", g.Actor, "timeout", s.timeout)
		return fallback(g, legal)
	case <-ctx.Done():
		return fallback(g, legal)
	}
}

// fallback is the forced line for absent decisions: check when free,
// fold otherwise.
func fallback(g *engine.GameContext, legal []engine.ActionType) engine.Action {
	if has(legal, engine.ActionCheck) {
		return engine.Action{Seat: g.Actor, Type: engine.ActionCheck}
	}
	return engine.Action{Seat: g.Actor, Type: engine.ActionFold}
}

func (s *Simulator) recordHand(g *engine.GameContext, stats *Stats) {
	stats.Hands++

	pot := 0
	showdown := false
	for _, payout := range g.Payouts {
		pot += payout.Amount
		if payout.Contested {
			showdown = true
		}
	}
	if showdown {
		stats.Showdowns++
	}
	if pot > stats.MaxPot {
		stats.MaxPot = pot
	}

	s.logger.Debug("hand complete",
		"hand", g.HandNum,
		"board", fmt.Sprintf("%v", g.Board),
		"pot", pot,
		"showdown", showdown)
}
