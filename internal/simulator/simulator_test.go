package simulator

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-engine/internal/engine"
	"github.com/lox/holdem-engine/internal/randutil"
)

func testConfig(hands int) *Config {
	return &Config{
		Table: TableSettings{
			Hands:         hands,
			SmallBlind:    1,
			BigBlind:      2,
			StartingChips: 200,
			Seed:          42,
			ActionTimeout: "5s",
		},
		Seats: []SeatConfig{
			{Name: "hero", Policy: "equity", Chips: 200},
			{Name: "caller", Policy: "call", Chips: 200},
			{Name: "rock", Policy: "fold", Chips: 200},
			{Name: "gambler", Policy: "rand", Chips: 200},
		},
	}
}

func testLogger() *log.Logger {
	logger := log.New(io.Discard)
	logger.SetLevel(log.FatalLevel)
	return logger
}

func TestSimulationConservesChips(t *testing.T) {
	cfg := testConfig(200)
	sim, err := New(cfg, testLogger())
	require.NoError(t, err)

	stats, err := sim.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 200, stats.Hands)

	// Every chip in play is accounted for: net winnings across seats
	// equal exactly the chips injected by rebuys.
	net := 0
	for _, delta := range stats.NetChips {
		net += delta
	}
	assert.Equal(t, stats.Rebuys*cfg.Table.StartingChips, net)
}

func TestSimulationIsSeedDeterministic(t *testing.T) {
	run := func() *Stats {
		sim, err := New(testConfig(50), testLogger())
		require.NoError(t, err)
		stats, err := sim.Run(context.Background())
		require.NoError(t, err)
		return stats
	}

	a, b := run(), run()
	assert.Equal(t, a.Hands, b.Hands)
	assert.Equal(t, a.Showdowns, b.Showdowns)
	assert.Equal(t, a.Rebuys, b.Rebuys)
	assert.Equal(t, a.MaxPot, b.MaxPot)
	assert.Equal(t, a.NetChips, b.NetChips)
}

func TestSimulationPlaysShowdowns(t *testing.T) {
	sim, err := New(testConfig(100), testLogger())
	require.NoError(t, err)

	stats, err := sim.Run(context.Background())
	require.NoError(t, err)

	// With two calling stations at the table some hands must reach a
	// showdown.
	assert.Positive(t, stats.Showdowns)
	assert.GreaterOrEqual(t, stats.MaxPot, 2*testConfig(1).Table.BigBlind)
}

// stallPolicy never answers, forcing the decision deadline to fire.
type stallPolicy struct{}

func (stallPolicy) Act(*engine.GameContext, []engine.ActionType) engine.Action {
	select {}
}

func TestStuckPolicyHitsDeadline(t *testing.T) {
	mClock := quartz.NewMock(t)
	trap := mClock.Trap().AfterFunc()
	defer trap.Close()

	cfg := testConfig(1)
	cfg.Seats = cfg.Seats[:2]
	sim, err := New(cfg, testLogger(),
		WithClock(mClock),
		WithPolicies(stallPolicy{}, stallPolicy{}))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	done := make(chan *Stats, 1)
	go func() {
		stats, err := sim.Run(ctx)
		assert.NoError(t, err)
		done <- stats
	}()

	// Heads-up with both policies stuck, the small blind's decision
	// times out into a fold and the hand ends.
	call := trap.MustWait(ctx)
	call.MustRelease(ctx)
	mClock.Advance(5 * time.Second).MustWait(ctx)

	select {
	case stats := <-done:
		assert.Equal(t, 1, stats.Hands)
		assert.Equal(t, 1, stats.TimedOut)
	case <-ctx.Done():
		t.Fatal("simulation did not finish after the deadline fired")
	}
}

func TestFallbackPrefersCheck(t *testing.T) {
	g := engine.NewHand(randutil.New(1), []string{"a", "b"}, 0, 1, 2)

	// Small blind faces a bet: the fallback folds.
	a := fallback(g, engine.LegalActions(g))
	assert.Equal(t, engine.ActionFold, a.Type)

	next, err := engine.ProcessAction(g, engine.Action{Seat: 0, Type: engine.ActionCall})
	require.NoError(t, err)
	// Big blind may check: the fallback checks.
	a = fallback(next, engine.LegalActions(next))
	assert.Equal(t, engine.ActionCheck, a.Type)
}

func TestNewRejectsBadSetups(t *testing.T) {
	logger := testLogger()

	cfg := testConfig(10)
	cfg.Seats[0].Policy = "nonsense"
	_, err := New(cfg, logger)
	assert.Error(t, err)

	cfg = testConfig(10)
	_, err = New(cfg, logger, WithPolicies(stallPolicy{}))
	assert.Error(t, err, "policy count must match seat count")

	cfg = testConfig(0)
	_, err = New(cfg, logger)
	assert.Error(t, err)
}
