package poker

import (
	"testing"

	"github.com/lox/holdem-engine/internal/randutil"
)

func eval(t *testing.T, s string) HandRank {
	t.Helper()
	return Evaluate(MustParseCards(s))
}

func TestEvaluateCategories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cards string
		want  HandType
	}{
		{"2c4d6h8sJc", HighCard},
		{"2c2d6h8sJc", Pair},
		{"2c2d8h8sJc", TwoPair},
		{"2c2d2h8sJc", ThreeOfAKind},
		{"Ac2d3h4s5c", Straight},
		{"5c6d7h8s9c", Straight},
		{"2s5s7s9sJs", Flush},
		{"2c2d2h8s8c", FullHouse},
		{"2c2d2h2s8c", FourOfAKind},
		{"Ac2c3c4c5c", StraightFlush},
		{"TsJsQsKsAs", StraightFlush},
		// Seven-card inputs pick the best five.
		{"2c4d6h8sJcJdJh", ThreeOfAKind},
		{"2h3h4h5h6c7hAs", Flush},
		{"AcAdAhKsKdKc2s", FullHouse},
		{"9c9d8h8sAc7s7d", TwoPair},
	}

	for _, tc := range tests {
		if got := eval(t, tc.cards).Type(); got != tc.want {
			t.Errorf("Evaluate(%s).Type() = %v, want %v", tc.cards, got, tc.want)
		}
	}
}

// TestStrengthLadder walks hands in strictly increasing strength,
// crossing every category boundary at its extremes so the strongest
// member of each category loses to the weakest member of the next.
func TestStrengthLadder(t *testing.T) {
	t.Parallel()

	ladder := []string{
		"2c3d4h5s7c", // worst hand in poker
		"2c3d4h6s7c", // second kicker decides
		"2c3d5h6s8c",
		"AcKdQhJs9c", // best high card
		"2c2d3h4s5c", // worst pair
		"2c2d3h4s6c",
		"AcAdKhQsJc", // best pair
		"2c2d3h3s4c", // worst two pair
		"2c2d3h3s5c",
		"AcAdKhKsQc", // best two pair
		"2c2d2h3s4c", // worst trips
		"AcAdAhKsQc", // best trips
		"Ac2d3h4s5c", // wheel
		"2c3d4h5s6c",
		"TcJdQhKsAc", // broadway
		"2s3s4s5s7s", // worst flush
		"2s5s7s9sJs",
		"AsKsQsJs8s",
		"AsKsQsJs9s", // best flush
		"2c2d2h3s3c", // worst full house
		"2c2d2h4s4c",
		"AcAdAhKsKc", // best full house
		"2c2d2h2s3c", // worst quads
		"AcAdAhAsKc", // best quads
		"Ac2c3c4c5c", // steel wheel
		"9cTcJcQcKc",
		"TsJsQsKsAs", // royal
	}

	prev := HandRank(0)
	prevCards := ""
	for i, cards := range ladder {
		rank := eval(t, cards)
		if i > 0 && rank <= prev {
			t.Errorf("%s (rank %d) should beat %s (rank %d)", cards, rank, prevCards, prev)
		}
		prev, prevCards = rank, cards
	}

	if prev != MaxHandRank {
		t.Errorf("royal flush rank = %d, want MaxHandRank %d", prev, MaxHandRank)
	}
}

func TestEvaluatePicksBestFive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		seven string
		best  string
	}{
		{"two trips form a full house", "AcAdAhKsKdKc2s", "AcAdAhKsKd"},
		{"three pairs keep the ace kicker", "9c9d8h8sAc7s7d", "9c9d8h8sAc"},
		{"flush outranks the straight", "2h3h4h5h6c7hAs", "2h3h4h5h7h"},
		{"quads drop the board pair", "QcQdQhQs7c7d2s", "QcQdQhQs7c"},
		{"higher straight wins", "2c3d4h5s6c7d8h", "4h5s6c7d8h"},
		{"pair upgrades the kickers", "2c2d3h9sJcQdKh", "2c2dJcQdKh"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got, want := eval(t, tc.seven), eval(t, tc.best); got != want {
				t.Errorf("Evaluate(%s) = %d, want %d from %s", tc.seven, got, want, tc.best)
			}
		})
	}
}

func TestEvaluateSuitsDoNotBreakTies(t *testing.T) {
	t.Parallel()

	tests := [][2]string{
		{"AcKdQhJs9c", "AdKhQsJc9d"},
		{"2c2d5h8sJc", "2h2s5d8cJd"},
		{"AsKsQsJs9s", "AhKhQhJh9h"},
		{"Ac2d3h4s5c", "Ad2h3s4c5d"},
	}

	for _, tc := range tests {
		a, b := eval(t, tc[0]), eval(t, tc[1])
		if Compare(a, b) != 0 {
			t.Errorf("%s and %s should tie, got ranks %d and %d", tc[0], tc[1], a, b)
		}
	}
}

func TestWheelIsLowestStraight(t *testing.T) {
	t.Parallel()

	wheel := eval(t, "Ac2d3h4s5c")
	six := eval(t, "2c3d4h5s6c")

	if wheel.Type() != Straight {
		t.Fatalf("wheel type = %v, want straight", wheel.Type())
	}
	if Compare(wheel, six) != -1 {
		t.Error("wheel should lose to a six-high straight")
	}
	// The ace plays low: it must not promote the wheel above its slot.
	if Compare(wheel, eval(t, "AcAdKhQsJc")) != 1 {
		t.Error("wheel should still beat a pair of aces")
	}
}

func TestCompare(t *testing.T) {
	t.Parallel()

	hi := eval(t, "AcAdAhAsKc")
	lo := eval(t, "2c3d4h5s7c")

	if Compare(hi, lo) != 1 || Compare(lo, hi) != -1 || Compare(hi, hi) != 0 {
		t.Error("Compare sign contract violated")
	}
}

func TestEvaluatePanics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cards []Card
	}{
		{"four cards", MustParseCards("As2c3d4h")},
		{"eight cards", MustParseCards("As2c3d4h5s6c7d8h")},
		{"duplicate", append(MustParseCards("As2c3d4h"), MustParseCards("As")[0])},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			Evaluate(tc.cards)
		})
	}
}

func TestEvaluateSixCards(t *testing.T) {
	t.Parallel()

	// Six cards: the pair of kings with ace-queen-ten kickers.
	if got, want := eval(t, "KcKd2sQh Tc Ac"), eval(t, "KcKdQhTcAc"); got != want {
		t.Errorf("six-card eval = %d, want %d", got, want)
	}
}

func fullDeck() []Card {
	cards := make([]Card, 0, 52)
	for suit := range uint8(4) {
		for rank := range uint8(13) {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// bestSubsetRank is the defining answer for a 6- or 7-card hand: the
// maximum rank over every 5-card subset.
func bestSubsetRank(cards []Card) HandRank {
	var best HandRank
	five := make([]Card, 0, 5)
	var pick func(start, need int)
	pick = func(start, need int) {
		if need == 0 {
			if r := Evaluate(five); r > best {
				best = r
			}
			return
		}
		for i := start; i <= len(cards)-need; i++ {
			five = append(five, cards[i])
			pick(i+1, need-1)
			five = five[:len(five)-1]
		}
	}
	pick(0, 5)
	return best
}

func TestEvaluateMatchesBestSubset(t *testing.T) {
	t.Parallel()

	rng := randutil.New(31)
	deck := fullDeck()

	for _, size := range []int{6, 7} {
		for trial := 0; trial < 1000; trial++ {
			for i := 0; i < size; i++ {
				j := i + rng.IntN(len(deck)-i)
				deck[i], deck[j] = deck[j], deck[i]
			}
			cards := append([]Card(nil), deck[:size]...)

			if got, want := Evaluate(cards), bestSubsetRank(cards); got != want {
				t.Fatalf("Evaluate(%v) = %d, want best-subset rank %d", NewHand(cards...), got, want)
			}
		}
	}
}

// refEval ranks five cards from first principles: count the rank
// groups, spot straights and flushes, then break ties by a category
// and a most-significant-first rank list.
type refEval struct {
	category HandType
	tiebreak []uint8
}

func refEvaluate(cards []Card) refEval {
	var counts [13]int
	flush := true
	for _, c := range cards {
		counts[c.Rank()]++
		if c.Suit() != cards[0].Suit() {
			flush = false
		}
	}

	var singles, pairs, trips, quads []uint8
	for r := 12; r >= 0; r-- {
		switch counts[r] {
		case 1:
			singles = append(singles, uint8(r))
		case 2:
			pairs = append(pairs, uint8(r))
		case 3:
			trips = append(trips, uint8(r))
		case 4:
			quads = append(quads, uint8(r))
		}
	}

	straightHigh := int8(-1)
	if len(singles) == 5 {
		switch {
		case singles[0]-singles[4] == 4:
			straightHigh = int8(singles[0])
		case singles[0] == Ace && singles[1] == Five:
			// The wheel plays the ace low.
			straightHigh = int8(Five)
		}
	}

	switch {
	case straightHigh >= 0 && flush:
		return refEval{StraightFlush, []uint8{uint8(straightHigh)}}
	case len(quads) == 1:
		return refEval{FourOfAKind, []uint8{quads[0], singles[0]}}
	case len(trips) == 1 && len(pairs) == 1:
		return refEval{FullHouse, []uint8{trips[0], pairs[0]}}
	case flush:
		return refEval{Flush, singles}
	case straightHigh >= 0:
		return refEval{Straight, []uint8{uint8(straightHigh)}}
	case len(trips) == 1:
		return refEval{ThreeOfAKind, append([]uint8{trips[0]}, singles...)}
	case len(pairs) == 2:
		return refEval{TwoPair, []uint8{pairs[0], pairs[1], singles[0]}}
	case len(pairs) == 1:
		return refEval{Pair, append([]uint8{pairs[0]}, singles...)}
	default:
		return refEval{HighCard, singles}
	}
}

func refCompare(a, b refEval) int {
	switch {
	case a.category > b.category:
		return 1
	case a.category < b.category:
		return -1
	}
	for i := range a.tiebreak {
		switch {
		case a.tiebreak[i] > b.tiebreak[i]:
			return 1
		case a.tiebreak[i] < b.tiebreak[i]:
			return -1
		}
	}
	return 0
}

func TestEvaluateAgreesWithNaiveReference(t *testing.T) {
	t.Parallel()

	rng := randutil.New(17)
	deck := fullDeck()

	for trial := 0; trial < 2000; trial++ {
		for i := 0; i < 10; i++ {
			j := i + rng.IntN(len(deck)-i)
			deck[i], deck[j] = deck[j], deck[i]
		}
		a := append([]Card(nil), deck[:5]...)
		b := append([]Card(nil), deck[5:10]...)

		want := refCompare(refEvaluate(a), refEvaluate(b))
		if got := Compare(Evaluate(a), Evaluate(b)); got != want {
			t.Fatalf("Compare(%v, %v) = %d, reference ordering says %d",
				NewHand(a...), NewHand(b...), got, want)
		}
	}
}
