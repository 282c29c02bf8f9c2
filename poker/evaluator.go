package poker

import (
	"fmt"
	"math/bits"
)

// HandRank is the total strength ordering of a poker hand. Higher
// values are stronger; equal values are exact ties. Every distinct
// 5-card hand class (7462 of them) maps to a distinct rank, with
// kickers ordered rank-by-rank within each category.
type HandRank uint16

// HandType enumerates the hand categories from weakest to strongest.
type HandType uint8

const (
	HighCard HandType = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

const (
	highCardCount      = 1277 // C(13,5) minus 10 straights
	onePairCount       = 13 * 220
	twoPairCount       = 78 * 11
	threeOfAKindCount  = 13 * 66
	straightCount      = 10
	flushCount         = 1277
	fullHouseCount     = 13 * 12
	fourOfAKindCount   = 13 * 12
	straightFlushCount = 10
)

const (
	baseHighCard      = 0
	baseOnePair       = baseHighCard + highCardCount
	baseTwoPair       = baseOnePair + onePairCount
	baseThreeOfAKind  = baseTwoPair + twoPairCount
	baseStraight      = baseThreeOfAKind + threeOfAKindCount
	baseFlush         = baseStraight + straightCount
	baseFullHouse     = baseFlush + flushCount
	baseFourOfAKind   = baseFullHouse + fullHouseCount
	baseStraightFlush = baseFourOfAKind + fourOfAKindCount

	// MaxHandRank is the royal flush.
	MaxHandRank HandRank = baseStraightFlush + straightFlushCount - 1
)

// Type returns the category of the hand.
func (hr HandRank) Type() HandType {
	switch {
	case hr >= baseStraightFlush:
		return StraightFlush
	case hr >= baseFourOfAKind:
		return FourOfAKind
	case hr >= baseFullHouse:
		return FullHouse
	case hr >= baseFlush:
		return Flush
	case hr >= baseStraight:
		return Straight
	case hr >= baseThreeOfAKind:
		return ThreeOfAKind
	case hr >= baseTwoPair:
		return TwoPair
	case hr >= baseOnePair:
		return Pair
	default:
		return HighCard
	}
}

// String returns a human-readable category description.
func (hr HandRank) String() string {
	switch hr.Type() {
	case StraightFlush:
		if hr == MaxHandRank {
			return "Royal Flush"
		}
		return "Straight Flush"
	case FourOfAKind:
		return "Four of a Kind"
	case FullHouse:
		return "Full House"
	case Flush:
		return "Flush"
	case Straight:
		return "Straight"
	case ThreeOfAKind:
		return "Three of a Kind"
	case TwoPair:
		return "Two Pair"
	case Pair:
		return "Pair"
	default:
		return "High Card"
	}
}

// Evaluate returns the strength of the best 5-card hand contained in
// 5, 6 or 7 cards. Duplicate cards or an out-of-range card count are
// programming errors and panic.
func Evaluate(cards []Card) HandRank {
	if len(cards) < 5 || len(cards) > 7 {
		panic(fmt.Sprintf("poker: Evaluate requires 5-7 cards, got %d", len(cards)))
	}
	hand := NewHand(cards...)
	if hand.CountCards() != len(cards) {
		panic(fmt.Sprintf("poker: duplicate card in %v", cards))
	}
	return EvaluateHand(hand)
}

// EvaluateHand evaluates a hand bitset of 5-7 cards.
func EvaluateHand(hand Hand) HandRank {
	n := hand.CountCards()
	if n < 5 || n > 7 {
		panic(fmt.Sprintf("poker: EvaluateHand requires 5-7 cards, got %d", n))
	}

	var suitMasks [4]uint16
	var rankMask uint16
	for suit := uint8(0); suit < 4; suit++ {
		mask := hand.SuitMask(suit)
		suitMasks[suit] = mask
		rankMask |= mask
	}

	// Flush and straight flush. At most one suit can hold five of
	// seven cards.
	for _, suitMask := range suitMasks {
		if bits.OnesCount16(suitMask) >= 5 {
			if high := straightHighMask(suitMask); high > 0 {
				return baseStraightFlush + HandRank(straightDetail(high))
			}
			top5 := maskFromRanks(topRanksFromMask(suitMask, 5))
			return baseFlush + HandRank(nonStraightIndex13of5[top5])
		}
	}

	s0, s1, s2, s3 := suitMasks[0], suitMasks[1], suitMasks[2], suitMasks[3]

	quadsMask := s0 & s1 & s2 & s3
	tripCandidates := (s0 & s1 & s2) | (s0 & s1 & s3) | (s0 & s2 & s3) | (s1 & s2 & s3)
	tripsMask := tripCandidates &^ quadsMask
	pairsMask := ((s0 & s1) | (s0 & s2) | (s0 & s3) | (s1 & s2) | (s1 & s3) | (s2 & s3)) &^ tripCandidates

	if quad := highestRank(quadsMask); quad >= 0 {
		quadRank := uint8(quad)
		kicker := findKicker(rankMask, []uint8{quadRank})
		detail := uint16(quadRank)*12 + uint16(rankOrdinal(kicker, []uint8{quadRank}))
		return baseFourOfAKind + HandRank(detail)
	}

	if trip := highestRank(tripsMask); trip >= 0 {
		tripRank := uint8(trip)
		// A second set of trips supplies the pair in a 7-card hand.
		pairCandidates := pairsMask | (tripsMask &^ (1 << trip))
		if pair := highestRank(pairCandidates); pair >= 0 {
			pairRank := uint8(pair)
			detail := uint16(tripRank)*12 + uint16(rankOrdinal(pairRank, []uint8{tripRank}))
			return baseFullHouse + HandRank(detail)
		}
	}

	if high := straightHighMask(rankMask); high > 0 {
		return baseStraight + HandRank(straightDetail(high))
	}

	if trip := highestRank(tripsMask); trip >= 0 {
		tripRank := uint8(trip)
		kickers := findOrderedKickers(rankMask, []uint8{tripRank}, 2)
		mask := maskFromOrdinals(kickers, []uint8{tripRank})
		detail := uint16(tripRank)*66 + subsetIndex12of2[mask]
		return baseThreeOfAKind + HandRank(detail)
	}

	if p1 := highestRank(pairsMask); p1 >= 0 {
		highPair := uint8(p1)
		if p2 := highestRank(pairsMask &^ (1 << p1)); p2 >= 0 {
			lowPair := uint8(p2)
			pairMask := uint16(1)<<highPair | uint16(1)<<lowPair
			kicker := findKicker(rankMask, []uint8{highPair, lowPair})
			kickerOrd := uint16(rankOrdinal(kicker, []uint8{highPair, lowPair}))
			detail := subsetIndex13of2[pairMask]*11 + kickerOrd
			return baseTwoPair + HandRank(detail)
		}
		kickers := findOrderedKickers(rankMask, []uint8{highPair}, 3)
		mask := maskFromOrdinals(kickers, []uint8{highPair})
		detail := uint16(highPair)*220 + subsetIndex12of3[mask]
		return baseOnePair + HandRank(detail)
	}

	top5 := maskFromRanks(findOrderedKickers(rankMask, nil, 5))
	return baseHighCard + HandRank(nonStraightIndex13of5[top5])
}

// Compare returns 1 if a beats b, -1 if b beats a, 0 on an exact tie.
func Compare(a, b HandRank) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

// straightDetail maps a straight's high rank to its detail index
// (wheel = 0, broadway = 9).
func straightDetail(high uint8) uint16 {
	if high == Five { // wheel, ace plays low
		return 0
	}
	return uint16(high) - 3
}

// straightHighMask returns the high rank of the best straight in a
// 13-bit rank mask, or 0 when there is none. The wheel reports Five.
func straightHighMask(mask uint16) uint8 {
	const wheelMask = 0x100F // A-2-3-4-5
	mask &= 0x1FFF

	// A bitwise cascade finds runs of five consecutive ranks.
	seq := mask & (mask >> 1) & (mask >> 2) & (mask >> 3) & (mask >> 4)
	if seq != 0 {
		low := uint8(bits.Len16(seq) - 1)
		return low + 4
	}
	if mask&wheelMask == wheelMask {
		return Five
	}
	return 0
}

// highestRank returns the highest rank set in the mask, or -1 if empty.
func highestRank(mask uint16) int {
	if mask == 0 {
		return -1
	}
	return bits.Len16(mask) - 1
}

// findKicker returns the highest rank in the mask excluding used ranks.
func findKicker(mask uint16, used []uint8) uint8 {
	available := mask &^ maskFromRanks(used)
	if available == 0 {
		return 0
	}
	return uint8(bits.Len16(available) - 1)
}

// findOrderedKickers returns the top n ranks in descending order,
// excluding used ranks.
func findOrderedKickers(mask uint16, used []uint8, n int) []uint8 {
	available := mask &^ maskFromRanks(used)
	kickers := make([]uint8, 0, n)
	for len(kickers) < n && available != 0 {
		top := uint8(bits.Len16(available) - 1)
		kickers = append(kickers, top)
		available &^= 1 << top
	}
	return kickers
}

func topRanksFromMask(mask uint16, n int) []uint8 {
	return findOrderedKickers(mask, nil, n)
}

// rankOrdinal compresses a rank into the 0-based ordinal among the
// ranks that remain once the excluded ranks are removed.
func rankOrdinal(rank uint8, excludes []uint8) uint8 {
	var offset uint8
	for _, ex := range excludes {
		if ex < rank {
			offset++
		}
	}
	return rank - offset
}

func maskFromRanks(ranks []uint8) uint16 {
	var mask uint16
	for _, r := range ranks {
		mask |= 1 << r
	}
	return mask
}

// maskFromOrdinals builds a mask over the compressed rank space that
// excludes the given ranks.
func maskFromOrdinals(ranks []uint8, excludes []uint8) uint16 {
	var mask uint16
	for _, r := range ranks {
		mask |= 1 << rankOrdinal(r, excludes)
	}
	return mask
}

// Subset index tables assign each k-subset rank mask its position in
// ascending numeric mask order. For masks of equal popcount, numeric
// order is exactly hand-strength order (highest card first, then the
// next, and so on), which makes the detail indices kicker-exact.

// nonStraightIndex13of5 indexes the 1277 5-rank masks that do not form
// a straight; straight masks are handled by their own categories and
// never reach a flush or high-card lookup.
var nonStraightIndex13of5 = func() [1 << 13]uint16 {
	straights := make(map[uint16]bool, 10)
	straights[0x100F] = true // wheel
	for high := 4; high <= 12; high++ {
		var mask uint16
		for r := high - 4; r <= high; r++ {
			mask |= 1 << r
		}
		straights[mask] = true
	}

	var table [1 << 13]uint16
	var idx uint16
	for mask := 0; mask < 1<<13; mask++ {
		if bits.OnesCount16(uint16(mask)) == 5 && !straights[uint16(mask)] {
			table[mask] = idx
			idx++
		}
	}
	return table
}()

var subsetIndex13of2 = makeSubsetIndex(13, 2)
var subsetIndex12of2 = makeSubsetIndex(12, 2)
var subsetIndex12of3 = makeSubsetIndex(12, 3)

func makeSubsetIndex(width, k int) []uint16 {
	table := make([]uint16, 1<<width)
	var idx uint16
	for mask := 0; mask < 1<<width; mask++ {
		if bits.OnesCount16(uint16(mask)) == k {
			table[mask] = idx
			idx++
		}
	}
	return table
}
