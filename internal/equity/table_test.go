package equity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-engine/poker"
)

func cards2(t *testing.T, s string) (poker.Card, poker.Card) {
	t.Helper()
	cs := poker.MustParseCards(s)
	require.Len(t, cs, 2)
	return cs[0], cs[1]
}

func TestClassify(t *testing.T) {
	tests := []struct {
		cards string
		want  string
	}{
		{"AsAh", "AA"},
		{"AsKs", "AKs"},
		{"AsKh", "AKo"},
		{"KhAs", "AKo"}, // order independent
		{"2c3c", "32s"},
		{"Td9d", "T9s"},
		{"7h2c", "72o"},
	}

	for _, tc := range tests {
		a, b := cards2(t, tc.cards)
		assert.Equal(t, tc.want, Classify(a, b), "cards %s", tc.cards)
	}
}

func TestLookupMatchesLookupCards(t *testing.T) {
	for _, s := range []string{"AsAh", "AsKs", "AsKh", "7h2c", "Td9d"} {
		a, b := cards2(t, s)
		byClass, err := Lookup(Classify(a, b))
		require.NoError(t, err)
		assert.Equal(t, byClass, LookupCards(a, b), "cards %s", s)
	}
}

func TestLookupRejectsBadClasses(t *testing.T) {
	for _, class := range []string{"", "A", "AK", "AAx", "AKz", "1Ks", "AAs", "AKso"} {
		_, err := Lookup(class)
		assert.Error(t, err, "class %q", class)
	}
}

func TestEquityOrderings(t *testing.T) {
	mustLookup := func(class string) float64 {
		v, err := Lookup(class)
		require.NoError(t, err)
		return v
	}

	// Premium pairs dominate in descending order.
	assert.Greater(t, mustLookup("AA"), mustLookup("KK"))
	assert.Greater(t, mustLookup("KK"), mustLookup("QQ"))
	assert.Greater(t, mustLookup("QQ"), mustLookup("JJ"))

	// Suitedness is worth a little equity.
	assert.Greater(t, mustLookup("AKs"), mustLookup("AKo"))
	assert.Greater(t, mustLookup("T9s"), mustLookup("T9o"))

	// A bigger kicker beats a smaller one.
	assert.Greater(t, mustLookup("AKo"), mustLookup("AQo"))

	// The classic trash hands sit near the bottom.
	assert.Less(t, mustLookup("72o"), mustLookup("AA"))
	assert.Less(t, mustLookup("32o"), 0.40)
	assert.Greater(t, mustLookup("AA"), 0.82)
}

func TestTableCoversEveryClass(t *testing.T) {
	seen := make(map[string]bool, NumClasses)
	for idx := range NumClasses {
		label := classLabel(idx)
		assert.False(t, seen[label], "duplicate class %s", label)
		seen[label] = true

		back, err := parseClass(label)
		require.NoError(t, err)
		assert.Equal(t, idx, back, "class %s", label)

		v := float64(preflopEquity[idx]) / tableScale
		assert.Greater(t, v, 0.25, "class %s", label)
		assert.Less(t, v, 0.90, "class %s", label)
	}
	assert.Len(t, seen, NumClasses)
}

func TestClassIndexUsesRepresentativeCards(t *testing.T) {
	for idx := range NumClasses {
		rep := representative(idx)
		assert.Equal(t, idx, classIndex(rep[0], rep[1]), "class %s", classLabel(idx))
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	if testing.Short() {
		t.Skip("generation is slow")
	}

	a, err := Generate(200, 99, 4)
	require.NoError(t, err)
	b, err := Generate(200, 99, 8)
	require.NoError(t, err)

	// Worker count affects scheduling only, never the values.
	assert.Equal(t, a, b)

	v, err := Generate(200, 100, 4)
	require.NoError(t, err)
	assert.NotEqual(t, a, v, "different seeds should differ somewhere")
}

func TestGenerateRejectsBadIterations(t *testing.T) {
	_, err := Generate(0, 1, 1)
	assert.Error(t, err)
}
