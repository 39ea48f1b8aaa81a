package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"valuesprism/internal/catalog"
)

func TestDistribution_EmptyInput(t *testing.T) {
	dist := Distribution(nil)
	require.Len(t, dist, catalog.DomainCount)
	for _, d := range dist {
		assert.Zero(t, d.Count)
		assert.Zero(t, d.Percentage)
	}
}

func TestDistribution_CountsAndPercentages(t *testing.T) {
	// 3 integrity-character values, 1 courage-action.
	ids := []string{"integrity", "honesty", "honor", "courage"}
	dist := Distribution(ids)

	require.Len(t, dist, catalog.DomainCount)
	assert.Equal(t, "integrity-character", dist[0].DomainID)
	assert.Equal(t, 3, dist[0].Count)
	assert.Equal(t, 75, dist[0].Percentage)
	assert.Equal(t, "courage-action", dist[1].DomainID)
	assert.Equal(t, 1, dist[1].Count)
	assert.Equal(t, 25, dist[1].Percentage)

	sum := 0
	for _, d := range dist {
		sum += d.Count
	}
	assert.Equal(t, len(ids), sum)
}

func TestDistribution_PercentageSumNearHundred(t *testing.T) {
	ids := []string{"integrity", "courage", "care", "service", "excellence", "trust", "learning"}
	sum := 0
	for _, d := range Distribution(ids) {
		sum += d.Percentage
	}
	// Rounding tolerance: one point per populated domain.
	assert.InDelta(t, 100, sum, float64(len(ids)))
}

func TestDistribution_UnknownIDsIgnored(t *testing.T) {
	dist := Distribution([]string{"integrity", "not-a-value"})
	assert.Equal(t, 1, dist[0].Count)
	assert.Equal(t, 100, dist[0].Percentage)
}

func TestDistribution_DeterministicOrder(t *testing.T) {
	a := Distribution([]string{"integrity", "courage"})
	b := Distribution([]string{"courage", "integrity"})
	assert.Equal(t, a, b)
}

func TestValuesContext(t *testing.T) {
	ctx := ValuesContext([]string{"integrity", "bogus", "courage"})
	assert.Contains(t, ctx, "1. Integrity (Integrity & Character) - Alignment between words and actions")
	assert.Contains(t, ctx, "2. Courage (Courage & Action)")
	assert.NotContains(t, ctx, "bogus")
}

func TestSortingContext(t *testing.T) {
	tiers := Tiers{
		Very:     []string{"integrity", "honesty", "honor", "courage"},
		Somewhat: []string{"trust"},
		Less:     []string{"ambition", "recognition", "adventure"},
	}
	got := SortingContext(tiers)

	assert.Contains(t, got, "Very Important: 4 values")
	assert.Contains(t, got, "Somewhat Important: 1 values")
	assert.Contains(t, got, "Less Important: 3 values")
	assert.Contains(t, got, "Integrity & Character (75%)")
	// Excellence & Achievement holds 2/3 of "less" (>15%), Courage & Action 1/3.
	assert.Contains(t, got, "Excellence & Achievement")
	assert.NotContains(t, got, "None significantly deprioritized")
}

func TestSortingContext_Empty(t *testing.T) {
	got := SortingContext(Tiers{})
	assert.Contains(t, got, "Evenly distributed")
	assert.Contains(t, got, "None significantly deprioritized")
}
