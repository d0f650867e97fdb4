package usecase

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"banner-rotator/internal/core/port"
)

// TestPickWeightedDistribution checks that empirical selection frequency
// converges to weight/totalWeight: a weight-10 banner is picked ten times
// as often as a weight-1 banner in the same candidate set.
func TestPickWeightedDistribution(t *testing.T) {
	candidates := []port.Candidate{
		{BannerID: 1, Weight: 1},
		{BannerID: 2, Weight: 10},
	}

	rng := rand.New(rand.NewSource(42))
	const trials = 44000

	counts := make(map[int64]int)
	for i := 0; i < trials; i++ {
		id, err := pickWeighted(candidates, rng.Int63n)
		require.NoError(t, err)
		counts[id]++
	}

	freq1 := float64(counts[1]) / trials
	freq2 := float64(counts[2]) / trials
	require.InDelta(t, 1.0/11.0, freq1, 0.01)
	require.InDelta(t, 10.0/11.0, freq2, 0.01)
	require.Positive(t, counts[1], "a weight >= 1 candidate must never have probability 0")
}

// TestPickWeightedBoundaries pins the prefix-sum mapping: the draw value
// indexes the candidate whose cumulative weight first exceeds it.
func TestPickWeightedBoundaries(t *testing.T) {
	candidates := []port.Candidate{
		{BannerID: 10, Weight: 2},
		{BannerID: 20, Weight: 3},
		{BannerID: 30, Weight: 5},
	}

	cases := []struct {
		draw int64
		want int64
	}{
		{0, 10},
		{1, 10},
		{2, 20},
		{4, 20},
		{5, 30},
		{9, 30},
	}
	for _, tc := range cases {
		id, err := pickWeighted(candidates, func(n int64) int64 {
			require.Equal(t, int64(10), n)
			return tc.draw
		})
		require.NoError(t, err)
		require.Equal(t, tc.want, id, "draw %d", tc.draw)
	}
}

func TestPickWeightedSingleCandidate(t *testing.T) {
	candidates := []port.Candidate{{BannerID: 5, Weight: 7}}

	id, err := pickWeighted(candidates, func(n int64) int64 { return n - 1 })
	require.NoError(t, err)
	require.Equal(t, int64(5), id)
}

func TestPickWeightedInvalidWeight(t *testing.T) {
	for _, weight := range []int32{0, -1, 11} {
		_, err := pickWeighted([]port.Candidate{{BannerID: 1, Weight: weight}}, func(n int64) int64 { return 0 })
		require.ErrorIs(t, err, port.ErrInvalidArgument, "weight %d", weight)
	}
}
