package buffer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrioritizedSampler_RejectsNegativePriority(t *testing.T) {
	s, err := NewPrioritizedSampler(16, 0.6)
	require.NoError(t, err)

	err = s.SetPriority(0, -0.1)
	assert.ErrorIs(t, err, ErrInvalidPriority)
	assert.Equal(t, 0.0, s.Total())
}

func TestPrioritizedSampler_MaxPriorityTracksRawValues(t *testing.T) {
	s, err := NewPrioritizedSampler(16, 0.6)
	require.NoError(t, err)

	// Default before anything was set
	assert.Equal(t, 1.0, s.MaxPriority())

	require.NoError(t, s.SetPriority(0, 0.5))
	assert.Equal(t, 1.0, s.MaxPriority())

	require.NoError(t, s.SetPriority(1, 3.0))
	assert.Equal(t, 3.0, s.MaxPriority())

	// Lowering a slot does not lower the running max
	require.NoError(t, s.SetPriority(1, 0.1))
	assert.Equal(t, 3.0, s.MaxPriority())
}

func TestPrioritizedSampler_StoresAlphaPower(t *testing.T) {
	s, err := NewPrioritizedSampler(8, 0.5)
	require.NoError(t, err)

	require.NoError(t, s.SetPriority(2, 4.0))
	assert.InDelta(t, 2.0, s.tree.Get(2), 1e-12) // 4^0.5
}

func TestPrioritizedSampler_BoundarySpillKeepsWeightsFinite(t *testing.T) {
	s, err := NewPrioritizedSampler(4, 1.0)
	require.NoError(t, err)
	s.rng = rand.New(rand.NewSource(7))

	// Slots 0 and 1 are occupied, slot 1 with zero priority, and a stale
	// priority beyond the occupied range pulls most draws past storedSize.
	// Clamping must land on a leaf with mass, never on slot 1.
	require.NoError(t, s.SetPriority(0, 1.0))
	require.NoError(t, s.SetPriority(1, 0.0))
	require.NoError(t, s.SetPriority(3, 5.0))

	indexes, weights, err := s.Sample(64, 0.5, 2)
	require.NoError(t, err)
	for k, idx := range indexes {
		assert.Equal(t, 0, idx)
		assert.False(t, math.IsNaN(weights[k]) || math.IsInf(weights[k], 0))
		assert.Greater(t, weights[k], 0.0)
		assert.LessOrEqual(t, weights[k], 1.0)
	}
}

func TestPrioritizedSampler_AllOccupiedMassZeroIsDegenerate(t *testing.T) {
	s, err := NewPrioritizedSampler(4, 1.0)
	require.NoError(t, err)
	s.rng = rand.New(rand.NewSource(7))

	// The only mass sits beyond the occupied range, so every draw spills and
	// no occupied leaf can absorb it.
	require.NoError(t, s.SetPriority(3, 5.0))

	_, _, err = s.Sample(8, 0.5, 2)
	assert.ErrorIs(t, err, ErrDegenerateDistribution)
}

func TestPrioritizedSampler_DefaultPrioritiesWrap(t *testing.T) {
	s, err := NewPrioritizedSampler(8, 1.0)
	require.NoError(t, err)
	require.NoError(t, s.SetPriority(0, 2.0)) // max now 2.0

	s.SetDefaultPriorities(6, 4) // slots 6,7,0,1

	assert.Equal(t, 2.0, s.tree.Get(6))
	assert.Equal(t, 2.0, s.tree.Get(7))
	assert.Equal(t, 2.0, s.tree.Get(0))
	assert.Equal(t, 2.0, s.tree.Get(1))
	assert.Equal(t, 0.0, s.tree.Get(2))
}

func TestPrioritizedSampler_SampleEmptyFails(t *testing.T) {
	s, err := NewPrioritizedSampler(8, 0.6)
	require.NoError(t, err)

	_, _, err = s.Sample(4, 0.4, 0)
	assert.ErrorIs(t, err, ErrEmptyBuffer)
}

func TestPrioritizedSampler_SampleDegenerateFails(t *testing.T) {
	s, err := NewPrioritizedSampler(8, 0.6)
	require.NoError(t, err)
	require.NoError(t, s.SetPriority(0, 0.0))

	_, _, err = s.Sample(4, 0.4, 1)
	assert.ErrorIs(t, err, ErrDegenerateDistribution)
}

func TestPrioritizedSampler_UniformPrioritiesSampleUniformly(t *testing.T) {
	const stored = 16
	s, err := NewPrioritizedSampler(stored, 0.7)
	require.NoError(t, err)
	s.rng = rand.New(rand.NewSource(42))

	for i := 0; i < stored; i++ {
		require.NoError(t, s.SetPriority(i, 0.5))
	}

	const draws = 32000
	counts := make([]int, stored)
	indexes, _, err := s.Sample(draws, 0.4, stored)
	require.NoError(t, err)
	for _, idx := range indexes {
		counts[idx]++
	}

	// Chi-square against the uniform expectation; 15 dof, p=0.001 cutoff ~37.7
	expected := float64(draws) / stored
	chi2 := 0.0
	for _, c := range counts {
		d := float64(c) - expected
		chi2 += d * d / expected
	}
	assert.Less(t, chi2, 37.7)
}

func TestPrioritizedSampler_HugePriorityDominates(t *testing.T) {
	const stored = 16
	s, err := NewPrioritizedSampler(stored, 0.7)
	require.NoError(t, err)
	s.rng = rand.New(rand.NewSource(9))

	for i := 0; i < stored; i++ {
		require.NoError(t, s.SetPriority(i, 0.5))
	}
	require.NoError(t, s.SetPriority(3, 1e10))

	const draws = 10000
	indexes, _, err := s.Sample(draws, 0.4, stored)
	require.NoError(t, err)

	hits := 0
	for _, idx := range indexes {
		if idx == 3 {
			hits++
		}
	}
	assert.Greater(t, float64(hits)/draws, 0.99)
}

func TestPrioritizedSampler_BetaZeroGivesUnitWeights(t *testing.T) {
	s, err := NewPrioritizedSampler(8, 0.6)
	require.NoError(t, err)
	s.rng = rand.New(rand.NewSource(5))

	priorities := []float64{0.1, 2.0, 0.7, 5.5}
	for i, p := range priorities {
		require.NoError(t, s.SetPriority(i, p))
	}

	_, weights, err := s.Sample(64, 0, len(priorities))
	require.NoError(t, err)
	for _, w := range weights {
		assert.Equal(t, 1.0, w)
	}
}

func TestPrioritizedSampler_WeightsNormalizedByBatchMax(t *testing.T) {
	const stored = 8
	s, err := NewPrioritizedSampler(stored, 1.0)
	require.NoError(t, err)
	s.rng = rand.New(rand.NewSource(11))

	for i := 0; i < stored; i++ {
		require.NoError(t, s.SetPriority(i, float64(i+1)))
	}

	indexes, weights, err := s.Sample(256, 0.5, stored)
	require.NoError(t, err)

	// Recompute raw weights and check the batch-max normalization exactly.
	total := s.Total()
	raw := make([]float64, len(indexes))
	maxRaw := 0.0
	for k, idx := range indexes {
		p := s.tree.Get(idx) / total
		raw[k] = math.Pow(float64(stored)*p, -0.5)
		if raw[k] > maxRaw {
			maxRaw = raw[k]
		}
	}
	maxW := 0.0
	for k, w := range weights {
		assert.Greater(t, w, 0.0)
		assert.LessOrEqual(t, w, 1.0)
		assert.InDelta(t, raw[k]/maxRaw, w, 1e-9)
		if w > maxW {
			maxW = w
		}
	}
	assert.Equal(t, 1.0, maxW)
}

func TestPrioritizedSampler_UpdatePrioritiesLengthMismatch(t *testing.T) {
	s, err := NewPrioritizedSampler(8, 0.6)
	require.NoError(t, err)

	err = s.UpdatePriorities([]int{0, 1}, []float64{1.0})
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestPrioritizedSampler_UpdatePrioritiesAllOrNothing(t *testing.T) {
	s, err := NewPrioritizedSampler(8, 1.0)
	require.NoError(t, err)
	require.NoError(t, s.SetPriority(0, 1.0))
	require.NoError(t, s.SetPriority(1, 1.0))

	err = s.UpdatePriorities([]int{0, 1}, []float64{5.0, -1.0})
	assert.ErrorIs(t, err, ErrInvalidPriority)

	// Nothing was mutated, the first entry included.
	assert.Equal(t, 1.0, s.tree.Get(0))
	assert.Equal(t, 1.0, s.tree.Get(1))
	assert.Equal(t, 1.0, s.MaxPriority())
}

func TestPrioritizedSampler_UpdatePrioritiesRaisesMax(t *testing.T) {
	s, err := NewPrioritizedSampler(8, 1.0)
	require.NoError(t, err)

	require.NoError(t, s.UpdatePriorities([]int{2, 4}, []float64{0.3, 7.0}))
	assert.Equal(t, 7.0, s.MaxPriority())
	assert.Equal(t, 0.3, s.tree.Get(2))
	assert.Equal(t, 7.0, s.tree.Get(4))
}

func TestPrioritizedSampler_Clear(t *testing.T) {
	s, err := NewPrioritizedSampler(8, 0.6)
	require.NoError(t, err)
	require.NoError(t, s.SetPriority(0, 9.0))

	s.Clear()

	assert.Equal(t, 1.0, s.MaxPriority())
	assert.Equal(t, 0.0, s.Total())
}

func TestPrioritizedSampler_InvalidConstruction(t *testing.T) {
	_, err := NewPrioritizedSampler(0, 0.6)
	assert.Error(t, err)
	_, err = NewPrioritizedSampler(8, -0.1)
	assert.Error(t, err)
	_, err = NewPrioritizedSampler(8, 1.5)
	assert.Error(t, err)
}
