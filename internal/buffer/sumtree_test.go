package buffer

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumTree_SetAndTotal(t *testing.T) {
	tree := NewSumTree(8)

	tree.Set(0, 1.0)
	tree.Set(3, 2.5)
	tree.Set(7, 0.5)

	assert.InDelta(t, 4.0, tree.Total(), 1e-12)
	assert.Equal(t, 2.5, tree.Get(3))
	assert.Equal(t, 0.0, tree.Get(1))

	// Overwrite updates the root by the difference
	tree.Set(3, 1.0)
	assert.InDelta(t, 2.5, tree.Total(), 1e-12)
}

func TestSumTree_NonPowerOfTwoCapacity(t *testing.T) {
	tree := NewSumTree(5)

	for i := 0; i < 5; i++ {
		tree.Set(i, 1.0)
	}
	assert.InDelta(t, 5.0, tree.Total(), 1e-12)
}

func TestSumTree_RootEqualsLeafSumUnderRandomUpdates(t *testing.T) {
	const capacity = 64
	tree := NewSumTree(capacity)
	rng := rand.New(rand.NewSource(7))

	leaves := make([]float64, capacity)
	for step := 0; step < 5000; step++ {
		i := rng.Intn(capacity)
		v := rng.Float64() * 10
		leaves[i] = v
		tree.Set(i, v)
	}

	want := 0.0
	for i, v := range leaves {
		require.Equal(t, v, tree.Get(i))
		want += v
	}
	assert.InDelta(t, want, tree.Total(), 1e-9)
}

func TestSumTree_FindSelectsByCumulativeMass(t *testing.T) {
	tree := NewSumTree(4)
	tree.Set(0, 1.0)
	tree.Set(1, 2.0)
	tree.Set(2, 3.0)
	tree.Set(3, 4.0)

	// Cumulative boundaries: [0,1) -> 0, [1,3) -> 1, [3,6) -> 2, [6,10) -> 3
	assert.Equal(t, 0, tree.Find(0.0))
	assert.Equal(t, 0, tree.Find(0.999))
	assert.Equal(t, 1, tree.Find(1.0))
	assert.Equal(t, 2, tree.Find(3.0))
	assert.Equal(t, 2, tree.Find(5.999))
	assert.Equal(t, 3, tree.Find(6.0))
	assert.Equal(t, 3, tree.Find(9.999))
}

func TestSumTree_FindSkipsZeroLeaves(t *testing.T) {
	tree := NewSumTree(8)
	tree.Set(2, 1.0)
	tree.Set(5, 1.0)

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		idx := tree.Find(rng.Float64() * tree.Total())
		assert.Contains(t, []int{2, 5}, idx)
	}
}

func TestSumTree_SetRangeWrapsAtCapacity(t *testing.T) {
	tree := NewSumTree(6)

	tree.SetRange(4, 4, 6, 2.0)

	// Slots 4,5,0,1 touched; 2,3 untouched.
	assert.Equal(t, 2.0, tree.Get(4))
	assert.Equal(t, 2.0, tree.Get(5))
	assert.Equal(t, 2.0, tree.Get(0))
	assert.Equal(t, 2.0, tree.Get(1))
	assert.Equal(t, 0.0, tree.Get(2))
	assert.Equal(t, 0.0, tree.Get(3))
	assert.InDelta(t, 8.0, tree.Total(), 1e-12)
}

func TestSumTree_Clear(t *testing.T) {
	tree := NewSumTree(4)
	tree.Set(1, 3.0)

	tree.Clear()

	assert.Equal(t, 0.0, tree.Total())
	assert.Equal(t, 0.0, tree.Get(1))
}
