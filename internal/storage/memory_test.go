package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartridge/replay/internal/buffer"
)

func testBatch(base float64, n, obsDim, actDim int) Batch {
	b := Batch{
		Count:   n,
		Obs:     make([]float64, n*obsDim),
		Act:     make([]float64, n*actDim),
		Rew:     make([]float64, n),
		NextObs: make([]float64, n*obsDim),
		Done:    make([]float64, n),
	}
	for i := range b.Obs {
		b.Obs[i] = base + float64(i)
		b.NextObs[i] = base + float64(i) + 0.5
	}
	for i := range b.Act {
		b.Act[i] = base + float64(i)
	}
	for i := 0; i < n; i++ {
		b.Rew[i] = 1
	}
	return b
}

func TestMemoryBackend_CreateBuffer(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryBackend()

	id, err := m.CreateBuffer(ctx, BufferConfig{EnvID: "cartpole", Capacity: 32, ObsDim: 4, ActDim: 1})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	_, err = m.CreateBuffer(ctx, BufferConfig{EnvID: "cartpole", Capacity: 32, ObsDim: 4, ActDim: 1})
	assert.ErrorIs(t, err, ErrBufferExists)

	_, err = m.CreateBuffer(ctx, BufferConfig{Capacity: 32, ObsDim: 4, ActDim: 1})
	assert.Error(t, err, "env_id is required")

	_, err = m.CreateBuffer(ctx, BufferConfig{EnvID: "bad", Capacity: 32, ObsDim: 4, ActDim: 1, Prioritized: true, Episodic: true})
	assert.Error(t, err)
}

func TestMemoryBackend_AppendAndSample(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryBackend()

	_, err := m.CreateBuffer(ctx, BufferConfig{EnvID: "cartpole", Capacity: 16, ObsDim: 2, ActDim: 1})
	require.NoError(t, err)

	stored, err := m.Append(ctx, AppendRequest{EnvID: "cartpole", Batch: testBatch(0, 8, 2, 1)})
	require.NoError(t, err)
	assert.Equal(t, 8, stored)

	// The stored size accumulates across appends and saturates at capacity
	// once the ring wraps.
	stored, err = m.Append(ctx, AppendRequest{EnvID: "cartpole", Batch: testBatch(100, 8, 2, 1)})
	require.NoError(t, err)
	assert.Equal(t, 16, stored)

	stored, err = m.Append(ctx, AppendRequest{EnvID: "cartpole", Batch: testBatch(200, 4, 2, 1)})
	require.NoError(t, err)
	assert.Equal(t, 16, stored)

	res, err := m.Sample(ctx, SampleRequest{EnvID: "cartpole", BatchSize: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, res.Batch.Count)
	assert.Len(t, res.Indexes, 4)
	assert.Equal(t, []float64{1, 1, 1, 1}, res.Weights)
	assert.Len(t, res.Batch.Obs, 8)
	assert.Nil(t, res.NStepReturns)

	_, err = m.Append(ctx, AppendRequest{EnvID: "nope", Batch: testBatch(0, 1, 2, 1)})
	assert.ErrorIs(t, err, ErrBufferNotFound)

	_, err = m.Sample(ctx, SampleRequest{EnvID: "nope", BatchSize: 4})
	assert.ErrorIs(t, err, ErrBufferNotFound)
}

func TestMemoryBackend_SampleEmpty(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryBackend()

	_, err := m.CreateBuffer(ctx, BufferConfig{EnvID: "cartpole", Capacity: 16, ObsDim: 2, ActDim: 1})
	require.NoError(t, err)

	_, err = m.Sample(ctx, SampleRequest{EnvID: "cartpole", BatchSize: 4})
	assert.ErrorIs(t, err, buffer.ErrEmptyBuffer)
}

func TestMemoryBackend_Prioritized(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryBackend()

	_, err := m.CreateBuffer(ctx, BufferConfig{
		EnvID: "atari", Capacity: 16, ObsDim: 2, ActDim: 1,
		Prioritized: true, Alpha: 0.6,
	})
	require.NoError(t, err)

	_, err = m.Append(ctx, AppendRequest{
		EnvID:      "atari",
		Batch:      testBatch(0, 4, 2, 1),
		Priorities: []float64{0.5, 1.0, 2.0, 4.0},
	})
	require.NoError(t, err)

	res, err := m.Sample(ctx, SampleRequest{EnvID: "atari", BatchSize: 4, Beta: 0.4})
	require.NoError(t, err)
	assert.Len(t, res.Weights, 4)
	for _, w := range res.Weights {
		assert.Greater(t, w, 0.0)
		assert.LessOrEqual(t, w, 1.0)
	}

	require.NoError(t, m.UpdatePriorities(ctx, "atari", res.Indexes, []float64{1, 1, 1, 1}))

	err = m.UpdatePriorities(ctx, "atari", []int{0}, []float64{-1})
	assert.ErrorIs(t, err, buffer.ErrInvalidPriority)

	stats, err := m.GetStats(ctx, "atari")
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.True(t, stats[0].Prioritized)
	assert.InDelta(t, 4.0, stats[0].MaxPriority, 1e-9)
}

func TestMemoryBackend_UpdatePrioritiesWrongFlavor(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryBackend()

	_, err := m.CreateBuffer(ctx, BufferConfig{EnvID: "cartpole", Capacity: 16, ObsDim: 2, ActDim: 1})
	require.NoError(t, err)

	err = m.UpdatePriorities(ctx, "cartpole", []int{0}, []float64{1})
	assert.ErrorIs(t, err, ErrNotPrioritized)
}

func TestMemoryBackend_NStepSample(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryBackend()

	_, err := m.CreateBuffer(ctx, BufferConfig{
		EnvID: "cartpole", Capacity: 32, ObsDim: 2, ActDim: 1,
		NStep: 4, Gamma: 0.99,
	})
	require.NoError(t, err)

	b := testBatch(0, 8, 2, 1)
	b.Done[7] = 1
	_, err = m.Append(ctx, AppendRequest{EnvID: "cartpole", Batch: b})
	require.NoError(t, err)

	res, err := m.Sample(ctx, SampleRequest{EnvID: "cartpole", BatchSize: 4})
	require.NoError(t, err)
	require.Len(t, res.NStepReturns, 4)
	require.Len(t, res.NStepDiscounts, 4)
	require.Len(t, res.NStepNextObs, 4*2)
	require.Len(t, res.NStepSteps, 4)
	require.Len(t, res.NStepTerminal, 4)
	for k := range res.NStepSteps {
		assert.GreaterOrEqual(t, res.NStepSteps[k], 1)
		assert.LessOrEqual(t, res.NStepSteps[k], 4)
	}
}

func TestMemoryBackend_Episodic(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryBackend()

	_, err := m.CreateBuffer(ctx, BufferConfig{
		EnvID: "maze", Capacity: 32, ObsDim: 2, ActDim: 1, Episodic: true,
	})
	require.NoError(t, err)

	b := testBatch(0, 5, 2, 1)
	b.Done[4] = 1
	_, err = m.Append(ctx, AppendRequest{EnvID: "maze", Batch: b})
	require.NoError(t, err)

	_, err = m.Append(ctx, AppendRequest{EnvID: "maze", Batch: testBatch(100, 3, 2, 1)})
	require.NoError(t, err)

	ep, err := m.GetEpisode(ctx, "maze", 0)
	require.NoError(t, err)
	assert.Equal(t, 5, ep.Length)
	assert.Len(t, ep.Batch.Obs, 10)

	missing, err := m.GetEpisode(ctx, "maze", 99)
	require.NoError(t, err)
	assert.Equal(t, 0, missing.Length)

	removed, err := m.DeleteEpisode(ctx, "maze", 0)
	require.NoError(t, err)
	assert.Equal(t, 5, removed)

	stats, err := m.GetStats(ctx, "maze")
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, 3, stats[0].StoredSize)
	assert.Equal(t, 1, stats[0].Episodes)

	// Sampling is not defined for episodic buffers.
	_, err = m.Sample(ctx, SampleRequest{EnvID: "maze", BatchSize: 2})
	assert.Error(t, err)

	// Episode operations on a non-episodic buffer fail.
	_, err = m.CreateBuffer(ctx, BufferConfig{EnvID: "flat", Capacity: 8, ObsDim: 2, ActDim: 1})
	require.NoError(t, err)
	_, err = m.GetEpisode(ctx, "flat", 0)
	assert.ErrorIs(t, err, ErrNotEpisodic)
	_, err = m.DeleteEpisode(ctx, "flat", 0)
	assert.ErrorIs(t, err, ErrNotEpisodic)
}

func TestMemoryBackend_StatsAndClear(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryBackend()

	_, err := m.CreateBuffer(ctx, BufferConfig{EnvID: "a", Capacity: 8, ObsDim: 1, ActDim: 1})
	require.NoError(t, err)
	_, err = m.CreateBuffer(ctx, BufferConfig{EnvID: "b", Capacity: 8, ObsDim: 1, ActDim: 1})
	require.NoError(t, err)

	_, err = m.Append(ctx, AppendRequest{EnvID: "a", Batch: testBatch(0, 3, 1, 1)})
	require.NoError(t, err)

	all, err := m.GetStats(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	one, err := m.GetStats(ctx, "a")
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, 3, one[0].StoredSize)
	assert.Equal(t, 8, one[0].Capacity)

	require.NoError(t, m.Clear(ctx, "a"))
	one, err = m.GetStats(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 0, one[0].StoredSize)

	_, err = m.GetStats(ctx, "missing")
	assert.ErrorIs(t, err, ErrBufferNotFound)
}

func TestMemoryBackend_Close(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryBackend()

	_, err := m.CreateBuffer(ctx, BufferConfig{EnvID: "a", Capacity: 8, ObsDim: 1, ActDim: 1})
	require.NoError(t, err)
	require.NoError(t, m.Close())

	_, err = m.Append(ctx, AppendRequest{EnvID: "a", Batch: testBatch(0, 1, 1, 1)})
	assert.Error(t, err)
}
