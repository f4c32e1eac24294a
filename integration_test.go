package main

import (
	"context"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cartridge/replay/internal/events"
	"github.com/cartridge/replay/internal/metrics"
	"github.com/cartridge/replay/internal/service"
	"github.com/cartridge/replay/internal/storage"
	replayv1 "github.com/cartridge/replay/pkg/proto/replay/v1"
)

func newTestService(t *testing.T) (*service.ReplayService, storage.Backend) {
	t.Helper()
	backend := storage.NewMemoryBackend()
	t.Cleanup(func() { backend.Close() })

	logger := zerolog.New(os.Stdout).Level(zerolog.Disabled)
	svc := service.NewReplayService(backend, events.NoopPublisher{}, metrics.NewCollector(logger), logger)
	return svc, backend
}

// flatBatch builds a TransitionBatch with count transitions of the given
// dimensions, rewards all 1 and done flags from dones.
func flatBatch(count, obsDim, actDim int, dones []int) *replayv1.TransitionBatch {
	b := &replayv1.TransitionBatch{
		Count:   uint32(count),
		Obs:     make([]float64, count*obsDim),
		Act:     make([]float64, count*actDim),
		Rew:     make([]float64, count),
		NextObs: make([]float64, count*obsDim),
		Done:    make([]float64, count),
	}
	for i := range b.Obs {
		b.Obs[i] = float64(i)
		b.NextObs[i] = float64(i) + 0.5
	}
	for i := 0; i < count; i++ {
		b.Rew[i] = 1
	}
	for _, d := range dones {
		b.Done[d] = 1
	}
	return b
}

// TestReplayServiceIntegration drives the full service surface the way an
// actor/learner pair would.
func TestReplayServiceIntegration(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	t.Run("CreateBuffer", func(t *testing.T) {
		resp, err := svc.CreateBuffer(ctx, &replayv1.CreateBufferRequest{
			EnvId:    "cartpole",
			Capacity: 64,
			ObsDim:   4,
			ActDim:   1,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.BufferId)

		_, err = svc.CreateBuffer(ctx, &replayv1.CreateBufferRequest{
			EnvId:    "cartpole",
			Capacity: 64,
			ObsDim:   4,
			ActDim:   1,
		})
		require.Error(t, err)
		assert.Equal(t, codes.AlreadyExists, status.Code(err))
	})

	t.Run("Append", func(t *testing.T) {
		resp, err := svc.Append(ctx, &replayv1.AppendRequest{
			EnvId: "cartpole",
			Batch: flatBatch(16, 4, 1, nil),
		})
		require.NoError(t, err)
		assert.Equal(t, uint32(16), resp.StoredSize)

		// Mismatched field lengths are rejected.
		bad := flatBatch(4, 4, 1, nil)
		bad.Rew = bad.Rew[:2]
		_, err = svc.Append(ctx, &replayv1.AppendRequest{EnvId: "cartpole", Batch: bad})
		require.Error(t, err)
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("Sample", func(t *testing.T) {
		resp, err := svc.Sample(ctx, &replayv1.SampleRequest{
			EnvId:     "cartpole",
			BatchSize: 8,
		})
		require.NoError(t, err)
		assert.Equal(t, uint32(8), resp.Batch.Count)
		assert.Len(t, resp.Indexes, 8)
		assert.Len(t, resp.Weights, 8)
		for _, w := range resp.Weights {
			assert.Equal(t, 1.0, w)
		}
		for _, idx := range resp.Indexes {
			assert.Less(t, idx, uint32(16))
		}
	})

	t.Run("SampleUnknownEnv", func(t *testing.T) {
		_, err := svc.Sample(ctx, &replayv1.SampleRequest{
			EnvId:     "missing",
			BatchSize: 8,
		})
		require.Error(t, err)
		assert.Equal(t, codes.NotFound, status.Code(err))
	})

	t.Run("GetStats", func(t *testing.T) {
		resp, err := svc.GetStats(ctx, &replayv1.GetStatsRequest{EnvId: "cartpole"})
		require.NoError(t, err)
		require.Len(t, resp.Buffers, 1)
		assert.Equal(t, uint32(16), resp.Buffers[0].StoredSize)
		assert.Equal(t, uint32(64), resp.Buffers[0].Capacity)
	})

	t.Run("Clear", func(t *testing.T) {
		_, err := svc.Clear(ctx, &replayv1.ClearRequest{EnvId: "cartpole"})
		require.NoError(t, err)

		resp, err := svc.GetStats(ctx, &replayv1.GetStatsRequest{EnvId: "cartpole"})
		require.NoError(t, err)
		assert.Equal(t, uint32(0), resp.Buffers[0].StoredSize)

		// Empty buffer refuses to sample.
		_, err = svc.Sample(ctx, &replayv1.SampleRequest{EnvId: "cartpole", BatchSize: 4})
		require.Error(t, err)
		assert.Equal(t, codes.FailedPrecondition, status.Code(err))
	})
}

func TestReplayServicePrioritized(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateBuffer(ctx, &replayv1.CreateBufferRequest{
		EnvId:       "atari",
		Capacity:    32,
		ObsDim:      2,
		ActDim:      1,
		Prioritized: true,
		Alpha:       0.6,
	})
	require.NoError(t, err)

	_, err = svc.Append(ctx, &replayv1.AppendRequest{
		EnvId:      "atari",
		Batch:      flatBatch(8, 2, 1, nil),
		Priorities: []float64{1, 1, 1, 1, 2, 2, 4, 8},
	})
	require.NoError(t, err)

	resp, err := svc.Sample(ctx, &replayv1.SampleRequest{
		EnvId:     "atari",
		BatchSize: 8,
		Beta:      0.4,
	})
	require.NoError(t, err)
	require.Len(t, resp.Weights, 8)
	maxWeight := 0.0
	for _, w := range resp.Weights {
		assert.Greater(t, w, 0.0)
		if w > maxWeight {
			maxWeight = w
		}
	}
	assert.Equal(t, 1.0, maxWeight)

	_, err = svc.UpdatePriorities(ctx, &replayv1.UpdatePrioritiesRequest{
		EnvId:      "atari",
		Indexes:    resp.Indexes,
		Priorities: []float64{1, 1, 1, 1, 1, 1, 1, 1},
	})
	require.NoError(t, err)

	// Negative priority rejects the whole update.
	_, err = svc.UpdatePriorities(ctx, &replayv1.UpdatePrioritiesRequest{
		EnvId:      "atari",
		Indexes:    []uint32{0, 1},
		Priorities: []float64{1, -1},
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	stats, err := svc.GetStats(ctx, &replayv1.GetStatsRequest{EnvId: "atari"})
	require.NoError(t, err)
	assert.InDelta(t, 8.0, stats.Buffers[0].MaxPriority, 1e-9)
}

func TestReplayServiceNStep(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateBuffer(ctx, &replayv1.CreateBufferRequest{
		EnvId:    "cartpole",
		Capacity: 64,
		ObsDim:   3,
		ActDim:   1,
		NStep:    4,
		Gamma:    0.99,
	})
	require.NoError(t, err)

	_, err = svc.Append(ctx, &replayv1.AppendRequest{
		EnvId: "cartpole",
		Batch: flatBatch(16, 3, 1, []int{7, 15}),
	})
	require.NoError(t, err)

	resp, err := svc.Sample(ctx, &replayv1.SampleRequest{
		EnvId:     "cartpole",
		BatchSize: 6,
	})
	require.NoError(t, err)
	require.Len(t, resp.NstepReturns, 6)
	require.Len(t, resp.NstepDiscounts, 6)
	require.Len(t, resp.NstepNextObs, 6*3)
	require.Len(t, resp.NstepSteps, 6)
	require.Len(t, resp.NstepTerminal, 6)
	for k, steps := range resp.NstepSteps {
		assert.GreaterOrEqual(t, steps, uint32(1))
		assert.LessOrEqual(t, steps, uint32(4))
		// Rewards are all 1, so the undiscounted return is bounded by steps.
		assert.GreaterOrEqual(t, resp.NstepReturns[k], 1.0)
	}
}

func TestReplayServiceEpisodic(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateBuffer(ctx, &replayv1.CreateBufferRequest{
		EnvId:    "maze",
		Capacity: 32,
		ObsDim:   2,
		ActDim:   1,
		Episodic: true,
	})
	require.NoError(t, err)

	// Two closed episodes and one open.
	_, err = svc.Append(ctx, &replayv1.AppendRequest{
		EnvId: "maze",
		Batch: flatBatch(5, 2, 1, []int{4}),
	})
	require.NoError(t, err)
	_, err = svc.Append(ctx, &replayv1.AppendRequest{
		EnvId: "maze",
		Batch: flatBatch(3, 2, 1, []int{2}),
	})
	require.NoError(t, err)
	_, err = svc.Append(ctx, &replayv1.AppendRequest{
		EnvId: "maze",
		Batch: flatBatch(2, 2, 1, nil),
	})
	require.NoError(t, err)

	ep, err := svc.GetEpisode(ctx, &replayv1.GetEpisodeRequest{EnvId: "maze", EpisodeId: 1})
	require.NoError(t, err)
	assert.Equal(t, uint32(3), ep.Length)
	require.NotNil(t, ep.Batch)
	assert.Len(t, ep.Batch.Obs, 6)

	// Unknown episodes report zero length, not an error.
	missing, err := svc.GetEpisode(ctx, &replayv1.GetEpisodeRequest{EnvId: "maze", EpisodeId: 42})
	require.NoError(t, err)
	assert.Equal(t, uint32(0), missing.Length)

	del, err := svc.DeleteEpisode(ctx, &replayv1.DeleteEpisodeRequest{EnvId: "maze", EpisodeId: 0})
	require.NoError(t, err)
	assert.Equal(t, uint32(5), del.RemovedCount)

	stats, err := svc.GetStats(ctx, &replayv1.GetStatsRequest{EnvId: "maze"})
	require.NoError(t, err)
	assert.Equal(t, uint32(5), stats.Buffers[0].StoredSize)
	assert.Equal(t, uint32(2), stats.Buffers[0].Episodes)

	// Episode 1 shifted down to id 0 after deletion.
	ep, err = svc.GetEpisode(ctx, &replayv1.GetEpisodeRequest{EnvId: "maze", EpisodeId: 0})
	require.NoError(t, err)
	assert.Equal(t, uint32(3), ep.Length)
}
