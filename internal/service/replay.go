package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cartridge/replay/internal/buffer"
	"github.com/cartridge/replay/internal/events"
	"github.com/cartridge/replay/internal/metrics"
	"github.com/cartridge/replay/internal/storage"
	replayv1 "github.com/cartridge/replay/pkg/proto/replay/v1"
)

// ReplayService implements the Replay gRPC service
type ReplayService struct {
	replayv1.UnimplementedReplayServer
	backend   storage.Backend
	publisher events.Publisher
	metrics   *metrics.Collector
	logger    zerolog.Logger
}

// NewReplayService creates a new ReplayService
func NewReplayService(backend storage.Backend, publisher events.Publisher, collector *metrics.Collector, logger zerolog.Logger) *ReplayService {
	return &ReplayService{
		backend:   backend,
		publisher: publisher,
		metrics:   collector,
		logger:    logger,
	}
}

// CreateBuffer registers a buffer for an environment
func (s *ReplayService) CreateBuffer(ctx context.Context, req *replayv1.CreateBufferRequest) (*replayv1.CreateBufferResponse, error) {
	if req.EnvId == "" {
		return nil, status.Error(codes.InvalidArgument, "env_id is required")
	}
	if req.Capacity == 0 {
		return nil, status.Error(codes.InvalidArgument, "capacity must be positive")
	}

	cfg := storage.BufferConfig{
		EnvID:       req.EnvId,
		Capacity:    int(req.Capacity),
		ObsDim:      int(req.ObsDim),
		ActDim:      int(req.ActDim),
		Prioritized: req.Prioritized,
		Alpha:       req.Alpha,
		Episodic:    req.Episodic,
		NStep:       int(req.NStep),
		Gamma:       req.Gamma,
	}

	id, err := s.backend.CreateBuffer(ctx, cfg)
	if err != nil {
		return nil, statusFromError(err)
	}

	if err := s.publisher.PublishBufferEvent(ctx, events.BufferEvent{
		BufferID: id,
		EnvID:    req.EnvId,
		Event:    events.EventBufferCreated,
		Capacity: cfg.Capacity,
	}); err != nil {
		s.logger.Warn().Err(err).Str("env_id", req.EnvId).Msg("Failed to publish buffer created event")
	}

	s.logger.Info().
		Str("buffer_id", id).
		Str("env_id", req.EnvId).
		Int("capacity", cfg.Capacity).
		Bool("prioritized", cfg.Prioritized).
		Bool("episodic", cfg.Episodic).
		Msg("Buffer created")

	return &replayv1.CreateBufferResponse{BufferId: id}, nil
}

// Append writes a batch of transitions to a buffer
func (s *ReplayService) Append(ctx context.Context, req *replayv1.AppendRequest) (*replayv1.AppendResponse, error) {
	if req.Batch == nil {
		return nil, status.Error(codes.InvalidArgument, "batch is required")
	}

	start := time.Now()
	stored, err := s.backend.Append(ctx, storage.AppendRequest{
		EnvID:      req.EnvId,
		Batch:      protoToStorageBatch(req.Batch),
		Priorities: req.Priorities,
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	s.metrics.BatchAppended(req.EnvId, int(req.Batch.Count), stored, time.Since(start))

	return &replayv1.AppendResponse{StoredSize: uint32(stored)}, nil
}

// Sample draws a training batch
func (s *ReplayService) Sample(ctx context.Context, req *replayv1.SampleRequest) (*replayv1.SampleResponse, error) {
	if req.BatchSize == 0 {
		return nil, status.Error(codes.InvalidArgument, "batch_size must be positive")
	}

	start := time.Now()
	res, err := s.backend.Sample(ctx, storage.SampleRequest{
		EnvID:     req.EnvId,
		BatchSize: int(req.BatchSize),
		Beta:      req.Beta,
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	s.metrics.BatchSampled(req.EnvId, int(req.BatchSize), req.Beta, time.Since(start))

	resp := &replayv1.SampleResponse{
		Batch:          storageToProtoBatch(res.Batch),
		Indexes:        toUint32(res.Indexes),
		Weights:        res.Weights,
		NstepReturns:   res.NStepReturns,
		NstepDiscounts: res.NStepDiscounts,
		NstepNextObs:   res.NStepNextObs,
		NstepSteps:     toUint32(res.NStepSteps),
		NstepTerminal:  res.NStepTerminal,
	}
	return resp, nil
}

// UpdatePriorities rewrites priorities after a learner step
func (s *ReplayService) UpdatePriorities(ctx context.Context, req *replayv1.UpdatePrioritiesRequest) (*replayv1.UpdatePrioritiesResponse, error) {
	if len(req.Indexes) != len(req.Priorities) {
		return nil, status.Error(codes.InvalidArgument, "indexes and priorities must have same length")
	}

	err := s.backend.UpdatePriorities(ctx, req.EnvId, toInt(req.Indexes), req.Priorities)
	if err != nil {
		return nil, statusFromError(err)
	}
	s.metrics.PrioritiesUpdated(req.EnvId, len(req.Indexes))

	return &replayv1.UpdatePrioritiesResponse{
		UpdatedCount: uint32(len(req.Indexes)),
	}, nil
}

// GetEpisode reads one complete episode
func (s *ReplayService) GetEpisode(ctx context.Context, req *replayv1.GetEpisodeRequest) (*replayv1.GetEpisodeResponse, error) {
	ep, err := s.backend.GetEpisode(ctx, req.EnvId, int(req.EpisodeId))
	if err != nil {
		return nil, statusFromError(err)
	}

	resp := &replayv1.GetEpisodeResponse{Length: uint32(ep.Length)}
	if ep.Length > 0 {
		resp.Batch = storageToProtoBatch(ep.Batch)
	}
	return resp, nil
}

// DeleteEpisode removes an episode and compacts the buffer
func (s *ReplayService) DeleteEpisode(ctx context.Context, req *replayv1.DeleteEpisodeRequest) (*replayv1.DeleteEpisodeResponse, error) {
	removed, err := s.backend.DeleteEpisode(ctx, req.EnvId, int(req.EpisodeId))
	if err != nil {
		return nil, statusFromError(err)
	}
	s.metrics.EpisodeDeleted(req.EnvId, int(req.EpisodeId), removed)

	if removed > 0 {
		if err := s.publisher.PublishEpisodeEvent(ctx, events.EpisodeEvent{
			EnvID:     req.EnvId,
			EpisodeID: int(req.EpisodeId),
			Event:     events.EventEpisodeDeleted,
			Length:    removed,
		}); err != nil {
			s.logger.Warn().Err(err).Str("env_id", req.EnvId).Msg("Failed to publish episode deleted event")
		}
	}

	return &replayv1.DeleteEpisodeResponse{RemovedCount: uint32(removed)}, nil
}

// GetStats reports per-buffer statistics
func (s *ReplayService) GetStats(ctx context.Context, req *replayv1.GetStatsRequest) (*replayv1.GetStatsResponse, error) {
	stats, err := s.backend.GetStats(ctx, req.EnvId)
	if err != nil {
		return nil, statusFromError(err)
	}

	buffers := make([]*replayv1.BufferStats, len(stats))
	for i, st := range stats {
		buffers[i] = &replayv1.BufferStats{
			BufferId:    st.BufferID,
			EnvId:       st.EnvID,
			Capacity:    uint32(st.Capacity),
			StoredSize:  uint32(st.StoredSize),
			NextIndex:   uint32(st.NextIndex),
			Episodes:    uint32(st.Episodes),
			MaxPriority: st.MaxPriority,
			Prioritized: st.Prioritized,
			Episodic:    st.Episodic,
		}
	}
	return &replayv1.GetStatsResponse{Buffers: buffers}, nil
}

// Clear resets a buffer to empty
func (s *ReplayService) Clear(ctx context.Context, req *replayv1.ClearRequest) (*replayv1.ClearResponse, error) {
	if err := s.backend.Clear(ctx, req.EnvId); err != nil {
		return nil, statusFromError(err)
	}

	if err := s.publisher.PublishBufferEvent(ctx, events.BufferEvent{
		EnvID: req.EnvId,
		Event: events.EventBufferCleared,
	}); err != nil {
		s.logger.Warn().Err(err).Str("env_id", req.EnvId).Msg("Failed to publish buffer cleared event")
	}

	return &replayv1.ClearResponse{}, nil
}

// statusFromError maps storage and buffer errors onto gRPC status codes.
func statusFromError(err error) error {
	switch {
	case errors.Is(err, storage.ErrBufferNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, storage.ErrBufferExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, storage.ErrNotEpisodic), errors.Is(err, storage.ErrNotPrioritized):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, buffer.ErrEmptyBuffer), errors.Is(err, buffer.ErrDegenerateDistribution):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, buffer.ErrCapacityExceeded):
		return status.Error(codes.ResourceExhausted, err.Error())
	case errors.Is(err, buffer.ErrInvalidPriority), errors.Is(err, buffer.ErrLengthMismatch):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// Conversion functions

func protoToStorageBatch(b *replayv1.TransitionBatch) storage.Batch {
	return storage.Batch{
		Count:   int(b.Count),
		Obs:     b.Obs,
		Act:     b.Act,
		Rew:     b.Rew,
		NextObs: b.NextObs,
		Done:    b.Done,
	}
}

func storageToProtoBatch(b storage.Batch) *replayv1.TransitionBatch {
	return &replayv1.TransitionBatch{
		Count:   uint32(b.Count),
		Obs:     b.Obs,
		Act:     b.Act,
		Rew:     b.Rew,
		NextObs: b.NextObs,
		Done:    b.Done,
	}
}

func toUint32(in []int) []uint32 {
	if in == nil {
		return nil
	}
	out := make([]uint32, len(in))
	for i, v := range in {
		out[i] = uint32(v)
	}
	return out
}

func toInt(in []uint32) []int {
	out := make([]int, len(in))
	for i, v := range in {
		out[i] = int(v)
	}
	return out
}
