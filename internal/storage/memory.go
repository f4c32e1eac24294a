package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/cartridge/replay/internal/buffer"
)

// Sentinel errors for buffer addressing; core validation errors pass through
// from the buffer package.
var (
	ErrBufferNotFound = errors.New("storage: no buffer for environment")
	ErrBufferExists   = errors.New("storage: buffer already exists for environment")
	ErrNotEpisodic    = errors.New("storage: buffer is not episodic")
	ErrNotPrioritized = errors.New("storage: buffer is not prioritized")
)

// managedBuffer is one environment's buffer. Exactly one of plain, pri or epi
// is non-nil, matching the configured flavor; nstep is optional.
type managedBuffer struct {
	id    string
	cfg   BufferConfig
	plain *buffer.ReplayBuffer
	pri   *buffer.PrioritizedReplayBuffer
	epi   *buffer.EpisodicBuffer
	nstep *buffer.NStepComputer
}

// MemoryBackend keeps every buffer in process memory, keyed by environment
// id. The map is guarded by one RWMutex; per-buffer synchronization lives in
// the buffer types themselves, so appends to different environments do not
// contend.
type MemoryBackend struct {
	mu      sync.RWMutex
	buffers map[string]*managedBuffer
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		buffers: make(map[string]*managedBuffer),
	}
}

// CreateBuffer implements Backend.CreateBuffer.
func (m *MemoryBackend) CreateBuffer(ctx context.Context, cfg BufferConfig) (string, error) {
	if cfg.EnvID == "" {
		return "", errors.New("storage: env_id is required")
	}
	if cfg.Prioritized && cfg.Episodic {
		return "", errors.New("storage: a buffer cannot be both prioritized and episodic")
	}
	if cfg.Episodic && cfg.NStep >= 1 {
		return "", errors.New("storage: n-step applies only to sampled buffers")
	}

	mb := &managedBuffer{
		id:  uuid.New().String(),
		cfg: cfg,
	}

	var err error
	switch {
	case cfg.Episodic:
		mb.epi, err = buffer.NewEpisodicBuffer(cfg.Capacity, cfg.ObsDim, cfg.ActDim)
	case cfg.Prioritized:
		mb.pri, err = buffer.NewPrioritizedReplayBuffer(cfg.Capacity, cfg.ObsDim, cfg.ActDim, cfg.Alpha)
	default:
		mb.plain, err = buffer.NewReplayBuffer(cfg.Capacity, cfg.ObsDim, cfg.ActDim)
	}
	if err != nil {
		return "", err
	}
	if cfg.NStep >= 1 {
		mb.nstep, err = buffer.NewNStepComputer(cfg.ObsDim, cfg.NStep, cfg.Gamma)
		if err != nil {
			return "", err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.buffers[cfg.EnvID]; exists {
		return "", fmt.Errorf("%w: %s", ErrBufferExists, cfg.EnvID)
	}
	m.buffers[cfg.EnvID] = mb
	return mb.id, nil
}

// Append implements Backend.Append.
func (m *MemoryBackend) Append(ctx context.Context, req AppendRequest) (int, error) {
	mb, err := m.lookup(req.EnvID)
	if err != nil {
		return 0, err
	}

	// The buffers report the starting write index; callers care about the
	// new stored size.
	b := toCoreBatch(req.Batch)
	switch {
	case mb.epi != nil:
		if _, err := mb.epi.Add(b, req.Batch.Count); err != nil {
			return 0, err
		}
		return mb.epi.StoredSize(), nil
	case mb.pri != nil:
		if len(req.Priorities) > 0 {
			if _, err := mb.pri.AddWithPriorities(b, req.Priorities, req.Batch.Count); err != nil {
				return 0, err
			}
		} else if _, err := mb.pri.Add(b, req.Batch.Count); err != nil {
			return 0, err
		}
		return mb.pri.StoredSize(), nil
	default:
		if _, err := mb.plain.Add(b, req.Batch.Count); err != nil {
			return 0, err
		}
		return mb.plain.StoredSize(), nil
	}
}

// Sample implements Backend.Sample.
func (m *MemoryBackend) Sample(ctx context.Context, req SampleRequest) (*SampleResult, error) {
	mb, err := m.lookup(req.EnvID)
	if err != nil {
		return nil, err
	}
	if mb.epi != nil {
		return nil, errors.New("storage: episodic buffers are read per episode, not sampled")
	}

	res := &SampleResult{}
	switch {
	case mb.pri != nil && mb.nstep != nil:
		batch, nstep, indexes, weights, err := mb.pri.SampleNStep(req.BatchSize, req.Beta, mb.nstep)
		if err != nil {
			return nil, err
		}
		res.Batch = fromCoreBatch(batch, req.BatchSize)
		res.Indexes = indexes
		res.Weights = weights
		fillNStep(res, nstep)
	case mb.pri != nil:
		batch, indexes, weights, err := mb.pri.Sample(req.BatchSize, req.Beta)
		if err != nil {
			return nil, err
		}
		res.Batch = fromCoreBatch(batch, req.BatchSize)
		res.Indexes = indexes
		res.Weights = weights
	case mb.nstep != nil:
		batch, nstep, indexes, err := mb.plain.SampleNStep(req.BatchSize, mb.nstep)
		if err != nil {
			return nil, err
		}
		res.Batch = fromCoreBatch(batch, req.BatchSize)
		res.Indexes = indexes
		res.Weights = unitWeights(req.BatchSize)
		fillNStep(res, nstep)
	default:
		batch, indexes, err := mb.plain.Sample(req.BatchSize)
		if err != nil {
			return nil, err
		}
		res.Batch = fromCoreBatch(batch, req.BatchSize)
		res.Indexes = indexes
		res.Weights = unitWeights(req.BatchSize)
	}
	return res, nil
}

// UpdatePriorities implements Backend.UpdatePriorities.
func (m *MemoryBackend) UpdatePriorities(ctx context.Context, envID string, indexes []int, priorities []float64) error {
	mb, err := m.lookup(envID)
	if err != nil {
		return err
	}
	if mb.pri == nil {
		return fmt.Errorf("%w: %s", ErrNotPrioritized, envID)
	}
	return mb.pri.UpdatePriorities(indexes, priorities)
}

// GetEpisode implements Backend.GetEpisode.
func (m *MemoryBackend) GetEpisode(ctx context.Context, envID string, episodeID int) (*EpisodeResult, error) {
	mb, err := m.lookup(envID)
	if err != nil {
		return nil, err
	}
	if mb.epi == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotEpisodic, envID)
	}

	batch, length := mb.epi.GetEpisode(episodeID)
	if length == 0 {
		return &EpisodeResult{}, nil
	}
	return &EpisodeResult{
		Length: length,
		Batch:  fromCoreBatch(batch, length),
	}, nil
}

// DeleteEpisode implements Backend.DeleteEpisode.
func (m *MemoryBackend) DeleteEpisode(ctx context.Context, envID string, episodeID int) (int, error) {
	mb, err := m.lookup(envID)
	if err != nil {
		return 0, err
	}
	if mb.epi == nil {
		return 0, fmt.Errorf("%w: %s", ErrNotEpisodic, envID)
	}
	return mb.epi.DeleteEpisode(episodeID), nil
}

// GetStats implements Backend.GetStats.
func (m *MemoryBackend) GetStats(ctx context.Context, envID string) ([]Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if envID != "" {
		mb, exists := m.buffers[envID]
		if !exists {
			return nil, fmt.Errorf("%w: %s", ErrBufferNotFound, envID)
		}
		return []Stats{mb.stats()}, nil
	}

	out := make([]Stats, 0, len(m.buffers))
	for _, mb := range m.buffers {
		out = append(out, mb.stats())
	}
	return out, nil
}

// Clear implements Backend.Clear.
func (m *MemoryBackend) Clear(ctx context.Context, envID string) error {
	mb, err := m.lookup(envID)
	if err != nil {
		return err
	}
	switch {
	case mb.epi != nil:
		mb.epi.Clear()
	case mb.pri != nil:
		mb.pri.Clear()
	default:
		mb.plain.Clear()
	}
	return nil
}

// Close implements Backend.Close.
func (m *MemoryBackend) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.buffers = nil
	return nil
}

func (m *MemoryBackend) lookup(envID string) (*managedBuffer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.buffers == nil {
		return nil, errors.New("storage: backend is closed")
	}
	mb, exists := m.buffers[envID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrBufferNotFound, envID)
	}
	return mb, nil
}

func (mb *managedBuffer) stats() Stats {
	s := Stats{
		BufferID:    mb.id,
		EnvID:       mb.cfg.EnvID,
		Capacity:    mb.cfg.Capacity,
		Prioritized: mb.pri != nil,
		Episodic:    mb.epi != nil,
	}
	switch {
	case mb.epi != nil:
		s.StoredSize = mb.epi.StoredSize()
		s.NextIndex = mb.epi.NextIndex()
		s.Episodes = mb.epi.EpisodeCount()
	case mb.pri != nil:
		s.StoredSize = mb.pri.StoredSize()
		s.NextIndex = mb.pri.NextIndex()
		s.MaxPriority = mb.pri.MaxPriority()
	default:
		s.StoredSize = mb.plain.StoredSize()
		s.NextIndex = mb.plain.NextIndex()
	}
	return s
}

func toCoreBatch(b Batch) buffer.Batch {
	return buffer.Batch{
		Obs:     b.Obs,
		Act:     b.Act,
		Rew:     b.Rew,
		NextObs: b.NextObs,
		Done:    b.Done,
	}
}

func fromCoreBatch(b buffer.Batch, count int) Batch {
	return Batch{
		Count:   count,
		Obs:     b.Obs,
		Act:     b.Act,
		Rew:     b.Rew,
		NextObs: b.NextObs,
		Done:    b.Done,
	}
}

func fillNStep(res *SampleResult, nstep buffer.NStepBatch) {
	res.NStepReturns = nstep.Returns
	res.NStepDiscounts = nstep.Discounts
	res.NStepNextObs = nstep.NextObs
	res.NStepSteps = nstep.Steps
	res.NStepTerminal = nstep.Terminal
}

func unitWeights(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}
	return w
}
