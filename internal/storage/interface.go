package storage

import "context"

// BufferConfig describes one named replay buffer. Flavors compose: a buffer
// is either slot-addressed (optionally prioritized) or episodic, and either
// kind may carry an n-step return computer.
type BufferConfig struct {
	// EnvID names the environment this buffer serves; it is the key every
	// later call addresses the buffer by.
	EnvID string

	Capacity int
	ObsDim   int
	ActDim   int

	// Prioritized enables proportional sampling with importance weights.
	Prioritized bool
	// Alpha is the sampler exponent; used only when Prioritized is set.
	Alpha float64

	// Episodic tracks episode boundaries and supports per-episode retrieval
	// and deletion instead of ring overwrite.
	Episodic bool

	// NStep enables n-step return computation on sampled batches when >= 1.
	NStep int
	// Gamma is the n-step discount factor; used only when NStep >= 1.
	Gamma float64
}

// Batch carries flat transition field arrays: Obs/Act/NextObs hold
// Count*dim values, Rew and Done one per step.
type Batch struct {
	Count   int
	Obs     []float64
	Act     []float64
	Rew     []float64
	NextObs []float64
	Done    []float64
}

// AppendRequest stores Batch.Count transitions into an environment's buffer,
// with optional explicit priorities (length Count) for prioritized buffers.
type AppendRequest struct {
	EnvID      string
	Batch      Batch
	Priorities []float64
}

// SampleRequest draws a batch from an environment's buffer.
type SampleRequest struct {
	EnvID     string
	BatchSize int
	// Beta is the importance-weight exponent for prioritized buffers.
	Beta float64
}

// SampleResult is a sampled batch plus per-draw bookkeeping. Weights is all
// ones for uniform buffers. The n-step fields are populated only when the
// buffer was configured with NStep >= 1.
type SampleResult struct {
	Batch   Batch
	Indexes []int
	Weights []float64

	NStepReturns   []float64
	NStepDiscounts []float64
	NStepNextObs   []float64
	NStepSteps     []int
	NStepTerminal  []bool
}

// EpisodeResult is one episode's transitions. Length 0 means the episode id
// is not tracked; that is not an error.
type EpisodeResult struct {
	Length int
	Batch  Batch
}

// Stats describes one buffer's occupancy.
type Stats struct {
	BufferID    string  `json:"buffer_id"`
	EnvID       string  `json:"env_id"`
	Capacity    int     `json:"capacity"`
	StoredSize  int     `json:"stored_size"`
	NextIndex   int     `json:"next_index"`
	Episodes    int     `json:"episodes"`
	MaxPriority float64 `json:"max_priority"`
	Prioritized bool    `json:"prioritized"`
	Episodic    bool    `json:"episodic"`
}

// Backend is the service-facing contract for replay buffer storage.
type Backend interface {
	// CreateBuffer provisions a buffer for cfg.EnvID and returns its
	// instance id. Creating an EnvID twice is an error.
	CreateBuffer(ctx context.Context, cfg BufferConfig) (string, error)

	// Append stores transitions, returning the buffer's new stored size.
	Append(ctx context.Context, req AppendRequest) (int, error)

	// Sample draws a batch per the buffer's flavor.
	Sample(ctx context.Context, req SampleRequest) (*SampleResult, error)

	// UpdatePriorities applies a batch priority update, all-or-nothing.
	UpdatePriorities(ctx context.Context, envID string, indexes []int, priorities []float64) error

	// GetEpisode fetches one stored episode from an episodic buffer.
	GetEpisode(ctx context.Context, envID string, episodeID int) (*EpisodeResult, error)

	// DeleteEpisode removes one episode and compacts, returning the number
	// of steps removed (0 when the id is untracked).
	DeleteEpisode(ctx context.Context, envID string, episodeID int) (int, error)

	// GetStats reports occupancy for one environment, or for all when envID
	// is empty.
	GetStats(ctx context.Context, envID string) ([]Stats, error)

	// Clear resets an environment's buffer to empty.
	Clear(ctx context.Context, envID string) error

	// Close releases all buffers.
	Close() error
}
