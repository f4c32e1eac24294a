// Package buffer implements the experience-replay core: fixed-capacity
// circular field storage, a sum-tree priority index, proportional sampling
// with importance weights, n-step return computation and episode-indexed
// storage with deletion.
//
// The leaf types (Ring, SumTree, PrioritizedSampler, NStepComputer,
// EpisodicStore) are single-threaded and composed by value. The buffer types
// in this file wrap them with one coarse lock each, so environment workers
// can store while learners sample and update priorities; batch operations
// dominate the workload and tree depth is small, so a coarse lock beats
// per-node locking.
package buffer

import (
	"math/rand"
	"sync"
	"time"
)

// ReplayBuffer is a thread-safe ring buffer with uniform random sampling.
type ReplayBuffer struct {
	mu   sync.Mutex
	ring *Ring
	rng  *rand.Rand
}

// NewReplayBuffer creates an empty uniform replay buffer.
func NewReplayBuffer(capacity, obsDim, actDim int) (*ReplayBuffer, error) {
	ring, err := NewRing(capacity, obsDim, actDim)
	if err != nil {
		return nil, err
	}
	return &ReplayBuffer{
		ring: ring,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// Add stores n transitions, overwriting the oldest slots once full. Returns
// the slot the write started at. Concurrent callers are serialized on the
// write cursor.
func (b *ReplayBuffer) Add(batch Batch, n int) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ring.Store(batch, n)
}

// Sample draws batchSize transitions uniformly with replacement.
func (b *ReplayBuffer) Sample(batchSize int) (Batch, []int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	stored := b.ring.StoredSize()
	if stored == 0 {
		return Batch{}, nil, ErrEmptyBuffer
	}
	indexes := make([]int, batchSize)
	for i := range indexes {
		indexes[i] = b.rng.Intn(stored)
	}
	return b.ring.Gather(indexes), indexes, nil
}

// SampleNStep draws uniformly and runs the n-step computer over the occupied
// slots for the drawn indexes.
func (b *ReplayBuffer) SampleNStep(batchSize int, nc *NStepComputer) (Batch, NStepBatch, []int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	stored := b.ring.StoredSize()
	if stored == 0 {
		return Batch{}, NStepBatch{}, nil, ErrEmptyBuffer
	}
	indexes := make([]int, batchSize)
	for i := range indexes {
		indexes[i] = b.rng.Intn(stored)
	}
	fields := b.ring.Get(0, stored)
	nstep, err := nc.Compute(indexes, fields.Rew, fields.Done, fields.NextObs)
	if err != nil {
		return Batch{}, NStepBatch{}, nil, err
	}
	return b.ring.Gather(indexes), nstep, indexes, nil
}

// StoredSize returns the number of occupied slots.
func (b *ReplayBuffer) StoredSize() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ring.StoredSize()
}

// NextIndex returns the current write cursor.
func (b *ReplayBuffer) NextIndex() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ring.NextIndex()
}

// Capacity returns the slot count.
func (b *ReplayBuffer) Capacity() int { return b.ring.Capacity() }

// Clear resets the buffer to empty.
func (b *ReplayBuffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ring.Clear()
}

// PrioritizedReplayBuffer pairs a ring with a prioritized sampler under a
// single lock, keeping priorities in bijection with occupied slots.
type PrioritizedReplayBuffer struct {
	mu      sync.Mutex
	ring    *Ring
	sampler *PrioritizedSampler
}

// NewPrioritizedReplayBuffer creates an empty prioritized buffer with the
// given sampler exponent alpha.
func NewPrioritizedReplayBuffer(capacity, obsDim, actDim int, alpha float64) (*PrioritizedReplayBuffer, error) {
	ring, err := NewRing(capacity, obsDim, actDim)
	if err != nil {
		return nil, err
	}
	sampler, err := NewPrioritizedSampler(capacity, alpha)
	if err != nil {
		return nil, err
	}
	return &PrioritizedReplayBuffer{ring: ring, sampler: sampler}, nil
}

// Add stores n transitions and assigns each touched slot the running maximum
// priority. Returns the starting slot.
func (b *PrioritizedReplayBuffer) Add(batch Batch, n int) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	start, err := b.ring.Store(batch, n)
	if err != nil {
		return 0, err
	}
	b.sampler.SetDefaultPriorities(start, n)
	return start, nil
}

// AddWithPriorities stores n transitions with explicit priorities. The
// priorities are validated before any slot is written.
func (b *PrioritizedReplayBuffer) AddWithPriorities(batch Batch, priorities []float64, n int) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(priorities) != n {
		return 0, ErrLengthMismatch
	}
	for _, p := range priorities {
		if p < 0 {
			return 0, ErrInvalidPriority
		}
	}
	start, err := b.ring.Store(batch, n)
	if err != nil {
		return 0, err
	}
	if err := b.sampler.SetPriorities(start, priorities); err != nil {
		return 0, err
	}
	return start, nil
}

// Sample draws batchSize transitions proportionally to priority^alpha and
// returns them with the drawn indexes and importance weights.
func (b *PrioritizedReplayBuffer) Sample(batchSize int, beta float64) (Batch, []int, []float64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	indexes, weights, err := b.sampler.Sample(batchSize, beta, b.ring.StoredSize())
	if err != nil {
		return Batch{}, nil, nil, err
	}
	return b.ring.Gather(indexes), indexes, weights, nil
}

// SampleNStep draws proportionally and runs the n-step computer over the
// occupied slots for the drawn indexes.
func (b *PrioritizedReplayBuffer) SampleNStep(batchSize int, beta float64, nc *NStepComputer) (Batch, NStepBatch, []int, []float64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	indexes, weights, err := b.sampler.Sample(batchSize, beta, b.ring.StoredSize())
	if err != nil {
		return Batch{}, NStepBatch{}, nil, nil, err
	}
	fields := b.ring.Get(0, b.ring.StoredSize())
	nstep, err := nc.Compute(indexes, fields.Rew, fields.Done, fields.NextObs)
	if err != nil {
		return Batch{}, NStepBatch{}, nil, nil, err
	}
	return b.ring.Gather(indexes), nstep, indexes, weights, nil
}

// UpdatePriorities applies a batch point-update, all-or-nothing.
func (b *PrioritizedReplayBuffer) UpdatePriorities(indexes []int, priorities []float64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sampler.UpdatePriorities(indexes, priorities)
}

// MaxPriority returns the running maximum raw priority.
func (b *PrioritizedReplayBuffer) MaxPriority() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sampler.MaxPriority()
}

// StoredSize returns the number of occupied slots.
func (b *PrioritizedReplayBuffer) StoredSize() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ring.StoredSize()
}

// NextIndex returns the current write cursor.
func (b *PrioritizedReplayBuffer) NextIndex() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ring.NextIndex()
}

// Capacity returns the slot count.
func (b *PrioritizedReplayBuffer) Capacity() int { return b.ring.Capacity() }

// Clear resets storage, priorities and the running maximum.
func (b *PrioritizedReplayBuffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ring.Clear()
	b.sampler.Clear()
}

// EpisodicBuffer wraps an EpisodicStore with a lock. The boundary-record list
// and the write cursor change together under it, which compaction requires.
type EpisodicBuffer struct {
	mu    sync.Mutex
	store *EpisodicStore
}

// NewEpisodicBuffer creates an empty thread-safe episodic buffer.
func NewEpisodicBuffer(capacity, obsDim, actDim int) (*EpisodicBuffer, error) {
	store, err := NewEpisodicStore(capacity, obsDim, actDim)
	if err != nil {
		return nil, err
	}
	return &EpisodicBuffer{store: store}, nil
}

// Add appends n steps, closing and opening episodes on done flags.
func (b *EpisodicBuffer) Add(batch Batch, n int) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.store.Store(batch, n)
}

// GetEpisode returns a copy of episode id's fields and its length. The copy
// is taken under the lock so callers hold no views into live storage.
func (b *EpisodicBuffer) GetEpisode(id int) (Batch, int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	view, length := b.store.GetEpisode(id)
	if length == 0 {
		return Batch{}, 0
	}
	out := Batch{
		Obs:     append([]float64(nil), view.Obs...),
		Act:     append([]float64(nil), view.Act...),
		Rew:     append([]float64(nil), view.Rew...),
		NextObs: append([]float64(nil), view.NextObs...),
		Done:    append([]float64(nil), view.Done...),
	}
	return out, length
}

// DeleteEpisode removes episode id and compacts, returning the steps removed.
func (b *EpisodicBuffer) DeleteEpisode(id int) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.store.DeleteEpisode(id)
}

// StoredSize returns the number of occupied steps.
func (b *EpisodicBuffer) StoredSize() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.store.StoredSize()
}

// NextIndex returns the next write position.
func (b *EpisodicBuffer) NextIndex() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.store.NextIndex()
}

// EpisodeCount returns the number of tracked episodes.
func (b *EpisodicBuffer) EpisodeCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.store.EpisodeCount()
}

// Capacity returns the step capacity.
func (b *EpisodicBuffer) Capacity() int { return b.store.Capacity() }

// Clear drops all episodes.
func (b *EpisodicBuffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.store.Clear()
}
