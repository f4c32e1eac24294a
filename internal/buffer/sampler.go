package buffer

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

const defaultMaxPriority = 1.0

// PrioritizedSampler maps slot indexes to priorities and draws batches of
// slots with probability proportional to priority^alpha, producing the
// importance weights that correct for the non-uniform selection.
//
// Newly inserted slots that never received an explicit priority are assigned
// the running maximum raw priority, so fresh data is sampled at least as
// often as the best-known data until its first update.
//
// PrioritizedSampler is not goroutine-safe; callers synchronize access.
type PrioritizedSampler struct {
	capacity    int
	alpha       float64
	maxPriority float64
	tree        *SumTree
	rng         *rand.Rand
}

// NewPrioritizedSampler creates a sampler over capacity slots. alpha controls
// how strongly priorities shape the distribution: 0 is uniform, 1 is fully
// proportional.
func NewPrioritizedSampler(capacity int, alpha float64) (*PrioritizedSampler, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("sampler capacity must be positive, got %d", capacity)
	}
	if alpha < 0 || alpha > 1 {
		return nil, fmt.Errorf("alpha must be within [0,1], got %g", alpha)
	}
	return &PrioritizedSampler{
		capacity:    capacity,
		alpha:       alpha,
		maxPriority: defaultMaxPriority,
		tree:        NewSumTree(capacity),
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// SetPriority attaches a priority to one slot. The tree stores p^alpha; the
// running maximum tracks the raw value.
func (s *PrioritizedSampler) SetPriority(index int, p float64) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	if p < 0 {
		return fmt.Errorf("priority %g: %w", p, ErrInvalidPriority)
	}
	if p > s.maxPriority {
		s.maxPriority = p
	}
	s.tree.Set(index, math.Pow(p, s.alpha))
	return nil
}

// SetDefaultPriorities assigns the running maximum priority to count slots
// starting at first, wrapping at capacity. Used when a caller inserts
// transitions without supplying priorities.
func (s *PrioritizedSampler) SetDefaultPriorities(first, count int) {
	s.tree.SetRange(first, count, s.capacity, math.Pow(s.maxPriority, s.alpha))
}

// SetPriorities assigns explicit priorities to count consecutive slots
// starting at first, wrapping at capacity. The whole batch is validated
// before any leaf is touched.
func (s *PrioritizedSampler) SetPriorities(first int, priorities []float64) error {
	for _, p := range priorities {
		if p < 0 {
			return fmt.Errorf("priority %g: %w", p, ErrInvalidPriority)
		}
	}
	for k, p := range priorities {
		if p > s.maxPriority {
			s.maxPriority = p
		}
		s.tree.Set((first+k)%s.capacity, math.Pow(p, s.alpha))
	}
	return nil
}

// Sample draws batchSize slot indexes with replacement, each selected with
// probability proportional to its priority^alpha among the storedSize
// occupied leaves, and returns matching importance weights
// (storedSize * p_i / total)^(-beta) normalized so the batch maximum is 1.
// beta = 0 degenerates to uniform weights of exactly 1.
func (s *PrioritizedSampler) Sample(batchSize int, beta float64, storedSize int) ([]int, []float64, error) {
	if storedSize == 0 {
		return nil, nil, ErrEmptyBuffer
	}
	total := s.tree.Total()
	if total <= 0 {
		return nil, nil, ErrDegenerateDistribution
	}

	indexes := make([]int, batchSize)
	weights := make([]float64, batchSize)
	maxWeight := 0.0
	for i := range indexes {
		idx := s.tree.Find(s.rng.Float64() * total)
		if idx >= storedSize {
			// Rounding at the tail of the CDF can spill past the occupied
			// leaves. Clamp to the nearest occupied leaf with mass, so the
			// weight below can never divide by zero.
			idx = storedSize - 1
			for idx > 0 && s.tree.Get(idx) == 0 {
				idx--
			}
			if s.tree.Get(idx) == 0 {
				return nil, nil, ErrDegenerateDistribution
			}
		}
		indexes[i] = idx

		p := s.tree.Get(idx) / total
		w := math.Pow(float64(storedSize)*p, -beta)
		weights[i] = w
		if w > maxWeight {
			maxWeight = w
		}
	}

	if beta == 0 {
		for i := range weights {
			weights[i] = 1
		}
	} else {
		for i := range weights {
			weights[i] /= maxWeight
		}
	}
	return indexes, weights, nil
}

// UpdatePriorities is a batch point-update. The call is all-or-nothing: both
// slices must have equal length and every priority must be non-negative, or
// nothing is mutated.
func (s *PrioritizedSampler) UpdatePriorities(indexes []int, priorities []float64) error {
	if len(indexes) != len(priorities) {
		return fmt.Errorf("%d indexes vs %d priorities: %w",
			len(indexes), len(priorities), ErrLengthMismatch)
	}
	for _, i := range indexes {
		if err := s.checkIndex(i); err != nil {
			return err
		}
	}
	for _, p := range priorities {
		if p < 0 {
			return fmt.Errorf("priority %g: %w", p, ErrInvalidPriority)
		}
	}
	for k, i := range indexes {
		p := priorities[k]
		if p > s.maxPriority {
			s.maxPriority = p
		}
		s.tree.Set(i, math.Pow(p, s.alpha))
	}
	return nil
}

// MaxPriority returns the running maximum raw priority ever set. It is
// monotonically non-decreasing until Clear.
func (s *PrioritizedSampler) MaxPriority() float64 { return s.maxPriority }

// Total returns the current total priority mass (sum of p^alpha over leaves).
func (s *PrioritizedSampler) Total() float64 { return s.tree.Total() }

// Clear resets every priority and the running maximum.
func (s *PrioritizedSampler) Clear() {
	s.maxPriority = defaultMaxPriority
	s.tree.Clear()
}

func (s *PrioritizedSampler) checkIndex(i int) error {
	if i < 0 || i >= s.capacity {
		return fmt.Errorf("slot index %d out of range [0,%d)", i, s.capacity)
	}
	return nil
}
