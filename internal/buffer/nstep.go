package buffer

import (
	"fmt"
	"math"
)

// NStepComputer derives discounted multi-step returns from raw reward, done
// and next-observation arrays. It is stateless per call and does not retain
// the input buffers: the arrays describe any indexable batch of steps, not
// necessarily a whole ring.
type NStepComputer struct {
	obsDim int
	n      int
	gamma  float64
}

// NStepBatch holds the parallel outputs of Compute, one entry per requested
// step index.
type NStepBatch struct {
	// Returns[k] is the discounted sum of up to n rewards starting at the
	// step, stopping at (and including) the first done step in the window.
	Returns []float64
	// Discounts[k] is gamma^m for the truncation count m, the bootstrap
	// discount to apply at the horizon observation. Zeroing it on terminal
	// horizons is the caller's concern; combine with Terminal.
	Discounts []float64
	// NextObs[k*obsDim:(k+1)*obsDim] is the observation m steps ahead.
	NextObs []float64
	// Steps[k] is the truncation count m in [1, n].
	Steps []int
	// Terminal[k] reports whether the horizon step carried a done flag,
	// distinguishing an episode end from running out of data.
	Terminal []bool
}

// NewNStepComputer creates a computer for n-step returns with discount gamma.
func NewNStepComputer(obsDim, n int, gamma float64) (*NStepComputer, error) {
	if obsDim <= 0 {
		return nil, fmt.Errorf("obs dimension must be positive, got %d", obsDim)
	}
	if n < 1 {
		return nil, fmt.Errorf("nstep must be at least 1, got %d", n)
	}
	if gamma <= 0 || gamma > 1 {
		return nil, fmt.Errorf("gamma must be within (0,1], got %g", gamma)
	}
	return &NStepComputer{obsDim: obsDim, n: n, gamma: gamma}, nil
}

// N returns the configured horizon length.
func (c *NStepComputer) N() int { return c.n }

// Gamma returns the configured discount factor.
func (c *NStepComputer) Gamma() float64 { return c.gamma }

// Compute evaluates the n-step return for each step index in indexes over the
// given arrays. rew and done hold one value per step; nextObs holds obsDim
// values per step. Each index's horizon is computed independently: the reward
// sum walks forward until n terms are accumulated, a done flag is consumed,
// or the arrays end, whichever comes first.
func (c *NStepComputer) Compute(indexes []int, rew, done, nextObs []float64) (NStepBatch, error) {
	steps := len(rew)
	if len(done) != steps || len(nextObs) != steps*c.obsDim {
		return NStepBatch{}, fmt.Errorf("rew=%d done=%d next_obs=%d (obs_dim=%d): %w",
			steps, len(done), len(nextObs), c.obsDim, ErrLengthMismatch)
	}

	out := NStepBatch{
		Returns:   make([]float64, len(indexes)),
		Discounts: make([]float64, len(indexes)),
		NextObs:   make([]float64, len(indexes)*c.obsDim),
		Steps:     make([]int, len(indexes)),
		Terminal:  make([]bool, len(indexes)),
	}
	for k, i := range indexes {
		if i < 0 || i >= steps {
			return NStepBatch{}, fmt.Errorf("step index %d out of range [0,%d)", i, steps)
		}

		ret := rew[i]
		g := 1.0
		m := 1
		j := i
		for m < c.n && done[j] == 0 && j+1 < steps {
			j++
			g *= c.gamma
			ret += g * rew[j]
			m++
		}

		out.Returns[k] = ret
		out.Discounts[k] = math.Pow(c.gamma, float64(m))
		out.Steps[k] = m
		out.Terminal[k] = done[j] != 0
		copy(out.NextObs[k*c.obsDim:(k+1)*c.obsDim], nextObs[j*c.obsDim:(j+1)*c.obsDim])
	}
	return out, nil
}
