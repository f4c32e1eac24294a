package buffer

import "fmt"

// fieldBuffer holds capacity fixed-width records in one flat array, record i
// occupying data[i*dim : (i+1)*dim].
type fieldBuffer struct {
	data []float64
	dim  int
}

func newFieldBuffer(capacity, dim int) fieldBuffer {
	return fieldBuffer{
		data: make([]float64, capacity*dim),
		dim:  dim,
	}
}

// write copies n records from src, starting at record shift, into positions
// [index, index+n).
func (f fieldBuffer) write(src []float64, shift, index, n int) {
	copy(f.data[index*f.dim:(index+n)*f.dim], src[shift*f.dim:(shift+n)*f.dim])
}

// move shifts n records from src down to dst. Only used with dst < src, where
// the forward copy of the builtin is safe on overlap.
func (f fieldBuffer) move(dst, src, n int) {
	copy(f.data[dst*f.dim:(dst+n)*f.dim], f.data[src*f.dim:(src+n)*f.dim])
}

func (f fieldBuffer) slice(index, n int) []float64 {
	return f.data[index*f.dim : (index+n)*f.dim]
}

// Batch holds parallel field arrays for a run of transitions. Obs, Act and
// NextObs are flattened to count*dim values; Rew and Done hold one value per
// step. Done uses the legacy numeric encoding: non-zero means true.
type Batch struct {
	Obs     []float64
	Act     []float64
	Rew     []float64
	NextObs []float64
	Done    []float64
}

// Ring is fixed-capacity circular storage for transition fields, addressed by
// slot index in [0, capacity). Once full, each write overwrites the oldest
// data in slot order (strict FIFO). The ring knows nothing about priorities
// or episodes.
//
// Ring is not goroutine-safe; callers synchronize access.
type Ring struct {
	capacity int
	obsDim   int
	actDim   int

	obs     fieldBuffer
	act     fieldBuffer
	rew     fieldBuffer
	nextObs fieldBuffer
	done    fieldBuffer

	storedSize int
	nextIndex  int
}

// NewRing creates an empty ring with the given capacity and per-field
// dimensionalities.
func NewRing(capacity, obsDim, actDim int) (*Ring, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("ring capacity must be positive, got %d", capacity)
	}
	if obsDim <= 0 || actDim <= 0 {
		return nil, fmt.Errorf("field dimensions must be positive, got obs=%d act=%d", obsDim, actDim)
	}
	return &Ring{
		capacity: capacity,
		obsDim:   obsDim,
		actDim:   actDim,
		obs:      newFieldBuffer(capacity, obsDim),
		act:      newFieldBuffer(capacity, actDim),
		rew:      newFieldBuffer(capacity, 1),
		nextObs:  newFieldBuffer(capacity, obsDim),
		done:     newFieldBuffer(capacity, 1),
	}, nil
}

// Capacity returns the number of slots.
func (r *Ring) Capacity() int { return r.capacity }

// StoredSize returns the number of occupied slots.
func (r *Ring) StoredSize() int { return r.storedSize }

// NextIndex returns the slot the next write will start at.
func (r *Ring) NextIndex() int { return r.nextIndex }

// ObsDim returns the observation dimensionality.
func (r *Ring) ObsDim() int { return r.obsDim }

// ActDim returns the action dimensionality.
func (r *Ring) ActDim() int { return r.actDim }

func (r *Ring) validateBatch(b Batch, n int) error {
	if n <= 0 {
		return fmt.Errorf("store count must be positive, got %d: %w", n, ErrLengthMismatch)
	}
	if len(b.Obs) < n*r.obsDim || len(b.NextObs) < n*r.obsDim ||
		len(b.Act) < n*r.actDim || len(b.Rew) < n || len(b.Done) < n {
		return ErrLengthMismatch
	}
	return nil
}

// writeAt copies n records of b, starting at record shift, into slots
// [index, index+n) without touching the cursor or stored size.
func (r *Ring) writeAt(b Batch, shift, index, n int) {
	r.obs.write(b.Obs, shift, index, n)
	r.act.write(b.Act, shift, index, n)
	r.rew.write(b.Rew, shift, index, n)
	r.nextObs.write(b.NextObs, shift, index, n)
	r.done.write(b.Done, shift, index, n)
}

// moveRange shifts n slots from src down to dst across every field.
func (r *Ring) moveRange(dst, src, n int) {
	r.obs.move(dst, src, n)
	r.act.move(dst, src, n)
	r.rew.move(dst, src, n)
	r.nextObs.move(dst, src, n)
	r.done.move(dst, src, n)
}

// Store copies n contiguous records into the ring starting at the current
// write cursor, splitting the copy in two when it crosses the end of the slot
// array. It returns the slot the write started at. The stored size advances
// to min(previous+n, capacity) and the cursor to (start+n) mod capacity.
func (r *Ring) Store(b Batch, n int) (int, error) {
	if n > r.capacity {
		return 0, fmt.Errorf("store of %d steps into capacity %d: %w", n, r.capacity, ErrCapacityExceeded)
	}
	if err := r.validateBatch(b, n); err != nil {
		return 0, err
	}

	start := r.nextIndex
	shift := 0
	for n > 0 {
		copyN := min(n, r.capacity-r.nextIndex)
		r.writeAt(b, shift, r.nextIndex, copyN)

		r.nextIndex += copyN
		if r.nextIndex >= r.capacity {
			r.nextIndex = 0
		}
		r.storedSize = min(r.storedSize+copyN, r.capacity)

		n -= copyN
		shift += copyN
	}
	return start, nil
}

// Get returns the fields for count slots starting at start. When the range is
// contiguous the returned slices are views into the underlying arrays and
// must not be mutated while a writer is active; a wrapped range is stitched
// into fresh slices.
func (r *Ring) Get(start, count int) Batch {
	if start+count <= r.capacity {
		return Batch{
			Obs:     r.obs.slice(start, count),
			Act:     r.act.slice(start, count),
			Rew:     r.rew.slice(start, count),
			NextObs: r.nextObs.slice(start, count),
			Done:    r.done.slice(start, count),
		}
	}

	head := r.capacity - start
	tail := count - head
	stitch := func(f fieldBuffer) []float64 {
		out := make([]float64, count*f.dim)
		copy(out, f.slice(start, head))
		copy(out[head*f.dim:], f.slice(0, tail))
		return out
	}
	return Batch{
		Obs:     stitch(r.obs),
		Act:     stitch(r.act),
		Rew:     stitch(r.rew),
		NextObs: stitch(r.nextObs),
		Done:    stitch(r.done),
	}
}

// Gather copies the fields of the given slots, in order, into a fresh Batch.
func (r *Ring) Gather(indexes []int) Batch {
	n := len(indexes)
	out := Batch{
		Obs:     make([]float64, n*r.obsDim),
		Act:     make([]float64, n*r.actDim),
		Rew:     make([]float64, n),
		NextObs: make([]float64, n*r.obsDim),
		Done:    make([]float64, n),
	}
	for k, i := range indexes {
		copy(out.Obs[k*r.obsDim:], r.obs.slice(i, 1))
		copy(out.Act[k*r.actDim:], r.act.slice(i, 1))
		out.Rew[k] = r.rew.data[i]
		copy(out.NextObs[k*r.obsDim:], r.nextObs.slice(i, 1))
		out.Done[k] = r.done.data[i]
	}
	return out
}

// Clear resets the cursor and stored size. Field contents are left in place
// and become unreachable.
func (r *Ring) Clear() {
	r.storedSize = 0
	r.nextIndex = 0
}
