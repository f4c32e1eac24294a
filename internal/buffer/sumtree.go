package buffer

// SumTree is a binary tree over a fixed number of leaf slots where every
// internal node stores the sum of its children. It supports point updates and
// prefix-mass lookup in O(log capacity), which turns a set of non-negative
// leaf values into a samplable distribution.
//
// The tree is laid out as a flat array with 1-based arithmetic indexing:
// node i has children 2i and 2i+1, leaf j lives at leaves+j. The leaf count
// is rounded up to the next power of two; slots past capacity stay at zero
// and are never selected.
//
// SumTree is not goroutine-safe; callers synchronize access.
type SumTree struct {
	leaves int
	nodes  []float64
}

// NewSumTree creates a tree with at least capacity leaves, all zero.
func NewSumTree(capacity int) *SumTree {
	n := 1
	for n < capacity {
		n <<= 1
	}
	return &SumTree{
		leaves: n,
		nodes:  make([]float64, 2*n),
	}
}

// Set stores value at the given leaf and restores the sum invariant along the
// path to the root.
func (t *SumTree) Set(index int, value float64) {
	i := t.leaves + index
	t.nodes[i] = value
	for i >>= 1; i >= 1; i >>= 1 {
		t.nodes[i] = t.nodes[2*i] + t.nodes[2*i+1]
	}
}

// SetRange assigns value to count consecutive leaves starting at first,
// wrapping at capacity.
func (t *SumTree) SetRange(first, count, capacity int, value float64) {
	for k := 0; k < count; k++ {
		t.Set((first+k)%capacity, value)
	}
}

// Get returns the value stored at the given leaf.
func (t *SumTree) Get(index int) float64 {
	return t.nodes[t.leaves+index]
}

// Total returns the sum over all leaves.
func (t *SumTree) Total() float64 {
	return t.nodes[1]
}

// Find returns the leaf whose cumulative span contains mass u, for u in
// [0, Total()). This is inverse-CDF selection: descend from the root, go left
// when u falls below the left child's sum, otherwise subtract it and go right.
func (t *SumTree) Find(u float64) int {
	i := 1
	for i < t.leaves {
		left := 2 * i
		if u < t.nodes[left] {
			i = left
		} else {
			u -= t.nodes[left]
			i = left + 1
		}
	}
	return i - t.leaves
}

// Clear zeroes every node.
func (t *SumTree) Clear() {
	for i := range t.nodes {
		t.nodes[i] = 0
	}
}
