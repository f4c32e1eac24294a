package buffer

import "fmt"

// episodeRecord marks one contiguous run of slots. Records partition the
// occupied range [0, nextIndex) in order, with no gaps or overlaps, and at
// most the last record is open.
type episodeRecord struct {
	start  int
	length int
	open   bool
}

// EpisodicStore tracks variable-length episodes inside fixed-capacity field
// storage. Unlike Ring it never wraps: episodes are laid out linearly and
// deleting one compacts everything after it down, so slot contents stay
// contiguous per episode.
//
// EpisodicStore is not goroutine-safe; callers synchronize access.
type EpisodicStore struct {
	ring      *Ring
	nextIndex int
	episodes  []episodeRecord
}

// NewEpisodicStore creates an empty store holding at most capacity steps.
func NewEpisodicStore(capacity, obsDim, actDim int) (*EpisodicStore, error) {
	ring, err := NewRing(capacity, obsDim, actDim)
	if err != nil {
		return nil, err
	}
	return &EpisodicStore{ring: ring}, nil
}

// Capacity returns the total number of step slots.
func (e *EpisodicStore) Capacity() int { return e.ring.Capacity() }

// StoredSize returns the number of occupied steps.
func (e *EpisodicStore) StoredSize() int { return e.nextIndex }

// NextIndex returns the slot the next store will start at.
func (e *EpisodicStore) NextIndex() int { return e.nextIndex }

// EpisodeCount returns the number of tracked episodes, the open one included.
func (e *EpisodicStore) EpisodeCount() int { return len(e.episodes) }

// Store appends n steps to the currently open episode, creating one if none
// exists. Every done flag inside the call closes the episode at that step;
// remaining steps open a new one. Returns the starting write index. A call
// that does not fit in the remaining space fails with ErrCapacityExceeded
// before any mutation.
func (e *EpisodicStore) Store(b Batch, n int) (int, error) {
	if err := e.ring.validateBatch(b, n); err != nil {
		return 0, err
	}
	if n > e.ring.Capacity()-e.nextIndex {
		return 0, fmt.Errorf("store of %d steps with %d slots free: %w",
			n, e.ring.Capacity()-e.nextIndex, ErrCapacityExceeded)
	}

	start := e.nextIndex
	e.ring.writeAt(b, 0, start, n)

	cursor := start
	pos := 0
	for pos < n {
		if len(e.episodes) == 0 || !e.episodes[len(e.episodes)-1].open {
			e.episodes = append(e.episodes, episodeRecord{start: cursor, open: true})
		}
		rec := &e.episodes[len(e.episodes)-1]

		doneAt := -1
		for k := pos; k < n; k++ {
			if b.Done[k] != 0 {
				doneAt = k
				break
			}
		}
		if doneAt < 0 {
			rec.length += n - pos
			break
		}
		rec.length += doneAt - pos + 1
		rec.open = false
		cursor += doneAt - pos + 1
		pos = doneAt + 1
	}

	e.nextIndex += n
	return start, nil
}

// GetEpisode returns the transition fields of episode id as views into the
// underlying storage, plus its length. An untracked id yields length 0 and no
// data; that is not an error.
func (e *EpisodicStore) GetEpisode(id int) (Batch, int) {
	if id < 0 || id >= len(e.episodes) {
		return Batch{}, 0
	}
	rec := e.episodes[id]
	return e.ring.Get(rec.start, rec.length), rec.length
}

// IsOpen reports whether episode id exists and is still accepting steps.
func (e *EpisodicStore) IsOpen(id int) bool {
	return id >= 0 && id < len(e.episodes) && e.episodes[id].open
}

// DeleteEpisode removes episode id and compacts every later episode down by
// its length, decrementing the stored size and next index to match. The open
// episode can be deleted too, partial data included. Returns the number of
// steps removed; 0 for an untracked id, which is not an error.
func (e *EpisodicStore) DeleteEpisode(id int) int {
	if id < 0 || id >= len(e.episodes) {
		return 0
	}
	rec := e.episodes[id]

	moveBegin := rec.start + rec.length
	if moveCount := e.nextIndex - moveBegin; moveCount > 0 {
		e.ring.moveRange(rec.start, moveBegin, moveCount)
	}
	for k := id + 1; k < len(e.episodes); k++ {
		e.episodes[k].start -= rec.length
	}
	e.episodes = append(e.episodes[:id], e.episodes[id+1:]...)
	e.nextIndex -= rec.length
	return rec.length
}

// Clear drops every episode and resets the write cursor.
func (e *EpisodicStore) Clear() {
	e.nextIndex = 0
	e.episodes = e.episodes[:0]
}
