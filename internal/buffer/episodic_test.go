package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// episodeBatch builds n steps whose reward encodes the step label and whose
// done flags are given explicitly.
func episodeBatch(base int, dones []float64, obsDim, actDim int) Batch {
	n := len(dones)
	b := makeBatch(base, n, obsDim, actDim)
	copy(b.Done, dones)
	return b
}

func TestEpisodicStore_SingleStepOpensEpisode(t *testing.T) {
	e, err := NewEpisodicStore(40, 3, 1)
	require.NoError(t, err)

	assert.Equal(t, 0, e.StoredSize())
	assert.Equal(t, 0, e.EpisodeCount())

	start, err := e.Store(episodeBatch(0, []float64{0}, 3, 1), 1)
	require.NoError(t, err)
	assert.Equal(t, 0, start)
	assert.Equal(t, 1, e.NextIndex())
	assert.Equal(t, 1, e.StoredSize())
	assert.Equal(t, 1, e.EpisodeCount())
	assert.True(t, e.IsOpen(0))

	_, length := e.GetEpisode(0)
	assert.Equal(t, 1, length)
}

func TestEpisodicStore_DoneClosesEpisode(t *testing.T) {
	e, err := NewEpisodicStore(40, 3, 1)
	require.NoError(t, err)

	_, err = e.Store(episodeBatch(0, []float64{0}, 3, 1), 1)
	require.NoError(t, err)

	// Remaining 3 steps of the same episode, last one terminal
	_, err = e.Store(episodeBatch(1, []float64{0, 0, 1}, 3, 1), 3)
	require.NoError(t, err)

	assert.Equal(t, 4, e.NextIndex())
	assert.Equal(t, 4, e.StoredSize())
	assert.Equal(t, 1, e.EpisodeCount())
	assert.False(t, e.IsOpen(0))

	got, length := e.GetEpisode(0)
	assert.Equal(t, 4, length)
	assert.Equal(t, []float64{0, 1, 2, 3}, got.Rew)

	// Untracked id yields length 0, not an error
	_, length = e.GetEpisode(1)
	assert.Equal(t, 0, length)
}

func TestEpisodicStore_StoreAfterCloseStartsNewEpisode(t *testing.T) {
	e, err := NewEpisodicStore(40, 3, 1)
	require.NoError(t, err)

	_, err = e.Store(episodeBatch(0, []float64{0, 0, 0, 1}, 3, 1), 4)
	require.NoError(t, err)
	start, err := e.Store(episodeBatch(4, []float64{0, 0, 1}, 3, 1), 3)
	require.NoError(t, err)

	assert.Equal(t, 4, start)
	assert.Equal(t, 7, e.NextIndex())
	assert.Equal(t, 2, e.EpisodeCount())

	got, length := e.GetEpisode(1)
	assert.Equal(t, 3, length)
	assert.Equal(t, []float64{4, 5, 6}, got.Rew)
}

func TestEpisodicStore_MultipleDonesInOneCall(t *testing.T) {
	e, err := NewEpisodicStore(40, 2, 1)
	require.NoError(t, err)

	_, err = e.Store(episodeBatch(0, []float64{0, 1, 0, 1, 0}, 2, 1), 5)
	require.NoError(t, err)

	assert.Equal(t, 3, e.EpisodeCount())

	_, l0 := e.GetEpisode(0)
	_, l1 := e.GetEpisode(1)
	_, l2 := e.GetEpisode(2)
	assert.Equal(t, 2, l0)
	assert.Equal(t, 2, l1)
	assert.Equal(t, 1, l2)
	assert.True(t, e.IsOpen(2))
}

func TestEpisodicStore_DeleteUnknownEpisodeIsNoop(t *testing.T) {
	e, err := NewEpisodicStore(40, 3, 1)
	require.NoError(t, err)
	_, err = e.Store(episodeBatch(0, []float64{0, 0, 0, 1}, 3, 1), 4)
	require.NoError(t, err)

	assert.Equal(t, 0, e.DeleteEpisode(99))
	assert.Equal(t, 4, e.NextIndex())
	assert.Equal(t, 1, e.EpisodeCount())
}

func TestEpisodicStore_DeleteCompactsLaterEpisodes(t *testing.T) {
	e, err := NewEpisodicStore(40, 3, 1)
	require.NoError(t, err)

	// Episode A of length 4, episode B of length 3
	_, err = e.Store(episodeBatch(0, []float64{0, 0, 0, 1}, 3, 1), 4)
	require.NoError(t, err)
	_, err = e.Store(episodeBatch(4, []float64{0, 0, 1}, 3, 1), 3)
	require.NoError(t, err)

	removed := e.DeleteEpisode(0)
	assert.Equal(t, 4, removed)
	assert.Equal(t, 3, e.StoredSize())
	assert.Equal(t, 3, e.NextIndex())
	assert.Equal(t, 1, e.EpisodeCount())

	// B's exact data, shifted to start at index 0
	got, length := e.GetEpisode(0)
	assert.Equal(t, 3, length)
	assert.Equal(t, []float64{4, 5, 6}, got.Rew)
	assert.Equal(t, []float64{4, 4, 4, 5, 5, 5, 6, 6, 6}, got.Obs)
	assert.Equal(t, []float64{0, 0, 1}, got.Done)
}

func TestEpisodicStore_DeleteHalfOpenEpisode(t *testing.T) {
	e, err := NewEpisodicStore(40, 3, 1)
	require.NoError(t, err)

	// One closed episode of 3, then 3 more steps never terminated
	_, err = e.Store(episodeBatch(0, []float64{0, 0, 1}, 3, 1), 3)
	require.NoError(t, err)
	_, err = e.Store(episodeBatch(3, []float64{0, 0, 0}, 3, 1), 3)
	require.NoError(t, err)

	assert.Equal(t, 6, e.NextIndex())
	assert.Equal(t, 2, e.EpisodeCount())

	removed := e.DeleteEpisode(1)
	assert.Equal(t, 3, removed)
	assert.Equal(t, 3, e.NextIndex())
	assert.Equal(t, 3, e.StoredSize())
	assert.Equal(t, 1, e.EpisodeCount())
}

func TestEpisodicStore_DeleteClosedAheadOfHalfOpen(t *testing.T) {
	e, err := NewEpisodicStore(40, 3, 1)
	require.NoError(t, err)

	_, err = e.Store(episodeBatch(0, []float64{0, 0, 1}, 3, 1), 3)
	require.NoError(t, err)
	_, err = e.Store(episodeBatch(3, []float64{0, 0, 0}, 3, 1), 3)
	require.NoError(t, err)

	removed := e.DeleteEpisode(0)
	assert.Equal(t, 3, removed)
	assert.Equal(t, 3, e.NextIndex())
	assert.Equal(t, 1, e.EpisodeCount())

	// The half-open episode shifted down and is still open
	got, length := e.GetEpisode(0)
	assert.Equal(t, 3, length)
	assert.Equal(t, []float64{3, 4, 5}, got.Rew)
	assert.True(t, e.IsOpen(0))
}

func TestEpisodicStore_ConsecutiveOpenStoresExtendOneEpisode(t *testing.T) {
	e, err := NewEpisodicStore(40, 2, 1)
	require.NoError(t, err)

	_, err = e.Store(episodeBatch(0, []float64{0, 0}, 2, 1), 2)
	require.NoError(t, err)
	_, err = e.Store(episodeBatch(2, []float64{0, 0}, 2, 1), 2)
	require.NoError(t, err)

	assert.Equal(t, 1, e.EpisodeCount())
	_, length := e.GetEpisode(0)
	assert.Equal(t, 4, length)
}

func TestEpisodicStore_OverflowFailsBeforeMutation(t *testing.T) {
	e, err := NewEpisodicStore(4, 1, 1)
	require.NoError(t, err)

	_, err = e.Store(episodeBatch(0, []float64{0, 0, 1}, 1, 1), 3)
	require.NoError(t, err)

	_, err = e.Store(episodeBatch(3, []float64{0, 0}, 1, 1), 2)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, 3, e.NextIndex())
	assert.Equal(t, 1, e.EpisodeCount())
}

func TestEpisodicStore_Clear(t *testing.T) {
	e, err := NewEpisodicStore(40, 2, 1)
	require.NoError(t, err)
	_, err = e.Store(episodeBatch(0, []float64{0, 0, 1}, 2, 1), 3)
	require.NoError(t, err)

	e.Clear()

	assert.Equal(t, 0, e.StoredSize())
	assert.Equal(t, 0, e.EpisodeCount())
	_, length := e.GetEpisode(0)
	assert.Equal(t, 0, length)
}
