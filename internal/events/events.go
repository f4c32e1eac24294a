package events

import "context"

// Publisher is implemented by downstream fan-out mechanisms.
type Publisher interface {
	PublishBufferEvent(ctx context.Context, payload BufferEvent) error
	PublishEpisodeEvent(ctx context.Context, payload EpisodeEvent) error
}

// BufferEvent is emitted on buffer lifecycle changes: created, cleared.
type BufferEvent struct {
	BufferID   string `json:"buffer_id"`
	EnvID      string `json:"env_id"`
	Event      string `json:"event"`
	Capacity   int    `json:"capacity,omitempty"`
	StoredSize int    `json:"stored_size,omitempty"`
}

// EpisodeEvent tracks episode boundaries in episodic buffers.
type EpisodeEvent struct {
	EnvID     string `json:"env_id"`
	EpisodeID int    `json:"episode_id"`
	Event     string `json:"event"`
	Length    int    `json:"length,omitempty"`
}

// Buffer event names.
const (
	EventBufferCreated = "buffer_created"
	EventBufferCleared = "buffer_cleared"

	EventEpisodeDeleted = "episode_deleted"
)

// NoopPublisher logs nothing; useful for tests.
type NoopPublisher struct{}

// PublishBufferEvent satisfies Publisher.
func (NoopPublisher) PublishBufferEvent(context.Context, BufferEvent) error { return nil }

// PublishEpisodeEvent satisfies Publisher.
func (NoopPublisher) PublishEpisodeEvent(context.Context, EpisodeEvent) error { return nil }
