package events

import (
	"context"
	"encoding/json"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
)

// NATSPublisher implements Publisher using NATS
type NATSPublisher struct {
	conn    *nats.Conn
	subject string
	logger  zerolog.Logger
}

// NewNATSPublisher creates a new NATS-backed publisher
func NewNATSPublisher(natsURL, subject string, logger zerolog.Logger) (*NATSPublisher, error) {
	conn, err := nats.Connect(natsURL)
	if err != nil {
		return nil, err
	}

	return &NATSPublisher{
		conn:    conn,
		subject: subject,
		logger:  logger,
	}, nil
}

// Close closes the NATS connection
func (n *NATSPublisher) Close() {
	if n.conn != nil {
		n.conn.Close()
	}
}

// PublishBufferEvent publishes buffer lifecycle events to NATS
func (n *NATSPublisher) PublishBufferEvent(ctx context.Context, event BufferEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if err := n.conn.Publish(n.subject, data); err != nil {
		n.logger.Error().Err(err).Str("subject", n.subject).Msg("Failed to publish buffer event")
		return err
	}

	n.logger.Debug().
		Str("env_id", event.EnvID).
		Str("event", event.Event).
		Str("subject", n.subject).
		Msg("Published buffer event")

	return nil
}

// PublishEpisodeEvent publishes episode events to NATS
func (n *NATSPublisher) PublishEpisodeEvent(ctx context.Context, event EpisodeEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	subject := n.subject + ".episodes"
	if err := n.conn.Publish(subject, data); err != nil {
		n.logger.Error().Err(err).Str("subject", subject).Msg("Failed to publish episode event")
		return err
	}

	n.logger.Debug().
		Str("env_id", event.EnvID).
		Int("episode_id", event.EpisodeID).
		Str("event", event.Event).
		Str("subject", subject).
		Msg("Published episode event")

	return nil
}
