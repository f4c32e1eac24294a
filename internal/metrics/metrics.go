package metrics

import (
	"time"

	"github.com/rs/zerolog"
)

// Metrics collector for replay buffer operations
type Collector struct {
	logger zerolog.Logger
}

func NewCollector(logger zerolog.Logger) *Collector {
	return &Collector{
		logger: logger,
	}
}

// Track append metrics
func (c *Collector) BatchAppended(envID string, count, storedSize int, duration time.Duration) {
	c.logger.Info().
		Str("metric", "batch_appended").
		Str("env_id", envID).
		Int("count", count).
		Int("stored_size", storedSize).
		Dur("duration", duration).
		Msg("Append metric")
}

// Track sample metrics
func (c *Collector) BatchSampled(envID string, batchSize int, beta float64, duration time.Duration) {
	c.logger.Info().
		Str("metric", "batch_sampled").
		Str("env_id", envID).
		Int("batch_size", batchSize).
		Float64("beta", beta).
		Dur("duration", duration).
		Msg("Sample metric")
}

// Track priority updates
func (c *Collector) PrioritiesUpdated(envID string, count int) {
	c.logger.Info().
		Str("metric", "priorities_updated").
		Str("env_id", envID).
		Int("count", count).
		Msg("Priority update metric")
}

// Track episode deletions
func (c *Collector) EpisodeDeleted(envID string, episodeID, removed int) {
	c.logger.Info().
		Str("metric", "episode_deleted").
		Str("env_id", envID).
		Int("episode_id", episodeID).
		Int("removed", removed).
		Msg("Episode deletion metric")
}
