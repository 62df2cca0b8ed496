package config

import (
	"github.com/fsnotify/fsnotify"

	"github.com/DANNY1169/resume-role-classifier/internal/errors"
)

// Watch re-reads the config file whenever it changes on disk and logs the
// effective scoring policy. Structural settings (server, observability) still
// require a restart; only the scoring policy and role descriptions are safe
// to pick up live, which is why the callback re-unmarshals into a fresh
// struct and copies just those sections.
func (c *Config) Watch(logger *errors.Logger) {
	if c.viper == nil || c.viper.ConfigFileUsed() == "" {
		return
	}

	c.viper.OnConfigChange(func(e fsnotify.Event) {
		logger.Info("Config file changed", "file", e.Name, "op", e.Op.String())

		var updated Config
		if err := c.viper.Unmarshal(&updated); err != nil {
			logger.LogError(err, "Failed to reload config file, keeping previous values", "file", e.Name)
			return
		}
		if err := updated.Scoring.Validate(); err != nil {
			logger.LogError(err, "Reloaded scoring policy is invalid, keeping previous values")
			return
		}
		applyRoleDescriptionDefaults(&updated.Roles)

		c.Scoring = updated.Scoring
		c.Roles = updated.Roles

		logger.Info("Scoring policy reloaded",
			"min_sentence_words", c.Scoring.MinSentenceWords,
			"min_alpha_ratio", c.Scoring.MinAlphaRatio,
			"recency_fraction", c.Scoring.RecencyFraction,
			"recency_boost", c.Scoring.RecencyBoost,
			"softmax_temperature", c.Scoring.SoftmaxTemperature,
			"evidence_count", c.Scoring.EvidenceCount)
	})
	c.viper.WatchConfig()
}
