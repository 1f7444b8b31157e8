package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	EnvConsensusMinConfidence   = "QUORUM_CONSENSUS_MIN_CONFIDENCE"
	EnvConsensusMaxRounds       = "QUORUM_CONSENSUS_MAX_ROUNDS"
	EnvConsensusSessionBudget   = "QUORUM_CONSENSUS_SESSION_BUDGET"
	EnvConsensusRetryBackoff    = "QUORUM_CONSENSUS_RETRY_BACKOFF"
	EnvConsensusDisableGuidance = "QUORUM_CONSENSUS_DISABLE_GUIDANCE"
)

// ConsensusConfig holds the agreement policy for classification sessions.
// MaxRounds counts total dispatch cycles, so a session performs at most
// MaxRounds-1 retries after the first round.
type ConsensusConfig struct {
	MinConfidence   float64 `toml:"min_confidence"`
	MaxRounds       int     `toml:"max_rounds"`
	SessionBudget   string  `toml:"session_budget"`
	RetryBackoff    string  `toml:"retry_backoff"`
	DisableGuidance bool    `toml:"disable_guidance"`
}

// MaxRetries returns the number of re-dispatches allowed after the first round.
func (c *ConsensusConfig) MaxRetries() int {
	return c.MaxRounds - 1
}

// SessionBudgetDuration returns SessionBudget as a time.Duration.
func (c *ConsensusConfig) SessionBudgetDuration() time.Duration {
	d, _ := time.ParseDuration(c.SessionBudget)
	return d
}

// RetryBackoffDuration returns RetryBackoff as a time.Duration.
func (c *ConsensusConfig) RetryBackoffDuration() time.Duration {
	d, _ := time.ParseDuration(c.RetryBackoff)
	return d
}

// Merge overwrites fields from overlay. Boolean fields always apply;
// numeric and string fields only when non-zero.
func (c *ConsensusConfig) Merge(overlay *ConsensusConfig) {
	c.DisableGuidance = overlay.DisableGuidance

	if overlay.MinConfidence != 0 {
		c.MinConfidence = overlay.MinConfidence
	}
	if overlay.MaxRounds != 0 {
		c.MaxRounds = overlay.MaxRounds
	}
	if overlay.SessionBudget != "" {
		c.SessionBudget = overlay.SessionBudget
	}
	if overlay.RetryBackoff != "" {
		c.RetryBackoff = overlay.RetryBackoff
	}
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *ConsensusConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

func (c *ConsensusConfig) loadDefaults() {
	if c.MinConfidence == 0 {
		c.MinConfidence = 0.90
	}
	if c.MaxRounds == 0 {
		c.MaxRounds = 3
	}
	if c.SessionBudget == "" {
		c.SessionBudget = "5m"
	}
	if c.RetryBackoff == "" {
		c.RetryBackoff = "1s"
	}
}

func (c *ConsensusConfig) loadEnv() {
	if v := os.Getenv(EnvConsensusMinConfidence); v != "" {
		if conf, err := strconv.ParseFloat(v, 64); err == nil {
			c.MinConfidence = conf
		}
	}
	if v := os.Getenv(EnvConsensusMaxRounds); v != "" {
		if rounds, err := strconv.Atoi(v); err == nil {
			c.MaxRounds = rounds
		}
	}
	if v := os.Getenv(EnvConsensusSessionBudget); v != "" {
		c.SessionBudget = v
	}
	if v := os.Getenv(EnvConsensusRetryBackoff); v != "" {
		c.RetryBackoff = v
	}
	if v := os.Getenv(EnvConsensusDisableGuidance); v != "" {
		if disabled, err := strconv.ParseBool(v); err == nil {
			c.DisableGuidance = disabled
		}
	}
}

func (c *ConsensusConfig) validate() error {
	if c.MinConfidence < 0 || c.MinConfidence > 1 {
		return fmt.Errorf("min_confidence %v outside [0,1]", c.MinConfidence)
	}
	if c.MaxRounds < 1 {
		return fmt.Errorf("max_rounds must be at least 1, got %d", c.MaxRounds)
	}
	if _, err := time.ParseDuration(c.SessionBudget); err != nil {
		return fmt.Errorf("invalid session_budget: %w", err)
	}
	if _, err := time.ParseDuration(c.RetryBackoff); err != nil {
		return fmt.Errorf("invalid retry_backoff: %w", err)
	}
	return nil
}
