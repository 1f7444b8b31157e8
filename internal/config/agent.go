package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// EnvAPIKey is the shared credential fallback applied when a per-agent
// key is not set.
const EnvAPIKey = "QUORUM_API_KEY"

const defaultBaseURL = "https://api.openai.com/v1"

// AgentConfig holds the endpoint parameters for one agent: the supervisor
// or either sub-classifier. Each agent is configured independently so the
// two sub-agents can run against distinct providers and models.
type AgentConfig struct {
	Model       string  `toml:"model"`
	BaseURL     string  `toml:"base_url"`
	APIKey      string  `toml:"api_key"`
	Temperature float64 `toml:"temperature"`
	Timeout     string  `toml:"timeout"`
}

// AgentEnv maps AgentConfig fields to environment variable names for
// override injection.
type AgentEnv struct {
	Model       string
	BaseURL     string
	APIKey      string
	Temperature string
	Timeout     string
}

// TimeoutDuration returns Timeout as a time.Duration.
func (c *AgentConfig) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Merge overwrites non-zero fields from overlay.
func (c *AgentConfig) Merge(overlay *AgentConfig) {
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.APIKey != "" {
		c.APIKey = overlay.APIKey
	}
	if overlay.Temperature != 0 {
		c.Temperature = overlay.Temperature
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
}

// Finalize applies defaults, environment variable overrides, and
// validation. defaultModel seeds the model when neither file nor
// environment provides one.
func (c *AgentConfig) Finalize(name, defaultModel string, env *AgentEnv) error {
	c.loadDefaults(defaultModel)
	c.loadEnv(env)
	return c.validate(name)
}

func (c *AgentConfig) loadDefaults(defaultModel string) {
	if c.Model == "" {
		c.Model = defaultModel
	}
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	if c.Timeout == "" {
		c.Timeout = "60s"
	}
}

func (c *AgentConfig) loadEnv(env *AgentEnv) {
	if v := os.Getenv(env.Model); v != "" {
		c.Model = v
	}
	if v := os.Getenv(env.BaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(env.APIKey); v != "" {
		c.APIKey = v
	}
	if c.APIKey == "" {
		c.APIKey = os.Getenv(EnvAPIKey)
	}
	if v := os.Getenv(env.Temperature); v != "" {
		if t, err := strconv.ParseFloat(v, 64); err == nil {
			c.Temperature = t
		}
	}
	if v := os.Getenv(env.Timeout); v != "" {
		c.Timeout = v
	}
}

func (c *AgentConfig) validate(name string) error {
	if c.Model == "" {
		return fmt.Errorf("%s: model required", name)
	}
	if c.BaseURL == "" {
		return fmt.Errorf("%s: base_url required", name)
	}
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("%s: invalid timeout: %w", name, err)
	}
	return nil
}

// AgentsConfig groups the supervisor and both sub-agent configurations.
type AgentsConfig struct {
	Supervisor AgentConfig `toml:"supervisor"`
	AgentA     AgentConfig `toml:"agent_a"`
	AgentB     AgentConfig `toml:"agent_b"`
}

var supervisorEnv = &AgentEnv{
	Model:       "QUORUM_SUPERVISOR_MODEL",
	BaseURL:     "QUORUM_SUPERVISOR_BASE_URL",
	APIKey:      "QUORUM_SUPERVISOR_API_KEY",
	Temperature: "QUORUM_SUPERVISOR_TEMPERATURE",
	Timeout:     "QUORUM_SUPERVISOR_TIMEOUT",
}

var agentAEnv = &AgentEnv{
	Model:       "QUORUM_AGENT_A_MODEL",
	BaseURL:     "QUORUM_AGENT_A_BASE_URL",
	APIKey:      "QUORUM_AGENT_A_API_KEY",
	Temperature: "QUORUM_AGENT_A_TEMPERATURE",
	Timeout:     "QUORUM_AGENT_A_TIMEOUT",
}

var agentBEnv = &AgentEnv{
	Model:       "QUORUM_AGENT_B_MODEL",
	BaseURL:     "QUORUM_AGENT_B_BASE_URL",
	APIKey:      "QUORUM_AGENT_B_API_KEY",
	Temperature: "QUORUM_AGENT_B_TEMPERATURE",
	Timeout:     "QUORUM_AGENT_B_TIMEOUT",
}

// Merge overwrites non-zero fields from overlay across all agents.
func (c *AgentsConfig) Merge(overlay *AgentsConfig) {
	c.Supervisor.Merge(&overlay.Supervisor)
	c.AgentA.Merge(&overlay.AgentA)
	c.AgentB.Merge(&overlay.AgentB)
}

// Finalize applies defaults, environment variable overrides, and
// validation to every agent. The supervisor runs slightly warm for
// guidance drafting; the sub-agents default to deterministic sampling.
func (c *AgentsConfig) Finalize() error {
	if c.Supervisor.Temperature == 0 {
		c.Supervisor.Temperature = 0.1
	}
	if err := c.Supervisor.Finalize("supervisor", "gpt-4.1", supervisorEnv); err != nil {
		return err
	}
	if err := c.AgentA.Finalize("agent_a", "gpt-4.1-mini", agentAEnv); err != nil {
		return err
	}
	if err := c.AgentB.Finalize("agent_b", "gpt-4o-mini", agentBEnv); err != nil {
		return err
	}
	return nil
}
