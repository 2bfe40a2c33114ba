package experiments

import (
	"fmt"
	"os"
	"schotten/experiments/metrics"
	"schotten/game"
	"schotten/meta"

	"gopkg.in/yaml.v3"
)

type MatchUp struct {
	Attacker int  `yaml:"attacker"` // AgentConfig.ID
	Defender int  `yaml:"defender"` // AgentConfig.ID
	Swap     bool `yaml:"swap"`     // Also play with roles reversed
}

// Config describes an experiment: the agents, who plays whom and how often.
type Config struct {
	Name      string                `yaml:"name"`
	Games     int                   `yaml:"games"` // Per matchup and role assignment
	Seed      uint64                `yaml:"seed"`
	OutputDir string                `yaml:"output_dir"`
	Rules     game.Rules            `yaml:"rules"`
	Agents    []metrics.AgentConfig `yaml:"agents"`
	MatchUps  []MatchUp             `yaml:"matchups"`
}

func defaultConfig() Config {
	return Config{
		Games:     1,
		Seed:      1,
		OutputDir: meta.RESULTS_DIR,
		Rules:     game.StandardRules(),
	}
}

// LoadConfig reads a YAML experiment file. Fields left out keep their
// defaults, including the standard rules.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read experiment config: %w", err)
	}

	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse experiment config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid experiment config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("missing name")
	}
	if c.Games <= 0 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	if len(c.Rules.Walls) == 0 || c.Rules.HandSize <= 0 || c.Rules.DamagedToWin <= 0 {
		return fmt.Errorf("incomplete rules %+v", c.Rules)
	}
	if c.Rules.Cauldrons < 0 {
		return fmt.Errorf("cauldrons must not be negative, got %d", c.Rules.Cauldrons)
	}
	if c.Rules.DamagedToWin > len(c.Rules.Walls) {
		return fmt.Errorf("damaged_to_win %d exceeds the %d walls", c.Rules.DamagedToWin, len(c.Rules.Walls))
	}
	for i, wall := range c.Rules.Walls {
		if wall.Length <= 0 || wall.DamagedLength <= 0 {
			return fmt.Errorf("wall %d needs positive lengths", i)
		}
	}

	ids := make(map[int]bool, len(c.Agents))
	for _, agent := range c.Agents {
		if ids[agent.ID] {
			return fmt.Errorf("duplicate agent id %d", agent.ID)
		}
		if agent.Episodes <= 0 && agent.Duration <= 0 {
			return fmt.Errorf("agent %d needs episodes or a duration", agent.ID)
		}
		if _, ok := evaluations[agent.Evaluation]; !ok {
			return fmt.Errorf("agent %d has unknown evaluation %q", agent.ID, agent.Evaluation)
		}
		ids[agent.ID] = true
	}
	if len(c.MatchUps) == 0 {
		return fmt.Errorf("no matchups")
	}
	for _, m := range c.MatchUps {
		if !ids[m.Attacker] || !ids[m.Defender] {
			return fmt.Errorf("matchup %+v refers to an unknown agent", m)
		}
	}
	return nil
}

func (c Config) agent(id int) metrics.AgentConfig {
	for _, agent := range c.Agents {
		if agent.ID == id {
			return agent
		}
	}
	panic(fmt.Sprintf("unknown agent %d", id))
}
