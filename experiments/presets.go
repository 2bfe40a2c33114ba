package experiments

import (
	"schotten/experiments/metrics"
	"schotten/game"
	"schotten/meta"
	"time"
)

const (
	NumGames   = 30 // Per match up
	TimeBudget = 10 * time.Millisecond
)

var parallelConfigs = []metrics.AgentConfig{
	{ID: 1, Goroutines: 1, Duration: TimeBudget},
	{ID: 2, Goroutines: 4, Duration: TimeBudget},
	{ID: 3, Goroutines: 8, Duration: TimeBudget},
	{ID: 4, Goroutines: 16, Duration: TimeBudget},
	{ID: 5, Goroutines: 32, Duration: TimeBudget},
}

// Presets are the experiments available without a config file.
var Presets = map[string]func() Config{
	"parallelization": ParallelizationConfig,
	"cutoff":          CutoffConfig,
	"evaluation":      EvaluationConfig,
}

func preset(name string, agents []metrics.AgentConfig, matchUps []MatchUp) Config {
	return Config{
		Name:      name,
		Games:     NumGames,
		Seed:      1,
		OutputDir: meta.RESULTS_DIR,
		Rules:     game.StandardRules(),
		Agents:    agents,
		MatchUps:  matchUps,
	}
}

// ParallelizationConfig pairs each agent against the sequential baseline in
// both roles.
func ParallelizationConfig() Config {
	baseline := metrics.AgentConfig{ID: 0, Goroutines: 1, Duration: TimeBudget}
	matchUps := []MatchUp{}
	for _, config := range parallelConfigs {
		matchUps = append(matchUps, MatchUp{Attacker: baseline.ID, Defender: config.ID, Swap: true})
	}
	return preset("parallelization", append([]metrics.AgentConfig{baseline}, parallelConfigs...), matchUps)
}

// CutoffConfig pairs full playouts against rollouts cut short and evaluated.
func CutoffConfig() Config {
	baseline := metrics.AgentConfig{ID: 0, Goroutines: meta.GO_ROUTINES, Duration: TimeBudget} // Without cutoff (full playout)
	cutoffConfigs := []metrics.AgentConfig{
		{ID: 1, Goroutines: baseline.Goroutines, Duration: baseline.Duration, Cutoff: 5},
		{ID: 2, Goroutines: baseline.Goroutines, Duration: baseline.Duration, Cutoff: 20},
		{ID: 3, Goroutines: baseline.Goroutines, Duration: baseline.Duration, Cutoff: 50},
	}

	matchUps := []MatchUp{}
	for _, config := range cutoffConfigs {
		matchUps = append(matchUps, MatchUp{Attacker: baseline.ID, Defender: config.ID, Swap: true})
	}
	return preset("cutoff", append([]metrics.AgentConfig{baseline}, cutoffConfigs...), matchUps)
}

// EvaluationConfig compares the cutoff evaluation functions.
func EvaluationConfig() Config {
	agents := []metrics.AgentConfig{
		{ID: 1, Goroutines: meta.GO_ROUTINES, Episodes: meta.EPISODES, Cutoff: meta.WITH_CUTOFF / 5, Evaluation: "damage"},
		{ID: 2, Goroutines: meta.GO_ROUTINES, Episodes: meta.EPISODES, Cutoff: meta.WITH_CUTOFF / 5, Evaluation: "formations"},
	}
	return preset("evaluation", agents, []MatchUp{{Attacker: 1, Defender: 2, Swap: true}})
}
