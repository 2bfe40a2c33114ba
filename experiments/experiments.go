package experiments

import (
	"fmt"
	"schotten/engine"
	"schotten/experiments/metrics"
	"schotten/game"
	"schotten/searcher"
	"schotten/searcher/agent"

	"github.com/rs/zerolog/log"
)

// evaluations maps AgentConfig.Evaluation names to cutoff evaluation functions
var evaluations = map[string]game.Evaluate{
	"":           game.EvaluateDamage,
	"damage":     game.EvaluateDamage,
	"formations": game.EvaluateFormations,
}

// Run plays every matchup of cfg and stores the agent configs, game records
// and move records in a new run directory, which it returns.
func Run(cfg Config) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", fmt.Errorf("invalid experiment config: %w", err)
	}

	// Run a number of games for each matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	wins := map[string]int{}

	log.Info().Msgf("starting %s experiment...", cfg.Name)

	for mi, matchup := range pairings(cfg.MatchUps) {
		attacker := cfg.agent(matchup.Attacker)
		defender := cfg.agent(matchup.Defender)

		log.Info().Msgf("starting matchup %d between attacker=%+v and defender=%+v...", mi+1, attacker, defender)

		for i := 0; i < cfg.Games; i++ {
			count++
			seed := cfg.Seed + uint64(count)
			winner, gameMetric, moveMetrics := runGame(cfg.Rules, attacker, defender, seed)
			wins[winner]++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Attacker:   attacker.ID,
				Defender:   defender.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d game %d of %d with winner: %s", mi+1, i+1, cfg.Games, winner)
		}
		log.Info().Msgf("completed matchup %d", mi+1)
	}

	log.Info().Msgf("completed %s experiment: attacker won %d, defender won %d of %d games",
		cfg.Name, wins["Attacker"], wins["Defender"], count)

	return store(cfg, gameRecords, moveRecords)
}

func pairings(matchUps []MatchUp) []MatchUp {
	pairs := make([]MatchUp, 0, len(matchUps))
	for _, m := range matchUps {
		pairs = append(pairs, MatchUp{Attacker: m.Attacker, Defender: m.Defender})
		if m.Swap && m.Attacker != m.Defender {
			pairs = append(pairs, MatchUp{Attacker: m.Defender, Defender: m.Attacker})
		}
	}
	return pairs
}

func store(cfg Config, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) (string, error) {
	// Store experiment metadata
	writer, err := metrics.NewWriter(cfg.OutputDir, cfg.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(cfg.Agents)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	// Store experiment results
	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())

	return writer.Dir(), nil
}

// runGame executes a single game between two agents and returns the winner
func runGame(rules game.Rules, attacker, defender metrics.AgentConfig, seed uint64) (string, metrics.GameMetric, []metrics.MoveMetric) {
	e := engine.LocalEngine(createAgent(attacker, seed), createAgent(defender, seed+1), rules, seed)
	return e.Run()
}

func createAgent(config metrics.AgentConfig, seed uint64) agent.Agent {
	mcts := createMCTS(config, seed)
	if config.Training {
		return agent.NewTrainingAgent(mcts, seed)
	}
	return agent.NewEvaluationAgent(mcts)
}

func createMCTS(config metrics.AgentConfig, seed uint64) *searcher.MCTS {
	options := []searcher.Option{}

	if config.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(config.Episodes))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.Cutoff > 0 {
		options = append(options, searcher.WithCutoff(config.Cutoff))
	}
	options = append(options, searcher.WithEvaluationFn(evaluations[config.Evaluation]))
	options = append(options, searcher.WithSeed(seed))

	options = append(options, searcher.WithMetrics())
	return searcher.NewMCTS(config.Goroutines, options...)
}
