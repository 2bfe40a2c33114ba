package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"schotten/experiments"
	"schotten/game"
	"schotten/gamemaster"
	"schotten/meta"
	"schotten/player"
	"schotten/searcher"
	"schotten/searcher/agent"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	configPath := flag.String("config", "", "Path to a YAML experiment config")
	preset := flag.String("preset", getEnv("EXPERIMENT", "cutoff"), "Name of a built-in experiment, used without -config")
	match := flag.Bool("match", false, "Play a single match between two searching agents instead")
	seed := flag.Uint64("seed", 1, "Seed of the match")
	duration := flag.Duration("duration", 100*time.Millisecond, "Search time per move in a match")
	flag.Parse()

	if *match {
		playMatch(*seed, *duration)
		return
	}

	cfg, err := loadConfig(*configPath, *preset)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load experiment")
	}
	dir, err := experiments.Run(cfg)
	if err != nil {
		log.Fatal().Err(err).Msgf("%s experiment failed", cfg.Name)
	}
	log.Info().Str("dir", dir).Msgf("finished %s experiment", cfg.Name)
}

func loadConfig(path, preset string) (experiments.Config, error) {
	if path != "" {
		return experiments.LoadConfig(path)
	}
	create, ok := experiments.Presets[preset]
	if !ok {
		return experiments.Config{}, fmt.Errorf("unknown preset %q", preset)
	}
	return create(), nil
}

func playMatch(seed uint64, duration time.Duration) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	newAgent := func(seed uint64) agent.Agent {
		return agent.NewEvaluationAgent(searcher.NewMCTS(meta.GO_ROUTINES,
			searcher.WithDuration(duration), searcher.WithCutoff(meta.WITH_CUTOFF), searcher.WithSeed(seed)))
	}
	master := gamemaster.NewLocalMaster(game.StandardRules(), seed)

	log.Info().Uint64("seed", seed).Msg("starting match")
	winner, err := player.PlayMatch(ctx, master, newAgent(seed), newAgent(seed+1))
	if err != nil {
		log.Fatal().Err(err).Msg("match aborted")
	}
	log.Info().Msgf("match over! Winner: %s", winner)
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
