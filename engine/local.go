package engine

import (
	"schotten/experiments/metrics"
	"schotten/game"
	"schotten/gamemaster"
	"schotten/meta"
	"schotten/searcher"
	"schotten/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
)

type localEngine struct {
	master gamemaster.Master
	agents [2]agent.Agent // Indexed by game.Side
	seed   uint64
}

// LocalEngine pits two agents against each other in process, the first one
// attacking.
func LocalEngine(attacker, defender agent.Agent, rules game.Rules, seed uint64) Engine {
	return &localEngine{
		master: gamemaster.NewLocalMaster(rules, seed),
		agents: [2]agent.Agent{attacker, defender},
		seed:   seed,
	}
}

// Run executes the entire game loop until a winner is found.
func (e *localEngine) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	state, getUpdate := e.master.Init()
	start := time.Now()

	// Moves played since each side's previous search
	var lineages [2][]searcher.Segment
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("game %d: %s is starting", e.seed, state.Player())

	step := 0
	for state.Winner() == "" && step < meta.MAX_TURNS {
		side := state.CurrentSide
		player := state.Player()

		move, searchMetric := e.agents[side].FindMove(state, lineages[side])
		lineages[side] = nil

		err := e.master.Play(player, move)
		if err != nil {
			log.Warn().Err(err).Msgf("game %d: agent for %s returned %v, forcing first legal move", e.seed, player, move)
			move = state.LegalMoves()[0]
			if err := e.master.Play(player, move); err != nil {
				panic(err)
			}
		}

		update, ok := getUpdate()
		if !ok {
			panic("accepted move without update")
		}
		step++
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Move:         move.String(),
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("game %d move %d: %s plays %s", e.seed, step, player, move)

		segment := searcher.Segment{Move: update.Move, StateHash: update.Hash}
		for i := range lineages {
			lineages[i] = append(lineages[i], segment)
		}
		state = update.State
	}

	if state.Winner() == "" {
		log.Warn().Msgf("game %d: stopped after %d moves (no winner yet)", e.seed, step)
	}

	damaged := 0
	for _, wall := range state.Board.Walls() {
		if wall.Status() != game.Intact {
			damaged++
		}
	}
	end := time.Now()
	gameMetric := metrics.GameMetric{
		Seed:         e.seed,
		Winner:       state.Winner(),
		StartTime:    start,
		EndTime:      end,
		Duration:     end.Sub(start),
		TotalMoves:   step,
		DamagedWalls: damaged,
		Cauldrons:    state.Board.Cauldrons(),
	}
	return state.Winner(), gameMetric, moveMetrics
}
