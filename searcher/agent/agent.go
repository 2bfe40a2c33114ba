package agent

import (
	"schotten/experiments/metrics"
	"schotten/game"
	"schotten/searcher"
)

type Agent interface {
	// FindMove returns the chosen move and performance metrics (if collected) from the simulation process
	FindMove(state game.State, updates []searcher.Segment) (game.Move, metrics.SearchMetric)
}
