package agent

import (
	"schotten/experiments/metrics"
	"schotten/game"
	"schotten/searcher"
)

type evaluationAgent struct {
	mcts *searcher.MCTS
}

// NewEvaluationAgent returns a new agent for actual game play during evaluation.
func NewEvaluationAgent(mcts *searcher.MCTS) Agent {
	return evaluationAgent{mcts: mcts}
}

func (a evaluationAgent) FindMove(state game.State, updates []searcher.Segment) (game.Move, metrics.SearchMetric) {
	policy, metric := a.mcts.Simulate(state, updates)
	return findMax(policy), metric
}

// findMax returns the most visited move, breaking ties by move name.
func findMax(policy map[game.Move]float64) game.Move {
	var maxMove game.Move
	maxVisit := -1.0
	for move, visit := range policy {
		if visit > maxVisit || (visit == maxVisit && move.String() < maxMove.String()) {
			maxVisit = visit
			maxMove = move
		}
	}
	return maxMove
}
