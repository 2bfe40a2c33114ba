package searcher

import "math"

// Hyperparameters for MCTS

const CSquared = 2.0 // Exploration constant

// ucb scores a child from the perspective of the player choosing it. Under
// determinization a child is only selectable when its move is legal, so the
// exploration term counts the child's availability rather than the parent's
// visits.
func ucb(rewards, visits, availability float64) float64 {
	// Prioritize unexplored nodes
	if visits == 0 {
		return math.Inf(1)
	}
	// UCB = q/n + sqrt(c^2*ln(N)/n)
	return rewards/visits + math.Sqrt(CSquared*math.Log(max(availability, 1))/visits)
}
