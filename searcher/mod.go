package searcher

const WIN = 1.0
const LOSS = -WIN // Reward for loss outcome (negate from opponent perspective)

// rewarder credits score to player and its negation to the opponent
func rewarder(player string, score float64) func(string) float64 {
	return func(p string) float64 {
		if p == player {
			return score
		}
		return -score
	}
}
