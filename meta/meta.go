// meta/meta.go
package meta

// GO_ROUTINES defines the number of goroutines to use.
const GO_ROUTINES = 8

// EPISODES defines the number of episodes for MCTS.
const EPISODES = 150

// WITH_CUTOFF defines the cutoff value for MCTS.
const WITH_CUTOFF = 100

// MAX_TURNS caps the number of moves in one game, actions included.
const MAX_TURNS = 300

// RESULTS_DIR is where experiment runs are written.
const RESULTS_DIR = "results"
