package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Move is a single decision of the player to move. Implementations must be
// comparable, they are used as map keys by the searcher.
type Move interface {
	fmt.Stringer
}

type StateHash uint64

// State should be immutable - operations on State always return a new copy
type State interface {
	Player() string
	LegalMoves() []Move
	Play(Move) State
	Hash() StateHash
	Winner() string
	// Determinize returns a copy in which every card hidden from observer is
	// redistributed at random, keeping the size of each hidden zone.
	Determinize(observer string, rng *rand.Rand) State
}

// Evaluates the game state to a score between -1 and 1 indicating how
// favorable the current player's position is to a winning (positive) outcome.
type Evaluate func(State) float64
