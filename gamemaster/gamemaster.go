package gamemaster

import (
	"errors"
	"schotten/game"
)

var (
	ErrGameOver    = errors.New("game is over - no moves allowed")
	ErrNotYourTurn = errors.New("not your turn")
	ErrIllegalMove = errors.New("illegal move")
)

// UpdateGetter returns the next accepted move and the state it produced. ok
// is false when no update is pending.
type UpdateGetter func() (update Update, ok bool)

// Master validates and applies the moves of both players to one game.
type Master interface {
	Init() (*game.GameState, UpdateGetter)
	// Join returns the current state and a getter for the updates after it.
	// Every getter reads the full sequence of updates on its own.
	Join() (*game.GameState, UpdateGetter)
	Play(player string, move game.Move) error
	GameOver() bool
}
