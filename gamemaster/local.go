package gamemaster

import (
	"fmt"
	"schotten/game"
	"slices"
	"sync"
)

type Update struct {
	Player string
	Move   game.Move
	State  *game.GameState
	Hash   game.StateHash
}

type localMaster struct {
	mu       sync.Mutex
	rules    game.Rules
	seed     uint64
	state    *game.GameState
	history  []Update
	gameOver bool
}

func NewLocalMaster(rules game.Rules, seed uint64) Master {
	return &localMaster{rules: rules, seed: seed}
}

// Init deals a new game and returns a copy of its state.
func (e *localMaster) Init() (*game.GameState, UpdateGetter) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state = game.NewGameState(e.rules, e.seed)
	e.history = nil
	e.gameOver = false

	return e.state.Copy(), e.getter(0)
}

func (e *localMaster) Join() (*game.GameState, UpdateGetter) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == nil {
		e.state = game.NewGameState(e.rules, e.seed)
	}
	return e.state.Copy(), e.getter(len(e.history))
}

// getter reads the history starting at next. Callers hold the lock.
func (e *localMaster) getter(next int) UpdateGetter {
	return func() (Update, bool) {
		e.mu.Lock()
		defer e.mu.Unlock()

		if next >= len(e.history) { // No updates yet
			return Update{}, false
		}
		u := e.history[next]
		next++
		return Update{Player: u.Player, Move: u.Move, State: u.State.Copy(), Hash: u.Hash}, true
	}
}

// Play applies move on behalf of player if it is that player's turn and the
// move is legal.
func (e *localMaster) Play(player string, move game.Move) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == nil {
		return fmt.Errorf("game has not been initialized")
	}
	if e.gameOver {
		return ErrGameOver
	}
	if player != e.state.Player() {
		return fmt.Errorf("%w: %s to move, got %s", ErrNotYourTurn, e.state.Player(), player)
	}
	if !slices.Contains(e.state.LegalMoves(), move) {
		return fmt.Errorf("%w: %v", ErrIllegalMove, move)
	}

	e.state = e.state.Play(move).(*game.GameState)
	e.gameOver = e.state.Winner() != ""
	e.history = append(e.history, Update{
		Player: player,
		Move:   move,
		State:  e.state.Copy(),
		Hash:   e.state.Hash(),
	})
	return nil
}

func (e *localMaster) GameOver() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.gameOver
}
