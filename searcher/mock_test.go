package searcher

import (
	"fmt"
	"schotten/game"
	"slices"

	"golang.org/x/exp/rand"
)

type mockMove struct {
	id int
}

func (m mockMove) String() string {
	return fmt.Sprintf("move %d", m.id)
}

type mockState struct {
	player string
	winner string
	moves  []game.Move
	played []game.Move
	hash   game.StateHash
}

func (m mockState) Player() string {
	return m.player
}

func (m mockState) LegalMoves() []game.Move {
	return m.moves
}

func (m mockState) Play(move game.Move) game.State {
	return mockState{player: m.player, played: append(slices.Clone(m.played), move)}
}

func (m mockState) Hash() game.StateHash {
	return m.hash
}

func (m mockState) Winner() string {
	return m.winner
}

func (m mockState) Determinize(observer string, rng *rand.Rand) game.State {
	return m
}
