package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newTestBoard() *Board {
	b := NewBoard(StandardRules(), rand.New(rand.NewSource(1)))
	b.Setup()
	return b
}

func TestBoardSetup(t *testing.T) {
	b := newTestBoard()

	lengths, damagedLengths := []int{}, []int{}
	patterns, damagedPatterns := []Pattern{}, []Pattern{}
	for _, wall := range b.Walls() {
		require.Equal(t, Intact, wall.Status())
		lengths = append(lengths, wall.Length())
		patterns = append(patterns, wall.Pattern())
		damagedLengths = append(damagedLengths, wall.damagedLength)
		damagedPatterns = append(damagedPatterns, wall.damagedPattern)
	}
	require.Equal(t, []int{3, 4, 3, 2, 3, 4, 3}, lengths)
	require.Equal(t, []int{3, 2, 3, 4, 3, 2, 3}, damagedLengths)
	require.Equal(t, []Pattern{PlusPattern, NoPattern, NoPattern, NoPattern, NoPattern, NoPattern, MinusPattern}, patterns)
	require.Equal(t, []Pattern{RunPattern, EqualsPattern, ColorPattern, MinusPattern, ColorPattern, EqualsPattern, RunPattern}, damagedPatterns)
	require.Equal(t, 60, b.Deck().Size())
	require.Zero(t, b.Discard().Len())
	require.Equal(t, 3, b.Cauldrons())
}

func TestBoardPlayCard(t *testing.T) {
	t.Run("cancelled cards go to the discard", func(t *testing.T) {
		b := newTestBoard()
		b.PlayCard(NewCard(Red, 11), 0, Defender)

		got := b.PlayCard(NewCard(Red, 0), 0, Attacker)

		require.Equal(t, Success, got.Type)
		require.Len(t, got.Discarded, 2, "Result should be returned unchanged")
		require.True(t, b.Discard().Contains(NewCard(Red, 0)))
		require.True(t, b.Discard().Contains(NewCard(Red, 11)))
	})

	t.Run("panics on a bad wall index", func(t *testing.T) {
		b := newTestBoard()
		require.Panics(t, func() { b.PlayCard(NewCard(Red, 1), 7, Attacker) })
		require.Panics(t, func() { b.Retreat(-1) })
	})
}

func TestBoardActions(t *testing.T) {
	t.Run("retreating", func(t *testing.T) {
		b := newTestBoard()
		require.False(t, b.Retreat(2), "Nothing to retreat")

		b.PlayCard(NewCard(Blue, 4), 2, Attacker)
		require.True(t, b.Retreat(2))
		require.Empty(t, b.Wall(2).AttackerCards())
		require.True(t, b.Discard().Contains(NewCard(Blue, 4)))
	})

	t.Run("cauldrons are limited", func(t *testing.T) {
		b := newTestBoard()
		_, ok := b.Cauldron(0)
		require.False(t, ok, "Nothing to pour on")
		require.Equal(t, 3, b.Cauldrons(), "Failed cauldron should not use a charge")

		for i := 1; i <= 4; i++ {
			b.PlayCard(NewCard(Green, i), 1, Attacker)
		}
		for i := 4; i >= 2; i-- {
			card, ok := b.Cauldron(1)
			require.True(t, ok)
			require.Equal(t, NewCard(Green, i), card)
		}
		require.Zero(t, b.Cauldrons())

		_, ok = b.Cauldron(1)
		require.False(t, ok, "No charges left")
		require.Len(t, b.Wall(1).AttackerCards(), 1)
	})
}

func TestBoardRemaining(t *testing.T) {
	b := newTestBoard()
	b.PlayCard(NewCard(Red, 3), 0, Attacker)
	b.PlayCard(NewCard(Blue, 3), 0, Defender)
	b.Discard().Add(NewCard(Gray, 9))

	remaining := b.Remaining()

	require.Len(t, remaining, 57)
	require.NotContains(t, remaining, NewCard(Red, 3))
	require.NotContains(t, remaining, NewCard(Blue, 3))
	require.NotContains(t, remaining, NewCard(Gray, 9))
}

func TestBoardDeclareControl(t *testing.T) {
	b := newTestBoard()
	b.PlayCard(NewCard(Red, 10), 3, Attacker)
	b.PlayCard(NewCard(Red, 11), 3, Attacker)
	b.PlayCard(NewCard(Blue, 2), 1, Attacker)

	released := b.DeclareControl()

	require.ElementsMatch(t, []Card{NewCard(Red, 10), NewCard(Red, 11)}, released)
	require.Equal(t, Damaged, b.Wall(3).Status())
	require.True(t, b.Discard().Contains(NewCard(Red, 10)))
	require.Equal(t, Intact, b.Wall(1).Status())
	require.Len(t, b.Wall(1).AttackerCards(), 1)
}

func TestBoardWon(t *testing.T) {
	t.Run("no winner at the start", func(t *testing.T) {
		b := newTestBoard()
		require.Equal(t, Nobody, b.Won(true))
	})

	t.Run("broken wall", func(t *testing.T) {
		b := newTestBoard()
		b.Wall(5).Damage()
		b.Wall(5).Damage()
		require.Equal(t, AttackerWins, b.Won(false))
	})

	t.Run("four damaged walls", func(t *testing.T) {
		b := newTestBoard()
		for i := 0; i < 3; i++ {
			b.Wall(i).Damage()
		}
		require.Equal(t, Nobody, b.Won(false), "Three damaged walls are not enough")

		b.Wall(6).Damage()
		require.Equal(t, AttackerWins, b.Won(false))
	})

	t.Run("empty deck", func(t *testing.T) {
		b := newTestBoard()
		for !b.Deck().IsEmpty() {
			b.Deck().Pop()
		}
		require.Equal(t, Nobody, b.Won(false), "Deck only counts when checked")
		require.Equal(t, DefenderWins, b.Won(true))
	})

	t.Run("attacker win takes precedence over an empty deck", func(t *testing.T) {
		b := newTestBoard()
		for !b.Deck().IsEmpty() {
			b.Deck().Pop()
		}
		b.Wall(0).Damage()
		b.Wall(0).Damage()
		require.Equal(t, AttackerWins, b.Won(true))
	})

	t.Run("every defender side full", func(t *testing.T) {
		b := newTestBoard()
		cards := AllCards()
		next := 0
		for i, wall := range b.Walls() {
			for j := 0; j < wall.Length(); j++ {
				require.Equal(t, Success, b.PlayCard(cards[next], i, Defender).Type)
				next++
			}
		}
		require.True(t, b.DefenderSideFull())
		require.Equal(t, DefenderWins, b.Won(true))
	})
}
