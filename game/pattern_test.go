package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	colorRun     = []Card{NewCard(Red, 1), NewCard(Red, 2), NewCard(Red, 3)}
	sameColor    = []Card{NewCard(Red, 1), NewCard(Red, 3), NewCard(Red, 7)}
	sameStrength = []Card{NewCard(Red, 5), NewCard(Blue, 5), NewCard(Green, 5)}
	run          = []Card{NewCard(Red, 4), NewCard(Blue, 5), NewCard(Green, 6)}
	sum          = []Card{NewCard(Red, 1), NewCard(Blue, 5), NewCard(Green, 9)}
)

func TestClassify(t *testing.T) {
	require.Equal(t, ColorRunFormation, Classify(colorRun))
	require.Equal(t, ColorRunFormation, Classify([]Card{NewCard(Red, 3), NewCard(Red, 1), NewCard(Red, 2)}),
		"Classification should not depend on order")
	require.Equal(t, ColorFormation, Classify(sameColor))
	require.Equal(t, SameStrengthFormation, Classify(sameStrength))
	require.Equal(t, RunFormation, Classify(run))
	require.Equal(t, SumFormation, Classify(sum))
}

func TestStrength(t *testing.T) {
	t.Run("no pattern keeps the formation rank", func(t *testing.T) {
		require.Equal(t, 406, Strength(colorRun, NoPattern))
		require.Equal(t, 315, Strength(sameStrength, NoPattern))
		require.Equal(t, 211, Strength(sameColor, NoPattern))
		require.Equal(t, 115, Strength(run, NoPattern))
		require.Equal(t, 15, Strength(sum, NoPattern))
	})

	t.Run("plus scores the sum", func(t *testing.T) {
		require.Equal(t, 6, Strength(colorRun, PlusPattern))
		require.Equal(t, 15, Strength(sameStrength, PlusPattern))
	})

	t.Run("minus scores the negated sum", func(t *testing.T) {
		require.Equal(t, -6, Strength(colorRun, MinusPattern))
		require.Equal(t, -15, Strength(sum, MinusPattern))
	})

	t.Run("color keeps only colored formations", func(t *testing.T) {
		require.Equal(t, 406, Strength(colorRun, ColorPattern))
		require.Equal(t, 211, Strength(sameColor, ColorPattern))
		require.Equal(t, 15, Strength(run, ColorPattern))
		require.Equal(t, 15, Strength(sameStrength, ColorPattern))
	})

	t.Run("run keeps only runs", func(t *testing.T) {
		require.Equal(t, 406, Strength(colorRun, RunPattern))
		require.Equal(t, 115, Strength(run, RunPattern))
		require.Equal(t, 11, Strength(sameColor, RunPattern))
		require.Equal(t, 15, Strength(sameStrength, RunPattern))
	})

	t.Run("equals keeps only same strength", func(t *testing.T) {
		require.Equal(t, 315, Strength(sameStrength, EqualsPattern))
		require.Equal(t, 6, Strength(colorRun, EqualsPattern))
		require.Equal(t, 11, Strength([]Card{NewCard(Red, 5), NewCard(Red, 6)}, EqualsPattern))
	})

	t.Run("any higher rank beats any lower rank", func(t *testing.T) {
		lowRun := []Card{NewCard(Red, 0), NewCard(Blue, 1), NewCard(Green, 2)}
		highSum := []Card{NewCard(Red, 11), NewCard(Blue, 11), NewCard(Green, 9)}
		require.Greater(t, Strength(lowRun, NoPattern), Strength(highSum, NoPattern))
	})
}

func TestStrengthIsOrderIndependent(t *testing.T) {
	formations := [][]Card{colorRun, sameColor, sameStrength, run, sum}
	patterns := []Pattern{NoPattern, PlusPattern, MinusPattern, ColorPattern, RunPattern, EqualsPattern}

	for _, formation := range formations {
		for _, pattern := range patterns {
			expected := Strength(formation, pattern)
			for _, perm := range permutations(formation) {
				require.Equal(t, expected, Strength(perm, pattern), "%v under %s", perm, pattern)
			}
		}
	}
}

func TestPatternText(t *testing.T) {
	var p Pattern
	require.NoError(t, p.UnmarshalText([]byte("Equals")))
	require.Equal(t, EqualsPattern, p)
	require.Error(t, p.UnmarshalText([]byte("Square")))

	text, err := MinusPattern.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "Minus", string(text))
}

func permutations(cards []Card) [][]Card {
	if len(cards) <= 1 {
		return [][]Card{append([]Card{}, cards...)}
	}
	var result [][]Card
	for i := range cards {
		rest := append(append([]Card{}, cards[:i]...), cards[i+1:]...)
		for _, perm := range permutations(rest) {
			result = append(result, append([]Card{cards[i]}, perm...))
		}
	}
	return result
}
