package agent

import (
	"schotten/game"
	"schotten/searcher"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindMax(t *testing.T) {
	t.Run("most visited move", func(t *testing.T) {
		policy := map[game.Move]float64{
			game.RetreatMove(0): 3,
			game.RetreatMove(1): 10,
			game.RetreatMove(2): 7,
		}
		require.Equal(t, game.Move(game.RetreatMove(1)), findMax(policy))
	})

	t.Run("ties broken by name", func(t *testing.T) {
		policy := map[game.Move]float64{
			game.RetreatMove(4): 5,
			game.RetreatMove(2): 5,
		}
		require.Equal(t, game.Move(game.RetreatMove(2)), findMax(policy))
	})
}

func TestAdjustTemperature(t *testing.T) {
	policy := map[game.Move]float64{
		game.RetreatMove(0): 1,
		game.RetreatMove(1): 3,
	}

	got := adjustTemperature(policy, 1.0)

	require.InDelta(t, 0.25, got[game.RetreatMove(0)], 1e-9)
	require.InDelta(t, 0.75, got[game.RetreatMove(1)], 1e-9)

	sharper := adjustTemperature(policy, 0.5)
	require.Greater(t, sharper[game.RetreatMove(1)], got[game.RetreatMove(1)], "Lower temperature should favour the most visited move")
}

func TestSample(t *testing.T) {
	policy := map[game.Move]float64{
		game.RetreatMove(0): 0.25,
		game.RetreatMove(1): 0.75,
	}

	require.Equal(t, game.Move(game.RetreatMove(0)), sample(policy, 0.1))
	require.Equal(t, game.Move(game.RetreatMove(1)), sample(policy, 0.3))
	require.Equal(t, game.Move(game.RetreatMove(1)), sample(policy, 0.9999999))
}

func TestAgentsPickLegalMoves(t *testing.T) {
	state := game.NewGameState(game.StandardRules(), 11)
	legal := state.LegalMoves()

	agents := []Agent{
		NewEvaluationAgent(searcher.NewMCTS(2, searcher.WithEpisodes(60), searcher.WithCutoff(10), searcher.WithSeed(1))),
		NewTrainingAgent(searcher.NewMCTS(2, searcher.WithEpisodes(60), searcher.WithCutoff(10), searcher.WithSeed(2)), 3),
	}
	for _, agent := range agents {
		move, _ := agent.FindMove(state, nil)
		require.Contains(t, legal, move)
	}
}
