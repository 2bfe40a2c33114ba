package player

import (
	"context"
	"errors"
	"fmt"
	"schotten/game"
	"schotten/gamemaster"
	"schotten/searcher"
	"schotten/searcher/agent"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const PollInterval = time.Millisecond

// Controller plays one side of a game hosted by a gamemaster.Master, keeping
// its agent's search tree in sync with the moves it observes.
type Controller struct {
	player string
	agent  agent.Agent
	master gamemaster.Master
}

func NewController(player string, agent agent.Agent, master gamemaster.Master) *Controller {
	return &Controller{
		player: player,
		agent:  agent,
		master: master,
	}
}

// Run plays from state until the game is over. getUpdate must deliver every
// move played after state, including the controller's own.
func (c *Controller) Run(ctx context.Context, state *game.GameState, getUpdate gamemaster.UpdateGetter) error {
	updates := []searcher.Segment{} // Since the last search
	for state.Winner() == "" {
		// Catch up before deciding anything
		if update, ok := getUpdate(); ok {
			updates = append(updates, searcher.Segment{Move: update.Move, StateHash: update.Hash})
			state = update.State
			continue
		}

		if state.Player() == c.player {
			move, _ := c.agent.FindMove(state, updates)
			if move == nil {
				move = state.LegalMoves()[0]
				log.Warn().Msgf("%s: agent found no move, playing first legal move %v", c.player, move)
			}
			if err := c.master.Play(c.player, move); err != nil {
				return fmt.Errorf("%s failed to play %v: %w", c.player, move, err)
			}
			log.Debug().Msgf("%s plays %s", c.player, move)
			updates = []searcher.Segment{}
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(PollInterval):
		}
	}
	return nil
}

// PlayMatch runs a controller per side against master until the game ends and
// returns the winner.
func PlayMatch(ctx context.Context, master gamemaster.Master, attacker, defender agent.Agent) (string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	state, _ := master.Init()
	controllers := []*Controller{
		NewController(game.Attacker.String(), attacker, master),
		NewController(game.Defender.String(), defender, master),
	}

	var wg sync.WaitGroup
	errs := make([]error, len(controllers))
	for i, controller := range controllers {
		joined, getUpdate := master.Join()
		if joined.Hash() != state.Hash() {
			return "", fmt.Errorf("game moved on before %s joined", controller.player)
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = controller.Run(ctx, joined, getUpdate)
			if errs[i] != nil {
				cancel() // Nobody is left to answer the other side
			}
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil && !errors.Is(err, context.Canceled) {
			return "", err
		}
	}
	if err := ctx.Err(); err != nil && !master.GameOver() {
		return "", err
	}
	last, _ := master.Join()
	return last.Winner(), nil
}
