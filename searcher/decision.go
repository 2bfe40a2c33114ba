package searcher

import (
	"math"
	"schotten/game"
	"sync"
)

// decision is a node of the information set tree. It is reached by move, made
// by player, and is shared by every determinization in which that move was legal.
type decision struct {
	sync.RWMutex
	parent       *decision
	player       string // Player who made the move into this node
	move         game.Move
	hash         game.StateHash
	children     map[game.Move]*decision
	rewards      float64
	visits       float64
	availability float64
}

func newDecision(parent *decision, player string, move game.Move, hash game.StateHash) *decision {
	return &decision{
		parent:   parent,
		player:   player,
		move:     move,
		hash:     hash,
		children: make(map[game.Move]*decision),
	}
}

// SelectOrExpand descends one level for the given determinized state. It
// expands the first legal move without a child, otherwise it selects the
// legal child with the highest UCB score.
func (d *decision) SelectOrExpand(state game.State) (*decision, game.State, bool) {
	d.Lock()
	defer d.Unlock()

	moves := state.LegalMoves()
	if len(moves) == 0 { // Terminal node
		return d, state, false
	}

	player := state.Player()
	for _, move := range moves {
		if _, ok := d.children[move]; !ok { // Expandable node
			d.markAvailable(moves)
			childState := state.Play(move)
			child := newDecision(d, player, move, childState.Hash())
			d.children[move] = child
			child.addAvailability()
			child.ApplyLoss()
			return child, childState, false
		}
	}

	// Every legal move has a child
	d.markAvailable(moves)
	child := d.pickChild(moves)
	child.ApplyLoss()
	return child, state.Play(child.move), true
}

func (d *decision) markAvailable(moves []game.Move) {
	for _, move := range moves {
		if child, ok := d.children[move]; ok {
			child.addAvailability()
		}
	}
}

func (d *decision) pickChild(moves []game.Move) *decision {
	var best *decision
	maxScore := math.Inf(-1)
	for _, move := range moves {
		child := d.children[move]
		score := child.Score()
		if score == math.Inf(1) {
			return child
		}
		if best == nil || score > maxScore {
			maxScore = score
			best = child
		}
	}
	return best
}

func (d *decision) addAvailability() {
	d.Lock()
	defer d.Unlock()

	d.availability++
}

func (d *decision) ApplyLoss() {
	d.Lock()
	defer d.Unlock()

	d.rewards += LOSS
	d.visits++
}

func (d *decision) Score() float64 {
	d.RLock()
	defer d.RUnlock()

	return ucb(d.rewards, d.visits, d.availability)
}

func (d *decision) Backup(rewarder func(string) float64) *decision {
	d.Lock()
	defer d.Unlock()

	if d.parent != nil { // Non-root node
		d.reverseLoss()
	}

	d.rewards += rewarder(d.player)
	d.visits++

	return d.parent
}

func (d *decision) reverseLoss() {
	d.rewards -= LOSS
	d.visits--
}

func (d *decision) Value() float64 {
	d.RLock()
	defer d.RUnlock()

	return d.visits
}

// Policy returns the visit count of each child whose move is in legal.
func (d *decision) Policy(legal []game.Move) map[game.Move]float64 {
	d.RLock()
	defer d.RUnlock()

	policy := make(map[game.Move]float64, len(legal))
	for _, move := range legal {
		if child, ok := d.children[move]; ok {
			policy[move] = child.Value()
		}
	}
	return policy
}
