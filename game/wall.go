package game

import (
	"fmt"
	"math"
	"slices"

	"schotten/utils"
)

type Side int

const (
	Attacker Side = iota
	Defender
)

func (s Side) String() string {
	if s == Attacker {
		return "Attacker"
	}
	return "Defender"
}

func (s Side) Opponent() Side {
	return 1 - s
}

type Status int

const (
	Intact Status = iota
	Damaged
	Broken
)

func (s Status) String() string {
	switch s {
	case Intact:
		return "Intact"
	case Damaged:
		return "Damaged"
	default:
		return "Broken"
	}
}

type ResultType int

const (
	Success ResultType = iota
	// Failure means no space on the side, or nothing for the action to remove.
	Failure
	// Action means a retreat or cauldron was applied and the turn goes on.
	Action
)

// PlayResult reports the outcome of a play and the cards it took out of play.
type PlayResult struct {
	Type      ResultType
	Discarded []Card
}

// Wall is one of the seven fortification segments.
type Wall struct {
	index          int
	status         Status
	length         int
	pattern        Pattern
	intactLength   int
	damagedLength  int
	intactPattern  Pattern
	damagedPattern Pattern
	cards          [2][]Card // Indexed by Side, in play order
	finishedFirst  bool      // Attacker completed its side while the defender had room
}

func NewWall(index int, spec WallSpec) *Wall {
	w := &Wall{
		index:          index,
		intactLength:   spec.Length,
		damagedLength:  spec.DamagedLength,
		intactPattern:  spec.Pattern,
		damagedPattern: spec.DamagedPattern,
	}
	w.Reset()
	return w
}

// Reset restores the wall to its intact state with no cards.
func (w *Wall) Reset() {
	w.status = Intact
	w.length = w.intactLength
	w.pattern = w.intactPattern
	w.cards = [2][]Card{}
	w.finishedFirst = false
}

func (w *Wall) Index() int { return w.index }
func (w *Wall) Status() Status { return w.status }
func (w *Wall) Length() int { return w.length }
func (w *Wall) Pattern() Pattern { return w.pattern }
func (w *Wall) AttackerFinishedFirst() bool { return w.finishedFirst }

func (w *Wall) AttackerCards() []Card { return w.Cards(Attacker) }
func (w *Wall) DefenderCards() []Card { return w.Cards(Defender) }

// Cards returns a snapshot of the cards played on side.
func (w *Wall) Cards(side Side) []Card {
	return slices.Clone(w.cards[side])
}

func (w *Wall) HasSpace(side Side) bool {
	return w.status != Broken && len(w.cards[side]) < w.length
}

func (w *Wall) IsFull(side Side) bool {
	return len(w.cards[side]) >= w.length
}

func (w *Wall) Contains(card Card) bool {
	return slices.Contains(w.cards[Attacker], card) || slices.Contains(w.cards[Defender], card)
}

// Strength scores cards under the wall's current pattern.
func (w *Wall) Strength(cards []Card) int {
	return Strength(cards, w.pattern)
}

// PlayCard places card on side. A 0 or 11 facing its same-colored complement
// on the opposing side cancels it, and both cards leave play. The retreat and
// cauldron tokens are dispatched to the matching action.
func (w *Wall) PlayCard(card Card, side Side) PlayResult {
	validate(card)

	switch card {
	case Retreat:
		if side != Attacker {
			return PlayResult{Type: Failure}
		}
		retreated := w.Retreat()
		if len(retreated) == 0 {
			return PlayResult{Type: Failure}
		}
		return PlayResult{Type: Action, Discarded: retreated}
	case Cauldron:
		if side != Defender {
			return PlayResult{Type: Failure}
		}
		removed, ok := w.Cauldron()
		if !ok {
			return PlayResult{Type: Failure}
		}
		return PlayResult{Type: Action, Discarded: []Card{removed}}
	}

	if !w.HasSpace(side) {
		return PlayResult{Type: Failure}
	}

	if card.Value == MinValue || card.Value == MaxValue {
		complement := Card{Color: card.Color, Value: MaxValue - card.Value}
		opponent := side.Opponent()
		if remaining, ok := utils.Remove(w.cards[opponent], complement); ok {
			w.cards[opponent] = remaining
			if opponent == Attacker {
				w.updateFinishedFirst()
			}
			return PlayResult{Type: Success, Discarded: []Card{card, complement}}
		}
	}

	w.cards[side] = append(w.cards[side], card)
	if side == Attacker {
		w.updateFinishedFirst()
	}
	return PlayResult{Type: Success}
}

// Retreat empties the attacker side and returns the removed cards.
func (w *Wall) Retreat() []Card {
	retreated := w.cards[Attacker]
	w.cards[Attacker] = nil
	w.finishedFirst = false
	return retreated
}

// Cauldron removes the most recently played attacker card.
func (w *Wall) Cauldron() (Card, bool) {
	attacker := w.cards[Attacker]
	if len(attacker) == 0 {
		return Card{}, false
	}
	removed := attacker[len(attacker)-1]
	w.cards[Attacker] = attacker[:len(attacker)-1:len(attacker)-1]
	w.updateFinishedFirst()
	return removed, true
}

func (w *Wall) updateFinishedFirst() {
	w.finishedFirst = len(w.cards[Attacker]) == w.length && len(w.cards[Defender]) < w.length
}

// DeclareControl resolves the wall once the attacker side is complete. The
// attacker takes the wall only if its formation beats the best formation the
// defender could still complete from remaining; ties go to the attacker when
// it finished first. Taking the wall damages it and returns the released cards.
func (w *Wall) DeclareControl(remaining []Card) []Card {
	if w.status == Broken || len(w.cards[Attacker]) != w.length {
		return nil
	}

	attack := w.Strength(w.cards[Attacker])
	target := attack // Defender holds with an equal formation
	if w.finishedFirst {
		target = attack + 1
	}
	if w.defenceReaches(remaining, target) {
		return nil
	}
	return w.Damage()
}

// Damage moves the wall one step along Intact, Damaged, Broken. Damaging an
// intact wall clears both sides and returns the cleared cards.
func (w *Wall) Damage() []Card {
	switch w.status {
	case Intact:
		released := append(slices.Clone(w.cards[Attacker]), w.cards[Defender]...)
		w.cards = [2][]Card{}
		w.status = Damaged
		w.length = w.damagedLength
		w.pattern = w.damagedPattern
		w.finishedFirst = false
		return released
	case Damaged:
		w.status = Broken
		return nil
	default:
		return nil
	}
}

// StrongestDefence returns the highest strength the defender can reach by
// completing its side with cards from pool, or math.MinInt when the pool
// cannot complete it.
func (w *Wall) StrongestDefence(pool []Card) int {
	best := math.MinInt
	w.completions(pool, func(formation []Card) bool {
		best = max(best, w.Strength(formation))
		return true
	})
	return best
}

// defenceReaches reports whether some completion from pool scores at least target.
func (w *Wall) defenceReaches(pool []Card, target int) bool {
	if w.defenceBound(pool) < target {
		return false
	}
	reached := false
	w.completions(pool, func(formation []Card) bool {
		reached = w.Strength(formation) >= target
		return !reached
	})
	return reached
}

// defenceBound is an upper bound on any completion's strength.
func (w *Wall) defenceBound(pool []Card) int {
	defender := w.cards[Defender]
	need := w.length - len(defender)
	if need > len(pool) {
		return math.MinInt
	}

	sum := 0
	for _, card := range defender {
		sum += card.Value
	}
	values := make([]int, len(pool))
	for i, card := range pool {
		values[i] = card.Value
	}
	slices.Sort(values)

	if w.pattern == MinusPattern {
		for _, v := range values[:need] {
			sum += v
		}
		return -sum
	}
	for _, v := range values[len(values)-need:] {
		sum += v
	}
	return int(maxRank(w.pattern))*RankMultiplier + sum
}

// completions visits every way of filling the defender side with a subset of
// pool until visit returns false. Card order does not affect strength, so
// each subset is visited once.
func (w *Wall) completions(pool []Card, visit func(formation []Card) bool) {
	formation := make([]Card, len(w.cards[Defender]), w.length)
	copy(formation, w.cards[Defender])

	var walk func(start int) bool
	walk = func(start int) bool {
		if len(formation) >= w.length {
			return visit(formation)
		}
		for i := start; i <= len(pool)-(w.length-len(formation)); i++ {
			formation = append(formation, pool[i])
			ok := walk(i + 1)
			formation = formation[:len(formation)-1]
			if !ok {
				return false
			}
		}
		return true
	}
	walk(0)
}

func (w *Wall) String() string {
	return fmt.Sprintf("wall %d (%s, %s, %d): attacker %v defender %v",
		w.index, w.status, w.pattern, w.length, w.cards[Attacker], w.cards[Defender])
}

func (w *Wall) copy() *Wall {
	c := *w
	c.cards = [2][]Card{slices.Clone(w.cards[Attacker]), slices.Clone(w.cards[Defender])}
	return &c
}
