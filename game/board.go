package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

type Winner int

const (
	Nobody Winner = iota
	AttackerWins
	DefenderWins
)

func (w Winner) String() string {
	switch w {
	case AttackerWins:
		return "Attacker"
	case DefenderWins:
		return "Defender"
	default:
		return ""
	}
}

// Board owns the walls, the deck, the discard pile and the cauldron charges
// of one game.
type Board struct {
	rules     Rules
	walls     []*Wall
	deck      *Deck
	discard   *Discard
	cauldrons int
}

func NewBoard(rules Rules, rng *rand.Rand) *Board {
	b := &Board{
		rules:   rules,
		walls:   make([]*Wall, len(rules.Walls)),
		deck:    NewDeck(rng),
		discard: NewDiscard(),
	}
	for i, spec := range rules.Walls {
		b.walls[i] = NewWall(i, spec)
	}
	b.cauldrons = rules.Cauldrons
	return b
}

// Setup prepares a new game: full shuffled deck, empty discard, intact walls
// and a full set of cauldron charges.
func (b *Board) Setup() {
	b.deck.Reset()
	b.discard.Clear()
	for _, wall := range b.walls {
		wall.Reset()
	}
	b.cauldrons = b.rules.Cauldrons
}

func (b *Board) Rules() Rules { return b.rules }
func (b *Board) Walls() []*Wall { return b.walls }
func (b *Board) Deck() *Deck { return b.deck }
func (b *Board) Discard() *Discard { return b.discard }
func (b *Board) Cauldrons() int { return b.cauldrons }
func (b *Board) Wall(index int) *Wall {
	if index < 0 || index >= len(b.walls) {
		panic(fmt.Sprintf("invalid wall index %d", index))
	}
	return b.walls[index]
}

// PlayCard plays card on a wall and moves any released cards to the discard.
// Cauldron tokens consume a charge and fail when none are left.
func (b *Board) PlayCard(card Card, wallIndex int, side Side) PlayResult {
	wall := b.Wall(wallIndex)
	if card == Cauldron && b.cauldrons <= 0 {
		return PlayResult{Type: Failure}
	}

	result := wall.PlayCard(card, side)
	if card == Cauldron && result.Type == Action {
		b.cauldrons--
	}
	b.discard.AddAll(result.Discarded)
	return result
}

// Retreat empties the attacker side of a wall into the discard.
func (b *Board) Retreat(wallIndex int) bool {
	return b.PlayCard(Retreat, wallIndex, Attacker).Type == Action
}

// Cauldron removes the last attacker card of a wall, using one charge.
func (b *Board) Cauldron(wallIndex int) (Card, bool) {
	result := b.PlayCard(Cauldron, wallIndex, Defender)
	if result.Type != Action {
		return Card{}, false
	}
	return result.Discarded[0], true
}

// Remaining returns the playable cards that are neither discarded nor on a wall.
func (b *Board) Remaining() []Card {
	remaining := make([]Card, 0, len(AllCards()))
	for _, card := range AllCards() {
		if b.discard.Contains(card) || b.onWall(card) {
			continue
		}
		remaining = append(remaining, card)
	}
	return remaining
}

func (b *Board) onWall(card Card) bool {
	for _, wall := range b.walls {
		if wall.Contains(card) {
			return true
		}
	}
	return false
}

// DeclareControl resolves every wall against the cards still unaccounted for
// and discards the cards released by damaged walls.
func (b *Board) DeclareControl() []Card {
	remaining := b.Remaining()
	var released []Card
	for _, wall := range b.walls {
		cards := wall.DeclareControl(remaining)
		b.discard.AddAll(cards)
		released = append(released, cards...)
	}
	return released
}

// Won evaluates the win conditions. Deck exhaustion and a complete defence
// only count when checkDeck is set.
func (b *Board) Won(checkDeck bool) Winner {
	damaged := 0
	for _, wall := range b.walls {
		switch wall.Status() {
		case Broken:
			return AttackerWins
		case Damaged:
			damaged++
		}
	}
	if damaged >= b.rules.DamagedToWin {
		return AttackerWins
	}

	if checkDeck && (b.deck.IsEmpty() || b.DefenderSideFull()) {
		return DefenderWins
	}
	return Nobody
}

// DefenderSideFull reports whether the defender has no room on any wall.
func (b *Board) DefenderSideFull() bool {
	for _, wall := range b.walls {
		if !wall.IsFull(Defender) {
			return false
		}
	}
	return true
}

func (b *Board) copy() *Board {
	c := &Board{
		rules:     b.rules,
		walls:     make([]*Wall, len(b.walls)),
		deck:      b.deck.copy(),
		discard:   b.discard.copy(),
		cauldrons: b.cauldrons,
	}
	for i, wall := range b.walls {
		c.walls[i] = wall.copy()
	}
	return c
}
