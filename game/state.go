package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"slices"

	"golang.org/x/exp/rand"

	"schotten/utils"
)

// GameState represents the dynamic state of a game between the attacker and
// the defender. Play never mutates the receiver.
type GameState struct {
	Board        *Board
	Hands        [2][]Card // Indexed by Side
	CurrentSide  Side
	CauldronUsed bool // The defender already used a cauldron this turn
	LastMove     Move
	Won          Winner
}

// NewGameState sets up the board and deals both hands, attacker first.
func NewGameState(rules Rules, seed uint64) *GameState {
	rng := rand.New(rand.NewSource(seed))
	gs := &GameState{
		Board:       NewBoard(rules, rng),
		CurrentSide: Attacker,
	}
	gs.Board.Setup()
	for _, side := range []Side{Attacker, Defender} {
		for range rules.HandSize {
			gs.draw(side)
		}
	}
	return gs
}

// SideOf maps a player name as returned by Player back to its side.
func SideOf(player string) Side {
	switch player {
	case Attacker.String():
		return Attacker
	case Defender.String():
		return Defender
	default:
		panic(fmt.Sprintf("unknown player %q", player))
	}
}

func (gs *GameState) Player() string {
	return gs.CurrentSide.String()
}

func (gs *GameState) Winner() string {
	return gs.Won.String()
}

func (gs *GameState) Hand(side Side) []Card {
	return slices.Clone(gs.Hands[side])
}

func (gs *GameState) LegalMoves() []Move {
	if gs.Won != Nobody {
		return nil
	}

	side := gs.CurrentSide
	walls := gs.Board.Walls()
	moves := []Move{}
	for _, card := range gs.Hands[side] {
		for _, wall := range walls {
			if wall.HasSpace(side) {
				moves = append(moves, PlayCardMove(card, wall.Index()))
			}
		}
	}

	switch side {
	case Attacker:
		for _, wall := range walls {
			if wall.Status() != Broken && len(wall.cards[Attacker]) > 0 {
				moves = append(moves, RetreatMove(wall.Index()))
			}
		}
	case Defender:
		if gs.CauldronUsed || gs.Board.Cauldrons() <= 0 {
			break
		}
		for _, wall := range walls {
			if wall.Status() != Broken && len(wall.cards[Attacker]) > 0 {
				moves = append(moves, CauldronMove(wall.Index()))
			}
		}
	}
	return moves
}

// Play applies move for the side to move. Playing a card ends the turn,
// retreating and pouring a cauldron do not. Illegal moves panic.
func (gs *GameState) Play(move Move) State {
	gm, ok := move.(GameMove)
	if !ok {
		panic(fmt.Sprintf("unexpected move type %T", move))
	}
	if gs.Won != Nobody {
		panic("game is already over")
	}

	next := gs.Copy()
	side := next.CurrentSide
	switch gm.ActionType {
	case PlayCardAction:
		hand, ok := utils.Remove(next.Hands[side], gm.Card)
		if !ok || gm.Card.IsAction() {
			panic(fmt.Sprintf("%s does not hold %s", side, gm.Card))
		}
		if next.Board.PlayCard(gm.Card, gm.Wall, side).Type != Success {
			panic(fmt.Sprintf("illegal move %s", gm))
		}
		next.Hands[side] = hand
		next.draw(side)
		next.endTurn()
	case RetreatAction:
		if side != Attacker || !next.Board.Retreat(gm.Wall) {
			panic(fmt.Sprintf("illegal move %s", gm))
		}
	case CauldronAction:
		if side != Defender || next.CauldronUsed {
			panic(fmt.Sprintf("illegal move %s", gm))
		}
		if _, ok := next.Board.Cauldron(gm.Wall); !ok {
			panic(fmt.Sprintf("illegal move %s", gm))
		}
		next.CauldronUsed = true
	default:
		panic(fmt.Sprintf("unknown action type %d", gm.ActionType))
	}
	next.LastMove = gm
	return next
}

func (gs *GameState) draw(side Side) {
	if card, ok := gs.Board.Deck().Pop(); ok {
		gs.Hands[side] = append(gs.Hands[side], card)
	}
}

// endTurn resolves the walls, passes the turn and evaluates the winner. The
// deck is only checked once the attacker has finished its turn.
func (gs *GameState) endTurn() {
	finished := gs.CurrentSide
	gs.Board.DeclareControl()
	gs.CauldronUsed = false
	gs.CurrentSide = finished.Opponent()

	gs.Won = gs.Board.Won(finished == Attacker)
	if gs.Won == Nobody && len(gs.LegalMoves()) == 0 {
		// The side to move is stuck, which only happens once the attack has stalled.
		gs.Won = DefenderWins
	}
}

func (gs *GameState) Copy() *GameState {
	return &GameState{
		Board:        gs.Board.copy(),
		Hands:        [2][]Card{slices.Clone(gs.Hands[Attacker]), slices.Clone(gs.Hands[Defender])},
		CurrentSide:  gs.CurrentSide,
		CauldronUsed: gs.CauldronUsed,
		LastMove:     gs.LastMove,
		Won:          gs.Won,
	}
}

// Determinize deals the cards observer cannot see (the opponent's hand and
// the deck) at random, keeping the size of both.
func (gs *GameState) Determinize(observer string, rng *rand.Rand) State {
	c := gs.Copy()
	opponent := SideOf(observer).Opponent()

	hidden := append(slices.Clone(c.Hands[opponent]), c.Board.Deck().Cards()...)
	rng.Shuffle(len(hidden), func(i, j int) {
		hidden[i], hidden[j] = hidden[j], hidden[i]
	})
	handSize := len(c.Hands[opponent])
	c.Hands[opponent] = hidden[:handSize:handSize]
	c.Board.Deck().set(hidden[handSize:])
	return c
}

// Hash covers the public information only, so every determinization of a
// position hashes alike.
func (gs *GameState) Hash() StateHash {
	h := fnv.New64a()

	write := func(data any) {
		binary.Write(h, binary.LittleEndian, data)
	}
	writeCards := func(cards []Card) {
		write(int8(len(cards)))
		for _, card := range cards {
			write([2]int8{int8(card.Color), int8(card.Value)})
		}
	}

	write(int8(gs.CurrentSide))
	write(gs.CauldronUsed)
	write(int8(gs.Won))
	write(int8(gs.Board.Cauldrons()))
	write(int16(gs.Board.Deck().Size()))
	write([2]int8{int8(len(gs.Hands[Attacker])), int8(len(gs.Hands[Defender]))})
	for _, wall := range gs.Board.Walls() {
		write(int8(wall.Status()))
		writeCards(wall.cards[Attacker])
		writeCards(wall.cards[Defender])
	}
	discarded := gs.Board.Discard().Cards()
	slices.SortFunc(discarded, Compare)
	writeCards(discarded)

	return StateHash(h.Sum64())
}
