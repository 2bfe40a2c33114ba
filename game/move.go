package game

import "fmt"

// GameMove represents a move in the game. Card is only set for PlayCardAction.
type GameMove struct {
	ActionType ActionType
	Card       Card
	Wall       int
}

func PlayCardMove(card Card, wall int) GameMove {
	return GameMove{ActionType: PlayCardAction, Card: card, Wall: wall}
}

func RetreatMove(wall int) GameMove {
	return GameMove{ActionType: RetreatAction, Wall: wall}
}

func CauldronMove(wall int) GameMove {
	return GameMove{ActionType: CauldronAction, Wall: wall}
}

func (m GameMove) String() string {
	if m.ActionType == PlayCardAction {
		return fmt.Sprintf("play %s on wall %d", m.Card, m.Wall)
	}
	return fmt.Sprintf("%s on wall %d", m.ActionType, m.Wall)
}
