package game

import (
	"cmp"
	"fmt"
)

type Color int

const (
	Red Color = iota
	Blue
	Yellow
	Green
	Gray
	ActionColor // Color of the retreat and cauldron tokens
)

var Colors = []Color{Red, Blue, Yellow, Green, Gray}

const (
	MinValue = 0
	MaxValue = 11
)

func (c Color) String() string {
	switch c {
	case Red:
		return "Red"
	case Blue:
		return "Blue"
	case Yellow:
		return "Yellow"
	case Green:
		return "Green"
	case Gray:
		return "Gray"
	case ActionColor:
		return "Action"
	default:
		return fmt.Sprintf("Color(%d)", int(c))
	}
}

// Card is an immutable playing card, compared by value.
type Card struct {
	Color Color
	Value int
}

var (
	Retreat  = Card{Color: ActionColor, Value: -1}
	Cauldron = Card{Color: ActionColor, Value: -2}
)

// NewCard panics when color and value do not name one of the 60 playable cards.
func NewCard(color Color, value int) Card {
	if color < Red || color > Gray {
		panic(fmt.Sprintf("invalid card color %d", color))
	}
	if value < MinValue || value > MaxValue {
		panic(fmt.Sprintf("invalid card value %d", value))
	}
	return Card{Color: color, Value: value}
}

func (c Card) IsAction() bool {
	return c.Color == ActionColor
}

func (c Card) String() string {
	switch c {
	case Retreat:
		return "Retreat"
	case Cauldron:
		return "Cauldron"
	}
	return fmt.Sprintf("%s%d", c.Color, c.Value)
}

// Compare orders cards by color, then by value.
func Compare(a, b Card) int {
	if a.Color != b.Color {
		return cmp.Compare(a.Color, b.Color)
	}
	return cmp.Compare(a.Value, b.Value)
}

// AllCards returns the 60 playable cards ordered by color and value.
func AllCards() []Card {
	cards := make([]Card, 0, len(Colors)*(MaxValue+1))
	for _, color := range Colors {
		for value := MinValue; value <= MaxValue; value++ {
			cards = append(cards, Card{Color: color, Value: value})
		}
	}
	return cards
}

func validate(card Card) {
	if card == Retreat || card == Cauldron {
		return
	}
	if card.Color < Red || card.Color > Gray || card.Value < MinValue || card.Value > MaxValue {
		panic(fmt.Sprintf("invalid card %+v", card))
	}
}
