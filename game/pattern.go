package game

import (
	"fmt"
	"slices"
)

// Pattern is the scoring rule printed on a wall.
type Pattern int

const (
	NoPattern Pattern = iota
	PlusPattern
	MinusPattern
	ColorPattern
	RunPattern
	EqualsPattern
)

func (p Pattern) String() string {
	switch p {
	case NoPattern:
		return "None"
	case PlusPattern:
		return "Plus"
	case MinusPattern:
		return "Minus"
	case ColorPattern:
		return "Color"
	case RunPattern:
		return "Run"
	case EqualsPattern:
		return "Equals"
	default:
		return fmt.Sprintf("Pattern(%d)", int(p))
	}
}

// FormationType values are the ranks of the formations.
type FormationType int

const (
	SumFormation FormationType = iota
	RunFormation
	ColorFormation
	SameStrengthFormation
	ColorRunFormation
)

const RankMultiplier = 100

func (f FormationType) String() string {
	switch f {
	case SumFormation:
		return "Sum"
	case RunFormation:
		return "Run"
	case ColorFormation:
		return "Color"
	case SameStrengthFormation:
		return "SameStrength"
	case ColorRunFormation:
		return "ColorRun"
	default:
		return fmt.Sprintf("FormationType(%d)", int(f))
	}
}

// Classify returns the formation type of cards, ignoring any wall pattern.
func Classify(cards []Card) FormationType {
	if len(cards) == 0 {
		return SumFormation
	}

	values := make([]int, len(cards))
	sameColor := true
	for i, card := range cards {
		values[i] = card.Value
		if card.Color != cards[0].Color {
			sameColor = false
		}
	}
	slices.Sort(values)

	consecutive, identical := true, true
	for i := 1; i < len(values); i++ {
		diff := values[i] - values[i-1]
		if diff != 1 {
			consecutive = false
		}
		if diff != 0 {
			identical = false
		}
	}

	switch {
	case sameColor && consecutive:
		return ColorRunFormation
	case sameColor:
		return ColorFormation
	case identical:
		return SameStrengthFormation
	case consecutive:
		return RunFormation
	default:
		return SumFormation
	}
}

// Strength scores a formation under pattern as rank*100 + sum of values.
// The pattern downgrades formations it does not reward to a plain sum, and
// the minus pattern scores the negated sum.
func Strength(cards []Card, pattern Pattern) int {
	sum := 0
	for _, card := range cards {
		sum += card.Value
	}

	formation := Classify(cards)
	switch pattern {
	case PlusPattern:
		formation = SumFormation
	case MinusPattern:
		formation = SumFormation
		sum = -sum
	case ColorPattern:
		if formation != ColorFormation && formation != ColorRunFormation {
			formation = SumFormation
		}
	case RunPattern:
		if formation != RunFormation && formation != ColorRunFormation {
			formation = SumFormation
		}
	case EqualsPattern:
		if formation != SameStrengthFormation {
			formation = SumFormation
		}
	}

	return int(formation)*RankMultiplier + sum
}

// maxRank is the highest formation rank a pattern can score.
func maxRank(pattern Pattern) FormationType {
	switch pattern {
	case PlusPattern, MinusPattern:
		return SumFormation
	case EqualsPattern:
		return SameStrengthFormation
	default:
		return ColorRunFormation
	}
}

var patternNames = map[string]Pattern{
	"None":   NoPattern,
	"Plus":   PlusPattern,
	"Minus":  MinusPattern,
	"Color":  ColorPattern,
	"Run":    RunPattern,
	"Equals": EqualsPattern,
}

func (p Pattern) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Pattern) UnmarshalText(text []byte) error {
	pattern, ok := patternNames[string(text)]
	if !ok {
		return fmt.Errorf("unknown wall pattern %q", text)
	}
	*p = pattern
	return nil
}
