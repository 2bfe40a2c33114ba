package game

// ActionType represents the type of action a player can perform.
type ActionType int

const (
	PlayCardAction ActionType = iota
	RetreatAction
	CauldronAction
)

func (a ActionType) String() string {
	switch a {
	case PlayCardAction:
		return "play"
	case RetreatAction:
		return "retreat"
	default:
		return "cauldron"
	}
}
