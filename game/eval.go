package game

// EvaluateDamage weighs the attacker's damaged walls against how much of the
// deck is spent, producing a score between -1 and 1 from the current player's perspective
func EvaluateDamage(s State) float64 {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}
	return gs.perspective(gs.damageScore())
}

// EvaluateFormations also considers how far each side has built its formations
func EvaluateFormations(s State) float64 {
	gs, ok := s.(*GameState)
	if !ok {
		panic("unexpected state type")
	}
	return gs.perspective((gs.damageScore() + gs.formationScore()) / 2)
}

// damageScore is the attacker's progress towards breaching minus the progress
// of the clock running out for it
func (gs *GameState) damageScore() float64 {
	switch gs.Won {
	case AttackerWins:
		return 1
	case DefenderWins:
		return -1
	}

	rules := gs.Board.Rules()
	damaged := 0
	for _, wall := range gs.Board.Walls() {
		if wall.Status() != Intact {
			damaged++
		}
	}
	attack := min(float64(damaged)/float64(rules.DamagedToWin), 1)

	dealt := len(AllCards()) - 2*rules.HandSize
	spent := 1.0
	if dealt > 0 {
		spent = 1 - float64(gs.Board.Deck().Size())/float64(dealt)
	}
	return attack - spent
}

// formationScore is the mean of the attacker's lead in cards played per wall
func (gs *GameState) formationScore() float64 {
	walls := gs.Board.Walls()
	total := 0.0
	for _, wall := range walls {
		if wall.Status() == Broken {
			total++
			continue
		}
		lead := len(wall.cards[Attacker]) - len(wall.cards[Defender])
		total += float64(lead) / float64(wall.Length())
	}
	return total / float64(len(walls))
}

func (gs *GameState) perspective(attackerScore float64) float64 {
	if gs.CurrentSide == Defender {
		return -attackerScore
	}
	return attackerScore
}
