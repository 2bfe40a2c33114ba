package gamemaster

import (
	"errors"
	"reflect"
	"schotten/game"
	"testing"
)

func TestLocalMasterInit(t *testing.T) {
	master := NewLocalMaster(game.StandardRules(), 1)
	gs, getUpdate := master.Init()

	if gs == nil {
		t.Fatal("expected a GameState, got nil")
	}
	if gs.Player() != "Attacker" {
		t.Errorf("expected the attacker to start, got %s", gs.Player())
	}
	if len(gs.Hands[game.Attacker]) != 6 || len(gs.Hands[game.Defender]) != 6 {
		t.Errorf("expected both hands to hold 6 cards, got %d and %d", len(gs.Hands[game.Attacker]), len(gs.Hands[game.Defender]))
	}

	// Check that getUpdate returns nothing if no moves have been played
	if _, ok := getUpdate(); ok {
		t.Error("expected no update yet")
	}
}

func TestLocalMasterPlay_ValidMove(t *testing.T) {
	master := NewLocalMaster(game.StandardRules(), 1)
	gs, getUpdate := master.Init()

	move := game.PlayCardMove(gs.Hands[game.Attacker][0], 2)
	if err := master.Play("Attacker", move); err != nil {
		t.Fatalf("expected no error for a valid move, got %v", err)
	}

	update, ok := getUpdate()
	if !ok {
		t.Fatal("expected an update after playing a move, got none")
	}
	if update.Move != game.Move(move) || update.Player != "Attacker" {
		t.Errorf("unexpected update %+v", update)
	}
	if len(update.State.Board.Wall(2).AttackerCards()) != 1 {
		t.Errorf("expected the card on wall 2")
	}
	if update.Hash != update.State.Hash() {
		t.Errorf("expected the update hash to match its state")
	}
	if len(gs.Board.Wall(2).AttackerCards()) != 0 {
		t.Errorf("expected the initial copy to be unaffected")
	}
	if _, ok := getUpdate(); ok {
		t.Error("expected a single update")
	}
}

func TestLocalMasterPlay_Rejections(t *testing.T) {
	master := NewLocalMaster(game.StandardRules(), 1)
	gs, _ := master.Init()

	err := master.Play("Defender", game.PlayCardMove(gs.Hands[game.Defender][0], 0))
	if !errors.Is(err, ErrNotYourTurn) {
		t.Errorf("expected a turn error, got %v", err)
	}

	err = master.Play("Attacker", game.RetreatMove(0))
	if !errors.Is(err, ErrIllegalMove) {
		t.Errorf("expected an illegal move error, got %v", err)
	}

	err = master.Play("Attacker", game.PlayCardMove(gs.Hands[game.Defender][0], 0))
	if !errors.Is(err, ErrIllegalMove) {
		t.Errorf("expected an illegal move error for a card not in hand, got %v", err)
	}
}

func TestLocalMasterPlay_GameOver(t *testing.T) {
	master := NewLocalMaster(game.StandardRules(), 2)
	gs, getUpdate := master.Init()

	// Play the first legal move until someone wins
	for !master.GameOver() {
		move := gs.LegalMoves()[0]
		if err := master.Play(gs.Player(), move); err != nil {
			t.Fatalf("unexpected error %v", err)
		}
		update, ok := getUpdate()
		if !ok {
			t.Fatal("expected an update for every accepted move")
		}
		gs = update.State
	}

	if gs.Winner() == "" {
		t.Error("expected a winner once the game is over")
	}

	err := master.Play(gs.Player(), game.RetreatMove(0))
	if !errors.Is(err, ErrGameOver) {
		t.Errorf("expected %v, got %v", ErrGameOver, err)
	}
}

func TestLocalMaster_IdenticalInitStates(t *testing.T) {
	state1, _ := NewLocalMaster(game.StandardRules(), 3).Init()
	state2, _ := NewLocalMaster(game.StandardRules(), 3).Init()

	if !reflect.DeepEqual(state1.Hands, state2.Hands) || state1.Hash() != state2.Hash() {
		t.Error("expected the same initial state for the same seed")
	}
}

func TestLocalMasterJoin(t *testing.T) {
	master := NewLocalMaster(game.StandardRules(), 4)
	gs, first := master.Init()

	move := game.PlayCardMove(gs.Hands[game.Attacker][0], 1)
	if err := master.Play("Attacker", move); err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	// A late joiner starts from the current state
	joined, second := master.Join()
	if joined.Player() != "Defender" {
		t.Errorf("expected the joined state to be at the defender's turn, got %s", joined.Player())
	}
	if _, ok := second(); ok {
		t.Error("expected no update for the late joiner yet")
	}

	reply := game.PlayCardMove(joined.Hands[game.Defender][0], 1)
	if err := master.Play("Defender", reply); err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	// Both getters see the reply, only the first one the opening move
	for i, want := range []game.Move{move, reply} {
		update, ok := first()
		if !ok || update.Move != want {
			t.Errorf("update %d: expected %v, got %+v", i, want, update)
		}
	}
	update, ok := second()
	if !ok || update.Move != game.Move(reply) {
		t.Errorf("expected the late joiner to see %v, got %+v", reply, update)
	}
	if _, ok := first(); ok {
		t.Error("expected the first getter to be drained")
	}
}
