package engine

import (
	"errors"
	"testing"
)

func TestBestActionSwitchesOnFaint(t *testing.T) {
	team := []Pokemon{getDummyPokemon(), getDummyPokemon()}
	enemy := getDummyPokemon()

	state := NewState("Ash", team, "Gary", []Pokemon{enemy}, testSeed())
	state.TrainerOne.GetActivePokemon().Hp.Value = 0

	action, err := BestAction(&state, TRAINER1)
	if err != nil {
		t.Fatalf("picking an action failed: %s", err)
	}

	switchAction, ok := action.(SwitchAction)
	if !ok {
		t.Fatalf("a fainted active pokemon should force a switch, got %T", action)
	}

	if switchAction.SwitchIndex != 1 {
		t.Fatalf("should have switched to the living pokemon, got slot %d", switchAction.SwitchIndex)
	}
}

func TestBestActionPicksStrongestMove(t *testing.T) {
	// vine whip is 4x effective against geodude, tackle resisted
	pokemon := buildWithMoves("bulbasaur", 50, "tackle", "vine-whip")
	enemy := buildWithMoves("geodude", 5, "tackle")

	state := getSimpleState(pokemon, enemy)

	action, err := BestAction(&state, TRAINER1)
	if err != nil {
		t.Fatalf("picking an action failed: %s", err)
	}

	attack, ok := action.(AttackAction)
	if !ok {
		t.Fatalf("expected an attack, got %T", action)
	}

	if attack.AttackerMove != 1 {
		t.Fatalf("expected the super effective move in slot 1, got slot %d", attack.AttackerMove)
	}
}

func TestBestActionSlowerPrefersParalysis(t *testing.T) {
	pokemon := buildWithMoves("pikachu", 5, "tackle", "thunder-wave")
	enemy := buildWithMoves("persian", 100, "tackle")

	state := getSimpleState(pokemon, enemy)

	action, err := BestAction(&state, TRAINER1)
	if err != nil {
		t.Fatalf("picking an action failed: %s", err)
	}

	attack, ok := action.(AttackAction)
	if !ok {
		t.Fatalf("expected an attack, got %T", action)
	}

	if attack.AttackerMove != 1 {
		t.Fatalf("a slower pokemon should try to paralyze, got slot %d", attack.AttackerMove)
	}
}

func TestBestActionStrugglesWithoutPP(t *testing.T) {
	pokemon := buildWithMoves("bulbasaur", 50, "tackle")
	enemy := getDummyPokemon()

	state := getSimpleState(pokemon, enemy)
	state.TrainerOne.GetActivePokemon().BattleMoves[0].PP = 0

	action, err := BestAction(&state, TRAINER1)
	if err != nil {
		t.Fatalf("picking an action failed: %s", err)
	}

	attack, ok := action.(AttackAction)
	if !ok {
		t.Fatalf("expected an attack, got %T", action)
	}

	if attack.AttackerMove != STRUGGLE_MOVE_ID {
		t.Fatalf("expected struggle, got slot %d", attack.AttackerMove)
	}
}

func TestBestActionReportsBrokenInvariants(t *testing.T) {
	// A pokemon with no moves at all should never be in a battle
	state := getSimpleState(getDummyPokemon(), getDummyPokemon())

	action, err := BestAction(&state, TRAINER1)
	if action != nil {
		t.Fatalf("a pokemon with no moves has no action to take, got %T", action)
	}

	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected an internal invariant error, got %v", err)
	}

	// Nor should a trainer with nothing left to send in still be acting
	state = getSimpleState(getDummyPokemon(), getDummyPokemon())
	state.TrainerOne.GetActivePokemon().Hp.Value = 0

	action, err = BestAction(&state, TRAINER1)
	if action != nil {
		t.Fatalf("a defeated trainer has no action to take, got %T", action)
	}

	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected an internal invariant error, got %v", err)
	}
}
