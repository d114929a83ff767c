package engine

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestBattleResolvesWhenBothActionsAreIn(t *testing.T) {
	pokemon := buildWithMoves("bulbasaur", 50, "tackle")
	enemyPokemon := buildWithMoves("bulbasaur", 50, "tackle")

	battle := NewBattle(getSimpleState(pokemon, enemyPokemon))

	if err := battle.SubmitAction(NewAttackAction(TRAINER1, 0)); err != nil {
		t.Fatalf("first action rejected: %s", err)
	}

	if battle.Turn() != 1 {
		t.Fatalf("turn resolved with only one action in")
	}

	if !battle.HasSubmitted(TRAINER1) {
		t.Fatalf("trainer one's action was not recorded")
	}

	if err := battle.SubmitAction(NewAttackAction(TRAINER2, 0)); err != nil {
		t.Fatalf("second action rejected: %s", err)
	}

	if battle.Turn() != 2 {
		t.Fatalf("turn did not resolve after both actions were in: turn %d", battle.Turn())
	}

	if battle.Phase() != PhaseAwaitingActions {
		t.Fatalf("expected the battle to wait for the next turn: phase %d", battle.Phase())
	}

	if len(battle.DrainLog()) == 0 {
		t.Fatalf("resolving a turn should have produced messages")
	}
}

func TestBattleRejectsBadActions(t *testing.T) {
	pokemon := buildWithMoves("bulbasaur", 50, "tackle")
	enemyPokemon := buildWithMoves("bulbasaur", 50, "tackle")

	battle := NewBattle(getSimpleState(pokemon, enemyPokemon))

	badActions := []Action{
		nil,
		NewAttackAction(0, 0),        // unknown trainer
		NewAttackAction(TRAINER1, 7), // move slot out of range
		NewAttackAction(TRAINER1, 1), // empty move slot
		NewAttackAction(TRAINER1, STRUGGLE_MOVE_ID), // pp still left
	}

	for _, action := range badActions {
		err := battle.SubmitAction(action)
		if err == nil {
			t.Fatalf("action %#v should have been rejected", action)
		}

		var invalidErr InvalidActionError
		if !errors.As(err, &invalidErr) {
			t.Fatalf("expected an InvalidActionError, got %T", err)
		}
	}

	if battle.HasSubmitted(TRAINER1) || battle.HasSubmitted(TRAINER2) {
		t.Fatalf("rejected actions must not be recorded")
	}

	if battle.Turn() != 1 {
		t.Fatalf("rejected actions must not advance the battle")
	}
}

func TestBattleRejectsSwitchToActiveOrFainted(t *testing.T) {
	team := []Pokemon{getDummyPokemon(), getDummyPokemon()}
	enemy := getDummyPokemon()

	state := NewState("Ash", team, "Gary", []Pokemon{enemy}, testSeed())
	state.TrainerOne.Team[1].Hp.Value = 0

	battle := NewBattle(state)

	if err := battle.SubmitAction(NewSwitchAction(&state, TRAINER1, 0)); err == nil {
		t.Fatalf("switching to the pokemon already out should be rejected")
	}

	if err := battle.SubmitAction(NewSwitchAction(&state, TRAINER1, 1)); err == nil {
		t.Fatalf("switching to a fainted pokemon should be rejected")
	}
}

func TestBattleDuplicateSubmission(t *testing.T) {
	pokemon := buildWithMoves("bulbasaur", 50, "tackle")
	enemyPokemon := buildWithMoves("bulbasaur", 50, "tackle")

	battle := NewBattle(getSimpleState(pokemon, enemyPokemon))

	if err := battle.SubmitAction(NewAttackAction(TRAINER1, 0)); err != nil {
		t.Fatalf("first action rejected: %s", err)
	}

	if err := battle.SubmitAction(NewAttackAction(TRAINER1, 0)); err == nil {
		t.Fatalf("a trainer should not be able to act twice in one turn")
	}
}

func TestBattleForceSwitch(t *testing.T) {
	frail := buildWithMoves("bulbasaur", 5, "tackle")
	backup := getDummyPokemon()
	enemy := buildWithMoves("bulbasaur", 100, "tackle")

	state := NewState("Ash", []Pokemon{frail, backup}, "Gary", []Pokemon{enemy}, testSeed())
	state.TrainerOne.GetActivePokemon().Hp.Value = 1

	battle := NewBattle(state)
	battle.DrainLog()

	if err := battle.SubmitAction(NewAttackAction(TRAINER1, 0)); err != nil {
		t.Fatal(err)
	}
	if err := battle.SubmitAction(NewAttackAction(TRAINER2, 0)); err != nil {
		t.Fatal(err)
	}

	if battle.Phase() != PhaseAwaitingSwitch {
		t.Fatalf("a fainted active pokemon should force a switch: phase %d", battle.Phase())
	}

	if battle.MustSwitchTrainer() != TRAINER1 {
		t.Fatalf("trainer one should have to switch, got trainer %d", battle.MustSwitchTrainer())
	}

	// only a switch from the right trainer is legal now
	if err := battle.SubmitAction(NewAttackAction(TRAINER2, 0)); err == nil {
		t.Fatalf("the other trainer should not act during a forced switch")
	}

	switchState := battle.State()
	if err := battle.SubmitAction(NewSwitchAction(&switchState, TRAINER1, 1)); err != nil {
		t.Fatalf("forced switch rejected: %s", err)
	}

	if battle.Phase() != PhaseAwaitingActions {
		t.Fatalf("the battle should resume once the new pokemon is in: phase %d", battle.Phase())
	}

	if battle.State().TrainerOne.ActivePokeIndex != 1 {
		t.Fatalf("forced switch did not go through")
	}
}

func TestBattleGameOver(t *testing.T) {
	frail := buildWithMoves("bulbasaur", 5, "tackle")
	enemy := buildWithMoves("bulbasaur", 100, "tackle")

	state := getSimpleState(frail, enemy)
	state.TrainerOne.GetActivePokemon().Hp.Value = 1

	battle := NewBattle(state)
	battle.DrainLog()

	if err := battle.SubmitAction(NewAttackAction(TRAINER1, 0)); err != nil {
		t.Fatal(err)
	}
	if err := battle.SubmitAction(NewAttackAction(TRAINER2, 0)); err != nil {
		t.Fatal(err)
	}

	if battle.Phase() != PhaseBattleOver {
		t.Fatalf("losing the last pokemon should end the battle: phase %d", battle.Phase())
	}

	if battle.Winner() != TRAINER2 {
		t.Fatalf("expected trainer two to win, got %d", battle.Winner())
	}

	log := battle.DrainLog()
	if !slices.ContainsFunc(log, func(message string) bool {
		return strings.Contains(message, "won the battle")
	}) {
		t.Fatalf("the log should announce the winner: %v", log)
	}

	if err := battle.SubmitAction(NewAttackAction(TRAINER2, 0)); err == nil {
		t.Fatalf("actions after the battle is over should be rejected")
	}
}

func TestBattleSeedDeterminism(t *testing.T) {
	runBattle := func() []string {
		pokemon := buildWithMoves("bulbasaur", 50, "tackle", "razor-leaf")
		enemyPokemon := buildWithMoves("bulbasaur", 50, "tackle", "razor-leaf")

		battle := NewBattle(getSimpleState(pokemon, enemyPokemon))

		log := battle.DrainLog()
		for range 5 {
			if battle.Phase() != PhaseAwaitingActions {
				break
			}

			if err := battle.SubmitAction(NewAttackAction(TRAINER1, 1)); err != nil {
				t.Fatal(err)
			}
			if err := battle.SubmitAction(NewAttackAction(TRAINER2, 1)); err != nil {
				t.Fatal(err)
			}

			log = append(log, battle.DrainLog()...)
		}

		return log
	}

	first := runBattle()
	second := runBattle()

	if !slices.Equal(first, second) {
		t.Fatalf("two battles with the same seed and actions diverged:\n%v\n%v", first, second)
	}
}

func TestBattlePPGatesIntoStruggle(t *testing.T) {
	pokemon := buildWithMoves("bulbasaur", 50, "tackle")
	enemyPokemon := buildWithMoves("bulbasaur", 50, "tackle")

	state := getSimpleState(pokemon, enemyPokemon)
	state.TrainerOne.GetActivePokemon().BattleMoves[0].PP = 0

	battle := NewBattle(state)

	if err := battle.SubmitAction(NewAttackAction(TRAINER1, 0)); err == nil {
		t.Fatalf("a move with no pp left should be rejected")
	}

	if err := battle.SubmitAction(NewAttackAction(TRAINER1, STRUGGLE_MOVE_ID)); err != nil {
		t.Fatalf("struggle should be legal with no pp anywhere: %s", err)
	}
}

func TestFaintAppearsInBattleLog(t *testing.T) {
	frail := buildWithMoves("bulbasaur", 5, "tackle")
	backup := getDummyPokemon()
	enemy := buildWithMoves("bulbasaur", 100, "tackle")

	state := NewState("Ash", []Pokemon{frail, backup}, "Gary", []Pokemon{enemy}, testSeed())
	state.TrainerOne.GetActivePokemon().Hp.Value = 1

	battle := NewBattle(state)
	battle.DrainLog()

	if err := battle.SubmitAction(NewAttackAction(TRAINER1, 0)); err != nil {
		t.Fatal(err)
	}
	if err := battle.SubmitAction(NewAttackAction(TRAINER2, 0)); err != nil {
		t.Fatal(err)
	}

	log := battle.DrainLog()

	faints := 0
	for _, message := range log {
		if strings.Contains(message, "fainted") {
			faints++
		}
	}

	if faints != 1 {
		t.Fatalf("expected exactly one faint message, got %d in %v", faints, log)
	}
}
