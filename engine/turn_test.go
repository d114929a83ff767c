package engine

import (
	"fmt"
	"slices"
	"strings"
	"testing"
)

func buildWithMoves(name string, level uint, moveNames ...string) Pokemon {
	builder := NewPokeBuilder(GlobalData.GetPokemonByName(name), testRng()).SetLevel(level)

	var moves [4]Move
	for i, moveName := range moveNames {
		moves[i] = *GlobalData.GetMove(moveName)
	}

	return builder.SetMoves(moves).Build()
}

func TestFasterPokemonActsFirst(t *testing.T) {
	fast := buildWithMoves("bulbasaur", 50, "tackle")
	slow := buildWithMoves("bulbasaur", 5, "tackle")

	state := getSimpleState(fast, slow)

	// both are one hit from fainting, so whoever moves first wins
	state.TrainerOne.GetActivePokemon().Hp.Value = 1
	state.TrainerTwo.GetActivePokemon().Hp.Value = 1

	result := ProcessTurn(&state, []Action{
		NewAttackAction(TRAINER1, 0),
		NewAttackAction(TRAINER2, 0),
	})

	if result.Kind != RESULT_GAMEOVER {
		t.Fatalf("expected the turn to end the battle, got result kind %d", result.Kind)
	}

	if result.Trainer != TRAINER1 {
		t.Fatalf("the faster pokemon should have won: winner was trainer %d", result.Trainer)
	}
}

func TestPriorityBeatsSpeed(t *testing.T) {
	slow := buildWithMoves("bulbasaur", 5, "quick-attack")
	fast := buildWithMoves("bulbasaur", 50, "tackle")

	state := getSimpleState(slow, fast)

	state.TrainerOne.GetActivePokemon().Hp.Value = 1
	state.TrainerTwo.GetActivePokemon().Hp.Value = 1

	result := ProcessTurn(&state, []Action{
		NewAttackAction(TRAINER1, 0),
		NewAttackAction(TRAINER2, 0),
	})

	if result.Kind != RESULT_GAMEOVER {
		t.Fatalf("expected the turn to end the battle, got result kind %d", result.Kind)
	}

	if result.Trainer != TRAINER1 {
		t.Fatalf("the priority move should have gone first: winner was trainer %d", result.Trainer)
	}
}

func TestSwitchResolvesBeforeAttacks(t *testing.T) {
	team := []Pokemon{getDummyPokemon(), getDummyPokemon()}
	enemy := buildWithMoves("bulbasaur", 50, "tackle")

	state := NewState("Ash", team, "Gary", []Pokemon{enemy}, testSeed())

	result := ProcessTurn(&state, []Action{
		NewSwitchAction(&state, TRAINER1, 1),
		NewAttackAction(TRAINER2, 0),
	})

	ApplyEventsToState(&state, result)

	if state.TrainerOne.ActivePokeIndex != 1 {
		t.Fatalf("switch did not go through: active index %d", state.TrainerOne.ActivePokeIndex)
	}

	// the attack must have landed on the pokemon that switched in
	if state.TrainerOne.Team[1].Hp.Value == state.TrainerOne.Team[1].MaxHp {
		t.Fatalf("switched-in pokemon should have been hit")
	}

	if state.TrainerOne.Team[0].Hp.Value != state.TrainerOne.Team[0].MaxHp {
		t.Fatalf("switched-out pokemon should not have been hit")
	}
}

func TestBurnChipDamage(t *testing.T) {
	pokemon := levelHundredBulbasaur()
	enemyPokemon := getDummyPokemon()

	state := getSimpleState(pokemon, enemyPokemon)
	state.TrainerOne.GetActivePokemon().Status = STATUS_BURN

	result := ProcessTurn(&state, []Action{NewSkipAction(TRAINER1), NewSkipAction(TRAINER2)})
	ApplyEventsToState(&state, result)

	burned := state.TrainerOne.GetActivePokemon()
	expectedHp := burned.MaxHp - burned.MaxHp/8

	if burned.Hp.Value != expectedHp {
		t.Fatalf("burn chip damage off: hp %d/%d, expected %d", burned.Hp.Value, burned.MaxHp, expectedHp)
	}
}

func TestToxicDamageRamps(t *testing.T) {
	pokemon := levelHundredBulbasaur()
	enemyPokemon := getDummyPokemon()

	state := getSimpleState(pokemon, enemyPokemon)
	poisoned := state.TrainerOne.GetActivePokemon()
	poisoned.Status = STATUS_TOXIC
	poisoned.ToxicCount = 1

	skip := []Action{NewSkipAction(TRAINER1), NewSkipAction(TRAINER2)}

	result := ProcessTurn(&state, skip)
	ApplyEventsToState(&state, result)

	firstTick := poisoned.MaxHp - poisoned.Hp.Value
	if firstTick != poisoned.MaxHp/16 {
		t.Fatalf("first toxic tick should be 1/16 max hp: got %d", firstTick)
	}

	hpBefore := poisoned.Hp.Value

	result = ProcessTurn(&state, skip)
	ApplyEventsToState(&state, result)

	secondTick := hpBefore - poisoned.Hp.Value
	if secondTick != (poisoned.MaxHp/16)*2 {
		t.Fatalf("second toxic tick should be 2/16 max hp: got %d", secondTick)
	}
}

func TestSpeedBoostAtEndOfTurn(t *testing.T) {
	pokemon := getDummyPokemonWithAbility(ABILITY_SPEED_BOOST)
	enemyPokemon := getDummyPokemon()

	state := getSimpleState(pokemon, enemyPokemon)

	result := ProcessTurn(&state, []Action{NewSkipAction(TRAINER1), NewSkipAction(TRAINER2)})
	ApplyEventsToState(&state, result)

	if stage := state.TrainerOne.GetActivePokemon().RawSpeed.Stage; stage != 1 {
		t.Fatalf("speed boost should raise speed one stage at end of turn: got stage %d", stage)
	}
}

func TestLeftoversHealAtEndOfTurn(t *testing.T) {
	pokemon := levelHundredBulbasaur()
	pokemon.Item = ITEM_LEFTOVERS

	enemyPokemon := getDummyPokemon()

	state := getSimpleState(pokemon, enemyPokemon)
	holder := state.TrainerOne.GetActivePokemon()
	holder.Hp.Value = holder.MaxHp / 2

	result := ProcessTurn(&state, []Action{NewSkipAction(TRAINER1), NewSkipAction(TRAINER2)})
	ApplyEventsToState(&state, result)

	healed := holder.Hp.Value - holder.MaxHp/2
	if healed == 0 {
		t.Fatalf("leftovers should have healed at end of turn")
	}
}

func TestIntimidateOnSwitchIn(t *testing.T) {
	pokemon := getDummyPokemonWithAbility(ABILITY_INTIMIDATE)
	enemyPokemon := getDummyPokemon()

	state := getSimpleState(pokemon, enemyPokemon)

	iter := NewEventIter()
	iter.AddEvents([]BattleEvent{SwitchEvent{TrainerIndex: TRAINER1, SwitchIndex: 0}})

	for {
		if _, ok := iter.Next(&state); !ok {
			break
		}
	}

	if stage := state.TrainerTwo.GetActivePokemon().Attack.Stage; stage != -1 {
		t.Fatalf("intimidate should lower the opposing attack one stage: got stage %d", stage)
	}
}

func TestFlinchCancelsAttack(t *testing.T) {
	pokemon := buildWithMoves("bulbasaur", 50, "tackle")
	enemy := getDummyPokemon()

	state := getSimpleState(pokemon, enemy)
	state.TrainerOne.GetActivePokemon().CanAttackThisTurn = true

	iter := NewEventIter()
	iter.AddEvents([]BattleEvent{
		FlinchEvent{TrainerIndex: TRAINER1},
		AttackEvent{AttackerID: TRAINER1, MoveID: 0},
	})

	for iter.Len() > 0 {
		iter.Next(&state)
	}

	defender := state.TrainerTwo.GetActivePokemon()
	if defender.Hp.Value != defender.MaxHp {
		t.Fatalf("a flinched pokemon should not get its attack off: hp %d/%d", defender.Hp.Value, defender.MaxHp)
	}

	// control: the same attack lands without the flinch
	state = getSimpleState(pokemon, enemy)
	state.TrainerOne.GetActivePokemon().CanAttackThisTurn = true

	iter = NewEventIter()
	iter.AddEvents([]BattleEvent{AttackEvent{AttackerID: TRAINER1, MoveID: 0}})

	for iter.Len() > 0 {
		iter.Next(&state)
	}

	defender = state.TrainerTwo.GetActivePokemon()
	if defender.Hp.Value == defender.MaxHp {
		t.Fatalf("the attack should land when nothing cancels it")
	}
}

func TestDamageReportedOnlyForHealthLost(t *testing.T) {
	state := getSimpleState(getDummyPokemon(), getDummyPokemon())
	pokemon := state.TrainerOne.GetActivePokemon()

	iter := NewEventIter()
	iter.AddEvents([]BattleEvent{DamageEvent{TrainerIndex: TRAINER1, Damage: pokemon.MaxHp * 20}})

	messages := make([]string, 0)
	for iter.Len() > 0 {
		next, _ := iter.Next(&state)
		messages = append(messages, next...)
	}

	want := fmt.Sprintf("%s took 100%% damage!", pokemon.Name())
	if !slices.Contains(messages, want) {
		t.Fatalf("an overkill hit should report 100%% at most: %v", messages)
	}

	// hitting the downed pokemon again must not faint it a second time
	iter.AddEvents([]BattleEvent{DamageEvent{TrainerIndex: TRAINER1, Damage: 10}})
	for iter.Len() > 0 {
		next, _ := iter.Next(&state)
		messages = append(messages, next...)
	}

	faints := 0
	for _, message := range messages {
		if strings.Contains(message, "fainted") {
			faints++
		}
	}

	if faints != 1 {
		t.Fatalf("faint should be reported exactly once, got %d in %v", faints, messages)
	}
}
