package engine

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"

	"github.com/samber/lo"
)

const (
	RESULT_RESOLVED = iota + 1
	RESULT_GAMEOVER
	RESULT_FORCESWITCH
)

// TurnResult represents the result of a turn or part of a turn (in the case of a force switch).
// Unlike events, TurnResult is a single struct with a tag, Kind, that determines the result.
type TurnResult struct {
	Kind   int
	Events []BattleEvent
	// The trainer the result concerns: the winner for RESULT_GAMEOVER,
	// the trainer who must send in a new pokemon for RESULT_FORCESWITCH.
	Trainer int
}

// ProcessTurn turns a full set of submitted actions into the ordered events of a turn.
// The returned events have NOT been applied to state; callers apply them with an EventIter
// (or ApplyEventsToState) so they can show the messages as they go.
func ProcessTurn(state *BattleState, actions []Action) TurnResult {
	trainerOne := &state.TrainerOne
	trainerTwo := &state.TrainerTwo

	switches := make([]SwitchAction, 0)
	otherActions := make([]Action, 0)

	events := make([]BattleEvent, 0)

	backFromForceSwitch := trainerOne.ActiveKOed || trainerTwo.ActiveKOed

	// Sort different actions
	for _, a := range actions {
		switch a := a.(type) {
		case SwitchAction:
			switches = append(switches, a)
		default:
			otherActions = append(otherActions, a)
		}
	}

	trainerOnePokemon := trainerOne.GetActivePokemon()
	trainerTwoPokemon := trainerTwo.GetActivePokemon()

	if !backFromForceSwitch {
		internalLogger.WithName("turn").Info(fmt.Sprintf("\n\n======== TURN %d =========", state.Turn))
		// Reset turn flags.
		// NOTE: i want to keep updates outside of events like this rare. i will make an exception here: there is no visual
		// for when a pokemon can't attack and it saves us from adding an attack action that would have to be skipped while iterating through them
		trainerOnePokemon.CanAttackThisTurn = true
		trainerOnePokemon.SwitchedInThisTurn = false

		trainerTwoPokemon.CanAttackThisTurn = true
		trainerTwoPokemon.SwitchedInThisTurn = false
	}

	for _, action := range actions {
		internalLogger.V(1).Info("Trainer Action", "trainer_id", action.GetCtx().TrainerID, "action_name", reflect.TypeOf(action).Name())
	}

	events = append(events, switchEvents(*state, switches)...)

	// Properly end turn after force switches are dealt with
	if backFromForceSwitch {
		internalLogger.V(1).Info("coming back from force switch")
		trainerOne.ActiveKOed = false
		trainerTwo.ActiveKOed = false

		state.Turn++

		return TurnResult{
			Kind:   RESULT_RESOLVED,
			Events: events,
		}
	}

	events = append(events, actionEvents(*state, otherActions)...)

	// we don't want to modify the original state just yet but we need to play through what events have already happened
	clonedState := state.Clone()
	ApplyEventsToState(&clonedState, TurnResult{
		Kind:   RESULT_RESOLVED,
		Events: events,
	})

	if winner := clonedState.Winner(); winner != -1 {
		return TurnResult{
			Kind:    RESULT_GAMEOVER,
			Trainer: winner,
			Events:  events,
		}
	}

	if !clonedState.TrainerOne.GetActivePokemon().Alive() {
		trainerOne.ActiveKOed = true
		internalLogger.V(1).Info("trainer one's pokemon has been killed. returning force switch")
		return TurnResult{
			Kind:    RESULT_FORCESWITCH,
			Trainer: TRAINER1,
			Events:  events,
		}
	}

	if !clonedState.TrainerTwo.GetActivePokemon().Alive() {
		trainerTwo.ActiveKOed = true
		internalLogger.V(1).Info("trainer two's pokemon has been killed. returning force switch")
		return TurnResult{
			Kind:    RESULT_FORCESWITCH,
			Trainer: TRAINER2,
			Events:  events,
		}
	}

	events = append(events, endOfTurnEvents(state)...)

	state.Turn++

	return TurnResult{
		Kind:   RESULT_RESOLVED,
		Events: events,
	}
}

// ApplyEventsToState runs every event of a result against state, dropping the messages.
func ApplyEventsToState(state *BattleState, result TurnResult) {
	eventIter := NewEventIter()
	eventIter.AddEvents(result.Events)

	for {
		_, next := eventIter.Next(state)
		if !next {
			break
		}
	}
}

func switchEvents(state BattleState, switches []SwitchAction) []BattleEvent {
	events := make([]BattleEvent, 0)

	// Sort switching order by speed, trainer one acts first on ties
	slices.SortFunc(switches, func(a, b SwitchAction) int {
		speedComp := cmp.Compare(a.Poke.Speed(), b.Poke.Speed())
		if speedComp != 0 {
			return speedComp
		}

		return cmp.Compare(b.Ctx.TrainerID, a.Ctx.TrainerID)
	})

	// Reverse for desc order
	slices.Reverse(switches)

	// Process switches first
	lo.ForEach(switches, func(a SwitchAction, i int) {
		events = append(events, a.UpdateState(state)...)
	})

	return events
}

func actionEvents(state BattleState, actions []Action) []BattleEvent {
	events := make([]BattleEvent, 0)

	// Sort by move priority, then speed, then trainer one first on full ties
	slices.SortFunc(actions, func(a, b Action) int {
		var aSpeed int
		var bSpeed int
		var aPriority int
		var bPriority int

		activePokemon := state.GetTrainer(a.GetCtx().TrainerID).GetActivePokemon()
		aSpeed = activePokemon.Speed()

		switch a := a.(type) {
		case AttackAction:
			if a.AttackerMove != STRUGGLE_MOVE_ID {
				aPriority = activePokemon.Moves[a.AttackerMove].Priority
			}
		case SkipAction, *SkipAction:
			aPriority = -100
		default:
			internalLogger.Error(fmt.Errorf("unaccounted for action while trying to sort action"), "")
			return 0
		}

		activePokemon = state.GetTrainer(b.GetCtx().TrainerID).GetActivePokemon()
		bSpeed = activePokemon.Speed()

		switch b := b.(type) {
		case AttackAction:
			if b.AttackerMove != STRUGGLE_MOVE_ID {
				bPriority = activePokemon.Moves[b.AttackerMove].Priority
			}
		case SkipAction, *SkipAction:
			bPriority = -100
		default:
			internalLogger.Error(fmt.Errorf("unaccounted for action while trying to sort action"), "")
			return 0
		}

		internalLogger.V(2).Info("sort debug",
			"aTrainer", a.GetCtx().TrainerID,
			"bTrainer", b.GetCtx().TrainerID,
			"aSpeed", aSpeed,
			"bSpeed", bSpeed,
			"aPriority", aPriority,
			"bPriority", bPriority,
		)

		if priorComp := cmp.Compare(aPriority, bPriority); priorComp != 0 {
			return priorComp
		}

		if speedComp := cmp.Compare(aSpeed, bSpeed); speedComp != 0 {
			return speedComp
		}

		return cmp.Compare(b.GetCtx().TrainerID, a.GetCtx().TrainerID)
	})

	// Reverse for desc order
	slices.Reverse(actions)

	// Process otherActions next
	lo.ForEach(actions, func(a Action, i int) {
		switch a.(type) {
		case AttackAction, *AttackAction, SkipAction, *SkipAction:
			trainer := state.GetTrainer(a.GetCtx().TrainerID)

			pokemon := trainer.GetActivePokemon()
			if pokemon.CanAttackThisTurn {
				pokemon.CanAttackThisTurn = !pokemon.SwitchedInThisTurn
			}

			if !pokemon.Alive() {
				internalLogger.Info("attack was skipped because of dead", "pokemon_name", pokemon.Name())
				return
			}

			// Skip attack with para
			if pokemon.Status == STATUS_PARA {
				paraEvent := ParaEvent{
					TrainerIndex:        a.GetCtx().TrainerID,
					FollowUpAttackEvent: a.UpdateState(state)[0],
				}

				internalLogger.Info("attack was gated by para", "pokemon_name", pokemon.Name())

				events = append(events, paraEvent)
				return
			}

			// Skip attack with sleep
			if pokemon.Status == STATUS_SLEEP {
				sleepEv := SleepEvent{
					TrainerIndex:        a.GetCtx().TrainerID,
					FollowUpAttackEvent: a.UpdateState(state)[0],
				}

				internalLogger.Info("attack was gated by sleep", "pokemon_name", pokemon.Name())

				events = append(events, sleepEv)
				return
			}

			// Skip attack with frozen
			if pokemon.Status == STATUS_FROZEN {
				frzEv := FrozenEvent{
					TrainerIndex:        a.GetCtx().TrainerID,
					FollowUpAttackEvent: a.UpdateState(state)[0],
				}

				internalLogger.Info("attack was gated by freeze", "pokemon_name", pokemon.Name())

				events = append(events, frzEv)
				return
			}

			if pokemon.CanAttackThisTurn {
				events = append(events, a.UpdateState(state)...)
			} else {
				internalLogger.Info("attack was skipped because it was marked as unable to attack for the turn", "pokemon_name", pokemon.Name())
			}
		default:
			events = append(events, a.UpdateState(state)...)
		}
	})

	return events
}

func endOfTurnEvents(state *BattleState) []BattleEvent {
	events := make([]BattleEvent, 0)

	for _, trainerIndex := range []int{TRAINER1, TRAINER2} {
		pokemon := state.GetTrainer(trainerIndex).GetActivePokemon()

		switch pokemon.Status {
		case STATUS_BURN:
			events = append(events, BurnEvent{TrainerIndex: trainerIndex})
		case STATUS_POISON:
			events = append(events, PoisonEvent{TrainerIndex: trainerIndex})
		case STATUS_TOXIC:
			events = append(events, ToxicEvent{TrainerIndex: trainerIndex})
		}
	}

	events = append(events, EndOfTurnAbilityCheck{TrainerID: TRAINER1})
	events = append(events, EndOfTurnAbilityCheck{TrainerID: TRAINER2})

	events = append(events, EndOfTurnItemCheck{TrainerID: TRAINER1})
	events = append(events, EndOfTurnItemCheck{TrainerID: TRAINER2})

	return events
}
