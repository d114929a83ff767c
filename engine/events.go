package engine

import (
	"fmt"
	"math"
	"reflect"

	"github.com/samber/lo"
)

// BattleEvent represents a "single" change in BattleState.
// Single here meaning a high-level of single; multiple "things" happening in a single event
// should be strongly related.
//
// BattleEvents are separate from Actions in that Events are the low level changes of state and Actions
// represent higher level choices a trainer can make that are made of Events
type BattleEvent interface {
	// Update will update BattleState in some way. Follow-up events caused by this update are returned
	// and should be handled DIRECTLY after this event. The second value is a list of messages to be displayed for the event.
	Update(*BattleState) ([]BattleEvent, []string)
}

type SwitchEvent struct {
	SwitchIndex  int
	TrainerIndex int
}

func (event SwitchEvent) Update(state *BattleState) ([]BattleEvent, []string) {
	trainer, opposingTrainer := getTrainerPair(state, event.TrainerIndex)
	currentPokemon := trainer.GetActivePokemon()
	newActivePkm := trainer.GetPokemon(event.SwitchIndex)

	currentPokemon.ClearStatChanges()

	messages := make([]string, 0)

	internalLogger.WithName("switch_event").Info("", "trainer_name", trainer.Name, "pokemon_name", newActivePkm.Name())

	trainer.ActivePokeIndex = event.SwitchIndex

	followUpEvents := make([]BattleEvent, 0)

	// --- On Switch-In Updates ---
	// Reset toxic count
	if newActivePkm.Status == STATUS_TOXIC {
		newActivePkm.ToxicCount = 1
		internalLogger.WithName("switch_event").Info("pokemon switched in and reset their toxic count", "pokemon_name", newActivePkm.Name())
	}

	// --- Activate Abilities
	switch newActivePkm.Ability.Name {
	case ABILITY_INTIMIDATE:
		opPokemon := opposingTrainer.GetActivePokemon()
		if opPokemon.Alive() {
			followUpEvents = append(followUpEvents, NewFmtMessageEvent("%s intimidates %s!", newActivePkm.Name(), opPokemon.Name()))
			followUpEvents = append(followUpEvents, NewStatChangeEvent(InvertTrainerIndex(event.TrainerIndex), STAT_ATTACK, -1, 100))
		}
	}

	newActivePkm.SwitchedInThisTurn = true
	newActivePkm.CanAttackThisTurn = false

	if state.Turn == 1 {
		messages = append(messages, fmt.Sprintf("%s sent in %s!", trainer.Name, newActivePkm.Name()))
	} else {
		messages = append(messages, fmt.Sprintf("%s switched to %s!", trainer.Name, newActivePkm.Name()))
	}

	return followUpEvents, messages
}

type AttackEvent struct {
	AttackerID int
	MoveID     int
}

func (event AttackEvent) Update(state *BattleState) ([]BattleEvent, []string) {
	attacker, defender := getTrainerPair(state, event.AttackerID)
	defenderInt := InvertTrainerIndex(event.AttackerID)

	attackPokemon := attacker.GetActivePokemon()
	defPokemon := defender.GetActivePokemon()

	if !attackPokemon.Alive() {
		attackEventLogger().Info("attack was cancelled because they died", "pokemon_name", attackPokemon.Name())
		return nil, nil
	}

	// An earlier event this turn (a flinch, mostly) can take the attack away
	// after the turn order was already decided
	if !attackPokemon.CanAttackThisTurn {
		attackEventLogger().Info("attack was cancelled, pokemon cannot act this turn", "pokemon_name", attackPokemon.Name())
		return nil, nil
	}

	rng := state.CreateRng()

	var move Move
	var pp int

	if event.MoveID == STRUGGLE_MOVE_ID {
		move = struggleMove
		pp = 1
	} else {
		move = attackPokemon.Moves[event.MoveID]
		pp = attackPokemon.BattleMoves[event.MoveID].PP
	}

	events := make([]BattleEvent, 0)
	messages := make([]string, 0)
	messages = append(messages, fmt.Sprintf("%s used %s", attackPokemon.Name(), move.Name))

	accuracyCheck := rng.IntN(100)

	moveAccuracy := move.Accuracy
	if moveAccuracy == 0 {
		moveAccuracy = 100
	}

	accuracy := int(float32(moveAccuracy) * (attackPokemon.Accuracy() * defPokemon.Evasion()))

	if accuracyCheck < accuracy && pp > 0 {
		attackEventLogger().Info("accuracy check passed", "accuracy_check", accuracyCheck, "accuracy_chance", accuracy)

		if move.DamageClass == DAMAGETYPE_PHYSICAL && defPokemon.Ability.Name == ABILITY_STATIC {
			effectChance := .3
			effectCheck := rng.Float64()

			if effectCheck < effectChance {
				events = append(events, AilmentEvent{TrainerIndex: event.AttackerID, Ailment: STATUS_PARA})
			}
		}

		handlerContext := newAttackHandlerContext(*state, event.AttackerID, defenderInt, move)

		switch move.Meta.Category {
		case CATEGORY_DAMAGE, CATEGORY_DAMAGE_HEAL:
			events = append(events, damageMoveHandler(handlerContext)...)
		case CATEGORY_AILMENT:
			events = append(events, ailmentHandler(handlerContext)...)
		case CATEGORY_DAMAGE_AILMENT:
			events = append(events, damageMoveHandler(handlerContext)...)
			events = append(events, ailmentHandler(handlerContext)...)
		case CATEGORY_NET_GOOD_STATS:
			lo.ForEach(move.StatChanges, func(statChange StatChange, _ int) {
				// since its "net-good-stats", the stat change always has to benefit the user
				affectedPokemonIndex := event.AttackerID
				if statChange.Change < 0 {
					affectedPokemonIndex = InvertTrainerIndex(affectedPokemonIndex)
				}

				events = append(events, NewStatChangeEvent(affectedPokemonIndex, statChange.StatName, statChange.Change, move.Meta.StatChance))
			})
		// Damages and then CHANGES the targets stats
		case CATEGORY_DAMAGE_LOWER:
			events = append(events, damageMoveHandler(handlerContext)...)
			lo.ForEach(move.StatChanges, func(statChange StatChange, _ int) {
				events = append(events, NewStatChangeEvent(defenderInt, statChange.StatName, statChange.Change, move.Meta.StatChance))
			})
		// Damages and then CHANGES the user's stats.
		// Moves like draco-meteor and overheat lower the
		// user's stats but are in this category
		case CATEGORY_DAMAGE_RAISE:
			events = append(events, damageMoveHandler(handlerContext)...)
			lo.ForEach(move.StatChanges, func(statChange StatChange, _ int) {
				events = append(events, NewStatChangeEvent(event.AttackerID, statChange.StatName, statChange.Change, move.Meta.StatChance))
			})
		case CATEGORY_HEAL:
			events = append(events, healHandler(handlerContext))
		default:
			attackEventLogger().Info("Move has no handler!!!", "move_name", move.Name, "move_category", move.Meta.Category)
		}

		if rng.IntN(100) < move.Meta.FlinchChance {
			events = append(events, FlinchEvent{TrainerIndex: defenderInt})
		}

		if event.MoveID != STRUGGLE_MOVE_ID {
			attackPokemon.BattleMoves[event.MoveID].PP = pp - 1
		}
	} else {
		attackEventLogger().Info("accuracy check failed", "accuracy_check", accuracyCheck, "accuracy_chance", accuracy, "pokemon_name", attackPokemon.Name())
		messages = append(messages, fmt.Sprintf("%s missed their attack!", attackPokemon.Name()))
	}

	return events, messages
}

type StatChangeEvent struct {
	Chance       int
	StatName     string
	Change       int
	TrainerIndex int
}

func NewStatChangeEvent(trainerIndex int, statName string, change int, chance int) StatChangeEvent {
	return StatChangeEvent{TrainerIndex: trainerIndex, StatName: statName, Change: change, Chance: chance}
}

func (event StatChangeEvent) Update(state *BattleState) ([]BattleEvent, []string) {
	rng := state.CreateRng()

	statCheck := rng.IntN(100)
	if event.Chance == 0 {
		event.Chance = 100
	}

	pokemon := state.GetTrainer(event.TrainerIndex).GetActivePokemon()

	if statCheck < event.Chance {
		internalLogger.WithName("stat_change_event").Info("stat change check passed", "stat_check", statCheck, "stat_chance", event.Chance, "pokemon_name", pokemon.Name())

		switch event.StatName {
		case STAT_ATTACK:
			pokemon.Attack.ChangeStat(event.Change)
		case STAT_DEFENSE:
			pokemon.Def.ChangeStat(event.Change)
		case STAT_SPATTACK:
			pokemon.SpAttack.ChangeStat(event.Change)
		case STAT_SPDEF:
			pokemon.SpDef.ChangeStat(event.Change)
		case STAT_SPEED:
			pokemon.RawSpeed.ChangeStat(event.Change)
		case STAT_ACCURACY:
			pokemon.ChangeAccuracy(event.Change)
		case STAT_EVASION:
			pokemon.ChangeEvasion(event.Change)
		}

		absChange := int(math.Abs(float64(event.Change)))
		var message []string = nil

		if event.Change > 0 {
			message = []string{fmt.Sprintf("%s's %s increased by %d stages!", pokemon.Name(), event.StatName, absChange)}
		} else {
			message = []string{fmt.Sprintf("%s's %s decreased by %d stages!", pokemon.Name(), event.StatName, absChange)}
		}

		return nil, message
	} else {
		internalLogger.WithName("stat_change_event").Info("stat change check failed", "stat_check", statCheck, "stat_chance", event.Chance, "pokemon_name", pokemon.Name())
		return nil, nil
	}
}

type AilmentEvent struct {
	TrainerIndex int
	Ailment      int
}

var ailmentApplicationMessages = map[int]string{
	STATUS_NONE:   "%s has been cured of it's afflictions!",
	STATUS_SLEEP:  "%s has fallen asleep!",
	STATUS_PARA:   "%s has been paralyzed!",
	STATUS_FROZEN: "%s has been frozen!",
	STATUS_BURN:   "%s has been burned!",
	STATUS_POISON: "%s has been poisoned!",
	STATUS_TOXIC:  "%s has been badly poisoned!",
}

func (event AilmentEvent) Update(state *BattleState) ([]BattleEvent, []string) {
	pokemon := state.GetTrainer(event.TrainerIndex).GetActivePokemon()
	// If pokemon already has an ailment, return early
	if pokemon.Status != STATUS_NONE {
		return nil, nil
	}

	rng := state.CreateRng()

	// Pre-Ailment checks
	switch event.Ailment {
	case STATUS_PARA:
		if pokemon.Ability.Name == ABILITY_LIMBER {
			return []BattleEvent{
				SimpleAbilityActivationEvent(state, event.TrainerIndex),
				NewFmtMessageEvent("%s cannot be paralyzed", pokemon.Name()),
			}, nil
		}
	// Set how many turns the pokemon is asleep for
	case STATUS_SLEEP:
		if pokemon.Ability.Name == ABILITY_INSOMNIA {
			return []BattleEvent{
				SimpleAbilityActivationEvent(state, event.TrainerIndex),
				NewFmtMessageEvent("%s cannot fall asleep", pokemon.Name()),
			}, nil
		}

		pokemon.SleepCount = rng.IntN(2) + 1
		internalLogger.WithName("ailment_event").Info("Pokemon fell asleep", "pokemon_name", pokemon.Name(), "sleep_turns", pokemon.SleepCount)
	case STATUS_BURN:
		if pokemon.Ability.Name == ABILITY_WATER_VEIL {
			return []BattleEvent{
				SimpleAbilityActivationEvent(state, event.TrainerIndex),
				NewFmtMessageEvent("%s cannot be burned", pokemon.Name()),
			}, nil
		}
	case STATUS_POISON, STATUS_TOXIC:
		if pokemon.Ability.Name == ABILITY_IMMUNITY {
			return []BattleEvent{
				SimpleAbilityActivationEvent(state, event.TrainerIndex),
				NewFmtMessageEvent("%s cannot be poisoned", pokemon.Name()),
			}, nil
		}

		if event.Ailment == STATUS_TOXIC {
			pokemon.ToxicCount = 1
		}
	}

	pokemon.Status = event.Ailment

	return nil, []string{fmt.Sprintf(ailmentApplicationMessages[event.Ailment], pokemon.Name())}
}

// AbilityActivationEvent occurs when an ability is activated. This can be just the message that an ability has activated
// or the effects from the ability can also occur here. The idea behind this event is to put as many
// state changing ability actions here. Basically, a change that can happen outside of its context of activation
// should happen here.
//
// For example, levitate's immunity does not activate here. That happens in the Damage function
// because Damage needs to be able to zero out ground moves there.
type AbilityActivationEvent struct {
	CustomMessage string
	AbilityName   string
	ActivatorInt  int
}

// SimpleAbilityActivationEvent returns an AbilityActivationEvent with no custom message.
func SimpleAbilityActivationEvent(state *BattleState, activatorInt int) AbilityActivationEvent {
	pkm := state.GetTrainer(activatorInt).GetActivePokemon()
	return AbilityActivationEvent{AbilityName: pkm.Ability.Name, ActivatorInt: activatorInt}
}

func (event AbilityActivationEvent) Update(state *BattleState) ([]BattleEvent, []string) {
	if event.ActivatorInt == 0 && event.CustomMessage != "" {
		return nil, []string{event.CustomMessage}
	}

	activatorPkm := state.GetTrainer(event.ActivatorInt).GetActivePokemon()

	events := make([]BattleEvent, 0)
	messages := make([]string, 0)

	if event.CustomMessage == "" {
		messages = append(messages, fmt.Sprintf("%s activated their ability: %s", activatorPkm.Name(), event.AbilityName))
	} else {
		messages = append(messages, event.CustomMessage)
	}

	// NOTE: This assumes that all abilities have met their conditions to be activated.
	switch event.AbilityName {
	case ABILITY_SPEED_BOOST:
		events = append(events, NewStatChangeEvent(event.ActivatorInt, STAT_SPEED, 1, 100))
	}

	return events, messages
}

type DamageEvent struct {
	Damage          uint
	TrainerIndex    int
	SuppressMessage bool
	Crit            bool
}

func (event DamageEvent) Update(state *BattleState) ([]BattleEvent, []string) {
	pokemon := state.GetTrainer(event.TrainerIndex).GetActivePokemon()

	wasAlive := pokemon.Alive()
	hpBefore := pokemon.Hp.Value
	pokemon.Damage(event.Damage)

	// Report the health actually lost, an overkill hit is still only 100%
	hpLost := hpBefore - pokemon.Hp.Value
	damagePercent := 100 * (float64(hpLost) / float64(pokemon.MaxHp))

	messages := []string{
		fmt.Sprintf("%s took %d%% damage!", pokemon.Name(), int(damagePercent)),
	}

	if event.Crit {
		messages = append(messages, "It critically hit!")
	}

	// Only the hit that dropped them to zero faints them
	var followUps []BattleEvent
	if wasAlive && !pokemon.Alive() {
		followUps = append(followUps, FaintEvent{TrainerIndex: event.TrainerIndex})
	}

	if event.SuppressMessage {
		return followUps, nil
	} else {
		return followUps, messages
	}
}

// FaintEvent announces a knock out. DamageEvent emits it on the hit that
// brought the pokemon down, so it fires once per faint.
type FaintEvent struct {
	TrainerIndex int
}

func (event FaintEvent) Update(state *BattleState) ([]BattleEvent, []string) {
	pokemon := state.GetTrainer(event.TrainerIndex).GetActivePokemon()

	internalLogger.WithName("faint_event").Info("pokemon fainted", "pokemon_name", pokemon.Name())

	return nil, []string{fmt.Sprintf("%s fainted!", pokemon.Name())}
}

type HealEvent struct {
	Heal         uint
	TrainerIndex int
}

func (event HealEvent) Update(state *BattleState) ([]BattleEvent, []string) {
	pokemon := state.GetTrainer(event.TrainerIndex).GetActivePokemon()
	pokemon.Heal(event.Heal)

	healPerc := 100 * (float64(event.Heal) / float64(pokemon.MaxHp))
	messages := []string{
		fmt.Sprintf("%s healed %d%% of their health!", pokemon.Name(), int(healPerc)),
	}

	return nil, messages
}

type HealPercEvent struct {
	TrainerIndex int
	HealPerc     float64
}

func (event HealPercEvent) Update(state *BattleState) ([]BattleEvent, []string) {
	pokemon := state.GetTrainer(event.TrainerIndex).GetActivePokemon()
	pokemon.HealPerc(event.HealPerc)

	heal := 100 * event.HealPerc

	return nil, []string{
		fmt.Sprintf("%s healed by %d%%!", pokemon.Name(), int(heal)),
	}
}

// ItemConsumedEvent marks the active pokemon's held item as used up.
type ItemConsumedEvent struct {
	TrainerIndex int
}

func (event ItemConsumedEvent) Update(state *BattleState) ([]BattleEvent, []string) {
	pokemon := state.GetTrainer(event.TrainerIndex).GetActivePokemon()
	pokemon.ItemConsumed = true

	return nil, nil
}

type BurnEvent struct {
	TrainerIndex int
}

func (event BurnEvent) Update(state *BattleState) ([]BattleEvent, []string) {
	pokemon := state.GetTrainer(event.TrainerIndex).GetActivePokemon()

	if pokemon.Alive() {
		damage := pokemon.MaxHp / 8
		return []BattleEvent{DamageEvent{Damage: damage, TrainerIndex: event.TrainerIndex}}, []string{
			fmt.Sprintf("%s is burned!", pokemon.Name()),
		}
	}

	return nil, nil
}

type PoisonEvent struct {
	TrainerIndex int
}

func (event PoisonEvent) Update(state *BattleState) ([]BattleEvent, []string) {
	pokemon := state.GetTrainer(event.TrainerIndex).GetActivePokemon()

	if !pokemon.Alive() {
		return nil, nil
	}

	damage := pokemon.MaxHp / 8
	return []BattleEvent{DamageEvent{Damage: damage, TrainerIndex: event.TrainerIndex}}, []string{
		fmt.Sprintf("%s is poisoned!", pokemon.Name()),
	}
}

type ToxicEvent struct {
	TrainerIndex int
}

func (event ToxicEvent) Update(state *BattleState) ([]BattleEvent, []string) {
	pokemon := state.GetTrainer(event.TrainerIndex).GetActivePokemon()

	if !pokemon.Alive() {
		return nil, nil
	}

	damage := (pokemon.MaxHp / 16) * uint(pokemon.ToxicCount)
	pokemon.ToxicCount++

	internalLogger.WithName("toxic_event").Info("toxic updated", "damage", damage, "toxic_count", pokemon.ToxicCount, "pokemon_name", pokemon.Name())

	return []BattleEvent{DamageEvent{Damage: damage, TrainerIndex: event.TrainerIndex}}, []string{
		fmt.Sprintf("%s is badly poisoned!", pokemon.Name()),
	}
}

type FrozenEvent struct {
	TrainerIndex        int
	FollowUpAttackEvent BattleEvent
}

func (event FrozenEvent) Update(state *BattleState) ([]BattleEvent, []string) {
	pokemon := state.GetTrainer(event.TrainerIndex).GetActivePokemon()

	rng := state.CreateRng()

	thawChance := .20
	thawCheck := rng.Float64()

	message := ""

	// pokemon stays frozen
	if thawCheck > thawChance {
		internalLogger.WithName("frozen_event").Info("thaw check failed", "thaw_check", thawCheck, "thaw_chance", thawChance, "pokemon_name", pokemon.Name())
		message = fmt.Sprintf("%s is frozen and cannot move", pokemon.Name())

		pokemon.CanAttackThisTurn = false
	} else {
		internalLogger.WithName("frozen_event").Info("thaw check passed!", "thaw_check", thawCheck, "thaw_chance", thawChance, "pokemon_name", pokemon.Name())
		message = fmt.Sprintf("%s thawed out!", pokemon.Name())

		pokemon.Status = STATUS_NONE
		pokemon.CanAttackThisTurn = true
	}

	if pokemon.CanAttackThisTurn {
		return []BattleEvent{event.FollowUpAttackEvent}, []string{message}
	}

	return nil, []string{message}
}

type ParaEvent struct {
	TrainerIndex        int
	FollowUpAttackEvent BattleEvent
}

func (event ParaEvent) Update(state *BattleState) ([]BattleEvent, []string) {
	pokemon := state.GetTrainer(event.TrainerIndex).GetActivePokemon()

	rng := state.CreateRng()

	paraChance := 0.5
	paraCheck := rng.Float64()

	messages := make([]string, 0)
	messages = append(messages, fmt.Sprintf("%s is paralyzed.", pokemon.Name()))

	if paraCheck > paraChance {
		internalLogger.WithName("para_event").Info("para check passed", "para_check", paraCheck, "para_chance", paraChance, "pokemon_name", pokemon.Name())
		return []BattleEvent{event.FollowUpAttackEvent}, messages
	} else {
		internalLogger.WithName("para_event").Info("para check failed", "para_check", paraCheck, "para_chance", paraChance, "pokemon_name", pokemon.Name())
		pokemon.CanAttackThisTurn = false

		messages = append(messages, fmt.Sprintf("%s is paralyzed and cannot move.", pokemon.Name()))
	}

	return nil, messages
}

type FlinchEvent struct {
	TrainerIndex int
}

func (event FlinchEvent) Update(state *BattleState) ([]BattleEvent, []string) {
	pokemon := state.GetTrainer(event.TrainerIndex).GetActivePokemon()
	pokemon.CanAttackThisTurn = false

	return nil, []string{fmt.Sprintf("%s flinched and cannot move!", pokemon.Name())}
}

type SleepEvent struct {
	TrainerIndex        int
	FollowUpAttackEvent BattleEvent
}

func (event SleepEvent) Update(state *BattleState) ([]BattleEvent, []string) {
	pokemon := state.GetTrainer(event.TrainerIndex).GetActivePokemon()
	message := ""

	// Sleep is over
	if pokemon.SleepCount <= 0 {
		pokemon.Status = STATUS_NONE
		message = fmt.Sprintf("%s woke up!", pokemon.Name())
		pokemon.CanAttackThisTurn = true
	} else {
		message = fmt.Sprintf("%s is asleep", pokemon.Name())
		pokemon.CanAttackThisTurn = false
	}

	if pokemon.CanAttackThisTurn {
		return []BattleEvent{event.FollowUpAttackEvent}, []string{message}
	}

	pokemon.SleepCount--

	return nil, []string{message}
}

type EndOfTurnAbilityCheck struct {
	TrainerID int
}

func (event EndOfTurnAbilityCheck) Update(state *BattleState) ([]BattleEvent, []string) {
	pokemon := state.GetTrainer(event.TrainerID).GetActivePokemon()

	events := make([]BattleEvent, 0)

	switch pokemon.Ability.Name {
	case ABILITY_SPEED_BOOST:
		if !pokemon.SwitchedInThisTurn && pokemon.Alive() {
			events = append(events,
				SimpleAbilityActivationEvent(state, event.TrainerID),
			)
		}
	}

	return events, nil
}

type EndOfTurnItemCheck struct {
	TrainerID int
}

func (event EndOfTurnItemCheck) Update(state *BattleState) ([]BattleEvent, []string) {
	pokemon := state.GetTrainer(event.TrainerID).GetActivePokemon()

	if !pokemon.Alive() {
		return nil, nil
	}

	events := make([]BattleEvent, 0)

	switch pokemon.HeldItem() {
	case ITEM_LEFTOVERS:
		if pokemon.Hp.Value < pokemon.MaxHp {
			events = append(events, NewFmtMessageEvent("%s restored health with its leftovers!", pokemon.Name()))
			events = append(events, HealPercEvent{TrainerIndex: event.TrainerID, HealPerc: 1.0 / 16.0})
		}
	case ITEM_LUM_BERRY:
		if pokemon.Status != STATUS_NONE {
			pokemon.Status = STATUS_NONE
			pokemon.ToxicCount = 0
			pokemon.SleepCount = 0

			events = append(events, ItemConsumedEvent{TrainerIndex: event.TrainerID})
			events = append(events, NewFmtMessageEvent("%s ate its lum berry and was cured!", pokemon.Name()))
		}
	}

	return events, nil
}

// MessageEvent is an event that only shows a message. No state updates occur.
type MessageEvent struct {
	Message string
}

func NewMessageEvent(message string) MessageEvent {
	return MessageEvent{Message: message}
}

func (event MessageEvent) Update(_ *BattleState) ([]BattleEvent, []string) {
	return nil, []string{event.Message}
}

// FmtMessageEvent is an event that only shows a message fmt.Sprintf'ed with the given arguments. All rules with fmt.Sprintf apply here
type FmtMessageEvent struct {
	Message string
	Args    []any
}

func NewFmtMessageEvent(message string, a ...any) FmtMessageEvent {
	return FmtMessageEvent{Message: message, Args: a}
}

func (event FmtMessageEvent) Update(_ *BattleState) ([]BattleEvent, []string) {
	return nil, []string{fmt.Sprintf(event.Message, event.Args...)}
}

type EventIter struct {
	events []BattleEvent
}

func NewEventIter() EventIter {
	return EventIter{make([]BattleEvent, 0)}
}

// Next updates state given the top event, adds any follow up events to the front of the queue,
// and returns the messages from that event to be shown to the user. The boolean value is true if
// there are any more events in the queue.
func (iter *EventIter) Next(state *BattleState) ([]string, bool) {
	if len(iter.events) == 0 {
		return nil, false
	}

	headEvent := iter.events[0]
	internalLogger.WithName("event_iter").Info("updating state", "event_name", reflect.TypeOf(headEvent))
	followUpEvents, messages := headEvent.Update(state)

	// pop queue
	iter.events = iter.events[1:len(iter.events)]

	if len(followUpEvents) != 0 {
		// create new queue with follow-up events prepended to the front
		newQueue := make([]BattleEvent, 0, len(iter.events)+len(followUpEvents))
		newQueue = append(newQueue, followUpEvents...)
		newQueue = append(newQueue, iter.events...)

		iter.events = newQueue
	}

	return messages, true
}

func (iter *EventIter) AddEvents(events []BattleEvent) {
	iter.events = append(iter.events, events...)
}

func (iter EventIter) Len() int {
	return len(iter.events)
}
