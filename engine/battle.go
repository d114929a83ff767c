package engine

// Battle phases. A battle waits on both trainers, resolves their actions,
// and either waits again, waits on a single forced switch, or ends.
const (
	PhaseAwaitingActions = iota + 1
	PhaseAwaitingSwitch
	PhaseBattleOver
)

// Battle drives a full battle over a BattleState. Trainers submit one action
// each with SubmitAction; once every required action is in, the turn resolves
// and its messages land in the battle's log. Callers pull messages out with
// DrainLog at their own pace.
type Battle struct {
	state BattleState

	phase      int
	pending    map[int]Action
	mustSwitch int
	winner     int

	log []string
}

// NewBattle starts a battle over state, sending in each trainer's first
// pokemon. The lead pokemon messages are already in the log when this returns.
func NewBattle(state BattleState) *Battle {
	battle := &Battle{
		state:   state,
		phase:   PhaseAwaitingActions,
		pending: make(map[int]Action),
		winner:  -1,
	}

	leadEvents := []BattleEvent{
		SwitchEvent{TrainerIndex: TRAINER1, SwitchIndex: state.TrainerOne.ActivePokeIndex},
		SwitchEvent{TrainerIndex: TRAINER2, SwitchIndex: state.TrainerTwo.ActivePokeIndex},
	}

	battle.applyEvents(leadEvents)

	return battle
}

// Phase returns which phase the battle is in.
func (b *Battle) Phase() int {
	return b.phase
}

// Winner returns the winning trainer's index, or -1 while the battle is still going.
func (b *Battle) Winner() int {
	return b.winner
}

// MustSwitchTrainer returns the trainer that has to send in a new pokemon
// during PhaseAwaitingSwitch, and 0 in any other phase.
func (b *Battle) MustSwitchTrainer() int {
	if b.phase != PhaseAwaitingSwitch {
		return 0
	}

	return b.mustSwitch
}

// State returns an independent snapshot of the battle's state.
func (b *Battle) State() BattleState {
	return b.state.Clone()
}

// Turn returns the current turn number.
func (b *Battle) Turn() int {
	return b.state.Turn
}

// HasSubmitted reports whether the trainer already has an action in for this turn.
func (b *Battle) HasSubmitted(trainerID int) bool {
	_, ok := b.pending[trainerID]
	return ok
}

// DrainLog returns every message produced since the last call and clears the log.
func (b *Battle) DrainLog() []string {
	messages := b.log
	b.log = nil

	return messages
}

// SubmitAction validates and stores a trainer's action for the current turn.
// The turn resolves as a side effect once every required action is in.
// A rejected action leaves the battle untouched.
func (b *Battle) SubmitAction(action Action) error {
	if action == nil {
		return newInvalidAction(0, "no action given")
	}

	trainerID := action.GetCtx().TrainerID

	if trainerID != TRAINER1 && trainerID != TRAINER2 {
		return newInvalidAction(trainerID, "unknown trainer")
	}

	if b.phase == PhaseBattleOver {
		return newInvalidAction(trainerID, "the battle is over")
	}

	if b.HasSubmitted(trainerID) {
		return newInvalidAction(trainerID, "an action was already submitted this turn")
	}

	if b.phase == PhaseAwaitingSwitch {
		if trainerID != b.mustSwitch {
			return newInvalidAction(trainerID, "only the trainer with a fainted pokemon may act")
		}

		if _, ok := action.(SwitchAction); !ok {
			return newInvalidAction(trainerID, "a new pokemon must be sent in")
		}
	}

	if err := b.validateAction(action); err != nil {
		return err
	}

	b.pending[trainerID] = action

	if b.readyToResolve() {
		b.resolve()
	}

	return nil
}

func (b *Battle) readyToResolve() bool {
	if b.phase == PhaseAwaitingSwitch {
		return b.HasSubmitted(b.mustSwitch)
	}

	return b.HasSubmitted(TRAINER1) && b.HasSubmitted(TRAINER2)
}

func (b *Battle) validateAction(action Action) error {
	trainerID := action.GetCtx().TrainerID
	trainer := b.state.GetTrainer(trainerID)

	switch action := action.(type) {
	case AttackAction:
		pokemon := trainer.GetActivePokemon()

		if action.AttackerMove == STRUGGLE_MOVE_ID {
			// struggle is only legal once every move is out of pp
			for _, battleMove := range pokemon.BattleMoves {
				if !battleMove.Info.IsNil() && battleMove.PP > 0 {
					return newInvalidAction(trainerID, "%s still has moves with pp left", pokemon.Name())
				}
			}

			return nil
		}

		if action.AttackerMove < 0 || action.AttackerMove >= len(pokemon.Moves) {
			return newInvalidAction(trainerID, "move slot %d does not exist", action.AttackerMove)
		}

		move := pokemon.Moves[action.AttackerMove]
		if move.IsNil() {
			return newInvalidAction(trainerID, "move slot %d is empty", action.AttackerMove)
		}

		if pokemon.BattleMoves[action.AttackerMove].PP <= 0 {
			return newInvalidAction(trainerID, "%s has no pp left", move.Name)
		}
	case SwitchAction:
		if action.SwitchIndex < 0 || action.SwitchIndex >= len(trainer.Team) {
			return newInvalidAction(trainerID, "no pokemon in slot %d", action.SwitchIndex)
		}

		target := trainer.GetPokemon(action.SwitchIndex)
		if !target.Alive() {
			return newInvalidAction(trainerID, "%s has fainted and cannot battle", target.Name())
		}

		if action.SwitchIndex == trainer.ActivePokeIndex {
			return newInvalidAction(trainerID, "%s is already out", target.Name())
		}
	case SkipAction:
	default:
		return newInvalidAction(trainerID, "unknown action kind")
	}

	return nil
}

func (b *Battle) resolve() {
	actions := make([]Action, 0, len(b.pending))
	for _, action := range b.pending {
		actions = append(actions, action)
	}

	b.pending = make(map[int]Action)

	result := ProcessTurn(&b.state, actions)

	b.applyEvents(result.Events)

	switch result.Kind {
	case RESULT_GAMEOVER:
		b.phase = PhaseBattleOver
		b.winner = result.Trainer

		winnerName := b.state.GetTrainer(result.Trainer).Name
		b.log = append(b.log, winnerName+" won the battle!")
	case RESULT_FORCESWITCH:
		b.phase = PhaseAwaitingSwitch
		b.mustSwitch = result.Trainer
	case RESULT_RESOLVED:
		b.phase = PhaseAwaitingActions

		// Both actives can faint on the same turn; the resolver reports one
		// forced switch at a time, so catch the other one here.
		for _, trainerIndex := range []int{TRAINER1, TRAINER2} {
			trainer := b.state.GetTrainer(trainerIndex)
			if !trainer.GetActivePokemon().Alive() {
				trainer.ActiveKOed = true
				b.phase = PhaseAwaitingSwitch
				b.mustSwitch = trainerIndex
				break
			}
		}
	}
}

func (b *Battle) applyEvents(events []BattleEvent) {
	iter := NewEventIter()
	iter.AddEvents(events)

	for iter.Len() > 0 {
		messages, _ := iter.Next(&b.state)
		b.log = append(b.log, messages...)
	}
}
