package engine

// Action is a trainer-level choice for a turn. Actions are made of events:
// UpdateState returns the low-level events that carry the action out.
type Action interface {
	UpdateState(BattleState) []BattleEvent

	GetCtx() ActionCtx
}

type ActionCtx struct {
	TrainerID int
}

func NewActionCtx(trainerID int) ActionCtx {
	return ActionCtx{TrainerID: trainerID}
}

type SwitchAction struct {
	Ctx ActionCtx

	SwitchIndex int
	Poke        Pokemon
}

func NewSwitchAction(state *BattleState, trainerID int, switchIndex int) SwitchAction {
	return SwitchAction{
		Ctx:         NewActionCtx(trainerID),
		SwitchIndex: switchIndex,
		Poke:        state.GetTrainer(trainerID).Team[switchIndex],
	}
}

func (a SwitchAction) UpdateState(state BattleState) []BattleEvent {
	return []BattleEvent{SwitchEvent{TrainerIndex: a.Ctx.TrainerID, SwitchIndex: a.SwitchIndex}}
}

func (a SwitchAction) GetCtx() ActionCtx {
	return a.Ctx
}

// SkipAction is a do-nothing failsafe for when a trainer somehow has no legal action.
type SkipAction struct {
	Ctx ActionCtx
}

func NewSkipAction(trainerID int) SkipAction {
	return SkipAction{
		Ctx: NewActionCtx(trainerID),
	}
}

func (a SkipAction) UpdateState(state BattleState) []BattleEvent {
	return []BattleEvent{
		NewMessageEvent("skip turn"),
	}
}

func (a SkipAction) GetCtx() ActionCtx {
	return a.Ctx
}
