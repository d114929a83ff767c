package battleview

import (
	"fmt"
	"math/rand/v2"
	"time"

	"battlemon/engine"
	"battlemon/global"
	"battlemon/rendering"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
)

const (
	_MESSAGE_TIME      = time.Second * 2
	_AUTO_MESSAGE_TIME = time.Millisecond * 600
)

// battle view state machine
const (
	SM_WAITING_FOR_ACTION = iota
	SM_SHOWING_MESSAGES
	SM_BATTLE_OVER
)

// battleContext carries what every battle UI panel needs.
type battleContext struct {
	battle *engine.Battle

	chosenAction engine.Action
	// Does the player need to switch out their dead pokemon?
	forcedSwitch bool
}

func (bc *battleContext) setChosenAction(act engine.Action) {
	if bc.chosenAction == nil {
		bc.chosenAction = act
	}
}

type MainBattleModel struct {
	ctx *battleContext

	// whether both sides are played by the auto-battle policy
	autoBattle bool
	backToMenu func() tea.Model

	messageQueue   []string
	currentMessage string
	currentSmState int

	panel tea.Model

	showError  bool
	currentErr error
}

// NewMainBattleModel puts the player in control of trainer one against the
// auto-battle policy. With autoBattle set the policy plays both sides.
func NewMainBattleModel(battle *engine.Battle, autoBattle bool, backToMenu func() tea.Model) MainBattleModel {
	ctx := &battleContext{
		battle: battle,
	}

	m := MainBattleModel{
		ctx:            ctx,
		autoBattle:     autoBattle,
		backToMenu:     backToMenu,
		panel:          newActionPanel(ctx),
		currentSmState: SM_SHOWING_MESSAGES,
	}

	// the lead pokemon messages are already waiting in the battle log
	m.messageQueue = battle.DrainLog()

	return m
}

type (
	nextNotifMsg    struct{}
	clearErrorMsg   struct{}
	autoBattleMsg   struct{}
	opponentMoveMsg struct{}
)

func (m MainBattleModel) messageDelay() time.Duration {
	if m.autoBattle {
		return _AUTO_MESSAGE_TIME
	}

	return _MESSAGE_TIME
}

func nextNotifTick(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return nextNotifMsg{}
	})
}

func (m MainBattleModel) Init() tea.Cmd {
	return nextNotifTick(m.messageDelay())
}

func (m MainBattleModel) View() string {
	if m.showError {
		errorStyle := lipgloss.NewStyle().Border(lipgloss.BlockBorder(), true)
		return rendering.GlobalCenter(errorStyle.Render(lipgloss.JoinVertical(lipgloss.Center, "Error", m.currentErr.Error())))
	}

	state := m.ctx.battle.State()

	panelView := ""
	if m.currentSmState == SM_WAITING_FOR_ACTION && !m.autoBattle {
		panelView = m.panel.View()
	}

	return rendering.GlobalCenter(
		lipgloss.JoinVertical(
			lipgloss.Center,

			fmt.Sprintf("Turn: %d", state.Turn),

			rendering.ButtonStyle.Width(40).Render(m.currentMessage),

			lipgloss.JoinHorizontal(
				lipgloss.Center,
				newTrainerPanel(state, state.TrainerOne.Name, &state.TrainerOne).View(),
				newTrainerPanel(state, state.TrainerTwo.Name, &state.TrainerTwo).View(),
			),

			panelView,
		),
	)
}

// nextMessage pops the front of the message queue. Returns false when the queue is empty.
func (m *MainBattleModel) nextMessage() bool {
	if len(m.messageQueue) != 0 {
		m.currentMessage = m.messageQueue[0]
		m.messageQueue = m.messageQueue[1:]

		log.Info().Msgf("Rendering next message: %s", m.currentMessage)

		return true
	}

	return false
}

func (m MainBattleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			if m.autoBattle || m.currentSmState == SM_BATTLE_OVER {
				return m.backToMenu(), nil
			}

			switch m.panel.(type) {
			case actionPanel:
			default:
				// back out of a sub panel, unless the switch is forced
				if !m.ctx.forcedSwitch {
					m.panel = newActionPanel(m.ctx)
				}
			}
		}
	case clearErrorMsg:
		m.showError = false
		m.currentErr = nil
	case nextNotifMsg:
		if m.nextMessage() {
			cmds = append(cmds, nextNotifTick(m.messageDelay()))
		} else {
			// out of messages, figure out what the battle wants next
			m.currentMessage = ""

			switch m.ctx.battle.Phase() {
			case engine.PhaseBattleOver:
				m.currentSmState = SM_BATTLE_OVER

				state := m.ctx.battle.State()
				winnerName := state.GetTrainer(m.ctx.battle.Winner()).Name

				if m.autoBattle {
					return newEndScreen(fmt.Sprintf("%s won!", winnerName), m.backToMenu), nil
				}

				if m.ctx.battle.Winner() == engine.TRAINER1 {
					return newEndScreen("You Won!", m.backToMenu), nil
				}

				return newEndScreen("You Lost :(", m.backToMenu), nil
			case engine.PhaseAwaitingSwitch:
				if m.ctx.battle.MustSwitchTrainer() == engine.TRAINER2 {
					// opponent switch is automatic
					cmds = append(cmds, func() tea.Msg {
						return opponentMoveMsg{}
					})
				} else {
					m.ctx.forcedSwitch = true
					state := m.ctx.battle.State()
					m.panel = newPokemonPanel(m.ctx, state.TrainerOne.Team)
					m.currentSmState = SM_WAITING_FOR_ACTION

					if m.autoBattle {
						cmds = append(cmds, func() tea.Msg {
							return autoBattleMsg{}
						})
					}
				}
			default:
				m.panel = newActionPanel(m.ctx)
				m.currentSmState = SM_WAITING_FOR_ACTION

				if m.autoBattle {
					cmds = append(cmds, func() tea.Msg {
						return autoBattleMsg{}
					})
				}
			}
		}
	case autoBattleMsg:
		state := m.ctx.battle.State()

		action, err := engine.BestAction(&state, engine.TRAINER1)
		if err != nil {
			log.Err(err).Msg("auto battle could not pick an action")
			cmds = append(cmds, m.showActionError(err))
		} else {
			m.ctx.setChosenAction(action)
		}
	case opponentMoveMsg:
		if err := m.submitOpponentAction(); err != nil {
			log.Err(err).Msg("opponent submitted a bad action")
		}

		cmds = append(cmds, m.drainAndShow())

		return m, tea.Batch(cmds...)
	}

	if m.currentSmState == SM_WAITING_FOR_ACTION && !m.autoBattle {
		var panelCmd tea.Cmd
		m.panel, panelCmd = m.panel.Update(msg)
		cmds = append(cmds, panelCmd)
	}

	// The player locked in an action: send it, then let the opponent answer
	if m.ctx.chosenAction != nil && m.currentSmState == SM_WAITING_FOR_ACTION {
		action := m.ctx.chosenAction
		m.ctx.chosenAction = nil

		if err := m.ctx.battle.SubmitAction(action); err != nil {
			log.Err(err).Msg("action rejected")
			cmds = append(cmds, m.showActionError(err))

			return m, tea.Batch(cmds...)
		}

		m.ctx.forcedSwitch = false

		if m.ctx.battle.Phase() == engine.PhaseAwaitingActions && m.ctx.battle.HasSubmitted(engine.TRAINER1) {
			cmds = append(cmds, func() tea.Msg {
				return opponentMoveMsg{}
			})
		} else {
			// force switch resolved on its own
			cmds = append(cmds, m.drainAndShow())
		}
	}

	return m, tea.Batch(cmds...)
}

// submitOpponentAction has the auto-battle policy act for trainer two.
func (m MainBattleModel) submitOpponentAction() error {
	state := m.ctx.battle.State()

	action, err := engine.BestAction(&state, engine.TRAINER2)
	if err != nil {
		return err
	}

	return m.ctx.battle.SubmitAction(action)
}

// drainAndShow moves the battle log into the message queue and kicks off the display loop.
func (m *MainBattleModel) drainAndShow() tea.Cmd {
	m.messageQueue = append(m.messageQueue, m.ctx.battle.DrainLog()...)
	m.currentSmState = SM_SHOWING_MESSAGES

	return func() tea.Msg {
		return nextNotifMsg{}
	}
}

func (m *MainBattleModel) showActionError(err error) tea.Cmd {
	m.showError = true
	m.currentErr = err

	return tea.Tick(time.Second*2, func(t time.Time) tea.Msg {
		return clearErrorMsg{}
	})
}

// NewSingleBattle builds a battle between the player's team and a random
// opposing team, seeded from the global battle RNG so a forced seed
// reproduces the same battle.
func NewSingleBattle(playerTeam []engine.Pokemon, opposingTeam []engine.Pokemon) *engine.Battle {
	state := engine.NewState(
		global.Opt.LocalPlayerName, playerTeam,
		"Opponent", opposingTeam,
		*rand.NewPCG(global.BattleRand.Uint64(), global.BattleRand.Uint64()),
	)

	return engine.NewBattle(state)
}
