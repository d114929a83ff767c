package battleview

import (
	"fmt"
	"math"

	"battlemon/engine"
	"battlemon/global"
	"battlemon/rendering"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const trainerPanelWidth = 20

var (
	panelStyle            = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Align(lipgloss.Center)
	highlightedPanelStyle = lipgloss.NewStyle().Border(lipgloss.DoubleBorder(), true).Align(lipgloss.Center).Foreground(rendering.HighlightedColor)

	displayCaser = cases.Title(language.English)
)

var statusColors map[int]lipgloss.Color = map[int]lipgloss.Color{
	engine.STATUS_BURN:   lipgloss.Color("#E36D1C"),
	engine.STATUS_PARA:   lipgloss.Color("#FFD400"),
	engine.STATUS_TOXIC:  lipgloss.Color("#A61AE5"),
	engine.STATUS_POISON: lipgloss.Color("#A61AE5"),
	engine.STATUS_FROZEN: lipgloss.Color("#31BBCE"),
	engine.STATUS_SLEEP:  lipgloss.Color("#BCE9EF"),
}

var statusTxt map[int]string = map[int]string{
	engine.STATUS_BURN:   "BRN",
	engine.STATUS_PARA:   "PAR",
	engine.STATUS_FROZEN: "FRZ",
	engine.STATUS_TOXIC:  "TOX",
	engine.STATUS_POISON: "PSN",
	engine.STATUS_SLEEP:  "SLP",
}

// displayName turns data names like "thunder-wave" into "Thunder Wave".
func displayName(name string) string {
	out := make([]byte, len(name))
	for i := 0; i < len(name); i++ {
		if name[i] == '-' {
			out[i] = ' '
		} else {
			out[i] = name[i]
		}
	}

	return displayCaser.String(string(out))
}

type trainerPanel struct {
	state engine.BattleState

	trainer   *engine.Trainer
	name      string
	healthBar progress.Model
}

func newTrainerPanel(state engine.BattleState, name string, trainer *engine.Trainer) trainerPanel {
	progressBar := progress.New(progress.WithDefaultGradient())
	progressBar.Width = trainerPanelWidth * .75

	return trainerPanel{
		state: state,

		trainer:   trainer,
		name:      name,
		healthBar: progressBar,
	}
}

func (m trainerPanel) Init() tea.Cmd { return nil }
func (m trainerPanel) View() string {
	currentPokemon := m.trainer.Team[m.trainer.ActivePokeIndex]
	statusText := ""
	if currentPokemon.Status != engine.STATUS_NONE {
		statusStyle := lipgloss.NewStyle().Background(statusColors[currentPokemon.Status])
		statusText = statusStyle.Render(statusTxt[currentPokemon.Status])
	}

	pokeInfo := fmt.Sprintf("%s %s\nLevel: %d",
		statusText,
		displayName(currentPokemon.Nickname),
		currentPokemon.Level,
	)

	healthPerc := float64(currentPokemon.Hp.Value) / float64(currentPokemon.MaxHp)

	pokeStyle := lipgloss.NewStyle().Align(lipgloss.Center).Border(lipgloss.NormalBorder(), true).Width(trainerPanelWidth).Height(5)
	pokeInfo = pokeStyle.Render(lipgloss.JoinVertical(lipgloss.Center, pokeInfo, m.healthBar.ViewAs(healthPerc)))

	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Center, m.name, pokeInfo))
}

func (m trainerPanel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	progressModel, _ := m.healthBar.Update(msg)
	m.healthBar = progressModel.(progress.Model)

	return m, nil
}

type actionPanel struct {
	ctx *battleContext

	actionFocus int
}

func newActionPanel(ctx *battleContext) actionPanel {
	return actionPanel{
		ctx: ctx,
	}
}

func (m actionPanel) Init() tea.Cmd { return nil }
func (m actionPanel) View() string {
	var fight string
	var pokemon string

	if m.actionFocus == 0 {
		fight = highlightedPanelStyle.Width(15).Render("Fight")
	} else {
		fight = panelStyle.Width(15).Render("Fight")
	}

	if m.actionFocus == 1 {
		pokemon = highlightedPanelStyle.Width(15).Render("Pokemon")
	} else {
		pokemon = panelStyle.Width(15).Render("Pokemon")
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, fight, pokemon)
}

func (m actionPanel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, global.SelectKey) {
			state := m.ctx.battle.State()

			switch m.actionFocus {
			case 0:
				return newMovePanel(m.ctx, *state.TrainerOne.GetActivePokemon()), nil
			case 1:
				return newPokemonPanel(m.ctx, state.TrainerOne.Team), nil
			}
		}

		if key.Matches(msg, global.MoveLeftKey) {
			m.actionFocus--

			if m.actionFocus < 0 {
				m.actionFocus = 1
			}
		}

		if key.Matches(msg, global.MoveRightKey) {
			m.actionFocus++

			if m.actionFocus > 1 {
				m.actionFocus = 0
			}
		}
	}

	return m, nil
}

type movePanel struct {
	ctx           *battleContext
	moveGridFocus int

	moves        [4]engine.Move
	battleMoves  [4]engine.BattleMove
	mustStruggle bool
}

func newMovePanel(ctx *battleContext, pokemon engine.Pokemon) movePanel {
	mustStruggle := true
	for i, battleMove := range pokemon.BattleMoves {
		if !pokemon.Moves[i].IsNil() && battleMove.PP > 0 {
			mustStruggle = false
			break
		}
	}

	return movePanel{
		ctx:          ctx,
		moves:        pokemon.Moves,
		battleMoves:  pokemon.BattleMoves,
		mustStruggle: mustStruggle,
	}
}

func (m movePanel) Init() tea.Cmd { return nil }
func (m movePanel) View() string {
	if m.mustStruggle {
		return highlightedPanelStyle.Width(30).Render("Struggle")
	}

	grid := make([]string, 0)

	// Move grid
	for i := 0; i < 2; i++ {
		row := make([]string, 0)
		for j := 0; j < 2; j++ {
			arrayIndex := (i * 2) + j
			style := panelStyle

			if arrayIndex == m.moveGridFocus {
				style = style.Background(rendering.HighlightedColor)
			}

			if m.moves[arrayIndex].IsNil() {
				row = append(row, style.Render("Empty"))
			} else {
				label := fmt.Sprintf("%s %d/%d", displayName(m.moves[arrayIndex].Name), m.battleMoves[arrayIndex].PP, m.moves[arrayIndex].PP)
				row = append(row, style.Render(label))
			}
		}

		grid = append(grid, lipgloss.JoinHorizontal(lipgloss.Center, row...))
	}

	return lipgloss.JoinVertical(lipgloss.Center, grid...)
}

func (m movePanel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, global.MoveLeftKey) {
			m.moveGridFocus = int(math.Max(0, float64(m.moveGridFocus-1)))
		}

		if key.Matches(msg, global.MoveRightKey) {
			m.moveGridFocus = int(math.Min(3, float64(m.moveGridFocus+1)))
		}

		if key.Matches(msg, global.MoveDownKey) {
			m.moveGridFocus = int(math.Min(3, float64(m.moveGridFocus+2)))
		}

		if key.Matches(msg, global.MoveUpKey) {
			m.moveGridFocus = int(math.Max(0, float64(m.moveGridFocus-2)))
		}

		if key.Matches(msg, global.SelectKey) {
			if m.mustStruggle {
				m.ctx.setChosenAction(engine.NewAttackAction(engine.TRAINER1, engine.STRUGGLE_MOVE_ID))
				return m, nil
			}

			move := m.moves[m.moveGridFocus]

			if !move.IsNil() && m.battleMoves[m.moveGridFocus].PP > 0 {
				attack := engine.NewAttackAction(engine.TRAINER1, m.moveGridFocus)
				m.ctx.setChosenAction(attack)
			}
		}
	}

	return m, nil
}

type pokemonPanel struct {
	ctx     *battleContext
	pokemon []engine.Pokemon

	selectedPokemon int
}

func newPokemonPanel(ctx *battleContext, pokemon []engine.Pokemon) pokemonPanel {
	panel := pokemonPanel{
		ctx:     ctx,
		pokemon: pokemon,
	}

	return panel
}

func (m pokemonPanel) Init() tea.Cmd { return nil }
func (m pokemonPanel) View() string {
	pokeStyle := lipgloss.NewStyle().Width(12).Border(lipgloss.NormalBorder(), true)
	faintedStyle := lipgloss.NewStyle().Width(12).Border(lipgloss.NormalBorder(), true).Faint(true)

	panels := make([]string, 0)
	for i, pokemon := range m.pokemon {
		name := displayName(pokemon.Nickname)

		switch {
		case i == m.selectedPokemon:
			panels = append(panels, highlightedPanelStyle.Width(12).Render(name))
		case !pokemon.Alive():
			panels = append(panels, faintedStyle.Render(name))
		default:
			panels = append(panels, pokeStyle.Render(name))
		}
	}

	forcedSwitch := ""
	if m.ctx.forcedSwitch {
		forcedSwitch = "Your Pokemon fainted, please select a new one to switch in"
	}

	return lipgloss.JoinVertical(lipgloss.Center, forcedSwitch, lipgloss.JoinHorizontal(lipgloss.Center, panels...))
}

func (m pokemonPanel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, global.MoveLeftKey) {
			m.selectedPokemon--
			if m.selectedPokemon < 0 {
				m.selectedPokemon = len(m.pokemon) - 1
			}
		}

		if key.Matches(msg, global.MoveRightKey) {
			m.selectedPokemon++

			if m.selectedPokemon >= len(m.pokemon) {
				m.selectedPokemon = 0
			}
		}

		if key.Matches(msg, global.SelectKey) {
			state := m.ctx.battle.State()
			currentValidPokemon := m.pokemon[m.selectedPokemon]

			// Only allow switches to alive, benched pokemon
			if currentValidPokemon.Alive() && m.selectedPokemon != state.TrainerOne.ActivePokeIndex {
				action := engine.NewSwitchAction(&state, engine.TRAINER1, m.selectedPokemon)

				m.ctx.setChosenAction(action)
			}
		}
	}

	return m, nil
}
