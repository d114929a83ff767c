package mainmenu

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"battlemon/engine"
	"battlemon/rendering"
	"battlemon/rendering/components"
	"battlemon/views/battleview"
)

type MainMenuModel struct {
	buttons components.MenuButtons
}

func NewModel() MainMenuModel {
	backToMenu := func() tea.Model { return NewModel() }

	buttons := []components.ViewButton{
		{
			Name: "Quick Battle",
			OnClick: func() (tea.Model, tea.Cmd) {
				battle := battleview.NewSingleBattle(engine.RandomTeam(), engine.RandomTeam())
				battleModel := battleview.NewMainBattleModel(battle, false, backToMenu)
				return battleModel, battleModel.Init()
			},
		},
		{
			Name: "Auto Battle",
			OnClick: func() (tea.Model, tea.Cmd) {
				battle := battleview.NewSingleBattle(engine.RandomTeam(), engine.RandomTeam())
				battleModel := battleview.NewMainBattleModel(battle, true, backToMenu)
				return battleModel, battleModel.Init()
			},
		},
		{
			Name: "Options",
			OnClick: func() (tea.Model, tea.Cmd) {
				backtrack := components.NewBreadcrumb()
				return newOptionsMenu(backtrack.PushNew(backToMenu)), nil
			},
		},
		{
			Name: "Quit",
			OnClick: func() (tea.Model, tea.Cmd) {
				return NewModel(), tea.Quit
			},
		},
	}

	return MainMenuModel{
		buttons: components.NewMenuButton(buttons),
	}
}

func (m MainMenuModel) Init() tea.Cmd {
	return nil
}

func (m MainMenuModel) View() string {
	header := "Battlemon!"
	return rendering.GlobalCenter(lipgloss.JoinVertical(lipgloss.Center, header, m.buttons.View()))
}

func (m MainMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, startCmd := m.buttons.Update(msg)
	if newModel != nil {
		return newModel, startCmd
	}

	return m, nil
}
