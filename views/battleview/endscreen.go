package battleview

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"battlemon/rendering"
)

type endModel struct {
	message    string
	backToMenu func() tea.Model
}

func newEndScreen(message string, backToMenu func() tea.Model) endModel {
	return endModel{
		message:    message,
		backToMenu: backToMenu,
	}
}

func (m endModel) Init() tea.Cmd { return nil }
func (m endModel) View() string {
	return rendering.GlobalCenter(lipgloss.JoinVertical(lipgloss.Center, "Game Over", m.message, "Press any key to continue"))
}

func (m endModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case tea.KeyMsg:
		return m.backToMenu(), nil
	}

	return m, nil
}
