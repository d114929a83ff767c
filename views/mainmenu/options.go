package mainmenu

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"battlemon/global"
	"battlemon/rendering"
	"battlemon/rendering/components"
)

type optionsMenuModel struct {
	backtrack components.Breadcrumbs

	focus           components.Focus
	shouldShowError bool
	err             error
}

type clearErrorMessage struct {
	t time.Time
}

type playerNameInput struct {
	inner textinput.Model
}

func (p *playerNameInput) OnFocus(m tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	opM := m.(optionsMenuModel)
	fCmd := p.inner.Focus()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, global.SelectKey) {
			playerName := "Player"
			if p.inner.Value() != "" {
				playerName = p.inner.Value()
			}

			global.Opt.LocalPlayerName = playerName
			if err := global.SaveConfig(global.Opt); err != nil {
				opM.showError(err)
			}
		}
	}

	var uCmd tea.Cmd
	p.inner, uCmd = p.inner.Update(msg)

	return opM, tea.Batch(fCmd, uCmd)
}

func (p *playerNameInput) Blur() {
	p.inner.Blur()
}

func (p *playerNameInput) View() string {
	return lipgloss.JoinVertical(lipgloss.Center, "Player Name", p.inner.View())
}
func (p *playerNameInput) FocusedView() string { return p.View() }

type debugToggle struct {
	focused bool
}

func (d *debugToggle) OnFocus(m tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	opM := m.(optionsMenuModel)
	d.focused = true

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, global.SelectKey) {
			global.Opt.Debug = !global.Opt.Debug

			if global.Opt.Debug {
				global.UpdateLogLevel(zerolog.DebugLevel)
			} else {
				global.UpdateLogLevel(zerolog.InfoLevel)
			}

			if err := global.SaveConfig(global.Opt); err != nil {
				return opM, opM.showError(err)
			}
		}
	}

	return opM, nil
}

func (d *debugToggle) Blur() {
	d.focused = false
}

func (d *debugToggle) View() string {
	return fmt.Sprintf("Debug Logging: %t", global.Opt.Debug)
}

func (d *debugToggle) FocusedView() string {
	return rendering.HighlightedItemStyle.Render(d.View())
}

func newOptionsMenu(backtrack components.Breadcrumbs) optionsMenuModel {
	namePrompt := textinput.New()
	namePrompt.Focus()
	namePrompt.SetValue(global.Opt.LocalPlayerName)

	return optionsMenuModel{
		backtrack: backtrack,
		focus:     components.NewFocus(&playerNameInput{namePrompt}, &debugToggle{}),
	}
}

func (m optionsMenuModel) Init() tea.Cmd { return nil }
func (m optionsMenuModel) View() string {
	if m.shouldShowError {
		return rendering.GlobalCenter(lipgloss.JoinVertical(lipgloss.Center, "Error!", rendering.ButtonStyle.Render(m.err.Error())))
	} else {
		return rendering.GlobalCenter(lipgloss.JoinVertical(lipgloss.Center, m.focus.Views()...))
	}
}

func (m optionsMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0)

	switch msg := msg.(type) {
	case clearErrorMessage:
		m.shouldShowError = false
		m.err = nil
	case tea.KeyMsg:
		if m.shouldShowError {
			return m, nil
		}

		if key.Matches(msg, global.DownTabKey) {
			m.focus.Next()
		}

		if key.Matches(msg, global.UpTabKey) {
			m.focus.Prev()
		}

		if key.Matches(msg, global.BackKey) {
			return m.backtrack.PopDefault(func() tea.Model { return m }), nil
		}
	}

	newModel, focusCmd := m.focus.UpdateFocused(m, msg)
	m = newModel.(optionsMenuModel)
	cmds = append(cmds, focusCmd)

	return m, tea.Batch(cmds...)
}

func (m *optionsMenuModel) showError(err error) tea.Cmd {
	m.shouldShowError = true
	m.err = err

	log.Err(err).Msg("error in options")

	return tea.Tick(time.Second*2, func(t time.Time) tea.Msg {
		return clearErrorMessage{t}
	})
}
