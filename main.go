package main

import (
	"embed"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"battlemon/global"
	"battlemon/views/mainmenu"
)

//go:embed data
var dataFiles embed.FS

type model struct {
	currentView tea.Model
}

func (m model) Init() tea.Cmd {
	return m.currentView.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	newView, cmd := m.currentView.Update(msg)

	m.currentView = newView

	// Disables the closing of the program when pressing ESC
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEscape {
			return m, cmd
		}
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	}

	return m, cmd
}

func (m model) View() string {
	return m.currentView.View()
}

func main() {
	seed := flag.Uint64("seed", 0, "fixed battle seed, for replaying a battle")
	flag.Parse()

	global.GlobalInit(dataFiles, true)

	if *seed != 0 {
		global.ForceRng(rand.NewPCG(*seed, *seed))
	} else {
		global.SetNormalRng()
	}

	m := model{
		currentView: mainmenu.NewModel(),
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		global.StopLogging()
		fmt.Fprintf(os.Stderr, "error running program: %s\n", err)
		os.Exit(1)
	}

	log.Info().Msg("shutting down")
}
