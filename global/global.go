package global

import (
	"battlemon/engine"
	"encoding/json"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/zerologr"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

type GlobalConfig struct {
	LocalPlayerName string
	Debug           bool
}

var (
	TERM_WIDTH, TERM_HEIGHT, _ = term.GetSize(int(os.Stdout.Fd()))

	SelectKey = key.NewBinding(
		key.WithKeys("enter"),
	)
	MoveLeftKey = key.NewBinding(
		key.WithKeys("left", "h"),
	)
	MoveRightKey = key.NewBinding(
		key.WithKeys("right", "l"),
	)
	MoveDownKey = key.NewBinding(
		key.WithKeys("down", "j"),
	)
	MoveUpKey = key.NewBinding(
		key.WithKeys("up", "k"),
	)

	DownTabKey = key.NewBinding(key.WithKeys(tea.KeyTab.String()))
	UpTabKey   = key.NewBinding(key.WithKeys(tea.KeyShiftTab.String()))

	BackKey = key.NewBinding(key.WithKeys(tea.KeyEsc.String()))

	Opt = GlobalConfig{
		LocalPlayerName: "Player",
	}

	// BattleRand seeds new battles. Forcing it to a fixed source replays
	// the same battles.
	BattleRand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

	initLogger zerolog.Logger
)

// GlobalInit reads (or creates) the config file, sets up logging, and loads
// the static battle data out of files.
func GlobalInit(files fs.FS, shouldLog bool) {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout}

	configDir := DefaultConfigDir()
	configFilepath := DefaultConfigLocation()

	// Basic logging for config debugging
	initLogger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	if err := os.MkdirAll(configDir, 0750); err != nil {
		initLogger.Err(err).Msg("error occured trying to create config dir")
	}

	// Read config file
	configContents, err := os.ReadFile(configFilepath)
	if err != nil {
		_, err := os.Create(configFilepath)
		if err != nil {
			initLogger.Err(err).Msg("error occurred while trying to create config file")
		}
	}

	// Non-empty config file
	if len(configContents) > 0 {
		newOpts := GlobalConfig{}
		if err := json.Unmarshal(configContents, &newOpts); err != nil {
			initLogger.Err(err).Msg("error occurred while trying to read config file")
		} else {
			Opt = populateConfig(newOpts)
		}
	} else {
		config := populateConfig(GlobalConfig{})
		configBytes, err := json.Marshal(config)
		if err != nil {
			initLogger.Err(err).Msg("error occurred while trying to marshal default config values")
		}

		if err := os.WriteFile(configFilepath, configBytes, 0666); err != nil {
			initLogger.Err(err).Msg("error occurred while trying to write default config values")
		}

		Opt = config
	}

	level := zerolog.InfoLevel
	if Opt.Debug {
		level = zerolog.DebugLevel
	}

	multiLogger := zerolog.New(zerolog.MultiLevelWriter(consoleWriter, createFileWriter(configDir))).With().Timestamp().Logger().Level(level)

	initLogger = multiLogger
	if !shouldLog {
		initLogger = zerolog.Nop()
	}

	// Main global logger
	log.Logger = createLogger(configDir, level)
	engine.SetInternalLogger(zerologr.New(&log.Logger))

	if errs := engine.DefaultLoader(files); len(errs) > 0 {
		for _, err := range errs {
			initLogger.Err(err).Msg("error occurred while loading battle data")
		}

		initLogger.Fatal().Msg("cannot start without battle data")
	}
}

func createFileWriter(configDir string) zerolog.ConsoleWriter {
	rollingWriter := NewRollingFileWriter(filepath.Join(configDir, "logs/"), "battlemon")
	return zerolog.ConsoleWriter{Out: rollingWriter, NoColor: true}
}

func createLogger(configDir string, level zerolog.Level) zerolog.Logger {
	return zerolog.New(createFileWriter(configDir)).With().Timestamp().Caller().Logger().Level(level)
}

// StopLogging silences the global logger, for while the TUI owns the terminal.
func StopLogging() {
	log.Logger = zerolog.Nop()
	engine.SetInternalLogger(zerologr.New(&log.Logger))
}

func UpdateLogLevel(level zerolog.Level) {
	log.Logger = log.Logger.Level(level)
}

func ForceRng(source rand.Source) {
	BattleRand = rand.New(source)
}

func SetNormalRng() {
	BattleRand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func populateConfig(config GlobalConfig) GlobalConfig {
	if config.LocalPlayerName == "" {
		config.LocalPlayerName = "Player"
	}

	return config
}
