package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/utomato/internal/clock"
	"github.com/ja-he/utomato/internal/config"
	"github.com/ja-he/utomato/internal/potatolog"
	"github.com/ja-he/utomato/internal/session"
	"github.com/ja-he/utomato/internal/styling"
	"github.com/ja-he/utomato/internal/tui"
)

// TUICommand holds the flags for the `tui` command line command, for
// `go-flags` to parse command line args into.
type TUICommand struct {
	Theme         string `short:"t" long:"theme" choice:"light" choice:"dark" description:"Select a 'dark' or a 'light' default theme (note: only sets defaults, which are individually overridden by settings in config.yaml"`
	LogOutputFile string `short:"l" long:"log-output-file" description:"specify a log output file (otherwise logs dropped)"`
	LogPretty     bool   `short:"p" long:"log-pretty" description:"prettify logs to file"`

	OutputDir string        `short:"o" long:"output-dir" description:"directory the task list is written to (default: working directory)" value-name:"<dir>"`
	Work      time.Duration `short:"w" long:"work" description:"length of a work interval (e.g. 25m)" value-name:"<duration>"`
	Break     time.Duration `short:"b" long:"break" description:"length of a break (e.g. 5m)" value-name:"<duration>"`
	Capture   string        `short:"c" long:"capture" choice:"work" choice:"break" choice:"both" description:"which intervals to ask a description for"`
}

// Execute executes the tui command.
// (This gets called by `go-flags` when `tui` is provided on the command line)
func (command *TUICommand) Execute(args []string) error {
	// set up stderr logger until TUI set up
	stderrLogger := log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// create TUI logger
	memoryLog := potatolog.NewMemoryLogReaderWriter(256)
	var logWriter io.Writer
	if command.LogOutputFile != "" {
		var fileLogger io.Writer
		file, err := os.OpenFile(command.LogOutputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("could not open file '%s' for logging (%w)", command.LogOutputFile, err)
		}
		defer file.Close()
		if command.LogPretty {
			fileLogger = zerolog.ConsoleWriter{Out: file, NoColor: true}
		} else {
			fileLogger = file
		}
		logWriter = zerolog.MultiLevelWriter(fileLogger, memoryLog)
	} else {
		logWriter = memoryLog
	}
	tuiLogger := zerolog.New(logWriter).With().Timestamp().Caller().Logger()

	// temporarily log to both (in case the TUI doesn't get set we want the info
	// on the stderr logger, otherwise the TUI logger is relevant)
	log.Logger = log.Output(zerolog.MultiLevelWriter(stderrLogger, tuiLogger))

	configData, err := command.readConfig()
	if err != nil {
		return err
	}

	stylesheet, err := styling.NewStylesheetFromConfig(configData.Stylesheet)
	if err != nil {
		return fmt.Errorf("invalid stylesheet (%w)", err)
	}
	captureMode, err := session.ParseCaptureMode(configData.Capture)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	screen, err := tui.NewTUIScreenHandler()
	if err != nil {
		return err
	}

	app, err := NewApp(
		ctx,
		screen,
		clock.System{},
		AppOptions{
			Session: session.Options{
				Intervals: session.Intervals{
					Work:  configData.WorkDuration.Duration,
					Break: configData.BreakDuration.Duration,
				},
				Capture:     captureMode,
				AutoAdvance: configData.AutoAdvance == nil || *configData.AutoAdvance,
			},
			PollInterval: configData.PollInterval.Duration,
			OutputDir:    configData.OutputDir,
			Bindings:     bindingsFromConfig(configData.Keys),
			Stylesheet:   *stylesheet,
			Logs:         memoryLog,
			ErrOut:       os.Stderr,
		},
		tuiLogger,
	)
	if err != nil {
		screen.Fini()
		return err
	}

	// now that the screen is initialized, we'll always want the TUI logger, so
	// we're making it the global logger
	log.Logger = tuiLogger

	return app.Run()
}

// readConfig reads the config file from the base directory, falling back to
// the defaults if there is none, and applies the command line overrides.
func (command *TUICommand) readConfig() (config.Config, error) {
	var theme config.ColorschemeType
	switch command.Theme {
	case "light":
		theme = config.Light
	default:
		theme = config.Dark
	}

	configPath := filepath.Join(baseDirPath(), "config.yaml")
	yamlData, err := os.ReadFile(configPath)
	if err != nil {
		log.Warn().Err(err).Str("file", configPath).Msg("can't read config file, using defaults")
		yamlData = make([]byte, 0)
	}
	configData, err := config.ParseConfigAugmentDefaults(theme, yamlData)
	if err != nil {
		return configData, fmt.Errorf("can't parse config data (%w)", err)
	}

	return command.applyOverrides(configData)
}

// applyOverrides overwrites config values with those given on the command
// line and validates the result.
func (command *TUICommand) applyOverrides(c config.Config) (config.Config, error) {
	if command.OutputDir != "" {
		c.OutputDir = command.OutputDir
	}
	if command.Work != 0 {
		c.WorkDuration = config.Duration{Duration: command.Work}
	}
	if command.Break != 0 {
		c.BreakDuration = config.Duration{Duration: command.Break}
	}
	if command.Capture != "" {
		c.Capture = command.Capture
	}
	err := c.Validate()
	if err != nil {
		return c, fmt.Errorf("invalid settings (%w)", err)
	}
	return c, nil
}
