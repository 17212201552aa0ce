// Package cli wires configuration, logging and the event bus into the
// heroslider commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"heroslider/internal/config"
	"heroslider/internal/discovery"
	"heroslider/internal/eventbus"
	"heroslider/internal/logging"
)

// app is the state shared by every command once the root has loaded
// configuration
type app struct {
	configPath string
	deckDir    string
	logFile    string
	logLevel   string

	svc    config.ConfigService
	cfg    *config.Config
	bus    eventbus.EventBus
	logger zerolog.Logger
	closer io.Closer
	unsub  []func()
}

// NewRootCommand builds the command tree. With no subcommand the terminal
// slider runs.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "heroslider",
		Short:         "A hero slider for the terminal",
		Long:          `heroslider shows a deck of slides that autoplay, respond to the keyboard, and can be dragged with the mouse.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.teardown()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/heroslider/config.toml)")
	flags.StringVar(&a.deckDir, "deck", "", "directory of .md/.txt slide files, replaces the configured slides")
	flags.StringVar(&a.logFile, "log-file", "", "log file, overrides [log] file")
	flags.StringVar(&a.logLevel, "log-level", "", "log level, overrides [log] level")

	rootCmd.AddCommand(
		newRunCmd(a),
		newPlayCmd(a),
		newSnapshotCmd(a),
		newInitCmd(a),
	)
	return rootCmd
}

// Execute runs the root command until it finishes or the process is
// interrupted
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := NewRootCommand()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		return err
	}
	return nil
}

func (a *app) service() config.ConfigService {
	if a.configPath != "" {
		return config.NewConfigServiceAt(a.configPath)
	}
	return config.NewConfigService()
}

// setup loads configuration, then opens the log file it names
func (a *app) setup(cmd *cobra.Command) error {
	a.bus = eventbus.New()
	a.svc = config.WithBus(a.service(), a.bus)

	cfg, err := a.svc.Load()
	if err != nil {
		a.bus.Close()
		return fmt.Errorf("error loading config: %w", err)
	}
	a.cfg = cfg

	file, level := cfg.Log.File, cfg.Log.Level
	if cmd.Flags().Changed("log-file") {
		file = a.logFile
	}
	if cmd.Flags().Changed("log-level") {
		level = a.logLevel
	}
	logger, closer, err := logging.Setup(file, level)
	if err != nil {
		a.bus.Close()
		return err
	}
	a.logger = logger
	a.closer = closer
	a.unsub = subscribeLogger(a.bus, logger)

	if a.deckDir != "" {
		slides, err := discovery.New(a.bus).Scan(cmd.Context(), a.deckDir)
		if err != nil {
			a.teardown()
			return fmt.Errorf("error loading deck: %w", err)
		}
		cfg.Slides = slides
	}

	a.logger.Info().
		Str("command", cmd.Name()).
		Str("config", a.svc.Path()).
		Int("slides", len(cfg.Slides)).
		Msg("starting")
	return nil
}

// teardown drains the bus before the log file closes
func (a *app) teardown() error {
	if a.bus != nil {
		a.bus.Close()
	}
	for _, unsub := range a.unsub {
		unsub()
	}
	a.unsub = nil
	if a.closer != nil {
		return a.closer.Close()
	}
	return nil
}

// loggedEvents are the bus events written to the log
var loggedEvents = []eventbus.EventType{
	eventbus.EventSlideChanged,
	eventbus.EventAutoplayPaused,
	eventbus.EventAutoplayResumed,
	eventbus.EventSliderAttached,
	eventbus.EventSliderDetached,
	eventbus.EventError,
	eventbus.EventConfigLoaded,
	eventbus.EventConfigSaved,
	eventbus.EventDeckScanned,
}

// subscribeLogger logs every bus event at debug level, and errors at error
// level
func subscribeLogger(bus eventbus.EventBus, logger zerolog.Logger) []func() {
	unsubs := make([]func(), 0, len(loggedEvents))
	for _, t := range loggedEvents {
		unsubs = append(unsubs, bus.Subscribe(t, func(e eventbus.DomainEvent) {
			if ev, ok := e.(eventbus.ErrorEvent); ok {
				logger.Error().Err(ev.Err).Msg(ev.Message)
				return
			}
			logger.Debug().Str("event", string(e.Type())).Interface("payload", e).Msg("bus")
		}))
	}
	return unsubs
}
