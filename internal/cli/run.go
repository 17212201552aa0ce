package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"heroslider/internal/eventbus"
	"heroslider/internal/ui"
)

// uiEvents are the bus events forwarded to the terminal UI
var uiEvents = []eventbus.EventType{
	eventbus.EventSlideChanged,
	eventbus.EventAutoplayPaused,
	eventbus.EventAutoplayResumed,
	eventbus.EventSliderAttached,
	eventbus.EventError,
	eventbus.EventConfigSaved,
}

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Show the slider in the terminal",
		Long:  `The run command shows the configured slides full screen. It is also what heroslider does with no subcommand.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI(cmd)
		},
	}
}

func (a *app) runTUI(cmd *cobra.Command) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	uiModel, err := ui.NewModel(a.bus, a.cfg)
	if err != nil {
		return fmt.Errorf("error creating UI: %w", err)
	}

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithReportFocus(), tea.WithContext(ctx)}
	if a.cfg.UISettings.Mouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}
	p := tea.NewProgram(uiModel, opts...)
	uiModel.SetProgram(p)

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	for _, t := range uiEvents {
		unsub := a.bus.Subscribe(t, func(e eventbus.DomainEvent) {
			select {
			case eventChan <- e:
			default:
				// Channel full, drop event
				a.logger.Warn().Str("event", string(e.Type())).Msg("event channel full, dropping event")
			}
		})
		defer unsub()
	}

	// Start forwarding events to UI in background
	go func() {
		for {
			select {
			case e := <-eventChan:
				p.Send(ui.EventMsg{Event: e})
			case <-ctx.Done():
				return
			}
		}
	}()

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("error running program: %w", err)
	}
	uiModel.Slider().Detach()
	return nil
}
