package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"heroslider/internal/config"
	"heroslider/internal/deck"
	"heroslider/internal/dom"
	"heroslider/internal/eventbus"
	"heroslider/internal/loop"
	"heroslider/internal/slider"
)

const (
	defaultCols = 80
	defaultRows = 12
)

func newPlayCmd(a *app) *cobra.Command {
	var (
		duration time.Duration
		changes  int
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Autoplay the slides without a UI, printing each change",
		Long:  `The play command runs the slider in real time with no terminal UI and prints a line for every slide change.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if duration > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, duration)
				defer cancel()
			}
			return a.play(ctx, cmd.OutOrStdout(), changes)
		},
	}

	cmd.Flags().DurationVar(&duration, "duration", 0, "stop after this long (0 runs until interrupted)")
	cmd.Flags().IntVar(&changes, "changes", 0, "stop after this many slide changes (0 for no limit)")
	return cmd
}

// play drives a slider from a real-time loop until ctx is done or the
// requested number of changes has been printed
func (a *app) play(ctx context.Context, out io.Writer, changes int) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	d := a.cfg.Deck()
	root := deck.Build(d, a.cfg.AutoPlay)
	geo := geometry(a.cfg, terminalCols(out), defaultRows)
	deck.Layout(root, geo)
	page := dom.NewPage(root)

	opts, err := a.cfg.SliderOptions()
	if err != nil {
		return err
	}

	l := loop.New(16)
	opts.Clock = l.Clock()
	opts.Bus = a.bus
	opts.Logger = &a.logger
	s := slider.New(opts)

	var mu sync.Mutex
	seen := 0
	unsub := a.bus.Subscribe(eventbus.EventSlideChanged, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.SlideChangedEvent)
		slide, _ := d.At(ev.To)

		mu.Lock()
		defer mu.Unlock()
		seen++
		fmt.Fprintf(out, "%d/%d  %-20s %s  (%s)\n", ev.To+1, ev.Count, slide.Title, slider.TranslateX(-float64(ev.To)*geo.Width), ev.Cause)
		if changes > 0 && seen >= changes {
			cancel()
		}
	})
	defer unsub()

	runErr := make(chan error, 1)
	go func() { runErr <- l.Run(ctx) }()

	var (
		attachErr error
		snap      slider.Snapshot
	)
	if err := l.Do(ctx, func() {
		attachErr = s.Attach(ctx, root, page)
		snap = s.Snapshot()
	}); err != nil {
		return err
	}
	if attachErr != nil {
		return attachErr
	}

	mu.Lock()
	switch {
	case snap.Count == 0:
		fmt.Fprintln(out, "no slides configured")
		cancel()
	case !snap.AutoPlay:
		fmt.Fprintln(out, "autoplay is off")
		cancel()
	default:
		fmt.Fprintf(out, "playing %d slides every %s\n", snap.Count, opts.Interval)
	}
	mu.Unlock()

	<-runErr
	// The loop has stopped, so the slider is only touched from here on
	s.Detach()
	return nil
}

// geometry sizes the slider for a terminal of cols by rows cells
func geometry(cfg *config.Config, cols, rows int) deck.Geometry {
	cell := float64(cfg.UISettings.CellWidthPx)
	row := float64(cfg.UISettings.CellHeightPx)
	return deck.Geometry{
		Width:  float64(cols) * cell,
		Height: float64(rows) * row,
		Cell:   cell,
		Row:    row,
	}
}

// terminalCols returns the width of w when it is a terminal
func terminalCols(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultCols
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil || cols <= 0 {
		return defaultCols
	}
	return cols
}
