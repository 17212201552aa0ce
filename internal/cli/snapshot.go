package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"heroslider/internal/clock"
	"heroslider/internal/deck"
	"heroslider/internal/dom"
	"heroslider/internal/markup"
	"heroslider/internal/slider"
)

type snapshotOptions struct {
	index int
	cols  int
	rows  int
	title string
	out   string
}

func newSnapshotCmd(a *app) *cobra.Command {
	opts := snapshotOptions{}

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Write the slider as static HTML",
		Long:  `The snapshot command renders the slider at one slide and writes the resulting markup, with its state encoded in a data-state attribute.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.out == "" || opts.out == "-" {
				return a.snapshot(cmd.Context(), cmd.OutOrStdout(), opts)
			}
			f, err := os.Create(opts.out)
			if err != nil {
				return fmt.Errorf("error creating %s: %w", opts.out, err)
			}
			if err := a.snapshot(cmd.Context(), f, opts); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}

	cmd.Flags().IntVar(&opts.index, "goto", -1, "slide to show (default the configured initial slide)")
	cmd.Flags().IntVar(&opts.cols, "cols", defaultCols, "viewport width in cells")
	cmd.Flags().IntVar(&opts.rows, "rows", defaultRows, "viewport height in cells")
	cmd.Flags().StringVar(&opts.title, "title", "heroslider", "page title")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output file (default stdout)")
	return cmd
}

// snapshot attaches a slider with a clock that never advances, moves it to
// the requested slide and renders the tree
func (a *app) snapshot(ctx context.Context, w io.Writer, opts snapshotOptions) error {
	d := a.cfg.Deck()
	root := deck.Build(d, a.cfg.AutoPlay)
	deck.Layout(root, geometry(a.cfg, opts.cols, opts.rows))

	sopts, err := a.cfg.SliderOptions()
	if err != nil {
		return err
	}
	sopts.Clock = clock.NewManual()
	sopts.Bus = a.bus
	sopts.Logger = &a.logger

	s := slider.New(sopts)
	if err := s.Attach(ctx, root, dom.NewPage(root)); err != nil {
		return err
	}
	defer s.Detach()

	if opts.index >= 0 {
		if opts.index >= d.Len() {
			return fmt.Errorf("slide %d out of range for %d slides", opts.index, d.Len())
		}
		s.GoTo(opts.index)
	}

	snap := s.Snapshot()
	if err := markup.Stamp(root, markup.State{
		Index:    snap.Index,
		Count:    snap.Count,
		Paused:   snap.Paused,
		AutoPlay: snap.AutoPlay,
	}); err != nil {
		return err
	}

	return markup.Page(opts.title, markup.Node(root)).Render(ctx, w)
}
