package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"heroslider/internal/config"
)

func newInitCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		Long:  `The init command writes the default configuration, including a sample deck, to the config path.`,
		Args:  cobra.NoArgs,
		// The existing file may be the reason init is being run, so it is
		// not loaded
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.svc = a.service()
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.svc.Path()
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("error checking %s: %w", path, err)
			}

			if err := a.svc.Save(config.DefaultConfig()); err != nil {
				return fmt.Errorf("error writing config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}
