package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/notch/internal/dispatch"
	"github.com/example/notch/internal/menu"
	"github.com/example/notch/internal/view"
)

func newDispatchCmd(state *appState) *cobra.Command {
	var noView bool

	cmd := &cobra.Command{
		Use:   "dispatch <command-id>...",
		Short: "Activate commands against a headless view",
		Long: `Activate each command id in order as if chosen from the menu. Scripts the view
would evaluate are printed to stdout; commands that emit nothing are reported on stderr.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, table, err := state.buildMenu()
			if err != nil {
				return err
			}

			d := dispatch.New(tree, table)
			if !noView {
				d.SetActive(view.NewScript("stdout", state.cfg.Namespace, view.NewWriter(cmd.OutOrStdout())))
			}
			for _, arg := range args {
				outcome := d.Activate(menu.CommandID(arg))
				if outcome != dispatch.Delivered {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", arg, outcome)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&noView, "no-view", false, "dispatch with no active view")
	return cmd
}
