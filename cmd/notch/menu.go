package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/notch/internal/menu"
)

func newMenuCmd(state *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Print the application menu",
		Long:  `Print the application menu in on-screen order with command ids and accelerators.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, _, err := state.buildMenu()
			if err != nil {
				return err
			}
			printMenu(cmd.OutOrStdout(), tree)
			return nil
		},
	}
}

func printMenu(w io.Writer, tree *menu.Tree) {
	fmt.Fprintf(w, "%-32s %-16s %-20s\n", "Label", "Command", "Accelerator")
	tree.Walk(func(path []string, n menu.Node) {
		indent := strings.Repeat("  ", len(path))
		switch n.Kind {
		case menu.KindSeparator:
			fmt.Fprintf(w, "%s---\n", indent)
		case menu.KindSubmenu:
			fmt.Fprintf(w, "%s%s\n", indent, n.Label)
		case menu.KindPredefined:
			label := truncate(indent+n.DisplayLabel(), 32)
			fmt.Fprintf(w, "%-32s %-16s\n", label, "("+string(n.Action)+")")
		case menu.KindLeaf:
			label := truncate(indent+n.Label, 32)
			accel := n.Accelerator.Canonical()
			if !n.Enabled() {
				accel = strings.TrimSpace(accel + " [disabled]")
			}
			fmt.Fprintf(w, "%-32s %-16s %-20s\n", label, n.Command, accel)
		}
	})
}

func truncate(value string, max int) string {
	if len(value) <= max {
		return value
	}
	if max <= 3 {
		return value[:max]
	}
	return value[:max-3] + "..."
}
