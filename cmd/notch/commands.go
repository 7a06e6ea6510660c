package main

import (
	"fmt"
	"io"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"

	"github.com/example/notch/internal/dispatch"
	"github.com/example/notch/internal/menu"
)

func newCommandsCmd(state *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "commands [filter]",
		Short: "List command ids and the view signal each one emits",
		Long:  `List command ids and the view signal each one emits. An optional filter fuzzy-matches ids and signal names.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, table, err := state.buildMenu()
			if err != nil {
				return err
			}
			filter := ""
			if len(args) == 1 {
				filter = args[0]
			}
			printCommands(cmd.OutOrStdout(), tree, table, filter)
			return nil
		},
	}
}

func printCommands(w io.Writer, tree *menu.Tree, table dispatch.Table, filter string) {
	matched := 0
	for _, id := range tree.Commands() {
		signal := "(reserved)"
		if sig, ok := table.Lookup(id); ok {
			signal = sig.String()
		}
		if filter != "" && !fuzzy.MatchFold(filter, string(id)) && !fuzzy.MatchFold(filter, signal) {
			continue
		}
		if matched == 0 {
			fmt.Fprintf(w, "%-16s %-28s\n", "Command", "Signal")
		}
		matched++
		fmt.Fprintf(w, "%-16s %-28s\n", id, signal)
	}
	if matched == 0 {
		fmt.Fprintf(w, "No commands match %q\n", filter)
	}
}
