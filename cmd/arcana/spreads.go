package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dukaforge/arcana/internal/deck"
)

var spreadsCmd = &cobra.Command{
	Use:   "spreads",
	Short: "List the available spreads",
	RunE: func(cmd *cobra.Command, args []string) error {
		all := deck.Spreads()

		if flagJSON {
			return printJSON(all)
		}

		var sb strings.Builder
		w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tCARDS\tDESCRIPTION")
		for _, s := range all {
			fmt.Fprintf(w, "%s\t%d\t%s\n", s.Name, s.CardCount, s.Description)
		}
		w.Flush()
		fmt.Print(sb.String())
		return nil
	},
}
