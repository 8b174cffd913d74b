package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clientDeleteCmd = &cobra.Command{
	Use:   "delete <client-id>",
	Short: "Delete a client and all of their history",
	Long: `Delete permanently removes a client with every reading and journal
entry recorded under them. The last remaining client cannot be
deleted. If the deleted client was current, the first remaining client
becomes current.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		if err := s.DeleteClient(args[0]); err != nil {
			return err
		}
		if flagJSON {
			return printJSON(map[string]any{"deleted": args[0], "current": s.CurrentName()})
		}
		fmt.Printf("Deleted client: %s (current: %s)\n", args[0], s.CurrentName())
		return nil
	},
}
