package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the client store",
	Long: `Init creates the data directory and the client store file. A fresh
store starts with one default client named "Personal", which becomes
the current client.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(map[string]any{
				"clients": s.Len(),
				"current": s.CurrentName(),
			})
		}
		fmt.Printf("Store initialized: %d client(s), current: %s\n", s.Len(), s.CurrentName())
		return nil
	},
}
