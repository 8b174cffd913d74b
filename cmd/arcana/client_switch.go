package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clientSwitchCmd = &cobra.Command{
	Use:   "switch <client-id>",
	Short: "Make a client current",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		if err := s.SwitchCurrent(args[0]); err != nil {
			return err
		}
		if flagJSON {
			return printJSON(map[string]string{"current": s.CurrentName()})
		}
		fmt.Printf("Current client: %s\n", s.CurrentName())
		return nil
	},
}
