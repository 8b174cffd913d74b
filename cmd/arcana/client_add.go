package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	clientAddName string
	clientAddDesc string
	clientAddStay bool
)

var clientAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new client profile",
	Long: `Add creates a new client profile. Names must be unique, compared
case-insensitively after trimming. The new client becomes current
unless --stay is given.

Example:
  arcana client add --name "Sarah Johnson"
  arcana client add --name "Sarah Johnson" --description "Weekly consultation" --stay`,
	RunE: runClientAdd,
}

func init() {
	clientAddCmd.Flags().StringVar(&clientAddName, "name", "", "client name (required)")
	clientAddCmd.Flags().StringVar(&clientAddDesc, "description", "", "free-text description")
	clientAddCmd.Flags().BoolVar(&clientAddStay, "stay", false, "do not switch to the new client")
	_ = clientAddCmd.MarkFlagRequired("name")
}

func runClientAdd(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	id, err := s.AddClient(clientAddName, clientAddDesc)
	if err != nil {
		return err
	}
	if !clientAddStay {
		if err := s.SwitchCurrent(id); err != nil {
			return err
		}
	}

	if flagJSON {
		return printJSON(map[string]string{"id": id, "current": s.CurrentName()})
	}
	fmt.Printf("Created client: %s\n", id)
	return nil
}
