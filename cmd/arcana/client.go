package main

import "github.com/spf13/cobra"

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Manage client profiles",
	Long: `Client manages the named profiles readings and journal entries are
recorded under. Exactly one client is current at a time; readings and
journal entries always attach to the current client.`,
}

func init() {
	clientCmd.AddCommand(clientAddCmd)
	clientCmd.AddCommand(clientListCmd)
	clientCmd.AddCommand(clientSwitchCmd)
	clientCmd.AddCommand(clientDeleteCmd)
}
