package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dukaforge/arcana/pkg/types"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Manage the current client's journal",
}

var journalAddCmd = &cobra.Command{
	Use:   "add <text>...",
	Short: "Record a journal entry for the current client",
	Long: `Add appends a free-text entry to the current client's journal,
newest first. Multiple arguments are joined with spaces.

Example:
  arcana journal add "Strong resonance with the three of cups today."`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		if err := s.AppendJournalEntry(strings.Join(args, " ")); err != nil {
			return err
		}
		if flagJSON {
			return printJSON(map[string]string{"client": s.CurrentName()})
		}
		fmt.Printf("Journal entry saved for %s.\n", s.CurrentName())
		return nil
	},
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the current client's journal entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		c, ok := s.Current()
		if !ok {
			return types.ErrNoCurrentClient
		}

		if flagJSON {
			return printJSON(c.Journal)
		}

		if len(c.Journal) == 0 {
			fmt.Printf("No journal entries yet for %s.\n", c.Name)
			return nil
		}
		for _, e := range c.Journal {
			fmt.Printf("%s  %s\n", e.Date.Format("2006-01-02 15:04"), e.Text)
		}
		fmt.Printf("Total: %d entr(ies) for %s\n", len(c.Journal), c.Name)
		return nil
	},
}

func init() {
	journalCmd.AddCommand(journalAddCmd)
	journalCmd.AddCommand(journalListCmd)
}
