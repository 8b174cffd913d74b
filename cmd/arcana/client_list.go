package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dukaforge/arcana/pkg/types"
)

var clientListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all client profiles",
	RunE:  runClientList,
}

func runClientList(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}

	clients := s.Clients()
	current, _ := s.Current()

	if flagJSON {
		type row struct {
			ID       string `json:"id"`
			Name     string `json:"name"`
			Readings int    `json:"readings"`
			Journal  int    `json:"journal"`
			Current  bool   `json:"current"`
		}
		rows := make([]row, len(clients))
		for i, c := range clients {
			rows[i] = row{
				ID:       c.ID,
				Name:     c.Name,
				Readings: len(c.Readings),
				Journal:  len(c.Journal),
				Current:  current != nil && c.ID == current.ID,
			}
		}
		return printJSON(rows)
	}

	printClientTable(clients, current)
	return nil
}

// printClientTable prints clients in a human-readable table.
func printClientTable(clients []*types.Client, current *types.Client) {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, " \tID\tNAME\tREADINGS\tJOURNAL\tCREATED")
	for _, c := range clients {
		marker := " "
		if current != nil && c.ID == current.ID {
			marker = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\n",
			marker,
			c.ID,
			c.Name,
			len(c.Readings),
			len(c.Journal),
			c.CreatedAt.Format("2006-01-02"),
		)
	}
	w.Flush()

	for _, line := range strings.Split(sb.String(), "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}
	fmt.Printf("Total: %d client(s)\n", len(clients))
}
