package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/dukaforge/arcana/internal/query"
	"github.com/dukaforge/arcana/pkg/types"
)

var (
	historySpread string
	historySince  string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the current client's reading history",
	Long: `History lists the current client's readings, newest first. Filters
run against an in-memory query engine; the store file is read-only to
this command.

Example:
  arcana history
  arcana history --spread "Daily Guidance"
  arcana history --since 2026-01-01
  arcana history stats`,
	RunE: runHistory,
}

var historyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show card draw frequencies for the current client",
	RunE:  runHistoryStats,
}

func init() {
	historyCmd.Flags().StringVar(&historySpread, "spread", "", "filter by spread name")
	historyCmd.Flags().StringVar(&historySince, "since", "", "only readings on or after this date (YYYY-MM-DD)")
	historyCmd.AddCommand(historyStatsCmd)
}

// currentEngine opens the store and loads the current client's
// readings into a query engine. The caller must Close the engine.
func currentEngine() (*query.Engine, string, error) {
	s, err := openStore()
	if err != nil {
		return nil, "", err
	}
	c, ok := s.Current()
	if !ok {
		return nil, "", types.ErrNoCurrentClient
	}
	e, err := query.Load(c)
	if err != nil {
		return nil, "", fmt.Errorf("load history: %w", err)
	}
	return e, c.Name, nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	e, clientName, err := currentEngine()
	if err != nil {
		return err
	}
	defer e.Close()

	var readings []query.Summary
	switch {
	case historySpread != "":
		readings, err = e.BySpread(historySpread)
	case historySince != "":
		var from time.Time
		from, err = time.ParseInLocation("2006-01-02", historySince, time.Local)
		if err != nil {
			return fmt.Errorf("parse --since: %w", err)
		}
		readings, err = e.Since(from)
	default:
		readings, err = e.All()
	}
	if err != nil {
		return fmt.Errorf("query history: %w", err)
	}

	if flagJSON {
		return printJSON(readings)
	}

	if len(readings) == 0 {
		fmt.Printf("No readings yet for %s.\n", clientName)
		return nil
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tSPREAD\tCARDS\tNOTES")
	for _, r := range readings {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
			r.Date.Format("2006-01-02 15:04"), r.Spread, r.CardCount, r.Notes)
	}
	w.Flush()
	fmt.Print(sb.String())
	fmt.Printf("Total: %d reading(s) for %s\n", len(readings), clientName)
	return nil
}

func runHistoryStats(cmd *cobra.Command, args []string) error {
	e, clientName, err := currentEngine()
	if err != nil {
		return err
	}
	defer e.Close()

	counts, err := e.CardCounts()
	if err != nil {
		return fmt.Errorf("query card counts: %w", err)
	}

	if flagJSON {
		return printJSON(counts)
	}

	if len(counts) == 0 {
		fmt.Printf("No readings yet for %s.\n", clientName)
		return nil
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CARD\tTOTAL\tUPRIGHT\tREVERSED")
	for _, c := range counts {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", c.Card, c.Total(), c.Upright, c.Reversed)
	}
	w.Flush()
	fmt.Print(sb.String())
	return nil
}
