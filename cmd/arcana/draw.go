package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/arcana/internal/deck"
	"github.com/dukaforge/arcana/pkg/types"
)

var (
	drawNotes string
	drawForce bool
)

var drawCmd = &cobra.Command{
	Use:   "draw <spread>",
	Short: "Perform a reading for the current client",
	Long: `Draw samples distinct cards for the named spread, assigns each an
orientation, prints the reveal, and appends the completed reading to
the current client's history.

The Daily Guidance spread is limited to one reading per calendar day;
use --force to draw again anyway.

Example:
  arcana draw "Past-Present-Future"
  arcana draw "Celtic Cross" --notes "quarterly check-in"
  arcana draw "Daily Guidance" --seed 7 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runDraw,
}

func init() {
	// daily is shorthand for draw, so both take the same flags.
	for _, cmd := range []*cobra.Command{drawCmd, dailyCmd} {
		cmd.Flags().StringVar(&drawNotes, "notes", "", "notes saved with the reading")
		cmd.Flags().BoolVar(&drawForce, "force", false, "ignore the once-per-day gate")
	}
}

func runDraw(cmd *cobra.Command, args []string) error {
	spread, err := deck.Spread(args[0])
	if err != nil {
		return fmt.Errorf("%q: %w", args[0], err)
	}

	s, err := openStore()
	if err != nil {
		return err
	}

	if spread.Name == deck.DailyGuidance && !drawForce && s.HasCompletedToday(spread.Name) {
		fmt.Printf("%s already drawn today for %s. Use --force to draw again.\n",
			spread.Name, s.CurrentName())
		return nil
	}

	cards, orientations, err := deck.Draw(spread, newRNG())
	if err != nil {
		return err
	}

	if err := s.AppendReading(spread.Name, cards, orientations, drawNotes); err != nil {
		return err
	}

	if flagJSON {
		type drawn struct {
			Position    string            `json:"position"`
			Card        string            `json:"card"`
			Orientation types.Orientation `json:"orientation"`
			Meaning     string            `json:"meaning"`
		}
		out := struct {
			Client string  `json:"client"`
			Spread string  `json:"spread"`
			Cards  []drawn `json:"cards"`
		}{Client: s.CurrentName(), Spread: spread.Name}
		for i, card := range cards {
			position := fmt.Sprintf("Card %d", i+1)
			if i < len(spread.Positions) {
				position = spread.Positions[i]
			}
			out.Cards = append(out.Cards, drawn{
				Position:    position,
				Card:        card,
				Orientation: orientations[i],
				Meaning:     deck.Meaning(card, orientations[i]),
			})
		}
		return printJSON(out)
	}

	fmt.Printf("Reading for: %s\n", s.CurrentName())
	renderReading(spread, cards, orientations)
	fmt.Println("Reading saved.")
	return nil
}

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Draw the Daily Guidance card",
	Long:  `Daily is shorthand for 'arcana draw "Daily Guidance"'.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDraw(cmd, []string{deck.DailyGuidance})
	},
}
