package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/arcana/internal/deck"
	"github.com/dukaforge/arcana/pkg/types"
)

var meaningReversed bool

var meaningCmd = &cobra.Command{
	Use:   "meaning <card>",
	Short: "Look up the meaning of a card",
	Long: `Meaning prints interpretation text for a card. Curated text is used
when available; otherwise a prompt is synthesized from the card's suit
theme. Unrecognized labels still get a contemplative prompt.

Example:
  arcana meaning "The Fool"
  arcana meaning "Ace of Wands" --reversed`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		orientation := types.Upright
		if meaningReversed {
			orientation = types.Reversed
		}
		text := deck.Meaning(args[0], orientation)

		if flagJSON {
			return printJSON(map[string]string{
				"card":        args[0],
				"orientation": string(orientation),
				"meaning":     text,
			})
		}
		fmt.Println(renderCard("Meaning", args[0], orientation))
		return nil
	},
}

func init() {
	meaningCmd.Flags().BoolVar(&meaningReversed, "reversed", false, "show the reversed meaning")
}
