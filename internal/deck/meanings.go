package deck

import (
	"fmt"
	"strings"

	"github.com/dukaforge/arcana/pkg/types"
)

// cardMeaning holds the curated text for one card.
type cardMeaning struct {
	upright  string
	reversed string
}

// meanings is the curated meaning table. Cards absent from the table
// fall back to a synthesized prompt; Meaning never returns empty text.
var meanings = map[string]cardMeaning{
	"The Fool": {
		upright:  "New beginnings, innocence, spontaneity, free spirit",
		reversed: "Recklessness, taken advantage of, inconsideration",
	},
	"The Magician": {
		upright:  "Manifestation, resourcefulness, power, inspired action",
		reversed: "Manipulation, poor planning, untapped talents",
	},
	"The High Priestess": {
		upright:  "Intuition, sacred knowledge, the subconscious mind",
		reversed: "Secrets withheld, disconnection from intuition",
	},
	"Death": {
		upright:  "Endings, transformation, transition, new beginnings",
		reversed: "Resistance to change, personal transformation, inner purging",
	},
	"The Star": {
		upright:  "Hope, faith, purpose, renewal, spirituality",
		reversed: "Lack of faith, despair, self-trust, disconnection",
	},
	"The Tower": {
		upright:  "Sudden change, upheaval, revelation, awakening",
		reversed: "Disaster avoided, fear of change, delayed upheaval",
	},
	"The Sun": {
		upright:  "Positivity, warmth, success, vitality",
		reversed: "Inner child, feeling down, overly optimistic",
	},
}

// suitThemes drives the fallback text for suited cards.
var suitThemes = map[string]string{
	"Wands":     "creativity, will, and ambition",
	"Cups":      "emotion, relationships, and intuition",
	"Swords":    "intellect, conflict, and clarity",
	"Pentacles": "work, material matters, and the body",
}

// Meaning returns interpretation text for a card and orientation.
// Curated text wins when present; otherwise the text is synthesized
// from the card's suit theme, or a generic contemplative prompt for
// Major Arcana and unrecognized labels. It never fails and never
// returns an empty string.
func Meaning(card string, orientation types.Orientation) string {
	if m, ok := meanings[card]; ok {
		if orientation == types.Reversed {
			return m.reversed
		}
		return m.upright
	}

	if suit := suitOf(card); suit != "" {
		theme := suitThemes[suit]
		if orientation == types.Reversed {
			return fmt.Sprintf("Blocked or inverted energy around %s. Consider where %s asks you to release control.", theme, card)
		}
		return fmt.Sprintf("Themes of %s. Reflect on how %s speaks to your situation.", theme, card)
	}

	return fmt.Sprintf("Meditate on the symbolism of %s in %s position.", card, strings.ToLower(string(orientation)))
}

// suitOf extracts the suit from a "<Rank> of <Suit>" label, or ""
// for Major Arcana and unrecognized labels.
func suitOf(card string) string {
	_, suit, ok := strings.Cut(card, " of ")
	if !ok {
		return ""
	}
	if _, known := suitThemes[suit]; !known {
		return ""
	}
	return suit
}
