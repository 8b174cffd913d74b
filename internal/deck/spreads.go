package deck

import (
	"sort"

	"github.com/dukaforge/arcana/pkg/types"
)

// DailyGuidance is the spread gated to one reading per calendar day.
const DailyGuidance = "Daily Guidance"

// spreads is the built-in spread table, keyed by exact name.
var spreads = map[string]types.SpreadDefinition{
	DailyGuidance: {
		Name:        DailyGuidance,
		CardCount:   1,
		Positions:   []string{"Your guidance for today"},
		Description: "A single card to guide your day",
	},
	"Past-Present-Future": {
		Name:        "Past-Present-Future",
		CardCount:   3,
		Positions:   []string{"Past influences", "Present situation", "Future potential"},
		Description: "Classic three-card timeline reading",
	},
	"Love & Relationships": {
		Name:        "Love & Relationships",
		CardCount:   5,
		Positions:   []string{"You in love", "Your partner", "The relationship", "Challenges", "Outcome"},
		Description: "Deep dive into your romantic life",
	},
	"Career Path": {
		Name:        "Career Path",
		CardCount:   4,
		Positions:   []string{"Current career", "Hidden talents", "Obstacles", "Next steps"},
		Description: "Navigate your professional journey",
	},
	"Celtic Cross": {
		Name:      "Celtic Cross",
		CardCount: 10,
		Positions: []string{
			"Present", "Challenge", "Distant Past", "Recent Past",
			"Possible Outcome", "Near Future", "Your Approach",
			"External Influences", "Hopes & Fears", "Final Outcome",
		},
		Description: "The most comprehensive tarot spread",
	},
	"Chakra Balance": {
		Name:      "Chakra Balance",
		CardCount: 7,
		Positions: []string{
			"Root Chakra", "Sacral Chakra", "Solar Plexus", "Heart Chakra",
			"Throat Chakra", "Third Eye", "Crown Chakra",
		},
		Description: "Align your spiritual energy centers",
	},
	"Essential Oil Guidance": {
		Name:        "Essential Oil Guidance",
		CardCount:   3,
		Positions:   []string{"Physical needs", "Emotional needs", "Spiritual needs"},
		Description: "Three cards for physical, emotional, and spiritual needs",
	},
}

// Spread looks up a spread definition by exact name.
func Spread(name string) (types.SpreadDefinition, error) {
	s, ok := spreads[name]
	if !ok {
		return types.SpreadDefinition{}, types.ErrSpreadNotFound
	}
	return s, nil
}

// Spreads returns all spread definitions in name-sorted order.
func Spreads() []types.SpreadDefinition {
	out := make([]types.SpreadDefinition, 0, len(spreads))
	for _, s := range spreads {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
