// Package deck supplies the static card catalog: the 78-card deck,
// the table of named spreads, and meaning text with graceful fallback.
// Everything here is immutable after process start.
package deck

import (
	"fmt"
	"math/rand"

	"github.com/dukaforge/arcana/pkg/types"
)

// Suits and ranks of the Minor Arcana, in traditional order.
var (
	suits = []string{"Wands", "Cups", "Swords", "Pentacles"}
	ranks = []string{
		"Ace", "Two", "Three", "Four", "Five", "Six", "Seven",
		"Eight", "Nine", "Ten", "Page", "Knight", "Queen", "King",
	}
)

// majorArcana lists the 22 trump cards in traditional order.
var majorArcana = []string{
	"The Fool", "The Magician", "The High Priestess", "The Empress",
	"The Emperor", "The Hierophant", "The Lovers", "The Chariot",
	"Strength", "The Hermit", "Wheel of Fortune", "Justice",
	"The Hanged Man", "Death", "Temperance", "The Devil", "The Tower",
	"The Star", "The Moon", "The Sun", "Judgement", "The World",
}

// Size is the number of cards in a full tarot deck.
const Size = 78

// fullDeck is built once at init and never mutated. Order is stable:
// suited cards rank-within-suit, then the Major Arcana.
var fullDeck = buildDeck()

func buildDeck() []string {
	cards := make([]string, 0, Size)
	for _, suit := range suits {
		for _, rank := range ranks {
			cards = append(cards, fmt.Sprintf("%s of %s", rank, suit))
		}
	}
	cards = append(cards, majorArcana...)
	return cards
}

// Full returns a copy of the 78-card deck in stable order.
func Full() []string {
	cards := make([]string, len(fullDeck))
	copy(cards, fullDeck)
	return cards
}

// Contains reports whether label names a card in the deck.
func Contains(label string) bool {
	for _, c := range fullDeck {
		if c == label {
			return true
		}
	}
	return false
}

// Draw samples spread.CardCount distinct cards from the full deck,
// without replacement, and assigns each an independent uniform
// orientation. A card never repeats within one reading.
// Returns types.ErrInvalidSpread when the card count is not positive
// or exceeds the deck size.
func Draw(spread types.SpreadDefinition, rng *rand.Rand) ([]string, []types.Orientation, error) {
	n := spread.CardCount
	if n <= 0 || n > Size {
		return nil, nil, fmt.Errorf("%q wants %d cards: %w", spread.Name, n, types.ErrInvalidSpread)
	}

	perm := rng.Perm(Size)
	cards := make([]string, n)
	orientations := make([]types.Orientation, n)
	for i := 0; i < n; i++ {
		cards[i] = fullDeck[perm[i]]
		if rng.Intn(2) == 0 {
			orientations[i] = types.Upright
		} else {
			orientations[i] = types.Reversed
		}
	}
	return cards, orientations, nil
}
