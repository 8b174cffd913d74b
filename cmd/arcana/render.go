// Styled terminal rendering for card reveals.
package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dukaforge/arcana/internal/deck"
	"github.com/dukaforge/arcana/pkg/types"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 2).
			Width(44)

	positionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Bold(true)

	cardNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("219")).
			Bold(true)

	reversedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	meaningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true)
)

// renderHeader builds the reading banner line.
func renderHeader(spread types.SpreadDefinition) string {
	return headerStyle.Render(fmt.Sprintf("%s - %s", spread.Name, spread.Description))
}

// renderReading prints one full reading, card by card, with position
// label, orientation, and meaning text.
func renderReading(spread types.SpreadDefinition, cards []string, orientations []types.Orientation) {
	fmt.Println(renderHeader(spread))
	for i, card := range cards {
		position := fmt.Sprintf("Card %d", i+1)
		if i < len(spread.Positions) {
			position = spread.Positions[i]
		}
		fmt.Println(renderCard(position, card, orientations[i]))
	}
}

// renderCard renders a single card panel.
func renderCard(position, card string, orientation types.Orientation) string {
	name := cardNameStyle.Render(card)
	if orientation == types.Reversed {
		name = name + " " + reversedStyle.Render("(Reversed)")
	}

	body := strings.Join([]string{
		positionStyle.Render(position),
		name,
		meaningStyle.Render(deck.Meaning(card, orientation)),
	}, "\n")
	return cardStyle.Render(body)
}
