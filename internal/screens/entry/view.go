package entry

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/deckplay/deckplay/internal/deck"
	"github.com/deckplay/deckplay/internal/ui/components"
	"github.com/deckplay/deckplay/internal/ui/theme"
)

func (e *EntryScreen) View(width, height int) string {
	if e.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n" + e.errMsg)
	}

	if e.poller != nil || (e.genDeck != nil && e.genDeck.Status == deck.StatusGenerating) {
		return e.renderGenerating(width)
	}

	if e.loading {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("\n\n" + e.spin.View() + lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render(" Opening deck..."))
	}

	if e.hasMenu {
		return e.renderMenu(width)
	}

	return ""
}

// renderGenerating shows generation progress for a deck still being built.
func (e *EntryScreen) renderGenerating(width int) string {
	d := e.genDeck
	if d == nil {
		d = e.ctrl.Deck()
	}

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(d.Title))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(e.spin.View() + lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(" This deck is still being generated.")))
	b.WriteString("\n\n")

	if d.TargetCount > 0 {
		pct := float64(d.QuestionCount) / float64(d.TargetCount)
		bar := components.NewProgressBar(
			fmt.Sprintf("  %d/%d questions", d.QuestionCount, d.TargetCount),
			pct, true, min(width-8, 60),
		)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n")
	}

	return b.String()
}

// renderMenu shows the entry decision menu with deck context above it.
func (e *EntryScreen) renderMenu(width int) string {
	d := e.ctrl.Deck()
	p := e.ctrl.Progress()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(d.Title))
	b.WriteString("\n")

	var status string
	switch {
	case p == nil:
	case p.Status == deck.ProgressInProgress:
		status = fmt.Sprintf("In progress: %d of %d answered", p.Answered, d.QuestionCount)
	case p.Status == deck.ProgressCompleted:
		status = fmt.Sprintf("Completed: %d/%d correct", p.Correct, p.Answered)
	}
	if status != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(status))
	}
	b.WriteString("\n\n")
	b.WriteString(e.menu.View())

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
