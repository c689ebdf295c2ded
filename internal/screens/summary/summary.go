package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/deckplay/deckplay/internal/screen"
	"github.com/deckplay/deckplay/internal/session"
	"github.com/deckplay/deckplay/internal/ui/layout"
	"github.com/deckplay/deckplay/internal/ui/theme"
)

// SummaryScreen displays the scorecard for a finished run.
type SummaryScreen struct {
	ctrl     *session.Controller
	summary  session.Summary
	review   bool
	unsynced int
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen from the controller's current aggregate.
func New(ctrl *session.Controller, unsynced int) *SummaryScreen {
	review := false
	if s := ctrl.Session(); s != nil {
		review = s.Review
	}
	return &SummaryScreen{
		ctrl:     ctrl,
		summary:  ctrl.Summary(),
		review:   review,
		unsynced: unsynced,
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	if s.review {
		return "Review Complete"
	}
	return "Run Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter/Esc", Description: "Quit"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "q":
			return s, tea.Quit
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary

	var b strings.Builder

	title := "Run complete!"
	if s.review {
		title = "Review complete"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(title))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Answered: %d        Correct: %d        Score: %d%%",
		sum.Total, sum.Correct, sum.Percent)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	timeLine := fmt.Sprintf("Total time: %s        Avg per question: %ds",
		formatSecs(sum.TotalTimeSec), sum.AvgTimeSec)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(timeLine))
	b.WriteString("\n")

	if s.unsynced > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(fmt.Sprintf("%d answer(s) could not be synced; server totals may lag behind.", s.unsynced)))
		b.WriteString("\n")
	}

	return b.String()
}

func formatSecs(total int) string {
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
