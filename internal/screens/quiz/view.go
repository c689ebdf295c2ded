package quiz

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/deckplay/deckplay/internal/explain"
	"github.com/deckplay/deckplay/internal/ui/components"
	"github.com/deckplay/deckplay/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	sess := s.ctrl.Session()
	if sess == nil {
		return ""
	}

	q := sess.Current()
	if q == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  This deck has no questions.")
	}

	var b strings.Builder
	b.WriteString(s.renderStatusLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	rec := sess.Answers[q.ID]

	// Prompt.
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("  " + q.Prompt))
	b.WriteString("\n\n")

	// Options with resolved states and explanations.
	explainAll := rec != nil && rec.ExplainAll
	notes := make(map[string]string)
	if rec != nil {
		for _, ex := range explain.Build(q, rec, explainAll) {
			notes[ex.Letter] = ex.Text
		}
	}

	choices := make([]components.Choice, 0, len(q.Options))
	for i := range q.Options {
		opt := &q.Options[i]
		c := components.Choice{
			Letter: opt.Letter,
			Text:   opt.Text,
			Note:   notes[opt.Letter],
		}
		if rec != nil {
			switch explain.StateFor(opt, rec) {
			case explain.StateCorrect:
				c.State = components.ChoiceCorrect
			case explain.StateWrong:
				c.State = components.ChoiceWrong
			default:
				c.State = components.ChoiceDimmed
			}
		}
		choices = append(choices, c)
	}

	list := components.OptionList{
		Choices: choices,
		Cursor:  s.cursor,
		Locked:  rec != nil || sess.Review,
	}
	b.WriteString(list.View())

	if rec != nil {
		b.WriteString("\n")
		if rec.Correct {
			b.WriteString(theme.Correct.Render("  Correct!"))
		} else {
			b.WriteString(theme.Incorrect.Render(fmt.Sprintf("  Not quite — the answer is %s.", rec.CorrectLetter)))
		}
		b.WriteString("\n")
	}

	if q.Source != nil && rec != nil {
		b.WriteString(theme.Hint.Render("  Source: " + q.Source.Title))
		b.WriteString("\n")
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render("  " + s.errMsg))
		b.WriteString("\n")
	}

	return b.String()
}

// renderStatusLine shows position, score and the per-question clock.
func (s *QuizScreen) renderStatusLine(width int) string {
	sess := s.ctrl.Session()

	var secs int
	if t := s.currentTimer(); t != nil {
		secs = t.Seconds(time.Now())
	}

	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Q %d/%d", sess.Cursor+1, len(sess.Questions)))

	rightText := fmt.Sprintf("✓ %d   ⏱ %ds", s.correctSoFar(), secs)
	if s.unsynced > 0 {
		rightText = fmt.Sprintf("%d unsynced   %s", s.unsynced, rightText)
	}
	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(rightText)

	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + right
}

func (s *QuizScreen) correctSoFar() int {
	n := 0
	for _, rec := range s.ctrl.Session().Answers {
		if rec.Correct {
			n++
		}
	}
	return n
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
