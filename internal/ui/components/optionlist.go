package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/deckplay/deckplay/internal/ui/theme"
)

// ChoiceState controls how an option renders once the question is resolved.
type ChoiceState int

const (
	ChoiceIdle ChoiceState = iota
	ChoiceCorrect
	ChoiceWrong
	ChoiceDimmed
)

// Choice is one selectable option. Note holds an explanation line rendered
// under the option once revealed.
type Choice struct {
	Letter string
	Text   string
	State  ChoiceState
	Note   string
}

// OptionList is a lettered multiple-choice selector. Locked lists render
// their resolved states and ignore input; the quiz screen locks a question
// once it is answered, and review sessions lock every question.
type OptionList struct {
	Prompt      string
	Choices     []Choice
	Cursor      int
	Locked      bool
	Picked      bool
	PickedIndex int
}

// NewOptionList creates a selector with the cursor on the first choice.
func NewOptionList(prompt string, choices []Choice) OptionList {
	return OptionList{
		Prompt:      prompt,
		Choices:     choices,
		PickedIndex: -1,
	}
}

// Init returns nil.
func (o OptionList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and picking.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if o.Locked {
		return o, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Choices)-1 {
			o.Cursor++
		}
	case "enter":
		o.Picked = true
		o.PickedIndex = o.Cursor
	default:
		// Letter keys jump straight to the option and pick it.
		for i, c := range o.Choices {
			if key == strings.ToLower(c.Letter) {
				o.Cursor = i
				o.Picked = true
				o.PickedIndex = i
				break
			}
		}
	}

	return o, nil
}

// View renders the prompt and options.
func (o OptionList) View() string {
	promptStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := promptStyle.Render(o.Prompt) + "\n\n"

	for i, c := range o.Choices {
		prefix := "  "
		if i == o.Cursor && !o.Locked {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, c.Letter, c.Text)

		switch {
		case c.State == ChoiceCorrect:
			s += theme.Correct.Render(line) + "\n"
		case c.State == ChoiceWrong:
			s += theme.Incorrect.Render(line) + "\n"
		case c.State == ChoiceDimmed:
			s += theme.Muted.Render(line) + "\n"
		case i == o.Cursor && !o.Locked:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}

		if c.Note != "" {
			s += theme.Explanation.Render(c.Note) + "\n"
		}
	}

	return s
}
