package deckapi

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/deckplay/deckplay/internal/deck"
)

// The deck service is inconsistent about envelopes: some endpoints return a
// bare array or object, others wrap it as {"data": ...} or under a named key
// like {"questions": [...]}. unwrap is the single normalization boundary —
// it runs exactly once per response, and the engine core never branches on
// transport shape again.
func unwrap(raw []byte, key string) (json.RawMessage, error) {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty response body")
	}
	if trimmed[0] == '[' {
		return json.RawMessage(trimmed), nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("parse envelope: %w", err)
	}
	if inner, ok := envelope["data"]; ok {
		// One level only; a data envelope may still hold a named key.
		innerTrim := bytes.TrimLeft(inner, " \t\r\n")
		if len(innerTrim) > 0 && innerTrim[0] == '{' && key != "" {
			var m map[string]json.RawMessage
			if err := json.Unmarshal(innerTrim, &m); err == nil {
				if v, ok := m[key]; ok {
					return v, nil
				}
			}
		}
		return inner, nil
	}
	if key != "" {
		if v, ok := envelope[key]; ok {
			return v, nil
		}
	}
	return json.RawMessage(trimmed), nil
}

// Wire payloads. These exist only on this side of the boundary; everything
// past unwrap/convert is the canonical deck types.

type deckPayload struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	QuestionCount int    `json:"question_count"`
	TargetCount   int    `json:"target_count"`
	Status        string `json:"status"`
}

type optionPayload struct {
	Letter      string `json:"letter"`
	Text        string `json:"text"`
	Correct     bool   `json:"correct"`
	Explanation string `json:"explanation"`
}

type sourcePayload struct {
	DocumentID string `json:"document_id"`
	Title      string `json:"title"`
	Pages      []int  `json:"pages"`
}

type priorPayload struct {
	Letter     string `json:"letter"`
	Text       string `json:"text"`
	Correct    bool   `json:"correct"`
	ElapsedSec int    `json:"elapsed_sec"`
}

type questionPayload struct {
	ID            string          `json:"id"`
	Prompt        string          `json:"prompt"`
	Choices       []string        `json:"choices"`
	Options       []optionPayload `json:"options"`
	CorrectLetter string          `json:"correct_letter"`
	Source        *sourcePayload  `json:"source"`
	UserAnswer    *priorPayload   `json:"user_answer"`
}

type progressPayload struct {
	Status            string `json:"status"`
	LastAnsweredIndex int    `json:"last_answered_index"`
	Answered          int    `json:"answered"`
	Correct           int    `json:"correct"`
	Incorrect         int    `json:"incorrect"`
	Attempts          int    `json:"attempts"`
	Mode              string `json:"mode"`
}

func (p *deckPayload) toDeck() *deck.Deck {
	return &deck.Deck{
		ID:            p.ID,
		Title:         p.Title,
		QuestionCount: p.QuestionCount,
		TargetCount:   p.TargetCount,
		Status:        deck.ParseStatus(p.Status),
	}
}

func (p *progressPayload) toProgress() *deck.Progress {
	mode := deck.ModeFull
	if p.Mode == string(deck.ModeRetake) {
		mode = deck.ModeRetake
	}
	return &deck.Progress{
		Status:            deck.ParseProgressStatus(p.Status),
		LastAnsweredIndex: p.LastAnsweredIndex,
		Answered:          p.Answered,
		Correct:           p.Correct,
		Incorrect:         p.Incorrect,
		Attempts:          p.Attempts,
		Mode:              mode,
	}
}

func (p *questionPayload) toQuestion() deck.Question {
	q := deck.Question{
		ID:            p.ID,
		Prompt:        p.Prompt,
		Choices:       p.Choices,
		CorrectLetter: p.CorrectLetter,
	}
	for _, o := range p.Options {
		q.Options = append(q.Options, deck.Option{
			Letter:      o.Letter,
			Text:        o.Text,
			Correct:     o.Correct,
			Explanation: o.Explanation,
		})
	}
	if p.Source != nil {
		q.Source = &deck.SourceRef{
			DocumentID: p.Source.DocumentID,
			Title:      p.Source.Title,
			Pages:      p.Source.Pages,
		}
	}
	if p.UserAnswer != nil {
		q.Prior = &deck.PriorAnswer{
			Letter:     p.UserAnswer.Letter,
			Text:       p.UserAnswer.Text,
			Correct:    p.UserAnswer.Correct,
			ElapsedSec: p.UserAnswer.ElapsedSec,
		}
	}
	return q
}
