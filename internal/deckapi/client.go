// Package deckapi adapts the JSON-over-HTTP deck service to the
// deck.Repository contract. Response shapes are normalized and validated
// here, once, at the edge; the engine core only ever sees canonical types.
package deckapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/deckplay/deckplay/internal/deck"
)

// Client implements deck.Repository over HTTP.
type Client struct {
	cfg  Config
	http *http.Client
}

var _ deck.Repository = (*Client)(nil)

// NewClient creates a Client. Callers normally wrap it:
//
//	repo := deckapi.WithLogging(deckapi.WithRetry(client, cfg.Retry), events)
func NewClient(cfg Config) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *Client) GetDeck(ctx context.Context, deckID string) (*deck.Deck, error) {
	raw, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/decks/%s", url.PathEscape(deckID)), nil, "deck")
	if err != nil {
		return nil, err
	}
	var p deckPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, &ErrBadPayload{Op: "get deck", Err: err}
	}
	return p.toDeck(), nil
}

func (c *Client) StartOrFetchProgress(ctx context.Context, deckID string) (*deck.Progress, error) {
	raw, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/decks/%s/progress", url.PathEscape(deckID)), nil, "progress")
	if err != nil {
		return nil, err
	}
	return parseProgress("start or fetch progress", raw)
}

func (c *Client) ListQuestions(ctx context.Context, deckID string) ([]deck.Question, error) {
	raw, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/decks/%s/questions", url.PathEscape(deckID)), nil, "questions")
	if err != nil {
		return nil, err
	}
	return parseQuestions("list questions", raw)
}

func (c *Client) ListReviewQuestions(ctx context.Context, deckID string, scope deck.ReviewScope) ([]deck.Question, error) {
	path := fmt.Sprintf("/decks/%s/review?scope=%s", url.PathEscape(deckID), url.QueryEscape(string(scope)))
	raw, err := c.do(ctx, http.MethodGet, path, nil, "questions")
	if err != nil {
		return nil, err
	}
	return parseQuestions("list review questions", raw)
}

func (c *Client) SubmitAnswer(ctx context.Context, deckID, questionID, letter string, elapsedMs int) (*deck.SubmitResult, error) {
	body := map[string]any{
		"selected_letter": letter,
		"elapsed_ms":      elapsedMs,
	}
	path := fmt.Sprintf("/decks/%s/questions/%s/answer", url.PathEscape(deckID), url.PathEscape(questionID))
	raw, err := c.do(ctx, http.MethodPost, path, body, "progress")
	if err != nil {
		return nil, err
	}
	p, err := parseProgress("submit answer", raw)
	if err != nil {
		return nil, err
	}
	return &deck.SubmitResult{Progress: p}, nil
}

func (c *Client) ResetProgress(ctx context.Context, deckID string) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/decks/%s/progress", url.PathEscape(deckID)), nil, "")
	return err
}

func (c *Client) RetakeWrong(ctx context.Context, deckID string) (*deck.Progress, error) {
	raw, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/decks/%s/retake", url.PathEscape(deckID)), nil, "progress")
	if err != nil {
		return nil, err
	}
	return parseProgress("retake wrong", raw)
}

// do issues one request and returns the normalized response body. Status
// mapping: 404 → not-found sentinels, other non-2xx and transport errors →
// *ErrUnavailable.
func (c *Client) do(ctx context.Context, method, path string, body any, unwrapKey string) (json.RawMessage, error) {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &ErrUnavailable{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ErrUnavailable{Err: err}
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, notFoundFor(path)
	case resp.StatusCode == http.StatusNoContent:
		return nil, nil
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, &ErrUnavailable{Status: resp.StatusCode, Err: fmt.Errorf("%s %s", method, path)}
	}

	if len(data) == 0 {
		return nil, nil
	}
	raw, err := unwrap(data, unwrapKey)
	if err != nil {
		return nil, &ErrBadPayload{Op: method + " " + path, Err: err}
	}
	return raw, nil
}

// notFoundFor picks the right terminal sentinel: submissions reference a
// question, everything else references the deck.
func notFoundFor(path string) error {
	if bytes.Contains([]byte(path), []byte("/questions/")) {
		return deck.ErrQuestionNotFound
	}
	return deck.ErrDeckNotFound
}

func parseProgress(op string, raw json.RawMessage) (*deck.Progress, error) {
	var p progressPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, &ErrBadPayload{Op: op, Err: err}
	}
	return p.toProgress(), nil
}

func parseQuestions(op string, raw json.RawMessage) ([]deck.Question, error) {
	if err := validateQuestions(op, raw); err != nil {
		return nil, err
	}
	var payloads []questionPayload
	if err := json.Unmarshal(raw, &payloads); err != nil {
		return nil, &ErrBadPayload{Op: op, Err: err}
	}
	questions := make([]deck.Question, 0, len(payloads))
	for i := range payloads {
		questions = append(questions, payloads[i].toQuestion())
	}
	return questions, nil
}
