package deckapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/deckplay/deckplay/internal/deck"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL, Token: "tok", Timeout: 5 * time.Second})
}

func TestGetDeck(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/decks/d1" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("auth header = %q", got)
		}
		w.Write([]byte(`{"data":{"id":"d1","title":"Biology","question_count":10,"status":"ready"}}`))
	})

	d, err := c.GetDeck(context.Background(), "d1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Title != "Biology" || d.Status != deck.StatusReady || d.QuestionCount != 10 {
		t.Errorf("deck = %+v", d)
	}
}

func TestGetDeck_NotFound(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	_, err := c.GetDeck(context.Background(), "missing")
	if !errors.Is(err, deck.ErrDeckNotFound) {
		t.Errorf("err = %v, want ErrDeckNotFound", err)
	}
}

func TestGetDeck_ServerErrorIsTransient(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	_, err := c.GetDeck(context.Background(), "d1")
	var unavail *ErrUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
	if unavail.Status != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", unavail.Status)
	}
}

func TestListQuestions_WrappedEnvelope(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"questions":` + validQuestionJSON() + `}`))
	})

	qs, err := c.ListQuestions(context.Background(), "d1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 1 || qs[0].ID != "q1" {
		t.Fatalf("questions = %+v", qs)
	}
	if opt := qs[0].CorrectOption(); opt == nil || opt.Letter != "B" {
		t.Errorf("correct option = %+v", opt)
	}
}

func TestListQuestions_InvariantViolationRejected(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{
			"id": "q1", "prompt": "?",
			"options": [
				{"letter": "A", "text": "x", "correct": true},
				{"letter": "B", "text": "y", "correct": true}
			],
			"correct_letter": "A"
		}]`))
	})

	_, err := c.ListQuestions(context.Background(), "d1")
	var bad *ErrBadPayload
	if !errors.As(err, &bad) {
		t.Fatalf("err = %v, want ErrBadPayload", err)
	}
}

func TestListReviewQuestions_ScopeAndPriorAnswer(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("scope"); got != "wrong" {
			t.Errorf("scope = %q, want wrong", got)
		}
		w.Write([]byte(`[{
			"id": "q1", "prompt": "?",
			"options": [
				{"letter": "A", "text": "x", "correct": true, "explanation": "yes"},
				{"letter": "B", "text": "y", "explanation": "no"}
			],
			"correct_letter": "A",
			"user_answer": {"letter": "B", "text": "y", "correct": false, "elapsed_sec": 7}
		}]`))
	})

	qs, err := c.ListReviewQuestions(context.Background(), "d1", deck.ScopeWrong)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if qs[0].Prior == nil || qs[0].Prior.Letter != "B" || qs[0].Prior.ElapsedSec != 7 {
		t.Errorf("prior = %+v", qs[0].Prior)
	}
}

func TestSubmitAnswer(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if r.URL.Path != "/decks/d1/questions/q1/answer" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{"progress":{"status":"in-progress","answered":1,"correct":1,"last_answered_index":0}}`))
	})

	res, err := c.SubmitAnswer(context.Background(), "d1", "q1", "B", 2000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Progress.Answered != 1 || res.Progress.Status != deck.ProgressInProgress {
		t.Errorf("progress = %+v", res.Progress)
	}
}

func TestSubmitAnswer_QuestionNotFound(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	_, err := c.SubmitAnswer(context.Background(), "d1", "q9", "A", 100)
	if !errors.Is(err, deck.ErrQuestionNotFound) {
		t.Errorf("err = %v, want ErrQuestionNotFound", err)
	}
}

func TestResetProgress_NoContent(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	})
	if err := c.ResetProgress(context.Background(), "d1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStartOrFetchProgress_UnknownStatus(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"archived","answered":0}`))
	})
	p, err := c.StartOrFetchProgress(context.Background(), "d1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Status != deck.ProgressUnknown {
		t.Errorf("status = %q, want unknown", p.Status)
	}
}
