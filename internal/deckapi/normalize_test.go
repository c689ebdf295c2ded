package deckapi

import (
	"encoding/json"
	"testing"
)

func TestUnwrap_BareArray(t *testing.T) {
	raw, err := unwrap([]byte(`[{"id":"q1"}]`), "questions")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got []map[string]any
	if err := json.Unmarshal(raw, &got); err != nil || len(got) != 1 {
		t.Fatalf("got %s", raw)
	}
}

func TestUnwrap_DataEnvelope(t *testing.T) {
	raw, err := unwrap([]byte(`{"data":[{"id":"q1"}]}`), "questions")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got []map[string]any
	if err := json.Unmarshal(raw, &got); err != nil || len(got) != 1 {
		t.Fatalf("got %s", raw)
	}
}

func TestUnwrap_NamedKey(t *testing.T) {
	raw, err := unwrap([]byte(`{"questions":[{"id":"q1"},{"id":"q2"}]}`), "questions")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got []map[string]any
	if err := json.Unmarshal(raw, &got); err != nil || len(got) != 2 {
		t.Fatalf("got %s", raw)
	}
}

func TestUnwrap_DataThenNamedKey(t *testing.T) {
	raw, err := unwrap([]byte(`{"data":{"questions":[{"id":"q1"}]}}`), "questions")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got []map[string]any
	if err := json.Unmarshal(raw, &got); err != nil || len(got) != 1 {
		t.Fatalf("got %s", raw)
	}
}

func TestUnwrap_BareObjectPassthrough(t *testing.T) {
	raw, err := unwrap([]byte(`{"status":"ready","id":"d1"}`), "deck")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(raw, &got); err != nil || got["id"] != "d1" {
		t.Fatalf("got %s", raw)
	}
}

func TestUnwrap_EmptyBody(t *testing.T) {
	if _, err := unwrap([]byte("  "), ""); err == nil {
		t.Fatal("expected an error for an empty body")
	}
}
