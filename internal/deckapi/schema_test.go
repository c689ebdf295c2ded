package deckapi

import (
	"encoding/json"
	"errors"
	"testing"
)

func validQuestionJSON() string {
	return `[{
		"id": "q1",
		"prompt": "2 + 2?",
		"choices": ["3", "4"],
		"options": [
			{"letter": "A", "text": "3", "correct": false, "explanation": "One short."},
			{"letter": "B", "text": "4", "correct": true, "explanation": "Basic addition."}
		],
		"correct_letter": "B"
	}]`
}

func TestValidateQuestions_Valid(t *testing.T) {
	if err := validateQuestions("test", json.RawMessage(validQuestionJSON())); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateQuestions_MissingPrompt(t *testing.T) {
	payload := `[{"id":"q1","options":[{"letter":"A","text":"x"},{"letter":"B","text":"y","correct":true}],"correct_letter":"B"}]`
	err := validateQuestions("test", json.RawMessage(payload))
	var bad *ErrBadPayload
	if !errors.As(err, &bad) {
		t.Fatalf("err = %v, want ErrBadPayload", err)
	}
}

func TestValidateQuestions_NoCorrectOption(t *testing.T) {
	payload := `[{
		"id": "q1", "prompt": "?",
		"options": [
			{"letter": "A", "text": "x"},
			{"letter": "B", "text": "y"}
		],
		"correct_letter": "B"
	}]`
	err := validateQuestions("test", json.RawMessage(payload))
	var bad *ErrBadPayload
	if !errors.As(err, &bad) {
		t.Fatalf("err = %v, want ErrBadPayload for zero correct flags", err)
	}
}

func TestValidateQuestions_TwoCorrectOptions(t *testing.T) {
	payload := `[{
		"id": "q1", "prompt": "?",
		"options": [
			{"letter": "A", "text": "x", "correct": true},
			{"letter": "B", "text": "y", "correct": true}
		],
		"correct_letter": "B"
	}]`
	if err := validateQuestions("test", json.RawMessage(payload)); err == nil {
		t.Fatal("expected rejection for two correct flags")
	}
}

func TestValidateQuestions_FlagLetterDisagreement(t *testing.T) {
	payload := `[{
		"id": "q1", "prompt": "?",
		"options": [
			{"letter": "A", "text": "x", "correct": true},
			{"letter": "B", "text": "y"}
		],
		"correct_letter": "B"
	}]`
	if err := validateQuestions("test", json.RawMessage(payload)); err == nil {
		t.Fatal("expected rejection when the flag and correct_letter disagree")
	}
}

func TestValidateQuestions_BadLetter(t *testing.T) {
	payload := `[{
		"id": "q1", "prompt": "?",
		"options": [
			{"letter": "Z", "text": "x", "correct": true},
			{"letter": "B", "text": "y"}
		],
		"correct_letter": "Z"
	}]`
	if err := validateQuestions("test", json.RawMessage(payload)); err == nil {
		t.Fatal("expected rejection for a letter outside A-E")
	}
}
