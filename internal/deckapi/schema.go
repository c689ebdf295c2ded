package deckapi

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// questionListSchema validates the canonical question-list shape at the
// adapter edge. The content service is supposed to guarantee the answer-key
// invariant; we do not trust it (see validateAnswerKey).
const questionListSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id", "prompt", "options", "correct_letter"],
		"properties": {
			"id": {"type": "string", "minLength": 1},
			"prompt": {"type": "string", "minLength": 1},
			"choices": {
				"type": "array",
				"items": {"type": "string"}
			},
			"options": {
				"type": "array",
				"minItems": 2,
				"maxItems": 5,
				"items": {
					"type": "object",
					"required": ["letter", "text"],
					"properties": {
						"letter": {"type": "string", "pattern": "^[A-E]$"},
						"text": {"type": "string"},
						"correct": {"type": "boolean"},
						"explanation": {"type": "string"}
					}
				}
			},
			"correct_letter": {"type": "string", "pattern": "^[A-E]$"}
		}
	}
}`

var (
	questionSchemaOnce sync.Once
	questionSchema     *jsonschema.Schema
	questionSchemaErr  error
)

func compiledQuestionSchema() (*jsonschema.Schema, error) {
	questionSchemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(questionListSchema), &def); err != nil {
			questionSchemaErr = fmt.Errorf("parse question schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://questions.json"
		if err := c.AddResource(url, def); err != nil {
			questionSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		questionSchema, questionSchemaErr = c.Compile(url)
	})
	return questionSchema, questionSchemaErr
}

// validateQuestions checks a normalized question-list payload against the
// schema and the answer-key invariant. Returns *ErrBadPayload on violation.
func validateQuestions(op string, raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrBadPayload{Op: op, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	schema, err := compiledQuestionSchema()
	if err != nil {
		return &ErrBadPayload{Op: op, Err: err}
	}
	if err := schema.Validate(parsed); err != nil {
		return &ErrBadPayload{Op: op, Err: fmt.Errorf("schema validation: %w", err)}
	}

	var questions []questionPayload
	if err := json.Unmarshal(raw, &questions); err != nil {
		return &ErrBadPayload{Op: op, Err: err}
	}
	for _, q := range questions {
		if err := validateAnswerKey(q); err != nil {
			return &ErrBadPayload{Op: op, Err: err}
		}
	}
	return nil
}

// validateAnswerKey enforces the exactly-one-correct-option invariant, which
// jsonschema cannot express. Rejecting at load time beats recording an
// ungradeable answer later.
func validateAnswerKey(q questionPayload) error {
	correct := 0
	letterSeen := false
	for _, o := range q.Options {
		if o.Correct {
			correct++
			if o.Letter != q.CorrectLetter {
				return fmt.Errorf("question %s: correct flag on %s but correct_letter is %s",
					q.ID, o.Letter, q.CorrectLetter)
			}
		}
		if o.Letter == q.CorrectLetter {
			letterSeen = true
		}
	}
	if correct != 1 {
		return fmt.Errorf("question %s: %d options flagged correct, want exactly 1", q.ID, correct)
	}
	if !letterSeen {
		return fmt.Errorf("question %s: correct_letter %s not among options", q.ID, q.CorrectLetter)
	}
	return nil
}
