// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/deckplay/deckplay/ent/answerevent"
	"github.com/deckplay/deckplay/ent/schema"
	"github.com/deckplay/deckplay/ent/sessionevent"
	"github.com/deckplay/deckplay/ent/snapshot"
	"github.com/deckplay/deckplay/ent/syncevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescDeckID is the schema descriptor for deck_id field.
	answereventDescDeckID := answereventFields[1].Descriptor()
	// answerevent.DeckIDValidator is a validator for the "deck_id" field. It is called by the builders before save.
	answerevent.DeckIDValidator = answereventDescDeckID.Validators[0].(func(string) error)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[2].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescSelectedLetter is the schema descriptor for selected_letter field.
	answereventDescSelectedLetter := answereventFields[3].Descriptor()
	// answerevent.SelectedLetterValidator is a validator for the "selected_letter" field. It is called by the builders before save.
	answerevent.SelectedLetterValidator = answereventDescSelectedLetter.Validators[0].(func(string) error)
	// answereventDescSelectedText is the schema descriptor for selected_text field.
	answereventDescSelectedText := answereventFields[4].Descriptor()
	// answerevent.SelectedTextValidator is a validator for the "selected_text" field. It is called by the builders before save.
	answerevent.SelectedTextValidator = answereventDescSelectedText.Validators[0].(func(string) error)
	// answereventDescCorrectLetter is the schema descriptor for correct_letter field.
	answereventDescCorrectLetter := answereventFields[5].Descriptor()
	// answerevent.CorrectLetterValidator is a validator for the "correct_letter" field. It is called by the builders before save.
	answerevent.CorrectLetterValidator = answereventDescCorrectLetter.Validators[0].(func(string) error)
	// answereventDescMode is the schema descriptor for mode field.
	answereventDescMode := answereventFields[8].Descriptor()
	// answerevent.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	answerevent.ModeValidator = answereventDescMode.Validators[0].(func(string) error)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescDeckID is the schema descriptor for deck_id field.
	sessioneventDescDeckID := sessioneventFields[1].Descriptor()
	// sessionevent.DeckIDValidator is a validator for the "deck_id" field. It is called by the builders before save.
	sessionevent.DeckIDValidator = sessioneventDescDeckID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescMode is the schema descriptor for mode field.
	sessioneventDescMode := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultMode holds the default value on creation for the mode field.
	sessionevent.DefaultMode = sessioneventDescMode.Default.(string)
	// sessioneventDescScope is the schema descriptor for scope field.
	sessioneventDescScope := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultScope holds the default value on creation for the scope field.
	sessionevent.DefaultScope = sessioneventDescScope.Default.(string)
	// sessioneventDescAnswered is the schema descriptor for answered field.
	sessioneventDescAnswered := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultAnswered holds the default value on creation for the answered field.
	sessionevent.DefaultAnswered = sessioneventDescAnswered.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescDeckID is the schema descriptor for deck_id field.
	snapshotDescDeckID := snapshotFields[0].Descriptor()
	// snapshot.DeckIDValidator is a validator for the "deck_id" field. It is called by the builders before save.
	snapshot.DeckIDValidator = snapshotDescDeckID.Validators[0].(func(string) error)
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[2].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	synceventMixin := schema.SyncEvent{}.Mixin()
	synceventMixinFields0 := synceventMixin[0].Fields()
	_ = synceventMixinFields0
	synceventFields := schema.SyncEvent{}.Fields()
	_ = synceventFields
	// synceventDescTimestamp is the schema descriptor for timestamp field.
	synceventDescTimestamp := synceventMixinFields0[1].Descriptor()
	// syncevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	syncevent.DefaultTimestamp = synceventDescTimestamp.Default.(func() time.Time)
	// synceventDescDeckID is the schema descriptor for deck_id field.
	synceventDescDeckID := synceventFields[0].Descriptor()
	// syncevent.DeckIDValidator is a validator for the "deck_id" field. It is called by the builders before save.
	syncevent.DeckIDValidator = synceventDescDeckID.Validators[0].(func(string) error)
	// synceventDescOp is the schema descriptor for op field.
	synceventDescOp := synceventFields[1].Descriptor()
	// syncevent.OpValidator is a validator for the "op" field. It is called by the builders before save.
	syncevent.OpValidator = synceventDescOp.Validators[0].(func(string) error)
	// synceventDescLatencyMs is the schema descriptor for latency_ms field.
	synceventDescLatencyMs := synceventFields[2].Descriptor()
	// syncevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	syncevent.DefaultLatencyMs = synceventDescLatencyMs.Default.(int64)
	// synceventDescErrorMessage is the schema descriptor for error_message field.
	synceventDescErrorMessage := synceventFields[4].Descriptor()
	// syncevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	syncevent.DefaultErrorMessage = synceventDescErrorMessage.Default.(string)
}
