package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", DeckID: "d1", Action: "start", Mode: "full",
	}); err != nil {
		t.Fatalf("append session event: %v", err)
	}
	if err := repo.AppendAnswerEvent(ctx, answerData("s1", "d1", "q1", true, 2000)); err != nil {
		t.Fatalf("append answer event: %v", err)
	}
	if err := repo.AppendSyncEvent(ctx, SyncEventData{
		DeckID: "d1", Op: "submit-answer", Success: true,
	}); err != nil {
		t.Fatalf("append sync event: %v", err)
	}

	records, err := repo.QuerySyncEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query sync events: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d sync records, want 1", len(records))
	}
	// Third event appended overall, so it carries sequence 3.
	if records[0].Sequence != 3 {
		t.Errorf("sequence = %d, want 3", records[0].Sequence)
	}
}

func answerData(sessionID, deckID, questionID string, correct bool, timeMs int) AnswerEventData {
	data := AnswerEventData{
		SessionID:      sessionID,
		DeckID:         deckID,
		QuestionID:     questionID,
		SelectedLetter: "A",
		SelectedText:   "something",
		CorrectLetter:  "A",
		Correct:        correct,
		TimeMs:         timeMs,
		Mode:           "full",
	}
	if !correct {
		data.CorrectLetter = "B"
	}
	return data
}

func TestStatsByDeck(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, d := range []AnswerEventData{
		answerData("s1", "d1", "q1", true, 2000),
		answerData("s1", "d1", "q2", false, 4000),
		answerData("s2", "d2", "q1", true, 1000),
	} {
		if err := repo.AppendAnswerEvent(ctx, d); err != nil {
			t.Fatalf("append answer event: %v", err)
		}
	}
	if err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", DeckID: "d1", Action: "finish",
		Answered: 2, CorrectAnswers: 1, DurationSecs: 6,
	}); err != nil {
		t.Fatalf("append session event: %v", err)
	}

	stats, err := repo.StatsByDeck(ctx)
	if err != nil {
		t.Fatalf("stats by deck: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("got %d decks, want 2", len(stats))
	}

	d1 := stats[0]
	if d1.DeckID != "d1" {
		t.Fatalf("first deck = %q, want d1", d1.DeckID)
	}
	if d1.Answered != 2 || d1.Correct != 1 {
		t.Errorf("d1 answered/correct = %d/%d, want 2/1", d1.Answered, d1.Correct)
	}
	if d1.AvgTimeMs != 3000 {
		t.Errorf("d1 avg time = %d, want 3000", d1.AvgTimeMs)
	}
	if d1.Attempts != 1 {
		t.Errorf("d1 attempts = %d, want 1", d1.Attempts)
	}
	if got := d1.Accuracy(); got != 0.5 {
		t.Errorf("d1 accuracy = %v, want 0.5", got)
	}

	if stats[1].DeckID != "d2" || stats[1].Attempts != 0 {
		t.Errorf("d2 = %+v", stats[1])
	}
}

func TestAccuracyEmptyStats(t *testing.T) {
	var st DeckStats
	if got := st.Accuracy(); got != 0 {
		t.Errorf("accuracy of empty stats = %v, want 0", got)
	}
}

func TestQuerySyncEventsFiltered(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, deckID := range []string{"d1", "d2", "d1"} {
		data := SyncEventData{DeckID: deckID, Op: "submit-answer", Success: i != 2}
		if i == 2 {
			data.ErrorMessage = "service unavailable"
		}
		if err := repo.AppendSyncEvent(ctx, data); err != nil {
			t.Fatalf("append sync event: %v", err)
		}
	}

	records, err := repo.QuerySyncEvents(ctx, QueryOpts{DeckID: "d1"})
	if err != nil {
		t.Fatalf("query sync events: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	// Newest first.
	if records[0].Success || records[0].ErrorMessage == "" {
		t.Errorf("newest record = %+v, want the failed sync", records[0])
	}

	limited, err := repo.QuerySyncEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query sync events: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("got %d records with limit 1", len(limited))
	}
}

func TestLastPlayed(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	ts, err := repo.LastPlayed(ctx, "d1")
	if err != nil {
		t.Fatalf("last played: %v", err)
	}
	if !ts.IsZero() {
		t.Errorf("expected zero time for unplayed deck, got %v", ts)
	}

	if err := repo.AppendAnswerEvent(ctx, answerData("s1", "d1", "q1", true, 1000)); err != nil {
		t.Fatalf("append answer event: %v", err)
	}
	ts, err = repo.LastPlayed(ctx, "d1")
	if err != nil {
		t.Fatalf("last played: %v", err)
	}
	if ts.IsZero() {
		t.Error("expected non-zero time after an answer")
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx, "d1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap != nil {
		t.Fatalf("expected nil snapshot, got %+v", snap)
	}

	want := ProgressSnapshot{
		DeckID:            "d1",
		Status:            "in-progress",
		LastAnsweredIndex: 3,
		Answered:          4,
		Correct:           3,
		Attempts:          1,
		FetchedAt:         time.Now().UTC().Truncate(time.Second),
	}
	err = repo.Save(ctx, &Snapshot{Sequence: 10, Timestamp: time.Now(), Data: want})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx, "d1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected a snapshot")
	}
	if snap.Data != want {
		t.Errorf("data = %+v, want %+v", snap.Data, want)
	}

	// Other decks stay isolated.
	other, err := repo.Latest(ctx, "d2")
	if err != nil {
		t.Fatalf("latest d2: %v", err)
	}
	if other != nil {
		t.Errorf("expected nil snapshot for d2, got %+v", other)
	}
}

func TestSnapshotPrunePerDeck(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      ProgressSnapshot{DeckID: "d1", Answered: i},
		})
		if err != nil {
			t.Fatalf("save d1 snapshot %d: %v", i, err)
		}
	}
	err := repo.Save(ctx, &Snapshot{
		Sequence:  4,
		Timestamp: base,
		Data:      ProgressSnapshot{DeckID: "d2", Answered: 9},
	})
	if err != nil {
		t.Fatalf("save d2 snapshot: %v", err)
	}

	if err := repo.Prune(ctx, 1); err != nil {
		t.Fatalf("prune: %v", err)
	}

	snap, err := repo.Latest(ctx, "d1")
	if err != nil {
		t.Fatalf("latest d1: %v", err)
	}
	if snap == nil || snap.Data.Answered != 2 {
		t.Errorf("d1 latest after prune = %+v, want the newest snapshot", snap)
	}

	// d2 had only one snapshot and keeps it.
	snap, err = repo.Latest(ctx, "d2")
	if err != nil {
		t.Fatalf("latest d2: %v", err)
	}
	if snap == nil || snap.Data.Answered != 9 {
		t.Errorf("d2 latest after prune = %+v, want its only snapshot", snap)
	}
}
