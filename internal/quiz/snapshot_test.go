package quiz

import (
	"errors"
	"testing"
	"time"
)

func TestSnapshotRoundTrip(t *testing.T) {
	s := startedSession(t, 4)
	if err := s.RecordAnswer(1); err != nil {
		t.Fatal(err)
	}
	if _, err := s.ToggleBookmark(3); err != nil {
		t.Fatal(err)
	}
	if err := s.GoTo(2); err != nil {
		t.Fatal(err)
	}

	snap := s.Snapshot()
	restored, err := Restore(snap)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}

	if restored.Status() != StatusInProgress {
		t.Errorf("status = %v, want StatusInProgress", restored.Status())
	}
	if restored.AttemptID() != s.AttemptID() {
		t.Errorf("attempt id = %s, want %s", restored.AttemptID(), s.AttemptID())
	}
	if restored.CurrentIndex() != 2 {
		t.Errorf("current = %d, want 2", restored.CurrentIndex())
	}
	if got, ok := restored.Answer(0); !ok || got != 1 {
		t.Errorf("Answer(0) = %d, %v, want 1, true", got, ok)
	}
	if !restored.Bookmarked(3) {
		t.Error("expected bookmark on question 3 to survive the round trip")
	}
	if !restored.StartedAt().Equal(s.StartedAt()) {
		t.Errorf("startedAt = %v, want %v", restored.StartedAt(), s.StartedAt())
	}
}

func TestRestoreRejectsCorruptSnapshots(t *testing.T) {
	base := startedSession(t, 3).Snapshot()

	tests := []struct {
		name    string
		mutate  func(*Snapshot)
		wantErr error
	}{
		{
			name:    "no questions",
			mutate:  func(snap *Snapshot) { snap.Questions = nil },
			wantErr: ErrEmptyQuestionSet,
		},
		{
			name:    "answer count mismatch",
			mutate:  func(snap *Snapshot) { snap.Answers = snap.Answers[:1] },
			wantErr: nil, // wrapped message, no sentinel
		},
		{
			name:    "current index out of range",
			mutate:  func(snap *Snapshot) { snap.CurrentIndex = 3 },
			wantErr: ErrInvalidNavigationIndex,
		},
		{
			name: "answer out of option range",
			mutate: func(snap *Snapshot) {
				answers := make([]int, len(snap.Answers))
				copy(answers, snap.Answers)
				answers[0] = 9
				snap.Answers = answers
			},
			wantErr: ErrInvalidAnswerIndex,
		},
		{
			name: "invalid question record",
			mutate: func(snap *Snapshot) {
				qs := append(snap.Questions[:0:0], snap.Questions...)
				qs[1].Options = nil
				snap.Questions = qs
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := base
			tt.mutate(&snap)
			_, err := Restore(snap)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Restore = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRestoreDropsOutOfRangeBookmarks(t *testing.T) {
	snap := startedSession(t, 2).Snapshot()
	snap.Bookmarks = []int{0, 5, -1}

	restored, err := Restore(snap)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if !restored.Bookmarked(0) {
		t.Error("expected bookmark on question 0")
	}
	if restored.Bookmarked(5) {
		t.Error("out-of-range bookmark should be dropped")
	}
}

func TestSnapshotExpired(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	snap := Snapshot{StartedAt: start}

	if snap.Expired(start.Add(23 * time.Hour)) {
		t.Error("snapshot expired before the resume window")
	}
	if !snap.Expired(start.Add(ResumeWindow)) {
		t.Error("snapshot should expire at the resume window boundary")
	}
	if !snap.Expired(start.Add(48 * time.Hour)) {
		t.Error("snapshot should expire after the resume window")
	}
}
