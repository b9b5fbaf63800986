package quiz

import (
	"fmt"
	"time"

	"github.com/omark/quizdeck/internal/content"
)

// ResumeWindow is how long an in-progress session snapshot stays
// restorable. Older snapshots are discarded.
const ResumeWindow = 24 * time.Hour

// Snapshot is a serializable capture of an in-progress session, used to
// resume a quiz across process restarts within the resume window.
type Snapshot struct {
	AttemptID    string             `json:"attemptId"`
	SubjectID    string             `json:"subjectId"`
	LectureID    string             `json:"lectureId"`
	Questions    []content.Question `json:"questions"`
	CurrentIndex int                `json:"currentIndex"`
	Answers      []int              `json:"answers"`
	Bookmarks    []int              `json:"bookmarks"`
	StartedAt    time.Time          `json:"startedAt"`
}

// Expired reports whether the snapshot is older than the resume window.
func (snap *Snapshot) Expired(now time.Time) bool {
	return now.Sub(snap.StartedAt) >= ResumeWindow
}

// Snapshot captures the session state. Only meaningful while InProgress.
func (s *Session) Snapshot() Snapshot {
	answers := make([]int, len(s.answers))
	copy(answers, s.answers)

	var bookmarks []int
	for i := range s.bookmarks {
		bookmarks = append(bookmarks, i)
	}

	return Snapshot{
		AttemptID:    s.attemptID,
		SubjectID:    s.subjectID,
		LectureID:    s.lectureID,
		Questions:    s.questions,
		CurrentIndex: s.current,
		Answers:      answers,
		Bookmarks:    bookmarks,
		StartedAt:    s.startedAt,
	}
}

// Restore rebuilds an InProgress session from a snapshot, re-checking the
// session invariants so a corrupted snapshot cannot produce an inconsistent
// state machine.
func Restore(snap Snapshot) (*Session, error) {
	if len(snap.Questions) == 0 {
		return nil, ErrEmptyQuestionSet
	}
	if len(snap.Answers) != len(snap.Questions) {
		return nil, fmt.Errorf("snapshot has %d answers for %d questions", len(snap.Answers), len(snap.Questions))
	}
	if snap.CurrentIndex < 0 || snap.CurrentIndex >= len(snap.Questions) {
		return nil, ErrInvalidNavigationIndex
	}
	for i, q := range snap.Questions {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("snapshot question %d: %w", i, err)
		}
		if snap.Answers[i] != Unanswered && (snap.Answers[i] < 0 || snap.Answers[i] >= len(q.Options)) {
			return nil, ErrInvalidAnswerIndex
		}
	}

	answers := make([]int, len(snap.Answers))
	copy(answers, snap.Answers)

	bookmarks := make(map[int]bool)
	for _, i := range snap.Bookmarks {
		if i >= 0 && i < len(snap.Questions) {
			bookmarks[i] = true
		}
	}

	return &Session{
		attemptID: snap.AttemptID,
		subjectID: snap.SubjectID,
		lectureID: snap.LectureID,
		questions: snap.Questions,
		status:    StatusInProgress,
		current:   snap.CurrentIndex,
		answers:   answers,
		bookmarks: bookmarks,
		startedAt: snap.StartedAt,
	}, nil
}
