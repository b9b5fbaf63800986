package quiz

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/omark/quizdeck/internal/content"
)

// Status is the session lifecycle state.
type Status int

const (
	StatusNotStarted Status = iota
	StatusInProgress
	StatusSubmitted
)

// Unanswered marks a question position with no recorded answer.
const Unanswered = -1

var (
	// ErrEmptyQuestionSet is returned when Start is given no questions.
	ErrEmptyQuestionSet = errors.New("cannot start a session with no questions")

	// ErrNotActive is returned by mutators outside the InProgress state.
	ErrNotActive = errors.New("session is not in progress")

	// ErrInvalidAnswerIndex is returned for an out-of-range option index.
	ErrInvalidAnswerIndex = errors.New("answer option index out of range")

	// ErrInvalidNavigationIndex is returned for an out-of-range question index.
	ErrInvalidNavigationIndex = errors.New("question index out of range")
)

// Session is the quiz state machine: NotStarted → InProgress → Submitted.
// It owns the question set, current position, per-question answers and
// bookmarks, and computes the result on submission. Persistence is the
// caller's concern; Submit only returns the Result.
type Session struct {
	attemptID string
	subjectID string
	lectureID string

	questions []content.Question
	status    Status
	current   int
	answers   []int
	bookmarks map[int]bool
	startedAt time.Time
}

// New creates a session for the given subject and lecture in the
// NotStarted state.
func New(subjectID, lectureID string) *Session {
	return &Session{
		attemptID: uuid.New().String(),
		subjectID: subjectID,
		lectureID: lectureID,
		bookmarks: make(map[int]bool),
	}
}

// Start transitions to InProgress with the given question set. All answers
// begin unset, the position is the first question, bookmarks are cleared and
// the clock starts at now. Fails with ErrEmptyQuestionSet on an empty set.
func (s *Session) Start(questions []content.Question, now time.Time) error {
	if len(questions) == 0 {
		return ErrEmptyQuestionSet
	}

	s.questions = questions
	s.answers = make([]int, len(questions))
	for i := range s.answers {
		s.answers[i] = Unanswered
	}
	s.current = 0
	s.bookmarks = make(map[int]bool)
	s.startedAt = now
	s.status = StatusInProgress
	return nil
}

// Status returns the lifecycle state.
func (s *Session) Status() Status { return s.status }

// AttemptID returns the unique id for this attempt.
func (s *Session) AttemptID() string { return s.attemptID }

// SubjectID returns the subject this session belongs to.
func (s *Session) SubjectID() string { return s.subjectID }

// LectureID returns the lecture this session belongs to ("" for all lectures).
func (s *Session) LectureID() string { return s.lectureID }

// Questions returns the session's question set.
func (s *Session) Questions() []content.Question { return s.questions }

// Len returns the number of questions.
func (s *Session) Len() int { return len(s.questions) }

// CurrentIndex returns the current question position.
func (s *Session) CurrentIndex() int { return s.current }

// Current returns the question at the current position, or nil before Start.
func (s *Session) Current() *content.Question {
	if s.status == StatusNotStarted {
		return nil
	}
	return &s.questions[s.current]
}

// StartedAt returns when the session started.
func (s *Session) StartedAt() time.Time { return s.startedAt }

// Elapsed returns the time since the session started.
func (s *Session) Elapsed(now time.Time) time.Duration {
	return now.Sub(s.startedAt)
}

// RecordAnswer sets the answer for the current question. The position does
// not advance; advance/feedback timing is the caller's policy.
func (s *Session) RecordAnswer(optionIndex int) error {
	if s.status != StatusInProgress {
		return ErrNotActive
	}
	if optionIndex < 0 || optionIndex >= len(s.questions[s.current].Options) {
		return ErrInvalidAnswerIndex
	}
	s.answers[s.current] = optionIndex
	return nil
}

// Answer returns the recorded answer for question i and whether one is set.
func (s *Session) Answer(i int) (int, bool) {
	if i < 0 || i >= len(s.answers) || s.answers[i] == Unanswered {
		return Unanswered, false
	}
	return s.answers[i], true
}

// GoTo moves the current position to index. Rejected without any state
// change when index is out of range.
func (s *Session) GoTo(index int) error {
	if s.status != StatusInProgress {
		return ErrNotActive
	}
	if index < 0 || index >= len(s.questions) {
		return ErrInvalidNavigationIndex
	}
	s.current = index
	return nil
}

// Next advances one question; no-op on the last question.
func (s *Session) Next() {
	if s.status == StatusInProgress && s.current < len(s.questions)-1 {
		s.current++
	}
}

// Prev moves back one question; no-op on the first question.
func (s *Session) Prev() {
	if s.status == StatusInProgress && s.current > 0 {
		s.current--
	}
}

// ToggleBookmark flips the bookmark for question index, which need not be
// the current question. Returns the new bookmark state.
func (s *Session) ToggleBookmark(index int) (bool, error) {
	if s.status != StatusInProgress {
		return false, ErrNotActive
	}
	if index < 0 || index >= len(s.questions) {
		return false, ErrInvalidNavigationIndex
	}
	if s.bookmarks[index] {
		delete(s.bookmarks, index)
		return false, nil
	}
	s.bookmarks[index] = true
	return true, nil
}

// Bookmarked reports whether question index is bookmarked.
func (s *Session) Bookmarked(index int) bool {
	return s.bookmarks[index]
}

// UnansweredCount returns how many questions have no recorded answer.
func (s *Session) UnansweredCount() int {
	n := 0
	for _, a := range s.answers {
		if a == Unanswered {
			n++
		}
	}
	return n
}

// Submit transitions to Submitted and computes the result. Unset answers
// count as incorrect; whether to warn about them first is the caller's
// policy. The session cannot be mutated afterwards.
func (s *Session) Submit(now time.Time) (Result, error) {
	if s.status != StatusInProgress {
		return Result{}, ErrNotActive
	}

	correct := 0
	for i, q := range s.questions {
		if s.answers[i] == q.CorrectIndex {
			correct++
		}
	}

	s.status = StatusSubmitted
	total := len(s.questions)
	return Result{
		AttemptID:      s.attemptID,
		SubjectID:      s.subjectID,
		LectureID:      s.lectureID,
		CorrectCount:   correct,
		TotalCount:     total,
		Percentage:     Percentage(correct, total),
		ElapsedSeconds: int(now.Sub(s.startedAt).Seconds()),
		Timestamp:      now,
	}, nil
}
