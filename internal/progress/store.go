package progress

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/omark/quizdeck/internal/notify"
	"github.com/omark/quizdeck/internal/quiz"
)

// profileKey is the durable-storage key holding the serialized profile.
const profileKey = "profileData"

// Repo is the durable key-value storage the profile persists into.
type Repo interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Store is the sole owner of the user profile. All reads and mutations go
// through it; every mutating operation persists before returning. Storage
// failures are logged and swallowed, never surfaced as hard failures —
// the app keeps running on the in-memory profile.
type Store struct {
	repo    Repo
	sink    notify.Sink
	profile *Profile
}

// NewStore creates a Store. Call Load before first use.
func NewStore(repo Repo, sink notify.Sink) *Store {
	if sink == nil {
		sink = notify.Discard
	}
	return &Store{
		repo:    repo,
		sink:    sink,
		profile: NewProfile(),
	}
}

// Load reads the persisted profile, merging stored fields over defaults.
// Absent or corrupt data falls back to a fresh profile; Load never fails
// the caller.
func (s *Store) Load(ctx context.Context) *Profile {
	s.profile = NewProfile()

	raw, ok, err := s.repo.Get(ctx, profileKey)
	if err != nil {
		log.Printf("progress: load profile: %v (continuing with defaults)", err)
		return s.profile
	}
	if !ok {
		return s.profile
	}

	// Unmarshalling into the defaults-initialized profile merges stored
	// fields over defaults; unknown fields are ignored, missing ones keep
	// their default.
	if err := json.Unmarshal([]byte(raw), s.profile); err != nil {
		log.Printf("progress: decode profile: %v (continuing with defaults)", err)
		s.profile = NewProfile()
		return s.profile
	}
	s.profile.normalize()
	return s.profile
}

// Profile returns the in-memory profile.
func (s *Store) Profile() *Profile {
	return s.profile
}

// RecordQuizResult applies one submitted attempt to the profile: history,
// per-lecture progress, per-subject stats, lifetime totals, streak and
// achievements, then persists once. All sub-updates apply unconditionally;
// with a single logical writer there is no partial-failure recovery.
// Returns the newly unlocked achievement ids.
func (s *Store) RecordQuizResult(ctx context.Context, subjectID, lectureID string, correct, total, elapsedSecs int, now time.Time) []string {
	p := s.profile
	percentage := quiz.Percentage(correct, total)

	p.QuizHistory = append(p.QuizHistory, AttemptRecord{
		SubjectID:  subjectID,
		LectureID:  lectureID,
		Score:      correct,
		Total:      total,
		Percentage: percentage,
		TimeSecs:   elapsedSecs,
		Date:       now,
	})

	key := LectureKey(subjectID, lectureID)
	p.LectureProgress[key] = append(p.LectureProgress[key], LectureAttempt{
		Score:      correct,
		Total:      total,
		Percentage: percentage,
		Date:       now,
	})

	stats := p.SubjectStats[subjectID]
	if stats == nil {
		stats = &SubjectStats{}
		p.SubjectStats[subjectID] = stats
	}
	stats.TotalQuizzes++
	stats.TotalScore += correct
	stats.TotalQuestions += total
	if percentage > stats.BestScore {
		stats.BestScore = percentage
	}

	p.TotalQuizzes++
	p.TotalCorrect += correct
	p.TotalQuestions += total

	Touch(p, now)
	unlocked := EvaluateAchievements(p, s.sink)

	s.persist(ctx)
	return unlocked
}

// Theme returns the persisted theme preference.
func (s *Store) Theme() Theme {
	return s.profile.Theme
}

// SetTheme updates the theme preference and persists immediately.
func (s *Store) SetTheme(ctx context.Context, t Theme) {
	s.profile.Theme = t
	s.persist(ctx)
}

// Reset replaces the profile with defaults and persists. Used by the reset
// command.
func (s *Store) Reset(ctx context.Context) {
	s.profile = NewProfile()
	s.persist(ctx)
}

// persist serializes the full profile to durable storage. Fire and forget:
// at most one write per call, no retry; quota and serialization errors are
// logged without aborting the triggering operation.
func (s *Store) persist(ctx context.Context) {
	raw, err := json.Marshal(s.profile)
	if err != nil {
		log.Printf("progress: encode profile: %v (changes kept in memory)", err)
		return
	}
	if err := s.repo.Put(ctx, profileKey, string(raw)); err != nil {
		log.Printf("progress: save profile: %v (changes kept in memory)", err)
	}
}
