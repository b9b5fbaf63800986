package progress

import (
	"time"

	"github.com/omark/quizdeck/internal/quiz"
)

// Theme is the persisted UI color scheme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// AttemptRecord is one completed quiz submission in the profile history.
// Appended once per attempt, never mutated.
type AttemptRecord struct {
	SubjectID  string    `json:"subjectId"`
	LectureID  string    `json:"lectureId"`
	Score      int       `json:"score"`
	Total      int       `json:"total"`
	Percentage int       `json:"percentage"`
	TimeSecs   int       `json:"time"`
	Date       time.Time `json:"date"`
}

// LectureAttempt is one attempt of a subject+lecture pair; the pair is
// implied by the lectureProgress map key.
type LectureAttempt struct {
	Score      int       `json:"score"`
	Total      int       `json:"total"`
	Percentage int       `json:"percentage"`
	Date       time.Time `json:"date"`
}

// SubjectStats aggregates all attempts within one subject.
type SubjectStats struct {
	TotalQuizzes   int `json:"totalQuizzes"`
	TotalScore     int `json:"totalScore"`
	TotalQuestions int `json:"totalQuestions"`
	BestScore      int `json:"bestScore"`
}

// AveragePercent is the subject's cumulative accuracy as a percentage.
func (st *SubjectStats) AveragePercent() int {
	return quiz.Percentage(st.TotalScore, st.TotalQuestions)
}

// Profile is the root persisted aggregate: quiz history, per-lecture
// progress, per-subject stats, achievements, streak and preferences.
// A single instance is owned by the Store; everything else reads it
// through accessors.
type Profile struct {
	QuizHistory     []AttemptRecord             `json:"quizHistory"`
	LectureProgress map[string][]LectureAttempt `json:"lectureProgress"`
	SubjectStats    map[string]*SubjectStats    `json:"subjectStats"`
	Achievements    []string                    `json:"achievements"`
	TotalQuizzes    int                         `json:"totalQuizzes"`
	TotalCorrect    int                         `json:"totalCorrect"`
	TotalQuestions  int                         `json:"totalQuestions"`
	StudyStreak     int                         `json:"studyStreak"`
	LastStudyDate   string                      `json:"lastStudyDate"` // "2006-01-02", "" when never studied
	Theme           Theme                       `json:"theme"`
}

// NewProfile returns a profile with default values.
func NewProfile() *Profile {
	return &Profile{
		LectureProgress: make(map[string][]LectureAttempt),
		SubjectStats:    make(map[string]*SubjectStats),
		Theme:           ThemeLight,
	}
}

// normalize repairs nil maps and invalid fields after deserialization so a
// partially-populated persisted profile behaves like the defaults.
func (p *Profile) normalize() {
	if p.LectureProgress == nil {
		p.LectureProgress = make(map[string][]LectureAttempt)
	}
	if p.SubjectStats == nil {
		p.SubjectStats = make(map[string]*SubjectStats)
	}
	if p.Theme != ThemeLight && p.Theme != ThemeDark {
		p.Theme = ThemeLight
	}
	if p.StudyStreak < 0 {
		p.StudyStreak = 0
	}
}

// LectureKey builds the lectureProgress map key for a subject+lecture pair.
func LectureKey(subjectID, lectureID string) string {
	return subjectID + "_" + lectureID
}

// HasAchievement reports whether the achievement id is unlocked.
func (p *Profile) HasAchievement(id string) bool {
	for _, a := range p.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

// Accuracy is the lifetime answer accuracy as a percentage.
func (p *Profile) Accuracy() int {
	return quiz.Percentage(p.TotalCorrect, p.TotalQuestions)
}

// LatestLecturePercent returns the most recent attempt percentage for a
// subject+lecture pair, and whether the pair has been attempted at all.
func (p *Profile) LatestLecturePercent(subjectID, lectureID string) (int, bool) {
	attempts := p.LectureProgress[LectureKey(subjectID, lectureID)]
	if len(attempts) == 0 {
		return 0, false
	}
	return attempts[len(attempts)-1].Percentage, true
}
