package progress

import (
	"fmt"

	"github.com/omark/quizdeck/internal/notify"
)

// Achievement is a one-time unlockable badge with a fixed predicate over
// the profile. Predicates are evaluated in table order against the profile
// state after the triggering update has been applied.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Unlocked    func(p *Profile) bool
}

// Achievements returns the fixed achievement table in evaluation order.
func Achievements() []Achievement {
	return []Achievement{
		{
			ID:          "first_quiz",
			Name:        "First Quiz",
			Description: "Complete your first quiz",
			Icon:        "🏆",
			Unlocked:    func(p *Profile) bool { return p.TotalQuizzes >= 1 },
		},
		{
			ID:          "perfect_score",
			Name:        "Perfect Score",
			Description: "Score 100% on a quiz",
			Icon:        "🌟",
			Unlocked: func(p *Profile) bool {
				for _, rec := range p.QuizHistory {
					if rec.Percentage == 100 {
						return true
					}
				}
				return false
			},
		},
		{
			ID:          "streak_7",
			Name:        "7-Day Streak",
			Description: "Study 7 days in a row",
			Icon:        "🔥",
			Unlocked:    func(p *Profile) bool { return p.StudyStreak >= 7 },
		},
		{
			ID:          "quiz_master",
			Name:        "Quiz Master",
			Description: "Complete 10 quizzes",
			Icon:        "👑",
			Unlocked:    func(p *Profile) bool { return p.TotalQuizzes >= 10 },
		},
		{
			ID:          "century",
			Name:        "Century",
			Description: "Answer 100 questions correctly",
			Icon:        "💯",
			Unlocked:    func(p *Profile) bool { return p.TotalCorrect >= 100 },
		},
	}
}

// AchievementByID returns the table entry for id, or nil.
func AchievementByID(id string) *Achievement {
	all := Achievements()
	for i := range all {
		if all[i].ID == id {
			return &all[i]
		}
	}
	return nil
}

// EvaluateAchievements unlocks every achievement whose predicate holds and
// that is not yet in the profile's set, notifying the sink per unlock.
// Idempotent: a second evaluation with unchanged state unlocks nothing.
// Returns the newly unlocked ids in table order.
func EvaluateAchievements(p *Profile, sink notify.Sink) []string {
	var unlocked []string
	for _, a := range Achievements() {
		if p.HasAchievement(a.ID) || !a.Unlocked(p) {
			continue
		}
		p.Achievements = append(p.Achievements, a.ID)
		unlocked = append(unlocked, a.ID)
		if sink != nil {
			sink.Notify(fmt.Sprintf("🎉 New Achievement: %s", a.Name), notify.SeveritySuccess)
		}
	}
	return unlocked
}
