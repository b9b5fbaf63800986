package content

import "fmt"

// Difficulty is the question difficulty tag.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists all valid difficulty values in ascending order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Question is a single multiple-choice question. Immutable once loaded.
type Question struct {
	LectureID    string     `json:"lecture"`
	Prompt       string     `json:"question"`
	Category     string     `json:"category"`
	Difficulty   Difficulty `json:"difficulty"`
	Hint         string     `json:"hint"`
	Options      []string   `json:"options"`
	CorrectIndex int        `json:"correct"`
}

// Validate checks the structural invariants a loaded question must hold.
func (q *Question) Validate() error {
	if q.Prompt == "" {
		return fmt.Errorf("question has empty prompt")
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("question %q has %d options, need at least 2", q.Prompt, len(q.Options))
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return fmt.Errorf("question %q has correct index %d out of range [0,%d)", q.Prompt, q.CorrectIndex, len(q.Options))
	}
	switch q.Difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		return fmt.Errorf("question %q has unknown difficulty %q", q.Prompt, q.Difficulty)
	}
	return nil
}
