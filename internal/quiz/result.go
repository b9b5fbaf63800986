package quiz

import (
	"math"
	"time"
)

// Result is the outcome of one submitted quiz session. Created once per
// submission and never mutated; the caller hands it to the progress store.
type Result struct {
	AttemptID      string
	SubjectID      string
	LectureID      string
	CorrectCount   int
	TotalCount     int
	Percentage     int
	ElapsedSeconds int
	Timestamp      time.Time
}

// Percentage computes round(correct*100/total). A zero total means "no data
// yet" and yields 0 rather than a division error.
func Percentage(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) * 100 / float64(total)))
}
