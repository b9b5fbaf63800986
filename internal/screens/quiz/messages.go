package quiz

import (
	"github.com/omark/quizdeck/internal/content"
	qz "github.com/omark/quizdeck/internal/quiz"
)

// loadedMsg is sent when the question set for the quiz has been fetched.
type loadedMsg struct {
	Questions []content.Question
	Err       error
}

// restoredMsg is sent when a resumable snapshot for this subject and
// lecture was found instead of starting fresh.
type restoredMsg struct {
	Snap qz.Snapshot
}

// timerTickMsg updates the elapsed-time display once per second. Gen
// guards against ticks from a superseded timer loop.
type timerTickMsg struct {
	Gen int
}
