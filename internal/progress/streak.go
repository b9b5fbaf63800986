package progress

import (
	"math"
	"time"
)

// dateLayout is the calendar-date form stored in LastStudyDate. Comparing
// dates rather than raw timestamp deltas keeps streaks stable across DST
// shifts and near-midnight submissions.
const dateLayout = "2006-01-02"

// Touch records study activity for the calendar date of now and updates the
// streak: a second touch on the same day is a no-op, a touch on the next
// day increments, and any longer gap resets the streak to 1. The caller's
// enclosing persist covers the mutation.
func Touch(p *Profile, now time.Time) {
	today := now.Format(dateLayout)
	if p.LastStudyDate == today {
		return
	}

	switch daysBetween(p.LastStudyDate, today, now.Location()) {
	case 1:
		p.StudyStreak++
	default:
		p.StudyStreak = 1
	}
	p.LastStudyDate = today
}

// daysBetween returns the absolute calendar-day distance between two stored
// dates, or -1 when the previous date is unset or unparseable.
func daysBetween(prev, cur string, loc *time.Location) int {
	if prev == "" {
		return -1
	}
	a, err := time.ParseInLocation(dateLayout, prev, loc)
	if err != nil {
		return -1
	}
	b, err := time.ParseInLocation(dateLayout, cur, loc)
	if err != nil {
		return -1
	}
	// Round absorbs the fractional day a DST transition introduces.
	days := int(math.Round(math.Abs(b.Sub(a).Hours()) / 24))
	return days
}
