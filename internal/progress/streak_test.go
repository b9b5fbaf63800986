package progress

import (
	"testing"
	"time"
)

func day(d int) time.Time {
	return time.Date(2026, 3, d, 10, 0, 0, 0, time.UTC)
}

func TestTouchFirstStudyDay(t *testing.T) {
	p := NewProfile()
	Touch(p, day(1))

	if p.StudyStreak != 1 {
		t.Errorf("StudyStreak = %d, want 1", p.StudyStreak)
	}
	if p.LastStudyDate != "2026-03-01" {
		t.Errorf("LastStudyDate = %q, want 2026-03-01", p.LastStudyDate)
	}
}

func TestTouchSameDayNoOp(t *testing.T) {
	p := NewProfile()
	Touch(p, day(1))
	Touch(p, day(1).Add(8*time.Hour))

	if p.StudyStreak != 1 {
		t.Errorf("StudyStreak = %d, want 1 after second touch on the same day", p.StudyStreak)
	}
}

func TestTouchConsecutiveDaysIncrement(t *testing.T) {
	p := NewProfile()
	for d := 1; d <= 7; d++ {
		Touch(p, day(d))
	}

	if p.StudyStreak != 7 {
		t.Errorf("StudyStreak = %d, want 7", p.StudyStreak)
	}
}

func TestTouchGapResets(t *testing.T) {
	p := NewProfile()
	Touch(p, day(1))
	Touch(p, day(2))
	Touch(p, day(5))

	if p.StudyStreak != 1 {
		t.Errorf("StudyStreak = %d, want 1 after a two-day gap", p.StudyStreak)
	}
	if p.LastStudyDate != "2026-03-05" {
		t.Errorf("LastStudyDate = %q, want 2026-03-05", p.LastStudyDate)
	}
}

func TestTouchNearMidnight(t *testing.T) {
	// 23:59 on day 1 followed by 00:01 on day 2 is consecutive.
	p := NewProfile()
	Touch(p, time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC))
	Touch(p, time.Date(2026, 3, 2, 0, 1, 0, 0, time.UTC))

	if p.StudyStreak != 2 {
		t.Errorf("StudyStreak = %d, want 2 across midnight", p.StudyStreak)
	}
}

func TestTouchAcrossDSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	// 2026-03-08 is the spring-forward date in the US: that calendar day
	// is 23 hours long. The day pair must still count as consecutive.
	p := NewProfile()
	Touch(p, time.Date(2026, 3, 8, 12, 0, 0, 0, loc))
	Touch(p, time.Date(2026, 3, 9, 12, 0, 0, 0, loc))

	if p.StudyStreak != 2 {
		t.Errorf("StudyStreak = %d, want 2 across the DST transition", p.StudyStreak)
	}
}

func TestTouchCorruptStoredDateResets(t *testing.T) {
	p := NewProfile()
	p.StudyStreak = 5
	p.LastStudyDate = "not-a-date"

	Touch(p, day(3))

	if p.StudyStreak != 1 {
		t.Errorf("StudyStreak = %d, want 1 when the stored date is unreadable", p.StudyStreak)
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		prev string
		cur  string
		want int
	}{
		{"", "2026-03-01", -1},
		{"garbage", "2026-03-01", -1},
		{"2026-03-01", "2026-03-01", 0},
		{"2026-03-01", "2026-03-02", 1},
		{"2026-02-28", "2026-03-01", 1},
		{"2026-03-01", "2026-03-04", 3},
		{"2025-12-31", "2026-01-01", 1},
	}

	for _, tt := range tests {
		got := daysBetween(tt.prev, tt.cur, time.UTC)
		if got != tt.want {
			t.Errorf("daysBetween(%q, %q) = %d, want %d", tt.prev, tt.cur, got, tt.want)
		}
	}
}
