package rewards

import (
	"testing"
	"time"
)

func day(offset int) time.Time {
	base := time.Date(2026, 3, 10, 15, 30, 0, 0, time.Local)
	return base.AddDate(0, 0, offset)
}

func TestLongestDayStreak(t *testing.T) {
	tests := []struct {
		name   string
		stamps []time.Time
		want   int
	}{
		{"empty", nil, 0},
		{"single day", []time.Time{day(0)}, 1},
		{"same day twice", []time.Time{day(0), day(0).Add(2 * time.Hour)}, 1},
		{"three consecutive", []time.Time{day(0), day(1), day(2)}, 3},
		{"gap resets", []time.Time{day(0), day(1), day(3), day(4), day(5)}, 3},
		{"unordered input", []time.Time{day(2), day(0), day(1)}, 3},
		{"zero times ignored", []time.Time{{}, day(0), day(1)}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LongestDayStreak(tt.stamps); got != tt.want {
				t.Errorf("streak = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestKnownKind(t *testing.T) {
	for _, kind := range []string{
		KindLearnedCount, KindGameCount, KindContinuousDays,
		KindCategoriesLearned, KindPerfectAnswer,
	} {
		if !KnownKind(kind) {
			t.Errorf("expected %q to be known", kind)
		}
	}
	if KnownKind("correct_streak") {
		t.Error("correct_streak should be unknown")
	}
}
