package match

import (
	"math"
	"testing"
	"time"

	"gavelmatch/internal/records"
)

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDateScoreZeroDistanceIsOne(t *testing.T) {
	got := DateScore(day("2024-03-05"), day("2024-03-05"), 3)
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("DateScore(0 days) = %v, want 1.0", got)
	}
}

func TestDateScoreMonotonicDecay(t *testing.T) {
	base := day("2024-03-05")
	prev := DateScore(base, base, 3)
	for distance := 1; distance <= 3; distance++ {
		got := DateScore(base, base.AddDate(0, 0, distance), 3)
		if got > prev {
			t.Errorf("DateScore increased at distance %d: %v > %v", distance, got, prev)
		}
		prev = got
	}
}

func TestDateScoreLinearValues(t *testing.T) {
	base := day("2024-03-05")
	tests := []struct {
		distance int
		want     float64
	}{
		{0, 1.0},
		{1, 2.0 / 3.0},
		{2, 1.0 / 3.0},
		{3, 0.0},
	}
	for _, tt := range tests {
		got := DateScore(base, base.AddDate(0, 0, tt.distance), 3)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("DateScore(distance %d) = %v, want %v", tt.distance, got, tt.want)
		}
	}
}

func TestDateScoreBeyondWindow(t *testing.T) {
	base := day("2024-03-05")
	if got := DateScore(base, base.AddDate(0, 0, 4), 3); got != 0 {
		t.Errorf("DateScore(beyond window) = %v, want 0", got)
	}
	if got := DateScore(base, base.AddDate(0, 0, -10), 3); got != 0 {
		t.Errorf("DateScore(far past) = %v, want 0", got)
	}
}

func TestDaysApartSymmetric(t *testing.T) {
	a, b := day("2024-03-05"), day("2024-03-08")
	if DaysApart(a, b) != 3 || DaysApart(b, a) != 3 {
		t.Errorf("DaysApart not symmetric: %d, %d", DaysApart(a, b), DaysApart(b, a))
	}
}

func TestTypeScore(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		category records.Category
		want     float64
	}{
		{"markup agreement", "Full Committee Markup", records.CategoryMarkup, 1.0},
		{"hearing agreement", "Hearing on Broadband Access", records.CategoryRegularSession, 1.0},
		{"explicit mismatch", "Full Committee Markup", records.CategoryRegularSession, 0.0},
		{"video neutral", "Broadband Access Discussion Part 2", records.CategoryMarkup, 0.5},
		{"event unknown", "Hearing on Broadband Access", records.CategoryUnknown, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TypeScore(tt.title, tt.category); got != tt.want {
				t.Errorf("TypeScore(%q, %s) = %v, want %v", tt.title, tt.category, got, tt.want)
			}
		})
	}
}

func TestTitleScoreBounds(t *testing.T) {
	got := TitleScore("Markup of H.R. 1234", "Markup of H.R. 1234")
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("TitleScore(identical) = %v, want 1.0", got)
	}
	if got := TitleScore("pipeline safety", "telehealth access"); got != 0 {
		t.Errorf("TitleScore(disjoint) = %v, want 0", got)
	}
}
