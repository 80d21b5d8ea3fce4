package analytics

import (
	"testing"
	"time"
)

func TestResolveWindow(t *testing.T) {
	// Rabu, 12 Maret 2025
	ref := time.Date(2025, 3, 12, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		period    string
		wantStart time.Time
	}{
		{"today", time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)},
		{"week", time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)}, // minggu dimulai hari Minggu
		{"month", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},       // default bulan
		{"yearly", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)}, // period asing -> bulan
	}

	for _, tt := range tests {
		t.Run("period_"+tt.period, func(t *testing.T) {
			start, end := ResolveWindow(tt.period, ref)
			if !start.Equal(tt.wantStart) {
				t.Errorf("start = %v, want %v", start, tt.wantStart)
			}
			if !end.Equal(EndOfDay(ref)) {
				t.Errorf("end = %v, want akhir hari ini %v", end, EndOfDay(ref))
			}
		})
	}
}

func TestStartOfWeekOnSunday(t *testing.T) {
	sunday := time.Date(2025, 3, 9, 18, 0, 0, 0, time.UTC)
	if got := StartOfWeek(sunday); !got.Equal(time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("StartOfWeek(minggu) = %v, want hari itu juga jam 00:00", got)
	}
}

func TestDaysSinceFloorsAtOne(t *testing.T) {
	ref := time.Date(2025, 3, 12, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		since time.Time
		want  int
	}{
		{"baru sejam lalu", ref.Add(-time.Hour), 1},
		{"tepat sekarang", ref, 1},
		{"dua hari penuh", ref.Add(-48 * time.Hour), 2},
		{"36 jam dibulatkan ke bawah", ref.Add(-36 * time.Hour), 1},
		{"sepuluh hari", ref.AddDate(0, 0, -10), 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := daysSince(ref, tt.since); got != tt.want {
				t.Errorf("daysSince = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEndOfDay(t *testing.T) {
	ref := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)
	end := EndOfDay(ref)

	if end.Day() != 12 || end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 {
		t.Errorf("EndOfDay = %v, want 12 Maret 23:59:59", end)
	}
	if !end.Before(StartOfDay(ref).AddDate(0, 0, 1)) {
		t.Errorf("EndOfDay harus sebelum awal hari berikutnya")
	}
}
