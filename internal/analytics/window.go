package analytics

import "time"

// StartOfDay - jam 00:00:00 di hari yang sama (timezone mengikuti input).
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay - detik terakhir di hari yang sama.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// StartOfWeek - awal minggu berjalan, minggu dimulai hari Minggu.
func StartOfWeek(t time.Time) time.Time {
	return StartOfDay(t.AddDate(0, 0, -int(t.Weekday())))
}

// StartOfMonth - tanggal 1 bulan berjalan, jam 00:00.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// ResolveWindow - terjemahkan period dashboard ("today"/"week"/"month")
// jadi rentang tanggal inklusif yang berakhir di akhir hari ini.
// Period tidak dikenal dianggap "month".
func ResolveWindow(period string, now time.Time) (start, end time.Time) {
	end = EndOfDay(now)
	switch period {
	case "today":
		start = StartOfDay(now)
	case "week":
		start = StartOfWeek(now)
	default:
		start = StartOfMonth(now)
	}
	return start, end
}

// inWindow - date masuk rentang [start, end], inklusif dua sisi.
func inWindow(date, start, end time.Time) bool {
	return !date.Before(start) && !date.After(end)
}

// daysSince - selisih hari penuh antara since dan now, minimal 1 supaya
// pembagian kecepatan penjualan tidak pernah dibagi nol.
func daysSince(now, since time.Time) int {
	days := int(now.Sub(since).Hours() / 24)
	if days < 1 {
		days = 1
	}
	return days
}
