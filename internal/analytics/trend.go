package analytics

import (
	"time"

	"warung-backend/internal/models"
)

// CalculateSalesTrend - satu bucket per hari kalender di rentang [start, end]
// inklusif. Hari tanpa transaksi tetap muncul sebagai entry nol, tidak
// dilewati, supaya grafik tidak bolong. Bucket memakai hari kalender lokal
// transaksi (00:00 sampai 23:59), bukan jendela 24 jam berjalan.
func CalculateSalesTrend(transactions []models.Transaction, start, end time.Time) []TrendPoint {
	var points []TrendPoint

	for day := StartOfDay(start); !day.After(end); day = day.AddDate(0, 0, 1) {
		dayEnd := EndOfDay(day)
		point := TrendPoint{Date: day}

		for _, t := range transactions {
			if !inWindow(t.Date, day, dayEnd) {
				continue
			}
			point.Revenue += t.TotalAmount
			point.Transactions++
		}

		points = append(points, point)
	}

	return points
}
