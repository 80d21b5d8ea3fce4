package analytics

import (
	"testing"
	"time"

	"warung-backend/internal/models"
)

func TestCalculateSalesTrendOneBucketPerDay(t *testing.T) {
	start := baseDay
	end := EndOfDay(baseDay.AddDate(0, 0, 6)) // 7 hari kalender

	transactions := []models.Transaction{
		saleAt(start.Add(9*time.Hour), "p1", "Kopi", 2, 30000, 18000),
		saleAt(start.Add(15*time.Hour), "p1", "Kopi", 1, 30000, 18000),
		saleAt(start.AddDate(0, 0, 4).Add(11*time.Hour), "p2", "Teh", 3, 10000, 6000),
	}

	points := CalculateSalesTrend(transactions, start, end)

	if len(points) != 7 {
		t.Fatalf("len(points) = %d, want 7 (termasuk hari kosong)", len(points))
	}

	if points[0].Revenue != 90000 || points[0].Transactions != 2 {
		t.Errorf("hari pertama = {revenue: %v, transactions: %d}, want {90000, 2}", points[0].Revenue, points[0].Transactions)
	}
	if points[4].Revenue != 30000 || points[4].Transactions != 1 {
		t.Errorf("hari kelima = {revenue: %v, transactions: %d}, want {30000, 1}", points[4].Revenue, points[4].Transactions)
	}

	// hari tanpa transaksi tetap ada sebagai entry nol
	for _, idx := range []int{1, 2, 3, 5, 6} {
		if points[idx].Revenue != 0 || points[idx].Transactions != 0 {
			t.Errorf("hari ke-%d seharusnya nol, got %+v", idx+1, points[idx])
		}
	}
}

func TestCalculateSalesTrendBucketDates(t *testing.T) {
	start := baseDay
	end := EndOfDay(baseDay.AddDate(0, 0, 2))

	points := CalculateSalesTrend(nil, start, end)

	if len(points) != 3 {
		t.Fatalf("len(points) = %d, want 3", len(points))
	}
	for i, p := range points {
		want := StartOfDay(start.AddDate(0, 0, i))
		if !p.Date.Equal(want) {
			t.Errorf("points[%d].Date = %v, want %v", i, p.Date, want)
		}
	}
}

func TestCalculateSalesTrendSingleDay(t *testing.T) {
	points := CalculateSalesTrend(nil, baseDay.Add(13*time.Hour), EndOfDay(baseDay))
	if len(points) != 1 {
		t.Fatalf("len(points) = %d, want 1", len(points))
	}
}

func TestCalculateSalesTrendUsesCalendarDay(t *testing.T) {
	// transaksi jam 23:30 masuk bucket hari itu, bukan jendela 24 jam berjalan
	late := saleAt(baseDay.Add(23*time.Hour+30*time.Minute), "p1", "Kopi", 1, 30000, 18000)

	points := CalculateSalesTrend([]models.Transaction{late}, baseDay, EndOfDay(baseDay.AddDate(0, 0, 1)))

	if points[0].Transactions != 1 {
		t.Errorf("transaksi malam harusnya masuk hari pertama, got %+v", points[0])
	}
	if points[1].Transactions != 0 {
		t.Errorf("hari kedua harusnya kosong, got %+v", points[1])
	}
}
