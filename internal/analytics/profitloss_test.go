package analytics

import (
	"testing"
	"time"

	"warung-backend/internal/models"
)

func saleAt(date time.Time, productID, name string, qty int, price, cost float64) models.Transaction {
	return models.Transaction{
		ID:           productID + "-" + date.Format("20060102150405"),
		Date:         date,
		Product:      name,
		ProductID:    productID,
		Quantity:     qty,
		PricePerItem: price,
		CostPerItem:  cost,
		TotalAmount:  float64(qty) * price,
		Source:       models.SourceManual,
	}
}

var baseDay = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

func TestCalculateProfitLoss(t *testing.T) {
	transactions := []models.Transaction{
		saleAt(baseDay.Add(10*time.Hour), "p1", "Kopi", 2, 30000, 18000), // revenue 60000, cost 36000
		saleAt(baseDay.AddDate(0, 0, 1), "p2", "Teh", 1, 40000, 24000),   // revenue 40000, cost 24000
	}

	got := CalculateProfitLoss(transactions, baseDay, EndOfDay(baseDay.AddDate(0, 0, 6)))

	if got.TotalRevenue != 100000 {
		t.Errorf("TotalRevenue = %v, want 100000", got.TotalRevenue)
	}
	if got.TotalCost != 60000 {
		t.Errorf("TotalCost = %v, want 60000", got.TotalCost)
	}
	if got.NetProfit != 40000 {
		t.Errorf("NetProfit = %v, want 40000", got.NetProfit)
	}
	if got.ProfitMargin != 40 {
		t.Errorf("ProfitMargin = %v, want 40", got.ProfitMargin)
	}
}

func TestCalculateProfitLossNetProfitDefinition(t *testing.T) {
	transactions := []models.Transaction{
		saleAt(baseDay, "p1", "Kopi", 3, 45000, 25000),
		saleAt(baseDay.AddDate(0, 0, 2), "p2", "Teh", 7, 5000, 2500),
		saleAt(baseDay.AddDate(0, 0, 3), "", "Gorengan", 4, 2000, 1000), // tanpa id katalog
	}

	got := CalculateProfitLoss(transactions, baseDay, EndOfDay(baseDay.AddDate(0, 0, 30)))

	wantCost := 3*25000.0 + 7*2500.0 + 4*1000.0
	if got.TotalCost != wantCost {
		t.Errorf("TotalCost = %v, want %v", got.TotalCost, wantCost)
	}
	if got.NetProfit != got.TotalRevenue-got.TotalCost {
		t.Errorf("NetProfit = %v, want TotalRevenue-TotalCost = %v", got.NetProfit, got.TotalRevenue-got.TotalCost)
	}
}

func TestCalculateProfitLossEmptyWindow(t *testing.T) {
	got := CalculateProfitLoss(nil, baseDay, EndOfDay(baseDay))

	if got.TotalRevenue != 0 || got.TotalCost != 0 || got.NetProfit != 0 {
		t.Errorf("empty input should yield zeros, got %+v", got)
	}
	if got.ProfitMargin != 0 {
		t.Errorf("ProfitMargin with zero revenue = %v, want 0", got.ProfitMargin)
	}
}

func TestCalculateProfitLossWindowIsInclusive(t *testing.T) {
	start := baseDay
	end := EndOfDay(baseDay.AddDate(0, 0, 2))

	transactions := []models.Transaction{
		saleAt(start, "p1", "Kopi", 1, 10000, 5000),                    // tepat di batas bawah
		saleAt(end, "p1", "Kopi", 1, 10000, 5000),                     // tepat di batas atas
		saleAt(start.Add(-time.Second), "p1", "Kopi", 1, 10000, 5000), // di luar
		saleAt(end.Add(time.Second), "p1", "Kopi", 1, 10000, 5000),    // di luar
	}

	got := CalculateProfitLoss(transactions, start, end)
	if got.TotalRevenue != 20000 {
		t.Errorf("TotalRevenue = %v, want 20000 (hanya transaksi di dalam batas inklusif)", got.TotalRevenue)
	}
}
