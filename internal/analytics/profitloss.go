package analytics

import (
	"time"

	"warung-backend/internal/models"
)

// CalculateProfitLoss - ringkasan laba/rugi untuk transaksi di rentang
// [start, end] inklusif. Set kosong menghasilkan semua nilai nol tanpa error.
func CalculateProfitLoss(transactions []models.Transaction, start, end time.Time) ProfitLoss {
	result := ProfitLoss{
		StartDate: start,
		EndDate:   end,
	}

	for _, t := range transactions {
		if !inWindow(t.Date, start, end) {
			continue
		}
		result.TotalRevenue += t.TotalAmount
		result.TotalCost += t.CostPerItem * float64(t.Quantity)
	}

	result.NetProfit = result.TotalRevenue - result.TotalCost
	if result.TotalRevenue > 0 {
		result.ProfitMargin = result.NetProfit / result.TotalRevenue * 100
	}

	return result
}
