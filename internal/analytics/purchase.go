package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"warung-backend/internal/models"
)

// RecommendPurchases - daftar produk yang perlu dibeli ulang, diurutkan dari
// yang paling mendesak. daysToForecast = horizon perkiraan kebutuhan stok
// dalam hari. `now` disuntik dari caller, sama seperti RecommendPrice.
//
// Produk dengan stok di atas 2x minimum dianggap aman dan tidak pernah
// muncul di daftar, berapapun kecepatan penjualannya.
func RecommendPurchases(products []models.Product, transactions []models.Transaction, daysToForecast int, now time.Time) []PurchaseRecommendation {
	var recs []PurchaseRecommendation

	for _, p := range products {
		if p.CurrentStock > p.MinStock*2 {
			continue
		}

		matches := transactionsFor(p, transactions)

		if len(matches) == 0 {
			// tanpa riwayat penjualan hanya stok di bawah minimum yang diisi ulang
			if p.CurrentStock <= p.MinStock {
				recs = append(recs, PurchaseRecommendation{
					ProductID:           p.ID,
					ProductName:         p.Name,
					CurrentStock:        p.CurrentStock,
					RecommendedQuantity: p.MinStock * 2,
					SalesVelocity:       0,
					Reasoning:           "Stok di bawah minimum. Belum ada data penjualan, rekomendasi isi ulang ke 2x stok minimum.",
				})
			}
			continue
		}

		days := daysSince(now, earliestDate(matches))
		velocity := float64(totalQuantity(matches)) / float64(days)

		forecastedDemand := velocity * float64(daysToForecast)
		stockNeeded := forecastedDemand - float64(p.CurrentStock)

		switch {
		case stockNeeded > 0:
			daysOfStockLeft := 0.0
			if velocity > 0 {
				daysOfStockLeft = float64(p.CurrentStock) / velocity
			}
			qty := int(math.Ceil(stockNeeded))
			recs = append(recs, PurchaseRecommendation{
				ProductID:           p.ID,
				ProductName:         p.Name,
				CurrentStock:        p.CurrentStock,
				RecommendedQuantity: qty,
				SalesVelocity:       velocity,
				Reasoning: fmt.Sprintf(
					"Dengan penjualan %.1f item/hari, stok saat ini hanya cukup untuk %.0f hari. Rekomendasi beli %d item untuk %d hari ke depan.",
					velocity, daysOfStockLeft, qty, daysToForecast),
			})
		case p.CurrentStock <= p.MinStock:
			qty := p.MinStock * 2
			if forecast := int(math.Ceil(forecastedDemand)); forecast > qty {
				qty = forecast
			}
			recs = append(recs, PurchaseRecommendation{
				ProductID:           p.ID,
				ProductName:         p.Name,
				CurrentStock:        p.CurrentStock,
				RecommendedQuantity: qty,
				SalesVelocity:       velocity,
				Reasoning: fmt.Sprintf(
					"Stok hampir habis. Rekomendasi isi ulang meskipun penjualan relatif lambat (%.1f item/hari).", velocity),
			})
		}
	}

	// paling mendesak dulu: kecepatan penjualan dibagi sisa stok
	sort.SliceStable(recs, func(i, j int) bool {
		return urgency(recs[i]) > urgency(recs[j])
	})

	return recs
}

func urgency(r PurchaseRecommendation) float64 {
	stock := r.CurrentStock
	if stock < 1 {
		stock = 1
	}
	return r.SalesVelocity / float64(stock)
}
