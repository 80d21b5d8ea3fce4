package analytics

import (
	"sort"

	"warung-backend/internal/models"
)

// groupKey - kunci pengelompokan best seller: product_id kalau ada,
// fallback ke nama produk kalau transaksi tidak membawa id.
func groupKey(t models.Transaction) string {
	if t.ProductID != "" {
		return t.ProductID
	}
	return t.Product
}

// BestSellers - ranking produk berdasarkan total unit terjual, menurun.
// Seri kuantitas mempertahankan urutan kemunculan pertama di riwayat
// transaksi (sort stabil). Kalau produk distinct kurang dari limit,
// semuanya dikembalikan apa adanya.
func BestSellers(transactions []models.Transaction, limit int) []BestSeller {
	totals := make(map[string]*BestSeller)
	var order []string

	for _, t := range transactions {
		key := groupKey(t)
		entry, ok := totals[key]
		if !ok {
			entry = &BestSeller{
				ProductID:   t.ProductID,
				ProductName: t.Product,
			}
			totals[key] = entry
			order = append(order, key)
		}
		entry.QuantitySold += t.Quantity
		entry.Revenue += t.TotalAmount
	}

	result := make([]BestSeller, 0, len(order))
	for _, key := range order {
		result = append(result, *totals[key])
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].QuantitySold > result[j].QuantitySold
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}
