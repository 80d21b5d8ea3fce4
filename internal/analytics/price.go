package analytics

import (
	"fmt"
	"math"
	"time"

	"warung-backend/internal/models"
)

// priceRule - satu baris tabel keputusan harga. Rules dievaluasi berurutan
// dari atas, rule pertama yang cocok yang dipakai.
type priceRule struct {
	match func(avgDailySales, currentMargin float64) bool
	apply func(p models.Product, avgDailySales, currentMargin float64) (price float64, reasoning string)
}

var priceRules = []priceRule{
	{
		// laris dan margin masih di bawah 40% -> naikkan ke margin 40%
		match: func(avg, margin float64) bool { return avg > 5 && margin < 40 },
		apply: func(p models.Product, avg, margin float64) (float64, string) {
			return p.CostPrice * 1.4,
				fmt.Sprintf("Produk laris (%.1f item/hari). Potensi untuk menaikkan harga hingga margin 40%%.", avg)
		},
	},
	{
		// laris dan margin sudah cukup -> pertahankan harga
		match: func(avg, margin float64) bool { return avg > 5 },
		apply: func(p models.Product, avg, margin float64) (float64, string) {
			return p.SellingPrice,
				fmt.Sprintf("Harga sudah optimal dengan margin %.1f%% dan penjualan tinggi.", margin)
		},
	},
	{
		// lambat tapi margin masih tebal -> turunkan ke margin 25%
		match: func(avg, margin float64) bool { return avg < 1 && margin > 25 },
		apply: func(p models.Product, avg, margin float64) (float64, string) {
			return p.CostPrice * 1.25,
				fmt.Sprintf("Penjualan lambat (%.1f item/hari). Pertimbangkan turunkan harga ke margin 25%% untuk meningkatkan penjualan.", avg)
		},
	},
	{
		// lambat dan margin sudah tipis -> harga bukan masalahnya
		match: func(avg, margin float64) bool { return avg < 1 },
		apply: func(p models.Product, avg, margin float64) (float64, string) {
			return p.SellingPrice,
				fmt.Sprintf("Margin sudah rendah (%.1f%%). Pertimbangkan strategi marketing atau review produk.", margin)
		},
	},
	{
		// permintaan sedang (1 <= avg <= 5) -> pertahankan harga
		match: func(avg, margin float64) bool { return true },
		apply: func(p models.Product, avg, margin float64) (float64, string) {
			return p.SellingPrice,
				fmt.Sprintf("Harga sudah sesuai dengan penjualan %.1f item/hari dan margin %.1f%%.", avg, margin)
		},
	},
}

// RecommendPrice - rekomendasi harga jual berbasis tabel keputusan, bukan
// model statistik. Heuristiknya deterministik: produk dan riwayat yang sama
// selalu menghasilkan harga dan alasan yang sama. `now` disuntik dari caller
// supaya hasil bisa direproduksi untuk query historis dan mudah dites.
func RecommendPrice(p models.Product, transactions []models.Transaction, now time.Time) PriceRecommendation {
	rec := PriceRecommendation{
		ProductID:    p.ID,
		ProductName:  p.Name,
		CurrentPrice: p.SellingPrice,
	}

	matches := transactionsFor(p, transactions)
	if len(matches) == 0 {
		// belum pernah terjual: markup default 30% dari modal
		rec.RecommendedPrice = math.Round(p.CostPrice * 1.3)
		rec.PotentialProfit = rec.RecommendedPrice - p.CostPrice
		rec.Reasoning = "Belum ada data penjualan. Rekomendasi markup 30% dari harga modal."
		return rec
	}

	days := daysSince(now, earliestDate(matches))
	avgDailySales := float64(totalQuantity(matches)) / float64(days)

	currentMargin := 0.0
	if p.CostPrice > 0 {
		currentMargin = (p.SellingPrice - p.CostPrice) / p.CostPrice * 100
	}

	for _, rule := range priceRules {
		if !rule.match(avgDailySales, currentMargin) {
			continue
		}
		price, reasoning := rule.apply(p, avgDailySales, currentMargin)
		rec.RecommendedPrice = math.Round(price)
		rec.PotentialProfit = rec.RecommendedPrice - p.CostPrice
		rec.Reasoning = reasoning
		return rec
	}

	// tidak akan sampai sini, rule terakhir selalu cocok
	return rec
}
