package analytics

import (
	"time"

	"warung-backend/internal/models"
)

// matchesProduct - transaksi milik produk ini atau bukan.
// Aturan kanonik: cocokkan lewat product_id; kalau transaksi tidak membawa
// id (produk belum ada di katalog saat dicatat), fallback ke nama.
func matchesProduct(t models.Transaction, p models.Product) bool {
	if t.ProductID != "" {
		return t.ProductID == p.ID
	}
	return t.Product == p.Name
}

// transactionsFor - subset transaksi yang cocok dengan produk, urutan asli
// dipertahankan.
func transactionsFor(p models.Product, transactions []models.Transaction) []models.Transaction {
	var matches []models.Transaction
	for _, t := range transactions {
		if matchesProduct(t, p) {
			matches = append(matches, t)
		}
	}
	return matches
}

// earliestDate - tanggal transaksi paling awal dari subset yang tidak kosong.
func earliestDate(transactions []models.Transaction) time.Time {
	earliest := transactions[0].Date
	for _, t := range transactions[1:] {
		if t.Date.Before(earliest) {
			earliest = t.Date
		}
	}
	return earliest
}

// totalQuantity - jumlah unit terjual dari subset transaksi.
func totalQuantity(transactions []models.Transaction) int {
	total := 0
	for _, t := range transactions {
		total += t.Quantity
	}
	return total
}
