package seed

import (
	"math/rand"
	"testing"
	"time"

	"warung-backend/internal/models"

	"github.com/google/uuid"
)

func demoCatalog() []models.Product {
	products := make([]models.Product, 0, len(demoProducts))
	for _, s := range demoProducts {
		products = append(products, models.Product{
			ID:           uuid.NewString(),
			Name:         s.Name,
			SellingPrice: s.SellingPrice,
			CostPrice:    s.CostPrice,
		})
	}
	return products
}

func TestGenerateTransactionsCoversThirtyDays(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	transactions := generateTransactions(demoCatalog(), rng, now)

	if len(transactions) < 30 || len(transactions) > 90 {
		t.Fatalf("len = %d, want antara 30 dan 90 (1-3 transaksi per hari)", len(transactions))
	}

	earliest := now.AddDate(0, 0, -30)
	for _, tr := range transactions {
		if tr.Date.Before(earliest) || tr.Date.After(now.Add(24*time.Hour)) {
			t.Errorf("tanggal %v di luar rentang 30 hari terakhir", tr.Date)
		}
		if tr.Date.Hour() < 8 || tr.Date.Hour() >= 20 {
			t.Errorf("jam transaksi %d di luar jam operasional 08:00-20:00", tr.Date.Hour())
		}
	}
}

func TestGenerateTransactionsInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	transactions := generateTransactions(demoCatalog(), rng, time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC))

	for _, tr := range transactions {
		if tr.Quantity < 1 || tr.Quantity > 5 {
			t.Errorf("quantity = %d, want 1-5", tr.Quantity)
		}
		if tr.TotalAmount != float64(tr.Quantity)*tr.PricePerItem {
			t.Errorf("total %v != quantity %d * harga %v", tr.TotalAmount, tr.Quantity, tr.PricePerItem)
		}
		if tr.ID == "" || tr.ProductID == "" || tr.Product == "" {
			t.Errorf("field identitas kosong: %+v", tr)
		}
		switch tr.Source {
		case models.SourceManual, models.SourceVoice, models.SourceOCR:
		default:
			t.Errorf("source tidak dikenal: %q", tr.Source)
		}
	}
}
