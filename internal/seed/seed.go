package seed

import (
	"fmt"
	"math/rand"
	"time"

	"warung-backend/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Data demo untuk katalog: produk khas warung/UMKM dengan harga rupiah.

type productSeed struct {
	Name         string
	Category     string
	SellingPrice float64
	CostPrice    float64
	CurrentStock int
	MinStock     int
}

var demoProducts = []productSeed{
	{"Kopi Arabica Premium", "Makanan & Minuman", 45000, 25000, 150, 20},
	{"Teh Hijau Organik", "Makanan & Minuman", 35000, 18000, 85, 15},
	{"Kemeja Batik Pria", "Fashion", 185000, 110000, 35, 10},
	{"Sepatu Sneakers Canvas", "Fashion", 225000, 145000, 42, 8},
	{"Notebook A5 Premium", "Alat Tulis", 45000, 22000, 120, 25},
	{"Pulpen Gel 0.5mm", "Alat Tulis", 5000, 2500, 350, 50},
	{"Tas Ransel Laptop", "Aksesoris", 275000, 165000, 28, 5},
	{"Power Bank 20000mAh", "Elektronik", 185000, 115000, 55, 12},
	{"Minyak Goreng 2L", "Makanan & Minuman", 32000, 26000, 95, 20},
	{"Masker Kain 3 Ply", "Kesehatan", 15000, 8000, 200, 30},
}

var customerFirstNames = []string{"Budi", "Siti", "Ahmad", "Rina", "Joko", "Dewi", "Andi", "Sri", "Hendra", "Maya"}
var customerLastNames = []string{"Santoso", "Wijaya", "Pratama", "Kusuma", "Saputra", "Wati", "Putra", "Lestari", "Hermawan", "Suryani"}

var sources = []models.TransactionSource{models.SourceManual, models.SourceVoice, models.SourceOCR}

// Run - isi database dengan katalog demo plus riwayat transaksi 30 hari.
// Idempoten: kalau katalog sudah berisi produk, tidak melakukan apa-apa.
func Run(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("cek katalog gagal: %w", err)
	}
	if count > 0 {
		log.Info().Int64("products", count).Msg("katalog sudah berisi, seeding dilewati")
		return nil
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	products := make([]models.Product, 0, len(demoProducts))
	for _, s := range demoProducts {
		products = append(products, models.Product{
			ID:           uuid.NewString(),
			Name:         s.Name,
			Category:     s.Category,
			SellingPrice: s.SellingPrice,
			CostPrice:    s.CostPrice,
			CurrentStock: s.CurrentStock,
			MinStock:     s.MinStock,
		})
	}
	if err := db.Create(&products).Error; err != nil {
		return fmt.Errorf("produk demo gagal disimpan: %w", err)
	}

	transactions := generateTransactions(products, rng, time.Now())
	if err := db.Create(&transactions).Error; err != nil {
		return fmt.Errorf("transaksi demo gagal disimpan: %w", err)
	}

	log.Info().
		Int("products", len(products)).
		Int("transactions", len(transactions)).
		Msg("data demo selesai di-seed")
	return nil
}

// generateTransactions - 1-3 transaksi acak per hari untuk 30 hari terakhir,
// jam operasional 08:00-20:00.
func generateTransactions(products []models.Product, rng *rand.Rand, now time.Time) []models.Transaction {
	var transactions []models.Transaction

	for daysAgo := 0; daysAgo < 30; daysAgo++ {
		day := now.AddDate(0, 0, -daysAgo)
		perDay := rng.Intn(3) + 1

		for j := 0; j < perDay; j++ {
			p := products[rng.Intn(len(products))]
			quantity := rng.Intn(5) + 1

			date := time.Date(day.Year(), day.Month(), day.Day(),
				8+rng.Intn(12), rng.Intn(60), 0, 0, day.Location())

			customer := ""
			if rng.Float64() > 0.3 {
				customer = customerFirstNames[rng.Intn(len(customerFirstNames))] + " " +
					customerLastNames[rng.Intn(len(customerLastNames))]
			}

			transactions = append(transactions, models.Transaction{
				ID:           uuid.NewString(),
				Date:         date,
				Product:      p.Name,
				ProductID:    p.ID,
				Quantity:     quantity,
				PricePerItem: p.SellingPrice,
				CostPerItem:  p.CostPrice,
				TotalAmount:  float64(quantity) * p.SellingPrice,
				Source:       sources[rng.Intn(len(sources))],
				Customer:     customer,
			})
		}
	}

	return transactions
}
