package ingest

import (
	"fmt"
	"math/rand"

	"warung-backend/internal/database"
	"warung-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Sumber transaksi voice/OCR di sini hanya simulasi: endpoint mengembalikan
// draft transaksi yang sudah "terbaca" dari katalog, frontend tinggal
// mengonfirmasi lalu mengirimnya ke POST /api/transactions. Tidak ada
// pengenalan suara atau OCR sungguhan, dan tidak ada yang disimpan.

type TransactionDraft struct {
	Product      string  `json:"product"`
	ProductID    string  `json:"product_id"`
	Quantity     int     `json:"quantity"`
	PricePerItem float64 `json:"price_per_item"`
	CostPerItem  float64 `json:"cost_per_item"`
	Source       string  `json:"source"`
	Transcript   string  `json:"transcript,omitempty"` // hanya untuk voice
	Simulated    bool    `json:"simulated"`
}

func randomProduct() (models.Product, error) {
	var products []models.Product
	if err := database.DB.Find(&products).Error; err != nil {
		return models.Product{}, err
	}
	if len(products) == 0 {
		return models.Product{}, fiber.NewError(fiber.StatusBadRequest, "Katalog masih kosong, tambah produk dulu")
	}
	return products[rand.Intn(len(products))], nil
}

// POST /api/ingest/ocr
// Simulasi scan struk belanja.
func OCRHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := randomProduct()
		if err != nil {
			return err
		}

		return c.JSON(TransactionDraft{
			Product:      p.Name,
			ProductID:    p.ID,
			Quantity:     1 + rand.Intn(3),
			PricePerItem: p.SellingPrice,
			CostPerItem:  p.CostPrice,
			Source:       string(models.SourceOCR),
			Simulated:    true,
		})
	}
}

// POST /api/ingest/voice
// Simulasi pengenalan suara.
func VoiceHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := randomProduct()
		if err != nil {
			return err
		}

		qty := 1 + rand.Intn(2)
		return c.JSON(TransactionDraft{
			Product:      p.Name,
			ProductID:    p.ID,
			Quantity:     qty,
			PricePerItem: p.SellingPrice,
			CostPerItem:  p.CostPrice,
			Source:       string(models.SourceVoice),
			Transcript:   fmt.Sprintf("catat penjualan %d %s", qty, p.Name),
			Simulated:    true,
		})
	}
}
