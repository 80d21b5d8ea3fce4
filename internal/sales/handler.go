package sales

import (
	"time"

	"warung-backend/internal/audit"
	"warung-backend/internal/database"
	"warung-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type CreateTransactionRequest struct {
	Date         string   `json:"date"`       // RFC3339 atau "2006-01-02"; kosong = sekarang
	Product      string   `json:"product"`    // wajib kalau product_id kosong
	ProductID    string   `json:"product_id"` // opsional, transaksi bisa tercatat tanpa produk katalog
	Quantity     int      `json:"quantity"`
	PricePerItem *float64 `json:"price_per_item"` // kosong -> ambil dari katalog
	CostPerItem  *float64 `json:"cost_per_item"`  // kosong -> ambil dari katalog
	Source       string   `json:"source"`         // manual / voice / ocr, default manual
	Customer     string   `json:"customer"`
}

type TransactionResponse struct {
	ID           string  `json:"id"`
	Date         string  `json:"date"`
	Product      string  `json:"product"`
	ProductID    string  `json:"product_id"`
	Quantity     int     `json:"quantity"`
	PricePerItem float64 `json:"price_per_item"`
	CostPerItem  float64 `json:"cost_per_item"`
	TotalAmount  float64 `json:"total_amount"`
	Source       string  `json:"source"`
	Customer     string  `json:"customer"`
	CreatedAt    string  `json:"created_at"`
}

func toResponse(t models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           t.ID,
		Date:         t.Date.Format(time.RFC3339),
		Product:      t.Product,
		ProductID:    t.ProductID,
		Quantity:     t.Quantity,
		PricePerItem: t.PricePerItem,
		CostPerItem:  t.CostPerItem,
		TotalAmount:  t.TotalAmount,
		Source:       string(t.Source),
		Customer:     t.Customer,
		CreatedAt:    t.CreatedAt.Format(time.RFC3339),
	}
}

// parseDate - terima RFC3339 atau tanggal polos "YYYY-MM-DD".
func parseDate(s string) (time.Time, error) {
	if d, err := time.Parse(time.RFC3339, s); err == nil {
		return d, nil
	}
	return time.Parse("2006-01-02", s)
}

// resolveCatalog mencari produk katalog untuk sebuah transaksi dengan aturan
// yang sama seperti analitik: id dulu, fallback nama kalau id kosong. Id yang
// tidak ketemu itu error; nama yang tidak ketemu bukan, karena transaksi tanpa
// produk katalog tetap sah.
func resolveCatalog(productID, productName string, byID, byName func(string) (*models.Product, bool)) (*models.Product, error) {
	if productID != "" {
		p, ok := byID(productID)
		if !ok {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Produk tidak ditemukan di katalog")
		}
		return p, nil
	}
	if productName == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "product atau product_id wajib diisi")
	}
	p, _ := byName(productName)
	return p, nil
}

func lookupByID(id string) (*models.Product, bool) {
	var p models.Product
	if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
		return nil, false
	}
	return &p, true
}

func lookupByName(name string) (*models.Product, bool) {
	var p models.Product
	if err := database.DB.First(&p, "name = ?", name).Error; err != nil {
		return nil, false
	}
	return &p, true
}

func validSource(s string) (models.TransactionSource, bool) {
	switch models.TransactionSource(s) {
	case models.SourceManual, models.SourceVoice, models.SourceOCR:
		return models.TransactionSource(s), true
	case "":
		return models.SourceManual, true
	}
	return "", false
}

// POST /api/transactions
func CreateTransactionHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateTransactionRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Body request tidak valid")
		}

		if body.Quantity <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "quantity harus lebih dari 0")
		}

		source, ok := validSource(body.Source)
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "source harus manual, voice, atau ocr")
		}

		date := time.Now()
		if body.Date != "" {
			d, err := parseDate(body.Date)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Format tanggal harus RFC3339 atau 'YYYY-MM-DD'")
			}
			date = d
		}

		t := models.Transaction{
			ID:        uuid.NewString(),
			Date:      date,
			Product:   body.Product,
			ProductID: body.ProductID,
			Quantity:  body.Quantity,
			Source:    source,
			Customer:  body.Customer,
		}

		// Kalau transaksi menunjuk produk katalog: denormalisasi nama/id dan
		// pakai harga/modal katalog sebagai default
		catalogProduct, err := resolveCatalog(body.ProductID, body.Product, lookupByID, lookupByName)
		if err != nil {
			return err
		}
		if catalogProduct != nil {
			t.Product = catalogProduct.Name
			t.ProductID = catalogProduct.ID
			t.PricePerItem = catalogProduct.SellingPrice
			t.CostPerItem = catalogProduct.CostPrice
		}

		if body.PricePerItem != nil {
			t.PricePerItem = *body.PricePerItem
		}
		if body.CostPerItem != nil {
			t.CostPerItem = *body.CostPerItem
		}
		if t.PricePerItem < 0 || t.CostPerItem < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Harga tidak boleh negatif")
		}

		// Invarian: total selalu quantity * harga satuan, tidak pernah
		// dipercaya dari input
		t.TotalAmount = float64(t.Quantity) * t.PricePerItem

		if err := database.DB.Create(&t).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Transaksi gagal disimpan")
		}

		// Kurangi stok katalog, nilai lama diambil saat request ini (single writer)
		if catalogProduct != nil {
			newStock := catalogProduct.CurrentStock - t.Quantity
			if newStock < 0 {
				newStock = 0
			}
			if err := database.DB.Model(catalogProduct).Update("current_stock", newStock).Error; err != nil {
				log.Error().Err(err).Str("product_id", catalogProduct.ID).Msg("stok gagal dikurangi")
			} else {
				log.Info().
					Str("product", catalogProduct.Name).
					Int("from", catalogProduct.CurrentStock).
					Int("to", newStock).
					Msg("stok berkurang karena transaksi")
			}
		}

		if err := audit.WriteLog(audit.LogOptions{
			EntityType:  "transaction",
			EntityID:    t.ID,
			Action:      models.AuditActionCreate,
			Description: "Transaksi " + t.Product,
			After:       t,
		}); err != nil {
			log.Error().Err(err).Msg("audit log transaksi gagal")
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(t))
	}
}

// GET /api/transactions?from=2025-03-01&to=2025-03-31&source=manual&product_id=xxx
func ListTransactionsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Transaction{})

		if fromStr := c.Query("from"); fromStr != "" {
			from, err := time.Parse("2006-01-02", fromStr)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "from tidak valid (YYYY-MM-DD)")
			}
			dbq = dbq.Where("date >= ?", from)
		}
		if toStr := c.Query("to"); toStr != "" {
			to, err := time.Parse("2006-01-02", toStr)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "to tidak valid (YYYY-MM-DD)")
			}
			// inklusif sampai akhir hari
			dbq = dbq.Where("date < ?", to.AddDate(0, 0, 1))
		}
		if source := c.Query("source"); source != "" {
			if _, ok := validSource(source); !ok {
				return fiber.NewError(fiber.StatusBadRequest, "source harus manual, voice, atau ocr")
			}
			dbq = dbq.Where("source = ?", source)
		}
		if productID := c.Query("product_id"); productID != "" {
			dbq = dbq.Where("product_id = ?", productID)
		}

		var transactions []models.Transaction
		if err := dbq.Order("date DESC, created_at DESC").Find(&transactions).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Transaksi tidak bisa diambil")
		}

		res := make([]TransactionResponse, 0, len(transactions))
		for _, t := range transactions {
			res = append(res, toResponse(t))
		}
		return c.JSON(res)
	}
}

// DELETE /api/transactions/:id
// Engine tidak pernah menghapus transaksi; ini operasi store untuk koreksi input.
func DeleteTransactionHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var t models.Transaction
		if err := database.DB.First(&t, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Transaksi tidak ditemukan")
		}

		if err := database.DB.Delete(&t).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Transaksi gagal dihapus")
		}

		if err := audit.WriteLog(audit.LogOptions{
			EntityType:  "transaction",
			EntityID:    t.ID,
			Action:      models.AuditActionDelete,
			Description: "Hapus transaksi " + t.Product,
			Before:      t,
		}); err != nil {
			log.Error().Err(err).Msg("audit log transaksi gagal")
		}

		return c.JSON(fiber.Map{"deleted": true})
	}
}
