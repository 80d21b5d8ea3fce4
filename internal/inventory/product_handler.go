package inventory

import (
	"strings"
	"time"

	"warung-backend/internal/audit"
	"warung-backend/internal/database"
	"warung-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type ProductResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	SellingPrice float64 `json:"selling_price"`
	CostPrice    float64 `json:"cost_price"`
	CurrentStock int     `json:"current_stock"`
	MinStock     int     `json:"min_stock"`
	LowStock     bool    `json:"low_stock"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

type CreateProductRequest struct {
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	SellingPrice float64 `json:"selling_price"`
	CostPrice    float64 `json:"cost_price"`
	CurrentStock int     `json:"current_stock"`
	MinStock     int     `json:"min_stock"`
}

type UpdateProductRequest struct {
	Name         *string  `json:"name"`
	Category     *string  `json:"category"`
	SellingPrice *float64 `json:"selling_price"`
	CostPrice    *float64 `json:"cost_price"`
	CurrentStock *int     `json:"current_stock"`
	MinStock     *int     `json:"min_stock"`
}

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Category:     p.Category,
		SellingPrice: p.SellingPrice,
		CostPrice:    p.CostPrice,
		CurrentStock: p.CurrentStock,
		MinStock:     p.MinStock,
		LowStock:     p.IsLowStock(),
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    p.UpdatedAt.Format(time.RFC3339),
	}
}

// GET /api/products?category=Fashion
func ListProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Product{})

		if category := c.Query("category"); category != "" {
			dbq = dbq.Where("category = ?", category)
		}

		var products []models.Product
		if err := dbq.Order("created_at ASC").Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Produk tidak bisa diambil")
		}

		res := make([]ProductResponse, 0, len(products))
		for _, p := range products {
			res = append(res, toProductResponse(p))
		}
		return c.JSON(res)
	}
}

// GET /api/products/low-stock
// Produk yang stoknya sudah menyentuh ambang minimum, untuk widget stok.
func ListLowStockProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var products []models.Product
		if err := database.DB.
			Where("current_stock <= min_stock").
			Order("current_stock ASC").
			Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Produk tidak bisa diambil")
		}

		res := make([]ProductResponse, 0, len(products))
		for _, p := range products {
			res = append(res, toProductResponse(p))
		}
		return c.JSON(res)
	}
}

// GET /api/products/:id
func GetProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var p models.Product
		if err := database.DB.First(&p, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Produk tidak ditemukan")
		}
		return c.JSON(toProductResponse(p))
	}
}

// POST /api/products
func CreateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Body request tidak valid")
		}

		body.Name = strings.TrimSpace(body.Name)
		body.Category = strings.TrimSpace(body.Category)

		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name wajib diisi")
		}
		if body.SellingPrice < 0 || body.CostPrice < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Harga tidak boleh negatif")
		}
		if body.CurrentStock < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "current_stock tidak boleh negatif")
		}
		if body.MinStock <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "min_stock harus lebih dari 0")
		}

		p := models.Product{
			ID:           uuid.NewString(),
			Name:         body.Name,
			Category:     body.Category,
			SellingPrice: body.SellingPrice,
			CostPrice:    body.CostPrice,
			CurrentStock: body.CurrentStock,
			MinStock:     body.MinStock,
		}

		if err := database.DB.Create(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Produk gagal disimpan")
		}

		if err := audit.WriteLog(audit.LogOptions{
			EntityType:  "product",
			EntityID:    p.ID,
			Action:      models.AuditActionCreate,
			Description: "Produk baru " + p.Name,
			After:       p,
		}); err != nil {
			log.Error().Err(err).Msg("audit log produk gagal")
		}

		return c.Status(fiber.StatusCreated).JSON(toProductResponse(p))
	}
}

// PUT /api/products/:id
func UpdateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var p models.Product
		if err := database.DB.First(&p, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Produk tidak ditemukan")
		}
		before := p

		var body UpdateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Body request tidak valid")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "name tidak boleh kosong")
			}
			p.Name = name
		}
		if body.Category != nil {
			p.Category = strings.TrimSpace(*body.Category)
		}
		if body.SellingPrice != nil {
			if *body.SellingPrice < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "selling_price tidak boleh negatif")
			}
			p.SellingPrice = *body.SellingPrice
		}
		if body.CostPrice != nil {
			if *body.CostPrice < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "cost_price tidak boleh negatif")
			}
			p.CostPrice = *body.CostPrice
		}
		if body.CurrentStock != nil {
			if *body.CurrentStock < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "current_stock tidak boleh negatif")
			}
			p.CurrentStock = *body.CurrentStock
		}
		if body.MinStock != nil {
			if *body.MinStock <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "min_stock harus lebih dari 0")
			}
			p.MinStock = *body.MinStock
		}

		if err := database.DB.Save(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Produk gagal diperbarui")
		}

		if err := audit.WriteLog(audit.LogOptions{
			EntityType:  "product",
			EntityID:    p.ID,
			Action:      models.AuditActionUpdate,
			Description: "Ubah produk " + p.Name,
			Before:      before,
			After:       p,
		}); err != nil {
			log.Error().Err(err).Msg("audit log produk gagal")
		}

		return c.JSON(toProductResponse(p))
	}
}

type AdjustStockRequest struct {
	Delta int    `json:"delta"` // positif = barang masuk, negatif = koreksi keluar
	Note  string `json:"note"`
}

// POST /api/products/:id/adjust-stock
// Koreksi stok manual (barang masuk, stok opname). Hasil akhir tidak boleh negatif.
func AdjustStockHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var p models.Product
		if err := database.DB.First(&p, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Produk tidak ditemukan")
		}
		before := p

		var body AdjustStockRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Body request tidak valid")
		}
		if body.Delta == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "delta tidak boleh 0")
		}

		newStock := p.CurrentStock + body.Delta
		if newStock < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Stok tidak boleh jadi negatif")
		}
		p.CurrentStock = newStock

		if err := database.DB.Model(&p).Update("current_stock", newStock).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Stok gagal diperbarui")
		}

		desc := "Koreksi stok " + p.Name
		if body.Note != "" {
			desc += ": " + body.Note
		}
		if err := audit.WriteLog(audit.LogOptions{
			EntityType:  "product",
			EntityID:    p.ID,
			Action:      models.AuditActionUpdate,
			Description: desc,
			Before:      before,
			After:       p,
		}); err != nil {
			log.Error().Err(err).Msg("audit log produk gagal")
		}

		return c.JSON(toProductResponse(p))
	}
}

// DELETE /api/products/:id
// Transaksi lama yang menunjuk produk ini tetap tersimpan; analitik akan
// memperlakukannya sebagai transaksi tanpa padanan katalog.
func DeleteProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var p models.Product
		if err := database.DB.First(&p, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Produk tidak ditemukan")
		}

		if err := database.DB.Delete(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Produk gagal dihapus")
		}

		if err := audit.WriteLog(audit.LogOptions{
			EntityType:  "product",
			EntityID:    p.ID,
			Action:      models.AuditActionDelete,
			Description: "Hapus produk " + p.Name,
			Before:      p,
		}); err != nil {
			log.Error().Err(err).Msg("audit log produk gagal")
		}

		return c.JSON(fiber.Map{"deleted": true})
	}
}
