package export

import (
	"fmt"
	"time"

	"warung-backend/internal/database"
	"warung-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

func sendWorkbook(c *fiber.Ctx, headers []string, rows [][]any, name string) error {
	f, err := buildWorkbook(headers, rows)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "File Excel gagal dibuat")
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "File Excel gagal ditulis")
	}

	filename := fmt.Sprintf("%s_%s.xlsx", name, time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

// GET /api/export/transactions?from=&to=
func TransactionsHandler() fiber.Handler {
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
			dbq = dbq.Where("date < ?", to.AddDate(0, 0, 1))
		}

		var transactions []models.Transaction
		if err := dbq.Order("date ASC").Find(&transactions).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Transaksi tidak bisa diambil")
		}

		return sendWorkbook(c, transactionHeaders, transactionRows(transactions), "Transaksi")
	}
}

// GET /api/export/products
func ProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var products []models.Product
		if err := database.DB.Order("created_at ASC").Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Produk tidak bisa diambil")
		}

		return sendWorkbook(c, productHeaders, productRows(products), "Produk")
	}
}
