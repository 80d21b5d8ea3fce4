package main

import (
	"strings"

	"warung-backend/internal/audit"
	"warung-backend/internal/config"
	"warung-backend/internal/dashboard"
	"warung-backend/internal/database"
	"warung-backend/internal/export"
	"warung-backend/internal/ingest"
	"warung-backend/internal/inventory"
	"warung-backend/internal/logger"
	"warung-backend/internal/sales"
	"warung-backend/internal/seed"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/rs/zerolog/log"
)

func main() {
	logger.Setup()

	cfg := config.Load()
	database.Init(cfg)

	if cfg.SeedOnBoot {
		if err := seed.Run(database.DB); err != nil {
			log.Fatal().Err(err).Msg("seeding gagal")
		}
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Error().Err(err).Msg("error tak terduga")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Terjadi kesalahan di server",
			})
		},
	})

	// CORS origins dipisah koma di env
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Katalog produk
	api.Get("/products", inventory.ListProductsHandler())
	api.Get("/products/low-stock", inventory.ListLowStockProductsHandler())
	api.Get("/products/:id", inventory.GetProductHandler())
	api.Post("/products", inventory.CreateProductHandler())
	api.Put("/products/:id", inventory.UpdateProductHandler())
	api.Post("/products/:id/adjust-stock", inventory.AdjustStockHandler())
	api.Delete("/products/:id", inventory.DeleteProductHandler())

	// Transaksi penjualan
	api.Post("/transactions", sales.CreateTransactionHandler())
	api.Get("/transactions", sales.ListTransactionsHandler())
	api.Delete("/transactions/:id", sales.DeleteTransactionHandler())

	// Sumber transaksi simulasi (voice & OCR)
	api.Post("/ingest/ocr", ingest.OCRHandler())
	api.Post("/ingest/voice", ingest.VoiceHandler())

	// Analitik
	api.Get("/analytics/profit-loss", dashboard.ProfitLossHandler())
	api.Get("/analytics/sales-trend", dashboard.SalesTrendHandler())
	api.Get("/analytics/best-sellers", dashboard.BestSellersHandler())
	api.Get("/analytics/price-recommendations", dashboard.PriceRecommendationsHandler())
	api.Get("/analytics/purchase-recommendations", dashboard.PurchaseRecommendationsHandler())
	api.Get("/dashboard/summary", dashboard.SummaryHandler())

	// Ekspor Excel
	api.Get("/export/transactions", export.TransactionsHandler())
	api.Get("/export/products", export.ProductsHandler())

	// Audit log
	api.Get("/audit-logs", audit.ListAuditLogsHandler())

	log.Info().Str("port", cfg.HTTPPort).Msg("server jalan")
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal().Err(err).Msg("server berhenti")
	}
}
