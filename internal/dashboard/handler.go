package dashboard

import (
	"fmt"
	"time"

	"warung-backend/internal/analytics"
	"warung-backend/internal/database"
	"warung-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Label tanggal dibentuk di layer ini, bukan di engine: engine hanya
// mengembalikan nilai tanggal mentah.

type ProfitLossResponse struct {
	Period       string  `json:"period"` // label "01 Mar 2025 - 31 Mar 2025"
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	TotalRevenue float64 `json:"total_revenue"`
	TotalCost    float64 `json:"total_cost"`
	NetProfit    float64 `json:"net_profit"`
	ProfitMargin float64 `json:"profit_margin"`
}

type TrendPointResponse struct {
	Date         string  `json:"date"` // "01 Mar"
	Revenue      float64 `json:"revenue"`
	Transactions int     `json:"transactions"`
}

type SummaryResponse struct {
	ProfitLoss              ProfitLossResponse                 `json:"profit_loss"`
	SalesTrend              []TrendPointResponse               `json:"sales_trend"`
	BestSellers             []analytics.BestSeller             `json:"best_sellers"`
	PriceRecommendations    []analytics.PriceRecommendation    `json:"price_recommendations"`
	PurchaseRecommendations []analytics.PurchaseRecommendation `json:"purchase_recommendations"`
}

// resolveWindow - rentang tanggal dari query: ?from=&to= (YYYY-MM-DD) menang
// atas ?period=today|week|month. Tanpa keduanya: bulan berjalan.
func resolveWindow(c *fiber.Ctx, now time.Time) (time.Time, time.Time, error) {
	fromStr := c.Query("from")
	toStr := c.Query("to")

	if fromStr != "" || toStr != "" {
		if fromStr == "" || toStr == "" {
			return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "from dan to harus diisi bersama (YYYY-MM-DD)")
		}
		from, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "from tidak valid")
		}
		to, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "to tidak valid")
		}
		if to.Before(from) {
			return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "to tidak boleh sebelum from")
		}
		return from, analytics.EndOfDay(to), nil
	}

	start, end := analytics.ResolveWindow(c.Query("period", "month"), now)
	return start, end, nil
}

// loadTransactions - snapshot transaksi urut waktu input, supaya urutan
// kemunculan (dipakai tie-break best seller) stabil antar pemanggilan.
func loadTransactions() ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := database.DB.Order("created_at ASC").Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

func loadProducts() ([]models.Product, error) {
	var products []models.Product
	if err := database.DB.Order("created_at ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func toProfitLossResponse(pl analytics.ProfitLoss) ProfitLossResponse {
	return ProfitLossResponse{
		Period:       pl.StartDate.Format("02 Jan 2006") + " - " + pl.EndDate.Format("02 Jan 2006"),
		StartDate:    pl.StartDate.Format("2006-01-02"),
		EndDate:      pl.EndDate.Format("2006-01-02"),
		TotalRevenue: pl.TotalRevenue,
		TotalCost:    pl.TotalCost,
		NetProfit:    pl.NetProfit,
		ProfitMargin: pl.ProfitMargin,
	}
}

func toTrendResponse(points []analytics.TrendPoint) []TrendPointResponse {
	res := make([]TrendPointResponse, 0, len(points))
	for _, p := range points {
		res = append(res, TrendPointResponse{
			Date:         p.Date.Format("02 Jan"),
			Revenue:      p.Revenue,
			Transactions: p.Transactions,
		})
	}
	return res
}

// GET /api/analytics/profit-loss?period=month  atau ?from=&to=
func ProfitLossHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start, end, err := resolveWindow(c, time.Now())
		if err != nil {
			return err
		}

		transactions, err := loadTransactions()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Transaksi tidak bisa diambil")
		}

		return c.JSON(toProfitLossResponse(analytics.CalculateProfitLoss(transactions, start, end)))
	}
}

// GET /api/analytics/sales-trend?period=month  atau ?from=&to=
func SalesTrendHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start, end, err := resolveWindow(c, time.Now())
		if err != nil {
			return err
		}

		transactions, err := loadTransactions()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Transaksi tidak bisa diambil")
		}

		return c.JSON(toTrendResponse(analytics.CalculateSalesTrend(transactions, start, end)))
	}
}

// GET /api/analytics/best-sellers?limit=5
// Ranking memakai seluruh riwayat transaksi, tanpa filter tanggal.
func BestSellersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := 5
		if limitStr := c.Query("limit"); limitStr != "" {
			if _, err := fmt.Sscan(limitStr, &limit); err != nil || limit <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "limit tidak valid")
			}
		}

		transactions, err := loadTransactions()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Transaksi tidak bisa diambil")
		}

		return c.JSON(analytics.BestSellers(transactions, limit))
	}
}

// GET /api/analytics/price-recommendations?limit=5
func PriceRecommendationsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := 5
		if limitStr := c.Query("limit"); limitStr != "" {
			if _, err := fmt.Sscan(limitStr, &limit); err != nil || limit <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "limit tidak valid")
			}
		}

		products, err := loadProducts()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Produk tidak bisa diambil")
		}
		transactions, err := loadTransactions()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Transaksi tidak bisa diambil")
		}

		if len(products) > limit {
			products = products[:limit]
		}

		now := time.Now()
		recs := make([]analytics.PriceRecommendation, 0, len(products))
		for _, p := range products {
			recs = append(recs, analytics.RecommendPrice(p, transactions, now))
		}
		return c.JSON(recs)
	}
}

// GET /api/analytics/purchase-recommendations?days=7
func PurchaseRecommendationsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		days := 7
		if daysStr := c.Query("days"); daysStr != "" {
			if _, err := fmt.Sscan(daysStr, &days); err != nil || days <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "days tidak valid")
			}
		}

		products, err := loadProducts()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Produk tidak bisa diambil")
		}
		transactions, err := loadTransactions()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Transaksi tidak bisa diambil")
		}

		return c.JSON(analytics.RecommendPurchases(products, transactions, days, time.Now()))
	}
}

// GET /api/dashboard/summary?period=month
// Satu panggilan untuk seluruh blok dashboard. Semua blok dihitung dari
// snapshot yang sama, jadi antar blok konsisten.
func SummaryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		now := time.Now()
		start, end, err := resolveWindow(c, now)
		if err != nil {
			return err
		}

		products, err := loadProducts()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Produk tidak bisa diambil")
		}
		transactions, err := loadTransactions()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Transaksi tidak bisa diambil")
		}

		priceTargets := products
		if len(priceTargets) > 5 {
			priceTargets = priceTargets[:5]
		}
		priceRecs := make([]analytics.PriceRecommendation, 0, len(priceTargets))
		for _, p := range priceTargets {
			priceRecs = append(priceRecs, analytics.RecommendPrice(p, transactions, now))
		}

		return c.JSON(SummaryResponse{
			ProfitLoss:              toProfitLossResponse(analytics.CalculateProfitLoss(transactions, start, end)),
			SalesTrend:              toTrendResponse(analytics.CalculateSalesTrend(transactions, start, end)),
			BestSellers:             analytics.BestSellers(transactions, 5),
			PriceRecommendations:    priceRecs,
			PurchaseRecommendations: analytics.RecommendPurchases(products, transactions, 7, now),
		})
	}
}
