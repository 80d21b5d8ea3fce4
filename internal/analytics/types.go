// Package analytics berisi fungsi murni di atas snapshot transaksi dan
// produk. Tidak ada I/O, tidak ada state tersembunyi: hasil hanya ditentukan
// oleh input, jadi aman dipanggil bersamaan dari banyak consumer selama
// snapshot tidak dimutasi. Formatting (mata uang, label tanggal) urusan
// layer presentasi, bukan di sini.
package analytics

import "time"

// ProfitLoss - ringkasan laba/rugi untuk satu rentang tanggal.
type ProfitLoss struct {
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	TotalRevenue float64   `json:"total_revenue"`
	TotalCost    float64   `json:"total_cost"`
	NetProfit    float64   `json:"net_profit"`
	ProfitMargin float64   `json:"profit_margin"` // persen dari revenue, 0 kalau revenue 0
}

// TrendPoint - satu hari kalender dalam tren penjualan.
// Hari tanpa transaksi tetap muncul dengan nilai nol.
type TrendPoint struct {
	Date         time.Time `json:"date"`
	Revenue      float64   `json:"revenue"`
	Transactions int       `json:"transactions"`
}

// BestSeller - hasil ranking produk terlaris.
type BestSeller struct {
	ProductID    string  `json:"product_id"` // kosong kalau transaksi tidak punya id katalog
	ProductName  string  `json:"product_name"`
	QuantitySold int     `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}

// PriceRecommendation - rekomendasi harga jual untuk satu produk.
type PriceRecommendation struct {
	ProductID        string  `json:"product_id"`
	ProductName      string  `json:"product_name"`
	CurrentPrice     float64 `json:"current_price"`
	RecommendedPrice float64 `json:"recommended_price"` // sudah dibulatkan ke rupiah utuh
	PotentialProfit  float64 `json:"potential_profit"`  // per unit, setelah pembulatan
	Reasoning        string  `json:"reasoning"`
}

// PurchaseRecommendation - rekomendasi belanja stok untuk satu produk.
type PurchaseRecommendation struct {
	ProductID           string  `json:"product_id"`
	ProductName         string  `json:"product_name"`
	CurrentStock        int     `json:"current_stock"`
	RecommendedQuantity int     `json:"recommended_quantity"`
	SalesVelocity       float64 `json:"sales_velocity"` // item terjual per hari
	Reasoning           string  `json:"reasoning"`
}
