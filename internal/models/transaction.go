package models

import "time"

// TransactionSource - asal pencatatan (manual / voice / ocr).
// Hanya penanda provenance, tidak mempengaruhi kalkulasi apa pun.
type TransactionSource string

const (
	SourceManual TransactionSource = "manual"
	SourceVoice  TransactionSource = "voice"
	SourceOCR    TransactionSource = "ocr"
)

// Transaction - catatan penjualan, append-only.
// Harga dan modal disalin dari produk saat transaksi dibuat, jadi perubahan
// harga di katalog tidak mengubah riwayat penjualan.
type Transaction struct {
	ID           string            `gorm:"primaryKey;size:36"`
	Date         time.Time         `gorm:"index;not null"`    // waktu penjualan, bukan waktu input
	Product      string            `gorm:"size:100;not null"` // nama produk (denormalisasi)
	ProductID    string            `gorm:"size:36;index"`     // boleh kosong kalau produk tidak ada di katalog
	Quantity     int               `gorm:"not null"`
	PricePerItem float64           `gorm:"not null"`
	CostPerItem  float64           `gorm:"not null"`
	TotalAmount  float64           `gorm:"not null"` // quantity * price_per_item, selalu dihitung ulang server
	Source       TransactionSource `gorm:"size:10;not null;default:'manual'"`
	Customer     string            `gorm:"size:100"` // opsional
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
