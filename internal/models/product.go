package models

import "time"

// Product - item katalog, bisa diubah (harga, stok).
type Product struct {
	ID           string  `gorm:"primaryKey;size:36"`
	Name         string  `gorm:"size:100;not null;index"`
	Category     string  `gorm:"size:50;index"` // Makanan & Minuman, Fashion, dst.
	SellingPrice float64 `gorm:"not null"`
	CostPrice    float64 `gorm:"not null"`
	CurrentStock int     `gorm:"not null;default:0"` // berkurang setiap transaksi tercatat
	MinStock     int     `gorm:"not null;default:1"` // currentStock <= minStock artinya stok rendah
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsLowStock - stok sudah menyentuh ambang minimum.
func (p Product) IsLowStock() bool {
	return p.CurrentStock <= p.MinStock
}
