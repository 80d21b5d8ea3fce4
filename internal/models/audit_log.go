package models

import "time"

type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
)

// AuditLog - jejak mutasi produk/transaksi, untuk ditampilkan di riwayat.
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	// Entity apa? ("product" / "transaction")
	EntityType string `gorm:"size:50;index" json:"entity_type"`
	EntityID   string `gorm:"size:36;index" json:"entity_id"`

	// create/update/delete
	Action AuditAction `gorm:"size:20" json:"action"`

	// Ringkasan singkat untuk UI
	Description string `gorm:"size:255" json:"description"`

	// Kondisi sebelum dan sesudah (JSON)
	BeforeData string `gorm:"type:jsonb" json:"before_data"`
	AfterData  string `gorm:"type:jsonb" json:"after_data"`
}
