package audit

import (
	"encoding/json"
	"fmt"

	"warung-backend/internal/database"
	"warung-backend/internal/models"
)

type LogOptions struct {
	EntityType  string // "product" / "transaction"
	EntityID    string
	Action      models.AuditAction
	Description string
	Before      any
	After       any
}

// WriteLog - catat satu mutasi ke audit log. Before/After diserialisasi ke
// JSON; nil disimpan sebagai "null" supaya kolom jsonb Postgres valid.
func WriteLog(opts LogOptions) error {
	beforeStr := "null"
	afterStr := "null"

	if opts.Before != nil {
		if b, err := json.Marshal(opts.Before); err == nil {
			beforeStr = string(b)
		}
	}
	if opts.After != nil {
		if b, err := json.Marshal(opts.After); err == nil {
			afterStr = string(b)
		}
	}

	entry := models.AuditLog{
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
		BeforeData:  beforeStr,
		AfterData:   afterStr,
	}

	if err := database.DB.Create(&entry).Error; err != nil {
		return fmt.Errorf("audit log gagal disimpan: %w", err)
	}

	return nil
}
