package database

import (
	"warung-backend/internal/config"
	"warung-backend/internal/models"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("tidak bisa konek ke database")
	}

	err = DB.AutoMigrate(
		&models.Product{},
		&models.Transaction{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("AutoMigrate gagal")
	}

	log.Info().Msg("koneksi database berhasil, migration selesai")
}
