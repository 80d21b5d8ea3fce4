package main

import (
	"warung-backend/internal/config"
	"warung-backend/internal/database"
	"warung-backend/internal/logger"
	"warung-backend/internal/seed"

	"github.com/rs/zerolog/log"
)

// Seeder standalone: isi database dengan data demo tanpa menjalankan server.
func main() {
	logger.Setup()

	cfg := config.Load()
	database.Init(cfg)

	if err := seed.Run(database.DB); err != nil {
		log.Fatal().Err(err).Msg("seeding gagal")
	}
}
