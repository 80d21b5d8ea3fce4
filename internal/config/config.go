package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	HTTPPort    string
	DatabaseDSN string
	CORSOrigins string
	SeedOnBoot  bool // database kosong saat start -> isi data demo
}

func Load() *Config {
	// .env opsional, hanya untuk development lokal
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("file .env tidak ditemukan, pakai environment variable")
	}

	cfg := &Config{
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		DatabaseDSN: getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=warung port=5432 sslmode=disable"),
		CORSOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
		SeedOnBoot:  getEnv("SEED_ON_BOOT", "false") == "true",
	}

	if cfg.DatabaseDSN == "host=localhost user=postgres password=postgres dbname=warung port=5432 sslmode=disable" {
		log.Warn().Msg("DATABASE_DSN memakai nilai default, untuk production wajib set koneksi Postgres sendiri")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
