package app

import (
	"strings"

	"github.com/mpcastro/recipebook-backend/internal/logger"
	"github.com/mpcastro/recipebook-backend/internal/utils"
)

type Config struct {
	Port        int
	Environment string
	CORSOrigins []string
}

func LoadConfig(log *logger.Logger) Config {
	port := utils.GetEnvAsInt("PORT", 8080, log)
	environment := utils.GetEnv("ENVIRONMENT", "development", log)
	corsOrigins := utils.GetEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173", log)
	return Config{
		Port:        port,
		Environment: environment,
		CORSOrigins: strings.Split(corsOrigins, ","),
	}
}
