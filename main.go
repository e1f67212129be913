package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"sales_tracker/api"
)

func main() {
	_ = godotenv.Load() // allow .env for local runs

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg := api.Config{
		DataFile:  envOr("SALES_DATA_FILE", "sales_data.csv"),
		StaticDir: envOr("STATIC_DIR", "static"),
	}

	r := gin.Default()
	if err := api.InitRoutes(r, cfg, logger); err != nil {
		logger.Fatal("failed to initialize routes", zap.Error(err))
	}

	port := envOr("PORT", "8081")
	if err := r.Run(":" + port); err != nil {
		panic(fmt.Errorf("error trying to start server: %v", err))
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
