// Command seed loads the sample destinations into an empty database.
package main

import (
	"context"
	"fmt"

	_ "github.com/joho/godotenv/autoload" // Autoload .env file.
	"go.uber.org/zap"

	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/config"
	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/db"
	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/logger"
	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/repository/dao"
)

func main() {
	if err := run(); err != nil {
		panic(err)
	}
}

func run() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	postgresDB, err := db.Open(conf.Postgres)
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	n, err := dao.SeedDestinations(context.Background(), postgresDB)
	if err != nil {
		return fmt.Errorf("dao.SeedDestinations -> %w", err)
	}

	if n == 0 {
		zap.L().Info("destinations already exist, nothing to seed")
		return nil
	}
	zap.L().Info("seeded sample destinations", zap.Int("count", n))

	return nil
}
