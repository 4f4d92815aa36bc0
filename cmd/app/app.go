package app

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/api"
	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/api/middleware"
	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/config"
	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/db"
	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/logger"
	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/pkg/revocation"
	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/service"
)

const configPath = "./cmd/app/config.yml"

func Start() error {
	conf, err := config.Load(configPath)
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

	revocations, err := openRevocationList(conf.Redis)
	if err != nil {
		return fmt.Errorf("failed to initialize session revocation -> %w", err)
	}

	s := api.NewServer(conf, api.NewRepositories(postgresDB), revocations)

	if !s.Auth.LoginEnabled() {
		zap.L().Warn("ADMIN_PASSWORD is not set, every admin login will be refused")
	}

	if conf.API.WatchConfig {
		if err = watchAdminCredentials(s.Auth); err != nil {
			return fmt.Errorf("failed to watch config -> %w", err)
		}
	}

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}

func openRevocationList(conf *config.RedisConfig) (middleware.RevocationList, error) {
	if conf.Addr == "" {
		zap.L().Info("redis is not configured, logged out sessions are tracked in memory")
		return revocation.NewMemoryList(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     conf.Addr,
		Password: conf.Password,
		DB:       conf.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("client.Ping -> %w", err)
	}

	return revocation.NewRedisList(client), nil
}

// watchAdminCredentials swaps the admin credential pair whenever the config
// file changes.
func watchAdminCredentials(auth *service.AuthService) error {
	_, err := config.Watch(configPath, func(conf *config.AppConfig) {
		auth.SetCredentials(service.AdminCredentials{
			Username: conf.Admin.Username,
			Password: conf.Admin.Password,
		})
		zap.L().Info("admin credentials reloaded")
	}, func(err error) {
		zap.L().Error("could not reload config", zap.Error(err))
	})

	return err
}
