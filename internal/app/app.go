package app

import (
	"grainsync-console/internal/config"
	"grainsync-console/internal/erpclient"
	"grainsync-console/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const connectRetries = 5

func BuildApp(router *gin.Engine, cfg config.AppConfig) error {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(
		cfg.Database.Host,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.Port,
		cfg.Database.SSLMode,
		connectRetries,
	)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, connectRetries)
	if err != nil {
		return err
	}
	logger.Info("redis connection established")

	client := erpclient.New(erpclient.Config{
		BaseURL:     cfg.BackendURL,
		Timeout:     cfg.BackendTimeout,
		ReadRetries: cfg.BackendReadRetries,
	}, zap.L())

	return registerModules(router, cfg, sqlDB, gormDB, redisClient, client)
}
