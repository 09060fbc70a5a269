package main

import (
	"time"

	"grainsync-console/internal/app"
	"grainsync-console/internal/audit"
	"grainsync-console/internal/bootstrap"
	"grainsync-console/internal/config"
	"grainsync-console/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config failed", zap.Error(err))
	}

	apperror.Init()
	r := gin.Default()

	// build dependency + routes
	if err := app.BuildApp(r, cfg); err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}

	err = bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:         cfg.Port,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 2*cfg.BackendTimeout + 5*time.Second,
			IdleTimeout:  60 * time.Second,
		},
		audit.NewZapLogger(logger),
	)
	if err != nil {
		logger.Fatal("http server failed", zap.Error(err))
	}
}
