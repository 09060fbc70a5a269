package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"grainsync-console/internal/config"
	"grainsync-console/internal/erpclient"
	"grainsync-console/internal/events"
	"grainsync-console/internal/messaging/kafka"
	"grainsync-console/internal/messaging/kafka/consumer"
	"grainsync-console/internal/repair"
	"grainsync-console/internal/shared/connection"

	"go.uber.org/zap"
)

const (
	subtypeRepairGroupID = "grainsync-console-subtype-repair"
	subtypeRetryDelay    = 5 * time.Second
)

// RunConsumer retries failed subtype creates announced on the repair topic.
func RunConsumer(cfg config.AppConfig) error {
	logger := zap.L().Named("app.consumer")

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
	defer sqlDB.Close()

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	client := erpclient.New(erpclient.Config{
		BaseURL:     cfg.BackendURL,
		Timeout:     cfg.BackendTimeout,
		ReadRetries: cfg.BackendReadRetries,
	}, logger)

	repairService := repair.NewService(
		sqlDB,
		repair.NewRepository(gormDB),
		kafka.NewOutboxRepository(sqlDB),
		client,
		cfg.RepairMaxAttempts,
		logger,
	)

	reader := consumer.NewReader(cfg.KafkaBroker, subtypeRepairGroupID, events.EmployeeSubtypeFailedTopic)
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeSubtypeFailed(ctx, reader, repairService, subtypeRetryDelay, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
