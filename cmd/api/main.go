package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kongx-dev/retailstar-sol-sub001/internal/api"
	"github.com/kongx-dev/retailstar-sol-sub001/internal/config"
	"github.com/kongx-dev/retailstar-sol-sub001/internal/logger"
	"github.com/kongx-dev/retailstar-sol-sub001/internal/repository"
	"github.com/kongx-dev/retailstar-sol-sub001/internal/service"
	"github.com/kongx-dev/retailstar-sol-sub001/internal/storage"
	"gorm.io/gorm"
)

func main() {
	appLogger := logger.NewDefault()
	logger.SetDefaultLogger(appLogger)
	defer logger.Sync()

	// CONFIG_PATH overrides the default lookup (configs/config.yaml, ./config.yaml).
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to load config")
	}

	ctx := context.Background()

	deps := &api.Dependencies{Logger: appLogger}

	var appraisalRepo *repository.AppraisalRepository
	var batchRepo *repository.BatchRepository
	if cfg.Appraisal.HistoryEnabled {
		db, err := repository.InitDB(&cfg.Database)
		if err != nil {
			appLogger.WithError(err).Fatal("Failed to initialize database")
		}
		defer closeDB(db)
		deps.DB = db
		appraisalRepo = repository.NewAppraisalRepository(db)
		batchRepo = repository.NewBatchRepository(db)
	} else {
		appLogger.Info("Appraisal history disabled")
	}

	deps.Appraisals = service.NewAppraisalService(appraisalRepo, batchRepo, appLogger, &service.AppraisalConfig{
		Workers:      cfg.Appraisal.BatchWorkers,
		MaxBatchSize: cfg.Appraisal.MaxBatchSize,
	})

	var cardStore storage.ObjectStorage
	if cfg.Storage.Enabled {
		s3Store, err := storage.NewStorage(ctx, &cfg.Storage)
		if err != nil {
			appLogger.WithError(err).Fatal("Failed to initialize storage")
		}
		cardStore = s3Store
		appLogger.WithField("bucket", cfg.Storage.Bucket).Info("Card export enabled")
	}
	deps.Exporter = service.NewCardExporter(cardStore, cfg.Storage.Prefix, appLogger)

	if cfg.SNS.Enabled {
		deps.SNS = service.NewSNSClient(&service.SNSConfig{
			BaseURL: cfg.SNS.BaseURL,
			Timeout: cfg.SNS.Timeout,
		})
	}

	router := api.SetupRouter(deps, &cfg.Server)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.WithFields(logger.Fields{
			"port": cfg.Server.Port,
			"mode": cfg.Server.Mode,
		}).Info("Starting API server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.WithError(err).Fatal("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.WithError(err).Error("Server forced to shutdown")
	}

	appLogger.Info("Server exited")
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
