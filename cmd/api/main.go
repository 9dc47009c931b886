package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	importsHttp "replacement-metrics-service/internal/imports/adapters/http/fiber"
	importsRepoPg "replacement-metrics-service/internal/imports/adapters/postgres"
	importsPorts "replacement-metrics-service/internal/imports/core/ports"
	importsUsecase "replacement-metrics-service/internal/imports/core/usecase"

	"replacement-metrics-service/internal/platform/config"
	"replacement-metrics-service/internal/platform/logger"
	"replacement-metrics-service/internal/platform/store"

	replExcel "replacement-metrics-service/internal/replacements/adapters/excel"
	replHttp "replacement-metrics-service/internal/replacements/adapters/http/fiber"
	replRepoPg "replacement-metrics-service/internal/replacements/adapters/postgres"
	replRedis "replacement-metrics-service/internal/replacements/adapters/redis"
	"replacement-metrics-service/internal/replacements/core/pipeline"
	replPorts "replacement-metrics-service/internal/replacements/core/ports"
	replUsecase "replacement-metrics-service/internal/replacements/core/usecase"

	"github.com/gofiber/fiber/v2"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	_ "replacement-metrics-service/docs"
)

func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("failed to load config", zap.Error(err))
	}

	log, err := logger.NewLogger(cfg.LogLevel, cfg.LogFormat, "replacement-metrics-service")
	if err != nil {
		zap.NewExample().Fatal("failed to build logger", zap.Error(err))
	}
	defer log.Sync()

	opts, err := pipeline.NewOptions(pipeline.Settings{
		IssuePolicy:   cfg.IssuePolicy,
		FaultCodes:    cfg.FaultCodes,
		EngineerLimit: cfg.Engineers(),
		FallbackYear:  cfg.TrendFallbackYear,
		DayFirst:      cfg.DayFirst(),
	})
	if err != nil {
		log.Fatal("invalid pipeline settings", zap.Error(err))
	}
	csvOpts := pipeline.CSVOptions{HeaderLines: cfg.HeaderLines()}

	// DB connection
	startCtx, cancelStart := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelStart()

	sqlDB, err := store.Open(startCtx, cfg.PostgresDSN, store.DefaultPool)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer sqlDB.Close()

	db := store.Wrap(sqlDB)
	if err := importsRepoPg.EnsureSchema(startCtx, db); err != nil {
		log.Fatal("failed to prepare schema", zap.Error(err))
	}

	// Dashboard cache (optional)
	var (
		dashboardCache replPorts.DashboardCachePort
		invalidator    importsPorts.DashboardInvalidator
	)
	if cfg.RedisAddr != "" {
		client := replRedis.NewClient(replRedis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer client.Close()

		if err := client.Ping(startCtx).Err(); err != nil {
			log.Warn("redis unreachable, dashboard cache disabled", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		} else {
			c := replRedis.NewDashboardCache(client, cfg.CacheTTL)
			dashboardCache, invalidator = c, c
		}
	}

	// Repositories
	replacementReader := replRepoPg.NewReplacementRepository(db)
	replacementWriter := importsRepoPg.NewReplacementWriter(db)

	// Usecases
	normalizer := pipeline.Normalizer{Location: cfg.Location}
	queryUC := replUsecase.NewQueryReplacementsUseCase(replacementReader, normalizer)
	dashboardUC := replUsecase.NewGetDashboardUseCase(replacementReader, dashboardCache, replUsecase.DashboardConfig{
		Normalizer: normalizer,
		Options:    opts,
		CSV:        csvOpts,
	}, log.Named("dashboard"))
	importUC := importsUsecase.NewImportCSVUseCase(replacementWriter, invalidator, csvOpts, cfg.Location, log.Named("import"))

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(logger.AccessLog(log.Named("http")))

	importHandler := importsHttp.NewImportHandler(importUC)
	app.Post("/api/replacements/import", importHandler.ImportReplacements)

	replHttp.NewReplacementHandler(queryUC, dashboardUC, replExcel.NewExporter()).Register(app)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.HTTPAddr); err != nil {
			log.Error("fiber stopped", zap.Error(err))
		}
	}()

	log.Info("server started", zap.String("addr", cfg.HTTPAddr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error("fiber shutdown error", zap.Error(err))
	}

	log.Info("server exiting")
}
