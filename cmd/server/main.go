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

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"

	catalogapp "github.com/mycofresh/backend/internal/application/catalog"
	financeapp "github.com/mycofresh/backend/internal/application/finance"
	inventoryapp "github.com/mycofresh/backend/internal/application/inventory"
	reportapp "github.com/mycofresh/backend/internal/application/report"
	subscriptionapp "github.com/mycofresh/backend/internal/application/subscription"
	tradeapp "github.com/mycofresh/backend/internal/application/trade"
	"github.com/mycofresh/backend/internal/domain/shared"
	"github.com/mycofresh/backend/internal/infrastructure/cache"
	"github.com/mycofresh/backend/internal/infrastructure/config"
	"github.com/mycofresh/backend/internal/infrastructure/logger"
	"github.com/mycofresh/backend/internal/infrastructure/persistence"
	"github.com/mycofresh/backend/internal/interfaces/http/handler"
	"github.com/mycofresh/backend/internal/interfaces/http/middleware"
	"github.com/mycofresh/backend/internal/interfaces/http/router"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	zapLogger, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync(zapLogger) }()

	zapLogger.Info("starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLogger := logger.NewGormLogger(zapLogger, gormlogger.Warn)
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLogger)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() { _ = db.Close() }()

	var reportCache shared.ReportCache
	if addr := cfg.Redis.Addr(); addr != "" {
		redisCache, err := cache.NewRedisReportCache(cache.RedisConfig{
			Addr:     addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		reportCache = redisCache
		zapLogger.Info("report cache enabled", zap.String("addr", addr))
	} else {
		reportCache = cache.NewNoopReportCache()
		zapLogger.Info("report cache disabled")
	}

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	warehouseRepo := persistence.NewGormWarehouseRepository(db.DB)
	inventoryRepo := persistence.NewGormInventoryRepository(db.DB)
	counterRepo := persistence.NewGormInvoiceCounterRepository(db.DB)
	subscriptionRepo := persistence.NewGormSubscriptionRepository(db.DB)
	saleRepo := persistence.NewGormSaleRepository(db.DB)
	wholesaleRepo := persistence.NewGormWholesaleSaleRepository(db.DB)
	returnRepo := persistence.NewGormSalesReturnRepository(db.DB)
	expenseRepo := persistence.NewGormExpenseRepository(db.DB)
	txScope := persistence.NewGormTransactionScope(db.DB)

	// Services
	location := cfg.App.Location()
	productService := catalogapp.NewProductService(productRepo)
	warehouseService := catalogapp.NewWarehouseService(warehouseRepo, inventoryRepo)
	inventoryService := inventoryapp.NewService(inventoryRepo, productRepo, warehouseRepo)
	subscriptionService := subscriptionapp.NewService(subscriptionRepo, counterRepo, nil, location)
	saleService := tradeapp.NewSaleService(saleRepo, warehouseRepo, txScope)
	wholesaleService := tradeapp.NewWholesaleService(wholesaleRepo, warehouseRepo, txScope)
	returnService := tradeapp.NewReturnService(returnRepo, txScope, cfg.Returns.EnforceQuantities)
	expenseService := financeapp.NewExpenseService(expenseRepo)
	reportService := reportapp.NewService(saleRepo, wholesaleRepo, expenseRepo, subscriptionRepo,
		reportCache, cfg.Redis.CacheTTL, nil, location)

	// HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			return fmt.Errorf("set trusted proxies: %w", err)
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(zapLogger))
	engine.Use(logger.Recovery(zapLogger))

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsCfg.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsCfg.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsCfg))

	handler.RegisterValidators()

	router.NewRouter(engine).
		Register(handler.NewHealthHandler(db)).
		Register(handler.NewProductHandler(productService)).
		Register(handler.NewWarehouseHandler(warehouseService)).
		Register(handler.NewInventoryHandler(inventoryService)).
		Register(handler.NewSubscriptionHandler(subscriptionService)).
		Register(handler.NewSaleHandler(saleService)).
		Register(handler.NewWholesaleHandler(wholesaleService)).
		Register(handler.NewSalesReturnHandler(returnService)).
		Register(handler.NewExpenseHandler(expenseService)).
		Register(handler.NewReportHandler(reportService)).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case sig := <-quit:
		zapLogger.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	zapLogger.Info("server stopped")
	return nil
}
