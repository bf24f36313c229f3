package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fekuna/eyewear-storefront-service/config"
	"github.com/fekuna/eyewear-storefront-service/internal/events"
	"github.com/fekuna/eyewear-storefront-service/migrations"
	"github.com/fekuna/eyewear-storefront-service/pkg/broker"
	"github.com/fekuna/eyewear-storefront-service/pkg/cache"
	"github.com/fekuna/eyewear-storefront-service/pkg/database/postgres"
	"github.com/fekuna/eyewear-storefront-service/pkg/i18n"
	"github.com/fekuna/eyewear-storefront-service/pkg/logger"
	"github.com/fekuna/eyewear-storefront-service/pkg/middleware"
	"github.com/fekuna/eyewear-storefront-service/pkg/search"
	"github.com/fekuna/eyewear-storefront-service/pkg/storage"
	"github.com/fekuna/eyewear-storefront-service/pkg/tracer"

	analyticsH "github.com/fekuna/eyewear-storefront-service/internal/analytics/handler"
	analyticsRepoPkg "github.com/fekuna/eyewear-storefront-service/internal/analytics/repository"
	analyticsUCPkg "github.com/fekuna/eyewear-storefront-service/internal/analytics/usecase"

	carouselH "github.com/fekuna/eyewear-storefront-service/internal/carousel/handler"
	carouselRepoPkg "github.com/fekuna/eyewear-storefront-service/internal/carousel/repository"
	carouselUCPkg "github.com/fekuna/eyewear-storefront-service/internal/carousel/usecase"

	catH "github.com/fekuna/eyewear-storefront-service/internal/category/handler"
	catRepoPkg "github.com/fekuna/eyewear-storefront-service/internal/category/repository"
	catUCPkg "github.com/fekuna/eyewear-storefront-service/internal/category/usecase"

	displayH "github.com/fekuna/eyewear-storefront-service/internal/display/handler"
	displayRepoPkg "github.com/fekuna/eyewear-storefront-service/internal/display/repository"
	displayUCPkg "github.com/fekuna/eyewear-storefront-service/internal/display/usecase"

	invH "github.com/fekuna/eyewear-storefront-service/internal/inventory/handler"
	invRepoPkg "github.com/fekuna/eyewear-storefront-service/internal/inventory/repository"
	invUCPkg "github.com/fekuna/eyewear-storefront-service/internal/inventory/usecase"

	"github.com/fekuna/eyewear-storefront-service/internal/product"
	prodH "github.com/fekuna/eyewear-storefront-service/internal/product/handler"
	prodListenerPkg "github.com/fekuna/eyewear-storefront-service/internal/product/listener"
	prodRepoPkg "github.com/fekuna/eyewear-storefront-service/internal/product/repository"
	prodUCPkg "github.com/fekuna/eyewear-storefront-service/internal/product/usecase"

	shipH "github.com/fekuna/eyewear-storefront-service/internal/shipping/handler"
	shipRepoPkg "github.com/fekuna/eyewear-storefront-service/internal/shipping/repository"
	shipUCPkg "github.com/fekuna/eyewear-storefront-service/internal/shipping/usecase"

	subH "github.com/fekuna/eyewear-storefront-service/internal/subcategory/handler"
	subRepoPkg "github.com/fekuna/eyewear-storefront-service/internal/subcategory/repository"
	subUCPkg "github.com/fekuna/eyewear-storefront-service/internal/subcategory/usecase"

	"github.com/fekuna/eyewear-storefront-service/internal/tryon"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.Server.AppEnv == "production" {
		logConfig.Encoding = "json"
		gin.SetMode(gin.ReleaseMode)
	} else {
		logConfig.IsDevelopment = true
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 3. Initialize i18n
	translator, err := i18n.New(cfg.I18n.DefaultLocale)
	if err != nil {
		appLogger.Fatal("Could not load translations", zap.Error(err))
	}

	// 4. Connect to Database
	db, err := postgres.NewPostgres(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	if cfg.Postgres.AutoMigrate {
		applied, err := postgres.Migrate(ctx, db, migrations.FS)
		if err != nil {
			appLogger.Fatal("Could not apply migrations", zap.Error(err))
		}
		appLogger.Info("Applied migrations", zap.Strings("files", applied))
	}

	// 5. Initialize Cache
	var store cache.Store = cache.Nop{}
	switch {
	case !cfg.Redis.Enabled:
		store = cache.Fallback(cfg.Redis.LocalCache)
		appLogger.Info("Redis disabled", zap.Bool("local_cache", cfg.Redis.LocalCache))
	default:
		redisClient, err := cache.NewRedisClient(&cache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			appLogger.Warn("Could not connect to Redis, caching disabled", zap.Error(err))
			break
		}
		defer redisClient.Close()
		store = redisClient
		appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
	}

	// 6. Initialize Elasticsearch
	var searchIndex product.SearchIndex
	esClient, err := search.NewClient(&search.Config{
		Addresses: cfg.Elastic.Addresses,
		Username:  cfg.Elastic.Username,
		Password:  cfg.Elastic.Password,
	})
	if err != nil {
		appLogger.Warn("Could not connect to Elasticsearch, search falls back to SQL", zap.Error(err))
	} else {
		esRepo := prodRepoPkg.NewESRepository(esClient, cfg.Elastic.Index)
		if err := esRepo.EnsureIndex(ctx); err != nil {
			appLogger.Warn("Could not create search index", zap.String("index", cfg.Elastic.Index), zap.Error(err))
		}
		searchIndex = esRepo
		appLogger.Info("Connected to Elasticsearch", zap.Strings("addresses", cfg.Elastic.Addresses))
	}

	// 7. Initialize Events
	var publisher broker.Publisher = broker.NopPublisher{}
	if searchIndex != nil {
		indexListener := prodListenerPkg.NewIndexListener(nil, searchIndex, appLogger)
		publisher = broker.PublisherFunc(func(ctx context.Context, _ string, value []byte) error {
			return indexListener.Handle(ctx, value)
		})
	}
	if cfg.Kafka.Enabled {
		producer := broker.NewProducer(&broker.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.ProductsTopic,
		})
		defer producer.Close()
		publisher = producer

		if searchIndex != nil {
			consumer := broker.NewConsumer(&broker.Config{
				Brokers: cfg.Kafka.Brokers,
				Topic:   cfg.Kafka.ProductsTopic,
				GroupID: cfg.Kafka.SearchGroupID,
			})
			defer consumer.Close()
			go prodListenerPkg.NewIndexListener(consumer, searchIndex, appLogger).Start(ctx)
		}
		appLogger.Info("Kafka enabled", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.ProductsTopic))
	}
	eventPublisher := events.NewPublisher(publisher, appLogger)

	// 8. Initialize Storage
	storageClient := storage.NewClient(&storage.Config{
		URL:        cfg.Storage.URL,
		ServiceKey: cfg.Storage.ServiceKey,
		Bucket:     cfg.Storage.Bucket,
	})

	// 9. Initialize Tracing
	tracingEnabled := cfg.Tracing.OTLPEndpoint != ""
	if tracingEnabled {
		tp, err := tracer.InitTracer(ctx, &tracer.Config{
			ServiceName:    cfg.Tracing.ServiceName,
			ServiceVersion: cfg.Tracing.ServiceVersion,
			Environment:    cfg.Server.AppEnv,
			Endpoint:       cfg.Tracing.OTLPEndpoint,
			SampleRatio:    cfg.Tracing.SampleRatio,
		})
		if err != nil {
			appLogger.Warn("Could not initialize tracing", zap.Error(err))
			tracingEnabled = false
		} else {
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := tp.Shutdown(shutdownCtx); err != nil {
					appLogger.Warn("Error shutting down tracer", zap.Error(err))
				}
			}()
		}
	}

	// 10. Initialize Repositories
	analyticsRepo := analyticsRepoPkg.NewPGRepository(db)
	carouselRepo := carouselRepoPkg.NewPGRepository(db)
	catRepo := catRepoPkg.NewPGRepository(db)
	displayRepo := displayRepoPkg.NewPGRepository(db)
	invRepo := invRepoPkg.NewPGRepository(db)
	prodRepo := prodRepoPkg.NewPGRepository(db)
	shipRepo := shipRepoPkg.NewPGRepository(db)
	subRepo := subRepoPkg.NewPGRepository(db)

	// 11. Initialize UseCases
	analyticsUC := analyticsUCPkg.NewAnalyticsUseCase(analyticsRepo, cfg.Analytics.TotalCategories, appLogger)
	carouselUC := carouselUCPkg.NewCarouselUseCase(carouselRepo, store, appLogger)
	catUC := catUCPkg.NewCategoryUseCase(catRepo, store, appLogger)
	displayUC := displayUCPkg.NewDisplayUseCase(displayRepo, store, appLogger)
	invUC := invUCPkg.NewInventoryUseCase(invRepo, eventPublisher, appLogger)
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, searchIndex, storageClient, eventPublisher, appLogger)
	shipUC := shipUCPkg.NewShippingUseCase(shipRepo, store, appLogger)
	subUC := subUCPkg.NewSubcategoryUseCase(subRepo, store, appLogger)

	// 12. Initialize Handlers
	handlers := []interface{ Register(*gin.RouterGroup) }{
		analyticsH.NewAnalyticsHandler(analyticsUC, appLogger),
		carouselH.NewCarouselHandler(carouselUC, appLogger),
		catH.NewCategoryHandler(catUC, appLogger),
		displayH.NewDisplayHandler(displayUC, appLogger),
		invH.NewInventoryHandler(invUC, appLogger),
		prodH.NewProductHandler(prodUC, appLogger),
		shipH.NewShippingHandler(shipUC, appLogger),
		subH.NewSubcategoryHandler(subUC, appLogger),
		tryon.NewHandler(appLogger),
	}

	// 13. Start HTTP Server
	r := gin.New()
	if tracingEnabled {
		r.Use(otelgin.Middleware(cfg.Tracing.ServiceName))
	}
	r.Use(
		middleware.RequestID(),
		translator.Middleware(),
		middleware.Recovery(appLogger),
		middleware.RequestLogger(appLogger),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	for _, h := range handlers {
		h.Register(api)
	}

	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	appLogger.Info("Starting HTTP server", zap.String("port", port))

	// Graceful Shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
