package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/narendranaragani/printmaania/config"
	"github.com/narendranaragani/printmaania/pkg/cache"
	"github.com/narendranaragani/printmaania/pkg/logger"
	"github.com/narendranaragani/printmaania/pkg/middleware"
	"github.com/narendranaragani/printmaania/pkg/search"
	"github.com/narendranaragani/printmaania/pkg/storage"

	cartH "github.com/narendranaragani/printmaania/internal/cart/handler"
	cartStorePkg "github.com/narendranaragani/printmaania/internal/cart/store"
	cartUCPkg "github.com/narendranaragani/printmaania/internal/cart/usecase"

	catalogH "github.com/narendranaragani/printmaania/internal/catalog/handler"
	catalogRepoPkg "github.com/narendranaragani/printmaania/internal/catalog/repository"
	catalogUCPkg "github.com/narendranaragani/printmaania/internal/catalog/usecase"

	"github.com/narendranaragani/printmaania/internal/order"
	"github.com/narendranaragani/printmaania/internal/order/events"
	orderH "github.com/narendranaragani/printmaania/internal/order/handler"
	orderRepoPkg "github.com/narendranaragani/printmaania/internal/order/repository"
	orderUCPkg "github.com/narendranaragani/printmaania/internal/order/usecase"

	"github.com/narendranaragani/printmaania/internal/whatsapp"
	whatsappH "github.com/narendranaragani/printmaania/internal/whatsapp/handler"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg, err := config.LoadEnv()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.Server.AppEnv == "dev" || cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Initialize the snapshot store backing carts and the order ledger
	fileStore, err := storage.NewFileStore(cfg.Storage.Dir)
	if err != nil {
		appLogger.Fatal("could not initialize storage", zap.Error(err))
	}
	appLogger.Info("storage initialized", zap.String("dir", cfg.Storage.Dir))

	// 4. Optional infrastructure, each gated by config
	var redisClient *cache.RedisClient
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedisClient(&cache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			appLogger.Fatal("could not connect to redis", zap.Error(err))
		}
		defer redisClient.Close()
		appLogger.Info("connected to redis", zap.String("addr", cfg.Redis.Addr))
	}

	var esClient *search.Client
	if cfg.Elastic.Enabled {
		esClient, err = search.NewClient(&search.Config{
			Addresses: cfg.Elastic.Addresses,
			Username:  cfg.Elastic.Username,
			Password:  cfg.Elastic.Password,
		})
		if err != nil {
			// The catalog falls back to in-memory scans when search is down.
			appLogger.Warn("could not connect to elasticsearch", zap.Error(err))
			esClient = nil
		} else {
			appLogger.Info("connected to elasticsearch", zap.Strings("addresses", cfg.Elastic.Addresses))
		}
	}

	var publisher events.Publisher
	if cfg.Kafka.Enabled {
		producer := events.NewKafkaProducer(strings.Join(cfg.Kafka.Brokers, ","), cfg.Kafka.Topic, appLogger)
		defer producer.Close()
		publisher = producer
		appLogger.Info("kafka producer ready", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))
	}

	// 5. Repositories and stores
	catalogRepo := catalogRepoPkg.NewMemoryRepository(catalogRepoPkg.SeedProducts())

	cartStore, err := cartStorePkg.NewCartStore(fileStore)
	if err != nil {
		appLogger.Fatal("could not load cart", zap.Error(err))
	}
	wishlistStore, err := cartStorePkg.NewWishlistStore(fileStore)
	if err != nil {
		appLogger.Fatal("could not load wishlist", zap.Error(err))
	}
	savedStore, err := cartStorePkg.NewSaveForLaterStore(fileStore)
	if err != nil {
		appLogger.Fatal("could not load save-for-later list", zap.Error(err))
	}

	var orderRepo order.Repository
	if cfg.Dynamo.Enabled {
		awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(cfg.Dynamo.Region))
		if err != nil {
			appLogger.Fatal("could not load aws config", zap.Error(err))
		}
		orderRepo = orderRepoPkg.NewDynamoRepository(dynamodb.NewFromConfig(awsCfg), cfg.Dynamo.TableName)
		appLogger.Info("order repository: dynamodb", zap.String("table", cfg.Dynamo.TableName))
	} else {
		ledger, err := orderRepoPkg.NewLedgerRepository(fileStore)
		if err != nil {
			appLogger.Fatal("could not load order ledger", zap.Error(err))
		}
		orderRepo = ledger
	}

	// 6. UseCases
	catalogUC := catalogUCPkg.NewCatalogUseCase(catalogRepo, redisClient, esClient, appLogger)
	cartUC := cartUCPkg.NewCartUseCase(catalogRepo, cartUCPkg.Options{
		FreeDeliveryAbove:     cfg.Checkout.FreeDeliveryAbove,
		DeliveryFee:           cfg.Checkout.DeliveryFee,
		ReconcileTierDiscount: cfg.Checkout.ReconcileTierDiscount,
	}, appLogger)
	orderUC := orderUCPkg.NewOrderUseCase(orderRepo, cartUC, cartStore, catalogRepo, publisher, orderUCPkg.Options{
		DefaultDeliveryEstimate: cfg.Checkout.DefaultDeliveryEst,
	}, appLogger)
	linkBuilder := whatsapp.NewBuilder(cfg.WhatsApp.AdminNumber)

	if esClient != nil {
		if err := catalogUC.SyncIndex(context.Background()); err != nil {
			appLogger.Warn("could not sync search index", zap.Error(err))
		}
	}

	// 7. HTTP router
	if cfg.Server.AppEnv != "dev" && cfg.Server.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.Identity())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	catalogH.NewCatalogHandler(catalogUC, appLogger).Register(v1)
	cartH.NewCartHandler(cartUC, cartStore, wishlistStore, savedStore, appLogger).Register(v1)
	orderH.NewOrderHandler(orderUC, linkBuilder, appLogger).Register(v1)
	whatsappH.NewWhatsAppHandler(linkBuilder, appLogger).Register(v1)

	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:              port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info("starting http server", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("forced shutdown", zap.Error(err))
	}
	appLogger.Info("server stopped")
}
