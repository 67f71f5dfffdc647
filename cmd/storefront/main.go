package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/vastrika/storefront/docs"
	bargainCommand "github.com/vastrika/storefront/internal/bargain/usecase/command"
	bargainDelivery "github.com/vastrika/storefront/internal/bargain/delivery/http"
	bargainRepository "github.com/vastrika/storefront/internal/bargain/repository"
	bargainQuery "github.com/vastrika/storefront/internal/bargain/usecase/query"
	catalogCommand "github.com/vastrika/storefront/internal/catalog/usecase/command"
	catalogDelivery "github.com/vastrika/storefront/internal/catalog/delivery/http"
	catalogRepository "github.com/vastrika/storefront/internal/catalog/repository"
	catalogQuery "github.com/vastrika/storefront/internal/catalog/usecase/query"
	"github.com/vastrika/storefront/internal/catalog/resolver"
	customCommand "github.com/vastrika/storefront/internal/custom/usecase/command"
	customDelivery "github.com/vastrika/storefront/internal/custom/delivery/http"
	customRepository "github.com/vastrika/storefront/internal/custom/repository"
	customQuery "github.com/vastrika/storefront/internal/custom/usecase/query"
	orderCommand "github.com/vastrika/storefront/internal/order/usecase/command"
	orderDelivery "github.com/vastrika/storefront/internal/order/delivery/http"
	orderRepository "github.com/vastrika/storefront/internal/order/repository"
	orderQuery "github.com/vastrika/storefront/internal/order/usecase/query"
	userDelivery "github.com/vastrika/storefront/internal/user/delivery/http"
	userRepository "github.com/vastrika/storefront/internal/user/repository"
	"github.com/vastrika/storefront/kafka"
	"github.com/vastrika/storefront/pkg/database"
	"github.com/vastrika/storefront/pkg/logger"
	"github.com/vastrika/storefront/pkg/tracing"
)

func main() {
	logger.Init("storefront", getEnv("APP_ENV", "development") == "development")

	ctx := context.Background()

	tp, err := tracing.InitTracer("storefront")
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize tracer")
	}
	defer tracing.Shutdown(ctx, tp)

	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "storefront"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Repositories
	sareeRepo := catalogRepository.NewGormCatalogRepositoryWithTracing(db)
	regionRepo := catalogRepository.NewGormRegionRepository(db)
	orderRepo := orderRepository.NewGormOrderRepository(db)
	userRepo := userRepository.NewGormUserRepositoryWithTracing(db)
	offerRepo := bargainRepository.NewGormOfferRepository(db)
	requestRepo := customRepository.NewGormRequestRepository(db)

	for name, migrate := range map[string]func() error{
		"catalog": sareeRepo.AutoMigrate,
		"order":   orderRepo.AutoMigrate,
		"user":    userRepo.AutoMigrate,
		"bargain": offerRepo.AutoMigrate,
		"custom":  requestRepo.AutoMigrate,
	} {
		if err := migrate(); err != nil {
			logger.Logger.Fatal().Err(err).Str("module", name).Msg("Failed to run migrations")
		}
	}

	catalogResolver := resolver.New(sareeRepo, regionRepo, resolver.DefaultStoreTimeout)

	// Kafka is optional. Without brokers the storefront still serves traffic,
	// it just skips event publishing and stock decrements stay manual.
	var publisher *kafka.Publisher
	brokers := strings.Split(getEnv("KAFKA_BROKERS", ""), ",")
	if brokers[0] != "" {
		publisher, err = kafka.NewPublisher(brokers)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to create kafka publisher")
		}
		defer publisher.Close()
	}

	// Catalog handler
	catalogHandler := catalogDelivery.NewCatalogHandler(
		catalogCommand.NewCreateSareeHandler(sareeRepo, regionRepo),
		catalogCommand.NewUpdateSareeHandler(sareeRepo),
		catalogCommand.NewDeleteSareeHandler(sareeRepo),
		catalogCommand.NewUpdateStockHandler(sareeRepo),
		catalogCommand.NewCreateRegionHandler(regionRepo),
		catalogQuery.NewListSareesHandler(catalogResolver),
		catalogQuery.NewGetSareeHandler(catalogResolver),
		catalogQuery.NewListRegionsHandler(catalogResolver),
		catalogQuery.NewGetRegionHandler(catalogResolver),
		catalogQuery.NewListTypesHandler(),
		catalogQuery.NewListStatesHandler(),
		catalogQuery.NewGetStatsHandler(sareeRepo, regionRepo),
	)

	// Order handler
	var orderPublisher orderCommand.EventPublisher
	if publisher != nil {
		orderPublisher = publisher
	}
	orderHandler := orderDelivery.NewOrderHandler(
		orderCommand.NewPlaceOrderHandler(orderRepo, catalogResolver, orderPublisher),
		orderCommand.NewUpdateStatusHandler(orderRepo),
		orderQuery.NewGetOrderHandler(orderRepo),
		orderQuery.NewListOrdersHandler(orderRepo),
		orderQuery.NewGetStatsHandler(orderRepo),
	)

	// User handler
	userHandler := userDelivery.NewUserHandler(userRepo)

	// Bargain handler
	var bargainPublisher bargainCommand.EventPublisher
	if publisher != nil {
		bargainPublisher = publisher
	}
	bargainHandler := bargainDelivery.NewBargainHandler(
		bargainCommand.NewSubmitOfferHandler(offerRepo, catalogResolver, bargainPublisher),
		bargainCommand.NewRespondOfferHandler(offerRepo),
		bargainQuery.NewGetOfferHandler(offerRepo),
		bargainQuery.NewListOffersHandler(offerRepo),
	)

	// Custom design handler
	var customPublisher customCommand.EventPublisher
	if publisher != nil {
		customPublisher = publisher
	}
	customHandler := customDelivery.NewCustomHandler(
		customCommand.NewSubmitRequestHandler(requestRepo, customPublisher),
		customCommand.NewQuoteRequestHandler(requestRepo),
		customQuery.NewGetRequestHandler(requestRepo),
		customQuery.NewListRequestsHandler(requestRepo),
		customQuery.NewGetOptionsHandler(),
	)

	// Consume order placed events to keep catalog stock in sync.
	consumerCtx, stopConsumer := context.WithCancel(ctx)
	defer stopConsumer()
	if brokers[0] != "" {
		decrementHandler := catalogCommand.NewDecrementStockHandler(sareeRepo)
		consumer, err := kafka.NewConsumer(brokers, "storefront-catalog", []string{kafka.TopicOrderPlaced})
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to create kafka consumer")
		}
		defer consumer.Close()
		consumer.RegisterHandler("order.placed", orderPlacedHandler(decrementHandler))
		go func() {
			if err := consumer.Start(consumerCtx); err != nil && consumerCtx.Err() == nil {
				logger.Logger.Error().Err(err).Msg("Kafka consumer stopped")
			}
		}()
	}

	router := mux.NewRouter()

	catalogHandler.RegisterRoutes(router)
	orderHandler.RegisterRoutes(router)
	userHandler.RegisterRoutes(router)
	bargainHandler.RegisterRoutes(router)
	customHandler.RegisterRoutes(router)

	catalogHandler.RegisterHealthCheck(router, sqlDB)
	catalogDelivery.RegisterSwaggerDocs(router, httpSwagger.Handler())
	router.Handle("/metrics", promhttp.Handler())

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	port := getEnv("HTTP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      otelhttp.NewHandler(c.Handler(router), "storefront"),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Logger.Info().Str("port", port).Msg("Storefront HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down")
	stopConsumer()

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error().Err(err).Msg("HTTP server shutdown failed")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
