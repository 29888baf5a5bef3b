package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cervejaria-pos/internal/adapter/logger"
	"cervejaria-pos/internal/adapter/postgres"
	"cervejaria-pos/internal/adapter/rabbitmq"
	"cervejaria-pos/internal/app/accounts"
	"cervejaria-pos/internal/app/catalog"
	"cervejaria-pos/internal/app/order"
	"cervejaria-pos/internal/app/reports"
	"cervejaria-pos/internal/app/staff"
	"cervejaria-pos/internal/config"

	amqpAdapter "cervejaria-pos/internal/adapter/amqp"
	httpAdapter "cervejaria-pos/internal/adapter/http"
)

func main() {
	// Parse command-line flags
	mode := flag.String("mode", "api", "Service mode: api, notification-subscriber")
	configPath := flag.String("config", "config.yaml", "Path to config file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	// Initialize logger
	lgr := logger.New(*mode)

	// Connect to RabbitMQ
	mqConn, err := rabbitmq.Connect(cfg.RabbitMQ)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer mqConn.Close()

	lgr.Info("rabbitmq_connected", "Connected to RabbitMQ", "startup", map[string]interface{}{
		"host": cfg.RabbitMQ.Host,
	})

	switch *mode {
	case "api":
		runAPI(ctx, cfg, mqConn, lgr)

	case "notification-subscriber":
		runNotificationSubscriber(ctx, mqConn, lgr)

	default:
		log.Fatalf("Invalid mode: %s", *mode)
	}
}

func runAPI(ctx context.Context, cfg *config.Config, mqConn rabbitmq.Connection, lgr logger.Logger) {
	// Connect to PostgreSQL
	db, err := postgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer db.Close()

	lgr.Info("db_connected", "Connected to PostgreSQL database", "startup", map[string]interface{}{
		"host": cfg.Database.Host,
		"db":   cfg.Database.Database,
	})

	if err := postgres.RunMigrations(ctx, db, cfg.Server.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	productRepo := postgres.NewProductRepository(db)
	waiterRepo := postgres.NewWaiterRepository(db)
	cashierRepo := postgres.NewCashierRepository(db)
	orderRepo := postgres.NewOrderRepository(db)
	userRepo := postgres.NewUserRepository(db)
	reportRepo := postgres.NewReportRepository(db)

	// Initialize messaging
	publisher := rabbitmq.NewPublisher(mqConn)

	// Initialize services
	catalogService := catalog.NewService(productRepo, lgr)
	staffService := staff.NewService(waiterRepo, cashierRepo, lgr)
	orderService := order.NewService(orderRepo, productRepo, waiterRepo, cashierRepo, publisher, lgr)
	accountsService := accounts.NewService(userRepo, lgr)
	reportService := reports.NewService(reportRepo)

	// Initialize HTTP handlers
	productHandler := httpAdapter.NewProductHandler(catalogService, lgr)
	waiterHandler := httpAdapter.NewWaiterHandler(staffService, lgr)
	cashierHandler := httpAdapter.NewCashierHandler(staffService, reportService, lgr)
	orderHandler := httpAdapter.NewOrderHandler(orderService, reportService, lgr)
	orderItemHandler := httpAdapter.NewOrderItemHandler(orderService, reportService, lgr)
	userHandler := httpAdapter.NewUserHandler(accountsService, lgr)

	// Setup HTTP server
	mux := http.NewServeMux()
	mux.HandleFunc("/api/produtos", productHandler.Handle)
	mux.HandleFunc("/api/produtos/", productHandler.Handle)
	mux.HandleFunc("/api/garcons", waiterHandler.Handle)
	mux.HandleFunc("/api/garcons/", waiterHandler.Handle)
	mux.HandleFunc("/api/caixas", cashierHandler.Handle)
	mux.HandleFunc("/api/caixas/", cashierHandler.Handle)
	mux.HandleFunc("/api/pedidos", orderHandler.Handle)
	mux.HandleFunc("/api/pedidos/", orderHandler.Handle)
	mux.HandleFunc("/api/itens-pedido", orderItemHandler.Handle)
	mux.HandleFunc("/api/itens-pedido/", orderItemHandler.Handle)
	mux.HandleFunc("/api/usuarios", userHandler.Handle)
	mux.HandleFunc("/api/usuarios/", userHandler.Handle)

	// Apply middleware
	handler := httpAdapter.CORSMiddleware()(mux)
	handler = httpAdapter.LoggingMiddleware(lgr)(handler)
	handler = httpAdapter.RecoveryMiddleware(lgr)(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	lgr.Info("service_started", fmt.Sprintf("API started on port %d", cfg.Server.Port), "startup", map[string]interface{}{
		"port": cfg.Server.Port,
	})

	// Graceful shutdown
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		lgr.Info("shutdown_initiated", "Shutting down API", "shutdown", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			lgr.Error("shutdown_error", "Error during shutdown", "shutdown", nil, err)
		}
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		lgr.Error("server_error", "Server error", "runtime", nil, err)
	}
}

func runNotificationSubscriber(ctx context.Context, mqConn rabbitmq.Connection, lgr logger.Logger) {
	consumer := rabbitmq.NewConsumer(mqConn)
	notificationHandler := amqpAdapter.NewNotificationHandler(lgr)

	lgr.Info("service_started", "Notification Subscriber started", "startup", nil)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		if err := consumer.ConsumeNotifications(ctx, notificationHandler.HandleNotification); err != nil && err != context.Canceled {
			lgr.Error("consumer_error", "Error consuming notifications", "runtime", nil, err)
		}
	}()

	// Wait for shutdown signal
	sigint := make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
	<-sigint

	lgr.Info("shutdown_initiated", "Shutting down Notification Subscriber", "shutdown", nil)
}
