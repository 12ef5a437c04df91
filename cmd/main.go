package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	cartapp "github.com/muhammadheryan/storefront/application/cart"
	catalogapp "github.com/muhammadheryan/storefront/application/catalog"
	contactapp "github.com/muhammadheryan/storefront/application/contact"
	deliveryapp "github.com/muhammadheryan/storefront/application/delivery"
	inventoryapp "github.com/muhammadheryan/storefront/application/inventory"
	orderapp "github.com/muhammadheryan/storefront/application/order"
	userapp "github.com/muhammadheryan/storefront/application/user"
	"github.com/muhammadheryan/storefront/cmd/config"
	redisclient "github.com/muhammadheryan/storefront/cmd/redis"
	_ "github.com/muhammadheryan/storefront/docs"
	deliveryRepo "github.com/muhammadheryan/storefront/repository/delivery"
	inventoryRepo "github.com/muhammadheryan/storefront/repository/inventory"
	itemRepo "github.com/muhammadheryan/storefront/repository/item"
	orderRepo "github.com/muhammadheryan/storefront/repository/order"
	redisRepo "github.com/muhammadheryan/storefront/repository/redis"
	txRepo "github.com/muhammadheryan/storefront/repository/tx"
	userRepo "github.com/muhammadheryan/storefront/repository/user"
	"github.com/muhammadheryan/storefront/thirdparty/mailer"
	"github.com/muhammadheryan/storefront/thirdparty/rabbitmq"
	"github.com/muhammadheryan/storefront/transport"
	"github.com/muhammadheryan/storefront/utils/logger"
	"github.com/muhammadheryan/storefront/utils/metrics"
	validatorx "github.com/muhammadheryan/storefront/utils/validator"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// @title Storefront API
// @version 1.0
// @description Inventory, orders and delivery capacity for the storefront and its back office
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment, "storefront-api", cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// prices go over the wire as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
	validatorx.Init()

	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// alerts are optional; without RabbitMQ low-stock transitions are only logged
	var alertPublisher rabbitmq.AlertPublisher
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("rabbitmq unavailable, low stock alerts disabled", zap.Error(err))
	} else {
		alertPublisher = publisher
		defer publisher.Close()
	}

	notifier := mailer.NewClient(cfg.Mail)
	if cfg.Mail.NotifyEmail == "" {
		logger.Warn("NOTIFY_EMAIL not set, email notifications disabled")
	}

	// repositories
	TxRepo := txRepo.NewTxRepository(db)
	ItemRepo := itemRepo.NewItemRepository(db)
	InventoryRepo := inventoryRepo.NewInventoryRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	DeliveryRepo := deliveryRepo.NewDeliveryRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	RedisRepo := redisRepo.NewRepository(redisclient.Get())

	// application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo)
	handler := &transport.RestHandler{
		UserApp:      UserApp,
		InventoryApp: inventoryapp.NewInventoryApp(TxRepo, ItemRepo, InventoryRepo, alertPublisher),
		OrderApp:     orderapp.NewOrderApp(cfg, TxRepo, OrderRepo, ItemRepo, RedisRepo, notifier),
		DeliveryApp:  deliveryapp.NewDeliveryApp(DeliveryRepo),
		CatalogApp:   catalogapp.NewCatalogApp(ItemRepo),
		ContactApp:   contactapp.NewContactApp(notifier, cfg.Order.NotificationTimeout),
		CartApp:      cartapp.NewCartApp(RedisRepo, cfg.Order.CartTTL),
	}

	bootCtx, bootCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := UserApp.EnsureBootstrapAdmin(bootCtx); err != nil {
		logger.Error("bootstrap admin", zap.Error(err))
	}
	bootCancel()

	httpTransport := transport.NewTransport(handler, transport.Options{
		InternalAPIKey: cfg.Auth.InternalAPIKey,
		RateLimiter:    RedisRepo,
		RateLimit:      cfg.RateLimit,
		Metrics:        metrics.Get(),
	})

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var grpcServer *grpc.Server
	if cfg.Server.GRPCPort != "" {
		grpcServer = startHealthServer(ctx, cfg.Server.GRPCPort, db)
	}

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", zap.Error(err))
	}
	if grpcServer != nil {
		grpcServer.GracefulStop()
	}
}

// startHealthServer exposes grpc.health.v1 and flips the status with database reachability.
func startHealthServer(ctx context.Context, port string, db *sqlx.DB) *grpc.Server {
	lis, err := net.Listen("tcp", ":"+port)
	if err != nil {
		logger.Fatal("grpc listen", zap.Error(err))
	}

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				hs.Shutdown()
				return
			case <-ticker.C:
				pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
				status := healthpb.HealthCheckResponse_SERVING
				if err := db.PingContext(pingCtx); err != nil {
					logger.Warn("health: database unreachable", zap.Error(err))
					status = healthpb.HealthCheckResponse_NOT_SERVING
				}
				cancel()
				hs.SetServingStatus("", status)
			}
		}
	}()

	go func() {
		logger.Info("gRPC health server running", zap.String("port", port))
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc server", zap.Error(err))
		}
	}()
	return grpcServer
}
