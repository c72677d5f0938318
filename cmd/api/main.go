// Command api serves the commerce REST API and a gRPC health endpoint.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/MikeMC777/commerce-api/internal/auth"
	"github.com/MikeMC777/commerce-api/internal/cache"
	"github.com/MikeMC777/commerce-api/internal/category"
	"github.com/MikeMC777/commerce-api/internal/config"
	"github.com/MikeMC777/commerce-api/internal/events"
	"github.com/MikeMC777/commerce-api/internal/order"
	"github.com/MikeMC777/commerce-api/internal/product"
	"github.com/MikeMC777/commerce-api/internal/storage/postgres"
	"github.com/MikeMC777/commerce-api/internal/user"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type publisher interface {
	order.EventPublisher
	Close() error
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(log)
	cfg.LogSummary(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.MigrateOnStart {
		if err := postgres.Migrate(cfg.PostgresDSN, log); err != nil {
			return err
		}
	}
	pool, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		return err
	}
	defer pool.Close()

	trManager := manager.Must(trmpgx.NewDefaultFactory(pool))

	var productCache product.Cache = product.NopCache{}
	if cfg.RedisAddr != "" {
		rc, err := cache.Connect(ctx, cache.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB})
		if err != nil {
			log.Warn("redis unavailable, product cache disabled", "err", err)
		} else {
			defer rc.Close()
			productCache = product.NewRedisCache(rc, cfg.ProductCacheTTL, log)
		}
	}

	var pub publisher = events.Nop{}
	if len(cfg.KafkaBrokers) > 0 {
		pub = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, log)
	}
	defer func() {
		if err := pub.Close(); err != nil {
			log.Warn("event publisher close", "err", err)
		}
	}()

	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.JWTTTL)
	productRepo := product.NewPGRepo(pool)
	users := user.NewService(user.NewPGRepo(pool), issuer)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	gin.SetMode(gin.ReleaseMode)
	router := newRouter(deps{
		log:        log,
		issuer:     issuer,
		products:   product.NewService(productRepo, trManager, productCache),
		orders:     order.NewService(order.NewPGRepo(pool), productRepo, users, trManager, pub, log),
		users:      users,
		categories: category.NewService(category.NewPGRepo(pool)),
		registry:   registry,
		ping:       pool.Ping,
	})

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	grpcSrv, hs := newGRPCServer(log)
	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("grpc listen %s: %w", cfg.GRPCAddr, err)
	}
	go watchHealth(ctx, hs, pool.Ping, 10*time.Second)

	errCh := make(chan error, 2)
	go func() {
		log.Info("http listening", "addr", cfg.HTTPAddr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http: %w", err)
		}
	}()
	go func() {
		log.Info("grpc listening", "addr", cfg.GRPCAddr)
		if err := grpcSrv.Serve(lis); err != nil {
			errCh <- fmt.Errorf("grpc: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case runErr = <-errCh:
		log.Error("server failed", "err", runErr)
	}

	hs.Shutdown()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown", "err", err)
	}
	stopped := make(chan struct{})
	go func() {
		grpcSrv.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-shutdownCtx.Done():
		grpcSrv.Stop()
	}
	log.Info("stopped")
	return runErr
}
