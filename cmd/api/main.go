package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"sync"
	"time"

	cartv1 "github.com/dwikikusuma/tuslibros/api/cart/v1"
	catalogv1 "github.com/dwikikusuma/tuslibros/api/catalog/v1"
	checkoutv1 "github.com/dwikikusuma/tuslibros/api/checkout/v1"
	salesv1 "github.com/dwikikusuma/tuslibros/api/sales/v1"

	cartapp "github.com/dwikikusuma/tuslibros/internal/cart/app"
	cartgrpc "github.com/dwikikusuma/tuslibros/internal/cart/grpc"
	cartadapter "github.com/dwikikusuma/tuslibros/internal/cart/infra/adapter"
	cartmem "github.com/dwikikusuma/tuslibros/internal/cart/infra/memory"
	cartpg "github.com/dwikikusuma/tuslibros/internal/cart/infra/postgres"
	cartredis "github.com/dwikikusuma/tuslibros/internal/cart/infra/redis"

	catalogapp "github.com/dwikikusuma/tuslibros/internal/catalog/app"
	cgrpc "github.com/dwikikusuma/tuslibros/internal/catalog/grpc"
	cmem "github.com/dwikikusuma/tuslibros/internal/catalog/infra/memory"
	cpg "github.com/dwikikusuma/tuslibros/internal/catalog/infra/postgres"

	checkoutapp "github.com/dwikikusuma/tuslibros/internal/checkout/app"
	checkoutgrpc "github.com/dwikikusuma/tuslibros/internal/checkout/grpc"
	checkoutadapter "github.com/dwikikusuma/tuslibros/internal/checkout/infra/adapter"
	"github.com/dwikikusuma/tuslibros/internal/checkout/infra/payment"

	salesapp "github.com/dwikikusuma/tuslibros/internal/sales/app"
	salesgrpc "github.com/dwikikusuma/tuslibros/internal/sales/grpc"
	salesadapter "github.com/dwikikusuma/tuslibros/internal/sales/infra/adapter"
	salesmem "github.com/dwikikusuma/tuslibros/internal/sales/infra/memory"
	salespg "github.com/dwikikusuma/tuslibros/internal/sales/infra/postgres"

	userapp "github.com/dwikikusuma/tuslibros/internal/user/app"
	userdomain "github.com/dwikikusuma/tuslibros/internal/user/domain"
	usermem "github.com/dwikikusuma/tuslibros/internal/user/infra/memory"

	"github.com/dwikikusuma/tuslibros/pkg/clock"
	"github.com/dwikikusuma/tuslibros/pkg/config"
	"github.com/dwikikusuma/tuslibros/pkg/logger"
	"github.com/dwikikusuma/tuslibros/pkg/postgres"
	"github.com/dwikikusuma/tuslibros/pkg/shutdown"
	"github.com/dwikikusuma/tuslibros/pkg/telemetry"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Service:   "api",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		Format:    cfg.LogFormat,
		AddSource: true,
	})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	if err := run(ctx, cancel, cfg, log); err != nil {
		log.Error("api stopped with error", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cancel context.CancelFunc, cfg config.Config, log *slog.Logger) error {
	seed, err := config.LoadSeed(cfg.SeedFile)
	if err != nil {
		return err
	}

	shutdownTracing, err := telemetry.Init(ctx, "tuslibros-api", cfg.OTLPEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer flushCancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Warn("tracer flush failed", slog.Any("err", err))
		}
	}()

	var db *sql.DB
	if cfg.DatabaseURL != "" {
		db, err = postgres.Open(postgres.Config{URL: cfg.DatabaseURL})
		if err != nil {
			return err
		}
		defer db.Close()
	}

	// Users
	users := make([]userdomain.User, 0, len(seed.Users))
	for _, u := range seed.Users {
		users = append(users, userdomain.User{Username: u.Username, Password: u.Password})
	}
	userSvc := userapp.NewService(usermem.NewUserRepo(users...))

	// Catalog
	var bookRepo catalogapp.BookRepo = cmem.NewBookRepo()
	if db != nil {
		repo := cpg.NewBookRepo(db)
		if err := repo.Migrate(ctx); err != nil {
			return fmt.Errorf("migrate catalog: %w", err)
		}
		bookRepo = repo
	}
	catalogSvc := catalogapp.NewService(bookRepo)
	for _, b := range seed.Books {
		_, err := catalogSvc.AddBook(ctx, catalogapp.NewBook{
			ISBN:     b.ISBN,
			Title:    b.Title,
			Author:   b.Author,
			Currency: seed.Currency,
			Amount:   b.Price,
		})
		if err != nil {
			return fmt.Errorf("seed book %s: %w", b.ISBN, err)
		}
	}

	// Cart
	cartRepo, err := openCartRepo(ctx, cfg, db)
	if err != nil {
		return err
	}
	cartSvc := cartapp.NewService(
		cartRepo,
		cartadapter.NewUserAuthenticator(userSvc),
		cartadapter.NewCatalogChecker(catalogSvc),
		log,
	)

	// Sales
	var saleBook salesapp.SaleBook = salesmem.NewSaleBook()
	if db != nil {
		repo := salespg.NewSaleRepo(db)
		if err := repo.Migrate(ctx); err != nil {
			return fmt.Errorf("migrate sales: %w", err)
		}
		saleBook = repo
	}
	salesSvc := salesapp.NewService(saleBook, salesadapter.NewUserAuthenticator(userSvc), seed.Currency, log)

	// Checkout (adapters)
	checkoutSvc := checkoutapp.NewService(checkoutapp.Deps{
		Cart:     checkoutadapter.NewCartServiceReader(cartSvc),
		Catalog:  checkoutadapter.NewCatalogServiceReader(catalogSvc),
		Payments: payment.NewSimulator(log, 0),
		Sales:    checkoutadapter.NewSalesServiceRecorder(salesSvc),
		Clock:    clock.System{},
		Log:      log,
	}, cfg.CheckoutMaxConcurrent)

	addr := fmt.Sprintf(":%d", cfg.GRPCPort)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}

	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	catalogv1.RegisterCatalogServiceServer(grpcServer, cgrpc.NewServer(catalogSvc))
	cartv1.RegisterCartServiceServer(grpcServer, cartgrpc.NewServer(cartSvc))
	checkoutv1.RegisterCheckoutServiceServer(grpcServer, checkoutgrpc.NewServer(checkoutSvc))
	salesv1.RegisterSalesServiceServer(grpcServer, salesgrpc.NewServer(salesSvc))

	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthSrv)
	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("grpc starting",
			slog.String("addr", addr),
			slog.String("cart_store", cfg.CartStore),
			slog.Bool("postgres", db != nil))
		if err := grpcServer.Serve(lis); err != nil {
			log.Error("grpc serve error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")
	healthSrv.Shutdown()

	if !shutdown.Graceful(10*time.Second, grpcServer.GracefulStop, grpcServer.Stop) {
		log.Warn("graceful stop timeout, forcing stop")
	}

	wg.Wait()
	log.Info("bye")
	return nil
}

func openCartRepo(ctx context.Context, cfg config.Config, db *sql.DB) (cartapp.CartRepo, error) {
	switch cfg.CartStore {
	case "", "memory":
		return cartmem.NewCartRepo(), nil
	case "redis":
		repo := cartredis.NewCartRepo(cartredis.NewClient(cfg.RedisAddr), 0)
		if err := repo.Ping(ctx); err != nil {
			return nil, fmt.Errorf("redis ping %s: %w", cfg.RedisAddr, err)
		}
		return repo, nil
	case "postgres":
		if db == nil {
			return nil, errors.New("CART_STORE=postgres requires DATABASE_URL")
		}
		repo := cartpg.NewCartRepo(db)
		if err := repo.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("migrate carts: %w", err)
		}
		return repo, nil
	}
	return nil, fmt.Errorf("unknown CART_STORE %q", cfg.CartStore)
}
