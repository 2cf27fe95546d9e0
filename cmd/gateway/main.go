package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	cartv1 "github.com/dwikikusuma/tuslibros/api/cart/v1"
	checkoutv1 "github.com/dwikikusuma/tuslibros/api/checkout/v1"
	salesv1 "github.com/dwikikusuma/tuslibros/api/sales/v1"
	"github.com/dwikikusuma/tuslibros/internal/gateway"
	"github.com/dwikikusuma/tuslibros/pkg/config"
	"github.com/dwikikusuma/tuslibros/pkg/logger"
	"github.com/dwikikusuma/tuslibros/pkg/shutdown"
	"github.com/dwikikusuma/tuslibros/pkg/telemetry"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Service:   "gateway",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		Format:    cfg.LogFormat,
		AddSource: true,
	})

	root := context.Background()
	ctx, cancel := shutdown.WithSignals(root)
	defer cancel()

	shutdownTracing, err := telemetry.Init(ctx, "tuslibros-gateway", cfg.OTLPEndpoint)
	if err != nil {
		log.Error("telemetry init failed", slog.Any("err", err))
		os.Exit(1)
	}
	defer func() {
		flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer flushCancel()
		_ = shutdownTracing(flushCtx)
	}()

	conn, err := grpc.NewClient(cfg.APIAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	)
	if err != nil {
		log.Error("dial api failed", slog.Any("err", err), slog.String("addr", cfg.APIAddr))
		os.Exit(1)
	}
	defer conn.Close()

	health := healthpb.NewHealthClient(conn)
	handler := gateway.NewHandler(gateway.Options{
		Cart:     cartv1.NewCartServiceClient(conn),
		Checkout: checkoutv1.NewCheckoutServiceClient(conn),
		Sales:    salesv1.NewSalesServiceClient(conn),
		Ready: func(ctx context.Context) error {
			resp, err := health.Check(ctx, &healthpb.HealthCheckRequest{})
			if err != nil {
				return err
			}
			if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
				return fmt.Errorf("api status %s", resp.GetStatus())
			}
			return nil
		},
		Log: log,
	})

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("http server starting", slog.String("addr", addr), slog.String("api", cfg.APIAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown error", slog.Any("err", err))
	}

	wg.Wait()
	log.Info("bye")
}
