package config

import "testing"

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := Load()
		if cfg.GRPCPort != 8081 || cfg.HTTPPort != 8080 || cfg.CartStore != "memory" || cfg.CheckoutMaxConcurrent != 10 {
			t.Fatalf("unexpected defaults %+v", cfg)
		}
	})

	t.Run("env overrides", func(t *testing.T) {
		t.Setenv("GRPC_PORT", "9000")
		t.Setenv("CART_STORE", "redis")
		t.Setenv("LOG_FORMAT", "text")
		cfg := Load()
		if cfg.GRPCPort != 9000 || cfg.CartStore != "redis" || cfg.LogFormat != "text" {
			t.Fatalf("overrides ignored %+v", cfg)
		}
	})

	t.Run("malformed int falls back", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "eighty")
		if cfg := Load(); cfg.HTTPPort != 8080 {
			t.Fatalf("expected default port, got %d", cfg.HTTPPort)
		}
	})
}
