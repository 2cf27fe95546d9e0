package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestDSN(t *testing.T) {
	t.Run("discrete fields", func(t *testing.T) {
		cfg := Config{Host: "db", Port: 5432, User: "u", Pass: "p", DB: "shop"}
		want := "user=u password=p dbname=shop sslmode=disable host=db port=5432"
		if got := cfg.DSN(); got != want {
			t.Fatalf("got %q want %q", got, want)
		}
	})

	t.Run("url wins", func(t *testing.T) {
		cfg := Config{Host: "db", URL: "postgres://x@y/z"}
		if got := cfg.DSN(); got != "postgres://x@y/z" {
			t.Fatalf("got %q", got)
		}
	})
}

func TestIsUniqueViolation(t *testing.T) {
	if !IsUniqueViolation(fmt.Errorf("insert: %w", &pq.Error{Code: "23505"})) {
		t.Fatal("wrapped 23505 should be a unique violation")
	}
	if IsUniqueViolation(&pq.Error{Code: "23503"}) {
		t.Fatal("23503 is not a unique violation")
	}
	if IsUniqueViolation(errors.New("duplicate key")) {
		t.Fatal("plain errors are not unique violations")
	}
}

func TestIsOutOfRange(t *testing.T) {
	if !IsOutOfRange(fmt.Errorf("upsert: %w", &pq.Error{Code: "22003"})) {
		t.Fatal("wrapped 22003 should be out of range")
	}
	if IsOutOfRange(&pq.Error{Code: "23505"}) {
		t.Fatal("23505 is not out of range")
	}
}
