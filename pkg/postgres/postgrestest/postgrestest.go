// Package postgrestest opens the database the store tests run against.
// Tests are skipped unless TUSLIBROS_TEST_DATABASE_URL is set.
package postgrestest

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/dwikikusuma/tuslibros/pkg/postgres"
)

const EnvURL = "TUSLIBROS_TEST_DATABASE_URL"

// Open connects to the test database and applies each schema. The
// connection is closed when the test ends.
func Open(t testing.TB, schemas ...string) *sql.DB {
	t.Helper()

	url := os.Getenv(EnvURL)
	if url == "" {
		t.Skipf("%s not set", EnvURL)
	}

	db, err := postgres.Open(postgres.Config{URL: url, MaxOpenConns: 4})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	for _, ddl := range schemas {
		if err := postgres.ApplySchema(context.Background(), db, ddl); err != nil {
			t.Fatalf("apply schema: %v", err)
		}
	}
	return db
}
