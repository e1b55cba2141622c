package recordstore_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/pkordes/tripwise/backend/internal/recordstore"
	"github.com/pkordes/tripwise/backend/testutil"
)

// TestMain applies the goose migrations once when a test database is
// configured, so the Postgres backend tests never think about schema state.
func TestMain(m *testing.M) {
	if os.Getenv("TEST_DATABASE_URL") == "" {
		os.Exit(m.Run())
	}

	db := testutil.MustOpenSQLDB(os.Getenv("TEST_DATABASE_URL"))
	if err := recordstore.Migrate(context.Background(), db); err != nil {
		db.Close()
		log.Fatalf("TestMain: run migrations: %v", err)
	}
	db.Close()

	os.Exit(m.Run())
}
