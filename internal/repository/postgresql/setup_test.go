package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/rota-backend-go/internal/repository"
	"github.com/cmlabs-hris/rota-backend-go/internal/repository/postgresql"
)

// testDB stays nil when TEST_DATABASE_URL is unset; every test then skips.
var testDB *database.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		db, err := database.NewPostgreSQLDB(ctx, dsn, database.PoolOptions{MaxConns: 4})
		cancel()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to connect to test database: %v\n", err)
			os.Exit(1)
		}
		if err := postgresql.EnsureSchema(context.Background(), db); err != nil {
			fmt.Fprintf(os.Stderr, "failed to apply schema: %v\n", err)
			os.Exit(1)
		}
		testDB = db
	}

	code := m.Run()
	if testDB != nil {
		testDB.Close()
	}
	os.Exit(code)
}

// setupTestData returns a repository set over freshly truncated tables.
func setupTestData(t *testing.T) repository.Set {
	t.Helper()
	if testDB == nil {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	for _, table := range []string{"staff", "shifts", "availability", "holiday_requests", "notifications"} {
		if _, err := testDB.Exec(ctx, "TRUNCATE TABLE "+table+" RESTART IDENTITY CASCADE"); err != nil {
			t.Fatalf("failed to truncate table %s: %v", table, err)
		}
	}
	if _, err := testDB.Exec(ctx, "UPDATE staff_sequence SET next_value = 1"); err != nil {
		t.Fatalf("failed to reset staff sequence: %v", err)
	}
	return postgresql.NewSet(testDB)
}
