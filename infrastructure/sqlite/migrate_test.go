package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/uptrace/bun"
)

func TestApplyEmbeddedMigrations_CreatesSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate-test.db")
	db, err := OpenDB(dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := ApplyMigrations(context.Background(), db, ""); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	// Applying twice must be a no-op thanks to IF NOT EXISTS.
	if err := ApplyMigrations(context.Background(), db, ""); err != nil {
		t.Fatalf("re-apply migrations: %v", err)
	}

	tables := []string{
		"user_types", "bug_system_types", "rule_manager_types",
		"bug_systems", "rule_managers", "permissions", "projects", "users", "sessions",
	}
	for _, table := range tables {
		var count int
		err := db.WithReadTx(context.Background(), func(ctx context.Context, tx bun.Tx) error {
			return tx.NewRaw("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(ctx, &count)
		})
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if count != 1 {
			t.Fatalf("expected table %s to exist", table)
		}
	}
}

func TestOpenDB_RequiresPath(t *testing.T) {
	if _, err := OpenDB(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}
