package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/uptrace/bun"

	"trackadmin/api/login"
	"trackadmin/infrastructure/sqlite"
)

func main() {
	dbPath := getenv("SQLITE_PATH", "trackadmin.db")

	db, err := sqlite.OpenDB(dbPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := sqlite.ApplyMigrations(context.Background(), db, ""); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	userTypeID, err := ensureUserType(context.Background(), db, "Administrator")
	if err != nil {
		log.Fatalf("seed user type: %v", err)
	}

	adminPassword := getenv("ADMIN_PASSWORD", "Admin123!Trackadmin")
	if err := login.UpsertUser(context.Background(), db, "admin", "Administrator", "admin@localhost", adminPassword, userTypeID); err != nil {
		log.Fatalf("seed admin: %v", err)
	}

	fmt.Println("seeded admin user (userName=admin)")
}

func ensureUserType(ctx context.Context, db *sqlite.DB, name string) (int64, error) {
	var id int64
	err := db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO user_types (name) VALUES (?) ON CONFLICT(name) DO NOTHING`, name); err != nil {
			return err
		}
		return tx.NewRaw(`SELECT id FROM user_types WHERE name = ?`, name).Scan(ctx, &id)
	})
	return id, err
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
