package categories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"

	"trackadmin/infrastructure/sqlite"
)

func loadCategories(ctx context.Context, db *sqlite.DB, table string) ([]Category, error) {
	cats := make([]Category, 0)
	err := db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewRaw(fmt.Sprintf("SELECT id, name FROM %s ORDER BY id ASC", table)).Scan(ctx, &cats)
	})
	return cats, err
}

func insertCategory(ctx context.Context, db *sqlite.DB, table, name string) (Category, error) {
	var id int64
	err := db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.ExecContext(ctx, fmt.Sprintf("INSERT INTO %s (name) VALUES (?)", table), name)
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return Category{}, err
	}
	return Category{ID: id, Name: name}, nil
}

func updateCategory(ctx context.Context, db *sqlite.DB, table string, cat Category) error {
	return db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.ExecContext(ctx, fmt.Sprintf("UPDATE %s SET name = ? WHERE id = ?", table), cat.Name, cat.ID)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return sql.ErrNoRows
		}
		return nil
	})
}

func deleteCategory(ctx context.Context, db *sqlite.DB, table string, id int64) error {
	return db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = ?", table), id)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return sql.ErrNoRows
		}
		return nil
	})
}
