package permissions

import (
	"context"
	"database/sql"

	"github.com/uptrace/bun"

	"trackadmin/infrastructure/sqlite"
	"trackadmin/models"
)

func loadPermissions(ctx context.Context, db *sqlite.DB) ([]Permission, error) {
	rows := make([]models.Permission, 0)
	err := db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().Model(&rows).Order("pm.id ASC").Scan(ctx)
	})
	if err != nil {
		return nil, err
	}

	out := make([]Permission, 0, len(rows))
	for _, row := range rows {
		out = append(out, Permission{ID: row.ID, Name: row.Name})
	}
	return out, nil
}

func insertPermission(ctx context.Context, db *sqlite.DB, name string) (Permission, error) {
	row := models.Permission{Name: name}
	err := db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(&row).Exec(ctx)
		return err
	})
	if err != nil {
		return Permission{}, err
	}
	return Permission{ID: row.ID, Name: row.Name}, nil
}

func updatePermission(ctx context.Context, db *sqlite.DB, item Permission) error {
	return db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewUpdate().
			Model((*models.Permission)(nil)).
			Set("name = ?", item.Name).
			Where("id = ?", item.ID).
			Exec(ctx)
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

func deletePermission(ctx context.Context, db *sqlite.DB, id int64) error {
	return db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewDelete().Model((*models.Permission)(nil)).Where("id = ?", id).Exec(ctx)
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
