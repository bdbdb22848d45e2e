package bugsystems

import (
	"context"
	"database/sql"

	"github.com/uptrace/bun"

	"trackadmin/infrastructure/sqlite"
	"trackadmin/models"
)

func loadBugSystems(ctx context.Context, db *sqlite.DB) ([]BugSystem, error) {
	rows := make([]models.BugSystem, 0)
	err := db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().
			Model(&rows).
			Relation("BugSystemType").
			Order("bs.id ASC").
			Scan(ctx)
	})
	if err != nil {
		return nil, err
	}

	out := make([]BugSystem, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromModel(row))
	}
	return out, nil
}

func insertBugSystem(ctx context.Context, db *sqlite.DB, item BugSystem) (BugSystem, error) {
	row := models.BugSystem{
		Name:            item.Name,
		URL:             item.URL,
		BugSystemTypeID: item.BugSystemType.ID,
	}
	err := db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(&row).Exec(ctx)
		return err
	})
	if err != nil {
		return BugSystem{}, err
	}
	return reloadBugSystem(ctx, db, row.ID)
}

func updateBugSystem(ctx context.Context, db *sqlite.DB, item BugSystem) (BugSystem, error) {
	err := db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewUpdate().
			Model((*models.BugSystem)(nil)).
			Set("name = ?", item.Name).
			Set("url = ?", item.URL).
			Set("bug_system_type_id = ?", item.BugSystemType.ID).
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
	if err != nil {
		return BugSystem{}, err
	}
	return reloadBugSystem(ctx, db, item.ID)
}

func deleteBugSystem(ctx context.Context, db *sqlite.DB, id int64) error {
	return db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewDelete().Model((*models.BugSystem)(nil)).Where("id = ?", id).Exec(ctx)
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

func reloadBugSystem(ctx context.Context, db *sqlite.DB, id int64) (BugSystem, error) {
	var row models.BugSystem
	err := db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().
			Model(&row).
			Relation("BugSystemType").
			Where("bs.id = ?", id).
			Limit(1).
			Scan(ctx)
	})
	if err != nil {
		return BugSystem{}, err
	}
	return fromModel(row), nil
}

func fromModel(row models.BugSystem) BugSystem {
	item := BugSystem{
		ID:   row.ID,
		Name: row.Name,
		URL:  row.URL,
	}
	if row.BugSystemType != nil {
		item.BugSystemType = Category{ID: row.BugSystemType.ID, Name: row.BugSystemType.Name}
	}
	return item
}
