package rulemanagers

import (
	"context"
	"database/sql"

	"github.com/uptrace/bun"

	"trackadmin/infrastructure/sqlite"
	"trackadmin/models"
)

func loadRuleManagers(ctx context.Context, db *sqlite.DB) ([]RuleManager, error) {
	rows := make([]models.RuleManager, 0)
	err := db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().
			Model(&rows).
			Relation("RuleManagerType").
			Order("rm.id ASC").
			Scan(ctx)
	})
	if err != nil {
		return nil, err
	}

	out := make([]RuleManager, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromModel(row))
	}
	return out, nil
}

func insertRuleManager(ctx context.Context, db *sqlite.DB, item RuleManager) (RuleManager, error) {
	row := models.RuleManager{
		Name:              item.Name,
		URL:               item.URL,
		RuleManagerTypeID: item.RuleManagerType.ID,
	}
	err := db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(&row).Exec(ctx)
		return err
	})
	if err != nil {
		return RuleManager{}, err
	}
	return reloadRuleManager(ctx, db, row.ID)
}

func updateRuleManager(ctx context.Context, db *sqlite.DB, item RuleManager) (RuleManager, error) {
	err := db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewUpdate().
			Model((*models.RuleManager)(nil)).
			Set("name = ?", item.Name).
			Set("url = ?", item.URL).
			Set("rule_manager_type_id = ?", item.RuleManagerType.ID).
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
		return RuleManager{}, err
	}
	return reloadRuleManager(ctx, db, item.ID)
}

func deleteRuleManager(ctx context.Context, db *sqlite.DB, id int64) error {
	return db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewDelete().Model((*models.RuleManager)(nil)).Where("id = ?", id).Exec(ctx)
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

func reloadRuleManager(ctx context.Context, db *sqlite.DB, id int64) (RuleManager, error) {
	var row models.RuleManager
	err := db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().
			Model(&row).
			Relation("RuleManagerType").
			Where("rm.id = ?", id).
			Limit(1).
			Scan(ctx)
	})
	if err != nil {
		return RuleManager{}, err
	}
	return fromModel(row), nil
}

func fromModel(row models.RuleManager) RuleManager {
	item := RuleManager{
		ID:   row.ID,
		Name: row.Name,
		URL:  row.URL,
	}
	if row.RuleManagerType != nil {
		item.RuleManagerType = Category{ID: row.RuleManagerType.ID, Name: row.RuleManagerType.Name}
	}
	return item
}
