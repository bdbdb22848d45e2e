package projects

import (
	"context"
	"database/sql"

	"github.com/uptrace/bun"

	"trackadmin/infrastructure/sqlite"
	"trackadmin/models"
)

func loadProjects(ctx context.Context, db *sqlite.DB) ([]Project, error) {
	rows := make([]models.Project, 0)
	err := db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().
			Model(&rows).
			Relation("BugSystem").
			Relation("BugSystem.BugSystemType").
			Relation("RuleManager").
			Relation("RuleManager.RuleManagerType").
			Order("pj.id ASC").
			Scan(ctx)
	})
	if err != nil {
		return nil, err
	}

	out := make([]Project, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromModel(row))
	}
	return out, nil
}

func insertProject(ctx context.Context, db *sqlite.DB, item Project) (Project, error) {
	row := models.Project{
		Name:          item.Name,
		BugSystemID:   item.BugSystem.ID,
		RuleManagerID: item.RuleManager.ID,
	}
	err := db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(&row).Exec(ctx)
		return err
	})
	if err != nil {
		return Project{}, err
	}
	return reloadProject(ctx, db, row.ID)
}

func updateProject(ctx context.Context, db *sqlite.DB, item Project) (Project, error) {
	err := db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewUpdate().
			Model((*models.Project)(nil)).
			Set("name = ?", item.Name).
			Set("bug_system_id = ?", item.BugSystem.ID).
			Set("rule_manager_id = ?", item.RuleManager.ID).
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
		return Project{}, err
	}
	return reloadProject(ctx, db, item.ID)
}

func deleteProject(ctx context.Context, db *sqlite.DB, id int64) error {
	return db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewDelete().Model((*models.Project)(nil)).Where("id = ?", id).Exec(ctx)
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

func reloadProject(ctx context.Context, db *sqlite.DB, id int64) (Project, error) {
	var row models.Project
	err := db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().
			Model(&row).
			Relation("BugSystem").
			Relation("BugSystem.BugSystemType").
			Relation("RuleManager").
			Relation("RuleManager.RuleManagerType").
			Where("pj.id = ?", id).
			Limit(1).
			Scan(ctx)
	})
	if err != nil {
		return Project{}, err
	}
	return fromModel(row), nil
}

func fromModel(row models.Project) Project {
	item := Project{
		ID:   row.ID,
		Name: row.Name,
	}
	if row.BugSystem != nil {
		item.BugSystem = BugSystem{
			ID:   row.BugSystem.ID,
			Name: row.BugSystem.Name,
			URL:  row.BugSystem.URL,
		}
		if row.BugSystem.BugSystemType != nil {
			item.BugSystem.BugSystemType = Category{
				ID:   row.BugSystem.BugSystemType.ID,
				Name: row.BugSystem.BugSystemType.Name,
			}
		}
	}
	if row.RuleManager != nil {
		item.RuleManager = RuleManager{
			ID:   row.RuleManager.ID,
			Name: row.RuleManager.Name,
			URL:  row.RuleManager.URL,
		}
		if row.RuleManager.RuleManagerType != nil {
			item.RuleManager.RuleManagerType = Category{
				ID:   row.RuleManager.RuleManagerType.ID,
				Name: row.RuleManager.RuleManagerType.Name,
			}
		}
	}
	return item
}
