package reports

import (
	"context"

	"github.com/uptrace/bun"

	"trackadmin/infrastructure/sqlite"
)

type projectRegisterRow struct {
	ProjectID       int64  `bun:"project_id"`
	ProjectName     string `bun:"project_name"`
	BugSystemName   string `bun:"bug_system_name"`
	BugSystemURL    string `bun:"bug_system_url"`
	BugSystemType   string `bun:"bug_system_type"`
	RuleManagerName string `bun:"rule_manager_name"`
	RuleManagerURL  string `bun:"rule_manager_url"`
	RuleManagerType string `bun:"rule_manager_type"`
}

func loadProjectRegister(ctx context.Context, db *sqlite.DB) ([]projectRegisterRow, error) {
	rows := make([]projectRegisterRow, 0)
	err := db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		q := `
SELECT pj.id AS project_id, pj.name AS project_name,
       bs.name AS bug_system_name, bs.url AS bug_system_url, bst.name AS bug_system_type,
       rm.name AS rule_manager_name, rm.url AS rule_manager_url, rmt.name AS rule_manager_type
FROM projects pj
JOIN bug_systems bs ON bs.id = pj.bug_system_id
JOIN bug_system_types bst ON bst.id = bs.bug_system_type_id
JOIN rule_managers rm ON rm.id = pj.rule_manager_id
JOIN rule_manager_types rmt ON rmt.id = rm.rule_manager_type_id
ORDER BY pj.id ASC`
		return tx.NewRaw(q).Scan(ctx, &rows)
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}
