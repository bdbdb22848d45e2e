package reports

import (
	"encoding/csv"
	"io"
	"strconv"
)

func writeProjectRegisterCSV(w io.Writer, rows []projectRegisterRow) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := []string{"project_id", "project_name", "bug_system", "bug_system_type", "bug_system_url", "rule_manager", "rule_manager_type", "rule_manager_url"}
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			strconv.FormatInt(row.ProjectID, 10),
			row.ProjectName,
			row.BugSystemName,
			row.BugSystemType,
			row.BugSystemURL,
			row.RuleManagerName,
			row.RuleManagerType,
			row.RuleManagerURL,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
