package projects

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"trackadmin/api/respond"
	"trackadmin/infrastructure/sqlite"
)

func ListHandler(db *sqlite.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := loadProjects(r.Context(), db)
		if err != nil {
			slog.Error("projects: load", slog.Any("err", err))
			respond.ServerError(w)
			return
		}
		respond.OK(w, items)
	}
}

func CreateHandler(db *sqlite.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var item Project
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			respond.Fail(w, "Invalid Project payload")
			return
		}
		if msg, ok := validate(item); !ok {
			respond.Fail(w, msg)
			return
		}

		created, err := insertProject(r.Context(), db, item)
		if err != nil {
			if sqlite.IsForeignKeyViolation(err) {
				respond.Fail(w, "Referenced Bug System or Rule Manager does not exist")
				return
			}
			slog.Error("projects: insert", slog.Any("err", err))
			respond.ServerError(w)
			return
		}
		respond.OK(w, created)
	}
}

func UpdateHandler(db *sqlite.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var item Project
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			respond.Fail(w, "Invalid Project payload")
			return
		}
		if msg, ok := validate(item); !ok {
			respond.Fail(w, msg)
			return
		}

		updated, err := updateProject(r.Context(), db, item)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				respond.Fail(w, "Project not found")
				return
			}
			if sqlite.IsForeignKeyViolation(err) {
				respond.Fail(w, "Referenced Bug System or Rule Manager does not exist")
				return
			}
			slog.Error("projects: update", slog.Any("err", err))
			respond.ServerError(w)
			return
		}
		respond.OK(w, updated)
	}
}

func DeleteHandler(db *sqlite.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var id int64
		if err := json.NewDecoder(r.Body).Decode(&id); err != nil {
			respond.Fail(w, "Invalid Project identifier")
			return
		}

		if err := deleteProject(r.Context(), db, id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				respond.Fail(w, "Project not found")
				return
			}
			slog.Error("projects: delete", slog.Any("err", err))
			respond.ServerError(w)
			return
		}
		respond.OK(w, nil)
	}
}

func validate(item Project) (string, bool) {
	if strings.TrimSpace(item.Name) == "" {
		return "Project name is required", false
	}
	if len(item.Name) > 100 {
		return "Project name must be at most 100 characters", false
	}
	if item.BugSystem.ID == 0 {
		return "Bug System is required", false
	}
	if item.RuleManager.ID == 0 {
		return "Rule Manager is required", false
	}
	return "", true
}
