package bugsystems

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
		items, err := loadBugSystems(r.Context(), db)
		if err != nil {
			slog.Error("bug systems: load", slog.Any("err", err))
			respond.ServerError(w)
			return
		}
		respond.OK(w, items)
	}
}

func CreateHandler(db *sqlite.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var item BugSystem
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			respond.Fail(w, "Invalid Bug System payload")
			return
		}
		if msg, ok := validate(item); !ok {
			respond.Fail(w, msg)
			return
		}

		created, err := insertBugSystem(r.Context(), db, item)
		if err != nil {
			if sqlite.IsForeignKeyViolation(err) {
				respond.Fail(w, "Bug System Type does not exist")
				return
			}
			slog.Error("bug systems: insert", slog.Any("err", err))
			respond.ServerError(w)
			return
		}
		respond.OK(w, created)
	}
}

func UpdateHandler(db *sqlite.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var item BugSystem
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			respond.Fail(w, "Invalid Bug System payload")
			return
		}
		if msg, ok := validate(item); !ok {
			respond.Fail(w, msg)
			return
		}

		updated, err := updateBugSystem(r.Context(), db, item)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				respond.Fail(w, "Bug System not found")
				return
			}
			if sqlite.IsForeignKeyViolation(err) {
				respond.Fail(w, "Bug System Type does not exist")
				return
			}
			slog.Error("bug systems: update", slog.Any("err", err))
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
			respond.Fail(w, "Invalid Bug System identifier")
			return
		}

		if err := deleteBugSystem(r.Context(), db, id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				respond.Fail(w, "Bug System not found")
				return
			}
			if sqlite.IsForeignKeyViolation(err) {
				respond.Fail(w, "Row in use")
				return
			}
			slog.Error("bug systems: delete", slog.Any("err", err))
			respond.ServerError(w)
			return
		}
		respond.OK(w, nil)
	}
}

func validate(item BugSystem) (string, bool) {
	if strings.TrimSpace(item.Name) == "" {
		return "Bug System name is required", false
	}
	if len(item.Name) > 100 {
		return "Bug System name must be at most 100 characters", false
	}
	if strings.TrimSpace(item.URL) == "" {
		return "Bug System URL is required", false
	}
	if item.BugSystemType.ID == 0 {
		return "Bug System Type is required", false
	}
	return "", true
}
