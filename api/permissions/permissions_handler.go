package permissions

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
		items, err := loadPermissions(r.Context(), db)
		if err != nil {
			slog.Error("permissions: load", slog.Any("err", err))
			respond.ServerError(w)
			return
		}
		respond.OK(w, items)
	}
}

// CreateHandler accepts a bare JSON string (the name) or a full object.
func CreateHandler(db *sqlite.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := decodeName(r)
		if !ok {
			respond.Fail(w, "Invalid Permission payload")
			return
		}
		name = strings.TrimSpace(name)
		if msg, ok := validateName(name); !ok {
			respond.Fail(w, msg)
			return
		}

		created, err := insertPermission(r.Context(), db, name)
		if err != nil {
			if sqlite.IsUniqueViolation(err) {
				respond.Fail(w, "Permission already exists")
				return
			}
			slog.Error("permissions: insert", slog.Any("err", err))
			respond.ServerError(w)
			return
		}
		respond.OK(w, created)
	}
}

func UpdateHandler(db *sqlite.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var item Permission
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			respond.Fail(w, "Invalid Permission payload")
			return
		}
		item.Name = strings.TrimSpace(item.Name)
		if msg, ok := validateName(item.Name); !ok {
			respond.Fail(w, msg)
			return
		}

		if err := updatePermission(r.Context(), db, item); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				respond.Fail(w, "Permission not found")
				return
			}
			if sqlite.IsUniqueViolation(err) {
				respond.Fail(w, "Permission already exists")
				return
			}
			slog.Error("permissions: update", slog.Any("err", err))
			respond.ServerError(w)
			return
		}
		respond.OK(w, item)
	}
}

func DeleteHandler(db *sqlite.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var id int64
		if err := json.NewDecoder(r.Body).Decode(&id); err != nil {
			respond.Fail(w, "Invalid Permission identifier")
			return
		}

		if err := deletePermission(r.Context(), db, id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				respond.Fail(w, "Permission not found")
				return
			}
			if sqlite.IsForeignKeyViolation(err) {
				respond.Fail(w, "Row in use")
				return
			}
			slog.Error("permissions: delete", slog.Any("err", err))
			respond.ServerError(w)
			return
		}
		respond.OK(w, nil)
	}
}

func decodeName(r *http.Request) (string, bool) {
	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return "", false
	}
	var name string
	if err := json.Unmarshal(raw, &name); err == nil {
		return name, true
	}
	var item Permission
	if err := json.Unmarshal(raw, &item); err == nil {
		return item.Name, true
	}
	return "", false
}

func validateName(name string) (string, bool) {
	if name == "" {
		return "Permission name is required", false
	}
	if len(name) > 100 {
		return "Permission name must be at most 100 characters", false
	}
	return "", true
}
