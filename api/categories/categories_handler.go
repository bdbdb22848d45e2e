package categories

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

// ListHandler returns every category of the resource.
func ListHandler(db *sqlite.DB, res Resource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cats, err := loadCategories(r.Context(), db, res.Table)
		if err != nil {
			slog.Error("categories: load", slog.String("table", res.Table), slog.Any("err", err))
			respond.ServerError(w)
			return
		}
		respond.OK(w, cats)
	}
}

// CreateHandler inserts a category. The body is either a bare JSON string
// (the name) or a full object, matching the original create convention.
func CreateHandler(db *sqlite.DB, res Resource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := decodeName(r)
		if !ok {
			respond.Fail(w, "Invalid "+res.Label+" payload")
			return
		}
		if msg, ok := validateName(name, res); !ok {
			respond.Fail(w, msg)
			return
		}

		cat, err := insertCategory(r.Context(), db, res.Table, strings.TrimSpace(name))
		if err != nil {
			if sqlite.IsUniqueViolation(err) {
				respond.Fail(w, res.Label+" already exists")
				return
			}
			slog.Error("categories: insert", slog.String("table", res.Table), slog.Any("err", err))
			respond.ServerError(w)
			return
		}
		respond.OK(w, cat)
	}
}

// UpdateHandler renames a category.
func UpdateHandler(db *sqlite.DB, res Resource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var cat Category
		if err := json.NewDecoder(r.Body).Decode(&cat); err != nil {
			respond.Fail(w, "Invalid "+res.Label+" payload")
			return
		}
		if msg, ok := validateName(cat.Name, res); !ok {
			respond.Fail(w, msg)
			return
		}
		cat.Name = strings.TrimSpace(cat.Name)

		if err := updateCategory(r.Context(), db, res.Table, cat); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				respond.Fail(w, res.Label+" not found")
				return
			}
			if sqlite.IsUniqueViolation(err) {
				respond.Fail(w, res.Label+" already exists")
				return
			}
			slog.Error("categories: update", slog.String("table", res.Table), slog.Any("err", err))
			respond.ServerError(w)
			return
		}
		respond.OK(w, cat)
	}
}

// DeleteHandler removes a category by id (PUT body). A category still
// referenced by another row reports "Row in use".
func DeleteHandler(db *sqlite.DB, res Resource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var id int64
		if err := json.NewDecoder(r.Body).Decode(&id); err != nil {
			respond.Fail(w, "Invalid "+res.Label+" identifier")
			return
		}

		if err := deleteCategory(r.Context(), db, res.Table, id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				respond.Fail(w, res.Label+" not found")
				return
			}
			if sqlite.IsForeignKeyViolation(err) {
				respond.Fail(w, "Row in use")
				return
			}
			slog.Error("categories: delete", slog.String("table", res.Table), slog.Any("err", err))
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
	var cat Category
	if err := json.Unmarshal(raw, &cat); err == nil {
		return cat.Name, true
	}
	return "", false
}

func validateName(name string, res Resource) (string, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return res.Label + " name is required", false
	}
	if len(name) > 100 {
		return res.Label + " name must be at most 100 characters", false
	}
	return "", true
}
