package rulemanagers

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
		items, err := loadRuleManagers(r.Context(), db)
		if err != nil {
			slog.Error("rule managers: load", slog.Any("err", err))
			respond.ServerError(w)
			return
		}
		respond.OK(w, items)
	}
}

func CreateHandler(db *sqlite.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var item RuleManager
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			respond.Fail(w, "Invalid Rule Manager payload")
			return
		}
		if msg, ok := validate(item); !ok {
			respond.Fail(w, msg)
			return
		}

		created, err := insertRuleManager(r.Context(), db, item)
		if err != nil {
			if sqlite.IsForeignKeyViolation(err) {
				respond.Fail(w, "Rule Manager Type does not exist")
				return
			}
			slog.Error("rule managers: insert", slog.Any("err", err))
			respond.ServerError(w)
			return
		}
		respond.OK(w, created)
	}
}

func UpdateHandler(db *sqlite.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var item RuleManager
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			respond.Fail(w, "Invalid Rule Manager payload")
			return
		}
		if msg, ok := validate(item); !ok {
			respond.Fail(w, msg)
			return
		}

		updated, err := updateRuleManager(r.Context(), db, item)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				respond.Fail(w, "Rule Manager not found")
				return
			}
			if sqlite.IsForeignKeyViolation(err) {
				respond.Fail(w, "Rule Manager Type does not exist")
				return
			}
			slog.Error("rule managers: update", slog.Any("err", err))
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
			respond.Fail(w, "Invalid Rule Manager identifier")
			return
		}

		if err := deleteRuleManager(r.Context(), db, id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				respond.Fail(w, "Rule Manager not found")
				return
			}
			if sqlite.IsForeignKeyViolation(err) {
				respond.Fail(w, "Row in use")
				return
			}
			slog.Error("rule managers: delete", slog.Any("err", err))
			respond.ServerError(w)
			return
		}
		respond.OK(w, nil)
	}
}

func validate(item RuleManager) (string, bool) {
	if strings.TrimSpace(item.Name) == "" {
		return "Rule Manager name is required", false
	}
	if len(item.Name) > 100 {
		return "Rule Manager name must be at most 100 characters", false
	}
	if strings.TrimSpace(item.URL) == "" {
		return "Rule Manager URL is required", false
	}
	if item.RuleManagerType.ID == 0 {
		return "Rule Manager Type is required", false
	}
	return "", true
}
