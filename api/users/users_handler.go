package users

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"trackadmin/api/respond"
	"trackadmin/infrastructure/cache"
	"trackadmin/infrastructure/sqlite"
)

func ListHandler(db *sqlite.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := loadUsers(r.Context(), db)
		if err != nil {
			slog.Error("users: load", slog.Any("err", err))
			respond.ServerError(w)
			return
		}
		respond.OK(w, items)
	}
}

func CreateHandler(db *sqlite.DB, userCache *cache.UserCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var item User
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			respond.Fail(w, "Invalid User payload")
			return
		}
		if msg, ok := validate(item, true); !ok {
			respond.Fail(w, msg)
			return
		}

		created, err := insertUser(r.Context(), db, item)
		if err != nil {
			if sqlite.IsUniqueViolation(err) {
				respond.Fail(w, "User name already exists")
				return
			}
			if sqlite.IsForeignKeyViolation(err) {
				respond.Fail(w, "User Type does not exist")
				return
			}
			slog.Error("users: insert", slog.Any("err", err))
			respond.ServerError(w)
			return
		}
		respond.OK(w, created)
	}
}

func UpdateHandler(db *sqlite.DB, userCache *cache.UserCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var item User
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			respond.Fail(w, "Invalid User payload")
			return
		}
		if msg, ok := validate(item, false); !ok {
			respond.Fail(w, msg)
			return
		}

		updated, previousUserName, err := updateUser(r.Context(), db, item)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				respond.Fail(w, "User not found")
				return
			}
			if sqlite.IsUniqueViolation(err) {
				respond.Fail(w, "User name already exists")
				return
			}
			if sqlite.IsForeignKeyViolation(err) {
				respond.Fail(w, "User Type does not exist")
				return
			}
			slog.Error("users: update", slog.Any("err", err))
			respond.ServerError(w)
			return
		}

		// The cache is keyed by the name the row held before the update,
		// so a rename must evict under the old name.
		userCache.Delete(previousUserName)

		respond.OK(w, updated)
	}
}

func DeleteHandler(db *sqlite.DB, sessionCache *cache.SessionCache, userCache *cache.UserCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var id int64
		if err := json.NewDecoder(r.Body).Decode(&id); err != nil {
			respond.Fail(w, "Invalid User identifier")
			return
		}

		userName, err := deleteUser(r.Context(), db, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				respond.Fail(w, "User not found")
				return
			}
			slog.Error("users: delete", slog.Any("err", err))
			respond.ServerError(w)
			return
		}

		// The db rows are gone; drop the cached copies too, or the
		// deleted user's tokens would keep resolving until expiry.
		sessionCache.DeleteByUserID(id)
		userCache.Delete(userName)

		respond.OK(w, nil)
	}
}

func validate(item User, isNew bool) (string, bool) {
	userName := strings.TrimSpace(item.UserName)
	if len(userName) < 4 {
		return "User name must be at least 4 characters", false
	}
	if len(userName) > 100 {
		return "User name must be at most 100 characters", false
	}
	if strings.TrimSpace(item.Name) == "" || len(item.Name) > 100 {
		return "Name is required and must be at most 100 characters", false
	}
	if strings.TrimSpace(item.Email) == "" || len(item.Email) > 100 {
		return "Email is required and must be at most 100 characters", false
	}
	if isNew || item.Password != "" {
		if len(item.Password) < 6 {
			return "Password must be at least 6 characters", false
		}
		if len(item.Password) > 100 {
			return "Password must be at most 100 characters", false
		}
	}
	if item.UserType.ID == 0 {
		return "User Type is required", false
	}
	return "", true
}
