package login

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"trackadmin/api/authctx"
	"trackadmin/api/respond"
	"trackadmin/infrastructure/cache"
	"trackadmin/infrastructure/sqlite"
	"trackadmin/models"
)

const sessionLifetime = 12 * time.Hour

// LoginHandler authenticates the user and issues a bearer token.
func LoginHandler(db *sqlite.DB, sessionCache *cache.SessionCache, userCache *cache.UserCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var creds Credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			respond.Fail(w, "Invalid login payload")
			return
		}
		if strings.TrimSpace(creds.UserName) == "" || creds.Password == "" {
			respond.Fail(w, "User name and password are required")
			return
		}

		user, err := authenticateUser(r.Context(), db, creds.UserName, creds.Password)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				respond.Fail(w, "Invalid user name or password")
				return
			}
			slog.Error("login: authenticate user", slog.String("user", creds.UserName), slog.Any("err", err))
			respond.ServerError(w)
			return
		}

		session := models.Session{
			ID:        newSessionToken(),
			UserID:    user.ID,
			User:      user,
			ExpiresAt: time.Now().Add(sessionLifetime),
		}
		if err := persistSession(r.Context(), db, session); err != nil {
			slog.Error("login: persist session", slog.Any("err", err))
			respond.ServerError(w)
			return
		}

		sessionCache.Add(session)
		userCache.Add(user.UserName, user)

		respond.OK(w, SessionPayload{Token: session.ID, User: userPayload(user)})
	}
}

// LogoutHandler deletes the caller's session.
func LogoutHandler(db *sqlite.DB, sessionCache *cache.SessionCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := authctx.SessionFromContext(r.Context())
		if !ok {
			respond.Unauthorized(w)
			return
		}

		sessionCache.DeleteByToken(session.ID)
		if err := DeleteSessionByToken(r.Context(), db, session.ID); err != nil {
			slog.Error("logout: delete session", slog.Any("err", err))
			respond.ServerError(w)
			return
		}
		respond.OK(w, nil)
	}
}

func userPayload(user models.User) UserPayload {
	payload := UserPayload{
		ID:       user.ID,
		UserName: user.UserName,
		Name:     user.Name,
		Email:    user.Email,
	}
	if user.UserType != nil {
		payload.UserType = CategoryPayload{ID: user.UserType.ID, Name: user.UserType.Name}
	}
	return payload
}
