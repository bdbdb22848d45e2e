package login

import (
	"context"
	"database/sql"
	"strings"

	"github.com/uptrace/bun"

	"trackadmin/infrastructure/argon"
	"trackadmin/infrastructure/sqlite"
	"trackadmin/models"
)

func findUserByUserName(ctx context.Context, tx bun.Tx, userName string) (models.User, error) {
	var user models.User
	err := tx.NewSelect().
		Model(&user).
		Relation("UserType").
		Where("LOWER(user_name) = ?", strings.ToLower(strings.TrimSpace(userName))).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// authenticateUser returns the user when the password matches, or
// sql.ErrNoRows for an unknown user name or a wrong password.
func authenticateUser(ctx context.Context, db *sqlite.DB, userName, password string) (models.User, error) {
	var user models.User
	err := db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		var err error
		user, err = findUserByUserName(ctx, tx, userName)
		return err
	})
	if err != nil {
		return models.User{}, err
	}

	ok, err := argon.ComparePasswordAndHash(password, user.PasswordHash)
	if err != nil {
		return models.User{}, err
	}
	if !ok {
		return models.User{}, sql.ErrNoRows
	}
	return user, nil
}

func persistSession(ctx context.Context, db *sqlite.DB, session models.Session) error {
	return db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(&models.Session{
			ID:        session.ID,
			UserID:    session.UserID,
			ExpiresAt: session.ExpiresAt,
		}).Exec(ctx)
		return err
	})
}

// DeleteSessionByToken removes a session row. A blank token is a no-op.
func DeleteSessionByToken(ctx context.Context, db *sqlite.DB, token string) error {
	if strings.TrimSpace(token) == "" {
		return nil
	}
	return db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().Model((*models.Session)(nil)).Where("id = ?", token).Exec(ctx)
		return err
	})
}

// LoadSessionByToken loads a session with its user. Expired sessions are
// deleted and reported as sql.ErrNoRows.
func LoadSessionByToken(ctx context.Context, db *sqlite.DB, token string) (models.Session, error) {
	var session models.Session
	err := db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().
			Model(&session).
			Relation("User").
			Relation("User.UserType").
			Where("s.id = ?", token).
			Limit(1).
			Scan(ctx)
	})
	if err != nil {
		return models.Session{}, err
	}
	if session.Expired() {
		_ = DeleteSessionByToken(ctx, db, token)
		return models.Session{}, sql.ErrNoRows
	}
	return session, nil
}

// UpsertUser creates or refreshes an account with the given raw password.
// Used by the seed command and tests.
func UpsertUser(ctx context.Context, db *sqlite.DB, userName, name, email, rawPassword string, userTypeID int64) error {
	hash, err := argon.CreateHash(rawPassword, argon.DefaultParams)
	if err != nil {
		return err
	}
	return db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.ExecContext(ctx, `
INSERT INTO users (user_name, password_hash, name, email, user_type_id)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(user_name) DO UPDATE SET
  password_hash = excluded.password_hash,
  name = excluded.name,
  email = excluded.email,
  user_type_id = excluded.user_type_id`, userName, hash, name, email, userTypeID)
		return err
	})
}
