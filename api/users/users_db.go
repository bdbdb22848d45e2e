package users

import (
	"context"
	"database/sql"

	"github.com/uptrace/bun"

	"trackadmin/infrastructure/argon"
	"trackadmin/infrastructure/sqlite"
	"trackadmin/models"
)

func loadUsers(ctx context.Context, db *sqlite.DB) ([]User, error) {
	rows := make([]models.User, 0)
	err := db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().
			Model(&rows).
			Relation("UserType").
			Order("u.id ASC").
			Scan(ctx)
	})
	if err != nil {
		return nil, err
	}

	out := make([]User, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromModel(row))
	}
	return out, nil
}

func insertUser(ctx context.Context, db *sqlite.DB, item User) (User, error) {
	hash, err := argon.CreateHash(item.Password, argon.DefaultParams)
	if err != nil {
		return User{}, err
	}

	row := models.User{
		UserName:     item.UserName,
		PasswordHash: hash,
		Name:         item.Name,
		Email:        item.Email,
		UserTypeID:   item.UserType.ID,
	}
	err = db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(&row).Exec(ctx)
		return err
	})
	if err != nil {
		return User{}, err
	}
	return reloadUser(ctx, db, row.ID)
}

// updateUser rewrites the account row. A blank password keeps the stored
// hash; a non-blank one is rehashed. The user name the row held before
// the update is returned so callers can evict cache entries keyed by it.
func updateUser(ctx context.Context, db *sqlite.DB, item User) (User, string, error) {
	var previousUserName string
	err := db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		if err := tx.NewRaw(`SELECT user_name FROM users WHERE id = ?`, item.ID).Scan(ctx, &previousUserName); err != nil {
			return err
		}

		q := tx.NewUpdate().
			Model((*models.User)(nil)).
			Set("user_name = ?", item.UserName).
			Set("name = ?", item.Name).
			Set("email = ?", item.Email).
			Set("user_type_id = ?", item.UserType.ID).
			Where("id = ?", item.ID)

		if item.Password != "" {
			hash, err := argon.CreateHash(item.Password, argon.DefaultParams)
			if err != nil {
				return err
			}
			q = q.Set("password_hash = ?", hash)
		}

		res, err := q.Exec(ctx)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return sql.ErrNoRows
		}
		return nil
	})
	if err != nil {
		return User{}, "", err
	}
	updated, err := reloadUser(ctx, db, item.ID)
	if err != nil {
		return User{}, "", err
	}
	return updated, previousUserName, nil
}

// deleteUser removes the account and its session rows, returning the
// deleted user name so callers can evict cache entries keyed by it.
func deleteUser(ctx context.Context, db *sqlite.DB, id int64) (string, error) {
	var userName string
	err := db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		if err := tx.NewRaw(`SELECT user_name FROM users WHERE id = ?`, id).Scan(ctx, &userName); err != nil {
			return err
		}
		if _, err := tx.NewDelete().Model((*models.Session)(nil)).Where("user_id = ?", id).Exec(ctx); err != nil {
			return err
		}
		res, err := tx.NewDelete().Model((*models.User)(nil)).Where("id = ?", id).Exec(ctx)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return sql.ErrNoRows
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return userName, nil
}

func reloadUser(ctx context.Context, db *sqlite.DB, id int64) (User, error) {
	var row models.User
	err := db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().
			Model(&row).
			Relation("UserType").
			Where("u.id = ?", id).
			Limit(1).
			Scan(ctx)
	})
	if err != nil {
		return User{}, err
	}
	return fromModel(row), nil
}

func fromModel(row models.User) User {
	item := User{
		ID:       row.ID,
		UserName: row.UserName,
		Name:     row.Name,
		Email:    row.Email,
	}
	if row.UserType != nil {
		item.UserType = Category{ID: row.UserType.ID, Name: row.UserType.Name}
	}
	return item
}
