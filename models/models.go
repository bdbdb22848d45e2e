package models

import (
	"time"

	"github.com/uptrace/bun"
)

// UserType is a named category assigned to users.
type UserType struct {
	bun.BaseModel `bun:"table:user_types,alias:ut"`

	ID   int64  `bun:"id,pk,autoincrement"`
	Name string `bun:"name,unique,notnull"`
}

// BugSystemType is a named category assigned to bug systems.
type BugSystemType struct {
	bun.BaseModel `bun:"table:bug_system_types,alias:bst"`

	ID   int64  `bun:"id,pk,autoincrement"`
	Name string `bun:"name,unique,notnull"`
}

// RuleManagerType is a named category assigned to rule managers.
type RuleManagerType struct {
	bun.BaseModel `bun:"table:rule_manager_types,alias:rmt"`

	ID   int64  `bun:"id,pk,autoincrement"`
	Name string `bun:"name,unique,notnull"`
}

// BugSystem is an external bug tracker reachable at URL.
type BugSystem struct {
	bun.BaseModel `bun:"table:bug_systems,alias:bs"`

	ID              int64          `bun:"id,pk,autoincrement"`
	Name            string         `bun:"name,notnull"`
	URL             string         `bun:"url,notnull"`
	BugSystemTypeID int64          `bun:"bug_system_type_id,notnull"`
	BugSystemType   *BugSystemType `bun:"rel:belongs-to,join:bug_system_type_id=id"`
}

// RuleManager is an external rule engine reachable at URL.
type RuleManager struct {
	bun.BaseModel `bun:"table:rule_managers,alias:rm"`

	ID                int64            `bun:"id,pk,autoincrement"`
	Name              string           `bun:"name,notnull"`
	URL               string           `bun:"url,notnull"`
	RuleManagerTypeID int64            `bun:"rule_manager_type_id,notnull"`
	RuleManagerType   *RuleManagerType `bun:"rel:belongs-to,join:rule_manager_type_id=id"`
}

// Permission is a named grant managed through the console.
type Permission struct {
	bun.BaseModel `bun:"table:permissions,alias:pm"`

	ID   int64  `bun:"id,pk,autoincrement"`
	Name string `bun:"name,unique,notnull"`
}

// Project binds a bug system to the rule manager that watches it.
type Project struct {
	bun.BaseModel `bun:"table:projects,alias:pj"`

	ID            int64        `bun:"id,pk,autoincrement"`
	Name          string       `bun:"name,notnull"`
	BugSystemID   int64        `bun:"bug_system_id,notnull"`
	BugSystem     *BugSystem   `bun:"rel:belongs-to,join:bug_system_id=id"`
	RuleManagerID int64        `bun:"rule_manager_id,notnull"`
	RuleManager   *RuleManager `bun:"rel:belongs-to,join:rule_manager_id=id"`
}

// User is a console account.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID           int64     `bun:"id,pk,autoincrement"`
	UserName     string    `bun:"user_name,unique,notnull"`
	PasswordHash string    `bun:"password_hash,notnull"`
	Name         string    `bun:"name,notnull"`
	Email        string    `bun:"email,notnull"`
	UserTypeID   int64     `bun:"user_type_id,notnull"`
	UserType     *UserType `bun:"rel:belongs-to,join:user_type_id=id"`
}

// Session is used by the auth middleware and login handlers.
type Session struct {
	bun.BaseModel `bun:"table:sessions,alias:s"`

	ID        string    `bun:"id,pk"`
	UserID    int64     `bun:"user_id,notnull"`
	User      User      `bun:"rel:belongs-to,join:user_id=id"`
	ExpiresAt time.Time `bun:"expires_at,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

// Expired returns true when the session expiry time has passed.
func (s Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}
