package client

import (
	"context"
	"net/http"

	"trackadmin/console"
)

// Repository binds one entity collection to its server resource. List,
// create and update share the same path with the HTTP verb selecting
// the operation; delete has its own path and takes the row id as the
// request body.
type Repository[T console.Entity] struct {
	c          *Client
	listPath   string
	deletePath string
}

func NewRepository[T console.Entity](c *Client, resource, method, deleteMethod string) *Repository[T] {
	return &Repository[T]{
		c:          c,
		listPath:   resource + "/" + method,
		deletePath: resource + "/" + deleteMethod,
	}
}

func (r *Repository[T]) Load(ctx context.Context) ([]T, error) {
	var items []T
	if err := r.c.do(ctx, http.MethodGet, r.listPath, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Repository[T]) Create(ctx context.Context, item T) (T, error) {
	var created T
	if err := r.c.do(ctx, http.MethodPost, r.listPath, item, &created); err != nil {
		var zero T
		return zero, err
	}
	return created, nil
}

func (r *Repository[T]) Update(ctx context.Context, item T) (T, error) {
	var updated T
	if err := r.c.do(ctx, http.MethodPut, r.listPath, item, &updated); err != nil {
		var zero T
		return zero, err
	}
	return updated, nil
}

func (r *Repository[T]) Delete(ctx context.Context, id int64) error {
	return r.c.do(ctx, http.MethodPut, r.deletePath, id, nil)
}

func NewUserTypeRepository(c *Client) *Repository[Category] {
	return NewRepository[Category](c, "UserType", "userType", "deleteUserType")
}

func NewBugSystemTypeRepository(c *Client) *Repository[Category] {
	return NewRepository[Category](c, "BugSystemType", "bugSystemType", "deleteBugSystemType")
}

func NewRuleManagerTypeRepository(c *Client) *Repository[Category] {
	return NewRepository[Category](c, "RuleManagerType", "ruleManagerType", "deleteRuleManagerType")
}

func NewBugSystemRepository(c *Client) *Repository[BugSystem] {
	return NewRepository[BugSystem](c, "BugSystem", "bugSystem", "deleteBugSystem")
}

func NewRuleManagerRepository(c *Client) *Repository[RuleManager] {
	return NewRepository[RuleManager](c, "RuleManager", "ruleManager", "deleteRuleManager")
}

func NewPermissionRepository(c *Client) *Repository[Permission] {
	return NewRepository[Permission](c, "Permission", "permission", "deletePermission")
}

func NewProjectRepository(c *Client) *Repository[Project] {
	return NewRepository[Project](c, "Project", "project", "deleteProject")
}

func NewUserRepository(c *Client) *Repository[User] {
	return NewRepository[User](c, "User", "user", "deleteUser")
}
