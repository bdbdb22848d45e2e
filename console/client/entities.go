package client

// Category is a named lookup row: user types, bug system types and
// rule manager types all share this shape.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (c Category) EntityID() int64 { return c.ID }

type BugSystem struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	URL           string   `json:"url"`
	BugSystemType Category `json:"bugSystemType"`
}

func (b BugSystem) EntityID() int64 { return b.ID }

type RuleManager struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	URL             string   `json:"url"`
	RuleManagerType Category `json:"ruleManagerType"`
}

func (r RuleManager) EntityID() int64 { return r.ID }

type Permission struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (p Permission) EntityID() int64 { return p.ID }

type Project struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	BugSystem   BugSystem   `json:"bugSystem"`
	RuleManager RuleManager `json:"ruleManager"`
}

func (p Project) EntityID() int64 { return p.ID }

// User carries the password only on the way to the server; the server
// never echoes it back.
type User struct {
	ID       int64    `json:"id"`
	UserName string   `json:"userName"`
	Password string   `json:"password,omitempty"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	UserType Category `json:"userType"`
}

func (u User) EntityID() int64 { return u.ID }
