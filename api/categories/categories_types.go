package categories

// Resource names one of the named-category tables and its URL segments.
type Resource struct {
	Route        string // path segment, e.g. "UserType"
	Method       string // list/create/update segment, e.g. "userType"
	DeleteMethod string // delete segment, e.g. "deleteUserType"
	Table        string // sql table name
	Label        string // human label used in messages
}

var (
	UserTypes = Resource{
		Route:        "UserType",
		Method:       "userType",
		DeleteMethod: "deleteUserType",
		Table:        "user_types",
		Label:        "User Type",
	}
	BugSystemTypes = Resource{
		Route:        "BugSystemType",
		Method:       "bugSystemType",
		DeleteMethod: "deleteBugSystemType",
		Table:        "bug_system_types",
		Label:        "Bug System Type",
	}
	RuleManagerTypes = Resource{
		Route:        "RuleManagerType",
		Method:       "ruleManagerType",
		DeleteMethod: "deleteRuleManagerType",
		Table:        "rule_manager_types",
		Label:        "Rule Manager Type",
	}
)

// Category is the wire shape shared by all three resources.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
