package projects

// Project binds a bug system to the rule manager that watches it.
type Project struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	BugSystem   BugSystem   `json:"bugSystem"`
	RuleManager RuleManager `json:"ruleManager"`
}

type BugSystem struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	URL           string   `json:"url"`
	BugSystemType Category `json:"bugSystemType"`
}

type RuleManager struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	URL             string   `json:"url"`
	RuleManagerType Category `json:"ruleManagerType"`
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
