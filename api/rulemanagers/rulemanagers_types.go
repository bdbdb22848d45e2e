package rulemanagers

// RuleManager is the wire shape of a rule engine entry.
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
