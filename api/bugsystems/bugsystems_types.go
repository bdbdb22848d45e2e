package bugsystems

// BugSystem is the wire shape of a bug tracker entry.
type BugSystem struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	URL           string   `json:"url"`
	BugSystemType Category `json:"bugSystemType"`
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
