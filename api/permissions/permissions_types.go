package permissions

// Permission is the wire shape of a named grant.
type Permission struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
