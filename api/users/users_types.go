package users

// User is the wire shape of a console account. Password is accepted on
// create/update and never echoed back.
type User struct {
	ID       int64    `json:"id"`
	UserName string   `json:"userName"`
	Password string   `json:"password,omitempty"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	UserType Category `json:"userType"`
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
