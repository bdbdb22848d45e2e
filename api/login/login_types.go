package login

// Credentials is the login request payload.
type Credentials struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

// SessionPayload is the login response body persisted client-side.
type SessionPayload struct {
	Token string      `json:"token"`
	User  UserPayload `json:"user"`
}

type UserPayload struct {
	ID       int64           `json:"id"`
	UserName string          `json:"userName"`
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	UserType CategoryPayload `json:"userType"`
}

type CategoryPayload struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
