package entity

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is an operator account. Authentication lives outside this service;
// requests arrive already tied to an operator id.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// IsAdmin reports whether the operator sees and acts on the whole portfolio.
// Non-admins are scoped to leads assigned to them.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ReadOnly is the capability flag the presentation boundary consumes in
// place of any client-side lockdown.
func (u User) ReadOnly() bool {
	return !u.IsAdmin()
}
