package models

// User represents the authenticated account returned by /api/me and /api/login.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"` // "business", "investor" or "admin"
}

// IsAdmin reports whether the user may see the admin panel.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == "admin"
}

// SearchedUser is a row from /api/users/search, carrying the relationship
// between the searching user and the result.
type SearchedUser struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Role             string `json:"role"`
	ConnectionStatus string `json:"connection_status"` // "none", "sent", "received" or "connected"
}
