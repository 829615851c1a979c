package domain

// User is the authenticated account holder as returned by /auth/me.
type User struct {
	UserID  string `json:"user_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
	IsDemo  bool   `json:"is_demo"`
}
