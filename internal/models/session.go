package models

// SessionUser is the reduced view of the authenticated account
type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session marks which user is authenticated in the current context
type Session struct {
	User      SessionUser   `json:"user"`
	Profile   UserSanitized `json:"profile"`
	CreatedAt string        `json:"createdAt,omitempty"`
}

// NewSession builds the session record for an authenticated user
func NewSession(u *User, createdAt string) Session {
	return Session{
		User:      SessionUser{ID: u.ID, Email: u.Email},
		Profile:   u.Sanitize(),
		CreatedAt: createdAt,
	}
}
