package models

// Session is the client's persisted login.
type Session struct {
	Token  string `json:"token"`
	UserID int64  `json:"user_id"`
	Login  string `json:"login"`
}

// IsZero reports whether no session is stored.
func (s Session) IsZero() bool {
	return s.Token == ""
}
