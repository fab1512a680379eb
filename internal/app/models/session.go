package models

// Session is the admin session payload stored in Redis under the session
// id carried inside the JWT.
type Session struct {
	SessionID string `json:"session_id"`
	AdminID   string `json:"admin_id"`
	Username  string `json:"username"`
}
