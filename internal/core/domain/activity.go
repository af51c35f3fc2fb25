package domain

import "time"

// MaxActivityEntries caps the activity log; the store keeps only the 100
// most recent entries, newest first.
const MaxActivityEntries = 100

// Activity action tags.
const (
	ActionUserSignup     = "USER_SIGNUP"
	ActionUserLogin      = "USER_LOGIN"
	ActionViewArticles   = "VIEW_ARTICLES"
	ActionCreateArticle  = "CREATE_ARTICLE"
	ActionDeleteArticle  = "DELETE_ARTICLE"
	ActionUpdateProfile  = "UPDATE_PROFILE"
	ActionPasswordChange = "PASSWORD_CHANGE"
	ActionUpdateUser     = "UPDATE_USER"
	ActionDeleteUser     = "DELETE_USER"
)

// ActivityEntry is a single record in the append-only activity trail.
// Entries reference users by id and keep the name as recorded at the time
// of the action, so the trail survives user deletion.
type ActivityEntry struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	UserName  string         `json:"user_name"`
	Action    string         `json:"action"`
	Details   map[string]any `json:"details,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}
