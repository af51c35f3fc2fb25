package domain

import "time"

// Article is a demo content resource gated by the article permissions.
type Article struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

const (
	PermReadArticles   = "read:articles"
	PermWriteArticles  = "write:articles"
	PermDeleteArticles = "delete:articles"
)
