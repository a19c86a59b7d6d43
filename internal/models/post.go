package models

import "time"

type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UserID    int64     `json:"userId"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User     *Author   `json:"user,omitempty"`
	Comments []Comment `json:"comments,omitempty"`
}

func (p Post) OwnerID() int64 { return p.UserID }
