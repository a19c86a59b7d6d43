package models

import "time"

// Role is a named permission class referenced by users. The role set
// ("admin", "user") is seeded by migration and never mutated at runtime.
type Role struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
