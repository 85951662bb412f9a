package domain

import "time"

// Game is a catalog entry. Managed exclusively by admins; readable by anyone.
type Game struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Title       string    `json:"title" bson:"title"`
	Genre       string    `json:"genre" bson:"genre"`
	ReleaseYear int       `json:"release_year" bson:"release_year"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
