package domain

import "time"

// Rating bounds for a review.
const (
	RatingMin = 1
	RatingMax = 10
)

// Review is a user's opinion on a game. The username comes from the verified
// token claim, never from the request body.
type Review struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	GameID    string    `json:"game_id"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`

	// Game carries the joined catalog entry on list responses; nil elsewhere.
	Game *Game `json:"game,omitempty"`
}
