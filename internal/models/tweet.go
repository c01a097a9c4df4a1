package models

import "time"

// TweetDB represents a tweet row in the database
type TweetDB struct {
	ID        string    `json:"id" db:"id"`                // Opaque identifier (UUID v4)
	Text      string    `json:"text" db:"text"`            // Tweet body
	Username  string    `json:"username" db:"username"`    // Author username, immutable
	Name      string    `json:"name" db:"name"`            // Author display name at creation
	CreatedAt time.Time `json:"createdAt" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"` // Last text update
}

// TweetRequest represents the JSON body for creating or updating a tweet
// swagger:model TweetRequest
type TweetRequest struct {
	// Tweet text, at least 3 characters
	// required: true
	// example: hello world
	Text string `json:"text"`
}

// Tweet lifecycle event types
const (
	TweetCreated = "created"
	TweetUpdated = "updated"
	TweetDeleted = "deleted"
)

// TweetEvent is published on every successful tweet mutation.
type TweetEvent struct {
	EventID   string `json:"event_id"`
	Type      string `json:"type"`
	TweetID   string `json:"tweet_id"`
	Username  string `json:"username"`
	Name      string `json:"name,omitempty"`
	Text      string `json:"text,omitempty"`
	Timestamp int64  `json:"timestamp"` // Unix seconds
}
