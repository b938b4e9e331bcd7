package models

import "time"

// Movie is a catalog entry. VideoKey and PosterKey are object-storage keys;
// the actual bytes live in the S3-compatible backend and are reached through
// presigned URLs.
type Movie struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Genres      []string  `json:"genres"`
	ReleaseYear int       `json:"releaseYear"`
	DurationMin int       `json:"durationMin"`
	VideoKey    string    `json:"videoKey,omitempty"`
	PosterKey   string    `json:"posterKey,omitempty"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
