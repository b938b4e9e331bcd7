package models

import "time"

// Favorite marks a movie as favorited by a user. The (UserID, MovieID) pair
// is unique and rows are removed when either side is deleted.
type Favorite struct {
	UserID    string    `json:"userId"`
	MovieID   string    `json:"movieId"`
	CreatedAt time.Time `json:"createdAt"`
}
