package api

import "time"

// Common request/response structures

// CreateUserRequest defines the payload for the user creation endpoint.
type CreateUserRequest struct {
	Name     string `json:"name"     validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreateAdRequest defines the payload for the ad creation endpoint.
type CreateAdRequest struct {
	Title  string `json:"title"   validate:"required"`
	Text   string `json:"text"    validate:"required"`
	UserID int64  `json:"user_id" validate:"required"`
}

// UpdateAdRequest defines the payload for the ad update endpoint.
// Both fields are optional; an empty value leaves the stored one unchanged.
type UpdateAdRequest struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// IDResponse is the success body for creations: the generated entity ID.
type IDResponse struct {
	ID int64 `json:"id"`
}

// AdResponse is one entry of the ad listing, with the owner column resolved
// to the owning user's name.
type AdResponse struct {
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	Owner     string    `json:"owner"`
	CreatedAt time.Time `json:"created_at"`
	ID        int64     `json:"id"`
}
