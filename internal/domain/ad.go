package domain

import (
	"fmt"
	"time"
)

// Common validation errors for Ad
var (
	ErrEmptyAdTitle = fmt.Errorf("%w: ad title cannot be empty", ErrValidation)
	ErrEmptyAdText  = fmt.Errorf("%w: ad text cannot be empty", ErrValidation)
	ErrEmptyAdOwner = fmt.Errorf("%w: ad owner cannot be empty", ErrValidation)
)

// Ad represents a classified posting owned by a user.
type Ad struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	OwnerID   int64     `json:"owner"`
	CreatedAt time.Time `json:"created_at"`
}

// AdSummary is the listing projection of an ad: the owner column is resolved
// to the owning user's name.
type AdSummary struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	OwnerName string    `json:"owner"`
	CreatedAt time.Time `json:"created_at"`
}

// NewAd creates a new Ad with the given title, text, and owner.
// It sets the creation timestamp; the timestamp is assigned once and is never
// updated afterwards. The ID is assigned by the store on insert.
// Returns an error if validation fails.
func NewAd(title, text string, ownerID int64) (*Ad, error) {
	ad := &Ad{
		Title:     title,
		Text:      text,
		OwnerID:   ownerID,
		CreatedAt: time.Now().UTC(),
	}

	if err := ad.Validate(); err != nil {
		return nil, err
	}

	return ad, nil
}

// Validate checks if the Ad has valid data.
// Returns an error if any field fails validation.
func (a *Ad) Validate() error {
	if a.Title == "" {
		return ErrEmptyAdTitle
	}

	if a.Text == "" {
		return ErrEmptyAdText
	}

	if a.OwnerID == 0 {
		return ErrEmptyAdOwner
	}

	return nil
}

// ApplyPatch overwrites the title and text with the given values, keeping the
// stored value wherever the new one is empty. An empty string is therefore
// indistinguishable from an omitted field and is silently ignored; callers
// cannot clear a field through this method. This matches the update semantics
// of the original interface (see DESIGN.md).
func (a *Ad) ApplyPatch(title, text string) {
	if title != "" {
		a.Title = title
	}

	if text != "" {
		a.Text = text
	}
}
