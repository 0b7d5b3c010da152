package profile

import (
	"context"
	"time"
)

type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Icon     string `json:"icon"`
}

// Profile is a singleton document: the store holds at most one, enforced by
// the repository's upsert.
type Profile struct {
	AboutText   string       `json:"aboutText"`
	ImageURL    string       `json:"imageUrl"`
	SocialLinks []SocialLink `json:"socialLinks"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// Default is what a read returns when no profile has been written yet, so
// consumers never have to branch on null.
func Default() *Profile {
	return &Profile{SocialLinks: []SocialLink{}}
}

type Repository interface {
	// Get returns the stored profile, or Default() when none exists.
	Get(ctx context.Context) (*Profile, error)
	// Upsert creates the profile if absent and replaces it otherwise.
	Upsert(ctx context.Context, p *Profile) error
}
