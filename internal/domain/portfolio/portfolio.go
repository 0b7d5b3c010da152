package portfolio

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Item is a single portfolio entry. CustomHTML is stored and served verbatim:
// the admin is the only author, so the API performs no sanitization on it.
type Item struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CustomHTML  string    `json:"customHtml"`
	ImageURL    string    `json:"imageUrl"`
	IsLogo      bool      `json:"isLogo"`
	Tags        []string  `json:"tags"`
	Link        string    `json:"link"`
	CreatedAt   time.Time `json:"createdAt"`
}

var ErrTitleRequired = errors.New("title is required")

func (i *Item) Validate() error {
	if i.Title == "" {
		return ErrTitleRequired
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, item *Item) error
	Update(ctx context.Context, item *Item) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Item, error)
	// List returns every item, newest first.
	List(ctx context.Context) ([]*Item, error)
}
