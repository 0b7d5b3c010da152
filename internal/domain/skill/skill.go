package skill

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	TypeIcon  = "Icon"
	TypeEmoji = "Emoji"
)

// Item is a single skill. Value holds either an icon class string or an emoji
// glyph depending on Type; beyond non-empty, the store does not cross-check
// Value against Type.
type Item struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Value     string    `json:"value"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

var (
	ErrNameRequired  = errors.New("name is required")
	ErrValueRequired = errors.New("value is required")
	ErrInvalidType   = errors.New("type must be 'Icon' or 'Emoji'")
)

func (i *Item) Validate() error {
	if i.Name == "" {
		return ErrNameRequired
	}
	switch i.Type {
	case TypeIcon, TypeEmoji:
	default:
		return ErrInvalidType
	}
	if i.Value == "" {
		return ErrValueRequired
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, item *Item) error
	Update(ctx context.Context, item *Item) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Item, error)
	// List orders by category ascending, then name ascending.
	List(ctx context.Context) ([]*Item, error)
}
