package education

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	TypeFormal    = "Formal"
	TypeTechnical = "Technical"
)

// Item is one education entry. StartDate and EndDate are free text, not
// parsed dates: values like "2019" or "Present" pass through untouched.
type Item struct {
	ID          uuid.UUID `json:"id"`
	Institution string    `json:"institution"`
	Degree      string    `json:"degree"`
	Type        string    `json:"type"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

var (
	ErrInstitutionRequired = errors.New("institution is required")
	ErrDegreeRequired      = errors.New("degree is required")
	ErrInvalidType         = errors.New("type must be 'Formal' or 'Technical'")
)

func (i *Item) Validate() error {
	if i.Institution == "" {
		return ErrInstitutionRequired
	}
	if i.Degree == "" {
		return ErrDegreeRequired
	}
	switch i.Type {
	case TypeFormal, TypeTechnical:
	default:
		return ErrInvalidType
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, item *Item) error
	Update(ctx context.Context, item *Item) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Item, error)
	// List orders by start_date descending as a plain string sort. "Present"
	// and two-digit years sort lexically; that matches the site this replaces.
	List(ctx context.Context) ([]*Item, error)
}
