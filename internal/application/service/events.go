package service

import (
	"context"

	"github.com/khoahotran/portfolio-api/adapters/event"
)

// EventPublisher is the slice of the kafka producer the usecases need.
type EventPublisher interface {
	PublishContentEvent(ctx context.Context, payload event.ContentEventPayload) error
}
