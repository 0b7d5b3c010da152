package education

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/adapters/event"
	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/education"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type EducationUseCase struct {
	repo      education.Repository
	cache     service.ContentCache
	publisher service.EventPublisher
	logger    logger.Logger
}

func NewEducationUseCase(r education.Repository, cache service.ContentCache, publisher service.EventPublisher, log logger.Logger) *EducationUseCase {
	return &EducationUseCase{repo: r, cache: cache, publisher: publisher, logger: log}
}

type CreateEducationInput struct {
	Institution string
	Degree      string
	Type        string
	StartDate   string
	EndDate     string
	Description string
}

func (uc *EducationUseCase) Create(ctx context.Context, in CreateEducationInput) (*education.Item, error) {
	item := &education.Item{
		ID:          uuid.New(),
		Institution: in.Institution,
		Degree:      in.Degree,
		Type:        in.Type,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Description: in.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := item.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	if err := uc.repo.Save(ctx, item); err != nil {
		return nil, err
	}
	uc.afterMutation(ctx, event.ContentEventTypeCreated, item.ID.String())
	return item, nil
}

type UpdateEducationInput struct {
	ID          uuid.UUID
	Institution *string
	Degree      *string
	Type        *string
	StartDate   *string
	EndDate     *string
	Description *string
}

func (uc *EducationUseCase) Update(ctx context.Context, in UpdateEducationInput) (*education.Item, error) {
	item, err := uc.repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Institution != nil {
		item.Institution = *in.Institution
	}
	if in.Degree != nil {
		item.Degree = *in.Degree
	}
	if in.Type != nil {
		item.Type = *in.Type
	}
	if in.StartDate != nil {
		item.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		item.EndDate = *in.EndDate
	}
	if in.Description != nil {
		item.Description = *in.Description
	}

	if err := item.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	uc.afterMutation(ctx, event.ContentEventTypeUpdated, item.ID.String())
	return item, nil
}

func (uc *EducationUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.afterMutation(ctx, event.ContentEventTypeDeleted, id.String())
	return nil
}

func (uc *EducationUseCase) List(ctx context.Context) ([]*education.Item, error) {
	var cached []*education.Item
	hit, err := uc.cache.Get(ctx, service.CacheKeyEducation, &cached)
	if err != nil {
		uc.logger.Warn("Education cache read failed", zap.Error(err))
	}
	if hit {
		return cached, nil
	}

	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := uc.cache.Set(ctx, service.CacheKeyEducation, items); err != nil {
		uc.logger.Warn("Education cache write failed", zap.Error(err))
	}
	return items, nil
}

func (uc *EducationUseCase) afterMutation(ctx context.Context, eventType, id string) {
	if err := uc.cache.Invalidate(ctx, service.CacheKeyEducation); err != nil {
		uc.logger.Warn("Failed to invalidate education cache", zap.Error(err))
	}

	go func() {
		payload := event.ContentEventPayload{
			EventType:  eventType,
			Resource:   "education",
			ID:         id,
			OccurredAt: time.Now().UTC(),
		}
		if err := uc.publisher.PublishContentEvent(context.Background(), payload); err != nil {
			uc.logger.Warn("Failed to publish education content event", zap.String("item_id", id), zap.Error(err))
		}
	}()
}
