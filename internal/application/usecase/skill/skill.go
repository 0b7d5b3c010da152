package skill

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/adapters/event"
	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/skill"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type SkillUseCase struct {
	repo      skill.Repository
	cache     service.ContentCache
	publisher service.EventPublisher
	logger    logger.Logger
}

func NewSkillUseCase(r skill.Repository, cache service.ContentCache, publisher service.EventPublisher, log logger.Logger) *SkillUseCase {
	return &SkillUseCase{repo: r, cache: cache, publisher: publisher, logger: log}
}

type CreateSkillInput struct {
	Name     string
	Type     string
	Value    string
	Category string
}

func (uc *SkillUseCase) Create(ctx context.Context, in CreateSkillInput) (*skill.Item, error) {
	item := &skill.Item{
		ID:        uuid.New(),
		Name:      in.Name,
		Type:      in.Type,
		Value:     in.Value,
		Category:  in.Category,
		CreatedAt: time.Now().UTC(),
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

type UpdateSkillInput struct {
	ID       uuid.UUID
	Name     *string
	Type     *string
	Value    *string
	Category *string
}

func (uc *SkillUseCase) Update(ctx context.Context, in UpdateSkillInput) (*skill.Item, error) {
	item, err := uc.repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Type != nil {
		item.Type = *in.Type
	}
	if in.Value != nil {
		item.Value = *in.Value
	}
	if in.Category != nil {
		item.Category = *in.Category
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

func (uc *SkillUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.afterMutation(ctx, event.ContentEventTypeDeleted, id.String())
	return nil
}

func (uc *SkillUseCase) List(ctx context.Context) ([]*skill.Item, error) {
	var cached []*skill.Item
	hit, err := uc.cache.Get(ctx, service.CacheKeySkills, &cached)
	if err != nil {
		uc.logger.Warn("Skill cache read failed", zap.Error(err))
	}
	if hit {
		return cached, nil
	}

	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := uc.cache.Set(ctx, service.CacheKeySkills, items); err != nil {
		uc.logger.Warn("Skill cache write failed", zap.Error(err))
	}
	return items, nil
}

func (uc *SkillUseCase) afterMutation(ctx context.Context, eventType, id string) {
	if err := uc.cache.Invalidate(ctx, service.CacheKeySkills); err != nil {
		uc.logger.Warn("Failed to invalidate skill cache", zap.Error(err))
	}

	go func() {
		payload := event.ContentEventPayload{
			EventType:  eventType,
			Resource:   "skills",
			ID:         id,
			OccurredAt: time.Now().UTC(),
		}
		if err := uc.publisher.PublishContentEvent(context.Background(), payload); err != nil {
			uc.logger.Warn("Failed to publish skill content event", zap.String("item_id", id), zap.Error(err))
		}
	}()
}
