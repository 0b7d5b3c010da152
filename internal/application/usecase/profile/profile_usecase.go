package profile

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/adapters/event"
	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/profile"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type ProfileUseCase struct {
	repo      profile.Repository
	cache     service.ContentCache
	publisher service.EventPublisher
	logger    logger.Logger
}

func NewProfileUseCase(repo profile.Repository, cache service.ContentCache, publisher service.EventPublisher, log logger.Logger) *ProfileUseCase {
	return &ProfileUseCase{repo: repo, cache: cache, publisher: publisher, logger: log}
}

func (uc *ProfileUseCase) Get(ctx context.Context) (*profile.Profile, error) {
	var cached profile.Profile
	hit, err := uc.cache.Get(ctx, service.CacheKeyProfile, &cached)
	if err != nil {
		uc.logger.Warn("Profile cache read failed", zap.Error(err))
	}
	if hit {
		return &cached, nil
	}

	p, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if err := uc.cache.Set(ctx, service.CacheKeyProfile, p); err != nil {
		uc.logger.Warn("Profile cache write failed", zap.Error(err))
	}
	return p, nil
}

type UpsertProfileInput struct {
	AboutText   string
	ImageURL    string
	SocialLinks []profile.SocialLink
}

// Upsert replaces the whole singleton document; there is no partial write
// path for the profile.
func (uc *ProfileUseCase) Upsert(ctx context.Context, in UpsertProfileInput) (*profile.Profile, error) {
	links := in.SocialLinks
	if links == nil {
		links = []profile.SocialLink{}
	}

	p := &profile.Profile{
		AboutText:   in.AboutText,
		ImageURL:    in.ImageURL,
		SocialLinks: links,
		UpdatedAt:   time.Now().UTC(),
	}

	if err := uc.repo.Upsert(ctx, p); err != nil {
		return nil, err
	}

	if err := uc.cache.Invalidate(ctx, service.CacheKeyProfile); err != nil {
		uc.logger.Warn("Failed to invalidate profile cache", zap.Error(err))
	}

	go func() {
		payload := event.ContentEventPayload{
			EventType:  event.ContentEventTypeUpdated,
			Resource:   "profile",
			OccurredAt: time.Now().UTC(),
		}
		if err := uc.publisher.PublishContentEvent(context.Background(), payload); err != nil {
			uc.logger.Warn("Failed to publish profile content event", zap.Error(err))
		}
	}()

	return p, nil
}
