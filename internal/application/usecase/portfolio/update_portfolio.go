package portfolio

import (
	"context"

	"github.com/google/uuid"

	"github.com/khoahotran/portfolio-api/adapters/event"
	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type UpdatePortfolioUseCase struct {
	repo      portfolio.Repository
	cache     service.ContentCache
	publisher service.EventPublisher
	logger    logger.Logger
}

func NewUpdatePortfolioUseCase(repo portfolio.Repository, cache service.ContentCache, publisher service.EventPublisher, log logger.Logger) *UpdatePortfolioUseCase {
	return &UpdatePortfolioUseCase{repo: repo, cache: cache, publisher: publisher, logger: log}
}

// Pointer fields distinguish "not sent" from zero values, so a PUT may carry
// a partial field set.
type UpdatePortfolioInput struct {
	ID          uuid.UUID
	Title       *string
	Description *string
	CustomHTML  *string
	ImageURL    *string
	IsLogo      *bool
	Tags        *[]string
	Link        *string
}

type UpdatePortfolioOutput struct {
	Item *portfolio.Item
}

func (uc *UpdatePortfolioUseCase) Execute(ctx context.Context, input UpdatePortfolioInput) (*UpdatePortfolioOutput, error) {
	ctx, span := tracer.Start(ctx, "UpdatePortfolio")
	defer span.End()

	item, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if input.Title != nil {
		item.Title = *input.Title
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.CustomHTML != nil {
		item.CustomHTML = *input.CustomHTML
	}
	if input.ImageURL != nil {
		item.ImageURL = *input.ImageURL
	}
	if input.IsLogo != nil {
		item.IsLogo = *input.IsLogo
	}
	if input.Tags != nil {
		item.Tags = *input.Tags
	}
	if input.Link != nil {
		item.Link = *input.Link
	}

	if err := item.Validate(); err != nil {
		span.RecordError(err)
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}

	if err := uc.repo.Update(ctx, item); err != nil {
		span.RecordError(err)
		return nil, err
	}

	invalidateAndPublish(ctx, uc.cache, uc.publisher, uc.logger, event.ContentEventTypeUpdated, item.ID.String())

	return &UpdatePortfolioOutput{Item: item}, nil
}
