package portfolio

import (
	"context"

	"github.com/google/uuid"

	"github.com/khoahotran/portfolio-api/adapters/event"
	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type DeletePortfolioUseCase struct {
	repo      portfolio.Repository
	cache     service.ContentCache
	publisher service.EventPublisher
	logger    logger.Logger
}

func NewDeletePortfolioUseCase(repo portfolio.Repository, cache service.ContentCache, publisher service.EventPublisher, log logger.Logger) *DeletePortfolioUseCase {
	return &DeletePortfolioUseCase{repo: repo, cache: cache, publisher: publisher, logger: log}
}

func (uc *DeletePortfolioUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	invalidateAndPublish(ctx, uc.cache, uc.publisher, uc.logger, event.ContentEventTypeDeleted, id.String())
	return nil
}
