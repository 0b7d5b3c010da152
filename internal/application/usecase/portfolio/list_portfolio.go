package portfolio

import (
	"context"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type ListPortfolioUseCase struct {
	repo   portfolio.Repository
	cache  service.ContentCache
	logger logger.Logger
}

func NewListPortfolioUseCase(repo portfolio.Repository, cache service.ContentCache, log logger.Logger) *ListPortfolioUseCase {
	return &ListPortfolioUseCase{repo: repo, cache: cache, logger: log}
}

type ListPortfolioOutput struct {
	Items []*portfolio.Item
}

func (uc *ListPortfolioUseCase) Execute(ctx context.Context) (*ListPortfolioOutput, error) {
	var cached []*portfolio.Item
	hit, err := uc.cache.Get(ctx, service.CacheKeyPortfolio, &cached)
	if err != nil {
		uc.logger.Warn("Portfolio cache read failed", zap.Error(err))
	}
	if hit {
		return &ListPortfolioOutput{Items: cached}, nil
	}

	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.Set(ctx, service.CacheKeyPortfolio, items); err != nil {
		uc.logger.Warn("Portfolio cache write failed", zap.Error(err))
	}

	return &ListPortfolioOutput{Items: items}, nil
}
