package portfolio

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/adapters/event"
	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

var tracer = otel.Tracer("portfolio_usecase")

type CreatePortfolioUseCase struct {
	repo      portfolio.Repository
	cache     service.ContentCache
	publisher service.EventPublisher
	logger    logger.Logger
}

func NewCreatePortfolioUseCase(repo portfolio.Repository, cache service.ContentCache, publisher service.EventPublisher, log logger.Logger) *CreatePortfolioUseCase {
	return &CreatePortfolioUseCase{repo: repo, cache: cache, publisher: publisher, logger: log}
}

type CreatePortfolioInput struct {
	Title       string
	Description string
	CustomHTML  string
	ImageURL    string
	IsLogo      bool
	Tags        []string
	Link        string
}

type CreatePortfolioOutput struct {
	Item *portfolio.Item
}

func (uc *CreatePortfolioUseCase) Execute(ctx context.Context, input CreatePortfolioInput) (*CreatePortfolioOutput, error) {
	ctx, span := tracer.Start(ctx, "CreatePortfolio")
	defer span.End()

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	item := &portfolio.Item{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		CustomHTML:  input.CustomHTML,
		ImageURL:    input.ImageURL,
		IsLogo:      input.IsLogo,
		Tags:        tags,
		Link:        input.Link,
		CreatedAt:   time.Now().UTC(),
	}

	if err := item.Validate(); err != nil {
		span.RecordError(err)
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}

	if err := uc.repo.Save(ctx, item); err != nil {
		span.RecordError(err)
		return nil, err
	}

	invalidateAndPublish(ctx, uc.cache, uc.publisher, uc.logger, event.ContentEventTypeCreated, item.ID.String())

	return &CreatePortfolioOutput{Item: item}, nil
}

// invalidateAndPublish drops the cached portfolio list and announces the
// mutation. The cache drop is synchronous so a read that follows the write on
// this replica sees fresh data; the event covers other replicas.
func invalidateAndPublish(ctx context.Context, cache service.ContentCache, publisher service.EventPublisher, log logger.Logger, eventType, id string) {
	if err := cache.Invalidate(ctx, service.CacheKeyPortfolio); err != nil {
		log.Warn("Failed to invalidate portfolio cache", zap.Error(err))
	}

	go func() {
		payload := event.ContentEventPayload{
			EventType:  eventType,
			Resource:   "portfolio",
			ID:         id,
			OccurredAt: time.Now().UTC(),
		}
		if err := publisher.PublishContentEvent(context.Background(), payload); err != nil {
			log.Warn("Failed to publish portfolio content event", zap.String("item_id", id), zap.Error(err))
		}
	}()
}
