package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/adapters/event"
	"github.com/khoahotran/portfolio-api/adapters/persistence"
	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

// The worker keeps replica caches honest: every content mutation lands on
// content.events, and this process drops the matching cached list so reads
// served by other instances never outlive a write by more than the consumer
// lag.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting Portfolio cache worker...")

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Redis", err)
	}
	defer redisClient.Close()

	contentCache := persistence.NewRedisContentCache(redisClient, appLogger)

	consumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicContentEvents,
		GroupID:  "cache-invalidator-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer consumer.Close()

	appLogger.Info("Worker listening", zap.String("topic", event.TopicContentEvents))

	ctx := context.Background()
	for {
		msg, err := consumer.ReadMessage(ctx)
		if err != nil {
			appLogger.Error("Failed to read message from Kafka", err)
			continue
		}

		var payload event.ContentEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			appLogger.Warn("Failed to unmarshal content event, skipping", zap.Error(err))
			continue
		}

		key := cacheKeyForResource(payload.Resource)
		if key == "" {
			appLogger.Warn("Unknown resource in content event", zap.String("resource", payload.Resource))
			continue
		}

		if err := contentCache.Invalidate(ctx, key); err != nil {
			appLogger.Error("Failed to invalidate cache", err, zap.String("key", key))
			continue
		}

		appLogger.Info("Invalidated cache",
			zap.String("resource", payload.Resource),
			zap.String("event_type", payload.EventType),
		)
	}
}

func cacheKeyForResource(resource string) string {
	switch resource {
	case "portfolio":
		return service.CacheKeyPortfolio
	case "education":
		return service.CacheKeyEducation
	case "skills":
		return service.CacheKeySkills
	case "profile":
		return service.CacheKeyProfile
	default:
		return ""
	}
}
