package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/khoahotran/portfolio-api/internal/config"
)

const TopicContentEvents = "content.events"

const (
	ContentEventTypeCreated = "created"
	ContentEventTypeUpdated = "updated"
	ContentEventTypeDeleted = "deleted"
)

// ContentEventPayload announces a successful mutation so other replicas can
// drop their cached lists. Resource matches the cache key suffix
// ("portfolio", "education", "skills", "profile").
type ContentEventPayload struct {
	EventType  string    `json:"event_type"`
	Resource   string    `json:"resource"`
	ID         string    `json:"id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type KafkaProducerClient struct {
	ContentEventsWriter *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	contentWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicContentEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducerClient{ContentEventsWriter: contentWriter}, nil
}

func (c *KafkaProducerClient) PublishContentEvent(ctx context.Context, payload ContentEventPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("cannot marshal content event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(payload.Resource),
		Value: value,
	}
	if err := c.ContentEventsWriter.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("cannot publish content event: %w", err)
	}
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.ContentEventsWriter != nil {
		c.ContentEventsWriter.Close()
	}
}
