package services

//go:generate mockgen -source=analytics.go -destination=analytics_mock.go -package=services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/gearted/gearted-backend/internal/besteffort"
	"github.com/gearted/gearted-backend/internal/logger"
	"github.com/gearted/gearted-backend/internal/models"
	"github.com/segmentio/kafka-go"
)

const defaultPublishTimeout = 5 * time.Second

// AnalyticsWriter persists analytics events.
type AnalyticsWriter interface {
	Insert(ctx context.Context, event models.AnalyticsEvent) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// AnalyticsService records compatibility lookups in Postgres and, when a
// writer is configured, publishes them to Kafka in the background.
type AnalyticsService struct {
	store          AnalyticsWriter
	kafkaWriter    KafkaWriter
	publishTimeout time.Duration
}

// NewAnalyticsService creates a new AnalyticsService. kafkaWriter may be nil.
func NewAnalyticsService(store AnalyticsWriter, kafkaWriter KafkaWriter) *AnalyticsService {
	return &AnalyticsService{
		store:          store,
		kafkaWriter:    kafkaWriter,
		publishTimeout: defaultPublishTimeout,
	}
}

// Record stores event and hands it to the publisher without waiting for the
// broker. Only the store failure is returned; publish failures are logged.
func (s *AnalyticsService) Record(ctx context.Context, event models.AnalyticsEvent) error {
	if s.kafkaWriter != nil {
		besteffort.Go(ctx, "publish_analytics", s.publishTimeout, func(ctx context.Context) error {
			return s.publish(ctx, event)
		})
	}

	if err := s.store.Insert(ctx, event); err != nil {
		return fmt.Errorf("store analytics event: %w", err)
	}
	return nil
}

func (s *AnalyticsService) publish(ctx context.Context, event models.AnalyticsEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	key := strconv.FormatInt(event.SourceEquipmentID, 10) + ":" + strconv.FormatInt(event.TargetEquipmentID, 10)
	msg := kafka.Message{
		Key:   []byte(key),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish analytics event: %w", err)
	}
	logger.Log.Infow("analytics event published", "pair", key, "session_id", event.SessionID)
	return nil
}
