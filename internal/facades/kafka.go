package facades

import (
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	analyticsBatchTimeout = 10 * time.Millisecond
	analyticsWriteTimeout = 5 * time.Second
)

// NewAnalyticsWriter creates a writer for lookup events keyed by equipment
// pair. The short batch timeout keeps a single event from waiting for a full
// batch.
func NewAnalyticsWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           analyticsBatchTimeout,
		WriteTimeout:           analyticsWriteTimeout,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}
