package facades

import (
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

func TestNewAnalyticsWriter(t *testing.T) {
	w := NewAnalyticsWriter([]string{"k1:9092", "k2:9092"}, "gearted.compatibility.analytics")
	defer w.Close()

	assert.Equal(t, "gearted.compatibility.analytics", w.Topic)
	assert.Contains(t, w.Addr.String(), "k1:9092")
	assert.Contains(t, w.Addr.String(), "k2:9092")
	assert.IsType(t, &kafka.Hash{}, w.Balancer)
	assert.Equal(t, kafka.RequireOne, w.RequiredAcks)
	assert.LessOrEqual(t, w.BatchTimeout, analyticsBatchTimeout)
	assert.False(t, w.Async)
}
