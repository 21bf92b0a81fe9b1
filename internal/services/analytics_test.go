package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/gearted/gearted-backend/internal/models"
	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitPublished(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("event was not published")
	}
}

func TestAnalyticsService_Record(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockAnalyticsWriter(ctrl)
	writer := NewMockKafkaWriter(ctrl)
	svc := NewAnalyticsService(store, writer)

	event := models.AnalyticsEvent{SourceEquipmentID: 1, TargetEquipmentID: 2, Source: "API", SessionID: "s"}

	done := make(chan struct{})
	store.EXPECT().Insert(gomock.Any(), event).Return(nil)
	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			defer close(done)
			require.Len(t, msgs, 1)
			assert.Equal(t, "1:2", string(msgs[0].Key))

			var got models.AnalyticsEvent
			require.NoError(t, json.Unmarshal(msgs[0].Value, &got))
			assert.Equal(t, event.SessionID, got.SessionID)
			return nil
		})

	assert.NoError(t, svc.Record(context.Background(), event))
	waitPublished(t, done)
}

func TestAnalyticsService_RecordDoesNotWaitForBroker(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockAnalyticsWriter(ctrl)
	writer := NewMockKafkaWriter(ctrl)
	svc := NewAnalyticsService(store, writer)

	release := make(chan struct{})
	done := make(chan struct{})
	store.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ ...kafka.Message) error {
			defer close(done)
			<-release
			return nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	start := time.Now()
	assert.NoError(t, svc.Record(ctx, models.AnalyticsEvent{}))
	assert.Less(t, time.Since(start), 500*time.Millisecond)

	// the request finishing must not cancel the publish
	cancel()
	close(release)
	waitPublished(t, done)
}

func TestAnalyticsService_PublishTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockAnalyticsWriter(ctrl)
	writer := NewMockKafkaWriter(ctrl)
	svc := NewAnalyticsService(store, writer)
	svc.publishTimeout = 20 * time.Millisecond

	done := make(chan struct{})
	store.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ ...kafka.Message) error {
			defer close(done)
			<-ctx.Done()
			return ctx.Err()
		})

	assert.NoError(t, svc.Record(context.Background(), models.AnalyticsEvent{}))
	waitPublished(t, done)
}

func TestAnalyticsService_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockAnalyticsWriter(ctrl)
	writer := NewMockKafkaWriter(ctrl)
	svc := NewAnalyticsService(store, writer)

	dbErr := errors.New("insert failed")
	done := make(chan struct{})
	store.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(dbErr)
	writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, ...kafka.Message) error {
			close(done)
			return errors.New("broker down")
		})

	err := svc.Record(context.Background(), models.AnalyticsEvent{})
	assert.ErrorIs(t, err, dbErr)
	waitPublished(t, done)
}

func TestAnalyticsService_NoKafka(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockAnalyticsWriter(ctrl)
	store.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

	assert.NoError(t, NewAnalyticsService(store, nil).Record(context.Background(), models.AnalyticsEvent{}))
}
