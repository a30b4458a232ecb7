package service_test

import (
	"context"
	"cyclebook/infras/kafka"
	kafkaMocks "cyclebook/infras/kafka/mocks"
	"cyclebook/infras/otel/mocks"
	notificationMocks "cyclebook/internal/domains/notification/mocks"
	"cyclebook/internal/domains/notification/model"
	"cyclebook/internal/domains/notification/service"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestNotifier_Publish(t *testing.T) {
	payload := map[string]any{"booking_id": "b-1"}

	t.Run("broadcasts and mirrors to kafka", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		hub := notificationMocks.NewMockBroadcaster(ctrl)
		client := kafkaMocks.NewMockClient(ctrl)

		sent := make(chan kafka.Message, 1)

		hub.EXPECT().Publish(model.TopicRideStarted, payload).Return(nil)
		client.EXPECT().Enabled().Return(true)
		client.EXPECT().SendMessages(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			sent <- msgs[0]

			return nil
		})

		service.New(hub, client, mocks.NewOtel()).Publish(context.Background(), model.TopicRideStarted, "b-1", payload)

		select {
		case msg := <-sent:
			assert.Equal(t, kafka.Message{Key: "b-1", Value: payload, Type: model.TopicRideStarted}, msg)
		case <-time.After(time.Second):
			t.Fatal("event was not mirrored to kafka")
		}
	})

	t.Run("kafka disabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		hub := notificationMocks.NewMockBroadcaster(ctrl)
		client := kafkaMocks.NewMockClient(ctrl)

		hub.EXPECT().Publish(model.TopicNewBooking, payload).Return(nil)
		client.EXPECT().Enabled().Return(false)

		service.New(hub, client, mocks.NewOtel()).Publish(context.Background(), model.TopicNewBooking, "b-1", payload)
	})

	t.Run("broadcast failure does not stop the mirror", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		hub := notificationMocks.NewMockBroadcaster(ctrl)
		client := kafkaMocks.NewMockClient(ctrl)

		done := make(chan struct{})

		hub.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("unsupported value"))
		client.EXPECT().Enabled().Return(true)
		client.EXPECT().SendMessages(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, ...kafka.Message) error {
			close(done)

			return errors.New("broker down")
		})

		service.New(hub, client, mocks.NewOtel()).Publish(context.Background(), model.TopicRideStopped, "b-1", payload)

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("event was not mirrored to kafka")
		}
	})
}
