package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"cyclebook/infras/kafka"
	"cyclebook/infras/otel"
	"cyclebook/internal/domains/notification/model"
	"cyclebook/shared/constant"
	"slices"
	"time"

	"github.com/rs/zerolog/log"
)

const mirrorTimeout = 5 * time.Second

// Broadcaster delivers an event to live observers without blocking.
type Broadcaster interface {
	Publish(topic string, data any) error
}

// Notifier publishes lifecycle events. Delivery is best effort and never fails the caller.
type Notifier interface {
	Publish(ctx context.Context, topic, key string, payload any)
}

type serviceImpl struct {
	hub   Broadcaster
	kafka kafka.Client
	otel  otel.Otel
}

func New(hub Broadcaster, kafkaClient kafka.Client, otel otel.Otel) Notifier {
	return &serviceImpl{
		hub:   hub,
		kafka: kafkaClient,
		otel:  otel,
	}
}

// Publish broadcasts to websocket clients and mirrors the event to Kafka keyed by key.
func (s *serviceImpl) Publish(ctx context.Context, topic, key string, payload any) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()

	scope.SetAttributes(map[string]any{"event.topic": topic, "event.key": key})

	if !slices.Contains(model.Topics, topic) {
		log.Warn().Str("topic", topic).Msg("publishing on unknown topic")
	}

	if err := s.hub.Publish(topic, payload); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("topic", topic).Msg("failed to broadcast event")
	}

	if !s.kafka.Enabled() {
		return
	}

	go func() {
		c, cancel := context.WithTimeout(context.WithoutCancel(ctx), mirrorTimeout)
		defer cancel()

		if err := s.kafka.SendMessages(c, kafka.Message{Key: key, Value: payload, Type: topic}); err != nil {
			log.Warn().Err(err).Str("topic", topic).Str("key", key).Msg("failed to mirror event to Kafka")
		}
	}()
}
