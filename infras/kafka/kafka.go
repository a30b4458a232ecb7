package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"cyclebook/config"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

const writeTimeout = 5 * time.Second

type Message struct {
	Key   string
	Value any
	Type  string
}

func (m *Message) ToKafkaMessage() (kafkaGo.Message, error) {
	jsonValue, err := json.Marshal(m.Value)
	if err != nil {
		return kafkaGo.Message{}, fmt.Errorf("failed to marshal message value to JSON: %w", err)
	}

	message := kafkaGo.Message{
		Key:   []byte(m.Key),
		Value: jsonValue,
	}

	if m.Type != "" {
		message.Headers = []kafkaGo.Header{{Key: "type", Value: []byte(m.Type)}}
	}

	return message, nil
}

// Client writes messages to the configured topic.
type Client interface {
	SendMessages(ctx context.Context, messages ...Message) (err error)
	Enabled() bool
	Close() error
}

type kafkaClientImpl struct {
	writer *kafkaGo.Writer
}

// New returns a disabled client when KAFKA_ENABLE is off or no brokers are set.
func New(cfg *config.Config) (Client, func()) {
	if !cfg.Kafka.Enable || len(cfg.Kafka.Brokers) == 0 {
		log.Info().Msg("Kafka disabled, events stay in process")

		return disabled{}, func() {}
	}

	transport := &kafkaGo.Transport{}
	if cfg.Kafka.SASL.Username != "" {
		transport.SASL = plain.Mechanism{
			Username: cfg.Kafka.SASL.Username,
			Password: cfg.Kafka.SASL.Password,
		}
	}

	client := &kafkaClientImpl{
		writer: &kafkaGo.Writer{
			Addr:                   kafkaGo.TCP(cfg.Kafka.Brokers...),
			Topic:                  cfg.Kafka.Topic,
			Balancer:               &kafkaGo.Hash{},
			Transport:              transport,
			AllowAutoTopicCreation: true,
			WriteTimeout:           writeTimeout,
			RequiredAcks:           kafkaGo.RequireOne,
		},
	}

	log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.Topic).Msg("Kafka client initialized")

	cleanup := func() {
		if err := client.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close Kafka writer")
		}
	}

	return client, cleanup
}

func (k *kafkaClientImpl) Enabled() bool {
	return true
}

func (k *kafkaClientImpl) SendMessages(ctx context.Context, messages ...Message) (err error) {
	msgs := make([]kafkaGo.Message, 0, len(messages))

	for _, message := range messages {
		msg, err := message.ToKafkaMessage()
		if err != nil {
			log.Error().Err(err).Str("key", message.Key).Msg("Failed to convert message to Kafka message")

			return err
		}

		msgs = append(msgs, msg)
	}

	if err = k.writer.WriteMessages(ctx, msgs...); err != nil {
		log.Error().Err(err).Str("topic", k.writer.Topic).Msg("Failed to send message to Kafka")

		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	log.Debug().Str("topic", k.writer.Topic).Int("count", len(msgs)).Msg("Sent messages")

	return nil
}

func (k *kafkaClientImpl) Close() error {
	if err := k.writer.Close(); err != nil {
		return fmt.Errorf("failed to close Kafka writer: %w", err)
	}

	return nil
}

type disabled struct{}

func (disabled) SendMessages(context.Context, ...Message) error { return nil }
func (disabled) Enabled() bool                                  { return false }
func (disabled) Close() error                                   { return nil }
