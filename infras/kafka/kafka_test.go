package kafka_test

import (
	"context"
	"cyclebook/config"
	"cyclebook/infras/kafka"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_ToKafkaMessage(t *testing.T) {
	msg := kafka.Message{
		Key:   "booking-1",
		Type:  "rideStarted",
		Value: map[string]string{"booking_id": "booking-1"},
	}

	out, err := msg.ToKafkaMessage()

	require.NoError(t, err)
	assert.Equal(t, []byte("booking-1"), out.Key)
	assert.JSONEq(t, `{"booking_id":"booking-1"}`, string(out.Value))
	require.Len(t, out.Headers, 1)
	assert.Equal(t, "type", out.Headers[0].Key)
	assert.Equal(t, []byte("rideStarted"), out.Headers[0].Value)
}

func TestMessage_ToKafkaMessageUnsupportedValue(t *testing.T) {
	msg := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := msg.ToKafkaMessage()

	assert.Error(t, err)
}

func TestNewDisabled(t *testing.T) {
	tests := []struct {
		name    string
		enable  bool
		brokers []string
	}{
		{name: "flag off", enable: false, brokers: []string{"localhost:9092"}},
		{name: "no brokers", enable: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Kafka.Enable = tt.enable
			cfg.Kafka.Brokers = tt.brokers

			client, cleanup := kafka.New(cfg)
			defer cleanup()

			assert.False(t, client.Enabled())
			assert.NoError(t, client.SendMessages(context.Background(), kafka.Message{Key: "k", Value: 1}))
			assert.NoError(t, client.Close())
		})
	}
}
