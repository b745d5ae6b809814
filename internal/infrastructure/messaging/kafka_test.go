package messaging

import (
	"testing"
	"time"

	"gym-portal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKafkaWriterDisabledWithoutBrokers(t *testing.T) {
	assert.Nil(t, NewKafkaWriter(config.KafkaConfig{Topic: "member-registrations"}))
}

func TestNewKafkaWriter(t *testing.T) {
	w := NewKafkaWriter(config.KafkaConfig{Brokers: []string{"k1:9092", "k2:9092"}, Topic: "member-registrations"})
	require.NotNil(t, w)
	defer w.Close()

	assert.Equal(t, "member-registrations", w.Topic)
	assert.Contains(t, w.Addr.String(), "k1:9092")
	assert.Equal(t, 10*time.Millisecond, w.BatchTimeout)
}
