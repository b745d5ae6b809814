package messaging

import (
	"time"

	"gym-portal/config"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// NewKafkaWriter returns nil when no brokers are configured.
func NewKafkaWriter(cfg config.KafkaConfig) *kafka.Writer {
	if len(cfg.Brokers) == 0 {
		return nil
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
	}

	logrus.Infof("Kafka writer initialized for topic %s", cfg.Topic)

	return writer
}
