package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

const (
	EventMemberRegistered = "member.registered"

	// Upper bound on how long a signup response waits for the broker
	memberEventPublishTimeout = 3 * time.Second
)

// MemberRegisteredEvent is published after a signup commits. It never
// carries the password or health data.
type MemberRegisteredEvent struct {
	Event      string    `json:"event"`
	UserID     uint      `json:"user_id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}

type MemberEventPublisher interface {
	PublishRegistered(ctx context.Context, event MemberRegisteredEvent) error
}

// MessageWriter is the subset of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type kafkaMemberEventPublisher struct {
	writer  MessageWriter
	log     *logrus.Logger
	timeout time.Duration
}

// NewMemberEventPublisher returns a no-op publisher when writer is nil.
func NewMemberEventPublisher(writer MessageWriter, log *logrus.Logger) MemberEventPublisher {
	if writer == nil {
		return NoopMemberEventPublisher{}
	}
	return &kafkaMemberEventPublisher{writer: writer, log: log, timeout: memberEventPublishTimeout}
}

func (p *kafkaMemberEventPublisher) PublishRegistered(ctx context.Context, event MemberRegisteredEvent) error {
	if event.Event == "" {
		event.Event = EventMemberRegistered
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", event.Event, err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(event.UserID), 10)),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event", Value: []byte(event.Event)},
		},
	}
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish %s event: %w", event.Event, err)
	}

	p.log.Debugf("Published %s for user %d", event.Event, event.UserID)
	return nil
}

type NoopMemberEventPublisher struct{}

func (NoopMemberEventPublisher) PublishRegistered(context.Context, MemberRegisteredEvent) error {
	return nil
}
