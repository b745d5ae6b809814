package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	msgs     []kafka.Message
	err      error
	deadline time.Time
	block    bool
}

func (w *recordingWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	w.deadline, _ = ctx.Deadline()
	if w.block {
		<-ctx.Done()
		return ctx.Err()
	}
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestPublishRegistered(t *testing.T) {
	w := &recordingWriter{}
	pub := NewMemberEventPublisher(w, quietLogger())

	err := pub.PublishRegistered(context.Background(), MemberRegisteredEvent{UserID: 7, Username: "ann", Email: "a@b.com"})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "7", string(msg.Key))

	var got MemberRegisteredEvent
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, EventMemberRegistered, got.Event)
	assert.Equal(t, "ann", got.Username)
	assert.False(t, got.OccurredAt.IsZero())
	assert.NotContains(t, string(msg.Value), "password")
}

func TestPublishRegisteredWrapsWriterError(t *testing.T) {
	boom := errors.New("broker down")
	pub := NewMemberEventPublisher(&recordingWriter{err: boom}, quietLogger())

	err := pub.PublishRegistered(context.Background(), MemberRegisteredEvent{UserID: 1})
	assert.ErrorIs(t, err, boom)
}

func TestNilWriterIsNoop(t *testing.T) {
	pub := NewMemberEventPublisher(nil, quietLogger())
	assert.IsType(t, NoopMemberEventPublisher{}, pub)
	assert.NoError(t, pub.PublishRegistered(context.Background(), MemberRegisteredEvent{}))
}

func TestPublishRegisteredBoundsBrokerWait(t *testing.T) {
	w := &recordingWriter{}
	pub := NewMemberEventPublisher(w, quietLogger())

	require.NoError(t, pub.PublishRegistered(context.Background(), MemberRegisteredEvent{UserID: 1}))
	require.False(t, w.deadline.IsZero())
	assert.WithinDuration(t, time.Now().Add(memberEventPublishTimeout), w.deadline, time.Second)
}

func TestPublishRegisteredGivesUpOnSlowBroker(t *testing.T) {
	w := &recordingWriter{block: true}
	pub := NewMemberEventPublisher(w, quietLogger())
	pub.(*kafkaMemberEventPublisher).timeout = 20 * time.Millisecond

	start := time.Now()
	err := pub.PublishRegistered(context.Background(), MemberRegisteredEvent{UserID: 1})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}
