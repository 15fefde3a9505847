package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/dhima/attendance-ledger/internal/models"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Message types published by the service.
const (
	TypeAttendanceRecorded = "attendance.recorded"
	TypeLeaderboardDigest  = "leaderboard.digest"
)

// Envelope is the JSON document written to the topic.
type Envelope struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	Key        string    `json:"-"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// AttendanceRecordedPayload describes one newly appended ledger row.
type AttendanceRecordedPayload struct {
	Event       string `json:"event"`
	Member      string `json:"member"`
	RecordedBy  string `json:"recorded_by"`
	EvidenceRef string `json:"evidence_ref"`
	Timestamp   string `json:"timestamp"`
}

// LeaderboardDigestPayload is a periodic leaderboard snapshot.
type LeaderboardDigestPayload struct {
	TotalEvents int                       `json:"total_events"`
	Entries     []models.LeaderboardEntry `json:"entries"`
}

// NewEnvelope stamps a payload with a fresh event ID. Messages sharing a key
// land on the same partition, so per-event ordering is preserved.
func NewEnvelope(eventType, key string, occurredAt time.Time, payload any) Envelope {
	return Envelope{
		EventID:    uuid.New().String(),
		Type:       eventType,
		Key:        key,
		OccurredAt: occurredAt.UTC(),
		Payload:    payload,
	}
}

// RecordedEnvelope builds the attendance.recorded message for rec.
func RecordedEnvelope(rec models.AttendanceRecord, occurredAt time.Time) Envelope {
	return NewEnvelope(TypeAttendanceRecorded, rec.Event, occurredAt, AttendanceRecordedPayload{
		Event:       rec.Event,
		Member:      rec.Member,
		RecordedBy:  rec.RecordedBy,
		EvidenceRef: rec.EvidenceRef,
		Timestamp:   rec.Timestamp,
	})
}

// Publisher emits attendance messages to Kafka.
type Publisher struct {
	writer    *kafka.Writer
	logger    *zap.Logger
	closeOnce sync.Once
	closeErr  error
}

// NewPublisher configures a writer for brokers/topic with all-replica acks.
func NewPublisher(brokers []string, topic string, logger *zap.Logger) *Publisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		MaxAttempts:            3,
		WriteTimeout:           10 * time.Second,
		BatchTimeout:           50 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
	return &Publisher{writer: writer, logger: logger}
}

// Publish marshals env and writes it synchronously.
func (p *Publisher) Publish(ctx context.Context, env Envelope) error {
	value, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal %s envelope: %w", env.Type, err)
	}

	msg := kafka.Message{
		Key:   []byte(env.Key),
		Value: value,
		Time:  env.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(env.Type)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("failed to publish message",
			zap.String("event_id", env.EventID),
			zap.String("type", env.Type),
			zap.Error(err),
		)
		return fmt.Errorf("publish %s: %w", env.Type, err)
	}

	p.logger.Debug("message published",
		zap.String("event_id", env.EventID),
		zap.String("type", env.Type),
		zap.String("key", env.Key),
	)
	return nil
}

// Close flushes and closes the writer. Safe to call more than once.
func (p *Publisher) Close() error {
	p.closeOnce.Do(func() {
		p.closeErr = p.writer.Close()
	})
	return p.closeErr
}

// LogPublisher writes envelopes to the log; used when no brokers are configured.
type LogPublisher struct {
	logger *zap.Logger
}

// NewLogPublisher returns a publisher that only logs.
func NewLogPublisher(logger *zap.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish logs env at info level.
func (p *LogPublisher) Publish(_ context.Context, env Envelope) error {
	p.logger.Info("message (kafka disabled)",
		zap.String("event_id", env.EventID),
		zap.String("type", env.Type),
		zap.String("key", env.Key),
		zap.Any("payload", env.Payload),
	)
	return nil
}

// Close is a no-op.
func (p *LogPublisher) Close() error { return nil }

// Sink is the publishing surface shared by Publisher and LogPublisher.
type Sink interface {
	Publish(ctx context.Context, env Envelope) error
	Close() error
}

// NewSink returns a Kafka publisher when brokers are configured and a
// LogPublisher otherwise.
func NewSink(brokers []string, topic string, logger *zap.Logger) Sink {
	if len(brokers) == 0 {
		return NewLogPublisher(logger)
	}
	return NewPublisher(brokers, topic, logger)
}
