package events

import (
	"context"
	"encoding/json"
	"time"

	"frontdesk/internal/config"
	"frontdesk/internal/model"
	"frontdesk/pkg/logger"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// EventType names a settlement event
type EventType string

const EventTypeReservationSettled EventType = "reservation.settled"

// SettlementEvent is the message value written to the settlements topic
type SettlementEvent struct {
	ID            string          `json:"id"`
	Type          EventType       `json:"type"`
	ReservationID string          `json:"reservation_id"`
	Data          json.RawMessage `json:"data"`
	Timestamp     time.Time       `json:"timestamp"`
}

// SettlementPublisher announces frozen reservation totals to downstream billing
type SettlementPublisher interface {
	PublishSettled(ctx context.Context, snapshot *model.ChargeSnapshot) error
	Close() error
}

// messageWriter is the subset of *kafka.Writer the publisher needs
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher publishes settlement events to Kafka
type KafkaPublisher struct {
	writer messageWriter
	topic  string
	logger logger.Logger
}

func NewKafkaPublisher(cfg config.KafkaConfig, log logger.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.SettlementTopic,
		Balancer:     &kafka.Hash{},
		WriteTimeout: 10 * time.Second,
		RequiredAcks: kafka.RequireOne,
	}

	return &KafkaPublisher{writer: writer, topic: cfg.SettlementTopic, logger: log}
}

// PublishSettled keys the message by reservation so a reservation's events stay ordered
func (p *KafkaPublisher) PublishSettled(ctx context.Context, snapshot *model.ChargeSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}

	event := SettlementEvent{
		ID:            uuid.NewString(),
		Type:          EventTypeReservationSettled,
		ReservationID: snapshot.ReservationID,
		Data:          data,
		Timestamp:     time.Now().UTC(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(snapshot.ReservationID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("failed to publish %s for reservation %s: %v", event.Type, snapshot.ReservationID, err)
		return err
	}

	p.logger.Debug("published %s for reservation %s to %s", event.Type, snapshot.ReservationID, p.topic)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher is used when no brokers are configured
type NoopPublisher struct{}

func (NoopPublisher) PublishSettled(context.Context, *model.ChargeSnapshot) error { return nil }
func (NoopPublisher) Close() error                                               { return nil }
