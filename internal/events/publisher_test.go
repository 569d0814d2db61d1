package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"frontdesk/internal/model"
	"frontdesk/pkg/logger"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func TestPublishSettled(t *testing.T) {
	w := &fakeWriter{}
	p := &KafkaPublisher{writer: w, topic: "settlements", logger: logger.Nop{}}

	snapshot := &model.ChargeSnapshot{
		ReservationID: "res-1001",
		Status:        "CHECKED_OUT",
		TotalPrice:    decimal.RequireFromString("66000"),
	}

	require.NoError(t, p.PublishSettled(context.Background(), snapshot))
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "res-1001", string(msg.Key))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "reservation.settled", string(msg.Headers[0].Value))

	var event SettlementEvent
	require.NoError(t, json.Unmarshal(msg.Value, &event))
	assert.Equal(t, EventTypeReservationSettled, event.Type)
	assert.Equal(t, "res-1001", event.ReservationID)
	assert.NotEmpty(t, event.ID)

	var data model.ChargeSnapshot
	require.NoError(t, json.Unmarshal(event.Data, &data))
	assert.True(t, data.TotalPrice.Equal(decimal.RequireFromString("66000")))
}

func TestPublishSettledPropagatesWriterError(t *testing.T) {
	boom := errors.New("broker unavailable")
	p := &KafkaPublisher{writer: &fakeWriter{err: boom}, topic: "settlements", logger: logger.Nop{}}

	err := p.PublishSettled(context.Background(), &model.ChargeSnapshot{ReservationID: "res-1"})
	assert.ErrorIs(t, err, boom)
}
