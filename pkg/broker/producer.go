package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

// Producer publishes voucher events. Delivery is asynchronous and failures are only logged.
type Producer struct {
	l                   *slog.Logger
	w                   *kafka.Writer
	voucherSettledTopic string
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		Async:                  true,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:                   l,
		w:                   w,
		voucherSettledTopic: topic,
	}
}

type VoucherSettledEvent struct {
	EventID         uuid.UUID       `json:"event_id"`
	RequisitionID   int64           `json:"requisition_id"`
	Code            string          `json:"code"`
	StationID       int64           `json:"station_id"`
	FuelTypeID      int64           `json:"fuel_type_id"`
	LitersDispensed decimal.Decimal `json:"liters_dispensed"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	SettledAt       time.Time       `json:"settled_at"`
	SettledBy       int64           `json:"settled_by"`
}

// SendVoucherSettled keys messages by requisition so consumers see one partition per voucher.
func (p *Producer) SendVoucherSettled(ctx context.Context, event VoucherSettledEvent) {
	if event.EventID.IsNil() {
		id, err := uuid.NewV7()
		if err != nil {
			p.l.ErrorContext(ctx, fmt.Sprintf("generate event id: %s", err))
			return
		}

		event.EventID = id
	}

	b, err := json.Marshal(event)
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(event.RequisitionID, 10)),
		Value: b,
		Topic: p.voucherSettledTopic,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(event.EventID.String())},
		},
	})
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}

type infoLogger struct {
	l *slog.Logger
}

func (l *infoLogger) Printf(format string, v ...any) {
	l.l.Debug(fmt.Sprintf(format, v...))
}

type errorLogger struct {
	l *slog.Logger
}

func (l *errorLogger) Printf(format string, v ...any) {
	l.l.Error(fmt.Sprintf(format, v...))
}
