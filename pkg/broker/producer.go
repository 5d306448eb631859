package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

type Producer struct {
	l                    *slog.Logger
	w                    *kafka.Writer
	invoiceExportedTopic string
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "",
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Compression:            0,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return NewProducerWithWriter(l, w, topic)
}

func NewProducerWithWriter(l *slog.Logger, w *kafka.Writer, topic string) *Producer {
	return &Producer{
		l:                    l,
		w:                    w,
		invoiceExportedTopic: topic,
	}
}

type InvoiceExportedEvent struct {
	DraftID   uuid.UUID       `json:"draft_id"`
	InvoiceNo string          `json:"invoice_no"`
	Template  string          `json:"template"`
	Channel   string          `json:"channel"`
	NetAmount decimal.Decimal `json:"net_amount"`
}

// NewInvoiceExportedMessage builds the kafka message for an exported invoice, keyed by draft id.
func NewInvoiceExportedMessage(topic string, event InvoiceExportedEvent) (kafka.Message, error) {
	b, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("marshal event: %w", err)
	}

	return kafka.Message{
		Key:   []byte(event.DraftID.String()),
		Value: b,
		Topic: topic,
	}, nil
}

func (p *Producer) SendInvoiceExported(
	ctx context.Context,
	draftID uuid.UUID,
	invoiceNo, template, channel string,
	netAmount decimal.Decimal,
) {
	msg, err := NewInvoiceExportedMessage(p.invoiceExportedTopic, InvoiceExportedEvent{
		DraftID:   draftID,
		InvoiceNo: invoiceNo,
		Template:  template,
		Channel:   channel,
		NetAmount: netAmount,
	})
	if err != nil {
		p.l.ErrorContext(ctx, err.Error())
		return
	}

	err = p.w.WriteMessages(ctx, msg)
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

// NopProducer drops events. Used when no brokers are configured.
type NopProducer struct{}

func (NopProducer) SendInvoiceExported(context.Context, uuid.UUID, string, string, string, decimal.Decimal) {
}

type infoLogger struct {
	l *slog.Logger
}

func (l *infoLogger) Printf(format string, v ...any) {
	l.l.Info(fmt.Sprintf(format, v...))
}

type errorLogger struct {
	l *slog.Logger
}

func (l *errorLogger) Printf(format string, v ...any) {
	l.l.Error(fmt.Sprintf(format, v...))
}
