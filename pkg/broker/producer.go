package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/segmentio/kafka-go"

	"github.com/DeNice-r/liqpay-go/internal/entity"
)

type Producer struct {
	l     *slog.Logger
	w     *kafka.Writer
	topic string
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

	return &Producer{
		l:     l,
		w:     w,
		topic: topic,
	}
}

type DonationCreatedEvent struct {
	Type       string `json:"type"`
	DonationID string `json:"donation_id"`
	Amount     int    `json:"amount"`
	Currency   string `json:"currency"`
	Action     string `json:"action"`
}

func (p *Producer) SendDonationCreated(ctx context.Context, d entity.Donation) {
	event := DonationCreatedEvent{
		Type:       "donation.created",
		DonationID: d.ID.String(),
		Amount:     d.Amount,
		Currency:   d.Currency.String(),
		Action:     d.Action.String(),
	}

	b, err := json.Marshal(event)
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(d.ID.String()),
		Value: b,
		Topic: p.topic,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

type PaymentStatusEvent struct {
	Type      string `json:"type"`
	PaymentID int64  `json:"payment_id"`
	OrderID   string `json:"order_id"`
	Status    string `json:"status"`
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
}

func (p *Producer) SendPaymentStatus(ctx context.Context, e entity.PaymentEvent) {
	event := PaymentStatusEvent{
		Type:      "donation.status",
		PaymentID: e.PaymentID,
		OrderID:   e.OrderID,
		Status:    e.Status,
		Amount:    e.Amount.String(),
		Currency:  e.Currency,
	}

	b, err := json.Marshal(event)
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(e.PaymentID, 10)),
		Value: b,
		Topic: p.topic,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}
