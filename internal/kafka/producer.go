package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Zonda001/AirportAPI/pkg/utils"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// OrderEvent is published after a booking commits. Consumers get the
// order id, the owner, and one entry per booked ticket.
type OrderEvent struct {
	Type      string        `json:"type"`
	OrderID   string        `json:"order_id"`
	UserID    string        `json:"user_id"`
	Tickets   []TicketEvent `json:"tickets"`
	CreatedAt time.Time     `json:"created_at"`
}

type TicketEvent struct {
	FlightID string `json:"flight_id"`
	Row      int    `json:"row"`
	Seat     int    `json:"seat"`
}

type Producer struct {
	writer *kafka.Writer
	topic  string
	log    *zap.Logger
}

// NewProducer returns nil when no brokers are configured; callers treat
// a nil producer as publishing disabled.
func NewProducer(cfg utils.KafkaConfig, log *zap.Logger) *Producer {
	if len(cfg.Brokers) == 0 {
		log.Info("Kafka brokers not configured, order events disabled")
		return nil
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.OrdersTopic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	return &Producer{
		writer: writer,
		topic:  cfg.OrdersTopic,
		log:    log.With(zap.String("component", "kafka_producer")),
	}
}

func (p *Producer) Publish(ctx context.Context, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event payload: %w", err)
	}

	message := kafka.Message{
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		p.log.Error("Failed to publish event",
			zap.Error(err),
			zap.String("topic", p.topic),
			zap.String("key", key),
		)
		return fmt.Errorf("write message to %s: %w", p.topic, err)
	}

	p.log.Info("Event published",
		zap.String("topic", p.topic),
		zap.String("key", key),
	)
	return nil
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
