package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/narendranaragani/printmaania/pkg/logger"
)

// Publisher decouples the order flow from the broker. A nil Publisher is
// valid and turns event publishing into a no-op.
type Publisher interface {
	PublishOrderCreated(ctx context.Context, event OrderCreatedEvent) error
	PublishStatusChanged(ctx context.Context, event OrderStatusChangedEvent) error
	Close() error
}

type KafkaProducer struct {
	writer *kafka.Writer
	logger logger.ZapLogger
}

var _ Publisher = (*KafkaProducer)(nil)

func NewKafkaProducer(brokers, topic string, log logger.ZapLogger) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducer{
		writer: writer,
		logger: log,
	}
}

func (p *KafkaProducer) PublishOrderCreated(ctx context.Context, event OrderCreatedEvent) error {
	if err := p.publish(ctx, event.EventID, event); err != nil {
		p.logger.Error("failed to publish order created event",
			zap.String("event_id", event.EventID),
			zap.String("order_id", event.OrderID),
			zap.Error(err))
		return err
	}

	p.logger.Info("order created event published",
		zap.String("event_id", event.EventID),
		zap.String("order_id", event.OrderID))
	return nil
}

func (p *KafkaProducer) PublishStatusChanged(ctx context.Context, event OrderStatusChangedEvent) error {
	if err := p.publish(ctx, event.EventID, event); err != nil {
		p.logger.Error("failed to publish status changed event",
			zap.String("event_id", event.EventID),
			zap.String("order_id", event.OrderID),
			zap.Error(err))
		return err
	}
	return nil
}

func (p *KafkaProducer) publish(ctx context.Context, key string, event any) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: eventBytes,
	})
}

func (p *KafkaProducer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
