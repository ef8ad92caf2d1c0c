package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/bellj/connect-api-examples/internal/usecase"
)

func newConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.Version = sarama.V2_6_0_0
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForLocal
	cfg.Net.DialTimeout = 5 * time.Second
	return cfg
}

// Producer publishes checkout lifecycle events, keyed by order id so all
// events for one order land in the same partition.
type Producer struct {
	sp    sarama.SyncProducer
	topic string
}

func NewProducer(brokers []string, topic string) (*Producer, error) {
	sp, err := sarama.NewSyncProducer(brokers, newConfig())
	if err != nil {
		return nil, err
	}
	return &Producer{sp: sp, topic: topic}, nil
}

// NewProducerWith wraps an existing SyncProducer (tests use sarama mocks).
func NewProducerWith(sp sarama.SyncProducer, topic string) *Producer {
	return &Producer{sp: sp, topic: topic}
}

func (p *Producer) Publish(_ context.Context, ev usecase.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	_, _, err = p.sp.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(ev.OrderID),
		Value: sarama.ByteEncoder(payload),
	})
	return err
}

func (p *Producer) Close() error { return p.sp.Close() }

var _ usecase.EventPublisher = (*Producer)(nil)
