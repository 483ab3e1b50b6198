// Package kafka publishes the transactions added to the feed to a Kafka
// topic, one message per transaction keyed by its hash.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/gabapcia/photonscan/internal/txfeed"
	"github.com/gabapcia/photonscan/internal/txsummary"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	DefaultTopic = "photonscan.transactions"

	instrumentationName = "github.com/gabapcia/photonscan/internal/infra/messaging/kafka"
	messageType         = "transaction"
)

var ErrNoBrokers = errors.New("kafka brokers are required")

// Message is the published payload.
type Message struct {
	Type        string            `json:"type"`
	ChainID     string            `json:"chain_id"`
	PublishedAt time.Time         `json:"published_at"`
	Transaction txsummary.Summary `json:"transaction"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type publisher struct {
	writer  messageWriter
	chainID string
	tracer  trace.Tracer
	now     func() time.Time
}

var _ txfeed.TransactionNotifier = (*publisher)(nil)

func (p *publisher) Close() error {
	return p.writer.Close()
}

// NotifyTransactions publishes summaries in a single batch.
func (p *publisher) NotifyTransactions(ctx context.Context, summaries []txsummary.Summary) error {
	if len(summaries) == 0 {
		return nil
	}

	ctx, span := p.tracer.Start(ctx, "kafka.publish_transactions", trace.WithSpanKind(trace.SpanKindProducer))
	defer span.End()

	span.SetAttributes(attribute.Int("messaging.batch.message_count", len(summaries)))

	messages, err := p.messages(ctx, summaries)
	if err == nil {
		err = p.writer.WriteMessages(ctx, messages...)
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (p *publisher) messages(ctx context.Context, summaries []txsummary.Summary) ([]kafka.Message, error) {
	publishedAt := p.now().UTC()
	headers := InjectHeaders(ctx, nil)

	messages := make([]kafka.Message, 0, len(summaries))
	for _, summary := range summaries {
		payload, err := json.Marshal(Message{
			Type:        messageType,
			ChainID:     p.chainID,
			PublishedAt: publishedAt,
			Transaction: summary,
		})
		if err != nil {
			return nil, err
		}

		messages = append(messages, kafka.Message{
			Key:     []byte(summary.Hash),
			Value:   payload,
			Headers: headers,
		})
	}
	return messages, nil
}

type config struct {
	topic        string
	batchTimeout time.Duration
}

type Option func(*config)

func WithTopic(topic string) Option {
	return func(c *config) {
		if topic != "" {
			c.topic = topic
		}
	}
}

func WithBatchTimeout(d time.Duration) Option {
	return func(c *config) {
		c.batchTimeout = d
	}
}

// NewPublisher creates a publisher writing to brokers. Connections are
// opened lazily on the first publish.
func NewPublisher(brokers []string, chainID string, opts ...Option) (*publisher, error) {
	if len(brokers) == 0 {
		return nil, ErrNoBrokers
	}

	cfg := config{
		topic:        DefaultTopic,
		batchTimeout: 500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  cfg.topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           cfg.batchTimeout,
		AllowAutoTopicCreation: true,
	}

	return newPublisher(writer, chainID), nil
}

func newPublisher(writer messageWriter, chainID string) *publisher {
	return &publisher{
		writer:  writer,
		chainID: chainID,
		tracer:  otel.Tracer(instrumentationName),
		now:     time.Now,
	}
}
