package projection

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	natsjetstream "github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/atelier-labs/fashion-indexer/internal/adapter"
	"github.com/atelier-labs/fashion-indexer/internal/domain"
	"github.com/atelier-labs/fashion-indexer/internal/logger"
	"github.com/atelier-labs/fashion-indexer/internal/providers/jetstream"
)

// ConsumerConfig holds the configuration for the projection consumer
type ConsumerConfig struct {
	URL            string
	StreamName     string
	ConsumerName   string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	AckWaitTimeout time.Duration
	MaxDeliver     int
}

// Consumer drives the projection engine from the JetStream event log
type Consumer interface {
	// Run starts consuming until the context is cancelled or a handler fails
	Run(ctx context.Context) error
	// Close closes the consumer and cleans up resources
	Close()
}

type consumer struct {
	nc     adapter.NatsConn
	js     adapter.JetStream
	engine *Engine
	config ConsumerConfig
}

// NewConsumer connects to NATS and creates the projection consumer
func NewConsumer(cfg ConsumerConfig, natsJS adapter.NatsJetStream, engine *Engine) (Consumer, error) {
	nc, js, err := natsJS.Connect(cfg.URL, jetstream.ConnectOptions(cfg.ConnectionName, cfg.MaxReconnects, cfg.ReconnectWait)...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	return &consumer{
		nc:     nc,
		js:     js,
		engine: engine,
		config: cfg,
	}, nil
}

// Run starts the projection consumer. Messages are processed strictly one
// at a time in stream order (MaxAckPending 1); the aggregates are only
// correct when deltas apply in emission order, so there is no concurrency
// here. A handler failure NAKs the message and halts the consumer for
// operator intervention instead of skipping.
func (c *consumer) Run(ctx context.Context) error {
	logger.Info("Starting projection consumer",
		zap.String("stream", c.config.StreamName),
		zap.String("consumer", c.config.ConsumerName),
	)

	consumerConfig := natsjetstream.ConsumerConfig{
		Durable:       c.config.ConsumerName,
		AckPolicy:     natsjetstream.AckExplicitPolicy,
		AckWait:       c.config.AckWaitTimeout,
		MaxDeliver:    c.config.MaxDeliver,
		MaxAckPending: 1,
		FilterSubject: "fashion.events.>",
	}

	jsConsumer, err := c.js.CreateOrUpdateConsumer(ctx, c.config.StreamName, consumerConfig)
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	consumerInfo, err := jsConsumer.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to get consumer info: %w", err)
	}
	logger.Info("Consumer created/retrieved", zap.String("consumer", consumerInfo.Name))

	msgChan := make(chan adapter.Message)
	sub, err := jsConsumer.Consume(func(msg adapter.Message) {
		msgChan <- msg
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer sub.Stop()

	logger.Info("Started consuming messages")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Shutting down projection consumer")
			return ctx.Err()
		case msg := <-msgChan:
			if err := c.handleMessage(ctx, msg); err != nil {
				return err
			}
		}
	}
}

// handleMessage processes a single NATS message. A returned error halts the
// consumer.
func (c *consumer) handleMessage(ctx context.Context, msg adapter.Message) error {
	metadata, _ := msg.Metadata()

	var event domain.Event
	if err := json.Unmarshal(msg.Data(), &event); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to unmarshal event"))
		// Unparseable data can never succeed, terminate instead of redelivering
		if termErr := msg.Term(); termErr != nil {
			logger.ErrorCtx(ctx, termErr, zap.String("message", "Failed to terminate message"))
		}
		return fmt.Errorf("unparseable event message: %w", err)
	}

	fields := []zap.Field{
		zap.String("kind", string(event.Kind)),
		zap.String("name", string(event.Name)),
		zap.String("txHash", event.TxHash),
		zap.Uint64("block", event.BlockNumber),
	}
	if metadata != nil {
		fields = append(fields, zap.Uint64("deliveryCount", metadata.NumDelivered))
	}
	logger.InfoCtx(ctx, "Received event", fields...)

	if err := c.engine.ProcessEvent(ctx, &event); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to process event"))
		// NAK so the event is redelivered once the operator restarts us
		if nakErr := msg.Nak(); nakErr != nil {
			logger.ErrorCtx(ctx, nakErr, zap.String("message", "Failed to NAK message"))
		}
		return err
	}

	if err := msg.Ack(); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to ACK message"))
	}

	return nil
}

// Close closes the consumer and cleans up resources
func (c *consumer) Close() {
	if c.nc == nil {
		return
	}

	c.nc.Close()
}
