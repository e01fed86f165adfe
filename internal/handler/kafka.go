package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/campus-laundry/internal/config"
	"github.com/SergeyBogomolovv/campus-laundry/internal/entities"
	"github.com/SergeyBogomolovv/campus-laundry/internal/feed"
	"github.com/SergeyBogomolovv/campus-laundry/pkg/utils"

	"github.com/segmentio/kafka-go"
)

// EventPublisher fans a decoded change out to local subscribers.
type EventPublisher interface {
	Publish(ctx context.Context, event entities.OrderEvent) error
}

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// fetchRetry spaces out fetches while the brokers are unreachable.
var fetchRetry = utils.RetryConfig{
	InitialDelay: 200 * time.Millisecond,
	MaxDelay:     5 * time.Second,
	MaxAttempts:  10,
	Multiplier:   2,
}

type KafkaHandler struct {
	logger     *slog.Logger
	reader     MessageReader
	dlq        MessageWriter
	events     EventPublisher
	fetchRetry utils.RetryConfig
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, events EventPublisher) *KafkaHandler {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		GroupID: cfg.GroupID,
		Topic:   cfg.Topic,
		MaxWait: cfg.ReaderMaxWait,
	})
	dlq := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.LeastBytes{},
		BatchTimeout:           cfg.BatchTimeout,
		AllowAutoTopicCreation: true,
	}
	return newKafkaHandler(logger, reader, dlq, events)
}

func newKafkaHandler(logger *slog.Logger, reader MessageReader, dlq MessageWriter, events EventPublisher) *KafkaHandler {
	return &KafkaHandler{
		logger:     logger.With(slog.String("handler", "kafka")),
		reader:     reader,
		dlq:        dlq,
		events:     events,
		fetchRetry: fetchRetry,
	}
}

// Consume delivers order changes to local subscribers until ctx is done.
// Offsets are committed after delivery, so a crash replays at least once.
func (h *KafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.fetch(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		h.process(ctx, m)

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

// fetch retries with backoff, so a broker outage logs once per exhausted round.
func (h *KafkaHandler) fetch(ctx context.Context) (kafka.Message, error) {
	var m kafka.Message
	err := utils.Retry(ctx, h.fetchRetry, func() error {
		var err error
		m, err = h.reader.FetchMessage(ctx)
		return err
	}, io.EOF, context.Canceled)
	return m, err
}

func (h *KafkaHandler) process(ctx context.Context, m kafka.Message) {
	eventsInProgress.Inc()
	defer eventsInProgress.Dec()

	start := time.Now()
	defer func() {
		eventProcessingDuration.Observe(time.Since(start).Seconds())
	}()

	if err := h.handleEvent(ctx, m); err != nil {
		eventsFailed.Inc()
		h.logger.Error("failed to handle message", slog.Any("error", err), slog.Int64("offset", m.Offset))

		if err := h.WriteToDLQ(ctx, m); err != nil {
			h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
			return
		}
		eventsDLQ.Inc()
		return
	}
	eventsProcessed.Inc()
}

func (h *KafkaHandler) handleEvent(ctx context.Context, m kafka.Message) error {
	event, err := feed.Decode(m.Value)
	if err != nil {
		return err
	}
	if err := h.events.Publish(ctx, event); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

func (h *KafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	return h.dlq.WriteMessages(ctx, kafka.Message{
		Topic:   fmt.Sprintf("%s-dlq", m.Topic),
		Key:     m.Key,
		Value:   m.Value,
		Headers: m.Headers,
	})
}

func (h *KafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
