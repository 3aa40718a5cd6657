package redis

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/povarna/generative-ai-agents/vent-agent/internal/models"
	red "github.com/povarna/generative-ai-agents/vent-agent/internal/redis"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Executor runs one counting request
type Executor interface {
	Execute(ctx context.Context, req models.CountRequest) (models.CountResult, error)
}

// ReportSink persists finished results
type ReportSink interface {
	SaveReport(ctx context.Context, result models.CountResult) error
}

type Consumer struct {
	client       redis.Cmdable
	stream       string
	groupID      string
	consumerName string
	resultStream string
	executor     Executor
	sink         ReportSink
	logger       *zerolog.Logger
}

func Connect(ctx context.Context, cfg *RedisStreamConfig) (*redis.Client, error) {
	return red.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, 5)
}

// NewConsumer builds a consumer group reader. sink may be nil.
func NewConsumer(client redis.Cmdable, cfg *RedisStreamConfig, exec Executor, sink ReportSink, logger *zerolog.Logger) *Consumer {
	return &Consumer{
		client:       client,
		stream:       cfg.Stream,
		groupID:      cfg.Group,
		consumerName: cfg.ConsumerName,
		resultStream: cfg.ResultStream,
		executor:     exec,
		sink:         sink,
		logger:       logger,
	}
}

func (c *Consumer) Setup(ctx context.Context) error {
	err := c.client.XGroupCreateMkStream(ctx, c.stream, c.groupID, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return err
	}
	return nil
}

func (c *Consumer) Start(ctx context.Context) error {
	c.logger.Info().
		Str("stream", c.stream).
		Str("group", c.groupID).
		Str("consumer", c.consumerName).
		Msg("Consumer started")

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		msgs, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    c.groupID,
			Consumer: c.consumerName,
			Streams:  []string{c.stream, ">"},
			Count:    1,
			Block:    2 * time.Second,
		}).Result()

		if err != nil {
			if errors.Is(err, redis.Nil) {
				// timeout, no message -> loop again
				continue
			}

			if ctx.Err() != nil {
				return ctx.Err()
			}

			c.logger.Error().Err(err).Msg("Failed to read from stream")
			continue
		}

		for _, msg := range msgs[0].Messages {
			c.process(ctx, msg)
		}
	}
}

// Stop closes the underlying client when it can be closed. Start must have returned or its
// context must be cancelled.
func (c *Consumer) Stop() error {
	if closer, ok := c.client.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (c *Consumer) process(ctx context.Context, msg redis.XMessage) {
	c.logger.Info().Str("id", msg.ID).Msg("Message received")

	payload, ok := msg.Values["payload"].(string)
	if !ok {
		c.logger.Error().Str("id", msg.ID).Msg("Missing payload field")
		c.ack(ctx, msg.ID)
		return
	}

	var req models.CountRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		c.logger.Error().Err(err).Str("id", msg.ID).Msg("Failed to decode message")
		c.ack(ctx, msg.ID) // bad message, ACK to skip it
		return
	}
	if req.ID == "" {
		req.ID = msg.ID
	}

	result, err := c.executor.Execute(ctx, req)
	if err != nil {
		// Malformed vent lines will fail the same way on redelivery.
		c.logger.Error().Err(err).Str("id", msg.ID).Str("request_id", req.ID).Msg("Count failed")
		c.publish(ctx, map[string]any{"id": req.ID, "error": err.Error()})
		c.ack(ctx, msg.ID)
		return
	}

	c.logger.Info().
		Str("id", msg.ID).
		Str("request_id", result.ID).
		Int("axis_aligned", result.AxisAligned).
		Int("all", result.All).
		Msg("Count complete")

	if c.sink != nil {
		if err := c.sink.SaveReport(ctx, result); err != nil {
			c.logger.Error().Err(err).Str("request_id", result.ID).Msg("Failed to save report")
		}
	}

	if data, err := json.Marshal(result); err == nil {
		c.publish(ctx, map[string]any{"id": result.ID, "result": string(data)})
	}

	c.ack(ctx, msg.ID)
}

func (c *Consumer) publish(ctx context.Context, values map[string]any) {
	if c.resultStream == "" {
		return
	}

	err := c.client.XAdd(ctx, &redis.XAddArgs{
		Stream: c.resultStream,
		Values: values,
	}).Err()
	if err != nil {
		c.logger.Error().Err(err).Str("stream", c.resultStream).Msg("Failed to publish result")
	}
}

func (c *Consumer) ack(ctx context.Context, msgID string) {
	if err := c.client.XAck(ctx, c.stream, c.groupID, msgID).Err(); err != nil {
		c.logger.Error().Err(err).Str("id", msgID).Msg("Failed to ACK message")
	}
}
