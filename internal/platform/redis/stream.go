package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/open-builders/guard-bot/internal/features/guard/models"
)

// DefaultStream is the stream other backends consume bot events from.
const DefaultStream = "bot:events"

// streamMaxLen caps the stream so it does not grow without consumers.
const streamMaxLen = 10000

// StreamAdder is the part of the Redis client used by StreamPublisher.
type StreamAdder interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

// StreamPublisher appends bot events to a Redis stream.
type StreamPublisher struct {
	rdb    StreamAdder
	stream string
}

func NewStreamPublisher(rdb StreamAdder, stream string) *StreamPublisher {
	if stream == "" {
		stream = DefaultStream
	}
	return &StreamPublisher{rdb: rdb, stream: stream}
}

// Publish adds the event as one stream entry. Ids are formatted as decimal
// strings because consumers parse them with strconv.
func (p *StreamPublisher) Publish(ctx context.Context, event models.BotEvent) error {
	err := p.rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		MaxLen: streamMaxLen,
		Approx: true,
		Values: streamValues(event),
	}).Err()
	if err != nil {
		return fmt.Errorf("xadd %s: %w", p.stream, err)
	}
	return nil
}

func streamValues(event models.BotEvent) map[string]interface{} {
	return map[string]interface{}{
		"event_id":    event.ID,
		"type":        string(event.Type),
		"channel_id":  strconv.FormatInt(event.ChatID, 10),
		"occurred_at": event.OccurredAt.UTC().Format(time.RFC3339),
	}
}
