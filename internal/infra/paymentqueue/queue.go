// Package paymentqueue keeps undelivered payment records in a Redis list.
package paymentqueue

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"guidely/internal/domain/payment"
	"guidely/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

type RedisQueue struct {
	client redis.Cmdable
	key    string
}

func NewRedisQueue(client redis.Cmdable, prefix string) *RedisQueue {
	return &RedisQueue{client: client, key: prefix + ":payments:retry"}
}

func (q *RedisQueue) Enqueue(ctx context.Context, req payment.Request) error {
	raw, err := json.Marshal(req)
	if err != nil {
		return errs.Wrap(err, "encode payment request")
	}
	if err := q.client.RPush(ctx, q.key, raw).Err(); err != nil {
		return errs.Wrapf(err, "push to %s", q.key)
	}
	return nil
}

// Dequeue pops up to max records, oldest first. Entries that no longer decode
// are logged and discarded.
func (q *RedisQueue) Dequeue(ctx context.Context, max int) ([]payment.Request, error) {
	if max <= 0 {
		return nil, nil
	}
	items, err := q.client.LPopCount(ctx, q.key, max).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.Wrapf(err, "pop from %s", q.key)
	}

	out := make([]payment.Request, 0, len(items))
	for _, raw := range items {
		var req payment.Request
		if err := json.Unmarshal([]byte(raw), &req); err != nil {
			slog.Error("discarding undecodable payment retry entry", "key", q.key, "error", err)
			continue
		}
		out = append(out, req)
	}
	return out, nil
}

func (q *RedisQueue) Len(ctx context.Context) (int64, error) {
	return q.client.LLen(ctx, q.key).Result()
}
