// Package redislock is a single-instance Redis lease used to keep one
// scheduler replica running a job at a time.
package redislock

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"guidely/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

var ErrNotHeld = errs.New("lock is no longer held")

// releaseScript deletes the key only while it still carries our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

// Client is the subset of *redis.Client the locker needs.
type Client interface {
	redis.Scripter
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
}

type Locker struct {
	client Client
	prefix string
}

func NewLocker(client Client, prefix string) *Locker {
	return &Locker{client: client, prefix: prefix}
}

type Lease struct {
	locker *Locker
	key    string
	token  string
}

// TryAcquire returns a nil lease without error when another holder owns name.
func (l *Locker) TryAcquire(ctx context.Context, name string, ttl time.Duration) (*Lease, error) {
	token, err := newToken()
	if err != nil {
		return nil, err
	}
	key := l.prefix + ":lock:" + name

	ok, err := l.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, errs.Wrapf(err, "acquire lock %s", key)
	}
	if !ok {
		return nil, nil
	}
	return &Lease{locker: l, key: key, token: token}, nil
}

func (ls *Lease) Release(ctx context.Context) error {
	n, err := releaseScript.Run(ctx, ls.locker.client, []string{ls.key}, ls.token).Int()
	if err != nil {
		return errs.Wrapf(err, "release lock %s", ls.key)
	}
	if n == 0 {
		return ErrNotHeld
	}
	return nil
}

func newToken() (string, error) {
	var buf [16]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", errs.Wrap(err, "generate lock token")
	}
	return hex.EncodeToString(buf[:]), nil
}
