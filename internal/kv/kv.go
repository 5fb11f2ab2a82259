package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

var (
	ErrNotFound    = errors.New("key not found")
	ErrNotObtained = errors.New("lock not obtained")
	ErrLockNotHeld = errors.New("lock not held")
)

// Lock is a held SET NX PX lock.
type Lock interface {
	Key() string
	TTL(ctx context.Context) (time.Duration, error)
	Release(ctx context.Context) error
}

// Coordinator is the shared key-value store used for queues, markers and locks.
type Coordinator struct {
	client redis.UniversalClient
	locker *redislock.Client
}

func NewCoordinator(client redis.UniversalClient) *Coordinator {
	return &Coordinator{
		client: client,
		locker: redislock.New(client),
	}
}

func Connect(ctx context.Context, url string) (redis.UniversalClient, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func (c *Coordinator) Client() redis.UniversalClient {
	return c.client
}

func (c *Coordinator) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	return nil
}

// Push appends values to the tail of the list and returns the new length.
func (c *Coordinator) Push(ctx context.Context, key string, values ...[]byte) (int64, error) {
	if len(values) == 0 {
		return c.Len(ctx, key)
	}
	n, err := c.client.RPush(ctx, key, toArgs(values)...).Result()
	if err != nil {
		return 0, fmt.Errorf("rpush %s: %w", key, err)
	}
	return n, nil
}

// PushFront puts values back at the head of the list keeping their order.
func (c *Coordinator) PushFront(ctx context.Context, key string, values ...[]byte) (int64, error) {
	if len(values) == 0 {
		return c.Len(ctx, key)
	}
	reversed := make([][]byte, len(values))
	for i, v := range values {
		reversed[len(values)-1-i] = v
	}
	n, err := c.client.LPush(ctx, key, toArgs(reversed)...).Result()
	if err != nil {
		return 0, fmt.Errorf("lpush %s: %w", key, err)
	}
	return n, nil
}

// PopN removes and returns up to n values from the head in one transaction.
func (c *Coordinator) PopN(ctx context.Context, key string, n int64) ([][]byte, error) {
	if n <= 0 {
		return nil, nil
	}

	var rng *redis.StringSliceCmd
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		rng = pipe.LRange(ctx, key, 0, n-1)
		pipe.LTrim(ctx, key, n, -1)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("pop %s: %w", key, err)
	}

	return toBytes(rng.Val()), nil
}

func (c *Coordinator) Range(ctx context.Context, key string, start, stop int64) ([][]byte, error) {
	vals, err := c.client.LRange(ctx, key, start, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("lrange %s: %w", key, err)
	}
	return toBytes(vals), nil
}

func (c *Coordinator) Len(ctx context.Context, key string) (int64, error) {
	n, err := c.client.LLen(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("llen %s: %w", key, err)
	}
	return n, nil
}

// SetNX stores value only if key is absent.
func (c *Coordinator) SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	ok, err := c.client.SetNX(ctx, key, value, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("setnx %s: %w", key, err)
	}
	return ok, nil
}

func (c *Coordinator) Get(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get %s: %w", key, err)
	}
	return val, nil
}

func (c *Coordinator) Exists(ctx context.Context, key string) (bool, error) {
	n, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("exists %s: %w", key, err)
	}
	return n > 0, nil
}

func (c *Coordinator) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("del: %w", err)
	}
	return nil
}

// CountKeys counts keys matching pattern with SCAN.
func (c *Coordinator) CountKeys(ctx context.Context, pattern string) (int64, error) {
	var count int64
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		count++
	}
	if err := iter.Err(); err != nil {
		return 0, fmt.Errorf("scan %s: %w", pattern, err)
	}
	return count, nil
}

// Obtain takes a lock without retrying; a held lock yields ErrNotObtained.
func (c *Coordinator) Obtain(ctx context.Context, key string, ttl time.Duration) (Lock, error) {
	lock, err := c.locker.Obtain(ctx, key, ttl, nil)
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, ErrNotObtained
	}
	if err != nil {
		return nil, fmt.Errorf("obtain %s: %w", key, err)
	}
	return &redisLock{lock: lock}, nil
}

type redisLock struct {
	lock *redislock.Lock
}

func (l *redisLock) Key() string {
	return l.lock.Key()
}

func (l *redisLock) TTL(ctx context.Context) (time.Duration, error) {
	return l.lock.TTL(ctx)
}

func (l *redisLock) Release(ctx context.Context) error {
	err := l.lock.Release(ctx)
	if errors.Is(err, redislock.ErrLockNotHeld) {
		return ErrLockNotHeld
	}
	return err
}

func toArgs(values [][]byte) []any {
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}
	return args
}

func toBytes(values []string) [][]byte {
	out := make([][]byte, len(values))
	for i, v := range values {
		out[i] = []byte(v)
	}
	return out
}
