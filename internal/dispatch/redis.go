package dispatch

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"
)

const (
	DelayedKey     = "dispatch:delayed"
	redeliverDelay = 30 * time.Second
)

// RedisScheduler keeps delayed jobs in a sorted set scored by due time in
// unix milliseconds. Drain claims a job by removing it, so concurrent
// drainers never run the same delivery twice.
type RedisScheduler struct {
	logs   *zap.SugaredLogger
	client redis.UniversalClient
	now    func() time.Time
}

func NewRedisScheduler(logger *zap.SugaredLogger, client redis.UniversalClient) *RedisScheduler {
	return &RedisScheduler{
		logs:   logger,
		client: client,
		now:    time.Now,
	}
}

func (s *RedisScheduler) Publish(ctx context.Context, job Job, delay time.Duration) error {
	if err := job.Validate(); err != nil {
		return err
	}

	if err := s.add(ctx, job, delay); err != nil {
		return fmt.Errorf("publish job %s: %w", job.ID, err)
	}

	s.logs.Infow("job scheduled",
		"job_id", job.ID,
		"kind", job.Kind,
		"delay", delay.String())
	return nil
}

// Len returns the number of scheduled jobs, due or not.
func (s *RedisScheduler) Len(ctx context.Context) (int64, error) {
	n, err := s.client.ZCard(ctx, DelayedKey).Result()
	if err != nil {
		return 0, fmt.Errorf("zcard %s: %w", DelayedKey, err)
	}
	return n, nil
}

// Drain dispatches up to limit due jobs. A job whose handler fails is put
// back with a short delay; malformed jobs are dropped.
func (s *RedisScheduler) Drain(ctx context.Context, d Dispatcher, limit int64) (int, error) {
	members, err := s.client.ZRangeByScore(ctx, DelayedKey, &redis.ZRangeBy{
		Min:   "-inf",
		Max:   strconv.FormatInt(s.now().UnixMilli(), 10),
		Count: limit,
	}).Result()
	if err != nil {
		return 0, fmt.Errorf("range due jobs: %w", err)
	}

	var handled int
	for _, member := range members {
		removed, err := s.client.ZRem(ctx, DelayedKey, member).Result()
		if err != nil {
			return handled, fmt.Errorf("claim job: %w", err)
		}
		if removed == 0 {
			continue
		}

		var job Job
		if err := msgpack.Unmarshal([]byte(member), &job); err != nil {
			s.logs.Errorw("dropping undecodable job", "error", err)
			continue
		}

		err = d.Dispatch(ctx, job)
		switch {
		case err == nil:
			handled++
		case errors.Is(err, ErrMalformedJob):
			s.logs.Errorw("dropping malformed job", "job_id", job.ID, "error", err)
		default:
			s.logs.Warnw("job failed, redelivering",
				"job_id", job.ID,
				"kind", job.Kind,
				"retry_in", redeliverDelay.String(),
				"error", err)
			if err := s.add(ctx, job, redeliverDelay); err != nil {
				s.logs.Errorw("failed to reschedule job", "job_id", job.ID, "error", err)
			}
		}
	}

	return handled, nil
}

func (s *RedisScheduler) add(ctx context.Context, job Job, delay time.Duration) error {
	b, err := msgpack.Marshal(job)
	if err != nil {
		return fmt.Errorf("encode job: %w", err)
	}

	due := s.now().Add(delay).UnixMilli()
	return s.client.ZAdd(ctx, DelayedKey, redis.Z{Score: float64(due), Member: b}).Err()
}
