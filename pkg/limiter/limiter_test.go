package limiter_test

import (
	"context"
	"errors"

	"payoutd/pkg/limiter"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis_rate/v10"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/redis/go-redis/v9"
)

var _ = Describe("RedisLimiter", func() {
	var (
		client *redis.Client
		lim    *limiter.RedisLimiter
		ctx    context.Context
	)

	BeforeEach(func() {
		mr := miniredis.RunT(GinkgoT())
		client = redis.NewClient(&redis.Options{Addr: mr.Addr()})
		lim = limiter.NewRedisLimiter(client, "rate:claims:")
		ctx = context.Background()
	})

	AfterEach(func() {
		Expect(client.Close()).To(Succeed())
	})

	It("rejects requests over the limit", func() {
		limit := redis_rate.PerMinute(2)

		Expect(lim.Allow(ctx, "client-a", limit)).To(Succeed())
		Expect(lim.Allow(ctx, "client-a", limit)).To(Succeed())

		err := lim.Allow(ctx, "client-a", limit)
		Expect(errors.Is(err, limiter.ErrRateLimited)).To(BeTrue())

		var limitErr *limiter.LimitError
		Expect(errors.As(err, &limitErr)).To(BeTrue())
		Expect(limitErr.RetryAfter).To(BeNumerically(">", 0))
	})

	It("tracks keys independently", func() {
		limit := redis_rate.PerMinute(1)

		Expect(lim.Allow(ctx, "client-a", limit)).To(Succeed())
		Expect(lim.Allow(ctx, "client-b", limit)).To(Succeed())
	})
})
