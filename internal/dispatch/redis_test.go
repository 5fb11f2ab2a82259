package dispatch_test

import (
	"context"
	"errors"
	"time"

	"payoutd/internal/dispatch"
	"payoutd/internal/dispatch/fake"

	"github.com/alicebob/miniredis/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var _ = Describe("RedisScheduler", func() {
	var (
		mr          *miniredis.Miniredis
		client      *redis.Client
		scheduler   *dispatch.RedisScheduler
		router      *dispatch.Router
		fakeBatches *fake.BatchHandler
		fakeRetries *fake.RetryHandler
		ctx         context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		mr = miniredis.RunT(GinkgoT())
		client = redis.NewClient(&redis.Options{Addr: mr.Addr()})
		DeferCleanup(client.Close)

		logger := zap.NewNop().Sugar()
		scheduler = dispatch.NewRedisScheduler(logger, client)
		fakeBatches = new(fake.BatchHandler)
		fakeRetries = new(fake.RetryHandler)
		router = dispatch.NewRouter(logger, fakeBatches, fakeRetries, new(fake.ApprovalHandler))
	})

	It("dispatches due jobs once", func() {
		Expect(scheduler.Publish(ctx, dispatch.NewBatchTrigger("web"), 0)).To(Succeed())

		handled, err := scheduler.Drain(ctx, router, 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(handled).To(Equal(1))
		Expect(fakeBatches.HandleBatchTriggerCallCount()).To(Equal(1))

		handled, err = scheduler.Drain(ctx, router, 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(handled).To(BeZero())
		Expect(fakeBatches.HandleBatchTriggerCallCount()).To(Equal(1))
	})

	It("holds jobs until they are due", func() {
		Expect(scheduler.Publish(ctx, dispatch.NewClaimRetry("f-1"), time.Hour)).To(Succeed())

		handled, err := scheduler.Drain(ctx, router, 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(handled).To(BeZero())
		Expect(fakeRetries.HandleRetryCallCount()).To(BeZero())

		n, err := scheduler.Len(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(int64(1)))
	})

	It("respects the drain limit", func() {
		for i := 0; i < 3; i++ {
			Expect(scheduler.Publish(ctx, dispatch.NewBatchTrigger("web"), 0)).To(Succeed())
		}

		handled, err := scheduler.Drain(ctx, router, 2)
		Expect(err).NotTo(HaveOccurred())
		Expect(handled).To(Equal(2))

		n, _ := scheduler.Len(ctx)
		Expect(n).To(Equal(int64(1)))
	})

	It("puts a failed job back for later", func() {
		fakeRetries.HandleRetryReturns(errors.New("db down"))
		Expect(scheduler.Publish(ctx, dispatch.NewClaimRetry("f-1"), 0)).To(Succeed())

		handled, err := scheduler.Drain(ctx, router, 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(handled).To(BeZero())

		n, _ := scheduler.Len(ctx)
		Expect(n).To(Equal(int64(1)))

		handled, _ = scheduler.Drain(ctx, router, 10)
		Expect(handled).To(BeZero())
		Expect(fakeRetries.HandleRetryCallCount()).To(Equal(1))
	})

	It("refuses malformed jobs at publish time", func() {
		err := scheduler.Publish(ctx, dispatch.Job{ID: "1", Kind: dispatch.KindBatchTrigger}, 0)
		Expect(err).To(MatchError(dispatch.ErrMalformedJob))
	})
})
