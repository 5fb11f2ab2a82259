package recovery_test

import (
	"time"

	"payoutd/internal/recovery"
	"payoutd/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Backoff", func() {
	It("rejects an empty table", func() {
		_, err := recovery.NewBackoff(nil)
		Expect(err).To(MatchError(recovery.ErrInvalidBackoff))
	})

	It("rejects a decreasing table", func() {
		_, err := recovery.NewBackoff([]time.Duration{time.Minute, 30 * time.Second})
		Expect(err).To(MatchError(recovery.ErrInvalidBackoff))
	})

	It("rejects non-positive delays", func() {
		_, err := recovery.NewBackoff([]time.Duration{0, time.Minute})
		Expect(err).To(MatchError(recovery.ErrInvalidBackoff))
	})

	It("accepts equal neighbours", func() {
		b, err := recovery.NewBackoff([]time.Duration{time.Minute, time.Minute})
		Expect(err).NotTo(HaveOccurred())
		Expect(b.Len()).To(Equal(2))
	})

	DescribeTable("presets never shrink and stop at the cap",
		func(b recovery.Backoff) {
			var prev time.Duration
			for i := 0; i < b.Len(); i++ {
				d, ok := b.Next(i)
				Expect(ok).To(BeTrue())
				Expect(d).To(BeNumerically(">=", prev))
				prev = d
			}
			_, ok := b.Next(b.Len())
			Expect(ok).To(BeFalse())
		},
		Entry("fast", recovery.FastSchedule()),
		Entry("slow", recovery.SlowSchedule()),
	)

	It("follows the fast ladder", func() {
		b := recovery.FastSchedule()
		d, _ := b.Next(0)
		Expect(d).To(Equal(2 * time.Minute))
		d, _ = b.Next(3)
		Expect(d).To(Equal(20 * time.Minute))
	})
})

var _ = Describe("Status", func() {
	DescribeTable("transitions",
		func(from, to recovery.Status, allowed bool) {
			Expect(from.CanTransition(to)).To(Equal(allowed))
		},
		Entry(nil, recovery.StatusPending, recovery.StatusProcessing, true),
		Entry(nil, recovery.StatusRetryScheduled, recovery.StatusProcessing, true),
		Entry(nil, recovery.StatusProcessing, recovery.StatusSuccess, true),
		Entry(nil, recovery.StatusProcessing, recovery.StatusRetryScheduled, true),
		Entry(nil, recovery.StatusProcessing, recovery.StatusMaxRetriesExceeded, true),
		Entry(nil, recovery.StatusRetryScheduled, recovery.StatusSuccess, false),
		Entry(nil, recovery.StatusSuccess, recovery.StatusProcessing, false),
		Entry(nil, recovery.StatusFailed, recovery.StatusRetryScheduled, false),
		Entry(nil, recovery.StatusMaxRetriesExceeded, recovery.StatusProcessing, false),
	)

	It("knows terminal statuses", func() {
		Expect(recovery.StatusSuccess.Terminal()).To(BeTrue())
		Expect(recovery.StatusFailed.Terminal()).To(BeTrue())
		Expect(recovery.StatusAlreadyClaimed.Terminal()).To(BeTrue())
		Expect(recovery.StatusMaxRetriesExceeded.Terminal()).To(BeTrue())
		Expect(recovery.StatusRetryScheduled.Terminal()).To(BeFalse())
	})

	It("leaves the record alone on an illegal transition", func() {
		rec := repository.FailureRecord{ID: "f", Status: string(recovery.StatusFailed)}
		err := recovery.Transition(&rec, recovery.StatusProcessing)
		Expect(err).To(MatchError(recovery.ErrIllegalTransition))
		Expect(rec.Status).To(Equal(string(recovery.StatusFailed)))
	})
})
