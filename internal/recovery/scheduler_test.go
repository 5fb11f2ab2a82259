package recovery_test

import (
	"context"
	"errors"
	"time"

	"payoutd/internal/claim"
	"payoutd/internal/dispatch"
	"payoutd/internal/executor"
	"payoutd/internal/kv"
	"payoutd/internal/queue"
	"payoutd/internal/recovery"
	"payoutd/internal/recovery/fake"
	"payoutd/internal/repository"
	"payoutd/internal/wallet"

	"github.com/alicebob/miniredis/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var _ = Describe("Scheduler", func() {
	var (
		mr            *miniredis.Miniredis
		client        *redis.Client
		coordinator   *kv.Coordinator
		claims        *queue.ClaimQueue
		fakeStore     *fake.FailureStore
		fakeLedger    *fake.Ledger
		fakePool      *fake.WalletPool
		fakeExec      *fake.Executor
		fakePublisher *fake.Publisher
		scheduler     *recovery.Scheduler
		ctx           context.Context
		c1, c2        claim.Claim
		lease         *wallet.Lease
		transientErr  error
	)

	lastUpdate := func() *repository.FailureRecord {
		Expect(fakeStore.UpdateFailureCallCount()).To(BeNumerically(">", 0))
		_, rec := fakeStore.UpdateFailureArgsForCall(fakeStore.UpdateFailureCallCount() - 1)
		return rec
	}

	BeforeEach(func() {
		ctx = context.Background()
		mr = miniredis.RunT(GinkgoT())
		client = redis.NewClient(&redis.Options{Addr: mr.Addr()})
		DeferCleanup(client.Close)

		logger := zap.NewNop().Sugar()
		coordinator = kv.NewCoordinator(client)
		claims = queue.NewClaimQueue(logger, coordinator)

		fakeStore = new(fake.FailureStore)
		fakeLedger = new(fake.Ledger)
		fakePool = new(fake.WalletPool)
		fakeExec = new(fake.Executor)
		fakePublisher = new(fake.Publisher)

		lease = &wallet.Lease{WalletID: "w1", Purpose: "web"}
		fakePool.LeaseReturns(lease, nil)
		transientErr = errors.Join(executor.ErrAttemptsExhausted, errors.New("receipt wait budget exhausted"))

		now := time.Now().UTC()
		c1 = claim.Claim{ID: "c1", UserKey: "u1", EventID: "e1", RecipientAddress: "0x00000000000000000000000000000000000000a1", Source: "web", EnqueuedAt: now}
		c2 = claim.Claim{ID: "c2", UserKey: "u2", EventID: "e1", RecipientAddress: "0x00000000000000000000000000000000000000a2", Source: "web", EnqueuedAt: now}

		scheduler = recovery.NewScheduler(logger, fakeStore, fakeLedger, fakePool, fakeExec, fakePublisher, coordinator, claims, recovery.Config{
			Backoff: recovery.FastSchedule(),
			LockTTL: 5 * time.Minute,
		})
	})

	Describe("ScheduleBatch", func() {
		It("creates one record per claim and schedules the first retry", func() {
			before := time.Now()
			err := scheduler.ScheduleBatch(ctx, []claim.Claim{c1, c2}, []string{"0xaa"}, transientErr)
			Expect(err).NotTo(HaveOccurred())

			Expect(fakeStore.CreateFailuresCallCount()).To(Equal(1))
			_, records := fakeStore.CreateFailuresArgsForCall(0)
			Expect(records).To(HaveLen(2))
			for _, rec := range records {
				Expect(rec.ID).NotTo(BeEmpty())
				Expect(rec.Status).To(Equal(string(recovery.StatusRetryScheduled)))
				Expect(rec.Attempt).To(BeZero())
				Expect(rec.TxHashes).To(Equal([]string{"0xaa"}))
				Expect(rec.ErrorHistory).To(HaveLen(1))
				Expect(*rec.NextRetryAt).To(BeTemporally("~", before.Add(2*time.Minute), 5*time.Second))
			}
			Expect(records[0].ClaimID).To(Equal("c1"))
			Expect(records[1].ClaimID).To(Equal("c2"))

			Expect(fakePublisher.PublishCallCount()).To(Equal(2))
			_, job, delay := fakePublisher.PublishArgsForCall(0)
			Expect(job.Kind).To(Equal(dispatch.KindClaimRetry))
			Expect(job.ClaimRetry.FailureID).To(Equal(records[0].ID))
			Expect(delay).To(Equal(2 * time.Minute))
		})

		It("does not publish when the records cannot be stored", func() {
			fakeStore.CreateFailuresReturns(errors.New("db down"))
			err := scheduler.ScheduleBatch(ctx, []claim.Claim{c1}, nil, transientErr)
			Expect(err).To(MatchError(ContainSubstring("db down")))
			Expect(fakePublisher.PublishCallCount()).To(BeZero())
		})

		It("keeps going when a publish fails", func() {
			fakePublisher.PublishReturns(errors.New("qstash down"))
			Expect(scheduler.ScheduleBatch(ctx, []claim.Claim{c1, c2}, nil, transientErr)).To(Succeed())
			Expect(fakePublisher.PublishCallCount()).To(Equal(2))
		})
	})

	Describe("MarkFailed", func() {
		BeforeEach(func() {
			_, err := claims.MarkPending(ctx, c1.UserKey, c1.EventID, c1.ID, time.Hour)
			Expect(err).NotTo(HaveOccurred())
		})

		It("records the failure and releases the pair", func() {
			err := scheduler.MarkFailed(ctx, []claim.Claim{c1}, executor.ErrInsufficientTokens)
			Expect(err).NotTo(HaveOccurred())

			_, records := fakeStore.CreateFailuresArgsForCall(0)
			Expect(records[0].Status).To(Equal(string(recovery.StatusFailed)))
			Expect(records[0].LastError).To(Equal(executor.ErrInsufficientTokens.Error()))

			_, recorded, hash, success, msg := fakeLedger.RecordOutcomeArgsForCall(0)
			Expect(recorded).To(Equal([]claim.Claim{c1}))
			Expect(hash).To(BeEmpty())
			Expect(success).To(BeFalse())
			Expect(msg).To(Equal(executor.ErrInsufficientTokens.Error()))

			_, found, err := claims.PendingClaim(ctx, c1.UserKey, c1.EventID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeFalse())
			Expect(fakePublisher.PublishCallCount()).To(BeZero())
		})
	})

	Describe("HandleRetry", func() {
		var (
			rec repository.FailureRecord
			err error
		)

		BeforeEach(func() {
			due := time.Now().Add(-time.Second)
			rec = repository.NewFailureRecord("f-1", c1)
			rec.Status = string(recovery.StatusRetryScheduled)
			rec.NextRetryAt = &due
			rec.TxHashes = []string{"0xaa"}
			rec.ErrorHistory = []string{"first"}
			fakeStore.GetFailureStub = func(context.Context, string) (repository.FailureRecord, error) {
				return rec, nil
			}

			_, mpErr := claims.MarkPending(ctx, c1.UserKey, c1.EventID, c1.ID, time.Hour)
			Expect(mpErr).NotTo(HaveOccurred())
		})

		JustBeforeEach(func() {
			err = scheduler.HandleRetry(ctx, "f-1")
		})

		When("the record is gone", func() {
			BeforeEach(func() {
				fakeStore.GetFailureStub = nil
				fakeStore.GetFailureReturns(repository.FailureRecord{}, repository.ErrFailureNotFound)
			})

			It("does nothing", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakePool.LeaseCallCount()).To(BeZero())
				Expect(fakeStore.UpdateFailureCallCount()).To(BeZero())
			})
		})

		When("the record is already terminal", func() {
			BeforeEach(func() {
				rec.Status = string(recovery.StatusFailed)
			})

			It("does nothing", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeLedger.IsClaimedCallCount()).To(BeZero())
			})
		})

		When("the delivery is early", func() {
			BeforeEach(func() {
				later := time.Now().Add(time.Hour)
				rec.NextRetryAt = &later
			})

			It("waits for the scheduled delivery", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeExec.ExecuteCallCount()).To(BeZero())
			})
		})

		When("another delivery holds the record", func() {
			BeforeEach(func() {
				_, lockErr := coordinator.Obtain(ctx, recovery.RetryLockKey("f-1"), time.Minute)
				Expect(lockErr).NotTo(HaveOccurred())
			})

			It("backs off", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStore.GetFailureCallCount()).To(BeZero())
			})
		})

		When("the pair was paid in the meantime", func() {
			BeforeEach(func() {
				fakeLedger.IsClaimedReturns(true, nil)
			})

			It("deletes the record without paying", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeExec.ExecuteCallCount()).To(BeZero())
				Expect(fakeStore.DeleteFailureCallCount()).To(Equal(1))
				_, id := fakeStore.DeleteFailureArgsForCall(0)
				Expect(id).To(Equal("f-1"))
				Expect(lastUpdate().Status).To(Equal(string(recovery.StatusAlreadyClaimed)))
			})
		})

		When("an earlier submission has confirmed", func() {
			BeforeEach(func() {
				fakeExec.FindConfirmedReturns(executor.TxResult{TxHash: "0xaa", BlockNumber: 7}, true, nil)
			})

			It("records the payout without a new transaction", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakePool.LeaseCallCount()).To(BeZero())
				_, hashes := fakeExec.FindConfirmedArgsForCall(0)
				Expect(hashes).To(Equal([]string{"0xaa"}))

				_, _, hash, success, _ := fakeLedger.RecordOutcomeArgsForCall(0)
				Expect(hash).To(Equal("0xaa"))
				Expect(success).To(BeTrue())
				Expect(fakeStore.DeleteFailureCallCount()).To(Equal(1))
			})
		})

		When("the retry pays", func() {
			BeforeEach(func() {
				fakeExec.ExecuteReturns(executor.TxResult{
					TxHash:   "0xbb",
					Attempts: []executor.TxAttempt{{TxHash: "0xbb"}},
				}, nil)
			})

			It("records success, deletes the record and frees the wallet", func() {
				Expect(err).NotTo(HaveOccurred())

				_, batch := fakeExec.ExecuteArgsForCall(0)
				Expect(batch.Claims).To(Equal([]claim.Claim{c1}))
				Expect(batch.Lease).To(Equal(lease))

				_, paid, hash, success, _ := fakeLedger.RecordOutcomeArgsForCall(0)
				Expect(paid).To(Equal([]claim.Claim{c1}))
				Expect(hash).To(Equal("0xbb"))
				Expect(success).To(BeTrue())

				Expect(fakeStore.DeleteFailureCallCount()).To(Equal(1))
				Expect(fakePool.ReleaseCallCount()).To(Equal(1))
				Expect(lastUpdate().Status).To(Equal(string(recovery.StatusSuccess)))

				_, found, _ := claims.PendingClaim(ctx, c1.UserKey, c1.EventID)
				Expect(found).To(BeFalse())
			})
		})

		When("no wallet is free", func() {
			BeforeEach(func() {
				fakePool.LeaseReturns(nil, wallet.ErrBusy)
			})

			It("postpones without spending an attempt", func() {
				Expect(err).NotTo(HaveOccurred())
				updated := lastUpdate()
				Expect(updated.Status).To(Equal(string(recovery.StatusRetryScheduled)))
				Expect(updated.Attempt).To(BeZero())

				_, job, delay := fakePublisher.PublishArgsForCall(0)
				Expect(job.ClaimRetry.FailureID).To(Equal("f-1"))
				Expect(delay).To(BeNumerically(">=", 5*time.Second))
				Expect(delay).To(BeNumerically("<=", 15*time.Second))
				Expect(fakeExec.ExecuteCallCount()).To(BeZero())
			})
		})

		When("the retry fails transiently", func() {
			BeforeEach(func() {
				fakeExec.ExecuteReturns(executor.TxResult{
					Attempts: []executor.TxAttempt{{TxHash: "0xcc"}},
				}, transientErr)
			})

			It("moves to the next rung", func() {
				Expect(err).NotTo(HaveOccurred())
				updated := lastUpdate()
				Expect(updated.Status).To(Equal(string(recovery.StatusRetryScheduled)))
				Expect(updated.Attempt).To(Equal(1))
				Expect(updated.ErrorHistory).To(HaveLen(2))
				Expect(updated.TxHashes).To(Equal([]string{"0xaa", "0xcc"}))

				_, _, delay := fakePublisher.PublishArgsForCall(0)
				Expect(delay).To(Equal(5 * time.Minute))
				Expect(fakeLedger.RecordOutcomeCallCount()).To(BeZero())
				Expect(fakePool.ReleaseCallCount()).To(Equal(1))
			})
		})

		When("the last rung fails", func() {
			BeforeEach(func() {
				rec.Attempt = 3
				fakeExec.ExecuteReturns(executor.TxResult{}, transientErr)
			})

			It("gives up with max retries exceeded", func() {
				Expect(err).NotTo(HaveOccurred())
				updated := lastUpdate()
				Expect(updated.Status).To(Equal(string(recovery.StatusMaxRetriesExceeded)))
				Expect(updated.Attempt).To(Equal(4))
				Expect(updated.NextRetryAt).To(BeNil())

				_, _, _, success, msg := fakeLedger.RecordOutcomeArgsForCall(0)
				Expect(success).To(BeFalse())
				Expect(msg).To(ContainSubstring("attempts exhausted"))
				Expect(fakePublisher.PublishCallCount()).To(BeZero())

				_, found, _ := claims.PendingClaim(ctx, c1.UserKey, c1.EventID)
				Expect(found).To(BeFalse())
			})
		})

		When("the retry fails fatally", func() {
			BeforeEach(func() {
				fakeExec.ExecuteReturns(executor.TxResult{}, executor.ErrInvalidRecipient)
			})

			It("marks the record failed", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(lastUpdate().Status).To(Equal(string(recovery.StatusFailed)))
				Expect(fakePublisher.PublishCallCount()).To(BeZero())
			})
		})

		When("the ledger cannot be read", func() {
			BeforeEach(func() {
				fakeLedger.IsClaimedReturns(false, errors.New("db down"))
			})

			It("asks for redelivery without touching the record", func() {
				Expect(err).To(HaveOccurred())
				Expect(fakeStore.UpdateFailureCallCount()).To(BeZero())
			})
		})
	})

	Describe("Sweep", func() {
		It("republishes only orphaned retries", func() {
			now := time.Now()
			overdue := now.Add(-10 * time.Minute)
			upcoming := now.Add(10 * time.Minute)
			fakeStore.ListFailuresReturns([]repository.FailureRecord{
				{ID: "overdue", Status: string(recovery.StatusRetryScheduled), NextRetryAt: &overdue},
				{ID: "upcoming", Status: string(recovery.StatusRetryScheduled), NextRetryAt: &upcoming},
				{ID: "stuck", Status: string(recovery.StatusProcessing), UpdatedAt: now.Add(-time.Hour)},
				{ID: "running", Status: string(recovery.StatusProcessing), UpdatedAt: now},
			}, nil)

			n, err := scheduler.Sweep(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(2))

			_, statuses := fakeStore.ListFailuresArgsForCall(0)
			Expect(statuses).To(ConsistOf(string(recovery.StatusRetryScheduled), string(recovery.StatusProcessing)))

			ids := []string{}
			for i := 0; i < fakePublisher.PublishCallCount(); i++ {
				_, job, delay := fakePublisher.PublishArgsForCall(i)
				Expect(delay).To(BeZero())
				ids = append(ids, job.ClaimRetry.FailureID)
			}
			Expect(ids).To(ConsistOf("overdue", "stuck"))
		})
	})
})
