package ledger_test

import (
	"context"
	"errors"

	"payoutd/internal/claim"
	"payoutd/internal/kv"
	"payoutd/internal/ledger"
	"payoutd/internal/ledger/fake"
	"payoutd/internal/repository"

	"github.com/alicebob/miniredis/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var _ = Describe("Reconciler", func() {
	var (
		mr         *miniredis.Miniredis
		client     *redis.Client
		store      *kv.Coordinator
		fakeRepo   *fake.Repository
		reconciler *ledger.Reconciler
		ctx        context.Context
		claims     []claim.Claim
		fakeErr    error
	)

	BeforeEach(func() {
		mr = miniredis.RunT(GinkgoT())
		client = redis.NewClient(&redis.Options{Addr: mr.Addr()})
		store = kv.NewCoordinator(client)
		fakeRepo = new(fake.Repository)
		reconciler = ledger.NewReconciler(zap.NewNop().Sugar(), fakeRepo, ledger.NewPaidCache(client, ledger.PaidTTL, false), store)
		ctx = context.Background()
		fakeErr = errors.New("fake error")

		claims = []claim.Claim{
			{ID: "c1", UserKey: "u1", EventID: "e1", RecipientAddress: "0x01", Source: "web"},
			{ID: "c2", UserKey: "u2", EventID: "e1", RecipientAddress: "0x02", Source: "web"},
		}
	})

	AfterEach(func() {
		Expect(client.Close()).To(Succeed())
	})

	Describe("RecordOutcome", func() {
		var (
			success bool
			err     error
		)

		BeforeEach(func() {
			success = true
		})

		JustBeforeEach(func() {
			err = reconciler.RecordOutcome(ctx, claims, "0xhash", success, "")
		})

		It("writes every claim in one upsert", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeRepo.UpsertOutcomesCallCount()).To(Equal(1))

			_, entries := fakeRepo.UpsertOutcomesArgsForCall(0)
			Expect(entries).To(HaveLen(2))
			for _, e := range entries {
				Expect(e.Success).To(BeTrue())
				Expect(*e.TxHash).To(Equal("0xhash"))
			}
		})

		It("answers IsClaimed from the cache afterwards", func() {
			claimed, err := reconciler.IsClaimed(ctx, "u1", "e1")
			Expect(err).NotTo(HaveOccurred())
			Expect(claimed).To(BeTrue())
			Expect(fakeRepo.GetEntryCallCount()).To(BeZero())
		})

		When("the ledger write fails after a confirmed payout", func() {
			BeforeEach(func() {
				fakeRepo.UpsertOutcomesReturns(fakeErr)
			})

			It("reports the claims as paid and keeps the gap", func() {
				Expect(err).NotTo(HaveOccurred())

				n, err := store.Len(ctx, ledger.DiscrepancyKey)
				Expect(err).NotTo(HaveOccurred())
				Expect(n).To(Equal(int64(2)))
			})

			It("still blocks a second payout", func() {
				claimed, err := reconciler.IsClaimed(ctx, "u2", "e1")
				Expect(err).NotTo(HaveOccurred())
				Expect(claimed).To(BeTrue())
			})
		})

		When("a failed outcome cannot be written", func() {
			BeforeEach(func() {
				success = false
				fakeRepo.UpsertOutcomesReturns(fakeErr)
			})

			It("returns the error", func() {
				Expect(err).To(MatchError(ContainSubstring("fake error")))
				n, _ := store.Len(ctx, ledger.DiscrepancyKey)
				Expect(n).To(BeZero())
			})
		})
	})

	Describe("IsClaimed", func() {
		When("no entry exists", func() {
			BeforeEach(func() {
				fakeRepo.GetEntryReturns(repository.LedgerEntry{}, repository.ErrEntryNotFound)
			})

			It("answers false and does not cache it", func() {
				claimed, err := reconciler.IsClaimed(ctx, "u1", "e1")
				Expect(err).NotTo(HaveOccurred())
				Expect(claimed).To(BeFalse())

				_, err = reconciler.IsClaimed(ctx, "u1", "e1")
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.GetEntryCallCount()).To(Equal(2))
			})
		})

		When("only a failed entry exists", func() {
			BeforeEach(func() {
				fakeRepo.GetEntryReturns(repository.LedgerEntry{Success: false}, nil)
			})

			It("answers false", func() {
				claimed, err := reconciler.IsClaimed(ctx, "u1", "e1")
				Expect(err).NotTo(HaveOccurred())
				Expect(claimed).To(BeFalse())
			})
		})

		When("a successful entry exists", func() {
			BeforeEach(func() {
				fakeRepo.GetEntryReturns(repository.LedgerEntry{Success: true}, nil)
			})

			It("caches the positive answer", func() {
				for i := 0; i < 3; i++ {
					claimed, err := reconciler.IsClaimed(ctx, "u1", "e1")
					Expect(err).NotTo(HaveOccurred())
					Expect(claimed).To(BeTrue())
				}
				Expect(fakeRepo.GetEntryCallCount()).To(Equal(1))
			})
		})

		When("the database fails", func() {
			BeforeEach(func() {
				fakeRepo.GetEntryReturns(repository.LedgerEntry{}, fakeErr)
			})

			It("returns the error", func() {
				_, err := reconciler.IsClaimed(ctx, "u1", "e1")
				Expect(err).To(MatchError(ContainSubstring("fake error")))
			})
		})
	})

	Describe("Entry", func() {
		It("maps a missing entry", func() {
			fakeRepo.GetEntryReturns(repository.LedgerEntry{}, repository.ErrEntryNotFound)
			_, err := reconciler.Entry(ctx, "u1", "e1")
			Expect(err).To(MatchError(ledger.ErrNotFound))
		})
	})

	Describe("Repair", func() {
		BeforeEach(func() {
			fakeRepo.UpsertOutcomesReturnsOnCall(0, fakeErr)
			Expect(reconciler.RecordOutcome(ctx, claims, "0xhash", true, "")).To(Succeed())
		})

		It("replays kept discrepancies", func() {
			n, err := reconciler.Repair(ctx, 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(2))

			left, _ := store.Len(ctx, ledger.DiscrepancyKey)
			Expect(left).To(BeZero())

			_, entries := fakeRepo.UpsertOutcomesArgsForCall(1)
			Expect(entries[0].ClaimID).To(Equal("c1"))
			Expect(entries[0].Success).To(BeTrue())
		})

		It("keeps discrepancies that still fail", func() {
			fakeRepo.UpsertOutcomesReturnsOnCall(1, fakeErr)

			n, err := reconciler.Repair(ctx, 10)
			Expect(err).To(HaveOccurred())
			Expect(n).To(Equal(1))

			left, _ := store.Len(ctx, ledger.DiscrepancyKey)
			Expect(left).To(Equal(int64(1)))
		})
	})
})
