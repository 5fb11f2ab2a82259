package executor_test

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"payoutd/internal/claim"
	"payoutd/internal/ethereum"
	"payoutd/internal/executor"
	"payoutd/internal/executor/fake"
	"payoutd/internal/wallet"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var _ = Describe("Engine", func() {
	var (
		fakeChain *fake.Chain
		engine    *executor.Engine
		cfg       executor.Config
		ctx       context.Context
		lease     *wallet.Lease
		batch     claim.Batch
		sent      int

		token    = common.HexToAddress("0x1111111111111111111111111111111111111111")
		contract = common.HexToAddress("0x2222222222222222222222222222222222222222")
	)

	BeforeEach(func() {
		ctx = context.Background()
		fakeChain = new(fake.Chain)
		sent = 0

		key, err := crypto.GenerateKey()
		Expect(err).NotTo(HaveOccurred())
		lease = &wallet.Lease{
			WalletID: "w1",
			Address:  crypto.PubkeyToAddress(key.PublicKey),
			Key:      key,
			Purpose:  "web",
		}

		batch = claim.Batch{
			Lease: lease,
			Claims: []claim.Claim{
				{ID: "c1", UserKey: "u1", EventID: "e1", RecipientAddress: "0x00000000000000000000000000000000000000a1"},
				{ID: "c2", UserKey: "u2", EventID: "e1", RecipientAddress: "0x00000000000000000000000000000000000000a2"},
			},
		}

		cfg = executor.Config{
			Token:           token,
			PayoutContract:  contract,
			UnitAmount:      big.NewInt(10),
			ApprovalAmount:  big.NewInt(1000),
			MaxAttempts:     3,
			BaseMultiplier:  decimal.RequireFromString("1.2"),
			StepMultiplier:  decimal.RequireFromString("0.3"),
			ConfirmAttempts: 5,
		}

		fakeChain.TokenBalanceReturns(big.NewInt(1000), nil)
		fakeChain.NativeBalanceReturns(big.NewInt(1e18), nil)
		fakeChain.AllowanceReturns(big.NewInt(500), nil)
		fakeChain.FeeQuoteReturns(ethereum.Fees{BaseFee: big.NewInt(100), TipCap: big.NewInt(2)}, nil)
		fakeChain.EstimateGasReturns(50000, nil)
		fakeChain.LatestNonceReturns(5, nil)
		fakeChain.PackDisperseReturns([]byte{0xd1}, nil)
		fakeChain.PackApproveReturns([]byte{0xa1}, nil)
		fakeChain.SendTxStub = func(context.Context, ethereum.TxRequest) (common.Hash, error) {
			sent++
			return common.BigToHash(big.NewInt(int64(sent))), nil
		}
		fakeChain.WaitReceiptStub = func(_ context.Context, h common.Hash, _ int, _ time.Duration) (*ethereum.Receipt, error) {
			return &ethereum.Receipt{TxHash: h.Hex(), Status: 1, BlockNumber: 10}, nil
		}
	})

	JustBeforeEach(func() {
		engine = executor.NewEngine(zap.NewNop().Sugar(), fakeChain, cfg)
	})

	Describe("Execute", func() {
		var (
			res executor.TxResult
			err error
		)

		JustBeforeEach(func() {
			res, err = engine.Execute(ctx, batch)
		})

		When("everything is in place", func() {
			It("sends one aggregated transaction", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeChain.SendTxCallCount()).To(Equal(1))
				Expect(res.TxHash).To(Equal(common.BigToHash(big.NewInt(1)).Hex()))
				Expect(res.BlockNumber).To(Equal(uint64(10)))
				Expect(res.Attempts).To(HaveLen(1))
				Expect(res.RemainingAllowance.Int64()).To(Equal(int64(480)))

				tok, recipients, values := fakeChain.PackDisperseArgsForCall(0)
				Expect(tok).To(Equal(token))
				Expect(recipients).To(HaveLen(2))
				Expect(values[0].Int64()).To(Equal(int64(10)))
			})

			It("scales fees by the base multiplier and reads a fresh nonce", func() {
				Expect(err).NotTo(HaveOccurred())
				_, req := fakeChain.SendTxArgsForCall(0)
				Expect(req.To).To(Equal(contract))
				Expect(req.Nonce).To(Equal(uint64(5)))
				Expect(req.GasTipCap.Int64()).To(Equal(int64(3)))
				Expect(req.GasFeeCap.Int64()).To(Equal(int64(243)))
				Expect(req.GasLimit).To(Equal(uint64(60000)))
				Expect(fakeChain.LatestNonceCallCount()).To(Equal(1))
			})
		})

		When("the chain has no base fee", func() {
			BeforeEach(func() {
				fakeChain.FeeQuoteReturns(ethereum.Fees{GasPrice: big.NewInt(10)}, nil)
			})

			It("sends a legacy priced transaction", func() {
				Expect(err).NotTo(HaveOccurred())
				_, req := fakeChain.SendTxArgsForCall(0)
				Expect(req.GasPrice.Int64()).To(Equal(int64(12)))
				Expect(req.GasFeeCap).To(BeNil())
			})
		})

		When("the token balance is too low", func() {
			BeforeEach(func() {
				fakeChain.TokenBalanceReturns(big.NewInt(19), nil)
			})

			It("fails fatally without sending", func() {
				Expect(err).To(MatchError(executor.ErrInsufficientTokens))
				Expect(executor.IsFatal(err)).To(BeTrue())
				Expect(fakeChain.SendTxCallCount()).To(BeZero())
			})
		})

		When("the wallet has no gas", func() {
			BeforeEach(func() {
				fakeChain.NativeBalanceReturns(big.NewInt(0), nil)
			})

			It("fails fatally without sending", func() {
				Expect(err).To(MatchError(executor.ErrInsufficientGas))
				Expect(fakeChain.SendTxCallCount()).To(BeZero())
			})
		})

		When("the gas cost exceeds the native balance", func() {
			BeforeEach(func() {
				fakeChain.NativeBalanceReturns(big.NewInt(1000), nil)
			})

			It("fails fatally before signing", func() {
				Expect(err).To(MatchError(executor.ErrInsufficientGas))
				Expect(fakeChain.SendTxCallCount()).To(BeZero())
				Expect(res.Attempts).To(HaveLen(1))
			})
		})

		When("a recipient address is malformed", func() {
			BeforeEach(func() {
				batch.Claims[1].RecipientAddress = "not-an-address"
			})

			It("fails fatally", func() {
				Expect(err).To(MatchError(executor.ErrInvalidRecipient))
				Expect(executor.IsFatal(err)).To(BeTrue())
			})
		})

		When("the batch is empty", func() {
			BeforeEach(func() {
				batch.Claims = nil
			})

			It("fails fatally", func() {
				Expect(err).To(MatchError(executor.ErrEmptyBatch))
			})
		})

		When("the allowance is insufficient", func() {
			BeforeEach(func() {
				fakeChain.AllowanceReturns(big.NewInt(5), nil)
			})

			It("approves before paying", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeChain.SendTxCallCount()).To(Equal(2))

				_, approve := fakeChain.SendTxArgsForCall(0)
				Expect(approve.To).To(Equal(token))
				spender, amount := fakeChain.PackApproveArgsForCall(0)
				Expect(spender).To(Equal(contract))
				Expect(amount.Int64()).To(Equal(int64(1000)))

				_, payout := fakeChain.SendTxArgsForCall(1)
				Expect(payout.To).To(Equal(contract))

				Expect(res.ApprovalTxHash).To(Equal(common.BigToHash(big.NewInt(1)).Hex()))
				Expect(res.TxHash).To(Equal(common.BigToHash(big.NewInt(2)).Hex()))
				Expect(res.RemainingAllowance.Int64()).To(Equal(int64(980)))
			})
		})

		When("the first attempt is not confirmed in time", func() {
			BeforeEach(func() {
				calls := 0
				fakeChain.WaitReceiptStub = func(_ context.Context, h common.Hash, _ int, _ time.Duration) (*ethereum.Receipt, error) {
					calls++
					if calls == 1 {
						return nil, ethereum.ErrReceiptTimeout
					}
					return &ethereum.Receipt{TxHash: h.Hex(), Status: 1, BlockNumber: 11}, nil
				}
			})

			It("retries with escalated fees and a fresh nonce", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeChain.SendTxCallCount()).To(Equal(2))
				Expect(fakeChain.LatestNonceCallCount()).To(Equal(2))

				_, retry := fakeChain.SendTxArgsForCall(1)
				Expect(retry.GasTipCap.Int64()).To(Equal(int64(3)))
				Expect(retry.GasFeeCap.Int64()).To(Equal(int64(303)))

				Expect(res.Attempts).To(HaveLen(2))
				Expect(res.Attempts[0].Error).To(ContainSubstring("receipt wait budget exhausted"))
				Expect(res.BlockNumber).To(Equal(uint64(11)))
			})

			It("checks the earlier submission first", func() {
				Expect(fakeChain.FetchReceiptsCallCount()).To(Equal(1))
				_, hashes := fakeChain.FetchReceiptsArgsForCall(0)
				Expect(hashes).To(Equal([]string{common.BigToHash(big.NewInt(1)).Hex()}))
			})
		})

		When("an earlier submission lands while waiting to retry", func() {
			BeforeEach(func() {
				fakeChain.WaitReceiptReturns(nil, ethereum.ErrReceiptTimeout)
				fakeChain.WaitReceiptStub = nil
				fakeChain.FetchReceiptsStub = func(_ context.Context, hashes []string) ([]*ethereum.Receipt, error) {
					return []*ethereum.Receipt{{TxHash: hashes[0], Status: 1, BlockNumber: 12}}, nil
				}
			})

			It("reports it instead of paying twice", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeChain.SendTxCallCount()).To(Equal(1))
				Expect(res.TxHash).To(Equal(common.BigToHash(big.NewInt(1)).Hex()))
				Expect(res.BlockNumber).To(Equal(uint64(12)))
			})
		})

		When("every attempt fails transiently", func() {
			BeforeEach(func() {
				fakeChain.WaitReceiptStub = nil
				fakeChain.WaitReceiptReturns(nil, ethereum.ErrReceiptTimeout)
			})

			It("gives up after the configured attempts", func() {
				Expect(err).To(MatchError(executor.ErrAttemptsExhausted))
				Expect(executor.IsFatal(err)).To(BeFalse())
				Expect(fakeChain.SendTxCallCount()).To(Equal(3))
				Expect(res.SubmittedHashes()).To(HaveLen(3))
			})
		})

		When("a retry turns fatal after an earlier submission", func() {
			var fetches int

			BeforeEach(func() {
				fetches = 0
				fakeChain.WaitReceiptStub = nil
				fakeChain.WaitReceiptReturns(nil, ethereum.ErrReceiptTimeout)

				balances := 0
				fakeChain.NativeBalanceStub = func(context.Context, common.Address) (*big.Int, error) {
					balances++
					if balances <= 2 {
						return big.NewInt(1e18), nil
					}
					return big.NewInt(1), nil
				}
				fakeChain.FetchReceiptsStub = func(context.Context, []string) ([]*ethereum.Receipt, error) {
					fetches++
					return nil, nil
				}
			})

			It("leaves the outcome open instead of failing the claims", func() {
				Expect(err).To(MatchError(executor.ErrUnresolved))
				Expect(err).To(MatchError(ContainSubstring(executor.ErrInsufficientGas.Error())))
				Expect(executor.IsFatal(err)).To(BeFalse())
				Expect(res.SubmittedHashes()).To(Equal([]string{common.BigToHash(big.NewInt(1)).Hex()}))
				Expect(fakeChain.SendTxCallCount()).To(Equal(1))
			})

			It("checks the earlier submission again before giving up", func() {
				Expect(fetches).To(Equal(2))
			})

			When("the earlier submission has confirmed by then", func() {
				BeforeEach(func() {
					fakeChain.FetchReceiptsStub = func(_ context.Context, hashes []string) ([]*ethereum.Receipt, error) {
						fetches++
						if fetches == 1 {
							return nil, nil
						}
						return []*ethereum.Receipt{{TxHash: hashes[0], Status: 1, BlockNumber: 13}}, nil
					}
				})

				It("reports the payout", func() {
					Expect(err).NotTo(HaveOccurred())
					Expect(res.TxHash).To(Equal(common.BigToHash(big.NewInt(1)).Hex()))
					Expect(res.BlockNumber).To(Equal(uint64(13)))
				})
			})
		})

		When("the node rejects the fee", func() {
			BeforeEach(func() {
				fakeChain.SendTxStub = func(context.Context, ethereum.TxRequest) (common.Hash, error) {
					sent++
					if sent == 1 {
						return common.BigToHash(big.NewInt(1)), errors.New("replacement transaction underpriced")
					}
					return common.BigToHash(big.NewInt(int64(sent))), nil
				}
			})

			It("retries", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(res.Attempts).To(HaveLen(2))
				Expect(res.Attempts[0].Error).To(ContainSubstring(executor.ErrFeeTooLow.Error()))
			})
		})

		When("the node says the transaction is already known", func() {
			BeforeEach(func() {
				fakeChain.SendTxStub = func(context.Context, ethereum.TxRequest) (common.Hash, error) {
					return common.HexToHash("0xfeed"), errors.New("already known")
				}
			})

			It("waits for its receipt", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(res.TxHash).To(Equal(common.HexToHash("0xfeed").Hex()))
			})
		})

		When("the node reports insufficient funds", func() {
			BeforeEach(func() {
				fakeChain.SendTxStub = func(context.Context, ethereum.TxRequest) (common.Hash, error) {
					return common.Hash{}, fmt.Errorf("send transaction: %w", errors.New("insufficient funds for gas * price + value"))
				}
			})

			It("stops without retrying", func() {
				Expect(err).To(MatchError(executor.ErrInsufficientGas))
				Expect(fakeChain.SendTxCallCount()).To(Equal(1))
			})
		})
	})

	Describe("EnsureAllowance", func() {
		var minimum *big.Int

		BeforeEach(func() {
			minimum = big.NewInt(500)
		})

		It("does nothing when the allowance suffices", func() {
			hash, err := engine.EnsureAllowance(ctx, lease, minimum)
			Expect(err).NotTo(HaveOccurred())
			Expect(hash).To(BeEmpty())
			Expect(fakeChain.SendTxCallCount()).To(BeZero())
		})

		It("approves the configured amount when short", func() {
			fakeChain.AllowanceReturns(big.NewInt(100), nil)

			hash, err := engine.EnsureAllowance(ctx, lease, minimum)
			Expect(err).NotTo(HaveOccurred())
			Expect(hash).NotTo(BeEmpty())

			_, amount := fakeChain.PackApproveArgsForCall(0)
			Expect(amount.Int64()).To(Equal(int64(1000)))
		})
	})

	Describe("FindConfirmed", func() {
		It("ignores failed receipts", func() {
			fakeChain.FetchReceiptsReturns([]*ethereum.Receipt{{TxHash: "0x1", Status: 0}}, nil)

			_, ok, err := engine.FindConfirmed(ctx, []string{"0x1"})
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeFalse())
		})

		It("returns the confirmed submission", func() {
			fakeChain.FetchReceiptsReturns([]*ethereum.Receipt{{TxHash: "0x2", Status: 1, BlockNumber: 9}}, nil)

			res, ok, err := engine.FindConfirmed(ctx, []string{"0x1", "0x2"})
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())
			Expect(res.TxHash).To(Equal("0x2"))
		})
	})
})
