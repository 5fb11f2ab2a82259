package config_test

import (
	"math/big"
	"os"
	"time"

	"payoutd/internal/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NewApp", func() {
	var (
		app config.App
		err error
	)

	setEnv := func(key, value string) {
		prev, had := os.LookupEnv(key)
		Expect(os.Setenv(key, value)).To(Succeed())
		DeferCleanup(func() {
			if had {
				os.Setenv(key, prev)
				return
			}
			os.Unsetenv(key)
		})
	}

	unsetEnv := func(key string) {
		prev, had := os.LookupEnv(key)
		Expect(os.Unsetenv(key)).To(Succeed())
		DeferCleanup(func() {
			if had {
				os.Setenv(key, prev)
			}
		})
	}

	BeforeEach(func() {
		setEnv("API_PORT", "8080")
		setEnv("ETH_NODE_URL", "http://localhost:8545")
		setEnv("DB_CONNECTION_URL", "postgres://localhost/payouts")
		setEnv("REDIS_URL", "redis://localhost:6379/0")
		setEnv("TOKEN_ADDRESS", "0x1111111111111111111111111111111111111111")
		setEnv("PAYOUT_CONTRACT_ADDRESS", "0x2222222222222222222222222222222222222222")
		setEnv("REWARD_AMOUNT", "1.5")
		setEnv("CLAIM_SOURCES", "web, mini_app")
		setEnv("WALLET_KEYS_WEB", "0xaa,0xbb")
		setEnv("WALLET_KEYS_MINI_APP", "0xcc")
		for _, key := range []string{
			"TOKEN_DECIMALS", "BATCH_SIZE", "BATCH_TIMEOUT", "BATCH_LOCK_TTL",
			"WALLET_LEASE_TTL", "RETRY_BACKOFF", "DISPATCH_MODE", "MAX_TX_ATTEMPTS",
			"CONFIRM_ATTEMPTS", "CONFIRM_INTERVAL", "FEE_BASE_MULTIPLIER",
			"PENDING_CLAIM_TTL", "WAIT_TIMEOUT", "TX_RETRY_DELAY",
			"QSTASH_CURRENT_SIGNING_KEY", "QSTASH_NEXT_SIGNING_KEY",
		} {
			unsetEnv(key)
		}
	})

	JustBeforeEach(func() {
		app, err = config.NewApp()
	})

	When("all required variables are set", func() {
		It("applies defaults", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.Sources).To(Equal([]string{"web", "mini_app"}))
			Expect(app.WalletKeys["web"]).To(Equal([]string{"0xaa", "0xbb"}))
			Expect(app.WalletKeys["mini_app"]).To(Equal([]string{"0xcc"}))
			Expect(app.Batch.Size).To(Equal(10))
			Expect(app.Batch.Timeout).To(Equal(15 * time.Second))
			Expect(app.Batch.LockTTL).To(Equal(300 * time.Second))
			Expect(app.RetryBackoff).To(Equal([]time.Duration{2 * time.Minute, 5 * time.Minute, 10 * time.Minute, 20 * time.Minute}))
			Expect(app.Tx.MaxAttempts).To(Equal(3))
			Expect(app.Tx.BaseMultiplier.String()).To(Equal("1.2"))
			Expect(app.Dispatch.Mode).To(Equal(config.DispatchModeRedis))
		})

		It("converts the reward amount into base units", func() {
			expected, _ := new(big.Int).SetString("1500000000000000000", 10)
			Expect(app.RewardAmount).To(Equal(expected))
		})
	})

	When("a required variable is missing", func() {
		BeforeEach(func() {
			unsetEnv("REDIS_URL")
		})

		It("returns an error naming it", func() {
			Expect(err).To(MatchError(ContainSubstring("REDIS_URL")))
		})
	})

	When("a source has no wallet keys", func() {
		BeforeEach(func() {
			unsetEnv("WALLET_KEYS_MINI_APP")
		})

		It("fails", func() {
			Expect(err).To(MatchError(ContainSubstring("WALLET_KEYS_MINI_APP")))
		})
	})

	When("the reward amount has too many decimals", func() {
		BeforeEach(func() {
			setEnv("TOKEN_DECIMALS", "2")
			setEnv("REWARD_AMOUNT", "0.001")
		})

		It("fails", func() {
			Expect(err).To(MatchError(ContainSubstring("REWARD_AMOUNT")))
		})
	})

	When("the batch lock TTL is shorter than the execution budget", func() {
		BeforeEach(func() {
			setEnv("BATCH_LOCK_TTL", "60s")
		})

		It("fails", func() {
			Expect(err).To(MatchError(ContainSubstring("BATCH_LOCK_TTL")))
		})
	})

	When("qstash dispatch is selected without credentials", func() {
		BeforeEach(func() {
			setEnv("DISPATCH_MODE", "qstash")
			unsetEnv("QSTASH_URL")
		})

		It("fails", func() {
			Expect(err).To(MatchError(ContainSubstring("QSTASH_URL")))
		})
	})

	When("the pending claim TTL is shorter than the retry ladder", func() {
		BeforeEach(func() {
			setEnv("PENDING_CLAIM_TTL", "30m")
		})

		It("fails", func() {
			Expect(err).To(MatchError(ContainSubstring("PENDING_CLAIM_TTL")))
		})
	})

	When("qstash dispatch is selected without a signing key", func() {
		BeforeEach(func() {
			setEnv("DISPATCH_MODE", "qstash")
			setEnv("QSTASH_URL", "https://qstash.example.com")
			setEnv("QSTASH_TOKEN", "token")
			setEnv("CALLBACK_URL", "https://payout.example.com/jobs")
		})

		It("fails", func() {
			Expect(err).To(MatchError(ContainSubstring("QSTASH_CURRENT_SIGNING_KEY")))
		})

		When("the key is set", func() {
			BeforeEach(func() {
				setEnv("QSTASH_CURRENT_SIGNING_KEY", "sig_current")
			})

			It("loads", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(app.Dispatch.CurrentSigningKey).To(Equal("sig_current"))
			})
		})
	})
})

var _ = Describe("App budgets", func() {
	var app config.App

	BeforeEach(func() {
		app = config.App{
			Batch: config.Batch{WaitTimeout: 30 * time.Second},
			Tx: config.Tx{
				MaxAttempts:     3,
				RetryDelay:      2 * time.Second,
				ConfirmAttempts: 20,
				ConfirmInterval: 2 * time.Second,
			},
			RetryBackoff: []time.Duration{2 * time.Minute, 5 * time.Minute, 10 * time.Minute, 20 * time.Minute},
		}
	})

	It("lets a response outlast a synchronous payout", func() {
		Expect(app.ResponseBudget()).To(BeNumerically(">", app.Tx.WorstCase()))
		Expect(app.ResponseBudget()).To(Equal(282 * time.Second))
	})

	It("covers a long claim wait as well", func() {
		app.Batch.WaitTimeout = 10 * time.Minute
		Expect(app.ResponseBudget()).To(BeNumerically(">", 10*time.Minute))
	})

	It("spans the backoff ladder and every execution", func() {
		Expect(app.RecoveryWindow()).To(Equal(37*time.Minute + 5*252*time.Second))
	})
})

var _ = Describe("Tx.WorstCase", func() {
	It("covers approval and payout ladders", func() {
		tx := config.Tx{
			MaxAttempts:     3,
			RetryDelay:      2 * time.Second,
			ConfirmAttempts: 20,
			ConfirmInterval: 2 * time.Second,
		}
		Expect(tx.WorstCase()).To(Equal(252 * time.Second))
	})
})
