package config

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

var (
	errEnvVarNotFound = errors.New("environment variable not found")
	errInvalidValue   = errors.New("invalid environment variable value")
)

const (
	apiPortEnvKey        = "API_PORT"
	ethNodeEnvKey        = "ETH_NODE_URL"
	dbConnEnvKey         = "DB_CONNECTION_URL"
	redisURLEnvKey       = "REDIS_URL"
	logLevelEnvKey       = "LOG_LEVEL"
	tokenAddressEnvKey   = "TOKEN_ADDRESS"
	payoutContractEnvKey = "PAYOUT_CONTRACT_ADDRESS"
	tokenDecimalsEnvKey  = "TOKEN_DECIMALS"
	rewardAmountEnvKey   = "REWARD_AMOUNT"
	claimSourcesEnvKey   = "CLAIM_SOURCES"
	walletKeysEnvPrefix  = "WALLET_KEYS_"

	batchSizeEnvKey      = "BATCH_SIZE"
	batchTimeoutEnvKey   = "BATCH_TIMEOUT"
	waitTimeoutEnvKey    = "WAIT_TIMEOUT"
	batchLockTTLEnvKey   = "BATCH_LOCK_TTL"
	walletLeaseTTLEnvKey = "WALLET_LEASE_TTL"
	pendingTTLEnvKey     = "PENDING_CLAIM_TTL"
	retryBackoffEnvKey   = "RETRY_BACKOFF"

	maxTxAttemptsEnvKey   = "MAX_TX_ATTEMPTS"
	txRetryDelayEnvKey    = "TX_RETRY_DELAY"
	feeBaseEnvKey         = "FEE_BASE_MULTIPLIER"
	feeStepEnvKey         = "FEE_STEP_MULTIPLIER"
	confirmAttemptsEnvKey = "CONFIRM_ATTEMPTS"
	confirmIntervalEnvKey = "CONFIRM_INTERVAL"
	refillBatchesEnvKey   = "ALLOWANCE_REFILL_BATCHES"

	dispatchModeEnvKey   = "DISPATCH_MODE"
	qstashURLEnvKey      = "QSTASH_URL"
	qstashTokenEnvKey    = "QSTASH_TOKEN"
	qstashCurrentEnvKey  = "QSTASH_CURRENT_SIGNING_KEY"
	qstashNextEnvKey     = "QSTASH_NEXT_SIGNING_KEY"
	callbackURLEnvKey    = "CALLBACK_URL"
	apiKeyHashEnvKey     = "CLAIM_API_KEY_HASH"
	rateLimitEnvKey      = "CLAIM_RATE_LIMIT_PER_MINUTE"
)

const (
	DispatchModeRedis  = "redis"
	DispatchModeQStash = "qstash"
)

type Batch struct {
	Size        int
	Timeout     time.Duration
	WaitTimeout time.Duration
	LockTTL     time.Duration
	PendingTTL  time.Duration
}

type Tx struct {
	MaxAttempts            int
	RetryDelay             time.Duration
	BaseMultiplier         decimal.Decimal
	StepMultiplier         decimal.Decimal
	ConfirmAttempts        int
	ConfirmInterval        time.Duration
	AllowanceRefillBatches int
}

// WorstCase is the longest a single Execute call may hold a wallet:
// an approval and a payout, each with the full inline retry ladder.
func (t Tx) WorstCase() time.Duration {
	confirm := time.Duration(t.ConfirmAttempts) * t.ConfirmInterval
	total := 2 * time.Duration(t.MaxAttempts) * confirm
	for i := 1; i < t.MaxAttempts; i++ {
		total += 2 * time.Duration(i) * t.RetryDelay
	}
	return total
}

// responseSlack covers lock, ledger and queue work around a payout.
const responseSlack = 30 * time.Second

// ResponseBudget is the longest an HTTP handler may take: a claim waiting for
// its outcome, or a delivered job running a batch synchronously.
func (a App) ResponseBudget() time.Duration {
	return max(a.Tx.WorstCase(), a.Batch.WaitTimeout) + responseSlack
}

// RecoveryWindow is how long a claim may stay unresolved: the full backoff
// ladder plus one execution per attempt, including the inline one.
func (a App) RecoveryWindow() time.Duration {
	window := time.Duration(len(a.RetryBackoff)+1) * a.Tx.WorstCase()
	for _, d := range a.RetryBackoff {
		window += d
	}
	return window
}

type Dispatch struct {
	Mode              string
	QStashURL         string
	QStashToken       string
	CurrentSigningKey string
	NextSigningKey    string
	CallbackURL       string
}

type API struct {
	KeyHash            string
	RateLimitPerMinute int
}

type App struct {
	Port            string
	NodeURL         string
	DBConnectionURL string
	RedisURL        string
	LogLevel        string

	TokenAddress   common.Address
	PayoutContract common.Address
	TokenDecimals  int32
	// RewardAmount is the per-claim amount in token base units.
	RewardAmount *big.Int

	Sources    []string
	WalletKeys map[string][]string

	Batch          Batch
	WalletLeaseTTL time.Duration
	RetryBackoff   []time.Duration
	Tx             Tx
	Dispatch       Dispatch
	API            API
}

func NewApp() (App, error) {
	var app App
	var err error

	if app.Port, err = required(apiPortEnvKey); err != nil {
		return App{}, err
	}
	if app.NodeURL, err = required(ethNodeEnvKey); err != nil {
		return App{}, err
	}
	if app.DBConnectionURL, err = required(dbConnEnvKey); err != nil {
		return App{}, err
	}
	if app.RedisURL, err = required(redisURLEnvKey); err != nil {
		return App{}, err
	}
	app.LogLevel = optional(logLevelEnvKey, "info")

	if app.TokenAddress, err = addressEnv(tokenAddressEnvKey); err != nil {
		return App{}, err
	}
	if app.PayoutContract, err = addressEnv(payoutContractEnvKey); err != nil {
		return App{}, err
	}

	decimals, err := intEnv(tokenDecimalsEnvKey, 18)
	if err != nil {
		return App{}, err
	}
	if decimals < 0 || decimals > 36 {
		return App{}, fmt.Errorf("%w: %s out of range", errInvalidValue, tokenDecimalsEnvKey)
	}
	app.TokenDecimals = int32(decimals)

	rawAmount, err := required(rewardAmountEnvKey)
	if err != nil {
		return App{}, err
	}
	if app.RewardAmount, err = parseAmount(rawAmount, app.TokenDecimals); err != nil {
		return App{}, fmt.Errorf("%w: %s: %w", errInvalidValue, rewardAmountEnvKey, err)
	}

	rawSources, err := required(claimSourcesEnvKey)
	if err != nil {
		return App{}, err
	}
	app.Sources = splitList(rawSources)
	if len(app.Sources) == 0 {
		return App{}, fmt.Errorf("%w: %s is empty", errInvalidValue, claimSourcesEnvKey)
	}

	app.WalletKeys = make(map[string][]string, len(app.Sources))
	for _, source := range app.Sources {
		key := walletKeysEnvPrefix + strings.ToUpper(source)
		raw, err := required(key)
		if err != nil {
			return App{}, err
		}
		keys := splitList(raw)
		if len(keys) == 0 {
			return App{}, fmt.Errorf("%w: %s is empty", errInvalidValue, key)
		}
		app.WalletKeys[source] = keys
	}

	if app.Batch, err = batchConfig(); err != nil {
		return App{}, err
	}
	if app.WalletLeaseTTL, err = durationEnv(walletLeaseTTLEnvKey, 300*time.Second); err != nil {
		return App{}, err
	}
	if app.RetryBackoff, err = durationListEnv(retryBackoffEnvKey, "2m,5m,10m,20m"); err != nil {
		return App{}, err
	}
	if app.Tx, err = txConfig(); err != nil {
		return App{}, err
	}

	worstCase := app.Tx.WorstCase()
	if app.Batch.LockTTL <= worstCase {
		return App{}, fmt.Errorf("%w: %s must exceed %s", errInvalidValue, batchLockTTLEnvKey, worstCase)
	}
	if app.WalletLeaseTTL <= worstCase {
		return App{}, fmt.Errorf("%w: %s must exceed %s", errInvalidValue, walletLeaseTTLEnvKey, worstCase)
	}

	if window := app.RecoveryWindow(); app.Batch.PendingTTL <= window {
		return App{}, fmt.Errorf("%w: %s must exceed %s", errInvalidValue, pendingTTLEnvKey, window)
	}

	if app.Dispatch, err = dispatchConfig(); err != nil {
		return App{}, err
	}

	app.API.KeyHash = optional(apiKeyHashEnvKey, "")
	if app.API.RateLimitPerMinute, err = intEnv(rateLimitEnvKey, 30); err != nil {
		return App{}, err
	}

	return app, nil
}

func batchConfig() (Batch, error) {
	var b Batch
	var err error

	if b.Size, err = intEnv(batchSizeEnvKey, 10); err != nil {
		return Batch{}, err
	}
	if b.Size < 1 {
		return Batch{}, fmt.Errorf("%w: %s must be positive", errInvalidValue, batchSizeEnvKey)
	}
	if b.Timeout, err = durationEnv(batchTimeoutEnvKey, 15*time.Second); err != nil {
		return Batch{}, err
	}
	if b.WaitTimeout, err = durationEnv(waitTimeoutEnvKey, 30*time.Second); err != nil {
		return Batch{}, err
	}
	if b.LockTTL, err = durationEnv(batchLockTTLEnvKey, 300*time.Second); err != nil {
		return Batch{}, err
	}
	if b.PendingTTL, err = durationEnv(pendingTTLEnvKey, 24*time.Hour); err != nil {
		return Batch{}, err
	}
	return b, nil
}

func txConfig() (Tx, error) {
	var t Tx
	var err error

	if t.MaxAttempts, err = intEnv(maxTxAttemptsEnvKey, 3); err != nil {
		return Tx{}, err
	}
	if t.MaxAttempts < 1 {
		return Tx{}, fmt.Errorf("%w: %s must be positive", errInvalidValue, maxTxAttemptsEnvKey)
	}
	if t.RetryDelay, err = durationEnv(txRetryDelayEnvKey, 2*time.Second); err != nil {
		return Tx{}, err
	}
	if t.BaseMultiplier, err = decimalEnv(feeBaseEnvKey, "1.2"); err != nil {
		return Tx{}, err
	}
	if t.StepMultiplier, err = decimalEnv(feeStepEnvKey, "0.3"); err != nil {
		return Tx{}, err
	}
	if t.ConfirmAttempts, err = intEnv(confirmAttemptsEnvKey, 20); err != nil {
		return Tx{}, err
	}
	if t.ConfirmInterval, err = durationEnv(confirmIntervalEnvKey, 2*time.Second); err != nil {
		return Tx{}, err
	}
	if t.AllowanceRefillBatches, err = intEnv(refillBatchesEnvKey, 5); err != nil {
		return Tx{}, err
	}
	return t, nil
}

func dispatchConfig() (Dispatch, error) {
	d := Dispatch{
		Mode:              strings.ToLower(optional(dispatchModeEnvKey, DispatchModeRedis)),
		CurrentSigningKey: optional(qstashCurrentEnvKey, ""),
		NextSigningKey:    optional(qstashNextEnvKey, ""),
	}

	switch d.Mode {
	case DispatchModeRedis:
		return d, nil
	case DispatchModeQStash:
	default:
		return Dispatch{}, fmt.Errorf("%w: %s=%q", errInvalidValue, dispatchModeEnvKey, d.Mode)
	}

	var err error
	if d.QStashURL, err = required(qstashURLEnvKey); err != nil {
		return Dispatch{}, err
	}
	if d.QStashToken, err = required(qstashTokenEnvKey); err != nil {
		return Dispatch{}, err
	}
	if d.CallbackURL, err = required(callbackURLEnvKey); err != nil {
		return Dispatch{}, err
	}
	if d.CurrentSigningKey == "" {
		return Dispatch{}, fmt.Errorf("%w: %s", errEnvVarNotFound, qstashCurrentEnvKey)
	}
	d.QStashURL = strings.TrimRight(d.QStashURL, "/")
	return d, nil
}

func required(key string) (string, error) {
	val, ok := os.LookupEnv(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", errEnvVarNotFound, key)
	}
	return strings.TrimSpace(val), nil
}

func optional(key, def string) string {
	val, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(val) == "" {
		return def
	}
	return strings.TrimSpace(val)
}

func intEnv(key string, def int) (int, error) {
	raw := optional(key, "")
	if raw == "" {
		return def, nil
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", errInvalidValue, key, err)
	}
	return val, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := optional(key, "")
	if raw == "" {
		return def, nil
	}
	val, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", errInvalidValue, key, err)
	}
	if val <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive", errInvalidValue, key)
	}
	return val, nil
}

func durationListEnv(key, def string) ([]time.Duration, error) {
	items := splitList(optional(key, def))
	out := make([]time.Duration, 0, len(items))
	for _, item := range items {
		val, err := time.ParseDuration(item)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", errInvalidValue, key, err)
		}
		out = append(out, val)
	}
	return out, nil
}

func decimalEnv(key, def string) (decimal.Decimal, error) {
	val, err := decimal.NewFromString(optional(key, def))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %s: %w", errInvalidValue, key, err)
	}
	if val.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: %s must not be negative", errInvalidValue, key)
	}
	return val, nil
}

func addressEnv(key string) (common.Address, error) {
	raw, err := required(key)
	if err != nil {
		return common.Address{}, err
	}
	if !common.IsHexAddress(raw) {
		return common.Address{}, fmt.Errorf("%w: %s is not a hex address", errInvalidValue, key)
	}
	return common.HexToAddress(raw), nil
}

// parseAmount converts a human token amount into base units.
func parseAmount(raw string, decimals int32) (*big.Int, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, err
	}
	units := amount.Shift(decimals)
	if !units.Equal(units.Truncate(0)) {
		return nil, fmt.Errorf("more than %d fractional digits", decimals)
	}
	if !units.IsPositive() {
		return nil, errors.New("must be positive")
	}
	return units.BigInt(), nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
