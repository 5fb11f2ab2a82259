package executor

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"payoutd/internal/claim"
	"payoutd/internal/ethereum"
	"payoutd/internal/wallet"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// gas estimates are padded by this percentage
const gasBufferPercent = 20

type Config struct {
	Token          common.Address
	PayoutContract common.Address
	// UnitAmount is paid to every recipient, in token base units.
	UnitAmount *big.Int
	// ApprovalAmount is the allowance granted when a top-up is needed.
	ApprovalAmount  *big.Int
	MaxAttempts     int
	RetryDelay      time.Duration
	BaseMultiplier  decimal.Decimal
	StepMultiplier  decimal.Decimal
	ConfirmAttempts int
	ConfirmInterval time.Duration
}

// TxAttempt is one signed submission.
type TxAttempt struct {
	AttemptNumber  int
	Nonce          uint64
	GasLimit       uint64
	GasFeeCap      *big.Int
	GasTipCap      *big.Int
	GasPrice       *big.Int
	TxHash         string
	ConfirmedBlock uint64
	Error          string
}

type TxResult struct {
	TxHash         string
	BlockNumber    uint64
	ApprovalTxHash string
	Attempts       []TxAttempt
	// RemainingAllowance is the allowance left after the payout, when known.
	RemainingAllowance *big.Int
}

// SubmittedHashes lists every hash that reached the node.
func (r TxResult) SubmittedHashes() []string {
	hashes := make([]string, 0, len(r.Attempts))
	for _, a := range r.Attempts {
		if a.TxHash != "" {
			hashes = append(hashes, a.TxHash)
		}
	}
	return hashes
}

type Engine struct {
	logs  *zap.SugaredLogger
	chain Chain
	cfg   Config
}

func NewEngine(logger *zap.SugaredLogger, chain Chain, cfg Config) *Engine {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if cfg.ConfirmAttempts < 1 {
		cfg.ConfirmAttempts = 1
	}
	return &Engine{
		logs:  logger,
		chain: chain,
		cfg:   cfg,
	}
}

// Execute pays every claim in the batch with one disperseToken transaction
// sent from the leased wallet.
func (e *Engine) Execute(ctx context.Context, batch claim.Batch) (TxResult, error) {
	var res TxResult

	if len(batch.Claims) == 0 {
		return res, ErrEmptyBatch
	}
	if batch.Lease == nil {
		return res, errors.New("batch has no wallet lease")
	}

	recipients := make([]common.Address, 0, len(batch.Claims))
	values := make([]*big.Int, 0, len(batch.Claims))
	for _, c := range batch.Claims {
		if !common.IsHexAddress(c.RecipientAddress) || common.HexToAddress(c.RecipientAddress) == (common.Address{}) {
			return res, fmt.Errorf("%w: %q (claim %s)", ErrInvalidRecipient, c.RecipientAddress, c.ID)
		}
		recipients = append(recipients, common.HexToAddress(c.RecipientAddress))
		values = append(values, new(big.Int).Set(e.cfg.UnitAmount))
	}
	total := new(big.Int).Mul(e.cfg.UnitAmount, big.NewInt(int64(len(batch.Claims))))

	from := batch.Lease.Address
	if err := e.checkBalances(ctx, from, total); err != nil {
		return res, err
	}

	allowance, err := e.chain.Allowance(ctx, e.cfg.Token, from, e.cfg.PayoutContract)
	if err != nil {
		return res, classify(fmt.Errorf("read allowance: %w", err))
	}
	if allowance.Cmp(total) < 0 {
		approved := e.approvalAmount(total)
		approval, err := e.send(ctx, batch.Lease, e.cfg.Token, func() ([]byte, error) {
			return e.chain.PackApprove(e.cfg.PayoutContract, approved)
		})
		res.ApprovalTxHash = approval.TxHash
		if err != nil {
			return res, fmt.Errorf("approve payout contract: %w", err)
		}
		allowance = approved
	}

	payout, err := e.send(ctx, batch.Lease, e.cfg.PayoutContract, func() ([]byte, error) {
		return e.chain.PackDisperse(e.cfg.Token, recipients, values)
	})
	res.TxHash = payout.TxHash
	res.BlockNumber = payout.BlockNumber
	res.Attempts = payout.Attempts
	if err != nil {
		return res, err
	}

	res.RemainingAllowance = new(big.Int).Sub(allowance, total)
	e.logs.Infow("batch paid",
		"wallet", batch.Lease.WalletID,
		"claims", len(batch.Claims),
		"tx_hash", res.TxHash,
		"block", res.BlockNumber,
		"attempts", len(res.Attempts))
	return res, nil
}

// EnsureAllowance approves the payout contract when the wallet's allowance is
// below minimum. It returns the approval hash, or "" when nothing was sent.
func (e *Engine) EnsureAllowance(ctx context.Context, lease *wallet.Lease, minimum *big.Int) (string, error) {
	allowance, err := e.chain.Allowance(ctx, e.cfg.Token, lease.Address, e.cfg.PayoutContract)
	if err != nil {
		return "", classify(fmt.Errorf("read allowance: %w", err))
	}
	if allowance.Cmp(minimum) >= 0 {
		return "", nil
	}

	approved := e.approvalAmount(minimum)
	approval, err := e.send(ctx, lease, e.cfg.Token, func() ([]byte, error) {
		return e.chain.PackApprove(e.cfg.PayoutContract, approved)
	})
	if err != nil {
		return approval.TxHash, fmt.Errorf("approve payout contract: %w", err)
	}

	e.logs.Infow("allowance topped up",
		"wallet", lease.WalletID,
		"amount", approved.String(),
		"tx_hash", approval.TxHash)
	return approval.TxHash, nil
}

// FindConfirmed checks earlier submissions for a successful receipt.
func (e *Engine) FindConfirmed(ctx context.Context, hashes []string) (TxResult, bool, error) {
	if len(hashes) == 0 {
		return TxResult{}, false, nil
	}

	receipts, err := e.chain.FetchReceipts(ctx, hashes)
	for _, r := range receipts {
		if r.Succeeded() {
			return TxResult{TxHash: r.TxHash, BlockNumber: r.BlockNumber}, true, nil
		}
	}
	if err != nil {
		return TxResult{}, false, classify(err)
	}
	return TxResult{}, false, nil
}

func (e *Engine) checkBalances(ctx context.Context, from common.Address, total *big.Int) error {
	tokens, err := e.chain.TokenBalance(ctx, e.cfg.Token, from)
	if err != nil {
		return classify(fmt.Errorf("read token balance: %w", err))
	}
	if tokens.Cmp(total) < 0 {
		return fmt.Errorf("%w: have %s, need %s", ErrInsufficientTokens, tokens, total)
	}

	native, err := e.chain.NativeBalance(ctx, from)
	if err != nil {
		return classify(fmt.Errorf("read native balance: %w", err))
	}
	if native.Sign() <= 0 {
		return fmt.Errorf("%w: wallet %s is empty", ErrInsufficientGas, from.Hex())
	}
	return nil
}

func (e *Engine) approvalAmount(required *big.Int) *big.Int {
	if e.cfg.ApprovalAmount != nil && e.cfg.ApprovalAmount.Cmp(required) > 0 {
		return new(big.Int).Set(e.cfg.ApprovalAmount)
	}
	return new(big.Int).Set(required)
}

type sendResult struct {
	TxHash      string
	BlockNumber uint64
	Attempts    []TxAttempt
}

// send runs the inline retry ladder for one call. Before every retry it
// checks whether an earlier submission has landed in the meantime.
func (e *Engine) send(ctx context.Context, lease *wallet.Lease, to common.Address, pack func() ([]byte, error)) (sendResult, error) {
	var res sendResult

	data, err := pack()
	if err != nil {
		return res, err
	}

	var lastErr error
	for attempt := 0; attempt < e.cfg.MaxAttempts; attempt++ {
		if attempt > 0 {
			if err := sleep(ctx, time.Duration(attempt)*e.cfg.RetryDelay); err != nil {
				return res, err
			}

			if found, ok, _ := e.FindConfirmed(ctx, hashesOf(res.Attempts)); ok {
				res.TxHash = found.TxHash
				res.BlockNumber = found.BlockNumber
				return res, nil
			}
		}

		txAttempt, receipt, err := e.attempt(ctx, lease, to, data, attempt)
		res.Attempts = append(res.Attempts, txAttempt)
		if err == nil {
			res.TxHash = txAttempt.TxHash
			res.BlockNumber = receipt.BlockNumber
			return res, nil
		}

		if IsFatal(err) {
			err = e.resolveFatal(ctx, lease, &res, err)
			return res, err
		}
		lastErr = err
		e.logs.Warnw("transaction attempt failed",
			"wallet", lease.WalletID,
			"attempt", attempt+1,
			"tx_hash", txAttempt.TxHash,
			"nonce", txAttempt.Nonce,
			"error", err)
	}

	return res, fmt.Errorf("%w after %d attempts: %w", ErrAttemptsExhausted, e.cfg.MaxAttempts, lastErr)
}

// resolveFatal keeps a fatal error from ending a call whose earlier
// submissions might still be mined. Those are checked once more; when none
// has confirmed the error is returned as ErrUnresolved, which is retryable.
func (e *Engine) resolveFatal(ctx context.Context, lease *wallet.Lease, res *sendResult, cause error) error {
	hashes := hashesOf(res.Attempts)
	if len(hashes) == 0 {
		return cause
	}

	found, ok, err := e.FindConfirmed(ctx, hashes)
	if ok {
		res.TxHash = found.TxHash
		res.BlockNumber = found.BlockNumber
		return nil
	}
	if err != nil {
		e.logs.Warnw("check earlier submissions", "wallet", lease.WalletID, "error", err)
	}

	e.logs.Warnw("fatal error after submission, outcome left to recovery",
		"wallet", lease.WalletID,
		"submitted", hashes,
		"error", cause)
	return fmt.Errorf("%w: %v", ErrUnresolved, cause)
}

func (e *Engine) attempt(ctx context.Context, lease *wallet.Lease, to common.Address, data []byte, attempt int) (TxAttempt, *ethereum.Receipt, error) {
	txAttempt := TxAttempt{AttemptNumber: attempt + 1}
	fail := func(err error) (TxAttempt, *ethereum.Receipt, error) {
		err = classify(err)
		txAttempt.Error = err.Error()
		return txAttempt, nil, err
	}

	fees, err := e.chain.FeeQuote(ctx)
	if err != nil {
		return fail(err)
	}

	gas, err := e.chain.EstimateGas(ctx, lease.Address, to, data)
	if err != nil {
		return fail(err)
	}
	txAttempt.GasLimit = gas + gas*gasBufferPercent/100

	multiplier := e.cfg.BaseMultiplier.Add(e.cfg.StepMultiplier.Mul(decimal.NewFromInt(int64(attempt))))
	var maxPrice *big.Int
	if fees.Dynamic() {
		txAttempt.GasTipCap = scale(fees.TipCap, multiplier)
		baseCap := new(big.Int).Mul(fees.BaseFee, big.NewInt(2))
		txAttempt.GasFeeCap = new(big.Int).Add(scale(baseCap, multiplier), txAttempt.GasTipCap)
		maxPrice = txAttempt.GasFeeCap
	} else {
		txAttempt.GasPrice = scale(fees.GasPrice, multiplier)
		maxPrice = txAttempt.GasPrice
	}

	native, err := e.chain.NativeBalance(ctx, lease.Address)
	if err != nil {
		return fail(err)
	}
	cost := new(big.Int).Mul(maxPrice, new(big.Int).SetUint64(txAttempt.GasLimit))
	if native.Cmp(cost) < 0 {
		return fail(fmt.Errorf("%w: have %s, need up to %s", ErrInsufficientGas, native, cost))
	}

	nonce, err := e.chain.LatestNonce(ctx, lease.Address)
	if err != nil {
		return fail(err)
	}
	txAttempt.Nonce = nonce

	hash, err := e.chain.SendTx(ctx, ethereum.TxRequest{
		Key:       lease.Key,
		To:        to,
		Data:      data,
		Nonce:     nonce,
		GasLimit:  txAttempt.GasLimit,
		GasFeeCap: txAttempt.GasFeeCap,
		GasTipCap: txAttempt.GasTipCap,
		GasPrice:  txAttempt.GasPrice,
	})
	if hash != (common.Hash{}) {
		txAttempt.TxHash = hash.Hex()
	}
	if err != nil && !isAlreadyKnown(err) {
		return fail(err)
	}

	receipt, err := e.chain.WaitReceipt(ctx, hash, e.cfg.ConfirmAttempts, e.cfg.ConfirmInterval)
	if err != nil {
		return fail(err)
	}
	txAttempt.ConfirmedBlock = receipt.BlockNumber
	return txAttempt, receipt, nil
}

func scale(v *big.Int, multiplier decimal.Decimal) *big.Int {
	return decimal.NewFromBigInt(v, 0).Mul(multiplier).Ceil().BigInt()
}

func hashesOf(attempts []TxAttempt) []string {
	return TxResult{Attempts: attempts}.SubmittedHashes()
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
