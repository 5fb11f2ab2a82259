package executor

import (
	"context"
	"math/big"
	"time"

	"payoutd/internal/ethereum"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Chain . Chain
type Chain interface {
	NativeBalance(ctx context.Context, account common.Address) (*big.Int, error)
	TokenBalance(ctx context.Context, token, owner common.Address) (*big.Int, error)
	Allowance(ctx context.Context, token, owner, spender common.Address) (*big.Int, error)
	LatestNonce(ctx context.Context, account common.Address) (uint64, error)
	FeeQuote(ctx context.Context) (ethereum.Fees, error)
	PackApprove(spender common.Address, amount *big.Int) ([]byte, error)
	PackDisperse(token common.Address, recipients []common.Address, values []*big.Int) ([]byte, error)
	EstimateGas(ctx context.Context, from, to common.Address, data []byte) (uint64, error)
	SendTx(ctx context.Context, req ethereum.TxRequest) (common.Hash, error)
	WaitReceipt(ctx context.Context, hash common.Hash, attempts int, interval time.Duration) (*ethereum.Receipt, error)
	FetchReceipts(ctx context.Context, hashes []string) ([]*ethereum.Receipt, error)
}
