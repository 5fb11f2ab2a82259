package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var (
	ErrReceiptNotFound = errors.New("receipt not found")
	ErrReceiptTimeout  = errors.New("receipt wait budget exhausted")
	ErrReverted        = errors.New("transaction reverted")
	ErrLengthMismatch  = errors.New("recipients and values differ in length")
)

type EthService struct {
	client  EthClient
	chainID *big.Int
	signer  types.Signer
}

func NewEthService(ethClient EthClient, chainID *big.Int) *EthService {
	return &EthService{
		client:  ethClient,
		chainID: chainID,
		signer:  types.LatestSignerForChainID(chainID),
	}
}

func (s *EthService) ChainID() *big.Int {
	return new(big.Int).Set(s.chainID)
}

func (s *EthService) NativeBalance(ctx context.Context, account common.Address) (*big.Int, error) {
	balance, err := s.client.BalanceAt(ctx, account, nil)
	if err != nil {
		return nil, fmt.Errorf("get native balance: %w", err)
	}
	return balance, nil
}

func (s *EthService) TokenBalance(ctx context.Context, token, owner common.Address) (*big.Int, error) {
	return s.callUint(ctx, token, "balanceOf", owner)
}

func (s *EthService) Allowance(ctx context.Context, token, owner, spender common.Address) (*big.Int, error) {
	return s.callUint(ctx, token, "allowance", owner, spender)
}

// LatestNonce reads the nonce of the latest block so that a stuck pending
// transaction is replaced rather than queued behind.
func (s *EthService) LatestNonce(ctx context.Context, account common.Address) (uint64, error) {
	nonce, err := s.client.NonceAt(ctx, account, nil)
	if err != nil {
		return 0, fmt.Errorf("get nonce: %w", err)
	}
	return nonce, nil
}

func (s *EthService) FeeQuote(ctx context.Context) (Fees, error) {
	header, err := s.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return Fees{}, fmt.Errorf("get latest header: %w", err)
	}

	if header.BaseFee != nil {
		tip, err := s.client.SuggestGasTipCap(ctx)
		if err != nil {
			return Fees{}, fmt.Errorf("suggest gas tip cap: %w", err)
		}
		return Fees{BaseFee: header.BaseFee, TipCap: tip}, nil
	}

	price, err := s.client.SuggestGasPrice(ctx)
	if err != nil {
		return Fees{}, fmt.Errorf("suggest gas price: %w", err)
	}
	return Fees{GasPrice: price}, nil
}

func (s *EthService) PackApprove(spender common.Address, amount *big.Int) ([]byte, error) {
	data, err := erc20ABI.Pack("approve", spender, amount)
	if err != nil {
		return nil, fmt.Errorf("pack approve: %w", err)
	}
	return data, nil
}

func (s *EthService) PackDisperse(token common.Address, recipients []common.Address, values []*big.Int) ([]byte, error) {
	if len(recipients) != len(values) {
		return nil, ErrLengthMismatch
	}
	data, err := disperseABI.Pack("disperseToken", token, recipients, values)
	if err != nil {
		return nil, fmt.Errorf("pack disperseToken: %w", err)
	}
	return data, nil
}

func (s *EthService) EstimateGas(ctx context.Context, from, to common.Address, data []byte) (uint64, error) {
	gas, err := s.client.EstimateGas(ctx, geth.CallMsg{
		From: from,
		To:   &to,
		Data: data,
	})
	if err != nil {
		return 0, fmt.Errorf("estimate gas: %w", err)
	}
	return gas, nil
}

// SendTx signs and submits the transaction. The hash is returned even when
// submission fails so the caller can still look for its receipt.
func (s *EthService) SendTx(ctx context.Context, req TxRequest) (common.Hash, error) {
	var txData types.TxData
	if req.GasFeeCap != nil && req.GasTipCap != nil {
		txData = &types.DynamicFeeTx{
			ChainID:   s.chainID,
			Nonce:     req.Nonce,
			GasTipCap: req.GasTipCap,
			GasFeeCap: req.GasFeeCap,
			Gas:       req.GasLimit,
			To:        &req.To,
			Value:     big.NewInt(0),
			Data:      req.Data,
		}
	} else {
		txData = &types.LegacyTx{
			Nonce:    req.Nonce,
			GasPrice: req.GasPrice,
			Gas:      req.GasLimit,
			To:       &req.To,
			Value:    big.NewInt(0),
			Data:     req.Data,
		}
	}

	tx, err := types.SignNewTx(req.Key, s.signer, txData)
	if err != nil {
		return common.Hash{}, fmt.Errorf("sign transaction: %w", err)
	}

	if err := s.client.SendTransaction(ctx, tx); err != nil {
		return tx.Hash(), fmt.Errorf("send transaction: %w", err)
	}
	return tx.Hash(), nil
}

func (s *EthService) Receipt(ctx context.Context, hash common.Hash) (*Receipt, error) {
	receipt, err := s.client.TransactionReceipt(ctx, hash)
	if errors.Is(err, geth.NotFound) {
		return nil, ErrReceiptNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get receipt %s: %w", hash.Hex(), err)
	}

	var block uint64
	if receipt.BlockNumber != nil {
		block = receipt.BlockNumber.Uint64()
	}
	return &Receipt{
		TxHash:      hash.Hex(),
		Status:      receipt.Status,
		BlockNumber: block,
		GasUsed:     receipt.GasUsed,
	}, nil
}

// WaitReceipt polls for the receipt at most attempts times. A reverted
// transaction returns its receipt together with ErrReverted.
func (s *EthService) WaitReceipt(ctx context.Context, hash common.Hash, attempts int, interval time.Duration) (*Receipt, error) {
	var lastErr error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			if err := sleep(ctx, interval); err != nil {
				return nil, err
			}
		}

		receipt, err := s.Receipt(ctx, hash)
		if err != nil {
			lastErr = err
			continue
		}
		if !receipt.Succeeded() {
			return receipt, fmt.Errorf("%w: %s", ErrReverted, hash.Hex())
		}
		return receipt, nil
	}

	if lastErr != nil && !errors.Is(lastErr, ErrReceiptNotFound) {
		return nil, fmt.Errorf("%w: %s: %w", ErrReceiptTimeout, hash.Hex(), lastErr)
	}
	return nil, fmt.Errorf("%w: %s", ErrReceiptTimeout, hash.Hex())
}

// FetchReceipts looks up receipts concurrently. Hashes without a receipt yet
// are left out of the result.
func (s *EthService) FetchReceipts(ctx context.Context, hashes []string) ([]*Receipt, error) {
	resultsChan := make(chan *ReceiptResult)

	var wg sync.WaitGroup
	for _, hashStr := range hashes {
		wg.Add(1)
		go func(hashStr string) {
			defer wg.Done()
			receipt, err := s.Receipt(ctx, common.HexToHash(hashStr))
			if err != nil && !errors.Is(err, ErrReceiptNotFound) {
				err = fmt.Errorf("fetching receipt %q: %w", hashStr, err)
			}
			resultsChan <- &ReceiptResult{Receipt: receipt, Error: err}
		}(hashStr)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	var results []*Receipt
	var aggrErr error
	for result := range resultsChan {
		if errors.Is(result.Error, ErrReceiptNotFound) {
			continue
		}
		if result.Error != nil {
			aggrErr = errors.Join(aggrErr, result.Error)
			continue
		}
		results = append(results, result.Receipt)
	}

	return results, aggrErr
}

func (s *EthService) callUint(ctx context.Context, contract common.Address, method string, args ...any) (*big.Int, error) {
	data, err := erc20ABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}

	out, err := s.client.CallContract(ctx, geth.CallMsg{To: &contract, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", method, err)
	}

	values, err := erc20ABI.Unpack(method, out)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", method, err)
	}
	if len(values) != 1 {
		return nil, fmt.Errorf("unpack %s: unexpected output count %d", method, len(values))
	}

	value, ok := values[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unpack %s: unexpected type %T", method, values[0])
	}
	return value, nil
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
