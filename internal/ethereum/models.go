package ethereum

import (
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Fees is a snapshot of network fee data. BaseFee is nil on pre-London chains.
type Fees struct {
	BaseFee  *big.Int
	TipCap   *big.Int
	GasPrice *big.Int
}

func (f Fees) Dynamic() bool {
	return f.BaseFee != nil
}

// TxRequest is everything needed to sign and send one transaction.
// GasFeeCap and GasTipCap are used when set, GasPrice otherwise.
type TxRequest struct {
	Key       *ecdsa.PrivateKey
	To        common.Address
	Data      []byte
	Nonce     uint64
	GasLimit  uint64
	GasFeeCap *big.Int
	GasTipCap *big.Int
	GasPrice  *big.Int
}

type Receipt struct {
	TxHash      string
	Status      uint64
	BlockNumber uint64
	GasUsed     uint64
}

func (r *Receipt) Succeeded() bool {
	return r != nil && r.Status == 1
}

type ReceiptResult struct {
	Receipt *Receipt
	Error   error
}
