package wallet

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"payoutd/internal/kv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
)

var (
	ErrBusy           = errors.New("all wallets are busy")
	ErrUnknownPurpose = errors.New("unknown wallet purpose")
	ErrUnknownWallet  = errors.New("unknown wallet")
	ErrNoWallets      = errors.New("no wallets configured for purpose")
	ErrInvalidKey     = errors.New("invalid wallet private key")
)

const (
	minJitter = 5 * time.Second
	maxJitter = 15 * time.Second
)

// Wallet is a configured hot wallet.
type Wallet struct {
	Address common.Address
	Key     *ecdsa.PrivateKey
	Purpose string
}

func (w Wallet) ID() string {
	return strings.ToLower(w.Address.Hex())
}

// Lease is the exclusive right to send transactions from one wallet until ExpiresAt.
type Lease struct {
	WalletID  string
	Address   common.Address
	Key       *ecdsa.PrivateKey
	Purpose   string
	LeaseKey  string
	ExpiresAt time.Time

	lock kv.Lock
}

func LeaseKey(address common.Address) string {
	return "lock:wallet:" + strings.ToLower(address.Hex())
}

// LoadWallets parses hex private keys grouped by purpose.
func LoadWallets(keysByPurpose map[string][]string) ([]Wallet, error) {
	var wallets []Wallet
	for purpose, keys := range keysByPurpose {
		for i, raw := range keys {
			key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(raw), "0x"))
			if err != nil {
				return nil, fmt.Errorf("%w: %s #%d: %w", ErrInvalidKey, purpose, i, err)
			}
			wallets = append(wallets, Wallet{
				Address: crypto.PubkeyToAddress(key.PublicKey),
				Key:     key,
				Purpose: purpose,
			})
		}
	}
	return wallets, nil
}

type Pool struct {
	logs      *zap.SugaredLogger
	locker    Locker
	ttl       time.Duration
	byPurpose map[string][]Wallet
}

// NewPool fails when any purpose has no wallet.
func NewPool(logger *zap.SugaredLogger, wallets []Wallet, purposes []string, locker Locker, ttl time.Duration) (*Pool, error) {
	byPurpose := make(map[string][]Wallet, len(purposes))
	for _, p := range purposes {
		byPurpose[p] = nil
	}
	for _, w := range wallets {
		if _, ok := byPurpose[w.Purpose]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPurpose, w.Purpose)
		}
		byPurpose[w.Purpose] = append(byPurpose[w.Purpose], w)
	}
	for p, ws := range byPurpose {
		if len(ws) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrNoWallets, p)
		}
	}

	return &Pool{
		logs:      logger,
		locker:    locker,
		ttl:       ttl,
		byPurpose: byPurpose,
	}, nil
}

// Lease tries the purpose's wallets in random order and returns the first one
// whose lock could be taken. It never waits.
func (p *Pool) Lease(ctx context.Context, purpose string) (*Lease, error) {
	wallets, ok := p.byPurpose[purpose]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPurpose, purpose)
	}

	for _, i := range rand.Perm(len(wallets)) {
		lease, err := p.acquire(ctx, wallets[i])
		if errors.Is(err, kv.ErrNotObtained) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return lease, nil
	}

	return nil, ErrBusy
}

// LeaseWallet leases one specific wallet.
func (p *Pool) LeaseWallet(ctx context.Context, purpose string, address common.Address) (*Lease, error) {
	wallets, ok := p.byPurpose[purpose]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPurpose, purpose)
	}

	for _, w := range wallets {
		if w.Address != address {
			continue
		}
		lease, err := p.acquire(ctx, w)
		if errors.Is(err, kv.ErrNotObtained) {
			return nil, ErrBusy
		}
		return lease, err
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownWallet, address.Hex())
}

// Release gives the wallet back. Releasing an expired lease is not an error.
func (p *Pool) Release(ctx context.Context, lease *Lease) error {
	if lease == nil || lease.lock == nil {
		return nil
	}

	err := lease.lock.Release(ctx)
	if errors.Is(err, kv.ErrLockNotHeld) {
		p.logs.Warnw("wallet lease expired before release",
			"wallet", lease.WalletID,
			"purpose", lease.Purpose)
		return nil
	}
	if err != nil {
		return fmt.Errorf("release wallet %s: %w", lease.WalletID, err)
	}
	return nil
}

// Wallets lists the configured wallets of a purpose.
func (p *Pool) Wallets(purpose string) []Wallet {
	return append([]Wallet(nil), p.byPurpose[purpose]...)
}

func (p *Pool) acquire(ctx context.Context, w Wallet) (*Lease, error) {
	key := LeaseKey(w.Address)
	lock, err := p.locker.Obtain(ctx, key, p.ttl)
	if err != nil {
		return nil, err
	}

	return &Lease{
		WalletID:  w.ID(),
		Address:   w.Address,
		Key:       w.Key,
		Purpose:   w.Purpose,
		LeaseKey:  key,
		ExpiresAt: time.Now().Add(p.ttl),
		lock:      lock,
	}, nil
}

// Jitter is the uniform 5-15s delay used when rescheduling work that found
// every wallet busy.
func Jitter() time.Duration {
	return minJitter + rand.N(maxJitter-minJitter+1)
}
