package cmd

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"payoutd/internal/config"
	"payoutd/internal/core"
	"payoutd/internal/db"
	"payoutd/internal/dispatch"
	"payoutd/internal/ethereum"
	"payoutd/internal/executor"
	"payoutd/internal/kv"
	"payoutd/internal/ledger"
	"payoutd/internal/queue"
	"payoutd/internal/recovery"
	"payoutd/internal/repository"
	"payoutd/internal/wallet"
	"payoutd/pkg/log"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// publisher is what every component schedules delayed work through.
type publisher interface {
	Publish(ctx context.Context, job dispatch.Job, delay time.Duration) error
}

// stores are the connections every command needs.
type stores struct {
	logger *zap.SugaredLogger
	config config.App
	db     *db.PostgresDB
	repo   *repository.PayoutRepository
	redis  redis.UniversalClient
	kv     *kv.Coordinator
	ledger *ledger.Reconciler
}

func openStores(ctx context.Context) (*stores, error) {
	cfg, err := config.NewApp()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger := log.NewZapLogger(serviceName, log.ParseLevel(cfg.LogLevel))

	dbConn, err := db.NewPostgresDB(cfg.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return nil, err
	}

	client, err := kv.Connect(ctx, cfg.RedisURL)
	if err != nil {
		dbConn.Close()
		logger.Errorw("failed to connect to redis", "error", err)
		return nil, err
	}

	repo := repository.NewPayoutRepository(dbConn)
	coordinator := kv.NewCoordinator(client)
	reconciler := ledger.NewReconciler(logger.Named("ledger"), repo, ledger.NewPaidCache(client, ledger.PaidTTL, true), coordinator)

	return &stores{
		logger: logger,
		config: cfg,
		db:     dbConn,
		repo:   repo,
		redis:  client,
		kv:     coordinator,
		ledger: reconciler,
	}, nil
}

func (s *stores) Close() error {
	return errors.Join(s.redis.Close(), s.db.Close())
}

// engine is the full payout pipeline on top of the stores.
type engine struct {
	*stores
	eth       *ethclient.Client
	queue     *queue.ClaimQueue
	publisher publisher
	scheduler *dispatch.RedisScheduler
	recovery  *recovery.Scheduler
	trigger   *core.Trigger
	intake    *core.Intake
	router    *dispatch.Router
}

func buildEngine(ctx context.Context, s *stores) (*engine, error) {
	cfg := s.config
	logger := s.logger

	client, err := ethclient.DialContext(ctx, cfg.NodeURL)
	if err != nil {
		logger.Errorw("ethereum node connection failed", "error", err)
		return nil, err
	}
	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("read chain id: %w", err)
	}
	chain := ethereum.NewEthService(client, chainID)

	wallets, err := wallet.LoadWallets(cfg.WalletKeys)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("load wallets: %w", err)
	}
	pool, err := wallet.NewPool(logger.Named("wallet"), wallets, cfg.Sources, s.kv, cfg.WalletLeaseTTL)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("build wallet pool: %w", err)
	}

	// one batch worth of allowance triggers a top-up of several batches
	perBatch := new(big.Int).Mul(cfg.RewardAmount, big.NewInt(int64(cfg.Batch.Size)))
	approval := new(big.Int).Mul(perBatch, big.NewInt(int64(max(cfg.Tx.AllowanceRefillBatches, 1))))

	exec := executor.NewEngine(logger.Named("executor"), chain, executor.Config{
		Token:           cfg.TokenAddress,
		PayoutContract:  cfg.PayoutContract,
		UnitAmount:      cfg.RewardAmount,
		ApprovalAmount:  approval,
		MaxAttempts:     cfg.Tx.MaxAttempts,
		RetryDelay:      cfg.Tx.RetryDelay,
		BaseMultiplier:  cfg.Tx.BaseMultiplier,
		StepMultiplier:  cfg.Tx.StepMultiplier,
		ConfirmAttempts: cfg.Tx.ConfirmAttempts,
		ConfirmInterval: cfg.Tx.ConfirmInterval,
	})

	e := &engine{
		stores: s,
		eth:    client,
		queue:  queue.NewClaimQueue(logger.Named("queue"), s.kv),
	}

	switch cfg.Dispatch.Mode {
	case config.DispatchModeQStash:
		e.publisher = dispatch.NewQStashPublisher(logger.Named("qstash"), cfg.Dispatch.QStashURL, cfg.Dispatch.QStashToken, cfg.Dispatch.CallbackURL)
	default:
		e.scheduler = dispatch.NewRedisScheduler(logger.Named("dispatch"), s.redis)
		e.publisher = e.scheduler
	}

	backoff, err := recovery.NewBackoff(cfg.RetryBackoff)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("retry backoff: %w", err)
	}
	e.recovery = recovery.NewScheduler(logger.Named("recovery"), s.repo, s.ledger, pool, exec, e.publisher, s.kv, e.queue, recovery.Config{
		Backoff: backoff,
		LockTTL: cfg.Batch.LockTTL,
	})

	waiters := core.NewWaiters()
	e.trigger = core.NewTrigger(logger.Named("trigger"), s.kv, e.queue, s.ledger, pool, exec, e.recovery, e.publisher, waiters, core.TriggerConfig{
		BatchSize:       cfg.Batch.Size,
		BatchTimeout:    cfg.Batch.Timeout,
		LockTTL:         cfg.Batch.LockTTL,
		RefillThreshold: perBatch,
	})
	e.intake = core.NewIntake(logger.Named("intake"), e.queue, s.ledger, e.trigger, e.publisher, waiters, core.IntakeConfig{
		Sources:      cfg.Sources,
		BatchSize:    cfg.Batch.Size,
		BatchTimeout: cfg.Batch.Timeout,
		WaitTimeout:  cfg.Batch.WaitTimeout,
		PendingTTL:   cfg.Batch.PendingTTL,
	})
	e.router = dispatch.NewRouter(logger.Named("router"), e.trigger, e.recovery, e.trigger)

	return e, nil
}

func (e *engine) Close() error {
	e.intake.Close()
	e.eth.Close()
	return e.stores.Close()
}
