package cmd

import (
	"context"
	"time"

	"payoutd/internal/dispatch"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	drainSpec     = "@every 1s"
	drainLimit    = 100
	sweepSpec     = "@every 1m"
	repairSpec    = "@every 5m"
	repairLimit   = 500
	jobRunTimeout = 10 * time.Minute
)

type cronLogger struct {
	logs *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logs.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logs.Errorw(msg, append(keysAndValues, "error", err)...)
}

// newCron builds the background schedule. A run still in progress makes the
// next tick of the same job a no-op.
func newCron(ctx context.Context, e *engine) (*cron.Cron, error) {
	logs := e.logger.Named("cron")
	runner := cron.New(
		cron.WithLogger(cronLogger{logs: logs}),
		cron.WithChain(cron.Recover(cronLogger{logs: logs}), cron.SkipIfStillRunning(cronLogger{logs: logs})),
	)

	if e.scheduler != nil {
		router := dispatch.Dispatcher(e.router)
		if _, err := runner.AddFunc(drainSpec, func() {
			runCtx, cancel := context.WithTimeout(ctx, jobRunTimeout)
			defer cancel()
			n, err := e.scheduler.Drain(runCtx, router, drainLimit)
			if err != nil {
				logs.Errorw("drain delayed jobs", "error", err)
			}
			if n > 0 {
				logs.Debugw("delayed jobs dispatched", "count", n)
			}
		}); err != nil {
			return nil, err
		}
	}

	if _, err := runner.AddFunc(sweepSpec, func() {
		n, err := e.recovery.Sweep(ctx)
		if err != nil {
			logs.Errorw("sweep failure records", "error", err)
		}
		if n > 0 {
			logs.Infow("orphaned retries republished", "count", n)
		}
	}); err != nil {
		return nil, err
	}

	if _, err := runner.AddFunc(repairSpec, func() {
		n, err := e.ledger.Repair(ctx, repairLimit)
		if err != nil {
			logs.Errorw("repair ledger", "error", err)
		}
		if n > 0 {
			logs.Infow("ledger discrepancies repaired", "count", n)
		}
	}); err != nil {
		return nil, err
	}

	return runner, nil
}

// runCron blocks until ctx is done, then waits for running jobs.
func runCron(ctx context.Context, runner *cron.Cron) error {
	runner.Start()
	<-ctx.Done()
	<-runner.Stop().Done()
	return nil
}
