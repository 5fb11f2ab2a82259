package cmd

import (
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
)

func commandWorker() *cli.Command {
	return &cli.Command{
		Name:  "worker",
		Usage: "drain the delayed-job queue and run the recovery sweeps",
		Action: func(c *cli.Context) error {
			ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
			defer stop()

			s, err := openStores(ctx)
			if err != nil {
				return err
			}
			e, err := buildEngine(ctx, s)
			if err != nil {
				s.Close()
				return err
			}
			defer e.Close()

			if e.scheduler == nil {
				s.logger.Warnw("jobs are delivered over http, only sweeps will run",
					"dispatch_mode", s.config.Dispatch.Mode)
			}

			runner, err := newCron(ctx, e)
			if err != nil {
				return err
			}
			s.logger.Infow("worker started")
			return runCron(ctx, runner)
		},
	}
}
