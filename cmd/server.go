package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"payoutd/internal/config"
	"payoutd/internal/http/handler"
	"payoutd/internal/http/handler/middleware"
	"payoutd/internal/http/payload"
	"payoutd/internal/http/server"
	"payoutd/pkg/jwt"
	"payoutd/pkg/limiter"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

func commandServer() *cli.Command {
	return &cli.Command{
		Name:  "server",
		Usage: "serve the claim API and the job callback",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "no-cron",
				Usage: "leave delayed-job draining and sweeps to a separate worker",
			},
		},
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
			defer func() {
				if err := e.Close(); err != nil {
					s.logger.Warnw("close resources", "error", err)
				}
			}()

			srv := server.NewHTTP(s.logger.Named("http"), routes(e), s.config.Port, s.config.ResponseBudget())

			group, groupCtx := errgroup.WithContext(ctx)
			group.Go(func() error {
				err := <-srv.Run()
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return fmt.Errorf("http server: %w", err)
			})
			group.Go(func() error {
				<-groupCtx.Done()
				return srv.Shutdown(context.WithoutCancel(groupCtx))
			})

			if !c.Bool("no-cron") {
				runner, err := newCron(groupCtx, e)
				if err != nil {
					stop()
					_ = group.Wait()
					return fmt.Errorf("schedule background jobs: %w", err)
				}
				group.Go(func() error {
					return runCron(groupCtx, runner)
				})
			}

			return group.Wait()
		},
	}
}

func routes(e *engine) http.Handler {
	logger := e.logger
	cfg := e.config

	claimHlr := handler.NewClaimHandler(logger.Named("claims"), payload.Decoder{}, e.intake)
	healthHlr := handler.NewHealthHandler(logger.Named("health"), map[string]handler.HealthCheck{
		"postgres": e.db,
		"redis":    e.kv,
	})

	apiKey := middleware.NewAPIKeyMiddleware(logger, cfg.API.KeyHash)
	rateLimit := middleware.NewRateLimitMiddleware(logger,
		limiter.NewRedisLimiter(e.redis, "ratelimit:claims:"),
		cfg.API.RateLimitPerMinute)

	mux := http.NewServeMux()
	mux.Handle(handler.CreateClaim, apiKey.Protect(rateLimit.Limit(http.HandlerFunc(claimHlr.HandleCreateClaim))))
	mux.Handle(handler.ClaimStatus, apiKey.Protect(http.HandlerFunc(claimHlr.HandleClaimStatus)))
	// only QStash pushes jobs over HTTP; the redis scheduler is drained in process
	if cfg.Dispatch.Mode == config.DispatchModeQStash {
		jobHlr := handler.NewJobHandler(logger.Named("jobs"),
			e.router,
			jwt.NewJWTService([]byte(cfg.Dispatch.CurrentSigningKey), []byte(cfg.Dispatch.NextSigningKey)),
			cfg.Dispatch.CallbackURL)
		mux.HandleFunc(handler.DeliverJob, jobHlr.HandleJob)
	}
	mux.HandleFunc(handler.Healthz, healthHlr.HandleHealthz)

	hdlr := middleware.NewLoggingMiddleware(logger.Named("http")).Logging(mux)
	return middleware.NewRequestIDMiddleware().RequestID(hdlr)
}
