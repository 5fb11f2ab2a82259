package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

const serviceName = "payoutd"

func Start() error {
	// a missing .env is fine outside development
	_ = godotenv.Load()

	app := &cli.App{
		Name:  serviceName,
		Usage: "batched token reward payouts",
		Commands: []*cli.Command{
			commandServer(),
			commandWorker(),
			commandMigrate(),
			commandReconcile(),
		},
	}

	return app.Run(os.Args)
}
