package cmd

import (
	"github.com/urfave/cli/v2"
)

func commandMigrate() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "create or update the ledger and failure tables",
		Action: func(c *cli.Context) error {
			s, err := openStores(c.Context)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.repo.MigrateTables(); err != nil {
				s.logger.Errorw("failed to migrate tables to database", "error", err)
				return err
			}
			s.logger.Infow("tables migrated")
			return nil
		},
	}
}
