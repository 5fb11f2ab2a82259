package cmd

import (
	"github.com/urfave/cli/v2"
)

func commandReconcile() *cli.Command {
	return &cli.Command{
		Name:  "reconcile",
		Usage: "write confirmed payouts missing from the ledger",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Value: repairLimit,
				Usage: "maximum discrepancies to repair",
			},
		},
		Action: func(c *cli.Context) error {
			s, err := openStores(c.Context)
			if err != nil {
				return err
			}
			defer s.Close()

			n, err := s.ledger.Repair(c.Context, c.Int("limit"))
			if err != nil {
				s.logger.Errorw("ledger repair stopped", "repaired", n, "error", err)
				return err
			}
			s.logger.Infow("ledger repaired", "repaired", n)
			return nil
		},
	}
}
