package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jekabolt/seminar-booking/config"
	"github.com/jekabolt/seminar-booking/internal/store"
	"github.com/jekabolt/seminar-booking/log"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("cannot load a config %v", err.Error())
		}
		slog.SetDefault(log.New(cfg.Logger))

		ctx := context.Background()
		cfg.DB.Automigrate = false
		db, err := store.Open(ctx, cfg.DB)
		if err != nil {
			return err
		}
		defer db.Close()

		n, err := store.MigrateWithContext(ctx, db.DB, db.DriverName())
		if err != nil {
			return err
		}
		fmt.Printf("applied %d migrations\n", n)
		return nil
	},
}
