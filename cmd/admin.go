package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jekabolt/seminar-booking/config"
	"github.com/jekabolt/seminar-booking/internal/apisrv/auth"
	"github.com/jekabolt/seminar-booking/internal/store"
	"github.com/jekabolt/seminar-booking/log"
	"github.com/spf13/cobra"
)

var (
	adminEmail    string
	adminPassword string

	adminCmd = &cobra.Command{
		Use:   "admin",
		Short: "Manage admin accounts",
	}

	adminAddCmd = &cobra.Command{
		Use:   "add",
		Short: "Create an admin account",
		RunE: withAuth(func(ctx context.Context, s *auth.Server) error {
			if err := s.CreateAdmin(ctx, adminEmail, adminPassword); err != nil {
				return err
			}
			fmt.Printf("admin %s created\n", adminEmail)
			return nil
		}),
	}

	adminDeleteCmd = &cobra.Command{
		Use:   "delete",
		Short: "Delete an admin account",
		RunE: withAuth(func(ctx context.Context, s *auth.Server) error {
			if err := s.DeleteAdmin(ctx, adminEmail); err != nil {
				return err
			}
			fmt.Printf("admin %s deleted\n", adminEmail)
			return nil
		}),
	}

	adminPasswdCmd = &cobra.Command{
		Use:   "passwd",
		Short: "Change the password of an admin account",
		RunE: withAuth(func(ctx context.Context, s *auth.Server) error {
			if err := s.ChangePassword(ctx, adminEmail, adminPassword); err != nil {
				return err
			}
			fmt.Printf("password of %s changed\n", adminEmail)
			return nil
		}),
	}
)

func init() {
	adminCmd.PersistentFlags().StringVar(&adminEmail, "email", "", "admin email")
	_ = adminCmd.MarkPersistentFlagRequired("email")
	for _, c := range []*cobra.Command{adminAddCmd, adminPasswdCmd} {
		c.Flags().StringVar(&adminPassword, "password", "", "admin password")
		_ = c.MarkFlagRequired("password")
	}
	adminCmd.AddCommand(adminAddCmd, adminDeleteCmd, adminPasswdCmd)
}

// withAuth opens the store and passes an auth server without the http
// collaborators to f.
func withAuth(f func(context.Context, *auth.Server) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("cannot load a config %v", err.Error())
		}
		slog.SetDefault(log.New(cfg.Logger))

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		db, err := store.New(ctx, cfg.DB)
		if err != nil {
			return err
		}
		defer db.Close()

		s, err := auth.New(&cfg.Auth, db.Admin(), nil, nil, nil)
		if err != nil {
			return err
		}
		return f(ctx, s)
	}
}
