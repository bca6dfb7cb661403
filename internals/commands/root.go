// Package commands berisi perintah CLI: serve (default), migrate, seed.
package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"kiadmin_backend/internals/configs"
	database "kiadmin_backend/internals/databases"
	"kiadmin_backend/internals/helpers/logger"
)

// RootOptions: flag global untuk semua perintah.
type RootOptions struct {
	LogMode string
}

func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "kiadmin",
		Short:         "KI Admin backend",
		Long:          "Backend admin Kekayaan Intelektual: instansi, Sentra KI, PKS, pengajuan dan permohonan KI.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger(opts.LogMode)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	cmd.PersistentFlags().StringVar(&opts.LogMode, "log-mode", "", "mode logger (dev|prod), default dari LOG_MODE")

	cmd.AddCommand(NewServeCommand())
	cmd.AddCommand(NewMigrateCommand())
	cmd.AddCommand(NewSeedCommand())
	return cmd
}

// Execute dipanggil dari main.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func setupLogger(mode string) error {
	if mode == "" {
		mode = configs.GetEnv("LOG_MODE", "dev")
	}
	l, err := logger.New(mode)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger.SetGlobal(l)
	return nil
}

// openDB: load env, konek, dan tuning pool.
func openDB() (configs.Config, *gorm.DB, error) {
	cfg := configs.LoadEnv()
	db, err := database.ConnectDB(cfg)
	if err != nil {
		return cfg, nil, err
	}
	database.TunePool(db)
	return cfg, db, nil
}
