package commands

import (
	"github.com/spf13/cobra"

	database "kiadmin_backend/internals/databases"
)

func NewMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Jalankan AutoMigrate untuk semua tabel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := openDB()
			if err != nil {
				return err
			}
			defer database.Close(db)
			return database.Migrate(cmd.Context(), db)
		},
	}
}
