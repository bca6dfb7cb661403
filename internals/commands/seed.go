package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	database "kiadmin_backend/internals/databases"
	"kiadmin_backend/internals/seeds"
)

func NewSeedCommand() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Isi data awal (instansi + akun) dari file YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := seeds.Load(file)
			if err != nil {
				return err
			}
			_, db, err := openDB()
			if err != nil {
				return err
			}
			defer database.Close(db)

			res, err := seeds.RunAllSeeds(cmd.Context(), db, f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seed selesai: %d instansi, %d user\n", res.Instansi, res.Users)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "internals/seeds/seed.yaml", "path file seed YAML")
	return cmd
}
