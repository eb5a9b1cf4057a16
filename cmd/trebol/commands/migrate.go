package commands

import (
	"github.com/gandallf070/trebol/src/shared/infrastructure/database"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Aplica el esquema de base de datos",
	Long:  `Crea las tablas de clientes, productos, ventas y productos agotados si no existen.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		db, err := database.Open(ctx, cfg.DB)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := database.Migrate(ctx, db); err != nil {
			return err
		}

		log.Info("schema applied", zapDB(cfg.DB)...)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
