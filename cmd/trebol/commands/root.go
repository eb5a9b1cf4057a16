package commands

import (
	"fmt"
	"os"

	"github.com/gandallf070/trebol/src/shared/infrastructure/config"
	"github.com/gandallf070/trebol/src/shared/infrastructure/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Configuración compartida, cargada del entorno y pisada por flags
	cfg config.Config
	log *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "trebol",
	Short: "Trebol - motor de ventas e inventario",
	Long: `Trebol registra ventas multi-línea y devoluciones manteniendo el inventario
consistente: descuentos de stock con lock de fila, totales calculados en el
servidor y registro único de productos agotados.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logger.New(cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			return err
		}
		log = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

// Execute ejecuta el comando raíz
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cfg = config.Load()

	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (json, console)")
	rootCmd.PersistentFlags().StringVar(&cfg.DB.Host, "db-host", cfg.DB.Host, "PostgreSQL host")
	rootCmd.PersistentFlags().StringVar(&cfg.DB.Port, "db-port", cfg.DB.Port, "PostgreSQL port")
	rootCmd.PersistentFlags().StringVar(&cfg.DB.Name, "db-name", cfg.DB.Name, "PostgreSQL database")
}
