package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gandallf070/trebol/src/shared/infrastructure/config"
	"github.com/gandallf070/trebol/src/shared/infrastructure/database"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	migrateOnStart bool
	seedDemo       bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Inicia el servidor HTTP",
	Long: `Inicia la API de ventas, devoluciones y productos agotados.

Con --storage=memory no necesita base de datos (desarrollo y demos);
--seed carga un catálogo de ejemplo en ese modo.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runServer(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&cfg.Port, "port", cfg.Port, "HTTP port")
	serveCmd.Flags().StringVar(&cfg.Storage, "storage", cfg.Storage, "Storage backend (postgres, memory)")
	serveCmd.Flags().BoolVar(&cfg.PrometheusEnabled, "metrics", cfg.PrometheusEnabled, "Expose /metrics")
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "Apply the schema before serving (postgres only)")
	serveCmd.Flags().BoolVar(&seedDemo, "seed", false, "Load demo catalog (memory only)")
	rootCmd.AddCommand(serveCmd)
}

func runServer(ctx context.Context) error {
	log.Info("starting trebol",
		zap.String("storage", cfg.Storage),
		zap.String("port", cfg.Port))

	store, err := openStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	router := newRouter(cfg, store, log)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openStorage(ctx context.Context, cfg config.Config) (*storage, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		store := newMemoryStorage()
		if seedDemo {
			seedDemoData(store)
			log.Info("demo catalog loaded")
		}
		return store, nil
	case config.StoragePostgres:
		db, err := database.Open(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		log.Info("connected to database", zapDB(cfg.DB)...)
		if migrateOnStart {
			if err := database.Migrate(ctx, db); err != nil {
				db.Close()
				return nil, err
			}
		}
		return newPostgresStorage(db), nil
	default:
		return nil, errors.New("unknown storage " + cfg.Storage + ", use postgres or memory")
	}
}

func zapDB(opts database.Options) []zap.Field {
	return []zap.Field{
		zap.String("host", opts.Host),
		zap.String("port", opts.Port),
		zap.String("database", opts.Name),
	}
}
