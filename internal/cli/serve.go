package cli

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/merchkit/combobuilder/internal/api"
	"github.com/merchkit/combobuilder/internal/combo"
	"github.com/merchkit/combobuilder/internal/config"
	"github.com/merchkit/combobuilder/internal/domain/repository"
	"github.com/merchkit/combobuilder/internal/infrastructure/persistence/memory"
	"github.com/merchkit/combobuilder/internal/infrastructure/persistence/sqlite"
	"github.com/merchkit/combobuilder/internal/logging"
	"github.com/merchkit/combobuilder/internal/shopify"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	var inMemory bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the combo builder admin HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Get()
			logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
			ctx := logging.WithContext(cmd.Context(), logger)

			// Pick up config file edits while the server runs; currently
			// only the log level can change without a restart.
			config.OnConfigChange(func(next *config.Config) {
				logging.SetLevel(next.Logging.Level)
				logger.Info().Str("level", next.Logging.Level).Msg("configuration reloaded")
			})
			if err := config.Watch(); err != nil {
				logger.Warn().Err(err).Msg("config file watching unavailable")
			}

			var (
				templates repository.TemplateRepository
				discounts repository.DiscountRepository
			)

			if inMemory {
				templates = memory.NewTemplateRepository()
				discounts = memory.NewSeededDiscountRepository()
				logger.Info().Msg("running with in-memory repositories")
			} else {
				db, err := sqlite.NewConnection(ctx, cfg.Database.Path)
				if err != nil {
					return fmt.Errorf("failed to open database: %w", err)
				}
				defer func() { _ = sqlite.Close(db) }()
				templates = sqlite.NewTemplateRepository(db)
				discounts = sqlite.NewDiscountRepository(db)
			}

			cache := combo.NewSessionCache(cfg.StateDir)
			store := combo.NewStoreWith(cache.Load())

			receiverLog, err := config.GetReceiverLogFile()
			if err != nil {
				return fmt.Errorf("failed to resolve receiver log path: %w", err)
			}

			srv := api.New(api.Options{
				Addr:      cfg.Server.Addr,
				Store:     store,
				Cache:     cache,
				Templates: templates,
				Discounts: discounts,
				Shopify: shopify.New(shopify.Options{
					Shop:       cfg.Shopify.ShopDomain,
					Token:      cfg.Shopify.AccessToken,
					APIVersion: cfg.Shopify.APIVersion,
					HTTPClient: http.DefaultClient,
					Timeout:    cfg.Shopify.RequestTimeout,
				}),
				ReceiverLogPath: receiverLog,
				Logger:          logger,
			})

			return srv.Run(ctx)
		},
	}

	cmd.Flags().BoolVar(&inMemory, "in-memory", false, "Use in-memory repositories instead of SQLite (seeded with sample discounts)")

	return cmd
}
