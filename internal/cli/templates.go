package cli

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/merchkit/combobuilder/internal/config"
	"github.com/merchkit/combobuilder/internal/infrastructure/persistence/sqlite"
	"github.com/merchkit/combobuilder/internal/logging"
)

// openDatabase opens the configured SQLite database for a one-shot command.
func openDatabase(cmd *cobra.Command) (*sql.DB, error) {
	cfg := config.Get()
	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	ctx := logging.WithContext(cmd.Context(), logger)

	db, err := sqlite.NewConnection(ctx, cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

// NewTemplatesCmd creates the templates command group.
func NewTemplatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Manage saved combo design templates",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List saved templates, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := openDatabase(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = sqlite.Close(db) }()

			repo := sqlite.NewTemplateRepository(db)
			templates, err := repo.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list templates: %w", err)
			}
			count, err := repo.CountActive(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to count active templates: %w", err)
			}

			if len(templates) == 0 {
				fmt.Println("No templates saved yet.")
				return nil
			}

			fmt.Printf("%d template(s), %d active\n\n", len(templates), count)
			for _, tmpl := range templates {
				marker := " "
				if tmpl.Active {
					marker = "*"
				}
				fmt.Printf("%s %4d  %-30s  %s\n", marker, tmpl.ID, tmpl.Title, tmpl.CreatedAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}

	cmd.AddCommand(listCmd)
	return cmd
}
