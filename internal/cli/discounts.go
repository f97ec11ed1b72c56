package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/merchkit/combobuilder/internal/domain/entity"
	"github.com/merchkit/combobuilder/internal/infrastructure/persistence/sqlite"
)

// NewDiscountsCmd creates the discounts command group.
func NewDiscountsCmd() *cobra.Command {
	var activeOnly bool

	cmd := &cobra.Command{
		Use:   "discounts",
		Short: "Manage the local discount catalog",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog entries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := openDatabase(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = sqlite.Close(db) }()

			repo := sqlite.NewDiscountRepository(db)

			var discounts []*entity.Discount
			if activeOnly {
				discounts, err = repo.ListActive(cmd.Context())
			} else {
				discounts, err = repo.ListAll(cmd.Context())
			}
			if err != nil {
				return fmt.Errorf("failed to list discounts: %w", err)
			}

			if len(discounts) == 0 {
				fmt.Println("No discounts in the catalog.")
				return nil
			}

			for _, d := range discounts {
				fmt.Printf("%4d  %-25s  %-10s  %8.2f  %-9s  %s\n",
					d.ID, d.Title, d.Type, d.Value, d.Status, d.Usage)
			}
			return nil
		},
	}
	listCmd.Flags().BoolVar(&activeOnly, "active", false, "Only show active discounts")

	cmd.AddCommand(listCmd)
	return cmd
}
