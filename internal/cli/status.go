package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/auditking/internal/snapshot"
	"github.com/example/auditking/internal/wire"
)

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show ledger status at a glance",
		Long: `Display a summary of the current ledger state:
- Acting user
- Template catalog size
- Draft and submitted inspection counts
- Open corrective actions

This provides a focused view of "where am I right now?"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			user, err := wire.UserService().Whoami(ctx)
			if err != nil {
				return fmt.Errorf("failed to resolve acting user: %w", err)
			}

			templates, err := wire.TemplateService().ListTemplates(ctx, "")
			if err != nil {
				return fmt.Errorf("failed to list templates: %w", err)
			}

			inspections, err := wire.InspectionService().ListInspections(ctx, false)
			if err != nil {
				return fmt.Errorf("failed to list inspections: %w", err)
			}

			drafts, submitted := 0, 0
			for _, insp := range inspections {
				if insp.Status == snapshot.StatusSubmitted {
					submitted++
				} else {
					drafts++
				}
			}

			actions, err := wire.ActionService().ListActions(ctx)
			if err != nil {
				return fmt.Errorf("failed to list actions: %w", err)
			}
			openActions := 0
			for _, e := range actions {
				if e.Action.Status == snapshot.ActionOpen {
					openActions++
				}
			}

			fmt.Println("Audit King Status")
			fmt.Println()
			fmt.Printf("Acting user:  %s (%s)\n", user.DisplayName(), user.ID)
			fmt.Printf("Templates:    %d\n", len(templates))
			fmt.Printf("Inspections:  %d draft, %d submitted (yours)\n", drafts, submitted)
			fmt.Printf("Open actions: %d\n", openActions)

			return nil
		},
	}
}
