package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/auditking/internal/ports/primary"
	"github.com/example/auditking/internal/wire"
)

var actionCmd = &cobra.Command{
	Use:   "action",
	Short: "Track corrective actions",
	Long:  "Create, list, and manage corrective actions raised from inspection findings",
}

var actionCreateCmd = &cobra.Command{
	Use:   "create [title]",
	Short: "Create a new corrective action",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		priority, _ := cmd.Flags().GetString("priority")
		inspectionID, _ := cmd.Flags().GetString("inspection")
		itemID, _ := cmd.Flags().GetString("item")
		dueDate, _ := cmd.Flags().GetString("due")
		assignee, _ := cmd.Flags().GetString("assignee")

		act, err := wire.ActionService().CreateAction(ctx, primary.CreateActionRequest{
			Title:        args[0],
			Priority:     priority,
			InspectionID: inspectionID,
			ItemID:       itemID,
			DueDate:      dueDate,
			Assignee:     assignee,
		})
		if err != nil {
			return fmt.Errorf("failed to create action: %w", err)
		}

		fmt.Printf("✓ Created action %s: %s [%s]\n", act.ID, act.Title, act.Priority)
		return nil
	},
}

var actionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List corrective actions",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		entries, err := wire.ActionService().ListActions(ctx)
		if err != nil {
			return fmt.Errorf("failed to list actions: %w", err)
		}

		if len(entries) == 0 {
			fmt.Println("No actions found")
			return nil
		}

		fmt.Printf("\n%-10s %-12s %-10s %-30s %s\n", "ID", "STATUS", "PRIORITY", "INSPECTION", "TITLE")
		fmt.Println("────────────────────────────────────────────────────────────────────────────────")
		for _, e := range entries {
			fmt.Printf("%-10s %-12s %-10s %-30s %s\n", e.Action.ID, e.Action.Status, e.Action.Priority, e.InspectionLabel, e.Action.Title)
		}
		fmt.Println()

		return nil
	},
}

var actionUpdateCmd = &cobra.Command{
	Use:   "update [action-id]",
	Short: "Update a corrective action",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		var patch primary.ActionPatch
		if cmd.Flags().Changed("title") {
			v, _ := cmd.Flags().GetString("title")
			patch.Title = &v
		}
		if cmd.Flags().Changed("status") {
			v, _ := cmd.Flags().GetString("status")
			patch.Status = &v
		}
		if cmd.Flags().Changed("priority") {
			v, _ := cmd.Flags().GetString("priority")
			patch.Priority = &v
		}
		if cmd.Flags().Changed("due") {
			v, _ := cmd.Flags().GetString("due")
			patch.DueDate = &v
		}
		if cmd.Flags().Changed("assignee") {
			v, _ := cmd.Flags().GetString("assignee")
			patch.Assignee = &v
		}

		if patch.Title == nil && patch.Status == nil && patch.Priority == nil && patch.DueDate == nil && patch.Assignee == nil {
			return fmt.Errorf("must specify at least one of --title, --status, --priority, --due, --assignee")
		}

		if err := wire.ActionService().UpdateAction(ctx, args[0], patch); err != nil {
			return fmt.Errorf("failed to update action: %w", err)
		}

		fmt.Printf("✓ Updated action %s\n", args[0])
		return nil
	},
}

var actionDeleteCmd = &cobra.Command{
	Use:   "delete [action-id]",
	Short: "Delete a corrective action (admin only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if err := wire.ActionService().DeleteAction(ctx, args[0]); err != nil {
			return fmt.Errorf("failed to delete action: %w", err)
		}

		fmt.Printf("✓ Deleted action %s\n", args[0])
		return nil
	},
}

// ActionCmd returns the action command
func ActionCmd() *cobra.Command {
	// Add flags
	actionCreateCmd.Flags().StringP("priority", "p", "", "Priority (low, medium, high, critical; default medium)")
	actionCreateCmd.Flags().StringP("inspection", "i", "", "Linked inspection ID")
	actionCreateCmd.Flags().String("item", "", "Linked inspection item ID")
	actionCreateCmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	actionCreateCmd.Flags().StringP("assignee", "a", "", "Assignee")
	actionUpdateCmd.Flags().StringP("title", "t", "", "New title")
	actionUpdateCmd.Flags().StringP("status", "s", "", "New status (open, in_progress, resolved, verified)")
	actionUpdateCmd.Flags().StringP("priority", "p", "", "New priority")
	actionUpdateCmd.Flags().String("due", "", "New due date")
	actionUpdateCmd.Flags().StringP("assignee", "a", "", "New assignee")

	// Add subcommands
	actionCmd.AddCommand(actionCreateCmd)
	actionCmd.AddCommand(actionListCmd)
	actionCmd.AddCommand(actionUpdateCmd)
	actionCmd.AddCommand(actionDeleteCmd)

	return actionCmd
}
