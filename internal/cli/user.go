package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/auditking/internal/wire"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users and the acting identity",
}

var userWhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the acting user",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := wire.UserService().Whoami(context.Background())
		if err != nil {
			return fmt.Errorf("failed to resolve acting user: %w", err)
		}

		fmt.Printf("%s (%s) %s\n", user.DisplayName(), user.ID, roleList(user.Roles))
		return nil
	},
}

var userSwitchCmd = &cobra.Command{
	Use:   "switch [user-id]",
	Short: "Switch the acting user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := wire.UserService().SetCurrentUser(context.Background(), args[0]); err != nil {
			return fmt.Errorf("failed to switch user: %w", err)
		}

		fmt.Printf("✓ Acting as %s\n", args[0])
		return nil
	},
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users (admin only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		users, err := wire.UserService().ListUsers(context.Background())
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}

		fmt.Printf("\n%-8s %-30s %s\n", "ID", "EMAIL", "ROLES")
		fmt.Println("────────────────────────────────────────────────────────────────")
		for _, u := range users {
			fmt.Printf("%-8s %-30s %s\n", u.ID, u.Email, roleList(u.Roles))
		}
		fmt.Println()

		return nil
	},
}

var userDeleteCmd = &cobra.Command{
	Use:   "delete [user-id]",
	Short: "Delete a user (admin only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := wire.UserService().DeleteUser(context.Background(), args[0]); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}

		fmt.Printf("✓ Deleted user %s\n", args[0])
		return nil
	},
}

func roleList[T ~string](roles []T) string {
	if len(roles) == 0 {
		return "-"
	}
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = string(r)
	}
	return strings.Join(out, ", ")
}

// UserCmd returns the user command
func UserCmd() *cobra.Command {
	userCmd.AddCommand(userWhoamiCmd)
	userCmd.AddCommand(userSwitchCmd)
	userCmd.AddCommand(userListCmd)
	userCmd.AddCommand(userDeleteCmd)

	return userCmd
}
