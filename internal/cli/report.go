package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/auditking/internal/wire"
)

// ReportCmd returns the report command
func ReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report [inspection-id]",
		Short: "Render an inspection report",
		Long: `Render a display-ready report for an inspection: header, score, and one
line per question with a Pass/Fail badge for yes/no checks.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.ReportAdapter().Render(context.Background(), args[0])
		},
	}
}
