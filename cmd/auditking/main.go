package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/auditking/internal/cli"
	"github.com/example/auditking/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "auditking",
		Short:   "Audit King - inspection checklists, scoring, and corrective actions",
		Version: version.String(),
		Long: `Audit King is a CLI tool for running checklist-based inspections.
Build templates, run inspections against them, track corrective actions,
and render scored reports.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.StatusCmd())
	rootCmd.AddCommand(cli.TemplateCmd())
	rootCmd.AddCommand(cli.InspectionCmd())
	rootCmd.AddCommand(cli.ActionCmd())
	rootCmd.AddCommand(cli.ReportCmd())
	rootCmd.AddCommand(cli.UserCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
