package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/auditking/internal/ports/primary"
	"github.com/example/auditking/internal/wire"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage inspection templates",
	Long:  "Create, import, list, and manage inspection templates in the catalog",
}

var templateCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		site, _ := cmd.Flags().GetString("site")
		description, _ := cmd.Flags().GetString("description")
		signature, _ := cmd.Flags().GetBool("signature")

		tpl, err := wire.TemplateService().SaveTemplate(ctx, primary.SaveTemplateRequest{
			Name:              args[0],
			Site:              site,
			Description:       description,
			SignatureRequired: signature,
		})
		if err != nil {
			return fmt.Errorf("failed to create template: %w", err)
		}

		fmt.Printf("✓ Created template %s: %s\n", tpl.ID, tpl.Name)
		return nil
	},
}

var templateImportCmd = &cobra.Command{
	Use:   "import [name] [checklist-file]",
	Short: "Import a template from free-form checklist text",
	Long: `Build a template from a plain text checklist. Each line (or •-separated
segment) becomes one question; lines ending with '?' become yes/no checks,
everything else becomes a free text field.

Examples:
  auditking template import "Site Walkthrough" checklist.txt
  auditking template import "Daily Check" - < checklist.txt`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		site, _ := cmd.Flags().GetString("site")
		signature, _ := cmd.Flags().GetBool("signature")

		raw, err := readInput(args[1])
		if err != nil {
			return fmt.Errorf("failed to read checklist: %w", err)
		}

		tpl, err := wire.TemplateService().ImportTemplate(ctx, primary.ImportTemplateRequest{
			Name:              args[0],
			Site:              site,
			SignatureRequired: signature,
			Raw:               raw,
		})
		if err != nil {
			return fmt.Errorf("failed to import template: %w", err)
		}

		fmt.Printf("✓ Imported template %s: %s (%d questions)\n", tpl.ID, tpl.Name, len(tpl.Items))
		return nil
	},
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		filter, _ := cmd.Flags().GetString("filter")

		templates, err := wire.TemplateService().ListTemplates(ctx, filter)
		if err != nil {
			return fmt.Errorf("failed to list templates: %w", err)
		}

		if len(templates) == 0 {
			fmt.Println("No templates found")
			return nil
		}

		fmt.Printf("\n%-40s %-10s %s\n", "ID", "QUESTIONS", "NAME")
		fmt.Println("────────────────────────────────────────────────────────────────")
		for _, tpl := range templates {
			fmt.Printf("%-40s %-10d %s\n", tpl.ID, len(tpl.Items), tpl.Name)
		}
		fmt.Println()

		return nil
	},
}

var templateShowCmd = &cobra.Command{
	Use:   "show [template-id]",
	Short: "Show template details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		tpl, err := wire.TemplateService().GetTemplate(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to get template: %w", err)
		}

		fmt.Printf("\nTemplate: %s\n", tpl.ID)
		fmt.Printf("Name:     %s\n", tpl.Name)
		if tpl.Site != "" {
			fmt.Printf("Site:     %s\n", tpl.Site)
		}
		if tpl.Description != "" {
			fmt.Printf("Description: %s\n", tpl.Description)
		}
		if tpl.SignatureRequired {
			fmt.Println("Signature required on submit")
		}
		fmt.Printf("Updated:  %s\n", tpl.UpdatedAt.Format("2006-01-02 15:04"))
		fmt.Println()

		if len(tpl.Items) > 0 {
			fmt.Println("Questions:")
			for i, item := range tpl.Items {
				required := ""
				if item.Required {
					required = " (required)"
				}
				fmt.Printf("  %d. [%s] %s%s\n", i+1, item.Kind, item.Label, required)
			}
			fmt.Println()
		}

		return nil
	},
}

var templateDeleteCmd = &cobra.Command{
	Use:   "delete [template-id]",
	Short: "Delete a template (admin only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if err := wire.TemplateService().DeleteTemplate(ctx, args[0]); err != nil {
			return fmt.Errorf("failed to delete template: %w", err)
		}

		fmt.Printf("✓ Deleted template %s\n", args[0])
		return nil
	},
}

// readInput reads a file, or stdin when path is "-".
func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// TemplateCmd returns the template command
func TemplateCmd() *cobra.Command {
	// Add flags
	templateCreateCmd.Flags().StringP("site", "s", "", "Site the template applies to")
	templateCreateCmd.Flags().StringP("description", "d", "", "Template description")
	templateCreateCmd.Flags().Bool("signature", false, "Require a signature on submit")
	templateImportCmd.Flags().StringP("site", "s", "", "Site the template applies to")
	templateImportCmd.Flags().Bool("signature", false, "Require a signature on submit")
	templateListCmd.Flags().StringP("filter", "f", "", "Filter by name substring")

	// Add subcommands
	templateCmd.AddCommand(templateCreateCmd)
	templateCmd.AddCommand(templateImportCmd)
	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(templateShowCmd)
	templateCmd.AddCommand(templateDeleteCmd)

	return templateCmd
}
