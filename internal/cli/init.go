package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/auditking/internal/config"
	"github.com/example/auditking/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the auditking database",
		Long:  `Initialize the auditking database at ~/.auditking/auditking.db with the required schema.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgDir, err := config.Dir()
			if err != nil {
				return fmt.Errorf("failed to locate config directory: %w", err)
			}
			cfg, err := config.LoadConfig(cfgDir)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			dbPath := cfg.DBPath
			if dbPath == "" {
				dbPath, err = db.DefaultPath()
				if err != nil {
					return fmt.Errorf("failed to get database path: %w", err)
				}
			}

			fmt.Printf("Initializing auditking database at %s\n", dbPath)

			database, err := db.Open(dbPath)
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			defer database.Close()

			fmt.Println("✓ Database initialized successfully")

			if err := config.SaveConfig(cfgDir, cfg); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			fmt.Println("✓ Config written to ~/.auditking/config.json")
			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  auditking template list")
			fmt.Println("  auditking inspection start tpl-1")

			return nil
		},
	}
}
