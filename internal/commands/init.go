package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roadbook-dev/roadbook/internal/config"
	"github.com/roadbook-dev/roadbook/internal/session"
)

func newInitCommand() *cobra.Command {
	var company string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new roadbook data directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, company)
		},
	}

	cmd.Flags().StringVar(&company, "company", "", "company name (required)")
	_ = cmd.MarkFlagRequired("company")

	return cmd
}

func runInit(dir, company string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	cfgPath := filepath.Join(dir, session.ConfigFile)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists in %s", session.ConfigFile, dir)
	}

	if err := config.Save(cfgPath, config.Default(company)); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	gitignore := "*_export.csv\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	fmt.Printf("Initialized roadbook data directory in %s\n", dir)
	fmt.Println("Add shipments and cash advances to roadbook.yaml to get started.")
	return nil
}
