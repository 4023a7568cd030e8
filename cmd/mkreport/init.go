package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

//go:embed templates/mkreport.yaml
var definitionTemplate embed.FS

// defaultDefinitionFile is the default definition file name.
const defaultDefinitionFile = "report.yml"

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create an example report definition",
		Long: `Init creates an example report definition file in the current directory.

The generated file includes:
- A report with sections, a styled table, and every chart kind
- Comments documenting the available content kinds

Examples:
  # Create report.yml in the current directory
  mkreport init

  # Create the definition at a specific path
  mkreport init -o quarterly.yml

  # Force overwrite an existing file
  mkreport init -f`,
		Args: cobra.NoArgs,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", defaultDefinitionFile,
		"Output file path for the definition")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing definition file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("definition file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := definitionTemplate.ReadFile("templates/mkreport.yaml")
	if err != nil {
		return fmt.Errorf("failed to read definition template: %w", err)
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write definition file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created definition file: %s\n", outputPath)
	fmt.Fprintln(cmd.OutOrStdout(), "\nRender it with:")
	fmt.Fprintf(cmd.OutOrStdout(), "  mkreport render %s\n", outputPath)
	return nil
}
