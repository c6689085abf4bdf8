package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/seolint/internal/configloader"
	"github.com/yaklabco/seolint/internal/logging"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0644

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new seolint configuration file",
		Long: `Create a new .seolint.yaml configuration file in the current directory
with sensible defaults. The file can be customized to toggle rule categories,
configure probes, and enable headless rendering.

Examples:
  seolint init                      Create .seolint.yaml
  seolint init --output custom.yaml Write to a custom file path`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .seolint.yaml)")

	return cmd
}

func runInit(flags *initFlags) error {
	logger := logging.Default()

	outputPath := flags.output
	if outputPath == "" {
		outputPath = ".seolint.yaml"
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
		}
		logger.Warn("overwriting existing file", "path", outputPath)
		if err := os.WriteFile(absPath, []byte(configloader.Template), configFilePermissions); err != nil {
			return fmt.Errorf("write file: %w", err)
		}
	} else {
		if err := configloader.WriteDefaultConfig(absPath); err != nil {
			return err
		}
	}

	logger.Info("created configuration file", "path", outputPath)
	logger.Info("customize your configuration by editing the file")
	logger.Info("run 'seolint rules' to see all available rules")

	return nil
}
