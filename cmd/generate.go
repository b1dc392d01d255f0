package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tristendillon/dtsgen/core/config"
	"github.com/tristendillon/dtsgen/core/errors"
	"github.com/tristendillon/dtsgen/core/generator"
	"github.com/tristendillon/dtsgen/core/logger"
	"github.com/tristendillon/dtsgen/core/models"
)

var generateCmd = &cobra.Command{
	Use:   "generate [source-dir]",
	Short: "Generates declaration files for every descriptor",
	Long: `Generates a declaration file next to every descriptor under the source
directory. The directory defaults to the "source" key of dtsgen.yaml.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Debug("generate called")
		cfg, err := loadConfig(cmd, args)
		if err != nil {
			return err
		}

		if err := runGeneration(cfg); err != nil {
			return fmt.Errorf("failed to generate declarations: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	addGenerationFlags(generateCmd)
}

func runGeneration(cfg *config.Config) error {
	gen := generator.NewDeclarationGenerator(cfg)
	report, err := gen.Generate(cfg.Source)
	logReport(report)
	return err
}

func logReport(report *models.Report) {
	if report == nil {
		return
	}
	for _, failure := range report.Failures {
		logger.Errorw("descriptor failed",
			"path", failure.Path,
			"kind", errors.Kind(failure.Err),
			"error", failure.Err.Error())
	}
	logger.Info("Generated %d declarations in %s (%d skipped, %d failed)",
		len(report.Generated), report.Root, len(report.Skipped), len(report.Failures))
}
