package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/tristendillon/dtsgen/core/config"
	"github.com/tristendillon/dtsgen/core/logger"
	"github.com/tristendillon/dtsgen/core/template_engine"
)

var (
	force      bool
	initSource string
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a starter dtsgen.yaml",
	Long:  `Creates a dtsgen.yaml with the default settings in the given directory (default: current directory).`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Debug("init called")
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}

		target := filepath.Join(dir, config.FileName)
		if _, err := os.Stat(target); err == nil && !force {
			return fmt.Errorf("%s already exists, use --force to overwrite", target)
		}

		cfg := config.Default()
		if initSource != "" {
			cfg.Source = initSource
		}

		absDir, err := filepath.Abs(dir)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", dir, err)
		}

		data := struct {
			ProjectName string
			Timestamp   time.Time
			Config      *config.Config
		}{
			ProjectName: filepath.Base(absDir),
			Timestamp:   time.Now(),
			Config:      cfg,
		}

		engine := template_engine.NewTemplateEngine()
		if err := engine.GenerateFolder(template_engine.TEMPLATES.INIT.Ref, dir, data); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}

		logger.Info("Wrote %s", target)
		fmt.Printf("Next Steps:\n")
		fmt.Printf("  - put descriptors under %s\n", cfg.Source)
		fmt.Printf("  - dtsgen generate\n")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing dtsgen.yaml")
	initCmd.Flags().StringVar(&initSource, "source", "", "Descriptor directory to record in the config")
}
