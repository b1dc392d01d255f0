package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/tristendillon/dtsgen/core/logger"
	"github.com/tristendillon/dtsgen/core/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch [source-dir]",
	Short: "Regenerates declarations whenever a descriptor changes",
	Long: `Runs a full generation, then watches the source directory and runs a
full generation again whenever a descriptor is created, changed or removed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Debug("watch called")
		cfg, err := loadConfig(cmd, args)
		if err != nil {
			return err
		}

		if info, err := os.Stat(cfg.Source); err != nil || !info.IsDir() {
			return fmt.Errorf("source directory %s is not accessible", cfg.Source)
		}

		fw, err := watcher.NewFileWatcher(cfg.Source, cfg.Exclude, cfg.Watch.Debounce)
		if err != nil {
			return err
		}
		defer fw.Close()

		generate := func() error {
			if err := runGeneration(cfg); err != nil {
				logger.Warn("Generation finished with errors: %v", err)
			}
			return nil
		}
		fw.FileWatcher.AddOnStartFunc(generate)
		fw.FileWatcher.AddOnChangeFunc(generate)
		fw.FileWatcher.SetMatcher(cfg.IsDescriptor)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Info("Watching %s for descriptor changes", cfg.Source)
		return fw.Watch(ctx)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	addGenerationFlags(watchCmd)
}
