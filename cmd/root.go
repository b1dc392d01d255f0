package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tristendillon/dtsgen/core/config"
	"github.com/tristendillon/dtsgen/core/logger"
)

var rootCmd = &cobra.Command{
	Use:   "dtsgen",
	Short: "Generate TypeScript declarations from JVM class descriptors.",
	Long: `dtsgen walks a directory of JSON class descriptors and writes a
TypeScript declaration file (.d.ts) next to each one, mapping JVM types
to their TypeScript names and importing cross-package references.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging()
	},
}

var logfile string
var verbose bool
var jsonLogs bool

func Execute() {
	err := rootCmd.Execute()
	logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logfile, "logfile", "", "File to write logs to")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Emit logs as JSON lines")
}

func setupLogging() error {
	logger.SetVerbose(verbose)
	logger.SetJSONOutput(jsonLogs)
	if logfile != "" {
		f, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file %s: %w", logfile, err)
		}
		logger.AddWriterForAll(f)
	}
	return nil
}

// loadConfig loads dtsgen.yaml and applies positional and flag overrides
// shared by generate and watch.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if len(args) > 0 {
		cfg.Source = args[0]
	}
	if cmd.Flags().Changed("on-error") {
		cfg.OnError = config.ErrorPolicy(onError)
	}
	if cmd.Flags().Changed("descriptor-suffix") {
		cfg.DescriptorSuffix = descriptorSuffix
	}
	if cmd.Flags().Changed("declaration-suffix") {
		cfg.DeclarationSuffix = declarationSuffix
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var (
	onError           string
	descriptorSuffix  string
	declarationSuffix string
)

func addGenerationFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&onError, "on-error", string(config.Continue), "Failure policy: continue or halt")
	cmd.Flags().StringVar(&descriptorSuffix, "descriptor-suffix", ".json", "Suffix of descriptor files")
	cmd.Flags().StringVar(&declarationSuffix, "declaration-suffix", ".d.ts", "Suffix of generated declaration files")
}
