package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tristendillon/dtsgen/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the version of dtsgen",
	Long:  `Displays the version of dtsgen.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dtsgen %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
