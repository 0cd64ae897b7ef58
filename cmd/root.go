package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "videominer",
	Short: "REST API for channels, videos, comments and captions",
	Long: `videominer stores channels together with their videos, comments and captions
in PostgreSQL and serves them over a REST API under /videominer.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
