package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vendor-admin",
	Short: "Admin service for the vendor marketplace",
	Long:  "HTTP service and background jobs for reviewing vendor applications and managing vendor subscriptions.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
