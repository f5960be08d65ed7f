package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// @title           Compliance AI Website API
// @version         1.0
// @description     Contact form and liveness endpoints for the Compliance AI website.
// @host            localhost:3000
// @BasePath        /api
func main() {
	rootCmd := &cobra.Command{
		Use:   "compliance-ai",
		Short: "Compliance AI website backend",
		Long: `Serves the Compliance AI single-page site and its contact form API.
Running without a subcommand starts the HTTP server.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newPreviewCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
