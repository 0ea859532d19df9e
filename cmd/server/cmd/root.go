package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	logLevel  string
	logFormat string

	rootCmd = &cobra.Command{
		Use:   "quiz-admin",
		Short: "Hobbiton quiz events admin API",
		Long: `quiz-admin serves the administrative HTTP API over the quiz events table.

The server supports:
- Listing quiz events, optionally filtered by player
- Partial updates of the operator-editable fields (hobbit name, event type)
- Permanent deletion of event rows
- Asynchronous webhook notifications on every mutation`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// With no subcommand, run serve by default
			return serveCmd.RunE(cmd, args)
		},
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error) (default: info)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (json, console) (default: json)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}
