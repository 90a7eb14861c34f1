package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "devclub",
	Short: "Backend for the developer club community portal",
	Long: `devclub serves the club's members directory, events listing and
leaderboard as a JSON API. Records are loaded once at startup from the
embedded fixtures, PostgreSQL or MongoDB depending on DATA_SOURCE.`,
	SilenceUsage: true,
	// Running the binary without a subcommand starts the server.
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
