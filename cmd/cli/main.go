package main

import (
	"fmt"
	"os"

	"github.com/mauv0809/court-finder/internal/config"
	"github.com/spf13/cobra"
)

var (
	host      string
	verbose   bool
	requestID string
)

var rootCmd = &cobra.Command{
	Use:   "court-finder-cli",
	Short: "Query a running court-finder server",
	Long: `A command-line client for the court-finder server: list and filter open
badminton slots, inspect which data source is served, trigger a reload and
drive the shared slot selection.

The default host follows COURT_FINDER_PORT, the same variable the server reads.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&host, "host", defaultHost(), "The host address of the server")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Ask the server to log this request at debug level")
	rootCmd.PersistentFlags().StringVar(&requestID, "request-id", "", "Request id sent as X-Request-ID; the server assigns one when empty")
}

// defaultHost points at a server on this machine using the configured port.
func defaultHost() string {
	port := os.Getenv(config.EnvPrefix + "PORT")
	if port == "" {
		port = config.New().Port
	}
	return "http://localhost:" + port
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your command '%s'", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
