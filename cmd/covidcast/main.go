// Command covidcast fetches district case counts from the VOST API,
// snapshots them to disk, and prints polynomial trend forecasts per county.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	district    string
	fromDate    string
	toDate      string
	cacheDir    string
	compression string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "covidcast",
		Short: "Polynomial trend forecasts for district covid-19 case counts",
		Long: `covidcast fetches county-level case counts from the VOST covid19 API,
normalizes them into per-county time series, and fits a polynomial trend
used to extrapolate future case counts.

API credentials are read from the API_USER and API_PASSWORD environment
variables.`,
	}

	rootCmd.PersistentFlags().StringVar(&district, "district", "Braga", "District to query")
	rootCmd.PersistentFlags().StringVar(&fromDate, "from", "01-01-2021", "Range start (dd-mm-yyyy)")
	rootCmd.PersistentFlags().StringVar(&toDate, "to", "", "Range end (dd-mm-yyyy, default today)")
	rootCmd.PersistentFlags().StringVar(&cacheDir, "cache-dir", "data", "Snapshot directory")
	rootCmd.PersistentFlags().StringVar(&compression, "compression", "zstd", "Snapshot compression (none|zstd|s2|lz4)")

	rootCmd.AddCommand(fetchCmd())
	rootCmd.AddCommand(forecastCmd())
	rootCmd.AddCommand(countiesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}
