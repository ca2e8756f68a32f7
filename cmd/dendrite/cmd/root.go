// Package cmd provides the command-line interface for dendrite.
package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dendrite",
	Short: "Dendrite runs spiking neural network simulations.",
	Long: `Dendrite runs spiking neural network simulations on a fixed ` +
		`time grid, with exact-propagator neuron models, delay ring ` +
		`buffers, and SQLite-backed recording.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	// A .env file can preset DENDRITE_* variables; absence is fine.
	_ = godotenv.Load()

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// envOr returns the value of the environment variable or the fallback.
func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}

	return fallback
}
