// Package main provides the ForgeFolio command line interface.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is stamped by the release build via -ldflags "-X main.Version=...".
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:     "forgefolio",
	Short:   "Generate structured portfolio copy from a short profile",
	Long:    "ForgeFolio turns a short professional profile into polished portfolio copy, through the Groq chat completions API or a local synthesizer.",
	Version: Version,

	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
