package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/forgefolio/forgefolio/internal/config"
	"github.com/forgefolio/forgefolio/internal/service/textgen"
)

const checkTimeout = 15 * time.Second

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify Groq connectivity and credentials",
	Long:  "Send a minimal completion request to Groq to verify the configured API key, model, and network path.",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	if cfg.GroqAPIKey == "" {
		return errors.New("GROQ_API_KEY is not set")
	}

	client, err := textgen.NewClient(cfg.GroqAPIKey,
		textgen.WithModel(cfg.GroqModel),
		textgen.WithBaseURL(cfg.GroqBaseURL),
	)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), checkTimeout)
	defer cancel()
	if err := client.Ping(ctx); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "groq connection ok (model %s)\n", cfg.GroqModel)
	return nil
}
