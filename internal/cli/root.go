// Package cli provides the command-line interface for autovisory.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/autovisory/autovisory/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	configFile string

	// Loaded in PersistentPreRunE, shared by all commands.
	cfg        config.Config
	logger     *slog.Logger
	logCleanup func() error
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "autovisory",
	Short: "AI-powered car market analyst",
	Long: `Autovisory is an AI-powered car advisor. Ask it to recommend cars for
your needs, analyze a specific model, or compare models side by side.

It classifies each message into an intent and delegates the heavy
lifting to a configured LLM provider (Google AI, OpenAI, Anthropic,
Ollama or AWS Bedrock).`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.LoadWithFile(configFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		logger, logCleanup = config.SetupLogger(cfg.LogFile, cfg.LogLevel)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCleanup != nil {
			if err := logCleanup(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
			}
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to a YAML config file")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(askCmd)
}
