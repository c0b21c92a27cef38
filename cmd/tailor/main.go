// Package main provides the entry point for the resume tailor CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/jonathan/resume-tailor/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:               "tailor",
	Short:             "Resume tailoring pipeline",
	Long:              "Tailor extracts structured records from resume documents and pasted job postings, analyzes their overlap, and renders LaTeX resumes from a fixed template registry.",
	PersistentPreRunE: setup,
	SilenceUsage:      true,
}

var (
	flagConfig    string
	flagVerbose   bool
	flagLogLevel  string
	flagLogFormat string
)

// cfg is the merged runtime configuration, built in setup before any
// subcommand runs.
var cfg config.Config

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print boxed summaries of extracted records")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "Log format: json or pretty")
}

func setup(_ *cobra.Command, _ []string) error {
	fileCfg := config.Config{}
	if flagConfig != "" {
		loaded, err := config.LoadConfig(flagConfig)
		if err != nil {
			return err
		}
		fileCfg = *loaded
	}

	flagged := config.Config{
		Verbose:   flagVerbose,
		LogLevel:  flagLogLevel,
		LogFormat: flagLogFormat,
	}
	// Precedence: flags over TAILOR_* env vars over the config file.
	envCfg := config.FromEnv()
	cfg = flagged.MergeWithDefaults(envCfg.MergeWithDefaults(fileCfg))
	cfg.Verbose = flagVerbose || fileCfg.Verbose

	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.Verbose && cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}

	format := cfg.LogFormat
	if format == "" {
		format = "pretty"
	}
	logger.Init(logger.Config{Level: cfg.LogLevel, Format: format})

	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
