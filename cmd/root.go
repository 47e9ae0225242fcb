// Package cmd provides CLI commands for biblio.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var configFile string

func setupLogger() {
	logLevel := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "INFO"
	}

	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	logger := slog.New(handler)

	slog.SetDefault(logger)
}

var rootCmd = &cobra.Command{
	Use:   "biblio",
	Short: "Resolve bibliographic records and author identities",
	Long: `Biblio fetches DOI records from Crossref and DataCite, normalizes
them, and resolves authors against an identity registry.

Examples:
  biblio doi 10.7554/elife.98405
  biblio authors 10.7554/elife.98405
  biblio citation 10.7554/elife.98405 --expanded
  biblio lookup --orcid 0000-0003-0369-9788
  biblio enroll 19339`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	setupLogger()
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config YAML file (overrides environment)")
	rootCmd.AddCommand(doiCmd)
	rootCmd.AddCommand(authorsCmd)
	rootCmd.AddCommand(citationCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(enrollCmd)
	rootCmd.AddCommand(orgsCmd)
}
