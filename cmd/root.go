// =============================================================================
// EDI Document Renderer - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. Every other command
// is attached to it.
//
// COBRA CLI STRUCTURE:
//   rootCmd (edirender)
//   ├── convertCmd  (edirender convert)
//   ├── typesCmd    (edirender types)
//   ├── describeCmd (edirender describe)
//   ├── layoutCmd   (edirender layout validate|show|convert|scaffold)
//   └── versionCmd  (edirender version)
//
// The root command sets up global flags (--config, --verbose), loads a .env
// file when one exists, and configures logging.
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ginjaninja78/edi-document-renderer/internal/config"
	"github.com/ginjaninja78/edi-document-renderer/internal/logging"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the main configuration file.
var cfgFile string

// verbose enables debug logging.
var verbose bool

// logger is configured before any command runs.
var logger = logging.Discard()

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

var rootCmd = &cobra.Command{
	Use:   "edirender",
	Short: "EDI Document Renderer - Render X12 documents as PDF, XLSX and HTML",
	Long: `EDI Document Renderer reads X12 interchanges, decodes every transaction
set into a normalized document, and renders the documents as PDF, XLSX and
HTML using layouts a non-programmer can edit.

Key Features:
  - 17 supported transaction types (810, 850, 856, 997, ...)
  - Permissive parsing: unusual delimiters and encodings are handled
  - Layouts in YAML, JSON, TOML or an Excel workbook
  - Per-user layout versions with a legacy fallback presentation
  - Concurrent batch processing with input archival

Example Usage:
  edirender convert                          # Render every file in the input directory
  edirender convert --file po.edi -f html    # Render one file as HTML only
  edirender describe 850 BEG03               # Explain where a field comes from
  edirender layout validate layouts/850.yaml # Check a layout file`,

	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A .env file is optional.
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load .env: %w", err)
		}
		logger = logging.Setup(logLevel("info"), "text")
		return nil
	},

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		config.DefaultConfigFile,
		"Path to the main configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// =============================================================================
// HELPERS
// =============================================================================

// loadConfig loads the main configuration and reconfigures logging from it.
func loadConfig() (*config.MainConfig, error) {
	cfg, err := config.LoadMainConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load main config: %w", err)
	}

	logger = logging.Setup(logLevel(cfg.LogLevel), cfg.LogFormat)
	logger.Debug("Configuration loaded",
		slog.String("config", cfgFile),
		slog.String("input_dir", cfg.InputDir),
		slog.String("layouts_dir", cfg.LayoutsDir))
	return cfg, nil
}

// logLevel applies --verbose on top of a configured level.
func logLevel(level string) string {
	if verbose {
		return "debug"
	}
	return level
}
