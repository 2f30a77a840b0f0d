package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goclt/internal/config"
	"github.com/alexiusacademia/goclt/internal/logger"
	"github.com/alexiusacademia/goclt/internal/material"
	"github.com/alexiusacademia/goclt/internal/version"
)

var (
	cfgFile   string
	logLevel  string
	logFormat string

	// Populated by setup before any command runs.
	cfg     config.Config
	appLog  *slog.Logger
	catalog *material.Catalog
)

var rootCmd = &cobra.Command{
	Use:   "goclt",
	Short: "Classical Lamination Theory calculator",
	Long: `goclt - Go Classical Lamination Theory calculator

A CLI tool for the stiffness and stress analysis of laminated
composite plates built from unidirectional plies.

This tool helps engineers:
  - Compute on-axis and off-axis ply stiffness (Q, S, Qbar, Sbar)
  - Build and edit layups stored in JSON files
  - Assemble the extensional (A) and bending (D) stiffness of a laminate
  - Find mid-plane strain and curvature under in-plane loads and moments
  - Recover strain and stress in any ply at its outer, middle or inner face

Settings can be given in a config file (--config) or through
GOCLT_* environment variables, e.g. GOCLT_LOG_LEVEL=debug.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   goclt v%-49s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Go Classical Lamination Theory Calculator               ║")
		fmt.Fprintf(out, "  ║   %-56s║\n", version.Author+" ©  "+version.Year)
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Built-in catalog of unidirectional composites")
		fmt.Fprintln(out, "    • Ply stiffness through the Tsai-Pagano invariants")
		fmt.Fprintln(out, "    • Layup editing with symmetric mirroring and sandwich cores")
		fmt.Fprintln(out, "    • Laminate A/D stiffness, load response and ply recovery")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'goclt --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// setup loads configuration, builds the logger and the material catalog.
func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		c.Log.Level = logLevel
	}
	if cmd.Flags().Changed("log-format") {
		c.Log.Format = logFormat
	}
	cfg = c
	appLog = logger.New(cfg.Log.Level, cfg.Log.Format)

	catalog, err = material.Default(cfg.Materials...)
	if err != nil {
		return fmt.Errorf("build material catalog: %w", err)
	}
	appLog.Debug("configured", "config", cfgFile, "materials", len(catalog.Names()))
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (yaml, json or toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
}
