// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for utemplate.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"utemplate-cli/internal/config"
	"utemplate-cli/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// Verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// loadedConfig is the configuration resolved by initRootConfig. It is
	// never nil after initialization; load failures fall back to defaults.
	loadedConfig = config.DefaultConfig()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "utemplate",
		Short: "Scaffold development stacks and agent files from built-in templates",
		Long: TitleStyle.Render("utemplate") + SubtitleStyle.Render(" - Scaffold development stacks and agent files") + `

utemplate copies curated templates into your project: compose stacks for
local databases and services, agent instruction files, and agent skill
packs. Copies are guarded against accidental overwrites and compose files
are rewritten per project (container name prefixes, database names).

` + SubtitleStyle.Render("Quick Start:") + `
  1. Run 'utemplate list' to see available templates
  2. Scaffold a stack with 'utemplate init <template> --project-name <name>'
  3. Start it with your compose engine

` + SubtitleStyle.Render("Examples:") + `
  utemplate list                               List available templates
  utemplate init postgres --project-name shop  Scaffold a PostgreSQL stack
  utemplate agent init --gitignore             Create AGENTS.md
  utemplate skills init react                  Install the React skill pack
  utemplate php start 8.4                      Scaffold and start a PHP stack
  utemplate docs postgres                      Show template documentation`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/utemplate/config.cue)")

	// Add subcommands
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(agentCmd)
	rootCmd.AddCommand(skillsCmd)
	rootCmd.AddCommand(phpCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(docsCmd)
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newCompletionCommand())
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig reads in the config file if present.
func initRootConfig() {
	// Set custom config file path if provided via --config flag
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	cfg, err := config.Load()
	if err != nil {
		// Always surface config loading errors; commands still run on defaults.
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		if !hasActionableSuggestions(err) {
			renderIssue(os.Stderr, issue.ConfigLoadFailedId)
		}
	}
	if cfg != nil {
		loadedConfig = cfg
	}

	// Apply verbose from config if not set via flag
	if !verbose {
		verbose = loadedConfig.UI.Verbose
	}
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// hasActionableSuggestions reports whether err already carries its own fix
// suggestions, making the generic config issue card redundant.
func hasActionableSuggestions(err error) bool {
	var ae *issue.ActionableError
	return errors.As(err, &ae) && ae.HasSuggestions()
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// GetVerbose returns the verbose flag value
func GetVerbose() bool {
	return verbose
}
