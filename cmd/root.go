// Package cmd implements the CLI commands using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"prehrajto/internal/config"
	"prehrajto/internal/logger"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Global flags
var (
	flagUsername string
	flagPassword string
	flagDownload string
	flagLanguage string
	flagNoSubs   bool
	flagPlayer   string
	flagJSON     bool
	flagDebug    bool
)

// cfg holds the loaded configuration (merged: defaults < config file < flags).
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "prehrajto [query]",
	Short: "Search prehraj.to and resolve direct stream URLs",
	Long: `prehrajto searches the prehraj.to file host, resolves a chosen result
to a direct playable video URL (plus subtitle tracks), and plays,
downloads, or prints it.`,
	Args:              cobra.ArbitraryArgs,
	PersistentPreRunE: loadConfig,
	RunE:              searchRun,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagUsername, "username", "u", "", "Site account username (empty: anonymous)")
	rootCmd.PersistentFlags().StringVarP(&flagPassword, "password", "p", "", "Site account password")
	rootCmd.PersistentFlags().StringVarP(&flagDownload, "download", "d", "", "Download to path instead of playing")
	rootCmd.PersistentFlags().StringVarP(&flagLanguage, "language", "l", "", "Subtitle language code (default: cs)")
	rootCmd.PersistentFlags().BoolVarP(&flagNoSubs, "no-subs", "n", false, "Disable subtitles")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Media player: mpv | vlc")
	rootCmd.PersistentFlags().BoolVarP(&flagJSON, "json", "j", false, "Output resolved stream as JSON")
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "debug", "x", false, "Debug logging to stderr")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads and merges configuration: defaults < config file < CLI flags.
func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if flagUsername != "" {
		cfg.Username = flagUsername
	}
	if flagPassword != "" {
		cfg.Password = flagPassword
	}
	if flagPlayer != "" {
		cfg.Player = flagPlayer
	}
	if flagLanguage != "" {
		cfg.SubsLanguage = flagLanguage
	}
	if flagDebug {
		cfg.Debug = true
	}

	// Re-validate after flag overrides
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger.SetDebug(cfg.Debug)
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("prehrajto", Version)
	},
}
