package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joescharf/bugdesk/internal/client"
	"github.com/joescharf/bugdesk/internal/markdown"
	"github.com/joescharf/bugdesk/internal/output"
)

// Package-level shared dependencies, initialized in cobra.OnInitialize.
var (
	ui *output.UI

	verbose bool
	dryRun  bool
)

var rootCmd = &cobra.Command{
	Use:   "bugdesk",
	Short: "AI code review viewer and bug tracker",
	Long: `bugdesk is the client for an AI code review and bug tracking backend.
It submits code for review, manages the bug board, charts bug insights and
exports filtered reports.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	DisableAutoGenTag: true,
}

// Execute is the main entry point called from main.go.
func Execute(version, commit, date string) {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	if err := rootCmd.Execute(); err != nil {
		var shown *reportedError
		if !errors.As(err, &shown) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig, initDeps)

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return rootRun(cmd)
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false, "Show what would happen without making changes")
	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.config/bugdesk/config.yaml)")
	rootCmd.PersistentFlags().String("server", "", "Backend URL (overrides server.url)")
	_ = viper.BindPFlag("server.url", rootCmd.PersistentFlags().Lookup("server"))
}

func initConfig() {
	// If --config is explicitly set, use that file
	if cfgFile, _ := rootCmd.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot find home directory: %v\n", err)
			os.Exit(1)
		}

		viper.AddConfigPath(filepath.Join(home, ".config", "bugdesk"))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("BUGDESK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	// Read config file if it exists (optional)
	_ = viper.ReadInConfig()
}

func setDefaults() {
	viper.SetDefault("server.url", "http://localhost:8080")
	viper.SetDefault("page", "")
	viper.SetDefault("review.language", "java")
	viper.SetDefault("review.style", "monokai")
	viper.SetDefault("email.subject", "AI Code Review Result")
	viper.SetDefault("reports.export_dir", ".")
	viper.SetDefault("insights.svg_dir", "")
}

func initDeps() {
	ui = output.New()
	ui.Verbose = verbose
	ui.DryRun = dryRun
}

// rootRun handles `bugdesk` with no subcommand: open the configured page,
// or show help when none is configured.
func rootRun(cmd *cobra.Command) error {
	if viper.GetString("page") == "" {
		return cmd.Help()
	}
	return openRun(cmd.Context(), "")
}

// newClient returns a backend client for the configured server. Requests
// are traced when --verbose is set.
func newClient() *client.Client {
	return client.New(viper.GetString("server.url"), client.WithLogger(ui))
}

func newRenderer() *markdown.Renderer {
	return markdown.New(viper.GetString("review.style"))
}
