// Package cli implements the command line interface: case registration,
// analysis, role reports, batch processing and the interactive menu.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/BlackGhostx-netizen/justice-ai-assistant/internal/model"
	"github.com/BlackGhostx-netizen/justice-ai-assistant/internal/pipeline"
	"github.com/BlackGhostx-netizen/justice-ai-assistant/internal/rules"
	"github.com/BlackGhostx-netizen/justice-ai-assistant/internal/store"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "justice-ai-assistant",
	Short: "Case registry and rule-based legal case analysis",
	Long: `justice-ai-assistant keeps a registry of legal cases and produces
advisory analyses from static reference tables.

For every case it derives a category, a keyword-based risk estimate,
reference rulings, applicable norms and detected evidence
contradictions, then shapes the result for an adjudicator, advocate
or prosecutor audience.

All output is advisory material generated from fixed rules. It is not
legal advice and decides nothing.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number and build information for justice-ai-assistant.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("justice-ai-assistant v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.justice-ai-assistant/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(filepath.Join(home, ".justice-ai-assistant"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match JUSTICE_*
	viper.SetEnvPrefix("JUSTICE")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig builds the effective configuration: defaults overlaid with
// whatever the config file and environment provide.
func loadConfig() *model.Config {
	cfg := model.DefaultConfig()
	err := viper.Unmarshal(cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "yaml"
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring malformed configuration: %v\n", err)
		return model.DefaultConfig()
	}
	cfg.Output.Verbose = verbose || cfg.Output.Verbose
	return cfg
}

// loadRules returns the rule tables, reading the override file when one
// is configured.
func loadRules(cfg *model.Config) (*rules.RuleSet, error) {
	if cfg.Rules.Path == "" {
		return rules.Default(), nil
	}
	rs, err := rules.Load(cfg.Rules.Path)
	if err != nil {
		return nil, fmt.Errorf("load rule tables: %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Using rule tables: %s\n", cfg.Rules.Path)
	}
	return rs, nil
}

// setup assembles the pipeline every command runs on. Callers own the
// returned store and must close it.
func setup() (*pipeline.Pipeline, store.Store, *model.Config, error) {
	cfg := loadConfig()

	rs, err := loadRules(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	st, err := store.Open(*cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open store: %w", err)
	}

	return pipeline.New(cfg, rs, st), st, cfg, nil
}
