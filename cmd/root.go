// Package cmd implements the command-line interface for dealwatch.
// It provides the root command and the report subcommand.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joho/godotenv"
	"github.com/jonesrussell/dealwatch/cmd/report"
	"github.com/jonesrussell/dealwatch/internal/classify"
	"github.com/jonesrussell/dealwatch/internal/config"
)

var (
	// cfgFile holds the path to the configuration file.
	cfgFile string

	// Debug enables debug mode for all commands.
	Debug bool

	// rootCmd represents the root command for the dealwatch CLI.
	rootCmd = &cobra.Command{
		Use:   "dealwatch",
		Short: "Cannabis-industry deal mention aggregator",
		Long: `dealwatch aggregates recent news and regulatory-filing mentions of
cannabis-industry corporate transactions, classifies and deduplicates them,
and writes a ranked CSV and JSON report.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
)

// Execute runs the root command.
func Execute() error {
	// Load .env file early so environment variables are available
	_ = godotenv.Load()

	// Parse flags early to get the debug flag before creating the logger
	_ = rootCmd.ParseFlags(os.Args[1:])

	if err := initConfig(); err != nil {
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}

	return rootCmd.ExecuteContext(context.Background())
}

// init initializes the root command and its subcommands.
func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"config file (default is ./config.yaml)",
	)
	rootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "enable debug mode")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("dealwatch version %s\n", viper.GetString("app.version"))
		},
	})

	rootCmd.AddCommand(report.Command())
}

// initConfig reads in the config file and environment variables if set.
func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	// Environment variables take precedence over defaults
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	// Config file is optional: defaults and environment variables suffice
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Config file not found: %v (using defaults and environment variables)\n", err)
	}

	if err := bindEnvVars(); err != nil {
		return err
	}

	if err := viper.BindPFlag("app.debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		return fmt.Errorf("failed to bind debug flag: %w", err)
	}

	setupDevelopmentLogging()

	return nil
}

// bindEnvVars maps environment variables to config keys.
func bindEnvVars() error {
	if err := viper.BindEnv("app.environment", "APP_ENV"); err != nil {
		return fmt.Errorf("failed to bind APP_ENV: %w", err)
	}
	if err := viper.BindEnv("logger.level", "LOG_LEVEL"); err != nil {
		return fmt.Errorf("failed to bind LOG_LEVEL: %w", err)
	}
	if err := viper.BindEnv("logger.encoding", "LOG_FORMAT"); err != nil {
		return fmt.Errorf("failed to bind LOG_FORMAT: %w", err)
	}
	// The news search credential is a soft requirement: when absent the
	// primary news adapter returns no results instead of failing the run.
	if err := viper.BindEnv("sources.newsapi.key", "NEWS_SEARCH_API_KEY", "BING_NEWS_KEY"); err != nil {
		return fmt.Errorf("failed to bind news search API key: %w", err)
	}
	if err := viper.BindEnv("sources.newsapi.endpoint", "NEWS_SEARCH_ENDPOINT"); err != nil {
		return fmt.Errorf("failed to bind news search endpoint: %w", err)
	}
	if err := viper.BindEnv("sources.longtail.endpoint", "LONGTAIL_ENDPOINT"); err != nil {
		return fmt.Errorf("failed to bind long-tail endpoint: %w", err)
	}
	return nil
}

// setupDevelopmentLogging configures logging based on environment and the
// debug flag.
func setupDevelopmentLogging() {
	debugFlag := Debug || viper.GetBool("app.debug")
	isDev := viper.GetString("app.environment") == "development"

	if debugFlag {
		viper.Set("logger.level", "debug")
	}

	if isDev {
		viper.Set("logger.development", true)
		viper.Set("logger.encoding", "console")
	}

	Debug = debugFlag
}

// setDefaults sets default configuration values.
func setDefaults() {
	viper.SetDefault("app", map[string]any{
		"name":        "dealwatch",
		"version":     "1.0.0",
		"environment": "production",
		"debug":       false,
	})

	viper.SetDefault("logger", map[string]any{
		"level":       "info",
		"encoding":    "json",
		"development": false,
	})

	viper.SetDefault("report", map[string]any{
		"since_days": config.DefaultSinceDays,
		"csv_path":   config.DefaultCSVPath,
		"json_path":  config.DefaultJSONPath,
	})

	viper.SetDefault("sources", map[string]any{
		"filing_feeds":    config.DefaultFilingFeeds(),
		"news_feeds":      []string{},
		"user_agent":      config.DefaultUserAgent,
		"request_timeout": config.DefaultRequestTimeout.String(),
		"newsapi": map[string]any{
			"endpoint": "https://api.bing.microsoft.com/v7.0/news/search",
		},
		"longtail": map[string]any{
			"endpoint": "",
		},
	})

	viper.SetDefault("vocabulary", map[string]any{
		"cannabis_terms":       classify.DefaultCannabisTerms(),
		"deal_terms":           classify.DefaultDealTerms(),
		"entity_split_phrases": classify.DefaultEntitySplitPhrases(),
	})
}
