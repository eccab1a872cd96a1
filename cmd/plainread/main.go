// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the plainread CLI, which translates
// academic documents into plain language with accessibility adaptations.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/plainread/plainread/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the plainread CLI.
var rootCmd = &cobra.Command{
	Use:   "plainread",
	Short: "Translate academic documents into plain, accessible language",
	Long: `plainread turns academic papers, studies, and technical documents into
plain language. It classifies the subject area, rewrites statistical notation
and jargon into everyday words, and applies accessibility modules for
different kinds of readers (ADHD, dyslexia, autism, visual learners, and
more).

Translate a document with the translate subcommand; browse saved results
with archive. The modules and subjects subcommands list what is available.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./plainread.yaml or ~/.config/plainread/plainread.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("plainread")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "plainread"))
		}
	}

	viper.SetEnvPrefix("PLAINREAD")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig assembles the pipeline configuration from viper, with defaults
// applied by the consuming components.
func loadConfig() types.PipelineConfig {
	var cfg types.PipelineConfig
	cfg.Ingest.Timeout = viper.GetDuration("ingest.timeout")
	cfg.Ingest.UserAgent = viper.GetString("ingest.user_agent")
	cfg.Ingest.MinLength = viper.GetInt("ingest.min_length")
	cfg.Ingest.MaxRetries = viper.GetInt("ingest.max_retries")
	cfg.Jargon.OverlayFiles = viper.GetStringSlice("jargon.overlay_files")
	cfg.Modules.Defaults = viper.GetStringSlice("modules.defaults")
	cfg.Report.OutputDir = viper.GetString("report.output_dir")
	cfg.Archive.DatabasePath = viper.GetString("archive.database_path")
	cfg.Archive.MaxResults = viper.GetInt("archive.max_results")
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
