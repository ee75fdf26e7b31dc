package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile      string
	keywordsPath string
)

var RootCmd = &cobra.Command{
	Use:   "data-profiler",
	Short: "Infer column types of raw tabular files and emit warehouse DDL",
	Long: `data-profiler 🔎 - Tabular Type Detection & Schema Generator

Reads a raw CSV/TXT/JSON file, runs the ordered type detection pipeline
(empty → forced-text → numeric → date → [boolean] → categorical → text)
and emits a schema report plus CREATE TABLE DDL for Oracle or BigQuery.`,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./data-profiler.yaml)")
	RootCmd.PersistentFlags().StringVar(&keywordsPath, "keywords", "", "keyword config YAML (text keywords, boolean literals, thresholds)")

	viper.BindPFlag("detection.keywords", RootCmd.PersistentFlags().Lookup("keywords"))
	viper.SetDefault("detection.keywords", "config/column_keywords.yaml")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// 1. Executable Directory (Priority 1)
		ex, err := os.Executable()
		if err == nil {
			viper.AddConfigPath(filepath.Dir(ex))
		}

		// 2. Current Directory (Priority 2)
		viper.AddConfigPath(".")

		viper.SetConfigName("data-profiler")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
