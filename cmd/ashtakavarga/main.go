// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Command ashtakavarga prints Ashtakavarga tables for charts stored as
// YAML or JSON files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const version = "0.1.0"

var logger *zap.Logger

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ashtakavarga",
		Short: "Ashtakavarga strength tables",
		Long:  "ashtakavarga reads chart positions from a file and prints Bhinnashtakavarga, Sarvashtakavarga, house, Kaksha Bala and transit tables.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if viper.GetBool("verbose") {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		SilenceUsage: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().StringP("chart", "c", "", "Chart file (YAML or JSON)")
	rootCmd.PersistentFlags().StringP("format", "f", "json", "Output format: json or table")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log computations at debug level")
	rootCmd.PersistentFlags().Int("concurrency", 4, "Charts analyzed in parallel by batch")

	// Bind flags to viper.
	viper.BindPFlag("chart", rootCmd.PersistentFlags().Lookup("chart"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("concurrency", rootCmd.PersistentFlags().Lookup("concurrency"))

	// Env vars: ASHTAKAVARGA_CHART, ASHTAKAVARGA_FORMAT, etc.
	viper.SetEnvPrefix("ASHTAKAVARGA")
	viper.AutomaticEnv()

	// Config file.
	viper.SetConfigName(".ashtakavarga")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.ReadInConfig() // Ignore error; config file is optional.

	rootCmd.AddCommand(newBhinnaCmd())
	rootCmd.AddCommand(newSarvaCmd())
	rootCmd.AddCommand(newHousesCmd())
	rootCmd.AddCommand(newHouseStrengthCmd())
	rootCmd.AddCommand(newKakshaCmd())
	rootCmd.AddCommand(newTransitCmd())
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newBatchCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// newVersionCmd creates the "version" command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print ashtakavarga version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ashtakavarga %s\n", version)
		},
	}
}
