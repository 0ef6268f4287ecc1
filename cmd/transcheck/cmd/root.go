// Copyright 2024 The transitivity authors.
// License MIT: http://opensource.org/licenses/MIT

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kvgraph/transitivity"
)

var (
	cfgFile string
	verbose bool
	logger  transitivity.Logger
)

var rootCmd = &cobra.Command{
	Use:   "transcheck",
	Short: "Inspect the reachability structure of a digraph",
	Long: `transcheck loads a digraph described in YAML and runs the
transitivity package's strongly-connected-components, compact-closure,
and reduction operations against it, reporting the results on stdout.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := transitivity.LevelInfo
		if verbose {
			level = transitivity.LevelDebug
		}
		logger = transitivity.NewDefaultLogger(level, os.Stderr)
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
			if err := viper.ReadInConfig(); err != nil {
				return fmt.Errorf("reading config %s: %w", cfgFile, err)
			}
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (overrides the --graph default)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().String("graph", "", "path to a YAML graph file")
	viper.BindPFlag("graph", rootCmd.PersistentFlags().Lookup("graph"))
	viper.SetEnvPrefix("TRANSCHECK")
	viper.AutomaticEnv()

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(reachesCmd)
	rootCmd.AddCommand(reduceCmd)
}

// GetLogger returns the logger configured by the root command's
// PersistentPreRunE.
func GetLogger() transitivity.Logger { return logger }
