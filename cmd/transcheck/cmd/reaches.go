// Copyright 2024 The transitivity authors.
// License MIT: http://opensource.org/licenses/MIT

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kvgraph/transitivity"
)

var reachesCmd = &cobra.Command{
	Use:   "reaches <u> <v>",
	Short: "Report whether v is reachable from u",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := viper.GetString("graph")
		if path == "" {
			return fmt.Errorf("--graph (or config key \"graph\") is required")
		}
		u, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid node id %q: %w", args[0], err)
		}
		v, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid node id %q: %w", args[1], err)
		}

		al, err := loadGraph(path)
		if err != nil {
			return err
		}
		dg := al.AsDigraph()
		cc := transitivity.BuildCompactClosure(dg)

		fmt.Println(cc.Reaches(transitivity.NI(u), transitivity.NI(v)))
		return nil
	},
}
