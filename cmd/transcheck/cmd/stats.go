// Copyright 2024 The transitivity authors.
// License MIT: http://opensource.org/licenses/MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kvgraph/transitivity"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print component and range-pool statistics for a graph",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := viper.GetString("graph")
		if path == "" {
			return fmt.Errorf("--graph (or config key \"graph\") is required")
		}
		al, err := loadGraph(path)
		if err != nil {
			return err
		}
		dg := al.AsDigraph()

		logger.Info("building compact closure over %d nodes", dg.NodeSize())
		cc := transitivity.BuildCompactClosure(dg)

		fmt.Printf("nodes:              %d\n", dg.NodeSize())
		fmt.Printf("edges:              %d\n", dg.EdgeSize())
		fmt.Printf("components:         %d\n", cc.ComponentCount())
		var ranges int
		for q := int32(0); q < int32(cc.ComponentCount()); q++ {
			ranges += cc.RangeCount(q)
		}
		fmt.Printf("total range count:  %d\n", ranges)
		return nil
	},
}
