// Copyright 2024 The transitivity authors.
// License MIT: http://opensource.org/licenses/MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kvgraph/transitivity"
)

var acyclicFlag bool

var reduceCmd = &cobra.Command{
	Use:   "reduce",
	Short: "Compute a transitive reduction and report the edges removed",
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

		if acyclicFlag {
			reduced, removed := transitivity.AcyclicReduce(dg)
			logger.Info("acyclic reduce: kept %d edges, removed %d", reduced.EdgeSize(), len(removed))
			for _, e := range removed {
				fmt.Printf("removed %d -> %d\n", e.From, e.To)
			}
			return nil
		}

		reduced, removed, added, _ := transitivity.ReduceGraph(dg)
		logger.Info("reduce: kept %d edges, removed %d, added %d to restore cycles",
			reduced.EdgeSize(), len(removed), len(added))
		for _, e := range removed {
			fmt.Printf("removed %d -> %d\n", e.From, e.To)
		}
		for _, e := range added {
			fmt.Printf("added   %d -> %d\n", e.From, e.To)
		}
		return nil
	},
}

func init() {
	reduceCmd.Flags().BoolVar(&acyclicFlag, "acyclic", false, "assume the graph is already acyclic")
}
