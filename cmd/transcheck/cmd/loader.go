// Copyright 2024 The transitivity authors.
// License MIT: http://opensource.org/licenses/MIT

package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kvgraph/transitivity"
)

// graphFile is the on-disk YAML shape:
//
//	nodes: 6
//	edges:
//	  - [0, 1]
//	  - [1, 2]
type graphFile struct {
	Nodes int     `yaml:"nodes"`
	Edges [][]int `yaml:"edges"`
}

func loadGraph(path string) (transitivity.AdjacencyList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading graph file: %w", err)
	}
	var gf graphFile
	if err := yaml.Unmarshal(data, &gf); err != nil {
		return nil, fmt.Errorf("parsing graph file: %w", err)
	}

	al := make(transitivity.AdjacencyList, gf.Nodes)
	for _, e := range gf.Edges {
		if len(e) != 2 {
			return nil, fmt.Errorf("edge %v must have exactly 2 endpoints", e)
		}
		from, to := e[0], e[1]
		if from < 0 || from >= gf.Nodes || to < 0 || to >= gf.Nodes {
			return nil, fmt.Errorf("edge (%d,%d) references a node outside 0..%d", from, to, gf.Nodes-1)
		}
		al[from] = append(al[from], transitivity.NI(to))
	}
	return al, nil
}
