// Copyright 2024 The transitivity authors.
// License MIT: http://opensource.org/licenses/MIT

// Command transcheck loads a digraph from a YAML file and exercises the
// transitivity package's query and reduction operations against it.
package main

import "github.com/kvgraph/transitivity/cmd/transcheck/cmd"

func main() {
	cmd.Execute()
}
