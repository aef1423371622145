package main

import (
	"fmt"
	"text/tabwriter"
)

// Run executes the sections command.
func (c *SectionsCmd) Run(deps *Dependencies) error {
	w := tabwriter.NewWriter(deps.Stdout, 0, 4, 2, ' ', 0)
	for i, id := range deps.Catalog.IDs() {
		marker := " "
		if id == deps.Landing {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %d.\t%s\t%s\n", marker, i+1, id, deps.Catalog.Label(id))
	}
	return w.Flush()
}
