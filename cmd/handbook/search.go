package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/handbook"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	query := strings.Join(c.Query, " ")

	m, ok := handbook.Resolve(deps.Catalog, query)
	if !ok {
		fmt.Fprintf(deps.Stderr, "error: no section matches %q. Use 'handbook sections' to see available sections.\n", query)
		return handbook.Errorf(handbook.ENOTFOUND, "no section matches %q", query)
	}
	deps.Logger.Info("search", "query", query, "section", m.ID, "rule", m.Rule)

	fmt.Fprintf(deps.Stdout, "%s\t%s\t%s\n", m.ID, deps.Catalog.Label(m.ID), m.Rule)
	return nil
}
