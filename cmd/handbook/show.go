package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/handbook"
	"github.com/muesli/reflow/wordwrap"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	query := strings.Join(c.Query, " ")
	session := handbook.NewSession(deps.Landing)

	// An exact section id wins over search.
	if id, err := handbook.ParseSectionID(query); err == nil && deps.Catalog.Has(id) {
		deps.Navigator.SetActive(session, id)
	} else if _, ok := deps.Navigator.ResolveAndActivate(session, query); !ok {
		fmt.Fprintf(deps.Stderr, "error: no section matches %q. Use 'handbook sections' to see available sections.\n", query)
		return handbook.Errorf(handbook.ENOTFOUND, "no section matches %q", query)
	}

	page, err := deps.Pages.FindPage(deps.Ctx, session.Active())
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", handbook.ErrorMessage(err))
		return err
	}

	var out string
	if c.Outline {
		out = handbook.FormatOutline(page)
		if out == "" {
			fmt.Fprintf(deps.Stderr, "%s has no headings\n", page.ID)
			return nil
		}
		out += "\n"
	} else {
		out = handbook.FormatPage(page)
	}
	if c.Width > 0 {
		out = wordwrap.String(out, c.Width)
	}

	fmt.Fprint(deps.Stdout, out)
	return nil
}
