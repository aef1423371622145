package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/handbook"
	"github.com/fwojciec/handbook/bubbletea"
	"github.com/fwojciec/handbook/guide"
)

// Run executes the browse command.
func (c *BrowseCmd) Run(deps *Dependencies) error {
	start, err := startSection(deps, c.Section)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", handbook.ErrorMessage(err))
		return err
	}

	model := bubbletea.New(deps.Ctx, bubbletea.Config{
		Navigator:   deps.Navigator,
		Catalog:     deps.Catalog,
		Pages:       deps.Pages,
		Session:     handbook.NewSession(start),
		Title:       guide.Title,
		Subtitle:    guide.Subtitle,
		Tagline:     guide.Tagline,
		Placeholder: guide.SearchPlaceholder,
		StatusTTL:   deps.Config.UI.StatusTTL,
		Mouse:       deps.Config.UI.Mouse,
	})

	opts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(deps.Ctx),
		tea.WithOutput(deps.Stdout),
	}
	if deps.Config.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	deps.Logger.Info("browse", "section", start)
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}
	return nil
}

// startSection returns the section named by the flag, or the landing
// section when the flag is empty.
func startSection(deps *Dependencies, name string) (handbook.SectionID, error) {
	if name == "" {
		return deps.Landing, nil
	}
	id, err := handbook.ParseSectionID(name)
	if err != nil {
		return 0, err
	}
	if !deps.Catalog.Has(id) {
		return 0, handbook.Errorf(handbook.ENOTFOUND, "section %s is not in the catalog", id)
	}
	return id, nil
}
