package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/handbook"
	"github.com/fwojciec/handbook/viper"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Config    *viper.Config
	Catalog   *handbook.Catalog
	Landing   handbook.SectionID
	Logger    *slog.Logger
	Navigator handbook.Navigator
	Pages     handbook.PageService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config   string `type:"path" env:"HANDBOOK_CONFIG" help:"Config file (default: $XDG_CONFIG_HOME/handbook/config.toml)"`
	LogLevel string `name:"log-level" help:"Log level (debug, info, warn, error)"`
	LogFile  string `name:"log-file" type:"path" help:"Write logs to this file"`

	Browse   BrowseCmd   `cmd:"" help:"Browse the guide interactively"`
	Sections SectionsCmd `cmd:"" help:"List sections in sidebar order"`
	Search   SearchCmd   `cmd:"" help:"Find the section a query navigates to"`
	Show     ShowCmd     `cmd:"" help:"Print the page of a section"`
	Export   ExportCmd   `cmd:"" help:"Write every page as Markdown into a directory"`
}

// BrowseCmd is the "browse" subcommand.
type BrowseCmd struct {
	Section string `short:"s" help:"Section to open instead of the landing section"`
}

// SectionsCmd is the "sections" subcommand.
type SectionsCmd struct{}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query []string `arg:"" help:"Search text"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Query   []string `arg:"" help:"Section id or search text"`
	Outline bool     `short:"o" help:"Print headings only"`
	Width   int      `short:"w" default:"0" help:"Wrap text at this width (0 disables wrapping)"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir         string `arg:"" type:"path" help:"Output directory"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent render limit"`
}
