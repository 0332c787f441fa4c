package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/showcase"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Menus     showcase.MenuBuilder
	Loader    showcase.ContentLoader
	Converter showcase.Converter
	Store     showcase.PageStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool          `short:"v" help:"Log fetches and page loads to stderr"`
	RPS     float64       `name:"rps" default:"2" help:"Documentation requests per second per host"`
	Timeout time.Duration `default:"10s" help:"Timeout of documentation requests"`

	Menu   MenuCmd   `cmd:"" help:"Show the showcase menu"`
	Page   PageCmd   `cmd:"" help:"Load a page and print it as Markdown"`
	Export ExportCmd `cmd:"" help:"Load every page and export the results"`
}

// MenuCmd is the "menu" subcommand.
type MenuCmd struct{}

// PageCmd is the "page" subcommand.
type PageCmd struct {
	ViewID string `arg:"" name:"view-id" help:"View ID of the page, e.g. /showcase/utils/Faces.xhtml"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir         string `short:"d" default:"showcase-export" help:"Output directory for Markdown files"`
	DB          string `name:"db" help:"Export into this SQLite database instead of Markdown files"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent page load limit"`
}
