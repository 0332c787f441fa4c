package main

import (
	"fmt"

	"github.com/fwojciec/showcase"
	"github.com/fwojciec/showcase/fs"
)

// Run executes the page command.
func (c *PageCmd) Run(deps *Dependencies) error {
	menu, err := deps.Menus.BuildMenu(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", showcase.ErrorMessage(err))
		return err
	}

	page := showcase.FindPage(menu, c.ViewID)
	if page == nil {
		err := showcase.Errorf(showcase.ENOTFOUND, "page %q not found", c.ViewID)
		fmt.Fprintf(deps.Stderr, "error: %s\n", showcase.ErrorMessage(err))
		return err
	}

	if err := page.LoadIfNecessary(deps.Ctx, deps.Loader); err != nil {
		fmt.Fprintf(deps.Stderr, "error loading %s: %v\n", page.ViewID(), err)
		return err
	}

	md, err := fs.FormatPage(page, deps.Converter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprint(deps.Stdout, md)
	return nil
}
