package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/showcase"
)

// Run executes the menu command.
func (c *MenuCmd) Run(deps *Dependencies) error {
	menu, err := deps.Menus.BuildMenu(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", showcase.ErrorMessage(err))
		return err
	}

	if menu.IsLeaf() {
		fmt.Fprintln(deps.Stdout, "No pages found.")
		return nil
	}

	menu.Walk(func(node *showcase.Menu) bool {
		page := node.Value()
		if page == nil {
			return true
		}
		indent := strings.Repeat("  ", node.Level()-1)
		if page.ViewID() == "" {
			fmt.Fprintf(deps.Stdout, "%s%s\n", indent, page.Title())
		} else {
			fmt.Fprintf(deps.Stdout, "%s%s  %s\n", indent, page.Title(), page.ViewID())
		}
		return true
	})

	return nil
}
