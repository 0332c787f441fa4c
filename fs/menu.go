package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/showcase"
)

// DefaultShowcaseDir is the directory below the web root holding the page
// templates, one sub directory per menu category.
const DefaultShowcaseDir = "showcase"

const templateExt = ".xhtml"

// Ensure MenuBuilder implements showcase.MenuBuilder at compile time.
var _ showcase.MenuBuilder = (*MenuBuilder)(nil)

// MenuBuilder builds the showcase menu from the directory layout of the web
// root: each category directory becomes a menu-only page and each template
// inside it a page.
type MenuBuilder struct {
	root string
	dir  string
}

// NewMenuBuilder creates a MenuBuilder scanning root/showcase.
func NewMenuBuilder(root string) *MenuBuilder {
	return &MenuBuilder{root: root, dir: DefaultShowcaseDir}
}

// BuildMenu scans the showcase directory. Categories and pages are ordered
// by name; hidden entries are skipped.
func (b *MenuBuilder) BuildMenu(ctx context.Context) (*showcase.Menu, error) {
	categories, err := os.ReadDir(filepath.Join(b.root, b.dir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, showcase.Errorf(showcase.ENOTFOUND, "showcase directory %q not found", b.dir)
		}
		return nil, err
	}

	menu := showcase.NewNode[*showcase.Page](nil)

	for _, category := range categories {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !category.IsDir() || isHidden(category.Name()) {
			continue
		}

		entries, err := os.ReadDir(filepath.Join(b.root, b.dir, category.Name()))
		if err != nil {
			return nil, err
		}

		node := menu.AddChild(showcase.NewPage("", "", category.Name()))
		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() || isHidden(name) || !strings.HasSuffix(name, templateExt) {
				continue
			}

			viewID := "/" + b.dir + "/" + category.Name() + "/" + name
			node.AddChild(showcase.NewPage(viewID, viewID, strings.TrimSuffix(name, templateExt)))
		}
	}

	return menu, nil
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
