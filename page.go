package showcase

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

type loadState int

const (
	stateUnloaded loadState = iota
	stateLoading
	stateLoaded
)

// Page represents one showcase demo screen. Pages are created eagerly when
// the menu is built, with only their path, view ID and title. The remaining
// content is loaded once, on first use, by LoadIfNecessary.
//
// A Page is safe for concurrent use.
type Page struct {
	path   string
	viewID string
	title  string

	mu            sync.RWMutex
	state         loadState
	description   string
	sources       []Source
	documentation *Documentation
}

// NewPage returns an unloaded page. An empty path denotes a menu-only page
// without a backing template; such a page never loads content.
func NewPage(path, viewID, title string) *Page {
	return &Page{
		path:   path,
		viewID: viewID,
		title:  title,
	}
}

// LoadIfNecessary loads the page content through loader unless it was
// loaded before, is being loaded by another caller, or the page has no
// template. In those cases it returns nil immediately.
//
// On failure the page stays unloaded and the error is returned, so a later
// call retries from scratch. Content is only made visible once the whole
// load succeeded.
func (p *Page) LoadIfNecessary(ctx context.Context, loader ContentLoader) error {
	p.mu.Lock()
	if p.state != stateUnloaded || p.path == "" {
		p.mu.Unlock()
		return nil
	}
	p.state = stateLoading
	p.mu.Unlock()

	committed := false
	defer func() {
		if !committed {
			p.mu.Lock()
			p.state = stateUnloaded
			p.mu.Unlock()
		}
	}()

	content, err := loader.LoadContent(ctx, p)
	if err != nil {
		return err
	}
	if content == nil {
		content = &Content{}
	}

	p.mu.Lock()
	p.description = content.Description
	p.sources = slices.Clone(content.Sources)
	p.documentation = content.Documentation
	p.state = stateLoaded
	p.mu.Unlock()
	committed = true

	return nil
}

// Loaded reports whether the page content has been loaded.
func (p *Page) Loaded() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state == stateLoaded
}

// Path returns the template path of the page.
func (p *Page) Path() string {
	return p.path
}

// ViewID returns the view identifier of the page.
func (p *Page) ViewID() string {
	return p.viewID
}

// Title returns the title of the page.
func (p *Page) Title() string {
	return p.title
}

// Description returns the description HTML, or an empty string if the page
// has none or is not loaded.
func (p *Page) Description() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.description
}

// Sources returns the source snippets of the page in display order.
func (p *Page) Sources() []Source {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.sources)
}

// Documentation returns the documentation paths of the page, or nil if the
// page has none or is not loaded.
func (p *Page) Documentation() *Documentation {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.documentation
}

// Equal reports whether p and other denote the same page. Pages are
// identified by title; a page without a title only equals itself.
func (p *Page) Equal(other *Page) bool {
	if p == nil || other == nil || p.title == "" {
		return p == other
	}
	return p.title == other.title
}

// String implements fmt.Stringer.
func (p *Page) String() string {
	return fmt.Sprintf("Page[title=%s,viewId=%s]", p.title, p.viewID)
}
