package showcase

import (
	"context"
	"fmt"
	"strings"
)

const (
	demoMetaStart = `<ui:define name="demo-meta">`
	demoStart     = `<ui:define name="demo">`
	defineEnd     = `</ui:define>`

	// Demo blocks are nested two levels deep in their template.
	demoIndent = "\n        "

	sourceRoot = "/WEB-INF/"
)

// Source represents a source code snippet shown alongside a page.
type Source struct {
	Title string `json:"title"`
	Type  string `json:"type"`
	Code  string `json:"code"`
}

// LoadSources loads the source snippets of the page whose template lives at
// pagePath. The demo and demo-meta blocks of the template come first as a
// single "Demo" source, followed by srcPaths in declaration order.
//
// Missing resources do not fail the load; their code is a placeholder
// message instead.
func LoadSources(ctx context.Context, resources ResourceLoader, pagePath string, srcPaths []string) ([]Source, error) {
	sources := make([]Source, 0, 1+len(srcPaths))

	template, err := loadSourceCode(ctx, resources, pagePath)
	if err != nil {
		return nil, err
	}

	if demo, ok := ExtractDemoSource(template); ok {
		sources = append(sources, demo)
	}

	for _, srcPath := range srcPaths {
		path := srcPath
		if !strings.HasPrefix(path, "/") {
			path = sourceRoot + path
		}

		code, err := loadSourceCode(ctx, resources, path)
		if err != nil {
			return nil, err
		}

		sources = append(sources, Source{
			Title: SourceTitle(srcPath),
			Type:  SourceType(srcPath),
			Code:  code,
		})
	}

	return sources, nil
}

// ExtractDemoSource carves the demo-meta and demo blocks out of a page
// template. It returns false when the template has neither block.
func ExtractDemoSource(template string) (Source, bool) {
	var b strings.Builder

	if meta, ok := defineBlock(template, demoMetaStart); ok {
		b.WriteString(meta)
		b.WriteString("\n\n")
	}

	if demo, ok := defineBlock(template, demoStart); ok {
		b.WriteString(demo)
	}

	if b.Len() == 0 {
		return Source{}, false
	}

	code := strings.TrimSpace(strings.ReplaceAll(b.String(), demoIndent, "\n"))
	return Source{Title: "Demo", Type: "xhtml", Code: code}, true
}

// defineBlock returns the trimmed content between the first occurrence of
// start and the following </ui:define>. A start marker followed by nothing
// but further start markers does not count as a block.
func defineBlock(template, start string) (string, bool) {
	_, rest, found := strings.Cut(template, start)
	if !found || strings.ReplaceAll(rest, start, "") == "" {
		return "", false
	}

	block, _, _ := strings.Cut(rest, start)
	block, _, _ = strings.Cut(block, defineEnd)
	return strings.TrimSpace(block), true
}

// SourceTitle derives the display title of a source file: its base name,
// with the extension stripped for Java sources.
func SourceTitle(path string) string {
	title := path
	if i := strings.LastIndex(title, "/"); i >= 0 {
		title = title[i+1:]
	}
	if strings.HasSuffix(title, ".java") {
		title = title[:strings.Index(title, ".")]
	}
	return title
}

// SourceType derives the syntax highlighting type of a source file from its
// extension.
func SourceType(path string) string {
	return path[strings.LastIndex(path, ".")+1:]
}

// ExpandTabs replaces each tab with four spaces. Browsers render tabs in
// preformatted text eight columns wide.
func ExpandTabs(code string) string {
	return strings.ReplaceAll(code, "\t", "    ")
}

func loadSourceCode(ctx context.Context, resources ResourceLoader, path string) (string, error) {
	data, err := resources.LoadResource(ctx, path)
	if ErrorCode(err) == ENOTFOUND {
		return "Source code is not available at " + path, nil
	} else if err != nil {
		return "", fmt.Errorf("unable to load source code of %s: %w", path, err)
	}
	return ExpandTabs(string(data)), nil
}
