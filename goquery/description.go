// Package goquery implements the API documentation scraping of the
// showcase using goquery selectors.
package goquery

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/showcase"
)

// CSS selectors for the javadoc page layout.
const (
	descriptionSelector = ".description>ul>li"
	blockSelector       = ".block"
	linkSelector        = "a[href]"
	seeAlsoSelector     = "dt:has(.seeLabel)+dd a:has(code)"
)

// Ensure DescriptionLoader implements showcase.DescriptionLoader at compile time.
var _ showcase.DescriptionLoader = (*DescriptionLoader)(nil)

// DescriptionLoader loads page descriptions from javadoc pages.
type DescriptionLoader struct {
	fetcher showcase.Fetcher
	baseURL string
}

// NewDescriptionLoader creates a DescriptionLoader fetching javadoc pages
// below baseURL, which should end with a slash.
func NewDescriptionLoader(fetcher showcase.Fetcher, baseURL string) *DescriptionLoader {
	return &DescriptionLoader{
		fetcher: fetcher,
		baseURL: baseURL,
	}
}

// LoadDescription implements showcase.DescriptionLoader.
func (l *DescriptionLoader) LoadDescription(ctx context.Context, apiPaths []string) (*showcase.Description, error) {
	if len(apiPaths) != 1 {
		return &showcase.Description{APIPaths: slices.Clone(apiPaths)}, nil
	}

	qualified := showcase.APIPackagePath + apiPaths[0]
	pageURL := l.baseURL + qualified + ".html"

	html, err := l.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("unable to load description of %s: %w", pageURL, err)
	}

	description, seeAlso, err := ScrapeDescription(html, pageURL)
	if err != nil {
		return nil, fmt.Errorf("unable to load description of %s: %w", pageURL, err)
	}

	return &showcase.Description{
		HTML:     description,
		APIPaths: append([]string{qualified}, seeAlso...),
	}, nil
}

// ScrapeDescription extracts the description blocks of a javadoc page.
// Links are made absolute against pageURL and code samples are marked up
// for syntax highlighting. It also returns the API paths referenced from
// the "See Also" section.
func ScrapeDescription(html, pageURL string) (string, []string, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return "", nil, showcase.Errorf(showcase.EINVALID, "invalid page URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", nil, showcase.Errorf(showcase.EINVALID, "failed to parse HTML: %v", err)
	}

	description := doc.Find(descriptionSelector)
	blocks := description.Find(blockSelector)

	description.Find(linkSelector).Each(func(_ int, link *goquery.Selection) {
		href, _ := link.Attr("href")
		link.SetAttr("href", absURL(base, href))
	})

	blocks.Find("pre").Each(func(_ int, pre *goquery.Selection) {
		pre.AddClass("prettyprint")
		content, err := pre.Html()
		if err != nil {
			return
		}
		content = strings.ReplaceAll(strings.TrimSpace(content), "\n ", "\n")
		pre.SetHtml("<code class='lang-" + codeType(content) + "'>" + content + "</code>")
	})

	var seeAlso []string
	description.Find(seeAlsoSelector).Each(func(_ int, link *goquery.Selection) {
		href, _ := link.Attr("href")
		if p, ok := apiPath(href); ok {
			seeAlso = append(seeAlso, p)
		}
	})

	var parts []string
	var renderErr error
	blocks.EachWithBreak(func(_ int, block *goquery.Selection) bool {
		h, err := goquery.OuterHtml(block)
		if err != nil {
			renderErr = err
			return false
		}
		parts = append(parts, h)
		return true
	})
	if renderErr != nil {
		return "", nil, renderErr
	}

	return strings.Join(parts, "\n"), seeAlso, nil
}

// codeType guesses the language of an escaped code sample.
func codeType(content string) string {
	if strings.HasPrefix(content, "&lt;") {
		return "xhtml"
	}
	return "java"
}

// apiPath returns the part of href from the API package path up to the
// file extension.
func apiPath(href string) (string, bool) {
	start := strings.Index(href, showcase.APIPackagePath)
	if start < 0 {
		return "", false
	}
	end := strings.LastIndex(href, ".")
	if end <= start+len(showcase.APIPackagePath) {
		return "", false
	}
	return href[start:end], true
}

func absURL(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
