package goquery_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fwojciec/showcase"
	"github.com/fwojciec/showcase/goquery"
	"github.com/fwojciec/showcase/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const facesURL = "https://omnifaces.org/docs/javadoc/current/org/omnifaces/util/Faces.html"

const facesJavadoc = `<!DOCTYPE html>
<html>
<body>
<div class="header"><h2 title="Class Faces">Class Faces</h2></div>
<div class="description">
<ul class="blockList">
<li class="blockList">
<div class="block">Collection of utility methods. See also <a href="Messages.html">Messages</a>.
<pre>
 Faces.getContext();
 Faces.redirect(url);
</pre></div>
<div class="block"><pre>&lt;o:form/&gt;</pre></div>
<dl>
<dt><span class="seeLabel">See Also:</span></dt>
<dd><a href="../../../org/omnifaces/util/Messages.html" title="class in org.omnifaces.util"><code>Messages</code></a>,
<a href="Servlets.html"><code>Servlets</code></a>,
<a href="https://docs.oracle.com/javaee/7/api/javax/faces/context/FacesContext.html"><code>FacesContext</code></a>,
<a href="../../../org/omnifaces/"><code>Package</code></a>,
<a href="Utils.html">Utils</a></dd>
</dl>
</li>
</ul>
</div>
<div class="block">Outside of the description.</div>
</body>
</html>`

func TestScrapeDescription(t *testing.T) {
	t.Parallel()

	t.Run("joins description blocks", func(t *testing.T) {
		t.Parallel()

		html, _, err := goquery.ScrapeDescription(facesJavadoc, facesURL)

		require.NoError(t, err)
		blocks := strings.Split(html, "\n<div class=\"block\">")
		require.Len(t, blocks, 2)
		assert.True(t, strings.HasPrefix(html, `<div class="block">Collection of utility methods.`))
		assert.NotContains(t, html, "Outside of the description")
		assert.NotContains(t, html, "seeLabel")
	})

	t.Run("makes links absolute", func(t *testing.T) {
		t.Parallel()

		html, _, err := goquery.ScrapeDescription(facesJavadoc, facesURL)

		require.NoError(t, err)
		assert.Contains(t, html, `<a href="https://omnifaces.org/docs/javadoc/current/org/omnifaces/util/Messages.html">Messages</a>`)
	})

	t.Run("marks up java code samples", func(t *testing.T) {
		t.Parallel()

		html, _, err := goquery.ScrapeDescription(facesJavadoc, facesURL)

		require.NoError(t, err)
		assert.Contains(t, html, `<pre class="prettyprint"><code class="lang-java">Faces.getContext();`+"\n"+`Faces.redirect(url);</code></pre>`)
	})

	t.Run("marks up xhtml code samples", func(t *testing.T) {
		t.Parallel()

		html, _, err := goquery.ScrapeDescription(facesJavadoc, facesURL)

		require.NoError(t, err)
		assert.Contains(t, html, `<pre class="prettyprint"><code class="lang-xhtml">&lt;o:form/&gt;</code></pre>`)
	})

	t.Run("collects see also API paths", func(t *testing.T) {
		t.Parallel()

		_, seeAlso, err := goquery.ScrapeDescription(facesJavadoc, facesURL)

		require.NoError(t, err)
		assert.Equal(t, []string{"org/omnifaces/util/Messages", "org/omnifaces/util/Servlets"}, seeAlso)
	})

	t.Run("returns empty description when page has none", func(t *testing.T) {
		t.Parallel()

		html, seeAlso, err := goquery.ScrapeDescription("<html><body><p>Nothing</p></body></html>", facesURL)

		require.NoError(t, err)
		assert.Empty(t, html)
		assert.Empty(t, seeAlso)
	})

	t.Run("rejects invalid page URL", func(t *testing.T) {
		t.Parallel()

		_, _, err := goquery.ScrapeDescription(facesJavadoc, "://invalid")

		require.Error(t, err)
		assert.Equal(t, showcase.EINVALID, showcase.ErrorCode(err))
	})
}

func TestDescriptionLoader_LoadDescription(t *testing.T) {
	t.Parallel()

	t.Run("fetches javadoc of single API path", func(t *testing.T) {
		t.Parallel()

		var fetched string
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				fetched = url
				return facesJavadoc, nil
			},
		}
		loader := goquery.NewDescriptionLoader(fetcher, "https://omnifaces.org/docs/javadoc/current/")
		apiPaths := []string{"util/Faces"}

		description, err := loader.LoadDescription(context.Background(), apiPaths)

		require.NoError(t, err)
		assert.Equal(t, facesURL, fetched)
		assert.NotEmpty(t, description.HTML)
		assert.Equal(t, []string{
			"org/omnifaces/util/Faces",
			"org/omnifaces/util/Messages",
			"org/omnifaces/util/Servlets",
		}, description.APIPaths)
		assert.Equal(t, []string{"util/Faces"}, apiPaths, "input must not be modified")
	})

	t.Run("skips fetching for zero or multiple API paths", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				t.Fatal("Fetch should not be called")
				return "", nil
			},
		}
		loader := goquery.NewDescriptionLoader(fetcher, "https://omnifaces.org/docs/javadoc/current/")

		for _, apiPaths := range [][]string{{}, {"util/Faces", "util/Messages"}} {
			description, err := loader.LoadDescription(context.Background(), apiPaths)

			require.NoError(t, err)
			assert.Empty(t, description.HTML)
			assert.Equal(t, apiPaths, description.APIPaths)
		}
	})

	t.Run("wraps fetch errors", func(t *testing.T) {
		t.Parallel()

		fetchErr := errors.New("connection refused")
		fetcher := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				return "", fetchErr
			},
		}
		loader := goquery.NewDescriptionLoader(fetcher, "https://omnifaces.org/docs/javadoc/current/")

		_, err := loader.LoadDescription(context.Background(), []string{"util/Faces"})

		require.ErrorIs(t, err, fetchErr)
		assert.Contains(t, err.Error(), "unable to load description of "+facesURL)
	})
}
