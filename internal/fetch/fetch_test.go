package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html><body><h1>Test</h1></body></html>"))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, server.URL, result.URL)
	assert.Contains(t, result.HTML, "<h1>Test</h1>")
	assert.Equal(t, http.StatusOK, result.StatusCode)
}

func TestURL_InvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "not-a-valid-url", nil)
	require.Error(t, err)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "invalid URL")
}

func TestURL_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.NotNil(t, result) // Result is returned even on error
	assert.Equal(t, http.StatusNotFound, result.StatusCode)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "404")
}

func TestExtractMainText_ResumeSelector(t *testing.T) {
	html := `
	<html>
		<body>
			<nav>Navigation</nav>
			<div class="resume">
				<h1>Jane Doe</h1>
				<p>Senior data analyst with 8 years of experience.</p>
			</div>
			<footer>Footer</footer>
		</body>
	</html>`

	text, err := ExtractMainText(html, ProfileSelectors())
	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "data analyst")
	assert.NotContains(t, text, "Navigation")
	assert.NotContains(t, text, "Footer")
}

func TestExtractMainText_NoiseSelectors(t *testing.T) {
	html := `
	<html>
		<body>
			<main>
				<h1>Jane Doe</h1>
				<div class="endorsements">37 endorsements</div>
				<p>Contract work history.</p>
			</main>
		</body>
	</html>`

	text, err := ExtractMainText(html, ProfileSelectors(), ProfileNoiseSelectors()...)
	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "Contract work history")
	assert.NotContains(t, text, "endorsements")
}

func TestExtractMainText_FallbackToBody(t *testing.T) {
	html := `
	<html>
		<body>
			<div>Some content here.</div>
		</body>
	</html>`

	text, err := ExtractMainText(html, ProfileSelectors())
	require.NoError(t, err)
	assert.Contains(t, text, "Some content here")
}

func TestProfileText_PlainFetch(t *testing.T) {
	// Long enough to stay below the browser-fallback threshold
	body := "<html><body><main><h1>Jane Doe</h1><p>" +
		strings.Repeat("Contract data analysis engagements. ", 20) +
		"</p></main></body></html>"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	opts := DefaultOptions()
	opts.UseBrowser = false

	text, err := ProfileText(context.Background(), server.URL, opts)
	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "Contract data analysis")
}

func TestProfileText_FetchError(t *testing.T) {
	opts := DefaultOptions()
	opts.UseBrowser = false

	_, err := ProfileText(context.Background(), "not-a-valid-url", opts)
	assert.Error(t, err)
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser(""))
	assert.True(t, ShouldUseBrowser("short text"))
	assert.False(t, ShouldUseBrowser(strings.Repeat("long enough content ", 50)))
}

func TestProfileSelectors(t *testing.T) {
	selectors := ProfileSelectors()
	assert.Contains(t, selectors, ".resume")
	assert.Contains(t, selectors, "main")
}
