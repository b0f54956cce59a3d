package accounts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePreview_OpenGraph(t *testing.T) {
	page := `<!doctype html>
<html>
<head>
<title>fallback title</title>
<meta property="og:title" content="Some Account">
<meta property="og:description" content="Scraped profile">
<meta property="og:image" content="/images/profile.jpg">
</head>
<body></body>
</html>`

	preview := parsePreview(strings.NewReader(page), "https://social.example.com/some_account")

	require.Equal(t, "https://social.example.com/some_account", preview.OriginalURL)
	require.Equal(t, "Some Account", preview.Title)
	require.Equal(t, "Scraped profile", preview.Description)
	// relative image URLs resolve against the page URL
	require.Equal(t, "https://social.example.com/images/profile.jpg", preview.Image)
}

func TestParsePreview_Fallbacks(t *testing.T) {
	page := `<html>
<head>
<title>Plain Title</title>
<meta name="description" content="plain description">
<meta name="twitter:image" content="https://cdn.example.com/t.jpg">
</head>
</html>`

	preview := parsePreview(strings.NewReader(page), "https://social.example.com/x")

	require.Equal(t, "Plain Title", preview.Title)
	require.Equal(t, "plain description", preview.Description)
	require.Equal(t, "https://cdn.example.com/t.jpg", preview.Image)
}

func TestParsePreview_EmptyPage(t *testing.T) {
	preview := parsePreview(strings.NewReader(""), "https://social.example.com/x")

	require.Equal(t, "https://social.example.com/x", preview.OriginalURL)
	require.Empty(t, preview.Title)
	require.Empty(t, preview.Description)
	require.Empty(t, preview.Image)
}
