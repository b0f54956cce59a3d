package accounts

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/net/html"
)

// FetchProfilePreview fetches a profile page and extracts its metadata
func FetchProfilePreview(ctx context.Context, targetURL string) (*ProfilePreview, error) {
	client := &http.Client{
		Timeout: 10 * time.Second,
	}

	req, err := http.NewRequestWithContext(ctx, "GET", targetURL, nil)
	if err != nil {
		return nil, err
	}

	// Some profile pages block requests without a browser-like agent
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; ModacartBot/1.0)")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &ProfilePreview{OriginalURL: targetURL}, nil
	}

	return parsePreview(resp.Body, targetURL), nil
}

func parsePreview(body io.Reader, baseURL string) *ProfilePreview {
	preview := &ProfilePreview{
		OriginalURL: baseURL,
	}

	doc, err := html.Parse(body)
	if err != nil {
		return preview
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				if n.FirstChild != nil && preview.Title == "" {
					preview.Title = n.FirstChild.Data
				}
			case "meta":
				name := getAttr(n, "name")
				property := getAttr(n, "property")
				content := getAttr(n, "content")

				switch {
				case property == "og:title":
					preview.Title = content
				case property == "og:description":
					preview.Description = content
				case name == "description" && preview.Description == "":
					preview.Description = content
				case property == "og:image":
					preview.Image = resolveURL(baseURL, content)
				case name == "twitter:image" && preview.Image == "":
					preview.Image = resolveURL(baseURL, content)
				}
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return preview
}

func resolveURL(baseURLStr, relativeURL string) string {
	if relativeURL == "" {
		return ""
	}

	baseURL, err := url.Parse(baseURLStr)
	if err != nil {
		return relativeURL
	}

	relURL, err := url.Parse(relativeURL)
	if err != nil {
		return relativeURL
	}

	return baseURL.ResolveReference(relURL).String()
}

func getAttr(node *html.Node, key string) string {
	for _, attr := range node.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
