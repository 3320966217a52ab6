package wikisum

import (
	"net/url"
	"regexp"
	"strings"
)

// pageURLRe matches an article URL and captures the language subdomain and
// the page slug. Anything after '#' is ignored.
var pageURLRe = regexp.MustCompile(`^https://(.+)\.wikipedia\.org/wiki/([^#]+)`)

// PageRef identifies one article.
type PageRef struct {
	// Language is the wiki subdomain, e.g. "en" or "simple".
	Language string `json:"language"`

	// Slug is the title as it appears in the URL path (percent-encoded,
	// underscores for spaces).
	Slug string `json:"slug"`

	// Title is the human-readable title.
	Title string `json:"title"`

	// URL is the decoded article URL without fragment.
	URL string `json:"url"`
}

// ParsePageURL parses an article URL.
// Returns EINVALID if raw is not an article link.
func ParsePageURL(raw string) (PageRef, error) {
	m := pageURLRe.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return PageRef{}, Errorf(EINVALID, "not a valid Wikipedia link: %q", raw)
	}

	return PageRef{
		Language: m[1],
		Slug:     m[2],
		Title:    strings.ReplaceAll(unescape(m[2]), "_", " "),
		URL:      unescape(m[0]),
	}, nil
}

// WikiHost returns the host of the article's wiki.
func (r PageRef) WikiHost() string {
	return WikiHost(r.Language)
}

// ArticleURL returns the canonical URL of the rendered article.
func (r PageRef) ArticleURL() string {
	return r.WikiHost() + "/wiki/" + r.Slug
}

// unescape percent-decodes s, returning it unchanged if it is not valid.
func unescape(s string) string {
	u, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return u
}
