package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/fwojciec/wikisum"
	"golang.org/x/net/html"
)

// MaxSections bounds the number of per-section requests for one article.
const MaxSections = 500

// Ensure sources implement wikisum.ArticleSource at compile time.
var (
	_ wikisum.ArticleSource = (*PageSource)(nil)
	_ wikisum.ArticleSource = (*SectionSource)(nil)
)

// MediaWiki reads parsed articles through the MediaWiki action API.
type MediaWiki struct {
	fetcher  wikisum.Fetcher
	endpoint func(lang string) string
}

// MediaWikiOption configures a MediaWiki client.
type MediaWikiOption func(*MediaWiki)

// WithEndpoint sends every request to apiURL regardless of language.
func WithEndpoint(apiURL string) MediaWikiOption {
	return func(m *MediaWiki) {
		m.endpoint = func(string) string { return apiURL }
	}
}

// NewMediaWiki creates a client that fetches through f.
func NewMediaWiki(f wikisum.Fetcher, opts ...MediaWikiOption) *MediaWiki {
	m := &MediaWiki{
		fetcher: f,
		endpoint: func(lang string) string {
			return wikisum.WikiHost(lang) + "/w/api.php"
		},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Parsed is one parse result.
type Parsed struct {
	Title string

	// Heading is the section heading, empty for the whole page and the lead.
	Heading string

	HTML string
}

type parseResponse struct {
	Parse *struct {
		Title string `json:"title"`
		Text  struct {
			HTML string `json:"*"`
		} `json:"text"`
		Sections []struct {
			Line   string `json:"line"`
			Anchor string `json:"anchor"`
		} `json:"sections"`
	} `json:"parse"`
	Error *struct {
		Code string `json:"code"`
		Info string `json:"info"`
	} `json:"error"`
}

// Parse fetches the parsed HTML of an article. A negative section requests
// the whole page. Returns ENOTFOUND if the page or section does not exist.
func (m *MediaWiki) Parse(ctx context.Context, ref wikisum.PageRef, section int) (*Parsed, error) {
	params := url.Values{}
	params.Set("action", "parse")
	params.Set("format", "json")
	params.Set("formatversion", "1")
	params.Set("prop", "text|sections")
	params.Set("disabletoc", "1")
	params.Set("disableeditsection", "1")
	params.Set("disablestylededuplication", "1")
	params.Set("redirects", "1")
	params.Set("page", ref.Title)
	if section >= 0 {
		params.Set("section", strconv.Itoa(section))
	}

	body, err := m.fetcher.Fetch(ctx, m.endpoint(ref.Language)+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var resp parseResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		return nil, wikisum.Errorf(wikisum.EMALFORMED, "decode parse response: %v", err)
	}
	if resp.Error != nil {
		switch resp.Error.Code {
		case "missingtitle", "nosuchsection", "invalidtitle":
			return nil, wikisum.Errorf(wikisum.ENOTFOUND, "%s: %s", ref.Title, resp.Error.Info)
		default:
			return nil, fmt.Errorf("mediawiki %s: %s", resp.Error.Code, resp.Error.Info)
		}
	}
	if resp.Parse == nil {
		return nil, wikisum.Errorf(wikisum.ENOTFOUND, "%s: no parse result", ref.Title)
	}

	p := &Parsed{Title: resp.Parse.Title, HTML: resp.Parse.Text.HTML}
	if section > 0 && len(resp.Parse.Sections) > 0 {
		p.Heading = wikisum.StripTags(resp.Parse.Sections[0].Line)
	}
	return p, nil
}

// PageSource fetches the whole article in one request and segments it
// locally.
type PageSource struct {
	wiki *MediaWiki
}

// NewPageSource creates a PageSource.
func NewPageSource(wiki *MediaWiki) *PageSource {
	return &PageSource{wiki: wiki}
}

// Sections fetches and segments the article.
func (s *PageSource) Sections(ctx context.Context, ref wikisum.PageRef) ([]wikisum.Section, error) {
	p, err := s.wiki.Parse(ctx, ref, -1)
	if err != nil {
		return nil, err
	}
	return wikisum.Segment(html.UnescapeString(p.HTML), ref.Title)
}

// SectionSource requests sections one at a time until the API reports no
// further section. No local segmentation takes place.
type SectionSource struct {
	wiki *MediaWiki
	max  int
}

// NewSectionSource creates a SectionSource reading at most MaxSections.
func NewSectionSource(wiki *MediaWiki) *SectionSource {
	return &SectionSource{wiki: wiki, max: MaxSections}
}

// Sections fetches section 0 (the lead) and each following section in
// turn. A missing lead is an error; a missing later section ends the
// article.
func (s *SectionSource) Sections(ctx context.Context, ref wikisum.PageRef) ([]wikisum.Section, error) {
	var sections []wikisum.Section
	for i := 0; i < s.max; i++ {
		p, err := s.wiki.Parse(ctx, ref, i)
		if err != nil {
			if i > 0 && wikisum.ErrorCode(err) == wikisum.ENOTFOUND {
				break
			}
			return nil, err
		}

		title := p.Heading
		if i == 0 {
			title = p.Title
		}
		sections = append(sections, wikisum.Section{Title: title, Body: p.HTML})
	}
	return sections, nil
}
