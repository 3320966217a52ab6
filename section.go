package wikisum

import (
	"regexp"
	"strings"
)

// Section is a titled, contiguous span of an article's body markup.
// The first section of a page is the lead and carries the page title.
type Section struct {
	Title string `json:"title" yaml:"title"`
	Body  string `json:"body" yaml:"body"`
}

// navboxMarker opens the "related pages" navigation block at the end of an
// article. It is rewritten into a heading boundary so it never ends up in
// the body of the last real section.
const navboxMarker = `<div role="navigation" class="navbox"`

// sentinel bounds the final section.
const sentinel = "<h2>"

var (
	// leadRe captures the summary paragraphs before the first heading or the
	// end of the lead container. Modern MediaWiki headings carry an id on the
	// heading element and sit inside a mw-heading div.
	leadRe = regexp.MustCompile(`(?s)<p>(.+?)<(?:h[1-4]>|h[1-4] id="|/div>|div class="mw-heading)`)

	// headingRe matches a heading marker carrying an identifier. A modern
	// heading is matched together with its mw-heading wrapper so the wrapper
	// never leaks into a body.
	headingRe = regexp.MustCompile(`(?s)<div class="mw-heading[^"]*">\s*<h[1-4] id="(.+?)"[^>]*>.+?</h[1-4]>(?:\s*</div>)?` +
		`|<span class="mw-headline" id="(.+?)">.+?</h[1-4]>` +
		`|<h[1-4] id="(.+?)"[^>]*>.+?</h[1-4]>`)

	// terminatorRe matches the start of the next heading or heading wrapper.
	terminatorRe = regexp.MustCompile(`<h[1-4](?:>| id=")|<div class="mw-heading`)
)

// boundary is the span of one section body within a document.
type boundary struct {
	title      string
	start, end int
}

// Segment splits an article into sections. The lead section comes first and
// is titled with pageTitle; each heading marker with an identifier starts a
// further section titled with that identifier, underscores included.
//
// Returns EMALFORMED if the document has no lead section.
func Segment(document, pageTitle string) ([]Section, error) {
	lead := leadRe.FindStringSubmatch(document)
	if lead == nil {
		return nil, Errorf(EMALFORMED, "no lead section found in %q", pageTitle)
	}

	sections := []Section{{Title: pageTitle, Body: lead[1]}}

	doc := strings.ReplaceAll(document, navboxMarker, sentinel) + sentinel
	for _, b := range findBoundaries(doc) {
		sections = append(sections, Section{
			Title: b.title,
			Body:  doc[b.start:b.end],
		})
	}

	return sections, nil
}

// findBoundaries scans doc left to right for heading markers and the
// terminator that follows each one. Adjacent markers yield an empty body,
// and scanning resumes at the terminator so it can open the next marker.
func findBoundaries(doc string) []boundary {
	var bounds []boundary

	pos := 0
	for pos < len(doc) {
		m := headingRe.FindStringSubmatchIndex(doc[pos:])
		if m == nil {
			break
		}

		title := ""
		for g := 2; g < len(m); g += 2 {
			if m[g] >= 0 {
				title = doc[pos+m[g] : pos+m[g+1]]
				break
			}
		}

		start := pos + m[1]
		t := terminatorRe.FindStringIndex(doc[start:])
		if t == nil {
			break
		}
		end := start + t[0]

		bounds = append(bounds, boundary{title: title, start: start, end: end})
		pos = end
	}

	return bounds
}

// IsBlank reports whether a section body holds no text at all.
func IsBlank(body string) bool {
	return strings.TrimSpace(body) == ""
}
