package wikisum

import (
	"regexp"
	"strings"
)

// LinkKind classifies a hyperlink found in a section body.
type LinkKind string

// Hyperlink kinds.
const (
	LinkFootnote LinkKind = "footnote"
	LinkImage    LinkKind = "image"
	LinkPage     LinkKind = "page"
)

const (
	// footnoteMarker appears in the target of citation links.
	footnoteMarker = "#cite"

	// imageMarker appears in the label of links wrapping a thumbnail.
	imageMarker = "<img "
)

// anchorRe matches one anchor element on a single line. An anchor without a
// closing tag on its line does not match and is skipped.
var anchorRe = regexp.MustCompile(`<a.+?href="(.+?)".*?>(.*?)</a>`)

// Hyperlink is one anchor found in a section body.
type Hyperlink struct {
	Kind   LinkKind `json:"kind" yaml:"kind"`
	Label  string   `json:"label,omitempty" yaml:"label,omitempty"`
	Target string   `json:"target" yaml:"target"`
	URL    string   `json:"url" yaml:"url"`
}

// String renders the hyperlink as a display line.
func (h Hyperlink) String() string {
	switch h.Kind {
	case LinkFootnote:
		return " *Footnote " + h.Label + " " + h.URL
	case LinkImage:
		return "[ IMAGE FILE ] " + h.URL
	default:
		return "[" + h.Label + "] " + h.URL
	}
}

// WikiHost returns the encyclopedia host for a language code.
func WikiHost(lang string) string {
	return "https://" + lang + ".wikipedia.org"
}

// ExtractHyperlinks finds every anchor in a raw section body, in document
// order. Anchors with an empty label are skipped. Footnote URLs are resolved
// against baseURL (the page itself); all others against wikiHost.
//
// body must be the original markup; cleaned text has no anchors left.
func ExtractHyperlinks(body, baseURL, wikiHost string) []Hyperlink {
	var links []Hyperlink
	for _, m := range anchorRe.FindAllStringSubmatch(body, -1) {
		target, label := m[1], m[2]
		if label == "" {
			continue
		}

		link := Hyperlink{Target: StripTags(target)}
		switch {
		case strings.Contains(target, footnoteMarker):
			link.Kind = LinkFootnote
			link.Label = StripTags(label)
			link.URL = baseURL + link.Target
		case strings.Contains(label, imageMarker):
			link.Kind = LinkImage
			link.URL = wikiHost + link.Target
		default:
			link.Kind = LinkPage
			link.Label = StripTags(label)
			link.URL = wikiHost + link.Target
		}
		links = append(links, link)
	}
	return links
}

// ExtractLinks returns the rendered display lines for every hyperlink in a
// raw section body.
func ExtractLinks(body, baseURL, languageCode string) []string {
	links := ExtractHyperlinks(body, baseURL, WikiHost(languageCode))
	lines := make([]string, 0, len(links))
	for _, l := range links {
		lines = append(lines, l.String())
	}
	return lines
}
