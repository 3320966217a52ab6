package wikisum

import "context"

// SectionReport summarizes one section. A report is computed completely
// before it is handed to the caller.
type SectionReport struct {
	Title string `json:"title" yaml:"title"`

	// Empty is set when the section body is blank; no other field is filled.
	Empty bool `json:"empty,omitempty" yaml:"empty,omitempty"`

	// TopWords is nil when the section has no countable words.
	TopWords *TopWords `json:"topWords,omitempty" yaml:"topWords,omitempty"`

	Links []Hyperlink `json:"links,omitempty" yaml:"links,omitempty"`
}

// Report summarizes a whole page.
type Report struct {
	Title    string          `json:"title" yaml:"title"`
	URL      string          `json:"url" yaml:"url"`
	Language string          `json:"language" yaml:"language"`
	Corpus   string          `json:"corpus" yaml:"corpus"`
	Sections []SectionReport `json:"sections" yaml:"sections"`
}

// ReportStore persists reports with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type ReportStore interface {
	Save(ctx context.Context, r *Report) error
	Commit() error
	Abort() error
}

// SummaryOptions holds the read-only inputs shared by all sections of a page.
type SummaryOptions struct {
	// BaseURL is the page URL, prefixed to footnote targets.
	BaseURL string

	// WikiHost is prefixed to page and image targets.
	WikiHost string

	Stopwords StopwordSet
	TieMode   TieMode
}

// SummarizeSection builds the report for one section. Hyperlinks are taken
// from the raw body before the body is cleaned for word counting.
func SummarizeSection(s Section, opts SummaryOptions) SectionReport {
	r := SectionReport{Title: s.Title}
	if IsBlank(s.Body) {
		r.Empty = true
		return r
	}

	links := ExtractHyperlinks(s.Body, opts.BaseURL, opts.WikiHost)
	top := Analyze(Clean(s.Body), opts.Stopwords, opts.TieMode)

	if !top.Empty() {
		r.TopWords = &top
	}
	r.Links = links
	return r
}
