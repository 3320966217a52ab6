package wikisum

import "context"

// ArticleSource retrieves an article and splits it into sections.
// Implementations hide whether the page is fetched whole and segmented, or
// fetched section by section.
type ArticleSource interface {
	// Sections returns the article's sections in document order, lead first.
	// Returns ENOTFOUND if the article does not exist and EMALFORMED if its
	// markup has no recognizable lead section.
	Sections(ctx context.Context, ref PageRef) ([]Section, error)
}

// StopwordService resolves the stop-word set for a language.
type StopwordService interface {
	// Lookup returns the corpus name and stop-word set for a language code.
	// Unrecognized codes fall back to the default corpus with ok set to false.
	Lookup(lang string) (corpus string, set StopwordSet, ok bool)
}

// LanguageDetector guesses the language of a text.
type LanguageDetector interface {
	// Detect returns the ISO 639-1 code of the text's language.
	// Returns false if the language cannot be determined reliably.
	Detect(text string) (lang string, ok bool)
}
