// Package wikisum summarizes encyclopedia articles section by section.
// For every section of a page it reports the title, the most frequent
// non-stop-word(s) of the section text and every hyperlink the section
// contains.
//
// This package contains domain types, interfaces and the text-processing
// core (segmenting, cleaning, word frequency and hyperlink extraction).
// The core is a set of lexical passes over MediaWiki-rendered markup, not a
// general HTML parser. Implementations of the interfaces live in
// subdirectories named after their primary dependency (e.g., http/, rod/,
// goquery/, lingua/).
package wikisum
