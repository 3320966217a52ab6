package wikisum

import (
	"regexp"

	"golang.org/x/net/html"
)

var (
	styleRe     = regexp.MustCompile(`<style.+?</style>`)
	headingElRe = regexp.MustCompile(`<h[1-4][^>]*>.+?</h[1-4]>`)
	infoboxRe   = regexp.MustCompile(`(?s)<table.+?class="infobox.+?</table>`)
	referenceRe = regexp.MustCompile(`<sup.+?class="reference".+?</sup>`)
	refListRe   = regexp.MustCompile(`(?s)<ol class="references">.+?</ol>`)
	tagRe       = regexp.MustCompile(`<.+?>`)
	commentRe   = regexp.MustCompile(`(?s)<!--.+?-->`)
	escapeRe    = regexp.MustCompile(`\\[un]`)

	// bracketRe matches any [...] or <...> span, on a single line.
	bracketRe = regexp.MustCompile(`[\[<].*?[>\]]`)
)

// Clean reduces a markup fragment to plain text for word counting.
// Steps run in a fixed order; each assumes the previous ones already removed
// the structure that would confuse it. Entities are decoded last so decoding
// cannot produce tags that earlier steps should have removed.
//
// Whitespace is left as is.
func Clean(markup string) string {
	text := styleRe.ReplaceAllString(markup, "")
	text = headingElRe.ReplaceAllString(text, "")
	text = infoboxRe.ReplaceAllString(text, "")
	text = referenceRe.ReplaceAllString(text, "")
	text = refListRe.ReplaceAllString(text, "")
	text = tagRe.ReplaceAllString(text, "")
	text = commentRe.ReplaceAllString(text, "")
	text = escapeRe.ReplaceAllString(text, " ")
	return html.UnescapeString(text)
}

// StripTags removes bracketed and angle-bracketed spans without looking at
// what they contain. It is meant for anchor labels and targets, where only
// simple residual markup remains.
func StripTags(s string) string {
	return bracketRe.ReplaceAllString(s, "")
}
