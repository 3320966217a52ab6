package wikisum

import (
	"regexp"
	"slices"
	"strings"
)

// StopwordSet is a set of lower-case words excluded from frequency ranking.
type StopwordSet map[string]struct{}

// NewStopwordSet returns a set holding the lower-cased words.
func NewStopwordSet(words ...string) StopwordSet {
	set := make(StopwordSet, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}

// Contains reports whether word is a stop word. Word must already be lower case.
func (s StopwordSet) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Len returns the number of words in the set.
func (s StopwordSet) Len() int {
	return len(s)
}

// TieMode controls how words tied for the highest count are collected.
type TieMode int

const (
	// TieRepeat appends a word every time its running count reaches the
	// running maximum, so the result keeps the order in which words reached
	// it and is never deduplicated.
	TieRepeat TieMode = iota

	// TieDistinct is like TieRepeat but lists each word at most once.
	TieDistinct
)

// TopWords is the result of a frequency analysis.
type TopWords struct {
	Count int      `json:"count" yaml:"count"`
	Words []string `json:"words" yaml:"words"`
}

// Empty reports whether no countable word was found.
func (t TopWords) Empty() bool {
	return t.Count == 0
}

// separatorRe matches punctuation runs that touch whitespace on one side.
// Punctuation inside a word ("don't", "well-known") does not match.
var separatorRe = regexp.MustCompile(`[\s\v\p{Z}][^\p{L}\p{N}\p{M}_]+|[^\p{L}\p{N}\p{M}_]+[\s\v\p{Z}]`)

// Tokenize splits plain text into lower-case words.
func Tokenize(text string) []string {
	fields := strings.Fields(separatorRe.ReplaceAllString(text, " "))
	for i, f := range fields {
		fields[i] = strings.ToLower(f)
	}
	return fields
}

// Analyze finds the word(s) with the highest count in text, ignoring stop
// words. Counting is incremental: when a word's count exceeds the running
// maximum the result is reset to that word alone, and when it equals the
// running maximum the word is appended.
func Analyze(text string, stopwords StopwordSet, mode TieMode) TopWords {
	counts := make(map[string]int)

	var top TopWords
	for _, word := range Tokenize(text) {
		if stopwords.Contains(word) {
			continue
		}

		counts[word]++
		n := counts[word]

		if n > top.Count {
			top.Count = n
			top.Words = top.Words[:0]
		}
		if n == top.Count {
			if mode == TieDistinct && slices.Contains(top.Words, word) {
				continue
			}
			top.Words = append(top.Words, word)
		}
	}

	if top.Count == 0 {
		return TopWords{}
	}
	return top
}
