// Package lingua implements wikisum.LanguageDetector with n-gram language
// models.
package lingua

import (
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/wikisum"
	"github.com/pemistahl/lingua-go"
)

// DefaultMinimumDistance is the relative confidence gap required between
// the best and the second best language.
const DefaultMinimumDistance = 0.1

// DefaultSampleSize caps the number of bytes inspected per call.
const DefaultSampleSize = 4096

// Ensure Detector implements wikisum.LanguageDetector at compile time.
var _ wikisum.LanguageDetector = (*Detector)(nil)

// Detector guesses the language of a text among a fixed candidate set.
type Detector struct {
	detector lingua.LanguageDetector
	codes    map[lingua.Language]string
	distance float64
	sample   int
}

// Option configures a Detector.
type Option func(*Detector)

// WithMinimumDistance sets how far ahead the best language must be before
// a result is reported.
func WithMinimumDistance(d float64) Option {
	return func(det *Detector) {
		det.distance = d
	}
}

// WithSampleSize sets the number of bytes inspected per call.
func WithSampleSize(n int) Option {
	return func(det *Detector) {
		det.sample = n
	}
}

// NewDetector builds a detector for the given ISO 639-1 codes. Codes with
// no language model are ignored.
//
// Returns EINVALID if fewer than two candidate languages remain.
func NewDetector(codes []string, opts ...Option) (*Detector, error) {
	det := &Detector{
		codes:    make(map[lingua.Language]string),
		distance: DefaultMinimumDistance,
		sample:   DefaultSampleSize,
	}
	for _, opt := range opts {
		opt(det)
	}

	var languages []lingua.Language
	for _, code := range codes {
		lang, ok := languageOf(code)
		if !ok {
			continue
		}
		if _, dup := det.codes[lang]; dup {
			continue
		}
		det.codes[lang] = strings.ToLower(code)
		languages = append(languages, lang)
	}
	if len(languages) < 2 {
		return nil, wikisum.Errorf(wikisum.EINVALID, "language detection needs at least two supported languages, got %d", len(languages))
	}

	det.detector = lingua.NewLanguageDetectorBuilder().
		FromLanguages(languages...).
		WithMinimumRelativeDistance(det.distance).
		Build()
	return det, nil
}

// Detect returns the ISO 639-1 code of the text's language.
func (d *Detector) Detect(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}
	text = truncate(text, d.sample)

	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	code, ok := d.codes[lang]
	return code, ok
}

// Languages returns the codes the detector can report.
func (d *Detector) Languages() []string {
	codes := make([]string, 0, len(d.codes))
	for _, code := range d.codes {
		codes = append(codes, code)
	}
	return codes
}

func languageOf(code string) (lingua.Language, bool) {
	for _, lang := range lingua.AllLanguages() {
		if strings.EqualFold(lang.IsoCode639_1().String(), code) {
			return lang, true
		}
	}
	return lingua.Unknown, false
}

// truncate cuts s to at most n bytes on a rune boundary.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
