// Package stopwords provides the built-in stop-word corpora and the table
// that maps wiki language codes to them.
package stopwords

import (
	"bufio"
	"embed"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/fwojciec/wikisum"
	"gopkg.in/yaml.v3"
)

// DefaultCorpus is used for languages missing from the table.
const DefaultCorpus = "english"

//go:embed corpus/*.txt
var corpora embed.FS

// defaultTable maps wiki subdomains to corpus names.
var defaultTable = map[string]string{
	"en":     "english",
	"sv":     "swedish",
	"de":     "german",
	"nl":     "dutch",
	"no":     "norwegian",
	"nb":     "norwegian",
	"da":     "danish",
	"simple": "english",
	"nn":     "norwegian",
	"fr":     "french",
	"it":     "italian",
	"es":     "spanish",
	"pt":     "portuguese",
	"ro":     "romanian",
	"ru":     "russian",
	"arz":    "arabic",
	"ar":     "arabic",
	"tr":     "turkish",
	"id":     "indonesian",
	"fi":     "finnish",
	"hu":     "hungarian",
	"azb":    "azerbaijani",
	"az":     "azerbaijani",
	"kk":     "kazakh",
	"ne":     "nepali",
}

// Ensure Service implements wikisum.StopwordService at compile time.
var _ wikisum.StopwordService = (*Service)(nil)

// Service resolves language codes to stop-word sets. Corpora are parsed
// on first use and cached.
type Service struct {
	table map[string]string

	mu    sync.Mutex
	cache map[string]wikisum.StopwordSet
}

// Option configures a Service.
type Option func(*Service)

// WithTable merges entries over the built-in language table.
func WithTable(table map[string]string) Option {
	return func(s *Service) {
		for code, corpus := range table {
			s.table[strings.ToLower(code)] = corpus
		}
	}
}

// NewService creates a Service backed by the embedded corpora.
func NewService(opts ...Option) *Service {
	s := &Service{
		table: make(map[string]string, len(defaultTable)),
		cache: make(map[string]wikisum.StopwordSet),
	}
	for code, corpus := range defaultTable {
		s.table[code] = corpus
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Lookup returns the corpus for lang. Unknown languages, and table entries
// naming a corpus that does not exist, fall back to DefaultCorpus with ok
// set to false.
func (s *Service) Lookup(lang string) (string, wikisum.StopwordSet, bool) {
	if name, found := s.table[strings.ToLower(lang)]; found {
		if set, err := s.Corpus(name); err == nil {
			return name, set, true
		}
	}
	set, _ := s.Corpus(DefaultCorpus)
	return DefaultCorpus, set, false
}

// Corpus returns the named embedded corpus.
func (s *Service) Corpus(name string) (wikisum.StopwordSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if set, ok := s.cache[name]; ok {
		return set, nil
	}
	set, err := readCorpus(name)
	if err != nil {
		return nil, err
	}
	s.cache[name] = set
	return set, nil
}

// Languages returns the configured language codes, sorted.
func (s *Service) Languages() []string {
	codes := make([]string, 0, len(s.table))
	for code := range s.table {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Corpora returns the names of the embedded corpora, sorted.
func Corpora() []string {
	entries, err := corpora.ReadDir("corpus")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".txt"))
	}
	sort.Strings(names)
	return names
}

func readCorpus(name string) (wikisum.StopwordSet, error) {
	f, err := corpora.Open("corpus/" + name + ".txt")
	if err != nil {
		return nil, wikisum.Errorf(wikisum.ENOTFOUND, "stop-word corpus %q not found", name)
	}
	defer f.Close()

	var words []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if w := strings.TrimSpace(sc.Text()); w != "" {
			words = append(words, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read corpus %s: %w", name, err)
	}
	return wikisum.NewStopwordSet(words...), nil
}

// tableFile is the on-disk layout of a language table override.
type tableFile struct {
	Languages map[string]string `yaml:"languages"`
}

// LoadTable reads a YAML language table:
//
//	languages:
//	  la: english
//	  sco: english
//
// Every corpus named must be embedded.
func LoadTable(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read language table: %w", err)
	}
	return ParseTable(data)
}

// ParseTable decodes a YAML language table.
func ParseTable(data []byte) (map[string]string, error) {
	var tf tableFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, wikisum.Errorf(wikisum.EINVALID, "invalid language table: %v", err)
	}

	known := make(map[string]bool)
	for _, name := range Corpora() {
		known[name] = true
	}
	for code, corpus := range tf.Languages {
		if !known[corpus] {
			return nil, wikisum.Errorf(wikisum.EINVALID, "language %q: unknown corpus %q", code, corpus)
		}
	}
	return tf.Languages, nil
}
