// Package fs stores reports as files, one per article.
package fs

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/wikisum"
)

// Ensure FileStore implements wikisum.ReportStore at compile time.
var _ wikisum.ReportStore = (*FileStore)(nil)

// EncodeFunc renders one report into a file.
type EncodeFunc func(w io.Writer, r *wikisum.Report) error

// FileStore implements wikisum.ReportStore with atomic update semantics.
// Reports are saved to a temporary directory, then moved on Commit.
type FileStore struct {
	baseDir string
	name    string
	ext     string
	encode  EncodeFunc
}

// NewFileStore creates a new FileStore.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit,
// replacing whatever was there. ext is the file extension without the dot.
func NewFileStore(baseDir, name, ext string, encode EncodeFunc) *FileStore {
	return &FileStore{
		baseDir: baseDir,
		name:    name,
		ext:     ext,
		encode:  encode,
	}
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes the report to <language>/<slug>.<ext> in the temp directory.
func (s *FileStore) Save(ctx context.Context, r *wikisum.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	relPath, err := ReportPath(r.URL, s.ext)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(s.tempDir(), relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	f, err := os.Create(fullPath)
	if err != nil {
		return err
	}
	if err := s.encode(f, r); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Commit replaces the final directory with the temp directory.
func (s *FileStore) Commit() error {
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort removes the temp directory.
func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}

// ReportPath converts an article URL to a relative file path.
// Example: https://en.wikipedia.org/wiki/Rome → en/Rome.txt
//
// Slashes in the title become subdirectories. Returns EINVALID for URLs
// that are not article links or whose title would leave the directory.
func ReportPath(rawURL, ext string) (string, error) {
	ref, err := wikisum.ParsePageURL(rawURL)
	if err != nil {
		return "", err
	}

	rel := filepath.Join(ref.Language, filepath.FromSlash(ref.Slug))
	if !strings.HasPrefix(rel, ref.Language+string(filepath.Separator)) {
		return "", wikisum.Errorf(wikisum.EINVALID, "cannot store report for %q", rawURL)
	}
	if ext != "" {
		rel += "." + ext
	}
	return rel, nil
}
