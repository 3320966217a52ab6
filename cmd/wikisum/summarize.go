package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/wikisum"
	"gopkg.in/yaml.v3"
)

// Run validates every URL, then summarizes each page and writes its
// report. A failing page does not stop the pages after it.
func (c *SummarizeCmd) Run(deps *Dependencies) error {
	refs := make([]wikisum.PageRef, 0, len(c.URLs))
	for _, raw := range c.URLs {
		ref, err := wikisum.ParsePageURL(raw)
		if err != nil {
			return err
		}
		refs = append(refs, ref)
	}

	out, err := newReportWriter(deps.Stdout, c.Format)
	if err != nil {
		return err
	}

	saved := 0

	var errs []error
	for _, ref := range refs {
		if ref.Language != "en" {
			deps.Logger.Warn("only the English Wikipedia is fully supported", "language", ref.Language, "url", ref.URL)
		}

		deps.Logger.Debug("summarizing", "url", ref.URL)
		report, err := deps.Scanner.Scan(deps.Ctx, ref)
		if err != nil {
			deps.Logger.Error("summarize failed", "url", ref.URL, "err", err)
			errs = append(errs, err)
			continue
		}

		if deps.Store != nil {
			if err := deps.Store.Save(deps.Ctx, report); err != nil {
				_ = deps.Store.Abort()
				return fmt.Errorf("save report: %w", err)
			}
			saved++
			continue
		}

		if err := out.Write(report); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if deps.Store != nil {
		if saved == 0 {
			_ = deps.Store.Abort()
		} else if err := deps.Store.Commit(); err != nil {
			return fmt.Errorf("commit reports: %w", err)
		}
	}

	switch {
	case len(errs) == 0:
		return nil
	case len(refs) == 1:
		return errs[0]
	default:
		return fmt.Errorf("%d of %d pages failed", len(errs), len(refs))
	}
}

// reportWriter renders reports in one output format.
type reportWriter interface {
	Write(r *wikisum.Report) error
	Close() error
}

// encodeReport renders a single report in the given format.
func encodeReport(format string) func(w io.Writer, r *wikisum.Report) error {
	return func(w io.Writer, r *wikisum.Report) error {
		rw, err := newReportWriter(w, format)
		if err != nil {
			return err
		}
		if err := rw.Write(r); err != nil {
			return err
		}
		return rw.Close()
	}
}

// formatExt returns the file extension for reports in format.
func formatExt(format string) string {
	if format == "" || format == "text" {
		return "txt"
	}
	return format
}

func newReportWriter(w io.Writer, format string) (reportWriter, error) {
	switch format {
	case "", "text":
		return &textWriter{w: w}, nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return &jsonWriter{enc: enc}, nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		return &yamlWriter{enc: enc}, nil
	default:
		return nil, wikisum.Errorf(wikisum.EINVALID, "unknown format %q", format)
	}
}

type textWriter struct {
	w       io.Writer
	written bool
}

func (t *textWriter) Write(r *wikisum.Report) error {
	if t.written {
		if _, err := io.WriteString(t.w, "\n"); err != nil {
			return err
		}
	}
	t.written = true
	_, err := io.WriteString(t.w, wikisum.FormatReport(r))
	return err
}

func (t *textWriter) Close() error { return nil }

type jsonWriter struct {
	enc *json.Encoder
}

func (j *jsonWriter) Write(r *wikisum.Report) error { return j.enc.Encode(r) }

func (j *jsonWriter) Close() error { return nil }

type yamlWriter struct {
	enc *yaml.Encoder
}

func (y *yamlWriter) Write(r *wikisum.Report) error { return y.enc.Encode(r) }

func (y *yamlWriter) Close() error { return y.enc.Close() }
