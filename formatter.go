package wikisum

import (
	"strconv"
	"strings"
)

// FormatReport renders a page report as plain text, one block per section.
// Blocks are separated by blank lines.
func FormatReport(r *Report) string {
	if r == nil || len(r.Sections) == 0 {
		return ""
	}

	parts := make([]string, 0, len(r.Sections))
	for _, s := range r.Sections {
		parts = append(parts, FormatSection(s))
	}
	return strings.Join(parts, "\n")
}

// FormatSection renders a single section report.
func FormatSection(s SectionReport) string {
	var sb strings.Builder
	sb.WriteString("== " + strings.ReplaceAll(s.Title, "_", " ") + " ==\n\n")

	if s.Empty {
		sb.WriteString("No body text for this section.\n")
		return sb.String()
	}

	if s.TopWords != nil {
		sb.WriteString("The word(s) " + formatWords(s.TopWords.Words) +
			" showed up most frequently, occurring " + strconv.Itoa(s.TopWords.Count) + " times.\n\n")
	}

	if len(s.Links) > 0 {
		sb.WriteString("Hyperlinks:\n")
		for _, l := range s.Links {
			sb.WriteString(l.String() + "\n")
		}
	}

	return sb.String()
}

// formatWords renders words as a bracketed, quoted list: ['a', 'b'].
// Quoting follows Python's repr of a string list, backslashes included.
func formatWords(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		w = strings.ReplaceAll(w, `\`, `\\`)
		if strings.Contains(w, "'") && !strings.Contains(w, `"`) {
			quoted[i] = `"` + w + `"`
		} else {
			quoted[i] = "'" + strings.ReplaceAll(w, "'", `\'`) + "'"
		}
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
