// Package diagio reads compiler diagnostics reports produced by a build
// (one JSON document listing diagnostics with file locations) and converts
// them to the editor-facing diagnostic type the handlers consume.
package diagio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"pragmata/internal/host"
	"pragmata/internal/lsp"
)

type locationJSON struct {
	File      string `json:"file"`
	StartLine int    `json:"start_line"`
	StartCol  int    `json:"start_col"`
	EndLine   int    `json:"end_line"`
	EndCol    int    `json:"end_col"`
}

type diagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Location locationJSON `json:"location"`
}

type reportJSON struct {
	Diagnostics []diagnosticJSON `json:"diagnostics"`
}

// ReadFile loads a diagnostics report and groups the diagnostics by
// normalized absolute file path.
func ReadFile(path string) (map[string][]lsp.Diagnostic, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("diagio: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a diagnostics report from r.
func Parse(r io.Reader) (map[string][]lsp.Diagnostic, error) {
	var report reportJSON
	if err := json.NewDecoder(r).Decode(&report); err != nil {
		return nil, fmt.Errorf("diagio: decode report: %w", err)
	}
	out := make(map[string][]lsp.Diagnostic)
	for _, d := range report.Diagnostics {
		key := host.NormalizePath(d.Location.File)
		out[key] = append(out[key], lsp.Diagnostic{
			Range:    rangeFromLocation(d.Location),
			Severity: severityFromString(d.Severity),
			Code:     d.Code,
			Source:   "ghc",
			Message:  d.Message,
		})
	}
	return out, nil
}

// rangeFromLocation converts the report's 1-based lines and columns to
// zero-based editor positions. Missing fields collapse to the start of the
// file.
func rangeFromLocation(loc locationJSON) lsp.Range {
	start := lsp.Position{Line: zeroBased(loc.StartLine), Character: zeroBased(loc.StartCol)}
	end := lsp.Position{Line: zeroBased(loc.EndLine), Character: zeroBased(loc.EndCol)}
	if end.Line < start.Line || (end.Line == start.Line && end.Character < start.Character) {
		end = start
	}
	return lsp.Range{Start: start, End: end}
}

func zeroBased(n int) int {
	if n <= 0 {
		return 0
	}
	return n - 1
}

func severityFromString(s string) int {
	switch strings.ToLower(s) {
	case "warning":
		return lsp.SeverityWarning
	case "info", "note":
		return lsp.SeverityInfo
	case "hint":
		return lsp.SeverityHint
	default:
		return lsp.SeverityError
	}
}
