package lsp

import "sort"

// ApplyEdits applies range edits to text and returns the result. Edits are
// applied from the end of the document towards the start so earlier offsets
// stay valid; overlapping or inverted edits are skipped rather than
// corrupting the buffer.
func ApplyEdits(text string, edits []TextEdit) string {
	if len(edits) == 0 {
		return text
	}
	type resolved struct {
		start, end uint32
		newText    string
	}
	spans := make([]resolved, 0, len(edits))
	for _, e := range edits {
		start := offsetForPosition(text, e.Range.Start)
		end := offsetForPosition(text, e.Range.End)
		if end < start {
			continue
		}
		spans = append(spans, resolved{start: start, end: end, newText: e.NewText})
	}
	sort.SliceStable(spans, func(i, j int) bool {
		if spans[i].start == spans[j].start {
			return spans[i].end > spans[j].end
		}
		return spans[i].start > spans[j].start
	})

	var lastStart uint32 = maxUint32
	for _, sp := range spans {
		if sp.end > lastStart {
			continue
		}
		text = text[:sp.start] + sp.newText + text[sp.end:]
		lastStart = sp.start
	}
	return text
}
