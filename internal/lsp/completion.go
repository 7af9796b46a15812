package lsp

import (
	"strings"

	"pragmata/internal/fuzzy"
	"pragmata/internal/pragma"
)

// Pragma openers the classifier recognizes, lowercased.
const (
	languageOpener = "{-# language"
	optionsOpener  = "{-# options_ghc"
	genericOpener  = "{-#"
	pragmaCloser   = "#-}"
)

// pragmaTemplate is one generic directive-kind completion: the snippet body
// carries a placeholder field; the closer is appended at build time unless
// the line already ends with one.
type pragmaTemplate struct {
	label   string
	snippet string
}

var pragmaTemplates = []pragmaTemplate{
	{"LANGUAGE", "LANGUAGE ${1:extension}"},
	{"OPTIONS_GHC", "OPTIONS_GHC -${1:option}"},
	{"INLINE", "INLINE ${1:function}"},
	{"NOINLINE", "NOINLINE ${1:function}"},
	{"INLINABLE", "INLINABLE ${1:function}"},
	{"WARNING", "WARNING ${1:message}"},
	{"DEPRECATED", "DEPRECATED ${1:message}"},
	{"ANN", "ANN ${1:annotation}"},
	{"RULES", "RULES \"${1:name}\" ${2:rule}"},
	{"SPECIALIZE", "SPECIALIZE ${1:signature}"},
	{"SPECIALIZE INLINE", "SPECIALIZE INLINE ${1:signature}"},
}

// BuildCompletions classifies the directive being typed and returns the
// matching candidates: extension names inside a LANGUAGE pragma, flag names
// inside an OPTIONS_GHC pragma, directive templates right after a generic
// opener, or nothing.
func BuildCompletions(catalog *pragma.Catalog, pfx CompletionPrefix) []CompletionItem {
	line := strings.ToLower(pfx.LinePrefix)
	switch {
	case strings.HasPrefix(line, languageOpener):
		return keywordItems(fuzzy.Filter(pfx.Word, extensionCandidates(catalog)), "language extension")
	case strings.HasPrefix(line, optionsOpener):
		word := strings.TrimLeft(pfx.Word, "-")
		return keywordItems(fuzzy.Filter(word, catalog.FlagNames()), "compiler flag")
	case atGenericOpener(line):
		return templateItems(pfx.FullLine)
	default:
		return nil
	}
}

// atGenericOpener reports whether the cursor sits in a partially or fully
// typed "{-#" opener (possibly followed by a pragma name being typed).
func atGenericOpener(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		return false
	}
	return strings.HasPrefix(genericOpener, trimmed) || strings.HasPrefix(trimmed, genericOpener)
}

func extensionCandidates(catalog *pragma.Catalog) []string {
	exts := catalog.Extensions()
	out := make([]string, 0, 2*len(exts))
	for _, ext := range exts {
		out = append(out, ext, "No"+ext)
	}
	return out
}

func keywordItems(labels []string, detail string) []CompletionItem {
	items := make([]CompletionItem, 0, len(labels))
	for _, label := range labels {
		items = append(items, CompletionItem{
			Label:            label,
			Kind:             CompletionItemKindKeyword,
			Detail:           detail,
			InsertText:       label,
			InsertTextFormat: InsertTextFormatPlainText,
		})
	}
	return items
}

func templateItems(fullLine string) []CompletionItem {
	suffix := " " + pragmaCloser
	if strings.HasSuffix(strings.TrimRight(fullLine, " \t"), pragmaCloser) {
		suffix = ""
	}
	items := make([]CompletionItem, 0, len(pragmaTemplates))
	for _, tpl := range pragmaTemplates {
		items = append(items, CompletionItem{
			Label:            tpl.label,
			Kind:             CompletionItemKindSnippet,
			Detail:           "{-# " + tpl.label + " ... " + pragmaCloser,
			InsertText:       tpl.snippet + suffix,
			InsertTextFormat: InsertTextFormatSnippet,
		})
	}
	return items
}
