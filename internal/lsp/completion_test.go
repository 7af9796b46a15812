package lsp

import (
	"strings"
	"testing"

	"pragmata/internal/pragma"
)

func completionLabels(items []CompletionItem) []string {
	labels := make([]string, len(items))
	for i, it := range items {
		labels[i] = it.Label
	}
	return labels
}

func hasLabel(items []CompletionItem, label string) bool {
	for _, it := range items {
		if it.Label == label {
			return true
		}
	}
	return false
}

func TestCompletionLanguageExtensions(t *testing.T) {
	pfx := CompletionPrefix{
		FullLine:   "{-# LANGUAGE Sco",
		LinePrefix: "{-# LANGUAGE Sco",
		Word:       "Sco",
	}
	items := BuildCompletions(pragma.Builtin(), pfx)
	if !hasLabel(items, "ScopedTypeVariables") {
		t.Fatalf("missing ScopedTypeVariables in %v", completionLabels(items))
	}
	if hasLabel(items, "BangPatterns") {
		t.Fatalf("BangPatterns is not a subsequence match for Sco: %v", completionLabels(items))
	}
	for _, it := range items {
		if it.Kind != CompletionItemKindKeyword || it.InsertTextFormat != InsertTextFormatPlainText {
			t.Fatalf("extension candidates must be plain keywords: %+v", it)
		}
	}
}

func TestCompletionNegatedExtensions(t *testing.T) {
	pfx := CompletionPrefix{
		FullLine:   "{-# LANGUAGE NoImplicit",
		LinePrefix: "{-# LANGUAGE NoImplicit",
		Word:       "NoImplicit",
	}
	items := BuildCompletions(pragma.Builtin(), pfx)
	if !hasLabel(items, "NoImplicitParams") {
		t.Fatalf("negated form missing: %v", completionLabels(items))
	}
}

func TestCompletionOpenerIsCaseInsensitive(t *testing.T) {
	pfx := CompletionPrefix{
		FullLine:   "{-# language lambda",
		LinePrefix: "{-# language lambda",
		Word:       "lambda",
	}
	items := BuildCompletions(pragma.Builtin(), pfx)
	if !hasLabel(items, "LambdaCase") {
		t.Fatalf("lowercase opener not recognized: %v", completionLabels(items))
	}
}

func TestCompletionOptionsFlags(t *testing.T) {
	pfx := CompletionPrefix{
		FullLine:   "{-# OPTIONS_GHC -Wunused",
		LinePrefix: "{-# OPTIONS_GHC -Wunused",
		Word:       "-Wunused",
	}
	items := BuildCompletions(pragma.Builtin(), pfx)
	if !hasLabel(items, "Wunused-imports") {
		t.Fatalf("flag completion missing Wunused-imports: %v", completionLabels(items))
	}
	for _, it := range items {
		if strings.HasPrefix(it.Label, "-") {
			t.Fatalf("flag label kept its leading dash: %q", it.Label)
		}
	}
}

func TestCompletionGenericTemplates(t *testing.T) {
	pfx := CompletionPrefix{FullLine: "{-#", LinePrefix: "{-#", Word: ""}
	items := BuildCompletions(pragma.Builtin(), pfx)
	if len(items) != len(pragmaTemplates) {
		t.Fatalf("expected %d templates, got %d", len(pragmaTemplates), len(items))
	}
	if !hasLabel(items, "LANGUAGE") || !hasLabel(items, "SPECIALIZE INLINE") {
		t.Fatalf("template kinds missing: %v", completionLabels(items))
	}
	for _, it := range items {
		if !strings.HasSuffix(it.InsertText, " #-}") {
			t.Fatalf("open pragma template must append the closer: %+v", it)
		}
		if it.InsertTextFormat != InsertTextFormatSnippet || !strings.Contains(it.InsertText, "${1:") {
			t.Fatalf("templates are snippets with a placeholder: %+v", it)
		}
	}
}

func TestCompletionGenericTemplatesClosedLine(t *testing.T) {
	pfx := CompletionPrefix{FullLine: "{-#  #-}", LinePrefix: "{-#", Word: ""}
	items := BuildCompletions(pragma.Builtin(), pfx)
	if len(items) == 0 {
		t.Fatal("expected templates")
	}
	for _, it := range items {
		if strings.HasSuffix(it.InsertText, "#-}") {
			t.Fatalf("closed line must not get a second closer: %+v", it)
		}
	}
}

func TestCompletionPartialOpener(t *testing.T) {
	// "{-" is a prefix of the opener; templates still offered.
	pfx := CompletionPrefix{FullLine: "{-", LinePrefix: "{-", Word: ""}
	if items := BuildCompletions(pragma.Builtin(), pfx); len(items) == 0 {
		t.Fatal("partial opener should offer templates")
	}
}

func TestCompletionOutsidePragma(t *testing.T) {
	for _, line := range []string{"main = print", "-- comment", ""} {
		pfx := CompletionPrefix{FullLine: line, LinePrefix: line, Word: ""}
		if items := BuildCompletions(pragma.Builtin(), pfx); len(items) != 0 {
			t.Fatalf("%q: expected no completions, got %v", line, completionLabels(items))
		}
	}
}
