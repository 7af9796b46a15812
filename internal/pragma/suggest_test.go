package pragma

import "testing"

func TestSuggestDisableWarning(t *testing.T) {
	diags := []Diagnostic{{
		Message: "The import of Data.List is redundant",
		Code:    "-Wunused-imports",
	}}
	got := Suggest(Builtin(), nil, diags)
	if len(got) != 1 {
		t.Fatalf("expected 1 suggestion, got %d: %+v", len(got), got)
	}
	s := got[0]
	if s.Kind != SuggestDisableWarning || s.Name != "unused-imports" {
		t.Fatalf("unexpected suggestion %+v", s)
	}
	if want := `{-# OPTIONS_GHC -Wno-unused-imports #-}`; s.Directive() != want {
		t.Fatalf("directive = %q, want %q", s.Directive(), want)
	}
	if want := `Disable "unused-imports" warnings`; s.Title() != want {
		t.Fatalf("title = %q, want %q", s.Title(), want)
	}
}

func TestSuggestDisableWarningBlacklist(t *testing.T) {
	for _, code := range []string{"-Wdeferred-type-errors", "-Wdeferred-out-of-scope-variables"} {
		got := Suggest(Builtin(), nil, []Diagnostic{{Message: "boom", Code: code}})
		if len(got) != 0 {
			t.Fatalf("%s: expected no suggestions, got %+v", code, got)
		}
	}
}

func TestSuggestIgnoresNonWarningCodes(t *testing.T) {
	diags := []Diagnostic{
		{Message: "parse error", Code: "GHC-58481"},
		{Message: "something", Code: "-fdefer-type-errors"},
		{Message: "something", Code: ""},
	}
	if got := Suggest(Builtin(), nil, diags); len(got) != 0 {
		t.Fatalf("expected no suggestions, got %+v", got)
	}
}

func TestSuggestMissingExtension(t *testing.T) {
	diags := []Diagnostic{{
		Message: "Illegal lambda-case (use LambdaCase)",
	}}
	got := Suggest(Builtin(), nil, diags)
	if len(got) != 1 {
		t.Fatalf("expected 1 suggestion, got %+v", got)
	}
	if got[0].Name != "LambdaCase" || got[0].Kind != SuggestExtension {
		t.Fatalf("unexpected suggestion %+v", got[0])
	}
	if want := `{-# LANGUAGE LambdaCase #-}`; got[0].Directive() != want {
		t.Fatalf("directive = %q, want %q", got[0].Directive(), want)
	}
}

func TestSuggestNeverProposesStrict(t *testing.T) {
	// "Strict" appears inside "StrictData" and in plenty of unrelated
	// messages; it is excluded outright.
	diags := []Diagnostic{{Message: "Strict application of a function"}}
	for _, s := range Suggest(Builtin(), nil, diags) {
		if s.Name == "Strict" {
			t.Fatalf("Strict must never be suggested: %+v", s)
		}
	}
}

func TestSuggestSkipsEnabledExtensions(t *testing.T) {
	flags := NewFlagSet([]string{"LambdaCase"})
	diags := []Diagnostic{{Message: "Illegal lambda-case (use LambdaCase)"}}
	if got := Suggest(Builtin(), flags, diags); len(got) != 0 {
		t.Fatalf("enabled extension still suggested: %+v", got)
	}
	// A nil snapshot means the file failed to parse: nothing counts as
	// enabled, so the suggestion comes back.
	if got := Suggest(Builtin(), nil, diags); len(got) != 1 {
		t.Fatalf("expected suggestion without flags snapshot, got %+v", got)
	}
}

func TestSuggestSubstringMatchIsNotTokenized(t *testing.T) {
	// The name appears embedded in a longer word; substring containment
	// still matches. Documented tradeoff, not a defect.
	diags := []Diagnostic{{Message: "see alsoGADTsAreFun for details"}}
	got := Suggest(Builtin(), nil, diags)
	found := false
	for _, s := range got {
		if s.Name == "GADTs" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected substring match for GADTs, got %+v", got)
	}
}

func TestSuggestDedupFirstOccurrence(t *testing.T) {
	diags := []Diagnostic{
		{Message: "x", Code: "-Wname-shadowing"},
		{Message: "Illegal lambda-case (use LambdaCase)"},
		{Message: "y", Code: "-Wname-shadowing"},
	}
	got := Suggest(Builtin(), nil, diags)
	if len(got) != 2 {
		t.Fatalf("expected 2 suggestions after dedup, got %+v", got)
	}
	if got[0].Name != "name-shadowing" || got[1].Name != "LambdaCase" {
		t.Fatalf("dedup broke ordering: %+v", got)
	}
}

func TestSuggestWithExtraExclusions(t *testing.T) {
	opts := Options{
		ExcludeExtensions: []string{"LambdaCase"},
		SilenceNever:      []string{"unused-imports"},
	}
	diags := []Diagnostic{
		{Message: "Illegal lambda-case (use LambdaCase)"},
		{Message: "redundant import", Code: "-Wunused-imports"},
	}
	if got := SuggestWith(Builtin(), nil, diags, opts); len(got) != 0 {
		t.Fatalf("config exclusions ignored: %+v", got)
	}
}

func TestSuggestEmptyInputs(t *testing.T) {
	if got := Suggest(Builtin(), nil, nil); len(got) != 0 {
		t.Fatalf("expected no suggestions for no diagnostics, got %+v", got)
	}
	if got := Suggest(nil, nil, []Diagnostic{{Message: "use LambdaCase", Code: "-Wtabs"}}); len(got) != 1 {
		// No catalog: the extension rule has nothing to scan for, but the
		// warning rule still fires.
		t.Fatalf("expected only the warning suggestion, got %+v", got)
	}
}
