package pragma

import (
	"fmt"
	"strings"
)

// SuggestionKind tags what a suggestion does.
type SuggestionKind uint8

const (
	// SuggestExtension enables a named language extension.
	SuggestExtension SuggestionKind = iota
	// SuggestDisableWarning silences a named warning class.
	SuggestDisableWarning
)

// Suggestion is a single pragma the editor may insert into the file header.
type Suggestion struct {
	Kind SuggestionKind
	Name string
}

// Title returns the human-readable label for the quick fix.
func (s Suggestion) Title() string {
	switch s.Kind {
	case SuggestDisableWarning:
		return fmt.Sprintf("Disable %q warnings", s.Name)
	default:
		return fmt.Sprintf("Add %q", s.Name)
	}
}

// Directive returns the literal pragma line, without a trailing newline.
func (s Suggestion) Directive() string {
	switch s.Kind {
	case SuggestDisableWarning:
		return fmt.Sprintf("{-# OPTIONS_GHC -Wno-%s #-}", s.Name)
	default:
		return fmt.Sprintf("{-# LANGUAGE %s #-}", s.Name)
	}
}

// Diagnostic is the subset of a host diagnostic the rules inspect.
type Diagnostic struct {
	// Message is the compiler's rendered message text.
	Message string
	// Code is the optional machine code, e.g. "-Wunused-imports".
	Code string
}

// excludedExtension matches too many unrelated messages when searched as a
// substring, so it is never suggested. Kept rather than tokenizing the scan;
// substring matching is the documented behavior.
const excludedExtension = "Strict"

// warningBlacklist lists warning classes that must not be silenced with a
// -Wno-* pragma: deferral warnings stand in for real errors.
var warningBlacklist = map[string]struct{}{
	"deferred-type-errors":            {},
	"deferred-out-of-scope-variables": {},
}

// Options widens the built-in exclusion lists, typically from host config.
type Options struct {
	// ExcludeExtensions are additional extension names never to suggest.
	ExcludeExtensions []string
	// SilenceNever are additional warning names never to silence.
	SilenceNever []string
}

// Suggest runs both rules over every diagnostic and returns the deduplicated
// suggestion list, first occurrence first.
func Suggest(catalog *Catalog, flags *FlagSet, diags []Diagnostic) []Suggestion {
	return SuggestWith(catalog, flags, diags, Options{})
}

// SuggestWith is Suggest with extra exclusions applied.
func SuggestWith(catalog *Catalog, flags *FlagSet, diags []Diagnostic, opts Options) []Suggestion {
	var out []Suggestion
	for _, d := range diags {
		out = append(out, SuggestFor(catalog, flags, d, opts)...)
	}
	return Dedupe(out)
}

// SuggestFor applies both rules to a single diagnostic: the missing-extension
// rule first, then the disable-warning rule. The result is not deduplicated.
func SuggestFor(catalog *Catalog, flags *FlagSet, d Diagnostic, opts Options) []Suggestion {
	out := suggestExtensions(catalog, flags, d, opts.ExcludeExtensions)
	if s, ok := suggestDisableWarning(d, opts.SilenceNever); ok {
		out = append(out, s)
	}
	return out
}

// suggestExtensions scans the message for known extension names. Matching is
// plain substring containment, not tokenized; false positives are accepted.
func suggestExtensions(catalog *Catalog, flags *FlagSet, d Diagnostic, exclude []string) []Suggestion {
	if catalog == nil || d.Message == "" {
		return nil
	}
	var out []Suggestion
	for _, ext := range catalog.Extensions() {
		if ext == excludedExtension || contains(exclude, ext) {
			continue
		}
		if !strings.Contains(d.Message, ext) {
			continue
		}
		if flags.ExtensionEnabled(ext) {
			continue
		}
		out = append(out, Suggestion{Kind: SuggestExtension, Name: ext})
	}
	return out
}

// suggestDisableWarning maps a "-W<name>" diagnostic code to a silencing
// suggestion, unless the warning is blacklisted.
func suggestDisableWarning(d Diagnostic, never []string) (Suggestion, bool) {
	name, ok := strings.CutPrefix(d.Code, "-W")
	if !ok || name == "" {
		return Suggestion{}, false
	}
	if _, blocked := warningBlacklist[name]; blocked {
		return Suggestion{}, false
	}
	if contains(never, name) {
		return Suggestion{}, false
	}
	return Suggestion{Kind: SuggestDisableWarning, Name: name}, true
}

// Dedupe removes duplicate suggestions by directive text, keeping the first
// occurrence in place.
func Dedupe(suggestions []Suggestion) []Suggestion {
	if len(suggestions) < 2 {
		return suggestions
	}
	seen := make(map[string]struct{}, len(suggestions))
	out := suggestions[:0]
	for _, s := range suggestions {
		key := s.Directive()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
