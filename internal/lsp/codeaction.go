package lsp

import (
	"pragmata/internal/host"
	"pragmata/internal/pragma"
)

// BuildCodeActions matches the request's diagnostics against the pragma
// suggestion rules and returns one quick-fix insertion per distinct
// suggestion. All edits share a single insertion point computed from the
// snapshot contents; an absent snapshot degrades to line 0 and no flags.
func BuildCodeActions(catalog *pragma.Catalog, snap host.DocumentSnapshot, params CodeActionParams) []CodeAction {
	return BuildCodeActionsWith(catalog, snap, params, pragma.Options{})
}

// BuildCodeActionsWith is BuildCodeActions with host-configured exclusions.
func BuildCodeActionsWith(catalog *pragma.Catalog, snap host.DocumentSnapshot, params CodeActionParams, opts pragma.Options) []CodeAction {
	flags := snap.Flags()

	line := 0
	if snap.HasContents {
		line = pragma.InsertLine(snap.Contents)
	}
	at := Position{Line: line, Character: 0}

	type match struct {
		sugg pragma.Suggestion
		diag Diagnostic
	}
	var matches []match
	seen := make(map[string]struct{})
	for _, d := range params.Context.Diagnostics {
		in := pragma.Diagnostic{Message: d.Message, Code: d.Code}
		for _, s := range pragma.SuggestFor(catalog, flags, in, opts) {
			key := s.Directive()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			matches = append(matches, match{sugg: s, diag: d})
		}
	}

	actions := make([]CodeAction, 0, len(matches))
	for _, m := range matches {
		actions = append(actions, CodeAction{
			Title:       m.sugg.Title(),
			Kind:        CodeActionKindQuickFix,
			Diagnostics: []Diagnostic{m.diag},
			Edit: &WorkspaceEdit{
				Changes: map[string][]TextEdit{
					params.TextDocument.URI: {{
						Range:   Range{Start: at, End: at},
						NewText: m.sugg.Directive() + "\n",
					}},
				},
			},
		})
	}
	return actions
}
