// Package lsp holds the editor-facing wire types and the two request
// handlers the host invokes: pragma quick-fix code actions and pragma
// completion. Both handlers are pure functions of host-provided snapshots.
package lsp

// Position is a zero-based line/character pair; Character counts UTF-16
// code units, as the editor protocol does.
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// Range is a half-open [Start, End) span in a document.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// TextEdit replaces Range with NewText; a zero-width range is an insertion.
type TextEdit struct {
	Range   Range  `json:"range"`
	NewText string `json:"newText"`
}

// WorkspaceEdit maps document URIs to their edits.
type WorkspaceEdit struct {
	Changes map[string][]TextEdit `json:"changes,omitempty"`
}

// Diagnostic severities, per the editor protocol.
const (
	SeverityError   = 1
	SeverityWarning = 2
	SeverityInfo    = 3
	SeverityHint    = 4
)

// Diagnostic is a host-supplied compiler diagnostic. Code carries the
// machine-readable flag name when the compiler attaches one ("-Wtabs").
type Diagnostic struct {
	Range    Range  `json:"range"`
	Severity int    `json:"severity,omitempty"`
	Code     string `json:"code,omitempty"`
	Source   string `json:"source,omitempty"`
	Message  string `json:"message"`
}

// CodeActionContext carries the diagnostics the client shows for the
// requested range.
type CodeActionContext struct {
	Diagnostics []Diagnostic `json:"diagnostics"`
}

// TextDocumentIdentifier names a document by URI.
type TextDocumentIdentifier struct {
	URI string `json:"uri"`
}

// CodeActionParams is the code-action request payload.
type CodeActionParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Range        Range                  `json:"range"`
	Context      CodeActionContext      `json:"context"`
}

// CodeActionKindQuickFix marks an action as a diagnostic-attached quick fix.
const CodeActionKindQuickFix = "quickfix"

// CodeAction is one editor-surfaced suggested edit.
type CodeAction struct {
	Title       string         `json:"title"`
	Kind        string         `json:"kind,omitempty"`
	Diagnostics []Diagnostic   `json:"diagnostics,omitempty"`
	Edit        *WorkspaceEdit `json:"edit,omitempty"`
}

// Completion item kinds used by this component.
const (
	CompletionItemKindKeyword = 14
	CompletionItemKindSnippet = 15
)

// Insert text formats.
const (
	InsertTextFormatPlainText = 1
	InsertTextFormatSnippet   = 2
)

// CompletionItem is a single completion candidate: either a bare keyword or
// a snippet template with a placeholder field.
type CompletionItem struct {
	Label            string `json:"label"`
	Kind             int    `json:"kind,omitempty"`
	Detail           string `json:"detail,omitempty"`
	InsertText       string `json:"insertText,omitempty"`
	InsertTextFormat int    `json:"insertTextFormat,omitempty"`
}
