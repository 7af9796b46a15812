package lsp

import "testing"

func TestExtractPrefixMidLine(t *testing.T) {
	text := "module M where\n{-# LANGUAGE Sco\nmain = ()\n"
	pfx := ExtractPrefix(text, Position{Line: 1, Character: 16})
	if pfx.FullLine != "{-# LANGUAGE Sco" {
		t.Fatalf("FullLine = %q", pfx.FullLine)
	}
	if pfx.LinePrefix != "{-# LANGUAGE Sco" {
		t.Fatalf("LinePrefix = %q", pfx.LinePrefix)
	}
	if pfx.Word != "Sco" {
		t.Fatalf("Word = %q", pfx.Word)
	}
}

func TestExtractPrefixCursorInsideLine(t *testing.T) {
	text := "{-# LANGUAGE ScopedTypeVariables #-}\n"
	pfx := ExtractPrefix(text, Position{Line: 0, Character: 16})
	if pfx.LinePrefix != "{-# LANGUAGE Sco" {
		t.Fatalf("LinePrefix = %q", pfx.LinePrefix)
	}
	if pfx.FullLine != "{-# LANGUAGE ScopedTypeVariables #-}" {
		t.Fatalf("FullLine = %q", pfx.FullLine)
	}
	if pfx.Word != "Sco" {
		t.Fatalf("Word = %q", pfx.Word)
	}
}

func TestExtractPrefixFlagWord(t *testing.T) {
	text := "{-# OPTIONS_GHC -Wno-unu\n"
	pfx := ExtractPrefix(text, Position{Line: 0, Character: 24})
	if pfx.Word != "-Wno-unu" {
		t.Fatalf("Word = %q", pfx.Word)
	}
}

func TestExtractPrefixUTF16(t *testing.T) {
	// The emoji is one rune but two UTF-16 code units; character offsets
	// past it must still land on byte boundaries.
	text := "-- \U0001F600 ok\n{-# LANGUAGE Ban\n"
	pfx := ExtractPrefix(text, Position{Line: 0, Character: 5})
	if pfx.LinePrefix != "-- \U0001F600" {
		t.Fatalf("LinePrefix = %q", pfx.LinePrefix)
	}
	pfx = ExtractPrefix(text, Position{Line: 1, Character: 16})
	if pfx.Word != "Ban" {
		t.Fatalf("Word = %q", pfx.Word)
	}
}

func TestExtractPrefixClampsOutOfRange(t *testing.T) {
	text := "short\n"
	pfx := ExtractPrefix(text, Position{Line: 9, Character: 9})
	if pfx.LinePrefix != "" && pfx.LinePrefix != "short" {
		t.Fatalf("unexpected prefix %q", pfx.LinePrefix)
	}
	pfx = ExtractPrefix(text, Position{Line: 0, Character: 99})
	if pfx.LinePrefix != "short" {
		t.Fatalf("character clamp broken: %q", pfx.LinePrefix)
	}
}

func TestApplyEditsOrdering(t *testing.T) {
	text := "abc\ndef\n"
	edits := []TextEdit{
		{Range: Range{Start: Position{Line: 0, Character: 0}, End: Position{Line: 0, Character: 0}}, NewText: "X"},
		{Range: Range{Start: Position{Line: 1, Character: 3}, End: Position{Line: 1, Character: 3}}, NewText: "Y"},
	}
	if got := ApplyEdits(text, edits); got != "Xabc\ndefY\n" {
		t.Fatalf("ApplyEdits = %q", got)
	}
}

func TestApplyEditsReplacement(t *testing.T) {
	text := "hello world\n"
	edits := []TextEdit{{
		Range:   Range{Start: Position{Line: 0, Character: 6}, End: Position{Line: 0, Character: 11}},
		NewText: "there",
	}}
	if got := ApplyEdits(text, edits); got != "hello there\n" {
		t.Fatalf("ApplyEdits = %q", got)
	}
}
