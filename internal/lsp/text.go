package lsp

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"fortio.org/safecast"
	"golang.org/x/text/unicode/norm"
)

const maxUint32 = ^uint32(0)

func safeUint32(n int) uint32 {
	if n < 0 {
		return 0
	}
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		return maxUint32
	}
	return v
}

// offsetForPosition converts an editor position (UTF-16 character count) to
// a byte offset into text, clamping to valid bounds.
func offsetForPosition(text string, pos Position) uint32 {
	if pos.Line < 0 || pos.Character < 0 {
		return 0
	}
	line := 0
	i := 0
	for i < len(text) && line < pos.Line {
		if text[i] == '\n' {
			line++
		}
		i++
	}
	if line < pos.Line {
		return safeUint32(len(text))
	}
	utf16Units := 0
	for i < len(text) {
		if text[i] == '\n' {
			break
		}
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size == 1 {
			size = 1
		}
		need := 1
		if r > 0xFFFF {
			need = 2
		}
		if utf16Units+need > pos.Character {
			break
		}
		utf16Units += need
		i += size
		if utf16Units == pos.Character {
			break
		}
	}
	return safeUint32(i)
}

// CompletionPrefix is what the completion classifier sees: the full current
// line, the line text up to the cursor, and the trailing word being typed.
// All three are NFC-normalized.
type CompletionPrefix struct {
	FullLine   string
	LinePrefix string
	Word       string
}

// ExtractPrefix computes the completion prefix for a cursor position in a
// buffer. An out-of-range position clamps to the nearest valid offset.
func ExtractPrefix(text string, pos Position) CompletionPrefix {
	off := int(offsetForPosition(text, pos))
	lineStart := strings.LastIndexByte(text[:off], '\n') + 1
	lineEnd := strings.IndexByte(text[off:], '\n')
	if lineEnd < 0 {
		lineEnd = len(text)
	} else {
		lineEnd += off
	}
	prefix := norm.NFC.String(text[lineStart:off])
	return CompletionPrefix{
		FullLine:   norm.NFC.String(text[lineStart:lineEnd]),
		LinePrefix: prefix,
		Word:       trailingWord(prefix),
	}
}

// trailingWord returns the run of word runes ending the prefix: the partial
// extension or flag name under the cursor. Dashes and underscores count so
// flag names like "Wno-unused-imports" stay whole.
func trailingWord(prefix string) string {
	runes := []rune(prefix)
	i := len(runes)
	for i > 0 && isWordRune(runes[i-1]) {
		i--
	}
	return string(runes[i:])
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_'
}
