package pragma

import "strings"

// Header pragma openers recognized by the insertion scan. Matching is
// case-insensitive since GHC accepts lowercase pragma names.
const (
	languageOpener = "{-# language"
	optionsOpener  = "{-# options_ghc"
	pragmaCloser   = "#-}"
)

// InsertLine returns the zero-based line at which new header pragmas should
// be inserted: after the shebang, if any, and after every pre-existing
// OPTIONS_GHC and LANGUAGE block regardless of their relative order. Blocks
// may span several lines; a block ends on the line carrying its closer.
// Empty contents yield line 0.
func InsertLine(contents string) int {
	if contents == "" {
		return 0
	}
	lines := strings.Split(contents, "\n")

	line := 0
	if shebang := lastShebang(lines); shebang >= 0 {
		line = shebang + 1
	}
	if end := lastBlockEnd(lines, optionsOpener); end >= 0 && end+1 > line {
		line = end + 1
	}
	if end := lastBlockEnd(lines, languageOpener); end >= 0 && end+1 > line {
		line = end + 1
	}
	return line
}

// lastShebang returns the index of the last "#!" line, or -1.
func lastShebang(lines []string) int {
	last := -1
	for i, l := range lines {
		if strings.HasPrefix(l, "#!") {
			last = i
		}
	}
	return last
}

// lastBlockEnd returns the index of the line closing the last pragma block
// that starts with opener, or -1 if there is none. An unterminated block is
// treated as running to the final line.
func lastBlockEnd(lines []string, opener string) int {
	end := -1
	for i := 0; i < len(lines); i++ {
		if !strings.HasPrefix(strings.ToLower(lines[i]), opener) {
			continue
		}
		j := i
		for j < len(lines) && !strings.Contains(lines[j], pragmaCloser) {
			j++
		}
		if j == len(lines) {
			j = len(lines) - 1
		}
		end = j
		i = j
	}
	return end
}
