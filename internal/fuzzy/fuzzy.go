// Package fuzzy implements order-preserving subsequence matching for
// completion filtering. Every query rune must appear in the candidate in
// order; scoring prefers consecutive runs, word boundaries, and prefix hits.
package fuzzy

import (
	"sort"
	"strings"
	"unicode"
)

// Filter returns the candidates matching query, best score first; ties break
// by candidate text for deterministic output. An empty query matches every
// candidate in the given order.
func Filter(query string, candidates []string) []string {
	if query == "" {
		out := make([]string, len(candidates))
		copy(out, candidates)
		return out
	}
	queryRunes := []rune(strings.ToLower(query))

	type scored struct {
		text  string
		score int
	}
	results := make([]scored, 0, len(candidates))
	for _, cand := range candidates {
		if score, ok := Score(queryRunes, cand); ok {
			results = append(results, scored{text: cand, score: score})
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score != results[j].score {
			return results[i].score > results[j].score
		}
		return results[i].text < results[j].text
	})

	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.text
	}
	return out
}

// Match reports whether query is a case-insensitive ordered subsequence of
// text.
func Match(query, text string) bool {
	_, ok := Score([]rune(strings.ToLower(query)), text)
	return ok
}

// Score matches the lowercased query runes against text with a greedy
// left-to-right scan and returns a relevance score. ok is false when some
// query rune has no home.
func Score(queryRunes []rune, text string) (score int, ok bool) {
	if len(queryRunes) == 0 || text == "" {
		return 0, len(queryRunes) == 0
	}
	original := []rune(text)
	lowered := []rune(strings.ToLower(text))

	matches := make([]int, 0, len(queryRunes))
	queryIdx := 0
	for i := 0; i < len(lowered) && queryIdx < len(queryRunes); i++ {
		if lowered[i] == queryRunes[queryIdx] {
			matches = append(matches, i)
			queryIdx++
		}
	}
	if queryIdx != len(queryRunes) {
		return 0, false
	}

	score = 100
	for i := 1; i < len(matches); i++ {
		if matches[i] == matches[i-1]+1 {
			score += 20
		}
	}
	for _, idx := range matches {
		if isWordBoundary(original, idx) {
			score += 15
		}
	}
	if matches[0] == 0 {
		score += 25
	} else {
		score -= matches[0]
	}
	if gap := matches[len(matches)-1] - matches[0] - len(matches) + 1; gap > 0 {
		score -= gap * 2
	}
	if len(lowered) < 20 {
		score += 20 - len(lowered)
	}
	if score < 1 {
		score = 1
	}
	return score, true
}

// isWordBoundary reports whether idx starts a word: position zero, after a
// separator, or a CamelCase transition.
func isWordBoundary(runes []rune, idx int) bool {
	if idx == 0 {
		return true
	}
	if idx >= len(runes) {
		return false
	}
	prev, curr := runes[idx-1], runes[idx]
	if unicode.IsSpace(prev) || unicode.IsPunct(prev) {
		return true
	}
	return unicode.IsLower(prev) && unicode.IsUpper(curr)
}
