package usecase

import (
	"regexp"
	"strings"
)

// Compiled regex patterns for search normalization
var (
	searchPunctuation = regexp.MustCompile(`[^\p{L}\p{N}\s]`)
	searchSizePattern = regexp.MustCompile(`\b\d+\.?\d*\s*(?:g|kg|ml|l|pk|pack|each)\b`)
	searchSpaces      = regexp.MustCompile(`\s+`)
)

// searchNoiseWords never narrow a grocery search
var searchNoiseWords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "of": true,
	"with": true, "for": true, "approx": true,
}

// NormalizeSearch lower-cases text, drops sizes, punctuation and filler words
func NormalizeSearch(text string) string {
	cleaned := strings.ToLower(text)
	cleaned = searchSizePattern.ReplaceAllString(cleaned, " ")
	cleaned = searchPunctuation.ReplaceAllString(cleaned, " ")

	words := strings.Fields(cleaned)
	kept := words[:0]
	for _, w := range words {
		if !searchNoiseWords[w] {
			kept = append(kept, w)
		}
	}
	return searchSpaces.ReplaceAllString(strings.Join(kept, " "), " ")
}

// MatchesSearch reports whether every word of query appears in text.
// An empty query matches everything.
func MatchesSearch(query, text string) bool {
	terms := strings.Fields(NormalizeSearch(query))
	if len(terms) == 0 {
		return true
	}
	haystack := NormalizeSearch(text)
	for _, term := range terms {
		if !strings.Contains(haystack, term) {
			return false
		}
	}
	return true
}
