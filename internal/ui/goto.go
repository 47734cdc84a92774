package ui

import (
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/five82/cubecarousel/internal/source"
)

// minTitleSimilarity is the lowest normalized similarity accepted for a
// fuzzy title match.
const minTitleSimilarity = 0.5

// resolveTarget turns go-to prompt input into a data index. Input is either a
// 1-based position or (part of) an item title. Titles match by prefix first,
// then by edit distance.
func resolveTarget(input string, items []source.Item) (int, bool) {
	query := strings.ToLower(strings.TrimSpace(input))
	if query == "" || len(items) == 0 {
		return 0, false
	}
	if n, err := strconv.Atoi(query); err == nil {
		if n < 1 || n > len(items) {
			return 0, false
		}
		return n - 1, true
	}

	for i, item := range items {
		if strings.HasPrefix(strings.ToLower(item.Label()), query) {
			return i, true
		}
	}

	best, bestScore := -1, 0.0
	for i, item := range items {
		if score := similarity(query, strings.ToLower(item.Label())); score > bestScore {
			best, bestScore = i, score
		}
	}
	if best < 0 || bestScore < minTitleSimilarity {
		return 0, false
	}
	return best, true
}

func similarity(a, b string) float64 {
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}
