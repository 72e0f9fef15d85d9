// Package match scores Kroger catalog candidates against free-text grocery
// list lines ("Wild-caught salmon (1 lb)"). It is a best-effort heuristic:
// the highest-scoring candidate wins, ties keep first-seen order.
package match

import (
	"regexp"
	"strings"
)

var (
	parentheticalPattern = regexp.MustCompile(`\([^)]*\)`)
	quantityPattern      = regexp.MustCompile(`(?i)\d+\s*(lbs?|ounces?|oz|pieces?|count|jars?|bags?|heads?|bunch|dozen)`)
	descriptorPattern    = regexp.MustCompile(`(?i)organic|grass-fed|free-range|wild-caught`)
	wordSplitPattern     = regexp.MustCompile(`[\s-]+`)
)

// Normalize cleans a grocery-list line for catalog search: parenthetical
// quantity annotations, quantity/unit tokens and quality descriptors are
// stripped so the search term stays broad.
func Normalize(item string) string {
	clean := strings.ToLower(item)
	clean = parentheticalPattern.ReplaceAllString(clean, "")
	clean = quantityPattern.ReplaceAllString(clean, "")
	clean = descriptorPattern.ReplaceAllString(clean, "")
	return strings.TrimSpace(clean)
}

// Words splits a normalized term on whitespace and hyphens
func Words(term string) []string {
	parts := wordSplitPattern.Split(term, -1)
	words := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			words = append(words, p)
		}
	}
	return words
}

// Score rates how well a candidate's description matches a grocery line.
// normalized is the Normalize()d line, original the raw user input (quality
// descriptors are only rewarded when the user asked for them).
func Score(description, normalized, original string) int {
	name := strings.ToLower(description)
	score := 0

	// Full-phrase match gets the highest score
	if normalized != "" && strings.Contains(name, normalized) {
		score += 100
	}

	for _, word := range Words(normalized) {
		if strings.Contains(name, word) {
			score += 10
		}
	}

	// Prefer organic/quality items when the original line had those descriptors
	orig := strings.ToLower(original)
	if strings.Contains(orig, "organic") && strings.Contains(name, "organic") {
		score += 20
	}
	if strings.Contains(orig, "grass-fed") && strings.Contains(name, "grass") {
		score += 20
	}
	if strings.Contains(orig, "free-range") && strings.Contains(name, "free") {
		score += 20
	}

	return score
}
