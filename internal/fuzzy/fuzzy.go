// Package fuzzy finds the registered spelling closest to a mistyped flag or
// value. Used by snap.Table.Suggest for "did you mean" hints.
package fuzzy

import (
	"sort"
	"strings"

	subseq "github.com/sahilm/fuzzy"
)

// Matcher ranks candidate spellings against an input by edit distance,
// falling back to subsequence matching for abbreviations.
type Matcher struct {
	maxDistance int
	minLength   int

	// minAbbrev is the shortest body that may be expanded by subsequence
	// matching ("verb" -> "verbose")
	minAbbrev int
}

// NewMatcher creates a new fuzzy matcher with the given max edit distance
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2, // Don't suggest for very short inputs
		minAbbrev:   3,
	}
}

// Match represents a fuzzy match result
type Match struct {
	Value    string
	Distance int
	Score    float64 // 0.0 to 1.0, higher is better
}

// body strips the leading dashes of a flag spelling so "--hep" and "--help"
// are compared as "hep" and "help".
func body(s string) string {
	return strings.TrimLeft(s, "-")
}

// FindBest finds the best matching candidate.
// Returns empty string if no good match found
func (m *Matcher) FindBest(input string, candidates []string) string {
	matches := m.FindMatches(input, candidates)
	if len(matches) > 0 {
		return matches[0].Value
	}
	return m.findAbbreviation(input, candidates)
}

// FindMatches finds all candidates within the edit distance, best first
func (m *Matcher) FindMatches(input string, candidates []string) []Match {
	in := strings.ToLower(body(input))
	if len(in) < m.minLength {
		return nil
	}

	var matches []Match
	for _, candidate := range candidates {
		cand := strings.ToLower(body(candidate))

		// Skip exact matches (not fuzzy)
		if in == cand {
			continue
		}

		distance := m.levenshteinDistance(in, cand)
		if distance <= m.maxDistance {
			matches = append(matches, Match{
				Value:    candidate,
				Distance: distance,
				Score:    m.calculateScore(in, cand, distance),
			})
		}
	}

	// Sort by score (descending) then by distance (ascending)
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score == matches[j].Score {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].Score > matches[j].Score
	})

	return matches
}

// findAbbreviation returns the best candidate containing input as an
// ordered subsequence
func (m *Matcher) findAbbreviation(input string, candidates []string) string {
	in := body(input)
	if len(in) < m.minAbbrev {
		return ""
	}

	bodies := make([]string, len(candidates))
	for i, c := range candidates {
		bodies[i] = body(c)
	}
	found := subseq.Find(in, bodies)
	for _, match := range found {
		if match.Str != in {
			return candidates[match.Index]
		}
	}
	return ""
}

// calculateScore computes a match quality score (0.0 to 1.0)
// Factors: edit distance, length difference, prefix matching, common characters
func (m *Matcher) calculateScore(input, candidate string, distance int) float64 {
	if distance > m.maxDistance {
		return 0.0
	}

	maxLen := max(len(input), len(candidate))
	if maxLen == 0 {
		return 1.0
	}

	editScore := 1.0 - (float64(distance) / float64(maxLen))

	prefixBonus := 0.0
	if prefixLen := m.commonPrefixLength(input, candidate); prefixLen > 0 {
		prefixBonus = float64(prefixLen) / float64(min(len(input), len(candidate))) * 0.3
	}

	lengthDiff := abs(len(input) - len(candidate))
	lengthBonus := (1.0 - float64(lengthDiff)/float64(maxLen)) * 0.2

	commonChars := m.countCommonChars(input, candidate)
	charBonus := float64(commonChars) / float64(maxLen) * 0.1

	return min(editScore+prefixBonus+lengthBonus+charBonus, 1.0)
}

// levenshteinDistance calculates edit distance between two strings,
// giving up once the distance exceeds maxDistance
func (m *Matcher) levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	if abs(len(a)-len(b)) > m.maxDistance {
		return m.maxDistance + 1
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	// Two rows instead of the full matrix
	previousRow := make([]int, len(a)+1)
	currentRow := make([]int, len(a)+1)
	for i := range previousRow {
		previousRow[i] = i
	}

	for i := 1; i <= len(b); i++ {
		currentRow[0] = i
		minInRow := i

		for j := 1; j <= len(a); j++ {
			cost := 0
			if a[j-1] != b[i-1] {
				cost = 1
			}

			currentRow[j] = minThree(
				currentRow[j-1]+1,     // insertion
				previousRow[j]+1,      // deletion
				previousRow[j-1]+cost, // substitution
			)
			minInRow = min(minInRow, currentRow[j])
		}

		if minInRow > m.maxDistance {
			return m.maxDistance + 1
		}

		previousRow, currentRow = currentRow, previousRow
	}

	return previousRow[len(a)]
}

// commonPrefixLength returns the length of the common prefix
func (m *Matcher) commonPrefixLength(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// countCommonChars counts characters that appear in both strings
func (m *Matcher) countCommonChars(a, b string) int {
	charCount := make(map[rune]int)
	for _, r := range a {
		charCount[r]++
	}

	common := 0
	for _, r := range b {
		if charCount[r] > 0 {
			common++
			charCount[r]--
		}
	}
	return common
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

func minThree(a, b, c int) int {
	return min(a, b, c)
}

// FindBest finds the best matching candidate with a one-off matcher
func FindBest(input string, candidates []string, maxDistance int) string {
	return NewMatcher(maxDistance).FindBest(input, candidates)
}

// FindSuggestions returns up to maxSuggestions candidates, best first
func FindSuggestions(input string, candidates []string, maxDistance, maxSuggestions int) []string {
	matches := NewMatcher(maxDistance).FindMatches(input, candidates)

	suggestions := make([]string, 0, min(len(matches), maxSuggestions))
	for i, match := range matches {
		if i >= maxSuggestions {
			break
		}
		suggestions = append(suggestions, match.Value)
	}
	return suggestions
}
