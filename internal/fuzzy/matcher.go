// Package fuzzy scores how well a short typed pattern matches task text, so
// tasks can be referenced by a few characters from the command line.
package fuzzy

import (
	"sort"
	"strings"
	"unicode"
)

const DefaultThreshold = 60

type MatchResult struct {
	Text  string
	Score int
	Index int
}

// Match scores pattern against text from 0 (no match) to 100 (equal,
// ignoring case). Contiguous matches beat scattered ones and matches at a
// word start beat matches mid-word.
func Match(pattern, text string) int {
	p := []rune(strings.ToLower(strings.TrimSpace(pattern)))
	t := []rune(strings.ToLower(strings.TrimSpace(text)))
	if len(p) == 0 || len(t) == 0 || len(p) > len(t) {
		return 0
	}
	if string(p) == string(t) {
		return 100
	}

	if at := strings.Index(string(t), string(p)); at >= 0 {
		// byte offset -> rune offset
		start := len([]rune(string(t)[:at]))
		score := 70 + 20*len(p)/len(t)
		if start == 0 {
			score += 8
		} else if isBoundary(t[start-1]) {
			score += 4
		}
		return clamp(score)
	}

	positions := subsequence(p, t)
	if positions == nil {
		return 0
	}

	score := 30 + 30*len(p)/len(t)
	score += 3 * boundaryHits(t, positions)
	score -= gaps(positions)
	if positions[0] == 0 {
		score += 5
	}

	return clamp(score)
}

// MatchMany returns every text scoring at least threshold, best first.
// Ties keep their original order.
func MatchMany(pattern string, texts []string, threshold int) []MatchResult {
	results := make([]MatchResult, 0, len(texts))
	for i, text := range texts {
		if score := Match(pattern, text); score >= threshold && score > 0 {
			results = append(results, MatchResult{Text: text, Score: score, Index: i})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}

// Best picks the single best match. ok is false when nothing reaches the
// threshold or when the top two results tie.
func Best(pattern string, texts []string, threshold int) (MatchResult, bool) {
	results := MatchMany(pattern, texts, threshold)
	if len(results) == 0 {
		return MatchResult{}, false
	}
	if len(results) > 1 && results[0].Score == results[1].Score {
		return results[0], false
	}
	return results[0], true
}

func subsequence(p, t []rune) []int {
	positions := make([]int, 0, len(p))
	pi := 0
	for ti := 0; ti < len(t) && pi < len(p); ti++ {
		if p[pi] == t[ti] {
			positions = append(positions, ti)
			pi++
		}
	}
	if pi < len(p) {
		return nil
	}
	return positions
}

func boundaryHits(t []rune, positions []int) int {
	hits := 0
	for _, pos := range positions {
		if pos == 0 || isBoundary(t[pos-1]) {
			hits++
		}
	}
	return hits
}

// total number of skipped runes between matched positions
func gaps(positions []int) int {
	total := 0
	for i := 1; i < len(positions); i++ {
		total += positions[i] - positions[i-1] - 1
	}
	return total
}

func isBoundary(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func clamp(score int) int {
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}
