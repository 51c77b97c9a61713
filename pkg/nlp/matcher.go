package nlp

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"EduBot/internal/entity"
)

const DefaultThreshold = 60.0

type intentMatcher struct{}

func NewMatcher() IMatcher {
	return &intentMatcher{}
}

// Match runs a brute-force scan over every pattern of every intent and keeps
// the single best-scoring pair. Ties keep the first pattern seen, so the scan
// order of the corpus is part of the contract. A best score strictly below
// the threshold means no match.
func (m *intentMatcher) Match(message string, intents []entity.Intent, threshold float64) MatchResult {
	message = strings.ToLower(message)

	bestScore := 0.0
	var bestIntent *entity.Intent

	for i := range intents {
		for _, pattern := range intents[i].Patterns {
			score := m.TokenSortRatio(message, strings.ToLower(pattern))
			if score > bestScore {
				bestScore = score
				bestIntent = &intents[i]
			}
		}
	}

	if bestScore < threshold {
		return MatchResult{Score: bestScore}
	}

	return MatchResult{Intent: bestIntent, Score: bestScore}
}

// TokenSortRatio scores two strings in [0,100] ignoring token order: both
// sides are cleaned, their tokens sorted and rejoined, then compared with an
// indel-weighted edit distance. 100 means the token multisets are identical.
func (m *intentMatcher) TokenSortRatio(a, b string) float64 {
	sortedA := sortTokens(cleanText(a))
	sortedB := sortTokens(cleanText(b))

	if len(sortedA) == 0 && len(sortedB) == 0 {
		return 100.0
	}

	distance := weightedLevenshtein(sortedA, sortedB)
	total := len(sortedA) + len(sortedB)

	return 100.0 * (1.0 - float64(distance)/float64(total))
}

func sortTokens(text string) string {
	tokens := strings.Fields(text)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

func cleanText(text string) string {
	text = strings.ToLower(text)

	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	result, _, _ := transform.String(t, text)

	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, result)

	words := strings.Fields(result)
	return strings.Join(words, " ")
}

func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}

// weightedLevenshtein counts insertions and deletions at cost 1 and
// substitutions at cost 2, which makes the ratio above equivalent to the
// classic sequence-matcher similarity.
func weightedLevenshtein(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	matrix := make([][]int, len(s1)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(s2)+1)
		matrix[i][0] = i
	}

	for j := 0; j <= len(s2); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(s1); i++ {
		for j := 1; j <= len(s2); j++ {
			cost := 0
			if s1[i-1] != s2[j-1] {
				cost = 2
			}

			matrix[i][j] = min(
				matrix[i-1][j]+1,
				matrix[i][j-1]+1,
				matrix[i-1][j-1]+cost,
			)
		}
	}

	return matrix[len(s1)][len(s2)]
}

func min(a, b, c int) int {
	if a < b && a < c {
		return a
	} else if b < c {
		return b
	}
	return c
}
