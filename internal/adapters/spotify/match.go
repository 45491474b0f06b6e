package spotify

import (
	"strings"

	"github.com/segue-audio/segue/internal/core/domain"
)

// matchScore rates how well a candidate track answers a free-text query.
// Queries usually carry both title and artist words in either order, so
// the candidate is scored against "title artist" and "artist title" and
// the better orientation wins. Token overlap contributes a floor so a
// query naming only the title still scores respectably.
func matchScore(query string, candidate domain.Track) float64 {
	normQuery := normalizeSearchInput(query)
	normTitle := normalizeSearchInput(candidate.Title)
	normArtist := normalizeSearchInput(candidate.Artist)

	if normQuery == "" || normTitle == "" {
		return 0
	}

	titleFirst := similarity(normQuery, strings.TrimSpace(normTitle+" "+normArtist))
	artistFirst := similarity(normQuery, strings.TrimSpace(normArtist+" "+normTitle))
	score := max(titleFirst, artistFirst)

	if overlap := tokenOverlap(normQuery, normTitle+" "+normArtist); overlap > score {
		score = overlap
	}
	return score
}

// tokenOverlap is the fraction of query tokens present in the candidate
// token set. Insensitive to word order and extra candidate tokens.
func tokenOverlap(query string, candidate string) float64 {
	queryTokens := strings.Fields(query)
	if len(queryTokens) == 0 {
		return 0
	}

	candidateSet := make(map[string]struct{})
	for _, token := range strings.Fields(candidate) {
		candidateSet[token] = struct{}{}
	}

	matched := 0
	for _, token := range queryTokens {
		if _, ok := candidateSet[token]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(queryTokens))
}

func similarity(a string, b string) float64 {
	if a == b {
		return 1.0
	}
	maxLen := max(len([]rune(a)), len([]rune(b)))
	if maxLen == 0 {
		return 1.0
	}

	distance := levenshteinDistance(a, b)
	return 1.0 - float64(distance)/float64(maxLen)
}

func levenshteinDistance(a string, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 0
			if ra[i-1] != rb[j-1] {
				cost = 1
			}
			curr[j] = min(
				prev[j]+1,
				curr[j-1]+1,
				prev[j-1]+cost,
			)
		}
		copy(prev, curr)
	}

	return prev[len(rb)]
}
