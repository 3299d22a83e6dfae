package verify

import (
	"sort"
	"strings"
)

// Fuzzy string scoring on a 0-100 scale, based on Levenshtein distance.

// Ratio scores the similarity of two strings: 100 for identical, 0 for
// nothing in common.
func Ratio(a, b string) int {
	if a == "" && b == "" {
		return 100
	}
	if a == "" || b == "" {
		return 0
	}
	total := len(a) + len(b)
	dist := levenshtein(a, b)
	return (total - 2*dist) * 100 / total
}

// PartialRatio scores the best alignment of the shorter string against
// any equal-length window of the longer one. "acme" inside "engineer at
// acme corp" scores 100.
func PartialRatio(a, b string) int {
	shorter, longer := a, b
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if shorter == "" {
		if longer == "" {
			return 100
		}
		return 0
	}
	if len(shorter) == len(longer) {
		return Ratio(shorter, longer)
	}

	best := 0
	for i := 0; i+len(shorter) <= len(longer); i++ {
		if score := Ratio(shorter, longer[i:i+len(shorter)]); score > best {
			best = score
			if best == 100 {
				break
			}
		}
	}
	return best
}

// TokenSortRatio tokenizes, lowercases, and sorts both strings before
// scoring, so word order does not matter: "Lovelace Ada" matches
// "Ada Lovelace" at 100.
func TokenSortRatio(a, b string) int {
	return Ratio(sortTokens(a), sortTokens(b))
}

func sortTokens(s string) string {
	tokens := strings.Fields(strings.ToLower(s))
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}
