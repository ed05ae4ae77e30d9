package fuzzy

import (
	"sort"
	"strings"

	"github.com/adrg/strutil"
	"github.com/agnivade/levenshtein"
)

// ratcliffObershelp scores two strings as twice the number of matching
// characters over the combined length, with matching blocks found by
// recursive longest-common-substring (the Ratcliff/Obershelp ratio).
// Stateless and safe for concurrent use. Implements strutil.StringMetric.
type ratcliffObershelp struct{}

var ratcliff strutil.StringMetric = ratcliffObershelp{}

func (ratcliffObershelp) Compare(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 && len(rb) == 0 {
		return 1
	}
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}
	return 2 * float64(matchingChars(ra, rb)) / float64(len(ra)+len(rb))
}

// matchingChars counts the characters covered by the longest common
// substring and, recursively, the matches on either side of it.
func matchingChars(a, b []rune) int {
	ai, bi, size := longestCommonSubstring(a, b)
	if size == 0 {
		return 0
	}
	return size +
		matchingChars(a[:ai], b[:bi]) +
		matchingChars(a[ai+size:], b[bi+size:])
}

// longestCommonSubstring returns the start offsets and length of the
// longest run of characters shared by a and b. Earlier runs win ties.
func longestCommonSubstring(a, b []rune) (ai, bi, size int) {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
				if cur[j] > size {
					size = cur[j]
					ai = i - size
					bi = j - size
				}
			} else {
				cur[j] = 0
			}
		}
		prev, cur = cur, prev
		for j := range cur {
			cur[j] = 0
		}
	}
	return ai, bi, size
}

// Similarity returns a symmetric similarity score in [0,1] between two strings,
// ignoring case. 1.0 means the strings are equal ignoring case.
func Similarity(a, b string) float64 {
	return strutil.Similarity(strings.ToLower(a), strings.ToLower(b), ratcliff)
}

// Candidate is a named match with its similarity score against a query.
type Candidate struct {
	Name  string
	Score float64
}

// Rank sorts candidates by descending score. Ties are broken by ascending
// edit distance to the query, then by name, so rankings are deterministic.
func Rank(query string, candidates []Candidate) {
	q := strings.ToLower(query)
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		di := levenshtein.ComputeDistance(q, strings.ToLower(candidates[i].Name))
		dj := levenshtein.ComputeDistance(q, strings.ToLower(candidates[j].Name))
		if di != dj {
			return di < dj
		}
		return candidates[i].Name < candidates[j].Name
	})
}

// TopNames returns up to limit candidate names in rank order, skipping
// duplicates.
func TopNames(candidates []Candidate, limit int) []string {
	seen := make(map[string]bool, len(candidates))
	names := make([]string, 0, limit)
	for _, c := range candidates {
		if seen[c.Name] {
			continue
		}
		seen[c.Name] = true
		names = append(names, c.Name)
		if len(names) >= limit {
			break
		}
	}
	return names
}
