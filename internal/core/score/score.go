// Package score ranks picker candidates by blending a fuzzy subsequence
// match with recency.
//
// The blend is a tiered weighted sum: a contiguous substring match beats any
// prefix match, a prefix match beats any scattered match, fewer gap
// characters beat more, shorter names beat longer, and recency breaks what
// remains. Each tier's weight dominates everything below it, so the exact
// constants can be retuned without reordering results.
package score

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/colonyops/try/internal/core/workspace"
)

const (
	contiguousBonus = 1e12
	prefixBonus     = 1e10
	gapPenalty      = 1e6
	lengthPenalty   = 10.0
)

// Ranked is one row of the ranked view.
type Ranked struct {
	Entry workspace.Entry
	Score float64
	// Positions are the matched rune indexes within Entry.Name, used for
	// highlight rendering. Empty when the query is empty.
	Positions []int
	// CreateNew marks the synthetic create-new row. Its Entry carries only
	// the raw query as Name; the dated path is resolved at commit.
	CreateNew bool
}

// Match reports the greedy leftmost rune positions at which query appears in
// order within name. Both arguments are expected pre-folded. An empty query
// matches everything with no positions.
func Match(name, query string) ([]int, bool) {
	if query == "" {
		return nil, true
	}
	queryRunes := []rune(query)
	positions := make([]int, 0, len(queryRunes))
	qi := 0
	for i, r := range []rune(name) {
		if qi < len(queryRunes) && r == queryRunes[qi] {
			positions = append(positions, i)
			qi++
		}
	}
	if qi < len(queryRunes) {
		return nil, false
	}
	return positions, true
}

// Score rates entry against query at the reference time. Higher is better.
// ok is false when the query is non-empty and not a subsequence of the
// entry's folded name; such entries never appear in the ranked view.
//
// An empty query degrades to pure recency: strictly more recent entries
// always outrank older ones.
func Score(e workspace.Entry, query string, now time.Time) (float64, bool) {
	s, _, ok := scoreMatch(e, query, now)
	return s, ok
}

func scoreMatch(e workspace.Entry, query string, now time.Time) (float64, []int, bool) {
	if query == "" {
		return -now.Sub(e.ModifiedAt).Seconds(), nil, true
	}

	folded := strings.ToLower(query)
	positions, ok := Match(e.NameFolded, folded)
	if !ok {
		return math.Inf(-1), nil, false
	}

	var s float64
	if strings.Contains(e.NameFolded, folded) {
		s += contiguousBonus
	}
	if positions[0] == 0 {
		s += prefixBonus
	}
	gaps := positions[len(positions)-1] - positions[0] + 1 - len(positions)
	s -= gapPenalty * float64(gaps)
	s -= lengthPenalty * float64(len([]rune(e.Name)))

	hours := now.Sub(e.ModifiedAt).Hours()
	if hours < 0 {
		hours = 0
	}
	s += 3 / math.Sqrt(hours+1)

	return s, positions, true
}

// Rank scores every entry, drops non-matches, and sorts descending with the
// original order preserved on ties. When the query is non-empty and no
// entry's Name equals it exactly (case-sensitive), a synthetic create-new
// row is appended; it always sorts last so it never displaces a real match.
func Rank(entries []workspace.Entry, query string, now time.Time) []Ranked {
	ranked := make([]Ranked, 0, len(entries)+1)
	for _, e := range entries {
		s, positions, ok := scoreMatch(e, query, now)
		if !ok {
			continue
		}
		ranked = append(ranked, Ranked{Entry: e, Score: s, Positions: positions})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if query != "" && !hasExactName(entries, query) {
		ranked = append(ranked, Ranked{
			Entry:     workspace.Entry{Name: query},
			Score:     math.Inf(-1),
			CreateNew: true,
		})
	}
	return ranked
}

func hasExactName(entries []workspace.Entry, name string) bool {
	for _, e := range entries {
		if e.Name == name {
			return true
		}
	}
	return false
}
