package score

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/try/internal/core/workspace"
)

var now = time.Date(2026, 8, 21, 12, 0, 0, 0, time.UTC)

func entry(name string, age time.Duration) workspace.Entry {
	return workspace.NewEntry(name, "/ws/"+name, now.Add(-age))
}

func names(ranked []Ranked) []string {
	out := make([]string, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.Entry.Name)
	}
	return out
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		query     string
		want      []int
		ok        bool
	}{
		{name: "contiguous", candidate: "foobar", query: "foo", want: []int{0, 1, 2}, ok: true},
		{name: "scattered", candidate: "fxoxo", query: "foo", want: []int{0, 2, 4}, ok: true},
		{name: "not a subsequence", candidate: "bar", query: "foo", ok: false},
		{name: "out of order", candidate: "oof", query: "fo", ok: false},
		{name: "empty query", candidate: "anything", query: "", want: nil, ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Match(tt.candidate, tt.query)
			assert.Equal(t, tt.ok, ok)
			if tt.ok && tt.query != "" {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestScore_NonSubsequenceExcluded(t *testing.T) {
	_, ok := Score(entry("bar", time.Hour), "foo", now)
	assert.False(t, ok)
}

func TestScore_TierOrdering(t *testing.T) {
	age := 24 * time.Hour

	score := func(name, query string) float64 {
		s, ok := Score(entry(name, age), query, now)
		require.True(t, ok, "query %q should match %q", query, name)
		return s
	}

	t.Run("contiguous beats prefix-scattered", func(t *testing.T) {
		assert.Greater(t, score("xxfooxx", "foo"), score("fxoxo", "foo"))
	})

	t.Run("prefix beats interior start", func(t *testing.T) {
		assert.Greater(t, score("foobar", "foo"), score("xfoobar", "foo"))
	})

	t.Run("fewer gaps beat more gaps", func(t *testing.T) {
		// Same length, both prefix matches; only the gap count differs.
		assert.Greater(t, score("fxabz", "fab"), score("fxxab", "fab"))
	})

	t.Run("shorter name beats longer", func(t *testing.T) {
		assert.Greater(t, score("axb", "ab"), score("axbz", "ab"))
	})

	t.Run("recency breaks final ties", func(t *testing.T) {
		fresh, ok := Score(entry("axb", time.Hour), "ab", now)
		require.True(t, ok)
		stale, ok := Score(entry("axb", 30*24*time.Hour), "ab", now)
		require.True(t, ok)
		assert.Greater(t, fresh, stale)
	})

	t.Run("recency never outruns a shorter name", func(t *testing.T) {
		staleShort, ok := Score(entry("axb", 365*24*time.Hour), "ab", now)
		require.True(t, ok)
		freshLong, ok := Score(entry("axbz", time.Minute), "ab", now)
		require.True(t, ok)
		assert.Greater(t, staleShort, freshLong)
	})
}

func TestRank_EmptyQueryIsRecencyOrder(t *testing.T) {
	entries := []workspace.Entry{
		entry("foo-2025-01-01", 48*time.Hour),
		entry("bar-2025-01-02", 24*time.Hour),
	}

	ranked := Rank(entries, "", now)
	assert.Equal(t, []string{"bar-2025-01-02", "foo-2025-01-01"}, names(ranked))
}

func TestRank_EmptyQueryTiesKeepSourceOrder(t *testing.T) {
	entries := []workspace.Entry{
		entry("first", time.Hour),
		entry("second", time.Hour),
		entry("third", time.Hour),
	}

	ranked := Rank(entries, "", now)
	assert.Equal(t, []string{"first", "second", "third"}, names(ranked))
}

func TestRank_SyntheticRow(t *testing.T) {
	entries := []workspace.Entry{
		entry("foo-2025-01-01", 48*time.Hour),
		entry("bar-2025-01-02", 24*time.Hour),
	}

	t.Run("appears after every real match", func(t *testing.T) {
		ranked := Rank(entries, "fo", now)
		require.Len(t, ranked, 2)
		assert.Equal(t, "foo-2025-01-01", ranked[0].Entry.Name)
		assert.True(t, ranked[1].CreateNew)
		assert.Equal(t, "fo", ranked[1].Entry.Name)
	})

	t.Run("absent on exact case-sensitive match", func(t *testing.T) {
		ranked := Rank(entries, "foo-2025-01-01", now)
		for _, r := range ranked {
			assert.False(t, r.CreateNew)
		}
	})

	t.Run("case difference still offers create", func(t *testing.T) {
		ranked := Rank([]workspace.Entry{entry("Foo", time.Hour)}, "foo", now)
		require.Len(t, ranked, 2)
		assert.False(t, ranked[0].CreateNew)
		assert.True(t, ranked[1].CreateNew)
	})

	t.Run("absent for empty query", func(t *testing.T) {
		ranked := Rank(entries, "", now)
		for _, r := range ranked {
			assert.False(t, r.CreateNew)
		}
	})

	t.Run("only row when nothing matches", func(t *testing.T) {
		ranked := Rank(entries, "zzz", now)
		require.Len(t, ranked, 1)
		assert.True(t, ranked[0].CreateNew)
	})
}

func TestRank_PositionsForHighlighting(t *testing.T) {
	ranked := Rank([]workspace.Entry{entry("foobar", time.Hour)}, "fb", now)
	require.Len(t, ranked, 2)
	assert.Equal(t, []int{0, 3}, ranked[0].Positions)
}
