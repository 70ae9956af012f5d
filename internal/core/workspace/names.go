package workspace

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"
)

// SanitizeName normalizes free-form input for use as a directory basename:
// whitespace is trimmed, interior spaces become dashes, and characters
// unsafe for a basename are dropped. May return "" when nothing survives.
func SanitizeName(name string) string {
	base := strings.ReplaceAll(strings.TrimSpace(name), " ", "-")
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == '.' {
			return r
		}
		return -1
	}, base)
}

// DatedName sanitizes name and appends the local date as a suffix.
func DatedName(name string, now time.Time) string {
	return fmt.Sprintf("%s-%s", SanitizeName(name), now.Format("2006-01-02"))
}

var repoNameRe = regexp.MustCompile(`([^/:]+?)(\.git)?/?$`)

// CloneDirName derives the destination basename for a clone: the trailing
// path segment of url with any .git suffix stripped, dated like any other
// new directory.
func CloneDirName(url string, now time.Time) (string, error) {
	m := repoNameRe.FindStringSubmatch(strings.TrimSpace(url))
	if m == nil || m[1] == "" {
		return "", fmt.Errorf("derive directory name from %q", url)
	}
	return DatedName(m[1], now), nil
}

// IsRepoURL reports whether a raw query names a git remote rather than a
// directory search. The shell wrapper forwards these verbatim.
func IsRepoURL(q string) bool {
	return strings.HasPrefix(q, "http") || strings.HasPrefix(q, "git@")
}
