package schema

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// NormalizeIdentity canonicalizes a contributor identity so that the same
// person is never double-counted due to casing or stray whitespace.
func NormalizeIdentity(identity string) string {
	return strings.ToLower(strings.TrimSpace(identity))
}

// noiseMarkers flag identities that belong to automation rather than
// people: CI bots, platform noreply addresses, classroom tooling.
var noiseMarkers = []string{"bot", "noreply", "github-classroom"}

// IsNoiseIdentity reports whether an identity looks like a bot or system
// account. Noise identities are excluded from the leaderboard regardless
// of commit volume.
func IsNoiseIdentity(identity string) bool {
	low := strings.ToLower(identity)
	for _, marker := range noiseMarkers {
		if strings.Contains(low, marker) {
			return true
		}
	}
	return false
}

// FormatCommitRate renders a commits-per-week rate with one decimal and a
// unit suffix, e.g. "5.0 commits/week".
func FormatCommitRate(commitsPerWeek float64) string {
	return fmt.Sprintf("%.1f commits/week", commitsPerWeek)
}

// ParseCommitRate extracts the numeric rate from a formatted commit
// frequency string. Parsing failures yield 0 rather than an error; the
// commit bonus simply does not apply then.
func ParseCommitRate(formatted string) float64 {
	fields := strings.Fields(formatted)
	if len(fields) == 0 {
		return 0
	}
	rate, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || rate < 0 {
		return 0
	}
	return rate
}

// InclusiveDays returns the day span between two timestamps, counting both
// endpoints, with a floor of 1. Used for both file-based and commit-based
// project durations.
func InclusiveDays(first, last time.Time) int {
	if first.IsZero() || last.IsZero() || last.Before(first) {
		return 1
	}
	return int(last.Sub(first).Hours()/24) + 1
}

// SortedKeys returns the keys of a string-keyed set in sorted order.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// RoundPct rounds a percentage to one decimal place.
func RoundPct(pct float64) float64 {
	return math.Round(pct*10) / 10
}
