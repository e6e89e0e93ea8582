//nolint:testpackage // using package name 'benchmark' to access unexported fields for testing
package benchmark

import (
	"testing"

	fuzzy "github.com/dzonerzy/snapcursor/internal/fuzzy"
)

// Category: fuzzy (exported paths only)

var suggestCandidates = []string{
	"--help", "--version", "--verbose", "--config", "--output", "--input",
	"--force", "--debug", "--port", "--host", "--timeout", "--retry",
}

func BenchmarkMatcher_FindBest(b *testing.B) {
	matcher := fuzzy.NewMatcher(2)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		matcher.FindBest("--hep", suggestCandidates)
	}
}

func BenchmarkMatcher_Abbreviation(b *testing.B) {
	matcher := fuzzy.NewMatcher(2)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		matcher.FindBest("--tmout", suggestCandidates)
	}
}

func BenchmarkFindSuggestions(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		fuzzy.FindSuggestions("--ver", suggestCandidates, 2, 3)
	}
}
