package matcher

import (
	"testing"
)

var benchSymbols = []string{
	"PAX3", "PAX7", "SOX9", "SOX10", "FOXD3", "TFAP2A", "TFAP2B",
	"TCOF1", "CHD7", "EDNRB", "EDN3", "MITF", "KIT", "RET", "GDNF",
	"ZEB2", "SNAI2", "TWIST1", "MSX1", "MSX2",
}

func mustNew(b *testing.B, kind Kind, pattern string, opts ...*Options) *Matcher {
	b.Helper()
	m, err := New(kind, pattern, opts...)
	if err != nil {
		b.Fatalf("New(%q) error = %v", pattern, err)
	}
	return m
}

func BenchmarkGlobMatch(b *testing.B) {
	m := mustNew(b, Glob, "PAX*")
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = m.Match("PAX3")
	}
}

func BenchmarkRegexMatch(b *testing.B) {
	m := mustNew(b, Regex, "^PAX\\d+$")
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = m.Match("PAX3")
	}
}

func BenchmarkGlobMatchCaseInsensitive(b *testing.B) {
	m := mustNew(b, Glob, "pax*", &Options{CaseInsensitive: true})
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = m.Match("PAX3")
	}
}

func BenchmarkGlobMatchAll(b *testing.B) {
	m := mustNew(b, Glob, "SOX*")
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = m.MatchAll(benchSymbols...)
	}
}

func BenchmarkRegexMatchAll(b *testing.B) {
	m := mustNew(b, Regex, "^(PAX|SOX|TFAP2)\\w+$")
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = m.MatchAll(benchSymbols...)
	}
}

func BenchmarkAutoDetect(b *testing.B) {
	patterns := []string{"PAX*", "^SOX\\d+$", "TCOF1", "TFAP2[AB]"}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = detectKind(patterns[i%len(patterns)])
	}
}
