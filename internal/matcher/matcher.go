// Package matcher matches names against glob or regex patterns.
// It backs the CLI filter flags that narrow gene symbol listings.
package matcher

import (
	"fmt"
	"path"
	"regexp"
	"strings"
)

// Kind selects the pattern syntax.
type Kind int

const (
	// Glob uses shell-style glob patterns (*, ?, []).
	Glob Kind = iota
	// Regex uses regular expressions.
	Regex
	// Auto detects the syntax from the pattern itself.
	Auto
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Glob:
		return "glob"
	case Regex:
		return "regex"
	case Auto:
		return "auto"
	default:
		return "unknown"
	}
}

// Options configures matching behavior.
type Options struct {
	// CaseInsensitive folds case before comparing.
	CaseInsensitive bool
	// Anchored wraps regex patterns in ^ and $ when absent.
	Anchored bool
}

// Matcher is a compiled pattern ready for repeated matching.
type Matcher struct {
	pattern         string
	kind            Kind
	glob            string
	compiled        *regexp.Regexp
	caseInsensitive bool
}

// New compiles pattern into a Matcher. With Auto the syntax is detected:
// regex metacharacters outside the glob set select Regex, everything else
// is treated as a glob.
func New(kind Kind, pattern string, opts ...*Options) (*Matcher, error) {
	options := &Options{}
	if len(opts) > 0 && opts[0] != nil {
		options = opts[0]
	}

	m := &Matcher{
		pattern: pattern,
		kind:    kind,
	}
	if kind == Auto {
		m.kind = detectKind(pattern)
	}

	if err := m.compile(options); err != nil {
		return nil, fmt.Errorf("failed to compile pattern: %w", err)
	}
	return m, nil
}

func (m *Matcher) compile(opts *Options) error {
	m.caseInsensitive = opts.CaseInsensitive

	switch m.kind {
	case Glob:
		m.glob = m.pattern
		if opts.CaseInsensitive {
			m.glob = strings.ToLower(m.glob)
		}
		if _, err := path.Match(m.glob, ""); err != nil {
			return fmt.Errorf("invalid glob pattern: %w", err)
		}
	case Regex:
		pattern := m.pattern
		if opts.Anchored {
			if !strings.HasPrefix(pattern, "^") {
				pattern = "^" + pattern
			}
			if !strings.HasSuffix(pattern, "$") {
				pattern += "$"
			}
		}
		if opts.CaseInsensitive && !strings.HasPrefix(pattern, "(?i)") {
			pattern = "(?i)" + pattern
		}
		compiled, err := regexp.Compile(pattern)
		if err != nil {
			return fmt.Errorf("invalid regex pattern: %w", err)
		}
		m.compiled = compiled
	default:
		return fmt.Errorf("unsupported pattern kind: %v", m.kind)
	}
	return nil
}

// Match reports whether input matches the pattern.
func (m *Matcher) Match(input string) bool {
	switch m.kind {
	case Glob:
		if m.caseInsensitive {
			input = strings.ToLower(input)
		}
		matched, _ := path.Match(m.glob, input)
		return matched
	case Regex:
		return m.compiled.MatchString(input)
	default:
		return false
	}
}

// MatchAll returns the inputs that match, preserving order.
func (m *Matcher) MatchAll(inputs ...string) []string {
	results := make([]string, 0, len(inputs))
	for _, input := range inputs {
		if m.Match(input) {
			results = append(results, input)
		}
	}
	return results
}

// Pattern returns the original pattern string.
func (m *Matcher) Pattern() string {
	return m.pattern
}

// Kind returns the pattern kind after auto-detection.
func (m *Matcher) Kind() Kind {
	return m.kind
}

// detectKind classifies a pattern as glob or regex.
func detectKind(pattern string) Kind {
	regexIndicators := []string{
		"^", "$", "\\d", "\\w", "\\s", "\\D", "\\W", "\\S",
		"(?:", "(?i)", "(?m)", "(?s)",
		"{", "}", "+", "|", "(", ")",
	}
	for _, indicator := range regexIndicators {
		if strings.Contains(pattern, indicator) {
			return Regex
		}
	}
	return Glob
}
