// Package hints provides actionable user guidance for CLI operations.
// When a lookup misses, it suggests the closest known names so the user
// can correct a typo without hunting through the full listing.
package hints

import (
	"fmt"
	"io"
	"strings"
)

// Hint represents actionable user guidance.
type Hint struct {
	Message string // Human-readable guidance message
	Command string // Optional specific command to run
}

// New creates a new hint with the given message.
func New(message string) *Hint {
	return &Hint{Message: message}
}

// WithCommand adds a command to the hint.
func (h *Hint) WithCommand(command string) *Hint {
	if h == nil {
		return nil
	}
	h.Command = command
	return h
}

// Fprint writes the hint to w. A nil hint writes nothing.
func (h *Hint) Fprint(w io.Writer) {
	if h == nil {
		return
	}
	fmt.Fprintln(w, h.Message)
	if h.Command != "" {
		fmt.Fprintf(w, "Run '%s' for the full list.\n", h.Command)
	}
}

// Suggestion builds a did-you-mean hint for an unknown input, or nil
// when no candidate is close enough to be worth suggesting.
func Suggestion(input string, candidates []string) *Hint {
	matches := Closest(input, candidates, 3)
	if len(matches) == 0 {
		return nil
	}
	if len(matches) == 1 {
		return New(fmt.Sprintf("Did you mean %q?", matches[0]))
	}
	return New(fmt.Sprintf("Did you mean one of: %s?", strings.Join(matches, ", ")))
}

// Closest returns up to max candidates ranked by edit distance to input.
// Comparison is case-insensitive. Candidates further than the cutoff
// distance are excluded entirely.
func Closest(input string, candidates []string, max int) []string {
	if input == "" || len(candidates) == 0 || max <= 0 {
		return nil
	}

	cutoff := len(input) / 3
	if cutoff < 2 {
		cutoff = 2
	}

	type ranked struct {
		name     string
		distance int
	}
	matches := make([]ranked, 0, max)

	lower := strings.ToLower(input)
	for _, candidate := range candidates {
		d := levenshtein(lower, strings.ToLower(candidate))
		if d > cutoff {
			continue
		}
		matches = append(matches, ranked{name: candidate, distance: d})
	}

	// Insertion sort by distance, ties broken lexically. Candidate lists
	// are small (gene symbols, projection names), so this stays cheap.
	for i := 1; i < len(matches); i++ {
		for j := i; j > 0; j-- {
			a, b := matches[j-1], matches[j]
			if a.distance < b.distance || (a.distance == b.distance && a.name <= b.name) {
				break
			}
			matches[j-1], matches[j] = b, a
		}
	}

	if len(matches) > max {
		matches = matches[:max]
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.name
	}
	return out
}

// levenshtein computes the edit distance between two strings using the
// two-row dynamic programming formulation.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
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
			curr[j] = min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
