// Package globber implements the matcher for a single path segment.
//
// A Globber owns one parsed term sequence and compiles it lazily into its
// anchored expression list on first use. Compilation is memoized but not
// guarded: a Globber must not be shared across goroutines. Recompiling is
// cheap and idempotent, so distinct instances for the same pattern are the
// supported way to match concurrently.
package globber

import (
	"github.com/arthur-debert/globber/pkg/compiler"
	"github.com/arthur-debert/globber/pkg/grammar"
)

// Globber matches candidate names against one segment's pattern
type Globber struct {
	terms   []grammar.Term
	ordered bool

	compiled    bool
	expressions []compiler.Expression
	compileErr  error
}

// New creates a Globber for a parsed term sequence
func New(terms []grammar.Term) *Globber {
	return &Globber{
		terms:   terms,
		ordered: grammar.HasAlternation(terms),
	}
}

// FromPattern parses a single-segment pattern with the given grammar and
// wraps it in a Globber
func FromPattern(pattern string, g grammar.Grammar) (*Globber, error) {
	terms, err := g.Parse(pattern)
	if err != nil {
		return nil, err
	}
	return New(terms), nil
}

// Ordered reports whether this segment contains an alternation, in which
// case filtering must enforce the declared order of alternatives
func (g *Globber) Ordered() bool {
	return g.ordered
}

// Compile forces the memoized compilation. Matches and Filter call it
// implicitly; the engine calls it eagerly so that syntax errors surface
// before a traversal starts.
func (g *Globber) Compile() error {
	if !g.compiled {
		g.expressions, g.compileErr = compiler.Compile(g.terms)
		g.compiled = true
	}
	return g.compileErr
}

// Matches reports whether the candidate matches any of the compiled
// expressions
func (g *Globber) Matches(candidate string) (bool, error) {
	if err := g.Compile(); err != nil {
		return false, err
	}
	for _, e := range g.expressions {
		if e.Match(candidate) {
			return true, nil
		}
	}
	return false, nil
}

// Filter returns the matching candidates. When the segment is ordered, the
// output is grouped by expression rank: all candidates matching the first
// alternative come first, in their original order, then the candidates
// matching the second, and so on. A candidate consumed by an earlier rank
// is not reconsidered for a later one. Without an alternation the input
// order is simply preserved.
func (g *Globber) Filter(candidates []string) ([]string, error) {
	if err := g.Compile(); err != nil {
		return nil, err
	}
	if !g.ordered {
		return g.filterPlain(candidates), nil
	}
	return g.filterOrdered(candidates), nil
}

func (g *Globber) filterPlain(candidates []string) []string {
	var out []string
	for _, c := range candidates {
		for _, e := range g.expressions {
			if e.Match(c) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

func (g *Globber) filterOrdered(candidates []string) []string {
	var out []string
	used := make([]bool, len(candidates))

	for _, e := range g.expressions {
		for i, c := range candidates {
			if used[i] || !e.Match(c) {
				continue
			}
			used[i] = true
			out = append(out, c)
		}
	}
	return out
}
