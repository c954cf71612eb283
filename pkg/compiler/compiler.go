// Package compiler turns a parsed term sequence into fully-anchored match
// expressions. A sequence with no alternation compiles to exactly one
// expression; each alternation multiplies the expression list by its number
// of choices, in left-to-right, depth-first source order. The position of
// an expression in that order is its rank, which ordered filtering uses to
// restore the declared order of alternatives.
package compiler

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/globber/pkg/errors"
	"github.com/arthur-debert/globber/pkg/grammar"
)

// Expression is one anchored match expression with its expansion rank
type Expression struct {
	Rank int

	re *regexp.Regexp
}

// Match tests the candidate against the whole expression, never a substring
func (e Expression) Match(candidate string) bool {
	return e.re.MatchString(candidate)
}

// String returns the anchored source of the expression
func (e Expression) String() string {
	return e.re.String()
}

// Compile simplifies and expands a term sequence into its rank-ordered
// expression list. The list is never empty: an empty sequence compiles to
// the expression matching only the empty string.
func Compile(terms []grammar.Term) ([]Expression, error) {
	sources, err := Expand(Simplify(terms))
	if err != nil {
		return nil, err
	}

	exprs := make([]Expression, 0, len(sources))
	for rank, src := range sources {
		// (?s) lets the wildcards span newlines; candidates are arbitrary
		// strings and newlines are legal in file names
		re, err := regexp.Compile(`(?s)^(?:` + src + `)$`)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "compiled expression is invalid")
		}
		exprs = append(exprs, Expression{Rank: rank, re: re})
	}
	return exprs, nil
}

// Simplify coalesces consecutive literal terms into merged literal runs.
// A wildcard, class, or alternation breaks the run. Choices inside an
// alternation are simplified recursively. This is a pure optimization with
// no effect on matching behavior.
func Simplify(terms []grammar.Term) []grammar.Term {
	out := make([]grammar.Term, 0, len(terms))
	var run strings.Builder

	flush := func() {
		if run.Len() > 0 {
			out = append(out, grammar.Literal{Text: run.String()})
			run.Reset()
		}
	}

	for _, t := range terms {
		switch t := t.(type) {
		case grammar.Literal:
			run.WriteString(t.Text)
		case grammar.Alternation:
			flush()
			choices := make([][]grammar.Term, 0, len(t.Choices))
			for _, c := range t.Choices {
				choices = append(choices, Simplify(c))
			}
			out = append(out, grammar.Alternation{Choices: choices})
		default:
			flush()
			out = append(out, t)
		}
	}
	flush()

	return out
}

// Expand walks the sequence and returns one regular-expression source per
// combination of alternation choices, in rank order
func Expand(terms []grammar.Term) ([]string, error) {
	for i, t := range terms {
		alt, ok := t.(grammar.Alternation)
		if !ok {
			continue
		}

		head, err := source(terms[:i])
		if err != nil {
			return nil, err
		}
		tail := terms[i+1:]

		var sources []string
		for _, choice := range alt.Choices {
			rest := make([]grammar.Term, 0, len(choice)+len(tail))
			rest = append(rest, choice...)
			rest = append(rest, tail...)

			subs, err := Expand(rest)
			if err != nil {
				return nil, err
			}
			for _, sub := range subs {
				sources = append(sources, head+sub)
			}
		}
		return sources, nil
	}

	src, err := source(terms)
	if err != nil {
		return nil, err
	}
	return []string{src}, nil
}

// source renders an alternation-free term sequence as a regexp source
func source(terms []grammar.Term) (string, error) {
	var b strings.Builder
	for _, t := range terms {
		switch t := t.(type) {
		case grammar.Literal:
			b.WriteString(regexp.QuoteMeta(t.Text))
		case grammar.Wildcard:
			switch t.Kind {
			case grammar.AnyChar:
				b.WriteString(".")
			case grammar.AnyRun:
				b.WriteString(".*")
			default:
				return "", errors.Newf(errors.ErrUnsupportedFeature, "unknown wildcard kind %d", t.Kind)
			}
		case grammar.CharClass:
			b.WriteString(classSource(t))
		default:
			return "", errors.Newf(errors.ErrUnsupportedFeature, "unknown term type %T", t)
		}
	}
	return b.String(), nil
}

// classSource renders a character class, escaping the characters that are
// special inside a regexp class
func classSource(cc grammar.CharClass) string {
	var b strings.Builder
	b.WriteByte('[')
	if cc.Negated {
		b.WriteByte('^')
	}
	for _, r := range cc.Members {
		switch r {
		case '\\', ']', '^', '-':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte(']')
	return b.String()
}
