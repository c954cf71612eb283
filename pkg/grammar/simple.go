package grammar

import (
	"strings"

	"github.com/arthur-debert/globber/pkg/registry"
)

const simpleName = "simple"

// Simple implements plain shell wildcards: * matches any run of characters,
// ? matches exactly one, and a backslash escapes either (or itself). No
// classes or alternations.
type Simple struct{}

// NewSimple creates the simple grammar
func NewSimple() *Simple {
	return &Simple{}
}

// Name returns "simple"
func (g *Simple) Name() string {
	return simpleName
}

// MatchAll returns the pattern that matches everything
func (g *Simple) MatchAll() string {
	return "*"
}

// Parse converts a pattern into a term sequence. A trailing bare backslash
// is kept as a literal, so Parse never fails.
func (g *Simple) Parse(pattern string) ([]Term, error) {
	var terms []Term
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			terms = append(terms, Literal{Text: lit.String()})
			lit.Reset()
		}
	}

	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		switch r := runes[i]; r {
		case '*':
			flush()
			terms = append(terms, Wildcard{Kind: AnyRun})
		case '?':
			flush()
			terms = append(terms, Wildcard{Kind: AnyChar})
		case '\\':
			if i+1 < len(runes) && isSimpleSpecial(runes[i+1]) {
				lit.WriteRune(runes[i+1])
				i++
			} else {
				lit.WriteRune(r)
			}
		default:
			lit.WriteRune(r)
		}
	}
	flush()

	return terms, nil
}

func isSimpleSpecial(r rune) bool {
	return r == '*' || r == '?' || r == '\\'
}

func init() {
	registry.MustRegister(grammars, simpleName, Grammar(NewSimple()))
}
