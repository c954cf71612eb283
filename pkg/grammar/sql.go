package grammar

import (
	"strings"

	"github.com/arthur-debert/globber/pkg/registry"
)

const sqlName = "sql"

// SQL implements SQL LIKE-style patterns: % matches any run of characters,
// _ matches exactly one. Every other character is literal; there are no
// escapes, classes, or alternations.
type SQL struct{}

// NewSQL creates the sql grammar
func NewSQL() *SQL {
	return &SQL{}
}

// Name returns "sql"
func (g *SQL) Name() string {
	return sqlName
}

// MatchAll returns the pattern that matches everything
func (g *SQL) MatchAll() string {
	return "%"
}

// Parse converts a pattern into a term sequence. SQL patterns cannot be
// malformed, so Parse never fails.
func (g *SQL) Parse(pattern string) ([]Term, error) {
	var terms []Term
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			terms = append(terms, Literal{Text: lit.String()})
			lit.Reset()
		}
	}

	for _, r := range pattern {
		switch r {
		case '%':
			flush()
			terms = append(terms, Wildcard{Kind: AnyRun})
		case '_':
			flush()
			terms = append(terms, Wildcard{Kind: AnyChar})
		default:
			lit.WriteRune(r)
		}
	}
	flush()

	return terms, nil
}

func init() {
	registry.MustRegister(grammars, sqlName, Grammar(NewSQL()))
}
