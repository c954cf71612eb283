package grammar

import (
	"github.com/arthur-debert/globber/pkg/errors"
	"github.com/arthur-debert/globber/pkg/registry"
)

// DefaultName is the grammar used when the caller does not pick one
const DefaultName = "bsd"

// Grammar converts a pattern string into a term sequence
type Grammar interface {
	// Name returns the unique name of this grammar
	Name() string

	// Parse converts a pattern into an ordered term sequence. It returns
	// an ErrPatternSyntax error, with the offending byte offset in its
	// details, when the pattern violates the grammar.
	Parse(pattern string) ([]Term, error)

	// MatchAll returns this grammar's match-anything pattern
	MatchAll() string
}

// HomeExpander is implemented by grammars that support home-directory
// expansion. The engine applies it to the whole pattern before splitting
// into segments, so an expanded home path spanning several segments is
// decomposed like any other path.
type HomeExpander interface {
	ExpandHome(pattern string) (string, error)
}

var grammars = registry.New[Grammar]()

// Register adds a custom grammar. Built-in grammars self-register in init()
func Register(g Grammar) error {
	return grammars.Register(g.Name(), g)
}

// Get retrieves a grammar by name
func Get(name string) (Grammar, error) {
	g, err := grammars.Get(name)
	if err != nil {
		return nil, errors.Newf(errors.ErrGrammarNotFound, "unknown grammar %q", name)
	}
	return g, nil
}

// Default returns the bsd grammar
func Default() Grammar {
	g, err := grammars.Get(DefaultName)
	if err != nil {
		panic("default grammar not registered")
	}
	return g
}

// Names returns the registered grammar names in sorted order
func Names() []string {
	return grammars.Names()
}

// syntaxErr builds the uniform pattern-syntax error carrying the pattern
// and the byte offset of the violation
func syntaxErr(pattern string, pos int, msg string) error {
	return errors.Newf(errors.ErrPatternSyntax, "%s at position %d", msg, pos).
		WithDetail("pattern", pattern).
		WithDetail("position", pos)
}
