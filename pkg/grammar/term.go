package grammar

// WildcardKind distinguishes the two wildcard terms
type WildcardKind int

const (
	// AnyChar matches exactly one character (? in bsd/simple, _ in sql)
	AnyChar WildcardKind = iota
	// AnyRun matches any run of characters, including none (* in bsd/simple, % in sql)
	AnyRun
)

// Term is one parsed unit of a pattern. Terms are immutable once created;
// the compiler builds new sequences rather than mutating parsed ones.
type Term interface {
	isTerm()
}

// Literal is a run of characters matched verbatim
type Literal struct {
	Text string
}

// Wildcard matches one character or a run of characters
type Wildcard struct {
	Kind WildcardKind
}

// CharClass matches one character from Members, or one character not in
// Members when Negated is set
type CharClass struct {
	Members string
	Negated bool
}

// Alternation is an ordered list of sub-pattern choices ({a,b,c} in bsd).
// The declared order of choices is significant: it drives the order in
// which directory entries are produced during enumeration.
type Alternation struct {
	Choices [][]Term
}

func (Literal) isTerm()     {}
func (Wildcard) isTerm()    {}
func (CharClass) isTerm()   {}
func (Alternation) isTerm() {}

// HasAlternation reports whether any term in the sequence is an Alternation
func HasAlternation(terms []Term) bool {
	for _, t := range terms {
		if _, ok := t.(Alternation); ok {
			return true
		}
	}
	return false
}
